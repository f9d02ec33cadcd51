package script

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/poiesic/kensaku/core"
)

// YojijukugoMinRunes is the shortest pure-kanji fragment treated as a
// four-character compound.
const YojijukugoMinRunes = 4

// prolongedSoundMark is shared by hiragana and katakana words.
const prolongedSoundMark = 'ー'

// Classification is the result of classifying a fragment.
type Classification struct {
	Class      core.ScriptClass
	PureKanji  bool // every rune is an ideograph
	Yojijukugo bool // pure kanji of at least YojijukugoMinRunes runes
}

// Classify assigns exactly one script class to text.
func Classify(text string) Classification {
	if text == "" {
		return Classification{Class: core.Mixed}
	}

	if IsKanji(text) {
		return Classification{
			Class:      core.Kanji,
			PureKanji:  true,
			Yojijukugo: utf8.RuneCountInString(text) >= YojijukugoMinRunes,
		}
	}
	if IsKanjiIsh(text) {
		return Classification{Class: core.Kanji}
	}
	if IsFurigana(text) {
		return Classification{Class: core.Furigana}
	}
	if IsRomaji(text) {
		return Classification{Class: core.Romaji}
	}
	return Classification{Class: core.Mixed}
}

// IsIdeograph reports whether r is a CJK ideograph or an ideographic mark
// written in place of one.
func IsIdeograph(r rune) bool {
	switch r {
	case '々', '〆', '〇':
		return true
	}
	return unicode.Is(unicode.Han, r)
}

// IsHiraganaRune reports whether r is hiragana or the prolonged sound mark.
func IsHiraganaRune(r rune) bool {
	return r == prolongedSoundMark || unicode.Is(unicode.Hiragana, r)
}

// IsKatakanaRune reports whether r is katakana or the prolonged sound mark.
func IsKatakanaRune(r rune) bool {
	return r == prolongedSoundMark || unicode.Is(unicode.Katakana, r)
}

// IsKanji reports whether text is non-empty and made of ideographs only.
func IsKanji(text string) bool {
	return all(text, IsIdeograph)
}

// IsKanjiIsh reports whether text holds at least one ideograph and otherwise
// only kana, numerals, whitespace or punctuation. Words with okurigana (食べる)
// and kanji-search shorthand (犬 5) fall in this group.
func IsKanjiIsh(text string) bool {
	if text == "" {
		return false
	}
	sawIdeograph := false
	for _, r := range text {
		switch {
		case IsIdeograph(r):
			sawIdeograph = true
		case IsHiraganaRune(r), IsKatakanaRune(r):
		case unicode.IsDigit(r), unicode.IsSpace(r):
		case unicode.IsPunct(r), unicode.IsSymbol(r):
		default:
			return false
		}
	}
	return sawIdeograph
}

// IsFurigana reports whether text is non-empty and made of kana only.
func IsFurigana(text string) bool {
	return all(text, func(r rune) bool {
		return IsHiraganaRune(r) || IsKatakanaRune(r)
	})
}

// IsHiragana reports whether text is non-empty and made of hiragana only.
func IsHiragana(text string) bool {
	return all(text, IsHiraganaRune)
}

// IsKatakana reports whether text is non-empty and made of katakana only.
func IsKatakana(text string) bool {
	return all(text, IsKatakanaRune)
}

// IsRomaji reports whether text is made of ASCII letters, allowing spaces
// between words but not around them.
func IsRomaji(text string) bool {
	if text == "" || strings.TrimSpace(text) != text {
		return false
	}
	return all(text, func(r rune) bool {
		return r == ' ' || (r < utf8.RuneSelf && unicode.IsLetter(r))
	})
}

func all(text string, pred func(rune) bool) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !pred(r) {
			return false
		}
	}
	return true
}
