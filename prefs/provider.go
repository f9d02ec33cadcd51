package prefs

import (
	"fmt"

	"github.com/poiesic/kensaku/core"
)

// Preference keys.
const (
	KeyRomajiKanaMode         = "romaji-kana-mode"
	KeyWantRomajiToKana       = "want-romaji-to-kana"
	KeyWantHiraganaToKatakana = "want-hiragana-to-katakana"
	KeyWantKatakanaToHiragana = "want-katakana-to-hiragana"
)

// KeyKind tells whether a key holds a boolean or an integer.
type KeyKind int

const (
	BoolKey KeyKind = iota + 1
	IntKey
)

// Keys maps every defined key to its kind.
var Keys = map[string]KeyKind{
	KeyRomajiKanaMode:         IntKey,
	KeyWantRomajiToKana:       BoolKey,
	KeyWantHiraganaToKatakana: BoolKey,
	KeyWantKatakanaToHiragana: BoolKey,
}

// KindOf returns the kind of key or ErrUnknownKey.
func KindOf(key string) (KeyKind, error) {
	kind, ok := Keys[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return kind, nil
}

// Provider answers preference lookups. Unknown keys read as the zero value.
type Provider interface {
	GetBool(key string) bool
	GetInt(key string) int
}

// LocaleDetector reports whether the user runs a Japanese locale.
type LocaleDetector interface {
	IsJapaneseLocale() bool
}

// RomajiKanaMode decides when romaji atoms are converted to kana.
type RomajiKanaMode int

const (
	// RomajiKanaAlways converts whenever conversion is wanted.
	RomajiKanaAlways RomajiKanaMode = 0
	// RomajiKanaNever never converts.
	RomajiKanaNever RomajiKanaMode = 1
	// RomajiKanaLocale converts only outside a Japanese locale, where romaji
	// is more likely typed as a kana stand-in than meant as English.
	RomajiKanaLocale RomajiKanaMode = 2
)

func (m RomajiKanaMode) String() string {
	switch m {
	case RomajiKanaAlways:
		return "always"
	case RomajiKanaNever:
		return "never"
	case RomajiKanaLocale:
		return "locale"
	}
	return fmt.Sprintf("RomajiKanaMode(%d)", int(m))
}

// Valid reports whether m is a defined mode.
func (m RomajiKanaMode) Valid() bool {
	return m >= RomajiKanaAlways && m <= RomajiKanaLocale
}

// Resolve reads the transliteration options from p.
//
// The want-romaji-to-kana toggle is further gated by the romaji-kana mode.
// An undefined mode behaves like RomajiKanaLocale, and a nil locale detector
// counts as a non-Japanese locale.
func Resolve(p Provider, locale LocaleDetector) core.TranslitOptions {
	if p == nil {
		return core.TranslitOptions{}
	}

	romaji := p.GetBool(KeyWantRomajiToKana)
	switch mode := RomajiKanaMode(p.GetInt(KeyRomajiKanaMode)); mode {
	case RomajiKanaAlways:
	case RomajiKanaNever:
		romaji = false
	default:
		if locale != nil && locale.IsJapaneseLocale() {
			romaji = false
		}
	}

	return core.TranslitOptions{
		WantRomajiToKana:       romaji,
		WantHiraganaToKatakana: p.GetBool(KeyWantHiraganaToKatakana),
		WantKatakanaToHiragana: p.GetBool(KeyWantKatakanaToHiragana),
	}
}
