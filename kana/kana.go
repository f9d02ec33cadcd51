package kana

import "strings"

const (
	hiraganaFirst = 'ぁ' // U+3041
	hiraganaLast  = 'ゖ' // U+3096
	katakanaFirst = 'ァ' // U+30A1
	katakanaLast  = 'ヶ' // U+30F6

	// kanaOffset is the distance between parallel hiragana and katakana code points.
	kanaOffset = katakanaFirst - hiraganaFirst
)

// HiraganaToKatakana shifts every hiragana character into the katakana block.
// Everything else passes through unchanged.
func HiraganaToKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= hiraganaFirst && r <= hiraganaLast:
			return r + kanaOffset
		case r == 'ゝ' || r == 'ゞ':
			return r + kanaOffset
		}
		return r
	}, s)
}

// KatakanaToHiragana shifts every katakana character that has a hiragana
// counterpart into the hiragana block. Everything else passes through unchanged.
func KatakanaToHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= katakanaFirst && r <= katakanaLast:
			return r - kanaOffset
		case r == 'ヽ' || r == 'ヾ':
			return r - kanaOffset
		}
		return r
	}, s)
}
