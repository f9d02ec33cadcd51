package kana

import "strings"

// maxSyllableLen is the longest key in syllables.
const maxSyllableLen = 4

// syllables maps romaji spellings (Hepburn, Kunrei and common IME input) to hiragana.
var syllables = map[string]string{
	"a": "あ", "i": "い", "u": "う", "e": "え", "o": "お",

	"ka": "か", "ki": "き", "ku": "く", "ke": "け", "ko": "こ",
	"kya": "きゃ", "kyu": "きゅ", "kyo": "きょ",
	"ga": "が", "gi": "ぎ", "gu": "ぐ", "ge": "げ", "go": "ご",
	"gya": "ぎゃ", "gyu": "ぎゅ", "gyo": "ぎょ",

	"sa": "さ", "shi": "し", "si": "し", "su": "す", "se": "せ", "so": "そ",
	"sha": "しゃ", "shu": "しゅ", "sho": "しょ", "she": "しぇ",
	"sya": "しゃ", "syu": "しゅ", "syo": "しょ",
	"za": "ざ", "ji": "じ", "zi": "じ", "zu": "ず", "ze": "ぜ", "zo": "ぞ",
	"ja": "じゃ", "ju": "じゅ", "jo": "じょ", "je": "じぇ",
	"jya": "じゃ", "jyu": "じゅ", "jyo": "じょ",
	"zya": "じゃ", "zyu": "じゅ", "zyo": "じょ",

	"ta": "た", "chi": "ち", "ti": "ち", "tsu": "つ", "tu": "つ", "te": "て", "to": "と",
	"cha": "ちゃ", "chu": "ちゅ", "cho": "ちょ", "che": "ちぇ",
	"tya": "ちゃ", "tyu": "ちゅ", "tyo": "ちょ",
	"cya": "ちゃ", "cyu": "ちゅ", "cyo": "ちょ",
	"da": "だ", "di": "ぢ", "du": "づ", "de": "で", "do": "ど",
	"dya": "ぢゃ", "dyu": "ぢゅ", "dyo": "ぢょ",

	"na": "な", "ni": "に", "nu": "ぬ", "ne": "ね", "no": "の",
	"nya": "にゃ", "nyu": "にゅ", "nyo": "にょ",

	"ha": "は", "hi": "ひ", "fu": "ふ", "hu": "ふ", "he": "へ", "ho": "ほ",
	"hya": "ひゃ", "hyu": "ひゅ", "hyo": "ひょ",
	"fa": "ふぁ", "fi": "ふぃ", "fe": "ふぇ", "fo": "ふぉ",
	"ba": "ば", "bi": "び", "bu": "ぶ", "be": "べ", "bo": "ぼ",
	"bya": "びゃ", "byu": "びゅ", "byo": "びょ",
	"pa": "ぱ", "pi": "ぴ", "pu": "ぷ", "pe": "ぺ", "po": "ぽ",
	"pya": "ぴゃ", "pyu": "ぴゅ", "pyo": "ぴょ",

	"ma": "ま", "mi": "み", "mu": "む", "me": "め", "mo": "も",
	"mya": "みゃ", "myu": "みゅ", "myo": "みょ",

	"ya": "や", "yu": "ゆ", "yo": "よ",

	"ra": "ら", "ri": "り", "ru": "る", "re": "れ", "ro": "ろ",
	"rya": "りゃ", "ryu": "りゅ", "ryo": "りょ",

	"wa": "わ", "wi": "ゐ", "we": "ゑ", "wo": "を",

	"vu": "ゔ", "va": "ゔぁ", "vi": "ゔぃ", "ve": "ゔぇ", "vo": "ゔぉ",

	"xa": "ぁ", "xi": "ぃ", "xu": "ぅ", "xe": "ぇ", "xo": "ぉ",
	"la": "ぁ", "li": "ぃ", "lu": "ぅ", "le": "ぇ", "lo": "ぉ",
	"xya": "ゃ", "xyu": "ゅ", "xyo": "ょ",
	"lya": "ゃ", "lyu": "ゅ", "lyo": "ょ",
	"xtu": "っ", "xtsu": "っ", "ltu": "っ", "ltsu": "っ",
	"xwa": "ゎ", "lwa": "ゎ", "xka": "ゕ", "xke": "ゖ",
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'i', 'u', 'e', 'o':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// isRomajiInput reports whether s holds only characters romaji can contain.
func isRomajiInput(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isLetter(c) && c != ' ' && c != '-' && c != '\'' {
			return false
		}
	}
	return true
}

// RomajiToHiragana converts romaji to hiragana.
//
// Doubled consonants become a small tsu, "n" before a consonant or at the end
// of a word becomes ん, "-" becomes the prolonged sound mark and spaces are
// kept. Conversion is case-insensitive.
func RomajiToHiragana(s string) (string, error) {
	lower := strings.ToLower(s)
	if !isRomajiInput(lower) {
		return "", &ConversionError{Kind: NotRomaji, Input: s, Offset: firstNonRomaji(lower)}
	}

	var out strings.Builder
	out.Grow(len(lower) * 3)

	for i := 0; i < len(lower); {
		c := lower[i]
		var next byte
		if i+1 < len(lower) {
			next = lower[i+1]
		}

		switch {
		case c == ' ':
			out.WriteByte(' ')
			i++
			continue
		case c == '-':
			out.WriteRune('ー')
			i++
			continue
		case c == 'n':
			switch {
			case next == '\'':
				out.WriteRune('ん')
				i += 2
				continue
			case next == 'n':
				out.WriteRune('ん')
				// "onna": the second n still opens the next syllable.
				if i+2 < len(lower) && (isVowel(lower[i+2]) || lower[i+2] == 'y') {
					i++
				} else {
					i += 2
				}
				continue
			case !isVowel(next) && next != 'y':
				out.WriteRune('ん')
				i++
				continue
			}
		case isLetter(c) && !isVowel(c) && c == next:
			out.WriteRune('っ')
			i++
			continue
		case c == 't' && next == 'c' && i+2 < len(lower) && lower[i+2] == 'h':
			out.WriteRune('っ')
			i++
			continue
		}

		kana, n := longestSyllable(lower[i:])
		if n == 0 {
			return "", &ConversionError{Kind: Unconvertible, Input: s, Offset: i}
		}
		out.WriteString(kana)
		i += n
	}

	return out.String(), nil
}

// RomajiToKatakana converts romaji to katakana by way of hiragana.
func RomajiToKatakana(s string) (string, error) {
	hira, err := RomajiToHiragana(s)
	if err != nil {
		return "", err
	}
	return HiraganaToKatakana(hira), nil
}

func longestSyllable(s string) (string, int) {
	n := min(maxSyllableLen, len(s))
	for ; n > 0; n-- {
		if kana, ok := syllables[s[:n]]; ok {
			return kana, n
		}
	}
	return "", 0
}

func firstNonRomaji(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isLetter(c) && c != ' ' && c != '-' && c != '\'' {
			return i
		}
	}
	return 0
}
