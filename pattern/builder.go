package pattern

import (
	"strconv"
	"strings"

	"github.com/poiesic/kensaku/atom"
	"github.com/poiesic/kensaku/core"
	"github.com/poiesic/kensaku/kana"
	"github.com/poiesic/kensaku/script"
)

// maxFilterValues caps how many values a filter range expands to.
const maxFilterValues = 100

// Build returns the tiered pattern sources for one atom.
//
// The classification supplies both the script class and the yojijukugo flag.
// Filter atoms ignore the classification. Build is deterministic: equal
// inputs always produce byte-identical sources.
func Build(a core.Atom, c script.Classification, opts core.TranslitOptions, style core.Style) core.TieredPatternSet {
	if a.IsFilter() {
		return buildFilter(a)
	}

	switch c.Class {
	case core.Kanji:
		return japaneseTiers(kanjiBase(a.Text, c.Yojijukugo), style, core.Kanji)
	case core.Furigana:
		if base, ok := furiganaBase(a.Text, opts); ok {
			return japaneseTiers(base, style, core.Furigana)
		}
		// Unconvertible romaji stays literal romaji.
		return romajiTiers(a.Text, style)
	default:
		return romajiTiers(a.Text, style)
	}
}

// kanjiBase wraps the atom in a capturing group. A four-character compound
// may also match on either half.
func kanjiBase(text string, yojijukugo bool) string {
	if !yojijukugo {
		return group(text)
	}
	runes := []rune(text)
	half := len(runes) / 2
	return group(text, string(runes[:half]), string(runes[half:]))
}

// furiganaBase builds the kana alternation for an atom. Romaji text is
// converted first when the options ask for it; ok is false when romaji text
// cannot be converted.
func furiganaBase(text string, opts core.TranslitOptions) (string, bool) {
	switch {
	case script.IsHiragana(text):
		if opts.WantHiraganaToKatakana {
			return group(text, kana.HiraganaToKatakana(text)), true
		}
	case script.IsKatakana(text):
		if opts.WantKatakanaToHiragana {
			return group(text, kana.KatakanaToHiragana(text)), true
		}
	case script.IsRomaji(text):
		if !opts.WantRomajiToKana {
			return "", false
		}
		hira, err := kana.RomajiToHiragana(text)
		if err != nil {
			return "", false
		}
		if opts.WantHiraganaToKatakana {
			return group(hira, kana.HiraganaToKatakana(hira)), true
		}
		return group(hira), true
	}
	return group(text), true
}

func japaneseTiers(base string, style core.Style, class core.ScriptClass) core.TieredPatternSet {
	high := japaneseHigh[style]
	if style == core.KanjiDict && class == core.Furigana {
		high = kanjiDictReadingHigh
	}

	var set core.TieredPatternSet
	set[core.Exists] = base
	set[core.Locate] = base
	set[core.High] = high.wrap(base)
	set[core.Medium] = base
	return set
}

func romajiTiers(text string, style core.Style) core.TieredPatternSet {
	grouped := group(text)

	var set core.TieredPatternSet
	set[core.Exists] = text
	set[core.Locate] = text
	set[core.High] = romajiHigh[style].wrap(grouped)
	set[core.Medium] = wordBoundary.wrap(grouped)
	return set
}

// buildFilter expands a KANJIDIC filter into a whitespace-bounded field
// match. Filters have a single meaningful semantic, so every tier shares it.
func buildFilter(a core.Atom) core.TieredPatternSet {
	fr, ok := atom.ParseFilter(a.Text)

	var body string
	if !ok {
		body = a.Text
	} else if fr.Lo == fr.Hi {
		body = a.Filter.Prefix() + strconv.Itoa(fr.Lo)
	} else {
		// Bounds are non-negative, so Hi-Lo cannot overflow.
		count := maxFilterValues
		if fr.Hi-fr.Lo < maxFilterValues {
			count = fr.Hi - fr.Lo + 1
		}
		values := make([]string, 0, count)
		for k := range count {
			values = append(values, strconv.Itoa(fr.Lo+k))
		}
		body = a.Filter.Prefix() + "(?:" + strings.Join(values, "|") + ")"
	}

	src := filterField.wrap(group(body))
	return core.TieredPatternSet{src, src, src, src}
}

// group joins alternatives into one capturing group, dropping duplicates.
func group(alternatives ...string) string {
	seen := make(map[string]bool, len(alternatives))
	kept := alternatives[:0:0]
	for _, alt := range alternatives {
		if seen[alt] {
			continue
		}
		seen[alt] = true
		kept = append(kept, alt)
	}
	return "(" + strings.Join(kept, "|") + ")"
}
