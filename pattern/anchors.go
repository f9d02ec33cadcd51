package pattern

import "github.com/poiesic/kensaku/core"

// anchor wraps a grouped base pattern with a prefix and a suffix.
type anchor struct {
	prefix string
	suffix string
}

func (a anchor) wrap(grouped string) string {
	return a.prefix + grouped + a.suffix
}

// Japanese high anchors, per style.
//
// EDICT:       headword or reading field: 犬;狗 [いぬ] /(n) dog/
// KANJIDIC:    the character heading the line, or one space-separated reading
// Tanaka:      an indexed word on a B: line: B: 犬(いぬ)[01]{犬} です
var japaneseHigh = [core.NumStyles]anchor{
	core.Edict:       {prefix: `(?<![^\[;])`, suffix: `(?![^\];\s(])`},
	core.KanjiDict:   {prefix: `^`, suffix: `\s`},
	core.ExampleDict: {prefix: `^B:(?:.*\s)?`, suffix: `(?![^\s(\[{~])`},
}

// KANJIDIC readings carry okurigana dots and affix hyphens: -いぬ, つか.う
var kanjiDictReadingHigh = anchor{prefix: `(?<![^\s-])`, suffix: `(?![^\s.-])`}

// Romaji high anchors, per style.
//
// EDICT:       a whole slash-delimited gloss, after any (pos) tags
// KANJIDIC:    a whole brace-delimited meaning: {dog}
// Tanaka:      the whole English sentence after the tab
var romajiHigh = [core.NumStyles]anchor{
	core.Edict:       {prefix: `/(?:\([^)]*\)\s*)*`, suffix: `/`},
	core.KanjiDict:   {prefix: `\{`, suffix: `\}`},
	core.ExampleDict: {prefix: `\t`, suffix: `[.!?]?(?:#|$)`},
}

var wordBoundary = anchor{prefix: `\b`, suffix: `\b`}

// filterField bounds a KANJIDIC filter token by whitespace on both sides.
var filterField = anchor{prefix: `(?<!\S)`, suffix: `(?!\S)`}
