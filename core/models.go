package core

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ScriptClass identifies which writing system an atom is written in.
// Exactly one class is assigned to an atom per compilation pass.
type ScriptClass int

const (
	// Kanji covers pure ideographic text and kanji-ish mixtures such as 食べる.
	Kanji ScriptClass = iota
	// Furigana covers text written entirely in hiragana and/or katakana.
	Furigana
	// Romaji covers ASCII-letter text.
	Romaji
	// Mixed is the fallback for anything the other classes reject.
	Mixed
)

// NumScriptClasses is the number of defined script classes.
const NumScriptClasses = 4

// ScriptClasses lists every class in classification order.
var ScriptClasses = [NumScriptClasses]ScriptClass{Kanji, Furigana, Romaji, Mixed}

func (c ScriptClass) String() string {
	switch c {
	case Kanji:
		return "kanji"
	case Furigana:
		return "furigana"
	case Romaji:
		return "romaji"
	case Mixed:
		return "mixed"
	}
	return fmt.Sprintf("ScriptClass(%d)", int(c))
}

// Tier is a relevance tier. Each tier carries its own matching semantic.
type Tier int

const (
	// Exists answers whether the pattern occurs anywhere.
	Exists Tier = iota
	// Locate reports occurrence offsets for highlighting.
	Locate
	// High is anchored to a whole field and signals a primary match.
	High
	// Medium is loosely bound and signals a secondary match.
	Medium
)

// NumTiers is the number of defined relevance tiers.
const NumTiers = 4

// Tiers lists every tier in table order.
var Tiers = [NumTiers]Tier{Exists, Locate, High, Medium}

func (t Tier) String() string {
	switch t {
	case Exists:
		return "exists"
	case Locate:
		return "locate"
	case High:
		return "high"
	case Medium:
		return "medium"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Style selects how a query is tokenized, classified and anchored.
// Each dictionary format gets its own style.
type Style int

const (
	// Edict is the JMdict/EDICT word dictionary format.
	Edict Style = iota
	// KanjiDict is the KANJIDIC per-character format.
	KanjiDict
	// ExampleDict is the Tanaka-corpus example sentence format.
	ExampleDict
)

// NumStyles is the number of defined compilation styles.
const NumStyles = 3

// Styles lists every compilation style.
var Styles = [NumStyles]Style{Edict, KanjiDict, ExampleDict}

func (s Style) String() string {
	switch s {
	case Edict:
		return "edict"
	case KanjiDict:
		return "kanjidict"
	case ExampleDict:
		return "exampledict"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle converts a style name (as printed by String) back to a Style.
// Matching is case-insensitive.
func ParseStyle(name string) (Style, error) {
	for _, s := range Styles {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStyle, name)
}

// FilterKind marks atoms that were pre-extracted as KANJIDIC filters.
type FilterKind int

const (
	// FilterNone marks a regular query term.
	FilterNone FilterKind = iota
	// FilterStrokes matches the stroke count field (S<n>).
	FilterStrokes
	// FilterFrequency matches the frequency rank field (F<n>).
	FilterFrequency
	// FilterGrade matches the school grade field (G<n>).
	FilterGrade
	// FilterJLPT matches the JLPT level field (J<n>).
	FilterJLPT
)

// Prefix returns the KANJIDIC field letter for the filter.
func (f FilterKind) Prefix() string {
	switch f {
	case FilterStrokes:
		return "S"
	case FilterFrequency:
		return "F"
	case FilterGrade:
		return "G"
	case FilterJLPT:
		return "J"
	}
	return ""
}

// Query is a raw query string together with its normalized copy.
type Query struct {
	Raw        string
	Normalized string
}

// Atom is one AND-separated term of a query.
// Text is a slice of the normalized query and shares its backing storage.
type Atom struct {
	Index  int
	Text   string
	Filter FilterKind // FilterNone unless extracted as a KANJIDIC filter
}

// IsFilter reports whether the atom was extracted as a KANJIDIC filter.
func (a Atom) IsFilter() bool {
	return a.Filter != FilterNone
}

// TranslitOptions controls which transliterated variants the pattern builder adds.
type TranslitOptions struct {
	WantRomajiToKana       bool
	WantHiraganaToKatakana bool
	WantKatakanaToHiragana bool
}

// TieredPatternSet holds one pattern source per relevance tier.
type TieredPatternSet [NumTiers]string

// Get returns the pattern source for a tier.
func (p TieredPatternSet) Get(tier Tier) string {
	return p[tier]
}

// Cell addresses one entry of a matcher table.
type Cell struct {
	Atom  int
	Class ScriptClass
	Tier  Tier
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%s,%s)", c.Atom, c.Class, c.Tier)
}

// Relevance ranks how well a piece of dictionary text matches a whole query.
type Relevance int

const (
	// RelevanceNone means at least one atom does not occur in the text.
	RelevanceNone Relevance = iota
	// RelevanceLow means every atom occurs but not every medium matcher agrees.
	RelevanceLow
	// RelevanceMedium means every atom's medium matcher agrees.
	RelevanceMedium
	// RelevanceHigh means every atom's high matcher agrees.
	RelevanceHigh
)

func (r Relevance) String() string {
	switch r {
	case RelevanceNone:
		return "none"
	case RelevanceLow:
		return "low"
	case RelevanceMedium:
		return "medium"
	case RelevanceHigh:
		return "high"
	}
	return fmt.Sprintf("Relevance(%d)", int(r))
}

// Span is a half-open byte range [Start, End) inside a piece of text.
type Span struct {
	Start int
	End   int
}

// Fingerprint is a content hash over a set of pattern sources.
type Fingerprint uint64

// FingerprintFromSources hashes pattern sources with BLAKE2b.
// Identical source lists produce identical fingerprints.
func FingerprintFromSources(sources ...string) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	for _, src := range sources {
		h.Write([]byte(src))
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}

func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", uint64(f))
}
