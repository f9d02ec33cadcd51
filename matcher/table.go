package matcher

import (
	"iter"
	"slices"

	"github.com/poiesic/kensaku/core"
)

type tableEntry struct {
	atom     core.Atom
	class    core.ScriptClass
	sources  core.TieredPatternSet
	matchers TieredMatcherSet
}

// Table is the compiled form of a query: one script class and four tiers per
// atom, in atom order. It is immutable once built.
type Table struct {
	query   core.Query
	entries []tableEntry
}

// Query returns the query the table was compiled from.
func (t *Table) Query() core.Query {
	return t.query
}

// Len returns the number of atoms.
func (t *Table) Len() int {
	return len(t.entries)
}

// Atom returns atom i.
func (t *Table) Atom(i int) core.Atom {
	return t.entries[i].atom
}

// Atoms returns every atom in order.
func (t *Table) Atoms() []core.Atom {
	atoms := make([]core.Atom, len(t.entries))
	for i, e := range t.entries {
		atoms[i] = e.atom
	}
	return atoms
}

// Class returns the script class assigned to atom i.
func (t *Table) Class(i int) core.ScriptClass {
	return t.entries[i].class
}

// Lookup returns the matcher at (atom, class, tier). ok is false when the
// atom is out of range, has a different class, or the cell failed to compile.
func (t *Table) Lookup(atom int, class core.ScriptClass, tier core.Tier) (*Matcher, bool) {
	if atom < 0 || atom >= len(t.entries) || core.ValidateTier(tier) != nil {
		return nil, false
	}
	e := t.entries[atom]
	if e.class != class || e.matchers[tier] == nil {
		return nil, false
	}
	return e.matchers[tier], true
}

// Matcher returns the matcher for atom i and tier, or nil when the cell is
// empty or i is out of range.
func (t *Table) Matcher(i int, tier core.Tier) *Matcher {
	if i < 0 || i >= len(t.entries) {
		return nil
	}
	m, _ := t.Lookup(i, t.entries[i].class, tier)
	return m
}

// Source returns the pattern source for atom i and tier, compiled or not.
func (t *Table) Source(i int, tier core.Tier) string {
	return t.entries[i].sources.Get(tier)
}

// Sources returns every pattern source, atom by atom in tier order.
func (t *Table) Sources() []string {
	sources := make([]string, 0, len(t.entries)*core.NumTiers)
	for _, e := range t.entries {
		sources = append(sources, e.sources[:]...)
	}
	return sources
}

// Fingerprint hashes every pattern source together with its atom's class.
// Equivalent tables have equal fingerprints.
func (t *Table) Fingerprint() core.Fingerprint {
	parts := make([]string, 0, len(t.entries)*(core.NumTiers+1))
	for _, e := range t.entries {
		parts = append(parts, e.class.String())
		parts = append(parts, e.sources[:]...)
	}
	return core.FingerprintFromSources(parts...)
}

// All iterates over every populated cell in atom and tier order.
func (t *Table) All() iter.Seq2[core.Cell, *Matcher] {
	return func(yield func(core.Cell, *Matcher) bool) {
		for _, e := range t.entries {
			for _, m := range e.matchers {
				if m == nil {
					continue
				}
				if !yield(m.cell, m) {
					return
				}
			}
		}
	}
}

// Exists reports whether atom i's tier matcher occurs in text.
// An empty cell never matches.
func (t *Table) Exists(i int, tier core.Tier, text string) bool {
	m := t.Matcher(i, tier)
	return m != nil && m.Exists(text)
}

// FindFirst returns the leftmost byte span of atom i's tier matcher in text.
func (t *Table) FindFirst(i int, tier core.Tier, text string) (core.Span, bool) {
	m := t.Matcher(i, tier)
	if m == nil {
		return core.Span{}, false
	}
	return m.FindFirst(text)
}

// Relevance ranks text against the whole query.
//
// Every atom must exist in the text for any relevance at all. The result is
// High when every atom's high matcher agrees, Medium when every medium
// matcher agrees, and Low otherwise. Atoms whose Exists cell failed to
// compile are left out; a table with no usable atom never matches.
func (t *Table) Relevance(text string) core.Relevance {
	usable := 0
	high, medium := true, true
	for i := range t.entries {
		exists := t.Matcher(i, core.Exists)
		if exists == nil {
			continue
		}
		usable++
		if !exists.Exists(text) {
			return core.RelevanceNone
		}
		if high && !t.Exists(i, core.High, text) {
			high = false
		}
		if medium && !t.Exists(i, core.Medium, text) {
			medium = false
		}
	}

	switch {
	case usable == 0:
		return core.RelevanceNone
	case high:
		return core.RelevanceHigh
	case medium:
		return core.RelevanceMedium
	}
	return core.RelevanceLow
}

// Highlight returns the sorted, merged byte spans of every atom's Locate
// matches in text.
func (t *Table) Highlight(text string) []core.Span {
	var spans []core.Span
	for i := range t.entries {
		if m := t.Matcher(i, core.Locate); m != nil {
			spans = append(spans, m.FindAll(text)...)
		}
	}
	if len(spans) == 0 {
		return nil
	}

	slices.SortFunc(spans, func(a, b core.Span) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return a.End - b.End
	})

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			last.End = max(last.End, s.End)
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
