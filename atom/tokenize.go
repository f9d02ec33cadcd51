package atom

import (
	"strings"

	"github.com/poiesic/kensaku/core"
)

// DefaultMaxAtoms caps the number of atoms taken from one query.
const DefaultMaxAtoms = 20

// Operator is the AND operator separating atoms.
const Operator = "&"

// Tokenize splits a normalized query on "&" into at most maxAtoms atoms.
//
// Surrounding whitespace is trimmed from every atom and empty atoms (from
// leading, trailing or doubled operators) are dropped. Atoms past the cap are
// silently discarded. A non-positive maxAtoms means DefaultMaxAtoms.
// There is no escape for a literal "&".
func Tokenize(normalized string, maxAtoms int) []core.Atom {
	if maxAtoms <= 0 {
		maxAtoms = DefaultMaxAtoms
	}

	atoms := make([]core.Atom, 0, min(maxAtoms, strings.Count(normalized, Operator)+1))
	for part := range strings.SplitSeq(normalized, Operator) {
		if len(atoms) == maxAtoms {
			break
		}
		text := strings.TrimSpace(part)
		if text == "" {
			continue
		}
		atoms = append(atoms, core.Atom{Index: len(atoms), Text: text})
	}
	return atoms
}

// Split runs the tokenization step for a compilation style.
// KanjiDict queries have their filters extracted first; filter atoms come
// before the remaining terms and count against maxAtoms.
func Split(query core.Query, style core.Style, maxAtoms int) []core.Atom {
	if style != core.KanjiDict {
		return Tokenize(query.Normalized, maxAtoms)
	}
	if maxAtoms <= 0 {
		maxAtoms = DefaultMaxAtoms
	}

	filters, rest := ExtractFilters(query.Normalized)
	if len(filters) >= maxAtoms {
		return filters[:maxAtoms]
	}

	atoms := filters
	for _, a := range Tokenize(rest, maxAtoms-len(filters)) {
		a.Index = len(atoms)
		atoms = append(atoms, a)
	}
	return atoms
}
