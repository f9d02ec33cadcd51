package atom

import (
	"strconv"
	"strings"

	"github.com/poiesic/kensaku/core"
)

var filterKinds = map[byte]core.FilterKind{
	'S': core.FilterStrokes,
	'F': core.FilterFrequency,
	'G': core.FilterGrade,
	'J': core.FilterJLPT,
}

// FilterRange is the parsed form of a KANJIDIC filter token.
type FilterRange struct {
	Kind core.FilterKind
	Lo   int
	Hi   int // equal to Lo for a single value
}

// ParseFilter parses tokens such as "S7", "S7-9", "F120", "G3" or "J2".
// Reversed ranges are swapped.
func ParseFilter(token string) (FilterRange, bool) {
	if len(token) < 2 {
		return FilterRange{}, false
	}
	kind, ok := filterKinds[token[0]]
	if !ok {
		return FilterRange{}, false
	}

	loText, hiText, isRange := strings.Cut(token[1:], "-")
	lo, ok := parseCount(loText)
	if !ok {
		return FilterRange{}, false
	}
	hi := lo
	if isRange {
		if hi, ok = parseCount(hiText); !ok {
			return FilterRange{}, false
		}
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return FilterRange{Kind: kind, Lo: lo, Hi: hi}, true
}

func parseCount(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// ExtractFilters pulls KANJIDIC filter tokens out of a normalized query.
//
// Filters are whitespace-separated tokens anywhere in the query. They are
// returned as atoms in the order they appear, and rest holds the query with
// the filters removed and the AND structure otherwise intact.
func ExtractFilters(normalized string) (filters []core.Atom, rest string) {
	parts := strings.Split(normalized, Operator)
	for i, part := range parts {
		fields := strings.Fields(part)
		kept := fields[:0]
		for _, field := range fields {
			if fr, ok := ParseFilter(field); ok {
				filters = append(filters, core.Atom{
					Index:  len(filters),
					Text:   field,
					Filter: fr.Kind,
				})
				continue
			}
			kept = append(kept, field)
		}
		if len(kept) != len(fields) {
			parts[i] = strings.Join(kept, " ")
		}
	}
	return filters, strings.Join(parts, Operator)
}
