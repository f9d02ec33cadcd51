package atom

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/poiesic/kensaku/core"
)

// Normalize produces the normalized copy of a raw query.
//
// Fullwidth ASCII is folded to ASCII and halfwidth katakana to fullwidth,
// combining voicing marks are composed, and runs of whitespace (including the
// ideographic space) collapse to a single ASCII space.
func Normalize(raw string) core.Query {
	folded := width.Fold.String(raw)
	composed := norm.NFC.String(folded)
	return core.Query{
		Raw:        raw,
		Normalized: strings.Join(strings.Fields(composed), " "),
	}
}
