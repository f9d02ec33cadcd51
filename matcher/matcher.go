package matcher

import (
	"github.com/dlclark/regexp2"

	"github.com/poiesic/kensaku/core"
)

// Matcher is one compiled cell of a Table.
type Matcher struct {
	re   *regexp2.Regexp
	cell core.Cell
}

// Cell returns the table address the matcher was compiled for.
func (m *Matcher) Cell() core.Cell {
	return m.cell
}

// Tier returns the relevance tier of the matcher.
func (m *Matcher) Tier() core.Tier {
	return m.cell.Tier
}

// Source returns the pattern source the matcher was compiled from.
func (m *Matcher) Source() string {
	return m.re.String()
}

func (m *Matcher) String() string {
	return m.cell.String() + " " + m.re.String()
}

// Exists reports whether the pattern occurs anywhere in text.
// A match that times out counts as no match.
func (m *Matcher) Exists(text string) bool {
	ok, err := m.re.MatchString(text)
	return err == nil && ok
}

// FindFirst returns the byte span of the leftmost match in text.
func (m *Matcher) FindFirst(text string) (core.Span, bool) {
	match, err := m.re.FindStringMatch(text)
	if err != nil || match == nil {
		return core.Span{}, false
	}
	offsets := runeOffsets(text)
	return core.Span{
		Start: offsets[match.Index],
		End:   offsets[match.Index+match.Length],
	}, true
}

// FindAll returns the byte spans of every non-overlapping match in text.
// Empty matches are skipped.
func (m *Matcher) FindAll(text string) []core.Span {
	match, err := m.re.FindStringMatch(text)
	if err != nil || match == nil {
		return nil
	}

	offsets := runeOffsets(text)
	var spans []core.Span
	for match != nil {
		if match.Length > 0 {
			spans = append(spans, core.Span{
				Start: offsets[match.Index],
				End:   offsets[match.Index+match.Length],
			})
		}
		if match, err = m.re.FindNextMatch(match); err != nil {
			break
		}
	}
	return spans
}

// runeOffsets maps rune indexes (as reported by regexp2) to byte offsets.
// The extra final entry is len(text).
func runeOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	return append(offsets, len(text))
}
