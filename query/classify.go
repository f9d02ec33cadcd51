package query

import (
	"github.com/poiesic/kensaku/core"
	"github.com/poiesic/kensaku/kana"
	"github.com/poiesic/kensaku/script"
)

// classify assigns the script class an atom is compiled under.
//
// Romaji is promoted to furigana when the options ask for romaji-to-kana
// conversion and the text actually converts; unconvertible romaji such as
// "cat" stays romaji so it keeps its word-boundary matchers.
func classify(a core.Atom, opts core.TranslitOptions) script.Classification {
	c := script.Classify(a.Text)
	if a.IsFilter() || c.Class != core.Romaji || !opts.WantRomajiToKana {
		return c
	}
	if _, err := kana.RomajiToHiragana(a.Text); err != nil {
		return c
	}
	c.Class = core.Furigana
	return c
}
