package matcher

import (
	"errors"
	"testing"

	"github.com/poiesic/kensaku/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edictEntries() []Entry {
	return []Entry{
		{
			Atom:     core.Atom{Index: 0, Text: "犬"},
			Class:    core.Kanji,
			Patterns: core.TieredPatternSet{"(犬)", "(犬)", `(?<![^\[;])(犬)(?![^\];\s(])`, "(犬)"},
		},
		{
			Atom:     core.Atom{Index: 1, Text: "dog"},
			Class:    core.Romaji,
			Patterns: core.TieredPatternSet{"dog", "dog", `/(?:\([^)]*\)\s*)*(dog)/`, `\b(dog)\b`},
		},
	}
}

func TestCompileQuery(t *testing.T) {
	c, err := NewCompiler()
	require.NoError(t, err)

	q := core.Query{Raw: "犬&dog", Normalized: "犬&dog"}
	table, err := c.CompileQuery(q, edictEntries())
	require.NoError(t, err)

	assert.Equal(t, q, table.Query())
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, core.Kanji, table.Class(0))
	assert.Equal(t, core.Romaji, table.Class(1))
	assert.Equal(t, "dog", table.Atom(1).Text)
	assert.Len(t, table.Atoms(), 2)

	for i := 0; i < table.Len(); i++ {
		for _, tier := range core.Tiers {
			m, ok := table.Lookup(i, table.Class(i), tier)
			require.True(t, ok)
			assert.Equal(t, table.Source(i, tier), m.Source())
		}
	}

	t.Run("lookup with wrong class", func(t *testing.T) {
		_, ok := table.Lookup(0, core.Furigana, core.Exists)
		assert.False(t, ok)
	})

	t.Run("lookup out of range", func(t *testing.T) {
		_, ok := table.Lookup(5, core.Kanji, core.Exists)
		assert.False(t, ok)
		_, ok = table.Lookup(0, core.Kanji, core.Tier(9))
		assert.False(t, ok)
	})

	t.Run("all iterates populated cells", func(t *testing.T) {
		count := 0
		for cell, m := range table.All() {
			assert.Equal(t, cell, m.Cell())
			count++
		}
		assert.Equal(t, 2*core.NumTiers, count)
	})
}

func TestCompileQuery_PartialFailure(t *testing.T) {
	c, err := NewCompiler()
	require.NoError(t, err)

	entries := edictEntries()
	entries = append(entries, Entry{
		Atom:     core.Atom{Index: 2, Text: "a["},
		Class:    core.Mixed,
		Patterns: core.TieredPatternSet{"a[", "a[", `/(?:\([^)]*\)\s*)*(a[)/`, `\b(a[)\b`},
	})

	table, err := c.CompileQuery(core.Query{Raw: "犬&dog&a["}, entries)
	require.Error(t, err)
	require.NotNil(t, table)
	assert.ErrorIs(t, err, ErrPartialCompile)

	var ce *CompileError
	require.True(t, errors.As(err, &ce))
	assert.Len(t, ce.FailedCells, core.NumTiers)
	for _, cell := range ce.Cells() {
		assert.Equal(t, 2, cell.Atom)
	}

	// The other atoms are intact.
	for i := 0; i < 2; i++ {
		for _, tier := range core.Tiers {
			assert.NotNil(t, table.Matcher(i, tier))
		}
	}
	for _, tier := range core.Tiers {
		assert.Nil(t, table.Matcher(2, tier))
		assert.False(t, table.Exists(2, tier, "a["))
	}
	assert.Equal(t, "a[", table.Source(2, core.Exists))

	// Degraded matching still works with the compiled atoms.
	assert.Equal(t, core.RelevanceHigh, table.Relevance("犬 [いぬ] /(n) dog/"))
}

func TestCompileQuery_InvalidEntries(t *testing.T) {
	c, err := NewCompiler()
	require.NoError(t, err)

	entries := edictEntries()
	entries = append(entries,
		Entry{Atom: core.Atom{Index: 2, Text: "  "}, Class: core.Romaji, Patterns: uniform("x")},
		Entry{Atom: core.Atom{Index: 3, Text: "cat"}, Class: core.ScriptClass(9), Patterns: uniform("cat")},
	)

	table, err := c.CompileQuery(core.Query{Raw: "犬&dog"}, entries)
	require.Error(t, err)
	require.NotNil(t, table)
	assert.ErrorIs(t, err, ErrPartialCompile)

	var ce *CompileError
	require.True(t, errors.As(err, &ce))
	require.Len(t, ce.FailedCells, 2*core.NumTiers)
	for _, fc := range ce.FailedCells[:core.NumTiers] {
		assert.Equal(t, 2, fc.Cell.Atom)
		assert.ErrorIs(t, fc.Err, core.ErrInvalidAtom)
		assert.ErrorIs(t, fc.Err, core.ErrEmptyAtom)
	}
	for _, fc := range ce.FailedCells[core.NumTiers:] {
		assert.Equal(t, 3, fc.Cell.Atom)
		assert.ErrorIs(t, fc.Err, core.ErrInvalidScriptClass)
	}

	assert.Equal(t, 4, table.Len())
	for _, tier := range core.Tiers {
		assert.Nil(t, table.Matcher(2, tier))
		assert.Nil(t, table.Matcher(3, tier))
		assert.NotNil(t, table.Matcher(0, tier))
	}
	assert.Equal(t, core.RelevanceHigh, table.Relevance("犬 [いぬ] /(n) dog/"))
}

func TestTable_OutOfRangeAtom(t *testing.T) {
	c, err := NewCompiler()
	require.NoError(t, err)
	table, err := c.CompileQuery(core.Query{}, edictEntries())
	require.NoError(t, err)

	for _, i := range []int{-1, 2, 100} {
		assert.NotPanics(t, func() {
			assert.Nil(t, table.Matcher(i, core.Exists))
			assert.False(t, table.Exists(i, core.Exists, "犬 dog"))
			span, ok := table.FindFirst(i, core.Locate, "犬 dog")
			assert.False(t, ok)
			assert.Equal(t, core.Span{}, span)
		})
	}
}

func TestTable_Relevance(t *testing.T) {
	c, err := NewCompiler()
	require.NoError(t, err)
	table, err := c.CompileQuery(core.Query{Raw: "犬&dog"}, edictEntries())
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want core.Relevance
	}{
		{name: "headword and whole gloss", text: "犬 [いぬ] /(n) dog/(P)/", want: core.RelevanceHigh},
		{name: "word inside gloss", text: "犬 [いぬ] /(n) small dog/", want: core.RelevanceMedium},
		{name: "substring only", text: "番犬 [ばんけん] /watchdog/", want: core.RelevanceLow},
		{name: "missing atom", text: "猫 [ねこ] /(n) cat/", want: core.RelevanceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Relevance(tt.text))
		})
	}

	empty, err := c.CompileQuery(core.Query{}, nil)
	require.NoError(t, err)
	assert.Equal(t, core.RelevanceNone, empty.Relevance("anything"))
}

func TestTable_Highlight(t *testing.T) {
	c, err := NewCompiler()
	require.NoError(t, err)
	table, err := c.CompileQuery(core.Query{}, []Entry{
		{Atom: core.Atom{Index: 0, Text: "dog"}, Class: core.Romaji, Patterns: uniform("dog")},
		{Atom: core.Atom{Index: 1, Text: "og h"}, Class: core.Romaji, Patterns: uniform("og h")},
		{Atom: core.Atom{Index: 2, Text: "犬"}, Class: core.Kanji, Patterns: uniform("(犬)")},
	})
	require.NoError(t, err)

	text := "犬 dog house dog"
	spans := table.Highlight(text)
	require.Len(t, spans, 3)
	assert.Equal(t, "犬", text[spans[0].Start:spans[0].End])
	assert.Equal(t, "dog h", text[spans[1].Start:spans[1].End])
	assert.Equal(t, "dog", text[spans[2].Start:spans[2].End])

	assert.Nil(t, table.Highlight("nothing here"))
}

func TestTable_Fingerprint(t *testing.T) {
	c, err := NewCompiler()
	require.NoError(t, err)

	t1, err := c.CompileQuery(core.Query{Raw: "犬&dog"}, edictEntries())
	require.NoError(t, err)
	t2, err := c.CompileQuery(core.Query{Raw: "犬&dog"}, edictEntries())
	require.NoError(t, err)
	assert.Equal(t, t1.Fingerprint(), t2.Fingerprint())
	assert.Equal(t, t1.Sources(), t2.Sources())
	assert.Len(t, t1.Sources(), 2*core.NumTiers)

	entries := edictEntries()[:1]
	t3, err := c.CompileQuery(core.Query{Raw: "犬"}, entries)
	require.NoError(t, err)
	assert.NotEqual(t, t1.Fingerprint(), t3.Fingerprint())
}
