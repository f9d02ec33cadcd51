package query

import (
	"errors"
	"testing"

	"github.com/poiesic/kensaku/core"
	"github.com/poiesic/kensaku/matcher"
	"github.com/poiesic/kensaku/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingMonitor records how often each pipeline stage ran.
type countingMonitor struct {
	starts, hits, normalizes, tokenizes, classifies, builds, failures, finishes int

	classes []core.ScriptClass
}

var _ Monitor = (*countingMonitor)(nil)

func (m *countingMonitor) Start(_ core.Style, _ string)            { m.starts++ }
func (m *countingMonitor) CacheHit(_ core.Style, _ *matcher.Table) { m.hits++ }
func (m *countingMonitor) AfterNormalize(_ core.Query)             { m.normalizes++ }
func (m *countingMonitor) AfterTokenize(_ []core.Atom)             { m.tokenizes++ }
func (m *countingMonitor) AfterClassify(_ core.Atom, c script.Classification) {
	m.classifies++
	m.classes = append(m.classes, c.Class)
}
func (m *countingMonitor) AfterBuild(_ core.Atom, _ core.TieredPatternSet) { m.builds++ }
func (m *countingMonitor) CompileFailed(_ *matcher.CompileError)           { m.failures++ }
func (m *countingMonitor) Finish(_ *matcher.Table)                         { m.finishes++ }

func TestNewCache(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := NewCache()
		require.NoError(t, err)
		assert.NotNil(t, c.compiler)
		assert.Equal(t, 20, c.maxAtoms)
	})

	t.Run("nil compiler rejected", func(t *testing.T) {
		_, err := NewCache(WithCompiler(nil))
		assert.ErrorIs(t, err, ErrCompilerRequired)
	})

	t.Run("non-positive max atoms rejected", func(t *testing.T) {
		_, err := NewCache(WithMaxAtoms(0))
		assert.ErrorIs(t, err, ErrInvalidMaxAtoms)
	})
}

func TestCompileForStyle_EndToEnd(t *testing.T) {
	monitor := &countingMonitor{}
	c, err := NewCache(
		WithMonitor(monitor),
		WithTranslitOptions(core.TranslitOptions{WantRomajiToKana: true, WantHiraganaToKatakana: true}),
	)
	require.NoError(t, err)

	table, err := c.CompileForStyle(core.Edict, "犬&cat")
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	assert.Equal(t, core.Kanji, table.Class(0))
	assert.Equal(t, core.Romaji, table.Class(1))
	assert.Equal(t, []core.ScriptClass{core.Kanji, core.Romaji}, monitor.classes)

	locate, ok := table.Lookup(0, core.Kanji, core.Locate)
	require.True(t, ok)
	text := "結果：犬です"
	span, found := locate.FindFirst(text)
	require.True(t, found)
	assert.Equal(t, "犬", text[span.Start:span.End])
	span, found = locate.FindFirst("犬")
	require.True(t, found)
	assert.Equal(t, 0, span.Start)

	medium, ok := table.Lookup(1, core.Romaji, core.Medium)
	require.True(t, ok)
	assert.Equal(t, `\b(cat)\b`, medium.Source())
	assert.True(t, medium.Exists("a cat sat"))
	assert.False(t, medium.Exists("category"))

	assert.Equal(t, core.RelevanceHigh, table.Relevance("犬 [いぬ] /(n) cat/"))
}

func TestCompileForStyle_CacheHit(t *testing.T) {
	monitor := &countingMonitor{}
	c, err := NewCache(WithMonitor(monitor))
	require.NoError(t, err)

	first, err := c.CompileForStyle(core.Edict, "犬&cat")
	require.NoError(t, err)
	assert.Equal(t, 1, monitor.tokenizes)
	assert.Equal(t, 2, monitor.classifies)

	second, err := c.CompileForStyle(core.Edict, "犬&cat")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, monitor.hits)
	assert.Equal(t, 1, monitor.normalizes)
	assert.Equal(t, 1, monitor.tokenizes)
	assert.Equal(t, 2, monitor.classifies)
	assert.Equal(t, 2, monitor.builds)
	assert.Equal(t, 2, monitor.finishes)

	third, err := c.CompileForStyle(core.Edict, "猫")
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 2, monitor.tokenizes)

	raw, ok := c.Cached(core.Edict)
	assert.True(t, ok)
	assert.Equal(t, "猫", raw)
}

func TestCompileForStyle_IndependentSlots(t *testing.T) {
	monitor := &countingMonitor{}
	c, err := NewCache(WithMonitor(monitor))
	require.NoError(t, err)

	edict, err := c.CompileForStyle(core.Edict, "犬")
	require.NoError(t, err)
	kanjidic, err := c.CompileForStyle(core.KanjiDict, "犬")
	require.NoError(t, err)
	assert.NotSame(t, edict, kanjidic)
	assert.NotEqual(t, edict.Fingerprint(), kanjidic.Fingerprint())

	// Compiling KanjiDict left the Edict slot alone.
	again, err := c.CompileForStyle(core.Edict, "犬")
	require.NoError(t, err)
	assert.Same(t, edict, again)
	assert.Equal(t, 1, monitor.hits)

	c.Invalidate(core.Edict)
	_, ok := c.Cached(core.Edict)
	assert.False(t, ok)
	_, ok = c.Cached(core.KanjiDict)
	assert.True(t, ok)

	c.Reset()
	_, ok = c.Cached(core.KanjiDict)
	assert.False(t, ok)
}

func TestCompileForStyle_OptionsChangeRecompiles(t *testing.T) {
	opts := core.TranslitOptions{}
	c, err := NewCache(WithOptionsSource(func() core.TranslitOptions { return opts }))
	require.NoError(t, err)

	plain, err := c.CompileForStyle(core.Edict, "inu")
	require.NoError(t, err)
	assert.Equal(t, core.Romaji, plain.Class(0))

	opts.WantRomajiToKana = true
	converted, err := c.CompileForStyle(core.Edict, "inu")
	require.NoError(t, err)
	assert.NotSame(t, plain, converted)
	assert.Equal(t, core.Furigana, converted.Class(0))
	assert.True(t, converted.Exists(0, core.Exists, "犬 [いぬ] /(n) dog/"))
}

func TestCompileForStyle_PartialFailureCached(t *testing.T) {
	monitor := &countingMonitor{}
	c, err := NewCache(WithMonitor(monitor))
	require.NoError(t, err)

	table, err := c.CompileForStyle(core.Edict, "犬&a[")
	require.Error(t, err)
	require.NotNil(t, table)
	assert.ErrorIs(t, err, matcher.ErrPartialCompile)
	assert.Equal(t, 1, monitor.failures)
	assert.NotNil(t, table.Matcher(0, core.Exists))

	again, err2 := c.CompileForStyle(core.Edict, "犬&a[")
	assert.Same(t, table, again)
	assert.True(t, errors.Is(err2, matcher.ErrPartialCompile))
	assert.Equal(t, 1, monitor.tokenizes)
}

func TestCompileForStyle_KanjiDictFilters(t *testing.T) {
	c, err := NewCache()
	require.NoError(t, err)

	table, err := c.CompileForStyle(core.KanjiDict, "S7-8 日")
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.True(t, table.Atom(0).IsFilter())
	assert.Equal(t, "日", table.Atom(1).Text)

	line := "日 467c U65e5 B72 G1 S4 F1 J4 N2097 {day} {sun}"
	assert.False(t, table.Exists(0, core.Exists, line))
	assert.True(t, table.Exists(0, core.Exists, "木 S8 G1"))
}

func TestCompileForStyle_InvalidStyle(t *testing.T) {
	c, err := NewCache()
	require.NoError(t, err)

	_, err = c.CompileForStyle(core.Style(7), "犬")
	assert.ErrorIs(t, err, core.ErrInvalidStyle)
}

func TestCompileForStyleWithMonitor(t *testing.T) {
	cacheMonitor := &countingMonitor{}
	callMonitor := &countingMonitor{}
	c, err := NewCache(WithMonitor(cacheMonitor))
	require.NoError(t, err)

	_, err = c.CompileForStyleWithMonitor(core.ExampleDict, "犬", callMonitor)
	require.NoError(t, err)
	assert.Equal(t, 1, callMonitor.starts)
	assert.Equal(t, 0, cacheMonitor.starts)
}
