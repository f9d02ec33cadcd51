package kensaku

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/poiesic/kensaku/core"
	"github.com/poiesic/kensaku/matcher"
	"github.com/poiesic/kensaku/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()
	opts = append([]EngineOption{WithLocale(prefs.StaticLocale(false))}, opts...)
	e, err := NewEngine(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return e
}

func TestNewEngine(t *testing.T) {
	t.Run("in memory by default", func(t *testing.T) {
		e := newTestEngine(t)
		assert.NotNil(t, e.Preferences())
		assert.NotNil(t, e.cache)
		assert.NotNil(t, e.ranker)
		assert.Equal(t, prefs.DefaultConfig(), e.Config())
	})

	t.Run("with store path", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "prefs")
		e := newTestEngine(t, WithConfig(prefs.NewConfig(prefs.WithStorePath(dir))))
		require.NotNil(t, e)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(tmpFile, []byte("test"), 0644))

		e, err := NewEngine(WithConfig(prefs.NewConfig(prefs.WithStorePath(tmpFile))))
		assert.Error(t, err)
		assert.Nil(t, e)
	})

	t.Run("error with invalid config", func(t *testing.T) {
		_, err := NewEngine(WithConfig(prefs.NewConfig(prefs.WithRomajiKanaMode(prefs.RomajiKanaMode(4)))))
		assert.ErrorIs(t, err, prefs.ErrInvalidConfig)
	})
}

func TestEngine_Compile(t *testing.T) {
	e := newTestEngine(t)

	table, err := e.Compile(core.Edict, "犬&cat")
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, core.Kanji, table.Class(0))
	assert.Equal(t, core.Romaji, table.Class(1))

	again, err := e.Compile(core.Edict, "犬&cat")
	require.NoError(t, err)
	assert.Same(t, table, again)
}

func TestEngine_EnglishWordSpelledAsRomaji(t *testing.T) {
	const gloss = "名 [な] /(n) name/"

	t.Run("default config converts to kana", func(t *testing.T) {
		e := newTestEngine(t)
		table, err := e.Compile(core.Edict, "name")
		require.NoError(t, err)
		assert.Equal(t, core.Furigana, table.Class(0))
		assert.Equal(t, core.RelevanceNone, table.Relevance(gloss))
	})

	t.Run("never mode searches as typed", func(t *testing.T) {
		e := newTestEngine(t, WithConfig(prefs.NewConfig(prefs.WithRomajiKanaMode(prefs.RomajiKanaNever))))
		table, err := e.Compile(core.Edict, "name")
		require.NoError(t, err)
		assert.Equal(t, core.Romaji, table.Class(0))
		assert.Equal(t, core.RelevanceHigh, table.Relevance(gloss))
	})
}

func TestEngine_PreferencesAffectCompilation(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	table, err := e.Compile(core.Edict, "inu")
	require.NoError(t, err)
	assert.Equal(t, core.Furigana, table.Class(0))
	assert.Contains(t, table.Source(0, core.Exists), "イヌ")

	require.NoError(t, e.Preferences().SetInt(ctx, prefs.KeyRomajiKanaMode, int(prefs.RomajiKanaNever)))
	table, err = e.Compile(core.Edict, "inu")
	require.NoError(t, err)
	assert.Equal(t, core.Romaji, table.Class(0))
}

func TestEngine_JapaneseLocale(t *testing.T) {
	e := newTestEngine(t, WithLocale(prefs.StaticLocale(true)))

	assert.False(t, e.TranslitOptions().WantRomajiToKana)
	table, err := e.Compile(core.Edict, "inu")
	require.NoError(t, err)
	assert.Equal(t, core.Romaji, table.Class(0))
}

func TestEngine_Rank(t *testing.T) {
	e := newTestEngine(t)
	lines := []string{
		"猫 [ねこ] /(n) cat/",
		"子犬 [こいぬ] /(n) puppy/small dog/",
		"犬 [いぬ] /(n) dog/(P)/",
	}

	hits, err := e.Rank(context.Background(), core.Edict, "犬&dog", lines)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, 2, hits[0].Index)
	assert.Equal(t, core.RelevanceHigh, hits[0].Relevance)
	assert.Equal(t, 1, hits[1].Index)
	assert.Equal(t, core.RelevanceMedium, hits[1].Relevance)

	t.Run("partial compile still ranks", func(t *testing.T) {
		hits, err := e.Rank(context.Background(), core.Edict, "犬&dog&a[", lines)
		assert.ErrorIs(t, err, matcher.ErrPartialCompile)
		assert.Len(t, hits, 2)
	})

	t.Run("invalid style", func(t *testing.T) {
		_, err := e.Rank(context.Background(), core.Style(9), "犬", lines)
		assert.ErrorIs(t, err, core.ErrInvalidStyle)
	})
}

func TestEngine_ConcurrentCompile(t *testing.T) {
	e := newTestEngine(t)
	queries := []string{"犬", "猫&cat", "日本語学", "inu"}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			style := core.Styles[i%core.NumStyles]
			table, err := e.Compile(style, queries[i%len(queries)])
			assert.NoError(t, err)
			assert.NotNil(t, table)
		}()
	}
	wg.Wait()
}
