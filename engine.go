// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package kensaku

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/poiesic/kensaku/core"
	"github.com/poiesic/kensaku/matcher"
	"github.com/poiesic/kensaku/prefs"
	"github.com/poiesic/kensaku/prefs/badger"
	"github.com/poiesic/kensaku/query"
	"github.com/poiesic/kensaku/rank"
)

// Engine wires the preference store, the compilation cache and the ranker.
// It is safe for concurrent use.
type Engine struct {
	mu     sync.Mutex
	cache  *query.Cache
	store  *badger.Store
	ranker *rank.Ranker
	config *prefs.Config
	locale prefs.LocaleDetector
	logger *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	config   *prefs.Config
	locale   prefs.LocaleDetector
	monitor  query.Monitor
	logger   *slog.Logger
	inMemory bool
}

// WithConfig sets the engine configuration.
// Default is prefs.DefaultConfig().
func WithConfig(cfg *prefs.Config) EngineOption {
	return func(o *engineOptions) {
		o.config = cfg
	}
}

// WithLocale sets the locale detector used by the romaji-kana mode.
// Default reads the process environment.
func WithLocale(locale prefs.LocaleDetector) EngineOption {
	return func(o *engineOptions) {
		o.locale = locale
	}
}

// WithMonitor observes every compilation.
func WithMonitor(monitor query.Monitor) EngineOption {
	return func(o *engineOptions) {
		o.monitor = monitor
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithInMemoryStore keeps preferences in memory even when a store path is configured.
func WithInMemoryStore() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// NewEngine opens the preference store and builds the compilation pipeline.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	// Apply options
	options := &engineOptions{
		config: prefs.DefaultConfig(),
		locale: prefs.NewEnvLocale(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.config == nil {
		options.config = prefs.DefaultConfig()
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}
	cfg := options.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Open preference store
	inMemory := options.inMemory || cfg.StorePath == ""
	backend, err := badger.OpenBackend(cfg.StorePath, inMemory, options.logger)
	if err != nil {
		return nil, err
	}
	store, err := badger.NewStore(backend, cfg)
	if err != nil {
		backend.Close()
		return nil, err
	}

	e := &Engine{
		store:  store,
		config: cfg,
		locale: options.locale,
		logger: options.logger,
	}

	compiler, err := matcher.NewCompiler(
		matcher.WithMatchTimeout(cfg.MatchTimeout),
		matcher.WithLogger(e.logger),
	)
	if err != nil {
		store.Close()
		return nil, err
	}

	cacheOpts := []query.Option{
		query.WithCompiler(compiler),
		query.WithMaxAtoms(cfg.MaxAtoms),
		query.WithOptionsSource(e.TranslitOptions),
		query.WithLogger(e.logger),
	}
	if options.monitor != nil {
		cacheOpts = append(cacheOpts, query.WithMonitor(options.monitor))
	}
	e.cache, err = query.NewCache(cacheOpts...)
	if err != nil {
		store.Close()
		return nil, err
	}

	e.ranker, err = rank.NewRanker(rank.WithPoolSize(cfg.PoolSize), rank.WithLogger(e.logger))
	if err != nil {
		store.Close()
		return nil, err
	}

	return e, nil
}

// TranslitOptions resolves the current preferences into transliteration options.
func (e *Engine) TranslitOptions() core.TranslitOptions {
	return prefs.Resolve(e.store, e.locale)
}

// Compile returns the matcher table for raw under style, reusing the last
// table compiled for that style when raw is unchanged. A partial table is
// returned together with its *matcher.CompileError.
func (e *Engine) Compile(style core.Style, raw string) (*matcher.Table, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cache.CompileForStyle(style, raw)
}

// Rank compiles raw under style and ranks entries against it.
// When only some matchers compiled the hits from the usable ones are returned
// together with the compile error.
func (e *Engine) Rank(ctx context.Context, style core.Style, raw string, entries []string) ([]rank.Hit, error) {
	table, compileErr := e.Compile(style, raw)
	if table == nil {
		return nil, compileErr
	}
	if compileErr != nil && !errors.Is(compileErr, matcher.ErrPartialCompile) {
		return nil, compileErr
	}

	hits, err := e.ranker.Rank(ctx, table, entries)
	if err != nil {
		return nil, err
	}
	return hits, compileErr
}

// Preferences returns the persistent preference store.
func (e *Engine) Preferences() *badger.Store {
	return e.store
}

// Config returns the engine configuration.
func (e *Engine) Config() *prefs.Config {
	return e.config
}

// Close releases the ranker and closes the preference store.
func (e *Engine) Close() error {
	e.ranker.Release()

	if err := e.store.Close(); err != nil {
		e.logger.Error("error closing preference store", "err", err)
		return err
	}
	return nil
}
