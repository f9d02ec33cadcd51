package query

import (
	"errors"
	"log/slog"

	"github.com/poiesic/kensaku/atom"
	"github.com/poiesic/kensaku/core"
	"github.com/poiesic/kensaku/matcher"
	"github.com/poiesic/kensaku/pattern"
)

// OptionsSource supplies the transliteration options for one compilation.
// It is consulted on every call so preference changes take effect.
type OptionsSource func() core.TranslitOptions

// slot is the memo for a single style.
type slot struct {
	valid bool
	raw   string
	opts  core.TranslitOptions
	table *matcher.Table
	err   error
}

// Cache compiles queries and remembers the last table per style.
type Cache struct {
	slots    [core.NumStyles]slot
	compiler *matcher.Compiler
	options  OptionsSource
	maxAtoms int
	monitor  Monitor
	logger   *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithCompiler sets the matcher compiler.
// Default is a compiler built with matcher defaults and the cache's logger.
func WithCompiler(compiler *matcher.Compiler) Option {
	return func(c *Cache) error {
		if compiler == nil {
			return ErrCompilerRequired
		}
		c.compiler = compiler
		return nil
	}
}

// WithMaxAtoms sets how many atoms are taken from one query.
// Default is atom.DefaultMaxAtoms.
func WithMaxAtoms(n int) Option {
	return func(c *Cache) error {
		if n <= 0 {
			return ErrInvalidMaxAtoms
		}
		c.maxAtoms = n
		return nil
	}
}

// WithTranslitOptions fixes the transliteration options.
// Default is no transliteration.
func WithTranslitOptions(opts core.TranslitOptions) Option {
	return func(c *Cache) error {
		c.options = func() core.TranslitOptions { return opts }
		return nil
	}
}

// WithOptionsSource reads the transliteration options on every compilation.
func WithOptionsSource(src OptionsSource) Option {
	return func(c *Cache) error {
		if src == nil {
			src = func() core.TranslitOptions { return core.TranslitOptions{} }
		}
		c.options = src
		return nil
	}
}

// WithMonitor sets the monitor used when no per-call monitor is given.
func WithMonitor(monitor Monitor) Option {
	return func(c *Cache) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		c.monitor = monitor
		return nil
	}
}

// NewCache creates an empty compilation cache.
func NewCache(opts ...Option) (*Cache, error) {
	c := &Cache{
		options:  func() core.TranslitOptions { return core.TranslitOptions{} },
		maxAtoms: atom.DefaultMaxAtoms,
		monitor:  &noopMonitor{},
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.compiler == nil {
		compiler, err := matcher.NewCompiler(matcher.WithLogger(c.logger))
		if err != nil {
			return nil, err
		}
		c.compiler = compiler
	}

	return c, nil
}

// CompileForStyle returns the matcher table for raw compiled under style.
//
// When the style's slot already holds raw (and the transliteration options
// are unchanged) the stored table is returned without tokenizing or
// classifying anything. Otherwise the slot is replaced. A partially compiled
// table is cached and returned together with its *matcher.CompileError.
func (c *Cache) CompileForStyle(style core.Style, raw string) (*matcher.Table, error) {
	return c.CompileForStyleWithMonitor(style, raw, nil)
}

// CompileForStyleWithMonitor is CompileForStyle with a per-call monitor.
// A nil monitor falls back to the cache's monitor.
func (c *Cache) CompileForStyleWithMonitor(style core.Style, raw string, monitor Monitor) (*matcher.Table, error) {
	if err := core.ValidateStyle(style); err != nil {
		return nil, err
	}
	if monitor == nil {
		monitor = c.monitor
	}

	monitor.Start(style, raw)

	opts := c.options()
	s := &c.slots[style]
	if s.valid && s.raw == raw && s.opts == opts {
		monitor.CacheHit(style, s.table)
		monitor.Finish(s.table)
		return s.table, s.err
	}

	table, err := c.compile(style, raw, opts, monitor)
	*s = slot{valid: true, raw: raw, opts: opts, table: table, err: err}

	monitor.Finish(table)
	return table, err
}

// Cached reports the raw query currently held for style.
func (c *Cache) Cached(style core.Style) (string, bool) {
	if core.ValidateStyle(style) != nil {
		return "", false
	}
	s := c.slots[style]
	return s.raw, s.valid
}

// Invalidate empties the slot for style.
func (c *Cache) Invalidate(style core.Style) {
	if core.ValidateStyle(style) != nil {
		return
	}
	c.slots[style] = slot{}
}

// Reset empties every slot.
func (c *Cache) Reset() {
	c.slots = [core.NumStyles]slot{}
}

func (c *Cache) compile(style core.Style, raw string, opts core.TranslitOptions, monitor Monitor) (*matcher.Table, error) {
	q := atom.Normalize(raw)
	monitor.AfterNormalize(q)

	atoms := atom.Split(q, style, c.maxAtoms)
	monitor.AfterTokenize(atoms)

	entries := make([]matcher.Entry, 0, len(atoms))
	for _, a := range atoms {
		classification := classify(a, opts)
		monitor.AfterClassify(a, classification)

		patterns := pattern.Build(a, classification, opts, style)
		monitor.AfterBuild(a, patterns)

		entries = append(entries, matcher.Entry{
			Atom:     a,
			Class:    classification.Class,
			Patterns: patterns,
		})
	}

	table, err := c.compiler.CompileQuery(q, entries)
	if err != nil {
		var compileErr *matcher.CompileError
		if errors.As(err, &compileErr) {
			monitor.CompileFailed(compileErr)
		}
		c.logger.Debug("query compiled with failures", "style", style, "query", raw, "err", err)
	}
	return table, err
}
