package matcher

import (
	"log/slog"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/poiesic/kensaku/core"
)

// DefaultMatchTimeout bounds a single match call.
const DefaultMatchTimeout = 100 * time.Millisecond

// Entry is the input for one atom of a table.
type Entry struct {
	Atom     core.Atom
	Class    core.ScriptClass
	Patterns core.TieredPatternSet
}

// TieredMatcherSet holds one matcher per tier. Entries are nil for cells
// that failed to compile.
type TieredMatcherSet [core.NumTiers]*Matcher

// Compiler turns pattern sources into matchers.
// A Compiler holds no per-query state and may be shared.
type Compiler struct {
	matchTimeout time.Duration
	logger       *slog.Logger
}

// Option configures a Compiler.
type Option func(*Compiler) error

// WithMatchTimeout bounds every match call made by compiled matchers.
// Default is DefaultMatchTimeout. A non-positive value disables the bound.
func WithMatchTimeout(timeout time.Duration) Option {
	return func(c *Compiler) error {
		c.matchTimeout = timeout
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewCompiler creates a new compiler.
func NewCompiler(opts ...Option) (*Compiler, error) {
	c := &Compiler{
		matchTimeout: DefaultMatchTimeout,
		logger:       slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Compile compiles the four sources of one atom.
// Tiers that fail are left nil and reported in the returned *CompileError.
func (c *Compiler) Compile(atomIndex int, class core.ScriptClass, patterns core.TieredPatternSet) (TieredMatcherSet, error) {
	var (
		set     TieredMatcherSet
		failure *CompileError
	)

	for _, tier := range core.Tiers {
		cell := core.Cell{Atom: atomIndex, Class: class, Tier: tier}
		src := patterns.Get(tier)

		re, err := regexp2.Compile(src, regexp2.None)
		if err != nil {
			c.logger.Debug("pattern failed to compile", "cell", cell.String(), "source", src, "err", err)
			failure = failure.merge(&CompileError{FailedCells: []CellError{{Cell: cell, Source: src, Err: err}}})
			continue
		}
		if c.matchTimeout > 0 {
			re.MatchTimeout = c.matchTimeout
		}
		set[tier] = &Matcher{re: re, cell: cell}
	}

	if failure != nil {
		return set, failure
	}
	return set, nil
}

// CompileQuery compiles every entry, in order, into a table for q.
//
// A failing cell never aborts the table: the table is always returned, and
// the error is a *CompileError listing every failed cell, or nil. An entry
// whose atom or class is invalid fails all four of its cells.
func (c *Compiler) CompileQuery(q core.Query, entries []Entry) (*Table, error) {
	table := &Table{
		query:   q,
		entries: make([]tableEntry, 0, len(entries)),
	}

	var failure *CompileError
	for i, e := range entries {
		var (
			set TieredMatcherSet
			err error
		)
		if verr := validateEntry(e); verr != nil {
			c.logger.Debug("entry rejected", "atom", i, "err", verr)
			err = rejectEntry(i, e, verr)
		} else {
			set, err = c.Compile(i, e.Class, e.Patterns)
		}
		if ce, ok := err.(*CompileError); ok {
			failure = failure.merge(ce)
		}
		table.entries = append(table.entries, tableEntry{
			atom:     e.Atom,
			class:    e.Class,
			sources:  e.Patterns,
			matchers: set,
		})
	}

	if failure != nil {
		c.logger.Warn("query compiled partially", "query", q.Raw, "failedCells", len(failure.FailedCells))
		return table, failure
	}
	return table, nil
}

func validateEntry(e Entry) error {
	if err := core.ValidateAtom(&e.Atom); err != nil {
		return err
	}
	return core.ValidateScriptClass(e.Class)
}

// rejectEntry reports every cell of entry i as failed with err.
func rejectEntry(i int, e Entry, err error) *CompileError {
	ce := &CompileError{FailedCells: make([]CellError, 0, core.NumTiers)}
	for _, tier := range core.Tiers {
		ce.FailedCells = append(ce.FailedCells, CellError{
			Cell:   core.Cell{Atom: i, Class: e.Class, Tier: tier},
			Source: e.Patterns.Get(tier),
			Err:    err,
		})
	}
	return ce
}
