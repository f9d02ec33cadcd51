package query

import (
	"github.com/poiesic/kensaku/core"
	"github.com/poiesic/kensaku/matcher"
	"github.com/poiesic/kensaku/script"
)

// Monitor provides hooks to observe query compilation.
// Implement this interface to track intermediate steps of the pipeline.
type Monitor interface {
	Start(style core.Style, raw string)
	CacheHit(style core.Style, table *matcher.Table)
	AfterNormalize(query core.Query)
	AfterTokenize(atoms []core.Atom)
	AfterClassify(atom core.Atom, classification script.Classification)
	AfterBuild(atom core.Atom, patterns core.TieredPatternSet)
	CompileFailed(err *matcher.CompileError)
	Finish(table *matcher.Table)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.Style, _ string)                       {}
func (n *noopMonitor) CacheHit(_ core.Style, _ *matcher.Table)            {}
func (n *noopMonitor) AfterNormalize(_ core.Query)                        {}
func (n *noopMonitor) AfterTokenize(_ []core.Atom)                        {}
func (n *noopMonitor) AfterClassify(_ core.Atom, _ script.Classification) {}
func (n *noopMonitor) AfterBuild(_ core.Atom, _ core.TieredPatternSet)    {}
func (n *noopMonitor) CompileFailed(_ *matcher.CompileError)              {}
func (n *noopMonitor) Finish(_ *matcher.Table)                            {}
