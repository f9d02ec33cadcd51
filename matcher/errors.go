package matcher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/poiesic/kensaku/core"
)

// ErrPartialCompile is wrapped by every *CompileError.
var ErrPartialCompile = errors.New("partial compile")

// CellError records why one table cell failed to compile.
type CellError struct {
	Cell   core.Cell
	Source string
	Err    error
}

func (e CellError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Cell, e.Source, e.Err)
}

// CompileError lists the cells that failed to compile. The table returned
// alongside it holds every other cell.
type CompileError struct {
	FailedCells []CellError
}

func (e *CompileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: %d cell(s) failed", ErrPartialCompile, len(e.FailedCells))
	for i, fc := range e.FailedCells {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(fc.Error())
	}
	return b.String()
}

func (e *CompileError) Unwrap() error {
	return ErrPartialCompile
}

// Cells returns the addresses of the failed cells.
func (e *CompileError) Cells() []core.Cell {
	cells := make([]core.Cell, len(e.FailedCells))
	for i, fc := range e.FailedCells {
		cells[i] = fc.Cell
	}
	return cells
}

// merge appends other's failures to e, allocating e when needed.
func (e *CompileError) merge(other *CompileError) *CompileError {
	if other == nil {
		return e
	}
	if e == nil {
		e = &CompileError{}
	}
	e.FailedCells = append(e.FailedCells, other.FailedCells...)
	return e
}
