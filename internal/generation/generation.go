// Package generation stores one row of cells and derives the neighbour data a
// rule needs for every position.
package generation

import (
	"ca1d/internal/boundary"
	"ca1d/internal/cell"
)

// Generation is one row of cells. G is the concrete implementation, so that
// FromCells can rebuild a value of the same storage kind.
//
// Neighbors must return exactly one entry per cell, aligned by index.
type Generation[N, C, G any] interface {
	Cells() []C
	Neighbors() []N
	FromCells(cells []C) G
}

// Source supplies independent booleans with an even chance of true.
type Source interface {
	Bool() bool
}

// Row is a slice-backed Generation of two-neighbour binary cells.
type Row[C cell.Cell[C]] struct {
	cells  []C
	policy boundary.Policy
}

// New returns a row of width dead cells. A nil policy means
// boundary.Default.
func New[C cell.Cell[C]](width int, p boundary.Policy) Row[C] {
	if width < 0 {
		width = 0
	}
	var zero C
	cells := make([]C, width)
	for i := range cells {
		cells[i] = zero.Dead()
	}
	return Row[C]{cells: cells, policy: orDefault(p)}
}

// FromCells copies cells into a new row.
func FromCells[C cell.Cell[C]](cells []C, p boundary.Policy) Row[C] {
	return Row[C]{cells: append([]C(nil), cells...), policy: orDefault(p)}
}

// Randomized returns a row whose cells are independently alive with
// probability one half, drawn from src.
func Randomized[C cell.Cell[C]](width int, src Source, p boundary.Policy) Row[C] {
	r := New[C](width, p)
	for i := range r.cells {
		r.cells[i] = cell.FromBool[C](src.Bool())
	}
	return r
}

// Centered returns a dead row with a single live cell at width/2.
func Centered[C cell.Cell[C]](width int, p boundary.Policy) Row[C] {
	r := New[C](width, p)
	if len(r.cells) > 0 {
		var zero C
		r.cells[len(r.cells)/2] = zero.Alive()
	}
	return r
}

// Cells exposes the row. Callers must not modify the returned slice.
func (r Row[C]) Cells() []C { return r.cells }

// Neighbors gathers neighbour data under the row's boundary policy.
func (r Row[C]) Neighbors() []boundary.Pair { return boundary.Gather(r.cells, r.policy) }

// FromCells returns a row over cells with the same boundary policy. The row
// takes ownership of the slice.
func (r Row[C]) FromCells(cells []C) Row[C] {
	return Row[C]{cells: cells, policy: orDefault(r.policy)}
}

// Len returns the row width.
func (r Row[C]) Len() int { return len(r.cells) }

// Policy returns the boundary policy.
func (r Row[C]) Policy() boundary.Policy { return orDefault(r.policy) }

// Population counts live cells.
func (r Row[C]) Population() int { return population(r.cells) }

func orDefault(p boundary.Policy) boundary.Policy {
	if p == nil {
		return boundary.Default
	}
	return p
}

func population[C cell.Reader](cells []C) int {
	n := 0
	for _, c := range cells {
		if c.IsAlive() {
			n++
		}
	}
	return n
}
