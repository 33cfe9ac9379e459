package generation

import (
	"math/bits"

	"ca1d/internal/boundary"
	"ca1d/internal/cell"
)

// Packed stores a row as a bitset, one bit per cell. Cells materialises the
// requested representation on demand.
type Packed[C cell.Cell[C]] struct {
	words  []uint64
	width  int
	policy boundary.Policy
}

// Pack copies cells into a bitset row.
func Pack[C cell.Cell[C]](cells []C, p boundary.Policy) Packed[C] {
	pk := Packed[C]{words: make([]uint64, (len(cells)+63)/64), width: len(cells), policy: orDefault(p)}
	for i, c := range cells {
		if c.IsAlive() {
			pk.words[i/64] |= 1 << (uint(i) % 64)
		}
	}
	return pk
}

func (p Packed[C]) alive(i int) bool {
	return p.words[i/64]&(1<<(uint(i)%64)) != 0
}

// Cells builds the row in representation C.
func (p Packed[C]) Cells() []C {
	out := make([]C, p.width)
	for i := range out {
		out[i] = cell.FromBool[C](p.alive(i))
	}
	return out
}

// Neighbors gathers neighbour data from the bitset without building cells.
func (p Packed[C]) Neighbors() []boundary.Pair {
	view := make([]bitReader, p.width)
	for i := range view {
		view[i] = bitReader(p.alive(i))
	}
	return boundary.Gather(view, p.policy)
}

// FromCells packs cells with the same boundary policy.
func (p Packed[C]) FromCells(cells []C) Packed[C] { return Pack(cells, p.policy) }

// Len returns the row width.
func (p Packed[C]) Len() int { return p.width }

// Population counts live cells.
func (p Packed[C]) Population() int {
	n := 0
	for _, w := range p.words {
		n += bits.OnesCount64(w)
	}
	return n
}

type bitReader bool

func (b bitReader) IsAlive() bool { return bool(b) }
