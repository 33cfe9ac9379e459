// Package cell defines binary cell representations and conversions between
// them.
package cell

// State is the two-valued state of a Basic cell.
type State uint8

const (
	// Dead is the zero state.
	Dead State = iota
	// Alive marks a live cell.
	Alive
)

// String returns the lowercase state name.
func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Reader is implemented by anything that can report a binary state.
type Reader interface {
	IsAlive() bool
}

// Cell is the constraint satisfied by a binary cell representation C. Alive
// and Dead act as constructors and are called on the zero value of C.
type Cell[C any] interface {
	Reader
	Alive() C
	Dead() C
}

// FromBool builds a C in the state given by alive.
func FromBool[C Cell[C]](alive bool) C {
	var zero C
	if alive {
		return zero.Alive()
	}
	return zero.Dead()
}

// Convert maps any cell onto the representation To.
func Convert[To Cell[To]](from Reader) To {
	return FromBool[To](from.IsAlive())
}

// Basic stores its state as a State value. The zero Basic is dead.
type Basic struct {
	state State
}

// Alive returns a live Basic cell.
func (Basic) Alive() Basic { return Basic{state: Alive} }

// Dead returns a dead Basic cell.
func (Basic) Dead() Basic { return Basic{state: Dead} }

// IsAlive reports whether the cell is alive.
func (b Basic) IsAlive() bool { return b.state == Alive }

// State returns the cell state.
func (b Basic) State() State { return b.state }

func (b Basic) String() string { return b.state.String() }

// Bit is a byte-sized cell holding 0 or 1, matching the layout the pixel
// renderer consumes.
type Bit uint8

// Alive returns 1.
func (Bit) Alive() Bit { return 1 }

// Dead returns 0.
func (Bit) Dead() Bit { return 0 }

// IsAlive reports whether the bit is set.
func (b Bit) IsAlive() bool { return b != 0 }
