// Package boundary gathers per-position neighbour data for a row of cells and
// decides what lies beyond the row edges.
package boundary

import (
	"errors"
	"fmt"
	"sort"

	"ca1d/internal/cell"
)

// ErrUnknownPolicy is returned by ByName for unregistered policy names.
var ErrUnknownPolicy = errors.New("unknown boundary policy")

// Pair is the neighbour data consumed by a two-neighbour binary rule.
type Pair struct {
	Left  bool
	Right bool
}

// Policy maps a neighbour index that may fall outside [0, n) onto a valid
// index. ok is false when the neighbour is absent, in which case it reads as
// dead.
type Policy interface {
	Name() string
	Resolve(i, n int) (idx int, ok bool)
}

// DeadPadding treats every position outside the row as a dead cell. It is the
// default policy.
type DeadPadding struct{}

// Name returns "dead".
func (DeadPadding) Name() string { return "dead" }

// Resolve accepts only in-range indices.
func (DeadPadding) Resolve(i, n int) (int, bool) {
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// Clamped pins out-of-range indices to the nearest edge, so an edge cell is
// its own outer neighbour.
type Clamped struct{}

// Name returns "clamp".
func (Clamped) Name() string { return "clamp" }

// Resolve clamps i into [0, n-1].
func (Clamped) Resolve(i, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	if i < 0 {
		return 0, true
	}
	if i >= n {
		return n - 1, true
	}
	return i, true
}

// Wrap joins the row ends into a ring.
type Wrap struct{}

// Name returns "wrap".
func (Wrap) Name() string { return "wrap" }

// Resolve wraps i modulo n.
func (Wrap) Resolve(i, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return (i%n + n) % n, true
}

// Default is the policy used when none is supplied.
var Default Policy = DeadPadding{}

var policies = map[string]Policy{
	DeadPadding{}.Name(): DeadPadding{},
	Clamped{}.Name():     Clamped{},
	Wrap{}.Name():        Wrap{},
}

// ByName looks up a policy by its Name. The empty string selects Default.
func ByName(name string) (Policy, error) {
	if name == "" {
		return Default, nil
	}
	p, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownPolicy, name, Names())
	}
	return p, nil
}

// Names lists the registered policy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Gather returns one Pair per position of cells, using p at the edges. Rows
// narrower than two cells have no neighbours under any policy. A nil p means
// Default.
func Gather[C cell.Reader](cells []C, p Policy) []Pair {
	n := len(cells)
	out := make([]Pair, n)
	if n < 2 {
		return out
	}
	if p == nil {
		p = Default
	}
	for i := range cells {
		out[i] = Pair{
			Left:  aliveAt(cells, p, i-1),
			Right: aliveAt(cells, p, i+1),
		}
	}
	return out
}

func aliveAt[C cell.Reader](cells []C, p Policy, i int) bool {
	idx, ok := p.Resolve(i, len(cells))
	if !ok || idx < 0 || idx >= len(cells) {
		return false
	}
	return cells[idx].IsAlive()
}
