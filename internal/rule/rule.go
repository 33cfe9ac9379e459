// Package rule holds transition rules for one-dimensional binary automata.
//
// A Rule maps neighbour data and the current cell to the next cell. The
// elementary rules in this package are written against booleans and lifted to
// a concrete cell representation with For.
package rule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ca1d/internal/boundary"
	"ca1d/internal/cell"
)

var (
	// ErrIncompleteRule is returned when a rule table does not cover every
	// neighbourhood.
	ErrIncompleteRule = errors.New("rule table does not cover every neighbourhood")
	// ErrUnknownRule is returned by Parse for names it cannot resolve.
	ErrUnknownRule = errors.New("unknown rule")
)

// Rule computes the next state of one cell.
type Rule[N, C any] interface {
	Evaluate(n N, c C) C
}

// Func adapts a plain function to Rule.
type Func[N, C any] func(n N, c C) C

// Evaluate calls f.
func (f Func[N, C]) Evaluate(n N, c C) C { return f(n, c) }

// Elementary is a two-neighbour binary rule expressed on booleans.
type Elementary interface {
	Name() string
	Next(n boundary.Pair, alive bool) bool
}

// Cells lifts an Elementary rule onto the cell representation C.
type Cells[C cell.Cell[C]] struct {
	Elementary
}

// Evaluate implements Rule[boundary.Pair, C].
func (r Cells[C]) Evaluate(n boundary.Pair, c C) C {
	return cell.FromBool[C](r.Next(n, c.IsAlive()))
}

// For lifts e onto C. It panics on a nil rule.
func For[C cell.Cell[C]](e Elementary) Cells[C] {
	if e == nil {
		panic("rule: nil elementary rule")
	}
	return Cells[C]{Elementary: e}
}

// index packs a neighbourhood into the Wolfram bit position left<<2|self<<1|right.
func index(n boundary.Pair, alive bool) uint8 {
	var idx uint8
	if n.Left {
		idx |= 4
	}
	if alive {
		idx |= 2
	}
	if n.Right {
		idx |= 1
	}
	return idx
}

// Rule90 sets a cell to the XOR of its two neighbours.
type Rule90 struct{}

// Name returns "rule90".
func (Rule90) Name() string { return "rule90" }

// Next implements Elementary.
func (Rule90) Next(n boundary.Pair, alive bool) bool {
	switch idx := index(n, alive); idx {
	case 0b000, 0b010:
		return false
	case 0b001, 0b011:
		return true
	case 0b100, 0b110:
		return true
	case 0b101, 0b111:
		return false
	default:
		panic(fmt.Sprintf("rule90: neighbourhood %03b out of range", idx))
	}
}

// Rule30 is the elementary rule with Wolfram code 30.
type Rule30 struct{}

// Name returns "rule30".
func (Rule30) Name() string { return "rule30" }

// Next implements Elementary.
func (Rule30) Next(n boundary.Pair, alive bool) bool {
	switch idx := index(n, alive); idx {
	case 0b000:
		return false
	case 0b001:
		return true
	case 0b010:
		return true
	case 0b011:
		return true
	case 0b100:
		return true
	case 0b101:
		return false
	case 0b110:
		return false
	case 0b111:
		return false
	default:
		panic(fmt.Sprintf("rule30: neighbourhood %03b out of range", idx))
	}
}

// Wolfram is an elementary rule identified by its Wolfram code.
type Wolfram uint8

// Name returns "rule" followed by the code.
func (w Wolfram) Name() string { return "rule" + strconv.Itoa(int(w)) }

// Next reads bit left<<2|self<<1|right of the code.
func (w Wolfram) Next(n boundary.Pair, alive bool) bool {
	return (uint8(w)>>index(n, alive))&1 == 1
}

// Case is one neighbourhood of an elementary rule.
type Case struct {
	Left  bool
	Self  bool
	Right bool
}

// Table is an elementary rule built from an explicit case map.
type Table struct {
	name string
	next [8]bool
}

// NewTable builds a Table. Every one of the eight cases must be present.
func NewTable(name string, cases map[Case]bool) (*Table, error) {
	t := &Table{name: name}
	var missing []string
	for idx := 0; idx < 8; idx++ {
		c := Case{Left: idx&4 != 0, Self: idx&2 != 0, Right: idx&1 != 0}
		next, ok := cases[c]
		if !ok {
			missing = append(missing, fmt.Sprintf("%03b", idx))
			continue
		}
		t.next[idx] = next
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: %w: missing %s", name, ErrIncompleteRule, strings.Join(missing, ","))
	}
	return t, nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Next implements Elementary.
func (t *Table) Next(n boundary.Pair, alive bool) bool {
	return t.next[index(n, alive)]
}

// Code returns the Wolfram code equivalent to the table.
func (t *Table) Code() Wolfram {
	var code uint8
	for idx, next := range t.next {
		if next {
			code |= 1 << idx
		}
	}
	return Wolfram(code)
}

// Parse resolves a rule name: "rule90" / "90", "rule30" / "30", or any Wolfram
// code in [0, 255] with or without the "rule" prefix.
func Parse(name string) (Elementary, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "rule")
	switch trimmed {
	case "90":
		return Rule90{}, nil
	case "30":
		return Rule30{}, nil
	}
	code, err := strconv.Atoi(trimmed)
	if err != nil || code < 0 || code > 255 {
		return nil, fmt.Errorf("%w %q", ErrUnknownRule, name)
	}
	return Wolfram(code), nil
}
