package boundary

import (
	"errors"
	"slices"
	"testing"

	"ca1d/internal/cell"
)

func row(bits ...uint8) []cell.Bit {
	out := make([]cell.Bit, len(bits))
	for i, b := range bits {
		out[i] = cell.Bit(b)
	}
	return out
}

func TestDeadPaddingEdges(t *testing.T) {
	cells := row(1, 1, 1)
	got := Gather(cells, DeadPadding{})
	want := []Pair{
		{Left: false, Right: true},
		{Left: true, Right: true},
		{Left: true, Right: false},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("dead padding neighbours = %v, want %v", got, want)
	}
}

func TestNilPolicyIsDeadPadding(t *testing.T) {
	cells := row(1, 0, 1)
	if !slices.Equal(Gather(cells, nil), Gather(cells, DeadPadding{})) {
		t.Fatal("nil policy must behave as dead padding")
	}
}

func TestClampedSelfReference(t *testing.T) {
	cells := row(1, 0, 0, 1)
	got := Gather(cells, Clamped{})
	if !got[0].Left {
		t.Fatal("clamped: leftmost cell must see itself as left neighbour")
	}
	if !got[3].Right {
		t.Fatal("clamped: rightmost cell must see itself as right neighbour")
	}
	if got[1] != (Pair{Left: true, Right: false}) {
		t.Fatalf("clamped interior = %v", got[1])
	}
}

func TestWrapJoinsEnds(t *testing.T) {
	cells := row(0, 0, 0, 1)
	got := Gather(cells, Wrap{})
	if !got[0].Left {
		t.Fatal("wrap: position 0 must see the last cell on its left")
	}
	if got[3].Right {
		t.Fatal("wrap: position 3 must see position 0 on its right")
	}
	if !got[2].Right {
		t.Fatal("wrap: interior neighbour lost")
	}
}

func TestNarrowRows(t *testing.T) {
	for _, p := range []Policy{DeadPadding{}, Clamped{}, Wrap{}} {
		if got := Gather(row(), p); len(got) != 0 {
			t.Fatalf("%s: width 0 produced %d pairs", p.Name(), len(got))
		}
		got := Gather(row(1), p)
		if len(got) != 1 || got[0] != (Pair{}) {
			t.Fatalf("%s: width 1 neighbours = %v, want both absent", p.Name(), got)
		}
	}
}

func TestGatherLengthMatchesCells(t *testing.T) {
	for n := 0; n < 20; n++ {
		cells := make([]cell.Bit, n)
		for _, p := range []Policy{DeadPadding{}, Clamped{}, Wrap{}} {
			if got := len(Gather(cells, p)); got != n {
				t.Fatalf("%s: %d pairs for %d cells", p.Name(), got, n)
			}
		}
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		p      Policy
		i, n   int
		want   int
		wantOK bool
	}{
		{DeadPadding{}, -1, 5, 0, false},
		{DeadPadding{}, 5, 5, 0, false},
		{DeadPadding{}, 2, 5, 2, true},
		{Clamped{}, -1, 5, 0, true},
		{Clamped{}, 5, 5, 4, true},
		{Clamped{}, 0, 0, 0, false},
		{Wrap{}, -1, 5, 4, true},
		{Wrap{}, 5, 5, 0, true},
		{Wrap{}, 0, 0, 0, false},
	}
	for _, tc := range cases {
		got, ok := tc.p.Resolve(tc.i, tc.n)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("%s.Resolve(%d, %d) = (%d, %v), want (%d, %v)", tc.p.Name(), tc.i, tc.n, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		p, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if p.Name() != name {
			t.Fatalf("ByName(%q) returned %q", name, p.Name())
		}
	}
	if p, err := ByName(""); err != nil || p != Default {
		t.Fatalf("ByName(\"\") = %v, %v; want default", p, err)
	}
	if _, err := ByName("mirror"); !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}
