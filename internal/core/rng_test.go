package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(99), NewRNG(99)
	for i := 0; i < 256; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}

func TestRNGProducesBothValues(t *testing.T) {
	r := NewRNG(1)
	seen := map[bool]int{}
	for i := 0; i < 1000; i++ {
		seen[r.Bool()]++
	}
	if seen[true] < 400 || seen[false] < 400 {
		t.Fatalf("unbalanced draws: %v", seen)
	}
}
