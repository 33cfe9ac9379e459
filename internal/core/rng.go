package core

import "math/rand/v2"

// RNG is a seeded boolean source built on a PCG generator, so a seed always
// reproduces the same initial row.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns true or false with equal probability.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand.
func (r *RNG) Source() *rand.Rand { return r.r }
