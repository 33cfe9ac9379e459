// Package automaton advances a generation of cells under a fixed rule.
//
// An Automaton is generic over the neighbour data N, the cell representation C
// and the generation storage G, so rules and storage vary independently of the
// evolution step. Each step reads only from the current generation and
// installs the next one whole; no partially updated row is ever observable.
//
// An Automaton is not safe for concurrent use.
package automaton

import (
	"fmt"

	"ca1d/internal/boundary"
	"ca1d/internal/cell"
	"ca1d/internal/generation"
	"ca1d/internal/render"
	"ca1d/internal/rule"

	"golang.org/x/sync/errgroup"
)

// Option configures an Automaton.
type Option func(*options)

type options struct {
	workers int
	glyphs  render.Glyphs
}

// WithWorkers evaluates positions on up to n goroutines. Values below two keep
// evaluation on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithGlyphs sets the alphabet used by Render.
func WithGlyphs(g render.Glyphs) Option {
	return func(o *options) { o.glyphs = g }
}

// Automaton owns one generation and one rule.
type Automaton[N any, C cell.Cell[C], G generation.Generation[N, C, G]] struct {
	gen   G
	rule  rule.Rule[N, C]
	opts  options
	steps int
}

// New returns an automaton starting from initial. It panics on a nil rule.
func New[N any, C cell.Cell[C], G generation.Generation[N, C, G]](r rule.Rule[N, C], initial G, opts ...Option) *Automaton[N, C, G] {
	if r == nil {
		panic("automaton: nil rule")
	}
	o := options{glyphs: render.Solid}
	for _, opt := range opts {
		opt(&o)
	}
	return &Automaton[N, C, G]{gen: initial, rule: r, opts: o}
}

// Elementary builds an automaton over a slice-backed row with a two-neighbour
// binary rule.
func Elementary[C cell.Cell[C]](e rule.Elementary, initial generation.Row[C], opts ...Option) *Automaton[boundary.Pair, C, generation.Row[C]] {
	return New[boundary.Pair, C, generation.Row[C]](rule.For[C](e), initial, opts...)
}

// Evolve advances the automaton by exactly one generation.
func (a *Automaton[N, C, G]) Evolve() {
	cells := a.gen.Cells()
	neighbors := a.gen.Neighbors()
	if len(neighbors) != len(cells) {
		panic(fmt.Sprintf("automaton: generation produced %d neighbourhoods for %d cells", len(neighbors), len(cells)))
	}
	next := make([]C, len(cells))
	if a.opts.workers > 1 && len(cells) > 1 {
		a.evaluateParallel(neighbors, cells, next)
	} else {
		for i := range cells {
			next[i] = a.rule.Evaluate(neighbors[i], cells[i])
		}
	}
	a.gen = a.gen.FromCells(next)
	a.steps++
}

// evaluateParallel splits positions into contiguous strips, one per worker.
// Workers only read the old generation and write disjoint indices of next.
func (a *Automaton[N, C, G]) evaluateParallel(neighbors []N, cells, next []C) {
	var g errgroup.Group
	for _, s := range strips(len(cells), a.opts.workers) {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("positions %d-%d: %v", s.lo, s.hi-1, r)
				}
			}()
			for i := s.lo; i < s.hi; i++ {
				next[i] = a.rule.Evaluate(neighbors[i], cells[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(fmt.Sprintf("automaton: %v", err))
	}
}

type strip struct{ lo, hi int }

// strips divides n positions into at most workers contiguous ranges whose
// sizes differ by at most one.
func strips(n, workers int) []strip {
	if workers > n {
		workers = n
	}
	if workers <= 0 {
		return nil
	}
	out := make([]strip, 0, workers)
	size, extra := n/workers, n%workers
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + size
		if w < extra {
			hi++
		}
		out = append(out, strip{lo: lo, hi: hi})
		lo = hi
	}
	return out
}

// Render projects the current generation to text. It does not change state.
func (a *Automaton[N, C, G]) Render() string {
	return render.Text(a.gen.Cells(), a.opts.glyphs)
}

// Generation returns the current generation.
func (a *Automaton[N, C, G]) Generation() G { return a.gen }

// Rule returns the transition rule.
func (a *Automaton[N, C, G]) Rule() rule.Rule[N, C] { return a.rule }

// Steps returns how many times Evolve has run.
func (a *Automaton[N, C, G]) Steps() int { return a.steps }
