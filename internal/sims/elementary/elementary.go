// Package elementary runs a one-dimensional two-neighbour automaton and keeps
// its recent rows as a scrolling space-time diagram.
package elementary

import (
	"fmt"
	"strconv"

	"ca1d/internal/automaton"
	"ca1d/internal/boundary"
	"ca1d/internal/cell"
	"ca1d/internal/core"
	"ca1d/internal/generation"
	"ca1d/internal/render"
	"ca1d/internal/rule"
)

type engine = automaton.Automaton[boundary.Pair, cell.Bit, generation.Row[cell.Bit]]

// Elementary is a core.Sim over a row of cell.Bit values.
type Elementary struct {
	name    string
	cfg     Config
	rule    rule.Elementary
	policy  boundary.Policy
	glyphs  render.Glyphs
	auto    *engine
	history *core.History
	steps   int
}

// NewWithConfig validates cfg and returns a sim seeded with cfg.Seed.
func NewWithConfig(cfg Config) (*Elementary, error) {
	r, err := rule.Parse(cfg.Rule)
	if err != nil {
		return nil, fmt.Errorf("elementary: %w", err)
	}
	p, err := boundary.ByName(cfg.Boundary)
	if err != nil {
		return nil, fmt.Errorf("elementary: %w", err)
	}
	g, err := render.GlyphsByName(cfg.Glyphs)
	if err != nil {
		return nil, fmt.Errorf("elementary: %w", err)
	}
	if cfg.Width < 0 {
		cfg.Width = 0
	}
	e := &Elementary{
		name:    "elementary",
		cfg:     cfg,
		rule:    r,
		policy:  p,
		glyphs:  g,
		history: core.NewHistory(cfg.Width, cfg.Height),
	}
	e.Reset(0)
	return e, nil
}

// New creates an automaton with the given dimensions and rule, seeded with a
// single live cell in the middle of the row.
func New(w, h int, r rule.Elementary) *Elementary {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Init = w, h, InitCenter
	if w < 0 {
		cfg.Width = 0
	}
	e := &Elementary{
		name:    "elementary",
		cfg:     cfg,
		rule:    r,
		policy:  boundary.Default,
		glyphs:  render.Solid,
		history: core.NewHistory(cfg.Width, cfg.Height),
	}
	e.Reset(0)
	return e
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return e.name }

// Size returns the dimensions of the space-time buffer.
func (e *Elementary) Size() core.Size { return core.Size{W: e.history.W, H: e.history.H} }

// Cells exposes the space-time buffer, newest row first.
func (e *Elementary) Cells() []uint8 { return e.history.Cells() }

// Reset rebuilds the first row. A zero seed reuses the configured seed.
func (e *Elementary) Reset(seed int64) {
	if seed == 0 {
		seed = e.cfg.Seed
	}
	e.cfg.Seed = seed
	var initial generation.Row[cell.Bit]
	switch e.cfg.Init {
	case InitCenter:
		initial = generation.Centered[cell.Bit](e.cfg.Width, e.policy)
	default:
		initial = generation.Randomized[cell.Bit](e.cfg.Width, core.NewRNG(seed), e.policy)
	}
	e.auto = automaton.Elementary(e.rule, initial, e.options()...)
	e.steps = 0
	e.history.Clear()
	e.pushRow()
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	e.auto.Evolve()
	e.steps++
	e.pushRow()
}

// Render returns the current row as text.
func (e *Elementary) Render() string { return e.auto.Render() }

// Row returns the current generation.
func (e *Elementary) Row() generation.Row[cell.Bit] { return e.auto.Generation() }

// Steps returns the number of generations since the last Reset.
func (e *Elementary) Steps() int { return e.steps }

// Rule returns the active rule.
func (e *Elementary) Rule() rule.Elementary { return e.rule }

func (e *Elementary) options() []automaton.Option {
	return []automaton.Option{automaton.WithGlyphs(e.glyphs), automaton.WithWorkers(e.cfg.Workers)}
}

func (e *Elementary) pushRow() {
	cells := e.auto.Generation().Cells()
	row := make([]uint8, len(cells))
	for i, c := range cells {
		row[i] = uint8(c)
	}
	e.history.Push(row)
}

// Parameters describes the sim for the HUD.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	ruleValue := e.rule.Name()
	if code, ok := wolframCode(e.rule); ok {
		ruleValue = strconv.Itoa(code)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Row",
			Params: []core.Parameter{
				intParam("w", "Width", e.cfg.Width),
				intParam("h", "History", e.history.H),
				stringParam("init", "Init", e.cfg.Init),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(e.cfg.Seed, 10)},
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeInt, Value: ruleValue, Description: e.rule.Name()},
				stringParam("boundary", "Boundary", e.policy.Name()),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", e.steps),
				intParam("population", "Population", e.auto.Generation().Population()),
			},
		},
	}}
}

// ParameterControls exposes the rule code as an adjustable control.
func (e *Elementary) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key: "rule", Label: "Rule", Step: 1,
		Min: 0, Max: 255, HasMin: true, HasMax: true,
	}}
}

// SetIntParameter switches the rule without touching the current row.
func (e *Elementary) SetIntParameter(key string, value int) bool {
	if key != "rule" || value < 0 || value > 255 {
		return false
	}
	r, err := rule.Parse(strconv.Itoa(value))
	if err != nil {
		return false
	}
	e.rule = r
	e.cfg.Rule = strconv.Itoa(value)
	e.auto = automaton.Elementary(e.rule, e.auto.Generation(), e.options()...)
	return true
}

func wolframCode(r rule.Elementary) (int, bool) {
	switch v := r.(type) {
	case rule.Rule90:
		return 90, true
	case rule.Rule30:
		return 30, true
	case rule.Wolfram:
		return int(v), true
	case *rule.Table:
		return int(v.Code()), true
	}
	return 0, false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}

func factory(name string, overrides map[string]string) core.Factory {
	return func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		c = applyMap(c, overrides)
		e, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		e.name = name
		return e, nil
	}
}

func init() {
	core.Register("elementary", factory("elementary", nil))
	core.Register("rule90", factory("rule90", map[string]string{"rule": "90"}))
	core.Register("rule30", factory("rule30", map[string]string{"rule": "30"}))
}
