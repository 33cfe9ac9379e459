package app

import (
	"flag"
	"strconv"
	"time"
)

// Config represents the command-line parameters shared by the terminal and
// GUI drivers.
type Config struct {
	Sim         string
	Width       int
	Height      int
	Rule        string
	Boundary    string
	Init        string
	Glyphs      string
	Workers     int
	Seed        int64
	Interval    time.Duration
	Generations int

	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "elementary",
		Width:    140,
		Height:   140,
		Rule:     "90",
		Boundary: "dead",
		Init:     "random",
		Glyphs:   "solid",
		Workers:  1,
		Seed:     42,
		Interval: 100 * time.Millisecond,
		Scale:    4,
		TPS:      60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "cells per row")
	fs.IntVar(&c.Height, "h", c.Height, "rows of history kept for the GUI view")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule: 90, 30 or any Wolfram code 0-255")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "edge policy: dead, clamp or wrap")
	fs.StringVar(&c.Init, "init", c.Init, "first row: random or center")
	fs.StringVar(&c.Glyphs, "glyphs", c.Glyphs, "text alphabet: solid or hollow")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used per generation")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random initialisation")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many rows (0 runs forever)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (GUI)")
}

// SimConfig converts the flags into the key/value form sim factories accept.
// The sim flag selects the factory, so it is not included.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"rule":     c.Rule,
		"boundary": c.Boundary,
		"init":     c.Init,
		"glyphs":   c.Glyphs,
		"workers":  strconv.Itoa(c.Workers),
		"seed":     strconv.FormatInt(c.Seed, 10),
	}
}
