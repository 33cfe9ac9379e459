package elementary

import "strconv"

// Init names how Reset seeds the first row.
const (
	InitRandom = "random"
	InitCenter = "center"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width    int
	Height   int
	Rule     string
	Boundary string
	Init     string
	Glyphs   string
	Workers  int
	Seed     int64
}

// DefaultConfig returns the default configuration: a random 140-cell row
// under Rule 90 with dead cells beyond both edges.
func DefaultConfig() Config {
	return Config{
		Width:    140,
		Height:   140,
		Rule:     "90",
		Boundary: "dead",
		Init:     InitRandom,
		Glyphs:   "solid",
		Workers:  1,
		Seed:     42,
	}
}

// FromMap populates a Config from a string map. Unparseable or out-of-range
// values keep their defaults; names are validated when the sim is built.
func FromMap(cfg map[string]string) Config {
	return applyMap(DefaultConfig(), cfg)
}

func applyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["boundary"]; ok && v != "" {
		c.Boundary = v
	}
	if v, ok := cfg["init"]; ok && (v == InitRandom || v == InitCenter) {
		c.Init = v
	}
	if v, ok := cfg["glyphs"]; ok && v != "" {
		c.Glyphs = v
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
