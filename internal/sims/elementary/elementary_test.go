package elementary

import (
	"errors"
	"slices"
	"testing"
	"unicode/utf8"

	"ca1d/internal/boundary"
	"ca1d/internal/core"
	"ca1d/internal/render"
	"ca1d/internal/rule"
)

func TestCenteredRule90History(t *testing.T) {
	e := New(5, 3, rule.Rule90{})
	e.Step()
	want := []uint8{
		0, 1, 0, 1, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 0, 0,
	}
	if !slices.Equal(e.Cells(), want) {
		t.Fatalf("history = %v, want %v", e.Cells(), want)
	}
	if e.Steps() != 1 {
		t.Fatalf("Steps() = %d", e.Steps())
	}
	if got := e.Render(); got != " ● ● " {
		t.Fatalf("Render() = %q", got)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 8
	cfg.Seed = 99

	e, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	initial := append([]uint8(nil), e.Cells()...)
	for i := 0; i < 5; i++ {
		e.Step()
	}
	e.Reset(0)
	if !slices.Equal(initial, e.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if e.Steps() != 0 {
		t.Fatal("Reset must clear the generation count")
	}

	e.Reset(777)
	seeded := append([]uint8(nil), e.Cells()...)
	e.Reset(777)
	if !slices.Equal(seeded, e.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different rows")
	}
}

func TestSizeMatchesCells(t *testing.T) {
	for _, w := range []int{0, 1, 17} {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = w, 4
		e, err := NewWithConfig(cfg)
		if err != nil {
			t.Fatalf("NewWithConfig: %v", err)
		}
		size := e.Size()
		if size.W*size.H != len(e.Cells()) {
			t.Fatalf("width %d: size %v does not match %d cells", w, size, len(e.Cells()))
		}
		e.Step()
		if n := utf8.RuneCountInString(e.Render()); n != w {
			t.Fatalf("width %d rendered %d glyphs", w, n)
		}
	}
}

func TestNewWithConfigRejectsUnknownNames(t *testing.T) {
	cases := []struct {
		mutate func(*Config)
		want   error
	}{
		{func(c *Config) { c.Rule = "life" }, rule.ErrUnknownRule},
		{func(c *Config) { c.Boundary = "mirror" }, boundary.ErrUnknownPolicy},
		{func(c *Config) { c.Glyphs = "emoji" }, render.ErrUnknownGlyphs},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if _, err := NewWithConfig(cfg); !errors.Is(err, tc.want) {
			t.Fatalf("expected %v, got %v", tc.want, err)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":        "33",
		"h":        "-1",
		"rule":     "110",
		"boundary": "wrap",
		"init":     "sideways",
		"workers":  "4",
		"seed":     "12",
	})
	if c.Width != 33 || c.Height != DefaultConfig().Height {
		t.Fatalf("dimensions = %dx%d", c.Width, c.Height)
	}
	if c.Rule != "110" || c.Boundary != "wrap" || c.Workers != 4 || c.Seed != 12 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Init != InitRandom {
		t.Fatalf("invalid init should keep default, got %q", c.Init)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map must yield defaults")
	}
}

func TestSetIntParameterSwitchesRule(t *testing.T) {
	e := New(9, 2, rule.Rule90{})
	e.Step()
	before := e.Row().Cells()
	if !e.SetIntParameter("rule", 30) {
		t.Fatal("rule should be adjustable")
	}
	if e.Rule().Name() != "rule30" {
		t.Fatalf("rule = %s", e.Rule().Name())
	}
	if !slices.Equal(before, e.Row().Cells()) {
		t.Fatal("switching rule must keep the current row")
	}
	if e.SetIntParameter("rule", 256) || e.SetIntParameter("w", 3) {
		t.Fatal("out-of-range or unknown parameters must be rejected")
	}
	p, ok := e.Parameters().Lookup("rule")
	if !ok || p.Value != "30" {
		t.Fatalf("rule parameter = %+v", p)
	}
}

func TestParameters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Init, cfg.Boundary = 7, InitCenter, "clamp"
	e, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	snap := e.Parameters()
	checks := map[string]string{
		"w":          "7",
		"rule":       "90",
		"boundary":   "clamp",
		"init":       "center",
		"population": "1",
		"generation": "0",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok || p.Value != want {
			t.Fatalf("%s = %+v, want %q", key, p, want)
		}
	}
	controls := e.ParameterControls()
	if len(controls) != 1 || controls[0].Clamp(300) != 255 {
		t.Fatalf("unexpected controls %+v", controls)
	}
}

func TestRegisteredFactories(t *testing.T) {
	for name, wantRule := range map[string]string{"elementary": "rule90", "rule90": "rule90", "rule30": "rule30"} {
		f, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("%s not registered", name)
		}
		sim, err := f(map[string]string{"w": "11", "h": "4"})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		e := sim.(*Elementary)
		if e.Name() != name || e.Rule().Name() != wantRule {
			t.Fatalf("%s built %s running %s", name, e.Name(), e.Rule().Name())
		}
		if _, ok := sim.(core.Renderer); !ok {
			t.Fatalf("%s does not render text", name)
		}
	}
	if _, err := core.Sims()["elementary"](map[string]string{"rule": "nope"}); err == nil {
		t.Fatal("factory must reject unknown rules")
	}
}
