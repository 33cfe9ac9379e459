package core

import "sort"

// Size describes the dimensions of a simulation's display buffer.
type Size struct {
	W int
	H int
}

// Sim is the contract the drivers run. Cells is the W×H display buffer with
// one byte per pixel, 0 for dead and 1 for alive.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Renderer is implemented by sims that can print their current row as text.
type Renderer interface {
	Render() string
}

// Factory constructs a Sim using an optional configuration map. It fails
// when the map names an unknown rule, boundary or glyph set.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists registered simulations in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
