// Package render projects cells into text rows and RGBA pixels.
package render

import (
	"errors"
	"fmt"
	"strings"

	"ca1d/internal/cell"
)

// ErrUnknownGlyphs is returned by GlyphsByName for unknown alphabets.
var ErrUnknownGlyphs = errors.New("unknown glyph set")

// Glyphs maps the two cell states onto display symbols.
type Glyphs struct {
	Alive string
	Dead  string
}

var (
	// Solid draws live cells as dots on a blank background.
	Solid = Glyphs{Alive: "●", Dead: " "}
	// Hollow draws dead cells as empty circles.
	Hollow = Glyphs{Alive: "●", Dead: "○"}
)

// GlyphsByName resolves "solid" or "hollow". The empty name selects Solid.
func GlyphsByName(name string) (Glyphs, error) {
	switch name {
	case "", "solid":
		return Solid, nil
	case "hollow":
		return Hollow, nil
	}
	return Glyphs{}, fmt.Errorf("%w %q", ErrUnknownGlyphs, name)
}

// Text concatenates one glyph per cell in position order. A zero Glyphs value
// renders with Solid.
func Text[C cell.Reader](cells []C, g Glyphs) string {
	if g == (Glyphs{}) {
		g = Solid
	}
	var b strings.Builder
	b.Grow(len(cells) * len(g.Alive))
	for _, c := range cells {
		if c.IsAlive() {
			b.WriteString(g.Alive)
			continue
		}
		b.WriteString(g.Dead)
	}
	return b.String()
}
