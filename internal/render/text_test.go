package render

import (
	"errors"
	"testing"
	"unicode/utf8"

	"ca1d/internal/cell"
)

func TestTextSolid(t *testing.T) {
	got := Text([]cell.Bit{1, 0, 1}, Solid)
	if got != "● ●" {
		t.Fatalf("Text = %q", got)
	}
}

func TestTextHollow(t *testing.T) {
	got := Text([]cell.Bit{0, 1}, Hollow)
	if got != "○●" {
		t.Fatalf("Text = %q", got)
	}
}

func TestTextLengthIsWidth(t *testing.T) {
	cells := make([]cell.Basic, 37)
	cells[5] = cell.Basic{}.Alive()
	for _, g := range []Glyphs{Solid, Hollow, {}} {
		if n := utf8.RuneCountInString(Text(cells, g)); n != len(cells) {
			t.Fatalf("rendered %d glyphs for %d cells", n, len(cells))
		}
	}
}

func TestTextEmpty(t *testing.T) {
	if got := Text([]cell.Bit(nil), Solid); got != "" {
		t.Fatalf("empty row rendered %q", got)
	}
}

func TestGlyphsByName(t *testing.T) {
	if g, err := GlyphsByName("hollow"); err != nil || g != Hollow {
		t.Fatalf("GlyphsByName(hollow) = %v, %v", g, err)
	}
	if g, err := GlyphsByName(""); err != nil || g != Solid {
		t.Fatalf("GlyphsByName(\"\") = %v, %v", g, err)
	}
	if _, err := GlyphsByName("emoji"); !errors.Is(err, ErrUnknownGlyphs) {
		t.Fatalf("expected ErrUnknownGlyphs, got %v", err)
	}
}
