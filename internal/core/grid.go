package core

// History keeps the most recent H rows of a W-wide automaton in row-major
// order, newest row first. It backs the space-time view.
type History struct {
	W, H int
	data []uint8
}

// NewHistory allocates a history buffer. Dimensions below one are raised to
// one so the buffer can always be painted.
func NewHistory(w, h int) *History {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &History{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice.
func (g *History) Cells() []uint8 { return g.data }

// Row returns row y, where row 0 is the newest.
func (g *History) Row(y int) []uint8 { return g.data[y*g.W : (y+1)*g.W] }

// Push scrolls every row down by one and writes row on top. Short rows are
// zero-filled and long rows truncated to W.
func (g *History) Push(row []uint8) {
	copy(g.data[g.W:], g.data[:g.W*(g.H-1)])
	top := g.data[:g.W]
	n := copy(top, row)
	clear(top[n:])
}

// Clear fills the buffer with zeros.
func (g *History) Clear() {
	clear(g.data)
}
