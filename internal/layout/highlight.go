package layout

import "github.com/omarnabikhan/xword/internal/crossword"

// Boldness says which heavy strokes meet at a grid vertex.
type Boldness int

const (
	Light Boldness = iota
	TopLeft
	TopRight
	BottomLeft
	BottomRight
	Horizontal // Heavy stroke passes left to right.
	Vertical   // Heavy stroke passes top to bottom.
)

func newHighlight(clue *crossword.Clue) *Highlight {
	return &Highlight{
		start: clue.Start(),
		end:   clue.End(),
		dir:   clue.Direction,
	}
}

// Highlight is the heavy outline drawn around the squares of the active clue.
type Highlight struct {
	start, end crossword.Point
	dir        crossword.Direction
}

// vertices maps grid vertices to the heavy strokes meeting there. Vertex (x, y) is the top-left
// corner of square (x, y); vertices run from (0, 0) to (width, height).
func (h *Highlight) vertices() map[crossword.Point]Boldness {
	v := map[crossword.Point]Boldness{}
	x0, y0 := h.start.X, h.start.Y
	x1, y1 := h.end.X, h.end.Y
	if h.dir == crossword.Across {
		v[pt(x0, y0)] = TopLeft
		v[pt(x0, y0+1)] = BottomLeft
		for x := x0 + 1; x <= x1; x++ {
			v[pt(x, y0)] = Horizontal
			v[pt(x, y0+1)] = Horizontal
		}
		v[pt(x1+1, y0)] = TopRight
		v[pt(x1+1, y0+1)] = BottomRight
		return v
	}
	v[pt(x0, y0)] = TopLeft
	v[pt(x0+1, y0)] = TopRight
	for y := y0 + 1; y <= y1; y++ {
		v[pt(x0, y)] = Vertical
		v[pt(x0+1, y)] = Vertical
	}
	v[pt(x0, y1+1)] = BottomLeft
	v[pt(x0+1, y1+1)] = BottomRight
	return v
}

func pt(x, y int) crossword.Point {
	return crossword.Point{X: x, Y: y}
}
