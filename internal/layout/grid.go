// Package layout turns the crossword model into lines of text for the screen: the boxed grid with
// the active clue outlined, and the wrapped, scrolled clue panels. Nothing here touches the
// terminal, so the output can be compared as plain strings.
package layout

import (
	"strconv"
	"strings"

	"github.com/omarnabikhan/xword/internal/crossword"
)

// Segment is a run of text drawn with one attribute.
type Segment struct {
	Text string
	Bold bool
}

// Line is one row of screen output.
type Line []Segment

func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

func (l *Line) add(text string, bold bool) {
	if text == "" {
		return
	}
	// Merge with the previous segment when the attribute is unchanged.
	if n := len(*l); n > 0 && (*l)[n-1].Bold == bold {
		(*l)[n-1].Text += text
		return
	}
	*l = append(*l, Segment{Text: text, Bold: bold})
}

const (
	shade = "░"
	// Each square is 3 columns wide between its borders, and one row high.
	squareWidth = 3
)

type position int

const (
	head position = iota
	body
	tail
)

type shape int

const (
	shapeTopLeft shape = iota
	shapeTop
	shapeTopRight
	shapeLeft
	shapeMiddle
	shapeRight
	shapeBottomLeft
	shapeBottom
	shapeBottomRight
)

// shapes[xpos][ypos]
var shapes = [3][3]shape{
	head: {head: shapeTopLeft, body: shapeLeft, tail: shapeBottomLeft},
	body: {head: shapeTop, body: shapeMiddle, tail: shapeBottom},
	tail: {head: shapeTopRight, body: shapeRight, tail: shapeBottomRight},
}

// Box-drawing characters for each vertex shape, by the heavy strokes meeting there. Combinations
// missing from a shape's table can't arise from a single clue outline.
var vertexChars = map[shape]map[Boldness]string{
	shapeTopLeft:     {Light: "┌", TopLeft: "┏"},
	shapeTop:         {Light: "┬", TopLeft: "┲", TopRight: "┱", Horizontal: "┯"},
	shapeTopRight:    {Light: "┐", TopRight: "┓"},
	shapeLeft:        {Light: "├", TopLeft: "┢", BottomLeft: "┡", Vertical: "┠"},
	shapeMiddle:      {Light: "┼", TopLeft: "╆", TopRight: "╅", BottomLeft: "╄", BottomRight: "╃", Horizontal: "┿", Vertical: "╂"},
	shapeRight:       {Light: "┤", TopRight: "┪", BottomRight: "┩", Vertical: "┨"},
	shapeBottomLeft:  {Light: "└", BottomLeft: "┗"},
	shapeBottom:      {Light: "┴", BottomLeft: "┺", BottomRight: "┹", Horizontal: "┷"},
	shapeBottomRight: {Light: "┘", BottomRight: "┛"},
}

var (
	horizontalEdge = [2]string{"─", "━"}
	verticalEdge   = [2]string{"│", "┃"}
)

func edgePosition(i, n int) position {
	switch i {
	case 0:
		return head
	case n:
		return tail
	default:
		return body
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Grid draws the puzzle as 2*height+1 lines of 4*width+1 columns. Numbers sit in the top border
// of their square, and the cursor is a '>' to the left of the letter, which is followed by its
// status mark.
func Grid(p *crossword.Puzzle) []Line {
	clue := p.CurrentClue()
	bold := newHighlight(clue).vertices()
	vertex := func(x, y int) string {
		s := shapes[edgePosition(x, p.Width)][edgePosition(y, p.Height)]
		if c, ok := vertexChars[s][bold[pt(x, y)]]; ok {
			return c
		}
		return vertexChars[s][Light]
	}
	isAny := func(x, y int, bs ...Boldness) bool {
		got, ok := bold[pt(x, y)]
		if !ok {
			return false
		}
		for _, b := range bs {
			if got == b {
				return true
			}
		}
		return false
	}

	lines := make([]Line, 0, 2*p.Height+1)
	cursor := p.Cursor()
	for y := 0; y < p.Height; y++ {
		// Top border, with numbers.
		var border Line
		for x := 0; x < p.Width; x++ {
			border.add(vertex(x, y), false)
			num := ""
			sq := p.Square(x, y)
			if sq.Number() != 0 {
				num = strconv.Itoa(sq.Number())
			}
			border.add(num, sq.Number() == clue.Number)
			heavy := isAny(x, y, TopLeft, BottomLeft, Horizontal)
			border.add(strings.Repeat(horizontalEdge[b2i(heavy)], max(squareWidth-len(num), 0)), false)
		}
		border.add(vertex(p.Width, y), false)
		lines = append(lines, border)

		// Squares.
		var row Line
		for x := 0; x < p.Width; x++ {
			heavy := isAny(x, y, TopLeft, TopRight, Vertical)
			row.add(verticalEdge[b2i(heavy)], false)
			sq := p.Square(x, y)
			if sq.IsBlack() {
				row.add(strings.Repeat(shade, squareWidth), false)
				continue
			}
			if (crossword.Point{X: x, Y: y}) == cursor {
				row.add(">", true)
			} else {
				row.add(" ", false)
			}
			row.add(string(letter(sq))+string(sq.Status().Mark()), false)
		}
		heavy := isAny(p.Width, y, TopRight, Vertical)
		row.add(verticalEdge[b2i(heavy)], false)
		lines = append(lines, row)
	}

	var bottom Line
	for x := 0; x < p.Width; x++ {
		heavy := isAny(x, p.Height, BottomLeft, Horizontal)
		bottom.add(vertex(x, p.Height)+strings.Repeat(horizontalEdge[b2i(heavy)], squareWidth), false)
	}
	bottom.add(vertex(p.Width, p.Height), false)
	return append(lines, bottom)
}

func letter(sq *crossword.Square) rune {
	if r, ok := sq.Buffer().Letter(); ok {
		return r
	}
	return ' '
}
