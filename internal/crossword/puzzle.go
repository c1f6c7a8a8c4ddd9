// Package crossword holds the crossword model built from a decoded puzzle: numbered squares, clues
// with their spans, and the cursor state that the navigation and editing operations act on.
//
// Squares and clues refer to each other by index into slices owned by the Puzzle, never by
// pointer, so the directional links form plain integer lists with -1 marking either end.
package crossword

import (
	"fmt"
	"slices"

	"github.com/omarnabikhan/xword/internal/puz"
)

const none = -1

type Direction int

const (
	Across Direction = iota
	Down
)

var Directions = [...]Direction{Across, Down}

func (d Direction) Other() Direction {
	if d == Across {
		return Down
	}
	return Across
}

func (d Direction) String() string {
	switch d {
	case Across:
		return "across"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

type Mode int

const (
	NormalMode Mode = iota
	InsertMode
)

func (m Mode) String() string {
	if m == InsertMode {
		return "INSERT"
	}
	return "NORMAL"
}

type cellKind uint8

const (
	emptyCell cellKind = iota
	blackCell
	letterCell
)

// Cell is the content of a grid position: black, empty, or a letter.
type Cell struct {
	kind   cellKind
	letter rune
}

var (
	Black = Cell{kind: blackCell}
	Empty = Cell{kind: emptyCell}
)

func Letter(r rune) Cell {
	return Cell{kind: letterCell, letter: r}
}

// ParseCell maps a .puz grid character to a Cell.
func ParseCell(r rune) Cell {
	switch r {
	case puz.BLACK:
		return Black
	case puz.EMPTY:
		return Empty
	default:
		return Letter(r)
	}
}

func (c Cell) IsBlack() bool { return c.kind == blackCell }
func (c Cell) IsEmpty() bool { return c.kind == emptyCell }

// Letter returns the letter held by c, if any.
func (c Cell) Letter() (rune, bool) {
	return c.letter, c.kind == letterCell
}

// String renders c the way the .puz grids spell it.
func (c Cell) String() string {
	switch c.kind {
	case blackCell:
		return string(puz.BLACK)
	case emptyCell:
		return string(puz.EMPTY)
	default:
		return string(c.letter)
	}
}

// Status records how the letter in a square was entered or marked.
type Status int

const (
	Normal Status = iota
	Pencil
	Cross
)

// Mark is the single character drawn next to a letter for this status.
func (s Status) Mark() rune {
	switch s {
	case Pencil:
		return '?'
	case Cross:
		return 'x'
	default:
		return ' '
	}
}

type Point struct {
	X, Y int
}

type Square struct {
	pos    Point
	answer Cell
	buffer Cell
	status Status
	number int // 0 if the square starts no clue.

	clue       [2]int // Index into Puzzle.clues[d].
	next, prev [2]int // Index into Puzzle.squares, within the same span.
}

func (s *Square) Pos() Point     { return s.pos }
func (s *Square) Answer() Cell   { return s.answer }
func (s *Square) Buffer() Cell   { return s.buffer }
func (s *Square) Status() Status { return s.status }
func (s *Square) Number() int    { return s.number }
func (s *Square) IsBlack() bool  { return s.answer.IsBlack() }
func (s *Square) IsEmpty() bool  { return s.buffer.IsEmpty() }

// IsWrong reports whether the square holds a letter that isn't its answer.
func (s *Square) IsWrong() bool {
	return !s.IsEmpty() && s.buffer != s.answer
}

// set overwrites the buffer. Any pencil or cross status is dropped, even when the letter doesn't
// change, unless we're pencilling in.
func (s *Square) set(c Cell, pencil bool) {
	s.buffer = c
	if pencil {
		s.status = Pencil
	} else {
		s.status = Normal
	}
}

// togglePencil: normal -> pencil, pencil -> normal, cross -> pencil.
func (s *Square) togglePencil() {
	if s.status == Pencil {
		s.status = Normal
	} else {
		s.status = Pencil
	}
}

// Clue is fixed once the puzzle is built.
type Clue struct {
	Number    int
	Direction Direction

	text       string
	span       []Point
	next, prev int
}

func (c *Clue) Text() string { return c.text }
func (c *Clue) Start() Point { return c.span[0] }
func (c *Clue) End() Point   { return c.span[len(c.span)-1] }

// Span returns the squares of the clue in reading order.
func (c *Clue) Span() []Point {
	return slices.Clone(c.span)
}

// Puzzle is the whole crossword plus the interactive cursor state.
type Puzzle struct {
	Width, Height int

	Title     string
	Author    string
	Copyright string
	Notes     []string

	squares []Square // Row-major.
	clues   [2][]Clue

	cursor    Point
	direction Direction
	mode      Mode
}

func (p *Puzzle) InRange(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p *Puzzle) index(x, y int) int {
	if !p.InRange(x, y) {
		panic(fmt.Sprintf("crossword: square (%d,%d) outside %dx%d grid", x, y, p.Width, p.Height))
	}
	return y*p.Width + x
}

// Square returns the square at (x, y). Coordinates outside the grid are a programming error.
func (p *Puzzle) Square(x, y int) *Square {
	return &p.squares[p.index(x, y)]
}

func (p *Puzzle) at(pt Point) *Square {
	return p.Square(pt.X, pt.Y)
}

// Squares returns a copy of every square in row-major order.
func (p *Puzzle) Squares() []Square {
	return slices.Clone(p.squares)
}

// Clues returns a copy of the clues of one direction in numbering order.
func (p *Puzzle) Clues(d Direction) []Clue {
	return slices.Clone(p.clues[d])
}

// ClueOf returns the clue of direction d whose span covers s, or nil for a black square.
func (p *Puzzle) ClueOf(s *Square, d Direction) *Clue {
	if s.IsBlack() {
		return nil
	}
	return &p.clues[d][s.clue[d]]
}

func (p *Puzzle) Cursor() Point        { return p.cursor }
func (p *Puzzle) Direction() Direction { return p.direction }
func (p *Puzzle) Mode() Mode           { return p.mode }
func (p *Puzzle) SetMode(m Mode)       { p.mode = m }
func (p *Puzzle) Current() *Square     { return p.at(p.cursor) }
func (p *Puzzle) CurrentClue() *Clue   { return p.ClueOf(p.Current(), p.direction) }

func (p *Puzzle) jump(pt Point) {
	p.cursor = pt
}

func (p *Puzzle) currentID() int {
	return p.index(p.cursor.X, p.cursor.Y)
}
