package crossword

import (
	"errors"
	"fmt"

	"github.com/omarnabikhan/xword/internal/puz"
)

var (
	ErrShape        = errors.New("answer and fill grids differ in shape")
	ErrEmptyGrid    = errors.New("grid has no white squares")
	ErrClueMismatch = errors.New("clue texts don't match the grid")
)

// ClueMismatchError reports a grid whose number of clues differs from the number of clue texts.
type ClueMismatchError struct {
	Spans, Texts int
}

func (e *ClueMismatchError) Error() string {
	return fmt.Sprintf("%v: grid has %d clues, got %d texts", ErrClueMismatch, e.Spans, e.Texts)
}

func (e *ClueMismatchError) Is(target error) bool {
	return target == ErrClueMismatch
}

// FromFile builds the puzzle described by a decoded .puz file. A grid whose clue count differs
// from the file's clue strings is a *puz.FormatError.
func FromFile(f *puz.File) (*Puzzle, error) {
	p, err := Build(f.Solution, f.Fill, f.Clues)
	var mismatch *ClueMismatchError
	if errors.As(err, &mismatch) {
		return nil, &puz.FormatError{
			Msg: fmt.Sprintf("expected %d clues, got %d", mismatch.Spans, mismatch.Texts),
			Err: puz.ErrClueCount,
		}
	}
	if err != nil {
		return nil, err
	}
	p.Title = f.Title
	p.Author = f.Author
	p.Copyright = f.Copyright
	p.Notes = f.Notes
	return p, nil
}

// Build numbers the grid, assigns clue texts in scan order, and links clues and squares. Grids
// are indexed [y][x]. The cursor starts on the first square of the first across clue.
func Build(answer, buffer [][]rune, clues []string) (*Puzzle, error) {
	if len(answer) == 0 || len(answer[0]) == 0 || len(answer) != len(buffer) {
		return nil, ErrShape
	}
	p := &Puzzle{Width: len(answer[0]), Height: len(answer)}
	p.squares = make([]Square, 0, p.Width*p.Height)
	for y := range answer {
		if len(answer[y]) != p.Width || len(buffer[y]) != p.Width {
			return nil, fmt.Errorf("%w: row %d", ErrShape, y)
		}
		for x := range answer[y] {
			a := ParseCell(answer[y][x])
			b := ParseCell(buffer[y][x])
			if a.IsBlack() {
				b = Black
			} else if b.IsBlack() {
				b = Empty
			}
			p.squares = append(p.squares, Square{
				pos:    Point{x, y},
				answer: a,
				buffer: b,
				clue:   [2]int{none, none},
				next:   [2]int{none, none},
				prev:   [2]int{none, none},
			})
		}
	}

	spans := p.spans()
	numSpans := len(spans[Across]) + len(spans[Down])
	if numSpans == 0 {
		return nil, ErrEmptyGrid
	}
	if numSpans != len(clues) {
		return nil, &ClueMismatchError{Spans: numSpans, Texts: len(clues)}
	}

	// Assign clue numbers. A square starting both an across and a down clue gets one number.
	number := 1
	nextText := 0
	for id := range p.squares {
		sq := &p.squares[id]
		numbered := false
		for _, d := range Directions {
			span, ok := spans[d][sq.pos]
			if !ok {
				continue
			}
			p.clues[d] = append(p.clues[d], Clue{
				Number:    number,
				Direction: d,
				text:      clues[nextText],
				span:      span,
				next:      none,
				prev:      none,
			})
			nextText++
			for _, pt := range span {
				p.at(pt).clue[d] = len(p.clues[d]) - 1
			}
			sq.number = number
			numbered = true
		}
		if numbered {
			number++
		}
	}

	// Doubly-link clues, and the squares within each clue.
	for _, d := range Directions {
		list := p.clues[d]
		for i := range list {
			if i > 0 {
				list[i].prev = i - 1
				list[i-1].next = i
			}
			span := list[i].span
			for j := 1; j < len(span); j++ {
				prev, cur := p.index(span[j-1].X, span[j-1].Y), p.index(span[j].X, span[j].Y)
				p.squares[cur].prev[d] = prev
				p.squares[prev].next[d] = cur
			}
		}
	}

	p.direction = Across
	if len(p.clues[Across]) == 0 {
		p.direction = Down
	}
	p.cursor = p.clues[p.direction][0].Start()
	p.mode = NormalMode
	return p, nil
}

// spans maps each square that starts a clue to the squares the clue spans, per direction. A span is
// a maximal run of white squares along a row (across) or column (down), and may be one square long.
func (p *Puzzle) spans() [2]map[Point][]Point {
	var spans [2]map[Point][]Point
	for _, d := range Directions {
		spans[d] = make(map[Point][]Point)
		lines, length := p.Height, p.Width
		if d == Down {
			lines, length = p.Width, p.Height
		}
		for line := 0; line < lines; line++ {
			var run []Point
			for i := 0; i <= length; i++ {
				pt := Point{i, line}
				if d == Down {
					pt = Point{line, i}
				}
				if i < length && !p.at(pt).IsBlack() {
					run = append(run, pt)
					continue
				}
				if len(run) > 0 {
					spans[d][run[0]] = run
					run = nil
				}
			}
		}
	}
	return spans
}
