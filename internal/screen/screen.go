// Package screen paints the player onto the terminal with curses.
//
// The terminal is split like so:
//
//	Title
//	Author
//
//	┌1──┬2──┐ Across          Down
//	│   │   │  1 ...            1 ...
//	└───┴───┘
//
//	status line
//	debug line
package screen

import (
	"errors"
	"fmt"

	gc "github.com/gbin/goncurses"

	"github.com/omarnabikhan/xword/internal"
	"github.com/omarnabikhan/xword/internal/config"
	"github.com/omarnabikhan/xword/internal/crossword"
	"github.com/omarnabikhan/xword/internal/layout"
)

const (
	// Colors.
	COLOR_DEFAULT = 100
	COLOR_DEBUG   = 101
	COLOR_BG      = 102

	// Color pairs.
	COLOR_PAIR_DEBUG   = 1
	COLOR_PAIR_DEFAULT = 2
)

var ErrTooSmall = errors.New("terminal too small")

// geometry is where each window goes, in terminal cells.
type geometry struct {
	gridRows, gridCols int
	gridTop            int
	clueTop            int
	clueLeft           [2]int
	clueWidth          int
	statusTop          int
	// The smallest terminal everything fits in.
	minRows, minCols int
}

func newGeometry(p *crossword.Puzzle, clueWidth int) geometry {
	g := geometry{
		gridRows:  2*p.Height + 1,
		gridCols:  4*p.Width + 1,
		gridTop:   3,
		clueTop:   4,
		clueWidth: clueWidth,
	}
	g.clueLeft[crossword.Across] = g.gridCols + 2
	g.clueLeft[crossword.Down] = g.clueLeft[crossword.Across] + clueWidth + 2
	g.statusTop = g.gridTop + g.gridRows + 1
	g.minRows = g.statusTop + 2
	g.minCols = g.clueLeft[crossword.Down] + clueWidth + 1
	return g
}

// clueRows is how many lines of clues each panel shows.
func (g geometry) clueRows() int {
	return g.gridRows - 1
}

// Screen is a curses Painter.
type Screen struct {
	stdscr *gc.Window
	geo    geometry

	grid   *gc.Window
	clues  [2]*gc.Window
	status *gc.Window
}

var _ internal.Painter = (*Screen)(nil)

// New lays out the windows for p on stdscr, which must already be initialised with colours
// started.
func New(stdscr *gc.Window, p *crossword.Puzzle, cfg *config.Config) (*Screen, error) {
	geo := newGeometry(p, cfg.ClueWidth)
	maxY, maxX := stdscr.MaxYX()
	if maxY < geo.minRows || maxX < geo.minCols {
		return nil, fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTooSmall, geo.minCols, geo.minRows, maxX, maxY)
	}

	initColors(cfg.Colors)

	s := &Screen{stdscr: stdscr, geo: geo}
	var err error
	// curses refuses to write the bottom right corner of a window, so the grid gets a spare line.
	if s.grid, err = gc.NewWindow(geo.gridRows+1, geo.gridCols, geo.gridTop, 0); err != nil {
		return nil, err
	}
	for _, d := range crossword.Directions {
		if s.clues[d], err = gc.NewWindow(geo.clueRows(), geo.clueWidth+1, geo.clueTop, geo.clueLeft[d]); err != nil {
			s.Close()
			return nil, err
		}
	}
	if s.status, err = gc.NewWindow(2, maxX, geo.statusTop, 0); err != nil {
		s.Close()
		return nil, err
	}
	for _, w := range s.windows() {
		w.SetBackground(gc.ColorPair(COLOR_PAIR_DEFAULT))
	}

	// Static text.
	stdscr.SetBackground(gc.ColorPair(COLOR_PAIR_DEFAULT))
	stdscr.Erase()
	stdscr.AttrOn(gc.A_BOLD)
	stdscr.MovePrint(0, 0, layout.Truncate(p.Title, maxX))
	stdscr.MovePrint(geo.gridTop, geo.clueLeft[crossword.Across], "Across")
	stdscr.MovePrint(geo.gridTop, geo.clueLeft[crossword.Down], "Down")
	stdscr.AttrOff(gc.A_BOLD)
	stdscr.MovePrint(1, 0, layout.Truncate(p.Author, maxX))
	stdscr.Refresh()
	return s, nil
}

func initColors(c config.Colors) {
	gc.InitColor(COLOR_DEFAULT, c.Foreground[0], c.Foreground[1], c.Foreground[2])
	gc.InitColor(COLOR_DEBUG, c.Debug[0], c.Debug[1], c.Debug[2])
	gc.InitColor(COLOR_BG, c.Background[0], c.Background[1], c.Background[2])

	gc.InitPair(COLOR_PAIR_DEBUG, COLOR_DEBUG, COLOR_BG)
	gc.InitPair(COLOR_PAIR_DEFAULT, COLOR_DEFAULT, COLOR_BG)
}

func (s *Screen) Paint(p *crossword.Puzzle, status internal.Status) {
	paintLines(s.grid, layout.Grid(p))
	for _, d := range crossword.Directions {
		paintLines(s.clues[d], layout.CluePanel(p, d, s.geo.clueWidth, s.geo.clueRows()))
	}

	s.status.Erase()
	_, maxX := s.status.MaxYX()
	s.status.MovePrint(0, 0, layout.Truncate(status.Line, maxX))
	if status.Debug != "" {
		s.status.ColorOn(COLOR_PAIR_DEBUG)
		// Stop short of the bottom right corner.
		s.status.MovePrint(1, 0, layout.Truncate(status.Debug, maxX-1))
		s.status.ColorOff(COLOR_PAIR_DEBUG)
	}
	s.status.Refresh()
}

func paintLines(w *gc.Window, lines []layout.Line) {
	w.Erase()
	for y, line := range lines {
		w.Move(y, 0)
		for _, seg := range line {
			if seg.Bold {
				w.AttrOn(gc.A_BOLD)
			}
			w.Print(seg.Text)
			if seg.Bold {
				w.AttrOff(gc.A_BOLD)
			}
		}
	}
	w.Refresh()
}

func (s *Screen) windows() []*gc.Window {
	var ws []*gc.Window
	for _, w := range []*gc.Window{s.grid, s.clues[crossword.Across], s.clues[crossword.Down], s.status} {
		if w != nil {
			ws = append(ws, w)
		}
	}
	return ws
}

// Close releases the windows. The caller still ends curses.
func (s *Screen) Close() error {
	var errs []error
	for _, w := range s.windows() {
		errs = append(errs, w.Delete())
	}
	return errors.Join(errs...)
}
