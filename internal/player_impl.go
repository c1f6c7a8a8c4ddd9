package internal

import (
	"fmt"
	"io"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/omarnabikhan/xword"
	"github.com/omarnabikhan/xword/internal/config"
	"github.com/omarnabikhan/xword/internal/crossword"
)

type Mode string

const (
	// Player modes.
	NORMAL_MODE  Mode = "NORMAL"
	INSERT_MODE  Mode = "INSERT"
	COMMAND_MODE Mode = "COMMAND"

	// Escape sequences.
	ESC_KEY    = "\x1b"
	DELETE_KEY = "\x7f"
	TAB_KEY    = "\t"

	// Named by curses.
	ENTER_KEY = "enter"
)

// Painter publishes the state of the puzzle, e.g. to the terminal.
type Painter interface {
	Paint(p *crossword.Puzzle, status Status)
}

// Status is what the player has to say besides the puzzle itself.
type Status struct {
	// Line is the message, mode banner or command being typed.
	Line string
	// Debug is only set in verbose mode.
	Debug string
}

func NewPlayer(puzzle *crossword.Puzzle, cfg *config.Config, painter Painter, logger *log.Logger) xword.Player {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p := &playerImpl{
		puzzle:  puzzle,
		painter: painter,
		logger:  logger,
		userMsg: fmt.Sprintf(`"%s" %dx%d, %d clues`, puzzle.Title, puzzle.Width, puzzle.Height,
			len(puzzle.Clues(crossword.Across))+len(puzzle.Clues(crossword.Down))),
		verbose: cfg.Verbose,
	}
	p.chordFirst, p.chordSecond, p.hasChord = cfg.Chord()

	// Initialize in NORMAL mode.
	p.swapPlayerMode(NORMAL_MODE)

	// Initial paint.
	p.sync()
	return p
}

type playerImpl struct {
	puzzle  *crossword.Puzzle
	painter Painter
	logger  *log.Logger

	// Two keys that escape INSERT mode when typed one after the other.
	chordFirst, chordSecond string
	hasChord                bool

	userMsg       string // Shown to user beneath the grid.
	commandBuffer strings.Builder

	// The last f/F search, repeated by ; and ,. Zero before the first one.
	findLetter  rune
	findForward bool

	// Mode info.
	mode    Mode
	verbose bool

	// Different modes are implemented here.
	activePlayerMode PlayerMode
}

var _ xword.Player = (*playerImpl)(nil)

func (p *playerImpl) Handle(key string) error {
	if err := p.activePlayerMode.Handle(normalizeKey(key)); err != nil {
		return err
	}
	p.sync()
	return nil
}

func (p *playerImpl) swapPlayerMode(mode Mode) {
	if p.mode != mode {
		p.logger.Printf("mode %s -> %s", p.mode, mode)
	}
	p.mode = mode
	switch mode {
	case NORMAL_MODE:
		p.puzzle.SetMode(crossword.NormalMode)
		p.activePlayerMode = newNormalPlayerMode(p)
	case INSERT_MODE:
		p.userMsg = "-- INSERT --"
		p.puzzle.SetMode(crossword.InsertMode)
		p.activePlayerMode = newInsertPlayerMode(p)
	case COMMAND_MODE:
		p.commandBuffer.Reset()
		p.activePlayerMode = newCommandPlayerMode(p)
	}
}

// awaitKey hands the next key to then, whatever mode is active. Afterwards the current mode
// resumes, unless then swaps to another.
func (p *playerImpl) awaitKey(then func(key string) error) {
	p.activePlayerMode = newPendingKeyMode(p, p.activePlayerMode, then)
}

// handleGlobal handles the keys that work the same in NORMAL and INSERT mode.
func (p *playerImpl) handleGlobal(key string) bool {
	switch key {
	case TAB_KEY:
		p.puzzle.NextClue()
	case "?":
		p.puzzle.Reveal()
	default:
		return false
	}
	return true
}

// typeKey writes a single letter key into the current square.
func (p *playerImpl) typeKey(key string) bool {
	r, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) {
		return false
	}
	return p.puzzle.Type(r)
}

func (p *playerImpl) check(markWrong bool) {
	res := p.puzzle.Check(markWrong)
	p.logger.Printf("check markWrong=%t: %s, %d wrong", markWrong, res.Outcome, res.Wrong)
	switch res.Outcome {
	case crossword.NothingToCheck:
		p.userMsg = "There's nothing to check."
	case crossword.HasWrong:
		if !markWrong {
			p.userMsg = "At least one square's amiss."
			return
		}
		suffix := ""
		if res.Wrong > 1 {
			suffix = "s"
		}
		p.userMsg = fmt.Sprintf("Found %d wrong square%s.", res.Wrong, suffix)
	case crossword.DoingFine:
		p.userMsg = "You're doing fine."
	case crossword.Complete:
		p.userMsg = "Congrats! You've finished the puzzle."
	}
}

func (p *playerImpl) ignore(key string) {
	p.logger.Printf("%s mode: ignored key %q", p.mode, key)
}

func (p *playerImpl) Close() {
	if c, ok := p.painter.(io.Closer); ok {
		c.Close()
	}
}

func (p *playerImpl) sync() {
	if p.painter == nil {
		return
	}
	p.painter.Paint(p.puzzle, p.status())
}

func (p *playerImpl) status() Status {
	s := Status{Line: p.activePlayerMode.StatusLine()}
	if p.verbose {
		cursor := p.puzzle.Cursor()
		clue := p.puzzle.CurrentClue()
		s.Debug = fmt.Sprintf("DEBUG: cursor=(x=%d,y=%d); dir=%s; clue=%d %s; mode=%s",
			cursor.X, cursor.Y, p.puzzle.Direction(), clue.Number, clue.Direction, p.mode)
	}
	return s
}

// normalizeKey maps the different names curses and terminals use for the same key onto one.
func normalizeKey(key string) string {
	switch key {
	case "tab":
		return TAB_KEY
	case "backspace", "\b":
		return DELETE_KEY
	case "\n", "\r", "return":
		return ENTER_KEY
	case "esc":
		return ESC_KEY
	}
	return key
}
