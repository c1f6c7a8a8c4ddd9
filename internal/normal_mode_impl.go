package internal

import (
	"unicode"
	"unicode/utf8"

	"github.com/omarnabikhan/xword/internal/crossword"
)

func newNormalPlayerMode(basePlayer *playerImpl) *normalModePlayer {
	return &normalModePlayer{playerImpl: basePlayer}
}

type normalModePlayer struct {
	*playerImpl
}

func (np *normalModePlayer) Handle(key string) error {
	if np.handleGlobal(key) {
		return nil
	}
	switch key {
	case "k", "up":
		np.puzzle.Move(0, -1)
	case "j", "down":
		np.puzzle.Move(0, 1)
	case "h", "left":
		np.puzzle.Move(-1, 0)
	case "l", "right":
		np.puzzle.Move(1, 0)
	case "0":
		// Jump to the first square of the clue.
		np.puzzle.Start()
	case "$":
		// Jump to the last square of the clue.
		np.puzzle.End()
	case "w":
		np.puzzle.NextClue()
	case "b":
		np.puzzle.PrevClue()
	case "f", "F":
		// Find a letter, e.g. "fa" jumps to the next A.
		forward := key == "f"
		np.awaitKey(func(next string) error {
			r, size := utf8.DecodeRuneInString(next)
			if size == 0 || size != len(next) {
				np.ignore(next)
				return nil
			}
			np.findLetter = unicode.ToUpper(r)
			np.findForward = forward
			np.puzzle.Find(crossword.HasLetter(np.findLetter), forward, false /*skipRepeats*/)
			return nil
		})
	case ";", ",":
		// Repeat the last find, in the opposite direction for ",".
		if np.findLetter == 0 {
			return nil
		}
		forward := np.findForward
		if key == "," {
			forward = !forward
		}
		np.puzzle.Find(crossword.HasLetter(np.findLetter), forward, false /*skipRepeats*/)
	case "}", "{":
		np.puzzle.Find(crossword.IsEmpty, key == "}", true /*skipRepeats*/)
	case "]", "[":
		// "]q" finds a pencilled square, "]w" a wrong one.
		forward := key == "]"
		np.awaitKey(func(next string) error {
			var status crossword.Status
			switch next {
			case "q":
				status = crossword.Pencil
			case "w":
				status = crossword.Cross
			default:
				np.ignore(next)
				return nil
			}
			np.puzzle.Find(crossword.HasStatus(status), forward, true /*skipRepeats*/)
			return nil
		})
	case "r":
		// Replace the current square without moving.
		np.awaitKey(func(next string) error {
			if !np.typeKey(next) {
				np.ignore(next)
			}
			return nil
		})
	case "x":
		np.puzzle.Delete()
	case " ":
		np.puzzle.Toggle()
	case "i":
		np.swapPlayerMode(INSERT_MODE)
	case "a":
		np.puzzle.Advance()
		np.swapPlayerMode(INSERT_MODE)
	case "~":
		np.puzzle.TogglePencil()
		np.puzzle.Advance()
	case "v":
		// Toggle verbose mode.
		np.verbose = !np.verbose
	case ":":
		// Swap to COMMAND mode.
		np.userMsg = ""
		np.swapPlayerMode(COMMAND_MODE)
	default:
		np.ignore(key)
	}
	return nil
}

func (np *normalModePlayer) StatusLine() string {
	return np.userMsg
}
