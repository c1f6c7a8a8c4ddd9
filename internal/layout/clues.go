package layout

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/omarnabikhan/xword/internal/crossword"
)

const clueIndent = 4

// ClueLines word-wraps the text of a clue to width columns with a hanging indent. The first line
// carries the clue number, preceded by '>' when active:
//
//	>12 First line of the clue
//	    and the rest of it
func ClueLines(number int, text string, active bool, width int) []string {
	textWidth := max(width-clueIndent, 1)
	text = strings.Join(strings.Fields(text), " ")
	wrapped := wrap.String(wordwrap.String(text, textWidth), textWidth)

	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.Repeat(" ", clueIndent) + strings.TrimRight(line, " ")
	}
	cursor := " "
	if active {
		cursor = ">"
	}
	lines[0] = strings.TrimRight(fmt.Sprintf("%s%2d %s", cursor, number, lines[0][clueIndent:]), " ")
	return lines
}

// CluePanel lays out the clues of one direction in a panel rows high. The clue crossing the
// cursor is marked, and it's bold when it's the clue being worked on. The panel scrolls so the
// marked clue is on top, unless everything after it fits, in which case the end of the list is
// shown.
func CluePanel(p *crossword.Puzzle, d crossword.Direction, width, rows int) []Line {
	active := p.ClueOf(p.Current(), d)
	current := p.CurrentClue()

	var lines []Line
	start := 0
	clues := p.Clues(d)
	for i := range clues {
		clue := &clues[i]
		isActive := clue.Number == active.Number
		if isActive {
			start = len(lines)
		}
		bold := isActive && d == current.Direction
		for _, s := range ClueLines(clue.Number, clue.Text(), isActive, width) {
			lines = append(lines, Line{{Text: s, Bold: bold}})
		}
	}

	if len(lines)-start > rows {
		return lines[start : start+rows]
	}
	return lines[max(len(lines)-rows, 0):]
}

// Truncate cuts s to fit width display columns.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}
