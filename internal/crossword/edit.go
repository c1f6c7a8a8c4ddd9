package crossword

import "fmt"

// Type writes r into the current square. A lower-case letter is written upper-cased with normal
// status; an upper-case letter is pencilled in. Anything else is ignored and Type returns false.
func (p *Puzzle) Type(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z':
		p.Current().set(Letter(r-'a'+'A'), false)
	case 'A' <= r && r <= 'Z':
		p.Current().set(Letter(r), true)
	default:
		return false
	}
	return true
}

// Delete empties the current square.
func (p *Puzzle) Delete() {
	p.Current().set(Empty, false)
}

// Reveal fills the current square with its answer and advances.
func (p *Puzzle) Reveal() {
	sq := p.Current()
	sq.set(sq.answer, false)
	p.Advance()
}

// TogglePencil flips the pencil mark of a filled square. Empty squares are left alone.
func (p *Puzzle) TogglePencil() {
	if sq := p.Current(); !sq.IsEmpty() {
		sq.togglePencil()
	}
}

type Outcome int

const (
	NothingToCheck Outcome = iota // Every square is empty.
	HasWrong                      // At least one filled square is wrong.
	DoingFine                     // Nothing wrong, some squares empty.
	Complete                      // Every square filled in correctly.
)

func (o Outcome) String() string {
	switch o {
	case NothingToCheck:
		return "nothing to check"
	case HasWrong:
		return "has wrong"
	case DoingFine:
		return "doing fine"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

type CheckResult struct {
	Outcome Outcome
	Wrong   int // Number of wrong squares.
}

// Check classifies the whole grid:
//
//	                 no wrong squares    some wrong
//	none empty       Complete            HasWrong
//	some empty       DoingFine           HasWrong
//	all empty        NothingToCheck
//
// With markWrong, every wrong square is crossed, and unless there was nothing to check all
// pencil marks are cleared. A plain check doesn't touch the grid.
func (p *Puzzle) Check(markWrong bool) CheckResult {
	var res CheckResult
	filled := 0
	white := 0
	for i := range p.squares {
		sq := &p.squares[i]
		if sq.IsBlack() {
			continue
		}
		white++
		if !sq.IsEmpty() {
			filled++
		}
		if sq.IsWrong() {
			res.Wrong++
			if markWrong {
				sq.status = Cross
			}
		}
	}

	switch {
	case filled == 0:
		res.Outcome = NothingToCheck
	case res.Wrong > 0:
		res.Outcome = HasWrong
	case filled < white:
		res.Outcome = DoingFine
	default:
		res.Outcome = Complete
	}
	if markWrong && res.Outcome != NothingToCheck {
		p.erasePencil()
	}
	return res
}

func (p *Puzzle) erasePencil() {
	for i := range p.squares {
		if p.squares[i].status == Pencil {
			p.squares[i].status = Normal
		}
	}
}
