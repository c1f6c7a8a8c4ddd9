package crossword

// Move steps in direction (dx, dy), hopping over black squares. If it runs off the grid before
// reaching a white square, the cursor stays where it is.
func (p *Puzzle) Move(dx, dy int) {
	x, y := p.cursor.X+dx, p.cursor.Y+dy
	for p.InRange(x, y) {
		if !p.Square(x, y).IsBlack() {
			p.jump(Point{x, y})
			return
		}
		x += dx
		y += dy
	}
}

// Start jumps to the first square of the current clue.
func (p *Puzzle) Start() {
	p.jump(p.CurrentClue().Start())
}

// End jumps to the last square of the current clue.
func (p *Puzzle) End() {
	p.jump(p.CurrentClue().End())
}

// Toggle swaps between across and down without moving.
func (p *Puzzle) Toggle() {
	p.direction = p.direction.Other()
}

// NextClue jumps to the start of the next clue. After the last clue of one direction comes the
// first clue of the other, so repeated calls cycle through every clue in the puzzle.
func (p *Puzzle) NextClue() {
	if next := p.CurrentClue().next; next != none {
		p.jump(p.clues[p.direction][next].Start())
		return
	}
	p.jump(p.clues[p.direction.Other()][0].Start())
	p.Toggle()
}

// PrevClue jumps to the start of the previous clue, wrapping to the last clue of the other
// direction.
func (p *Puzzle) PrevClue() {
	if prev := p.CurrentClue().prev; prev != none {
		p.jump(p.clues[p.direction][prev].Start())
		return
	}
	other := p.clues[p.direction.Other()]
	p.jump(other[len(other)-1].Start())
	p.Toggle()
}

// Advance moves one square along the current clue, or to the start of the next clue from its
// last square.
func (p *Puzzle) Advance() {
	if next := p.Current().next[p.direction]; next != none {
		p.jump(p.squares[next].pos)
		return
	}
	p.NextClue()
}

// Retreat moves one square back along the current clue, or to the end of the previous clue from
// its first square.
func (p *Puzzle) Retreat() {
	if prev := p.Current().prev[p.direction]; prev != none {
		p.jump(p.squares[prev].pos)
		return
	}
	p.PrevClue()
	p.End()
}

// Find jumps to the first square after (or before) the cursor that satisfies match, following
// the current direction's clues in order without wrapping. It reports whether it moved.
//
// With skipRepeats, the run of matching squares starting at the cursor is skipped, then the run
// of non-matching squares after it, so the jump always lands on the start of the next run:
//
//	xxx   xxx
//	^     #
func (p *Puzzle) Find(match func(*Square) bool, forward, skipRepeats bool) bool {
	id := p.currentID()
	if skipRepeats {
		for id != none && match(&p.squares[id]) {
			id = p.step(id, forward)
		}
	} else {
		id = p.step(id, forward)
	}
	for id != none && !match(&p.squares[id]) {
		id = p.step(id, forward)
	}
	if id == none {
		return false
	}
	p.jump(p.squares[id].pos)
	return true
}

// step returns the square after (or before) id in traversal order of the current direction:
// along the span, then on to the neighbouring clue.
func (p *Puzzle) step(id int, forward bool) int {
	d := p.direction
	sq := &p.squares[id]
	clue := &p.clues[d][sq.clue[d]]
	if forward {
		if sq.next[d] != none {
			return sq.next[d]
		}
		if clue.next == none {
			return none
		}
		start := p.clues[d][clue.next].Start()
		return p.index(start.X, start.Y)
	}
	if sq.prev[d] != none {
		return sq.prev[d]
	}
	if clue.prev == none {
		return none
	}
	end := p.clues[d][clue.prev].End()
	return p.index(end.X, end.Y)
}

// HasLetter matches squares whose buffer holds r.
func HasLetter(r rune) func(*Square) bool {
	return func(s *Square) bool {
		l, ok := s.buffer.Letter()
		return ok && l == r
	}
}

// HasStatus matches squares marked with st.
func HasStatus(st Status) func(*Square) bool {
	return func(s *Square) bool {
		return s.status == st
	}
}

// IsEmpty matches squares with nothing in them.
func IsEmpty(s *Square) bool {
	return s.IsEmpty()
}
