package crossword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A.B
// CDE
// F.G
func holey(t *testing.T) *Puzzle {
	return mustBuild(t, texts(8), "A.B", "CDE", "F.G")
}

func threeByThree(t *testing.T) *Puzzle {
	return mustBuild(t, texts(6), "ABC", "DEF", "GHI")
}

func TestMove(t *testing.T) {
	tests := []struct {
		name   string
		from   Point
		dx, dy int
		want   Point
	}{
		{"hops black square", Point{0, 0}, 1, 0, Point{2, 0}},
		{"off the right edge", Point{2, 0}, 1, 0, Point{2, 0}},
		{"off the top edge", Point{0, 0}, 0, -1, Point{0, 0}},
		{"down", Point{2, 0}, 0, 1, Point{2, 1}},
		{"up into black then edge", Point{1, 1}, 0, -1, Point{1, 1}},
		{"down into black then edge", Point{1, 1}, 0, 1, Point{1, 1}},
		{"left", Point{2, 1}, -1, 0, Point{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := holey(t)
			p.jump(tt.from)
			p.Move(tt.dx, tt.dy)
			assert.Equal(t, tt.want, p.Cursor())
		})
	}
}

func TestStartEnd(t *testing.T) {
	p := holey(t)
	p.jump(Point{1, 1})
	p.Start()
	assert.Equal(t, Point{0, 1}, p.Cursor())
	p.End()
	assert.Equal(t, Point{2, 1}, p.Cursor())

	p.jump(Point{1, 1})
	p.Toggle()
	p.Start()
	assert.Equal(t, Point{1, 1}, p.Cursor())
	p.End()
	assert.Equal(t, Point{1, 1}, p.Cursor())
}

func TestToggle(t *testing.T) {
	p := threeByThree(t)
	p.jump(Point{1, 1})
	p.Toggle()
	assert.Equal(t, Down, p.Direction())
	assert.Equal(t, Point{1, 1}, p.Cursor())
	assert.Equal(t, 2, p.CurrentClue().Number)
	p.Toggle()
	assert.Equal(t, Across, p.Direction())
	assert.Equal(t, 4, p.CurrentClue().Number)
}

func TestNextClue_VisitsEveryClueThenWraps(t *testing.T) {
	p := holey(t)
	type stop struct {
		d      Direction
		number int
	}
	var got []stop
	for i := 0; i < 9; i++ {
		got = append(got, stop{p.Direction(), p.CurrentClue().Number})
		p.NextClue()
	}
	assert.Equal(t, []stop{
		{Across, 1}, {Across, 2}, {Across, 3}, {Across, 5}, {Across, 6},
		{Down, 1}, {Down, 2}, {Down, 4},
		{Across, 1},
	}, got)
	assert.Equal(t, Point{2, 0}, p.Cursor())
}

func TestNextClue_LandsOnStart(t *testing.T) {
	p := threeByThree(t)
	p.jump(Point{1, 0})
	p.NextClue()
	assert.Equal(t, Point{0, 1}, p.Cursor())
}

func TestPrevClue_Wraps(t *testing.T) {
	p := holey(t)
	p.PrevClue()
	assert.Equal(t, Down, p.Direction())
	assert.Equal(t, 4, p.CurrentClue().Number)
	assert.Equal(t, Point{1, 1}, p.Cursor())

	p.PrevClue()
	assert.Equal(t, Down, p.Direction())
	assert.Equal(t, Point{2, 0}, p.Cursor())

	p.jump(Point{2, 2})
	p.Toggle()
	p.PrevClue()
	assert.Equal(t, Across, p.Direction())
	assert.Equal(t, Point{0, 2}, p.Cursor())
}

func TestAdvanceRetreat_WithinSpan(t *testing.T) {
	p := threeByThree(t)
	for _, d := range Directions {
		p.direction = d
		p.jump(Point{1, 1})
		p.Advance()
		if d == Across {
			assert.Equal(t, Point{2, 1}, p.Cursor())
		} else {
			assert.Equal(t, Point{1, 2}, p.Cursor())
		}
		p.Retreat()
		assert.Equal(t, Point{1, 1}, p.Cursor())
		assert.Equal(t, d, p.Direction())
	}
}

func TestAdvanceRetreat_AcrossClueBoundary(t *testing.T) {
	p := threeByThree(t)
	p.jump(Point{2, 0})
	p.Advance()
	assert.Equal(t, Point{0, 1}, p.Cursor())
	assert.Equal(t, Across, p.Direction())

	p.Retreat()
	assert.Equal(t, Point{2, 0}, p.Cursor())
	assert.Equal(t, Across, p.Direction())
}

func TestAdvanceRetreat_AcrossListBoundary(t *testing.T) {
	p := threeByThree(t)
	p.jump(Point{2, 2})
	p.Advance()
	assert.Equal(t, Point{0, 0}, p.Cursor())
	assert.Equal(t, Down, p.Direction())

	// Retreating off the first down clue goes back to the end of the last across clue.
	p.Retreat()
	assert.Equal(t, Point{2, 2}, p.Cursor())
	assert.Equal(t, Across, p.Direction())
}

func TestRetreat_FromFirstSquare(t *testing.T) {
	p := holey(t)
	p.Retreat()
	// The last down clue is the single square 4-down.
	assert.Equal(t, Point{1, 1}, p.Cursor())
	assert.Equal(t, Down, p.Direction())
}

// fill types letters into the squares of a 3x3 puzzle in row-major order; '-' leaves a square empty.
func fill(t *testing.T, p *Puzzle, rows ...string) {
	t.Helper()
	saved := p.cursor
	for y, row := range rows {
		for x, r := range row {
			p.jump(Point{x, y})
			if r == '-' {
				p.Delete()
			} else {
				require.True(t, p.Type(r))
			}
		}
	}
	p.cursor = saved
}

func TestFind_Empty_SkipsRuns(t *testing.T) {
	p := threeByThree(t)
	fill(t, p, "ab-", "c--", "def")

	require.True(t, p.Find(IsEmpty, true, true))
	assert.Equal(t, Point{2, 0}, p.Cursor())

	// From inside the first run, jump to the next run rather than the next square.
	require.True(t, p.Find(IsEmpty, true, true))
	assert.Equal(t, Point{1, 1}, p.Cursor())

	assert.False(t, p.Find(IsEmpty, true, true))
	assert.Equal(t, Point{1, 1}, p.Cursor())

	require.True(t, p.Find(IsEmpty, false, true))
	assert.Equal(t, Point{2, 0}, p.Cursor())
}

func TestFind_SkipRepeatsFromMiddleOfRun(t *testing.T) {
	p := threeByThree(t)
	fill(t, p, "---", "ab-", "--c")
	p.jump(Point{1, 0})

	require.True(t, p.Find(IsEmpty, true, true))
	assert.Equal(t, Point{2, 1}, p.Cursor())

	// Without skipping, the very next empty square is chosen.
	p.jump(Point{1, 0})
	require.True(t, p.Find(IsEmpty, true, false))
	assert.Equal(t, Point{2, 0}, p.Cursor())
}

func TestFind_Letter(t *testing.T) {
	p := threeByThree(t)
	fill(t, p, "aba", "---", "b-a")

	// The current square is never a match when not skipping repeats.
	require.True(t, p.Find(HasLetter('A'), true, false))
	assert.Equal(t, Point{2, 0}, p.Cursor())
	require.True(t, p.Find(HasLetter('A'), true, false))
	assert.Equal(t, Point{2, 2}, p.Cursor())
	assert.False(t, p.Find(HasLetter('A'), true, false))

	require.True(t, p.Find(HasLetter('B'), false, false))
	assert.Equal(t, Point{0, 2}, p.Cursor())
	require.True(t, p.Find(HasLetter('B'), false, false))
	assert.Equal(t, Point{1, 0}, p.Cursor())
}

func TestFind_FollowsDirection(t *testing.T) {
	p := threeByThree(t)
	fill(t, p, "a--", "---", "-a-")
	p.Toggle()

	// Down order is A D G B E H C F I.
	require.True(t, p.Find(HasLetter('A'), true, false))
	assert.Equal(t, Point{1, 2}, p.Cursor())
	assert.Equal(t, Down, p.Direction())
}

func TestFind_Status(t *testing.T) {
	p := threeByThree(t)
	fill(t, p, "aBc", "dEf", "ghI")

	require.True(t, p.Find(HasStatus(Pencil), true, true))
	assert.Equal(t, Point{1, 0}, p.Cursor())
	require.True(t, p.Find(HasStatus(Pencil), true, true))
	assert.Equal(t, Point{1, 1}, p.Cursor())
	require.True(t, p.Find(HasStatus(Pencil), true, true))
	assert.Equal(t, Point{2, 2}, p.Cursor())
}
