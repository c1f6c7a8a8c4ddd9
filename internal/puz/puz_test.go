package puz_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarnabikhan/xword/internal/puz"
	"github.com/omarnabikhan/xword/internal/puz/puztest"
)

func TestDecode(t *testing.T) {
	p := puztest.ThreeByThree()
	p.Copyright = "© 2024"
	p.Notes = "Have fun"

	f, err := puz.Decode(bytes.NewReader(p.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, 3, f.Width)
	assert.Equal(t, 3, f.Height)
	assert.Equal(t, [][]rune{[]rune("ABC"), []rune("DEF"), []rune("GHI")}, f.Solution)
	assert.Equal(t, [][]rune{[]rune("---"), []rune("---"), []rune("---")}, f.Fill)
	assert.Equal(t, "Tiny", f.Title)
	assert.Equal(t, "Nobody", f.Author)
	assert.Equal(t, "© 2024", f.Copyright)
	assert.Equal(t, []string{"ABC", "ADG", "BEH", "CFI", "DEF", "GHI"}, f.Clues)
	assert.Equal(t, []string{"Have fun"}, f.Notes)
}

func TestDecode_Latin1Grid(t *testing.T) {
	p := puztest.Puzzle{
		Solution: []string{"ÉA", ".B"},
		Fill:     []string{"É-", ".-"},
		Clues:    []string{"one", "two", "three"},
	}
	f, err := puz.Decode(bytes.NewReader(p.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 'É', f.Solution[0][0])
	assert.Equal(t, 'É', f.Fill[0][0])
	assert.Equal(t, puz.BLACK, f.Solution[1][0])
	assert.Equal(t, puz.EMPTY, f.Fill[1][1])
}

func TestDecode_NoTrailingNul(t *testing.T) {
	p := puztest.ThreeByThree()
	data := p.Bytes()
	// Drop the empty notes string and its terminator, then the last clue's terminator.
	data = data[:len(data)-2]

	f, err := puz.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "GHI", f.Clues[5])
	assert.Empty(t, f.Notes)
}

func TestDecode_ClueCountMismatch(t *testing.T) {
	p := puztest.Puzzle{
		Solution:  []string{"AB", "CD"},
		Clues:     []string{"one", "two", "three"},
		ClueCount: 5,
	}
	data := p.Bytes()
	// Strip the notes so only the three clues follow the copyright.
	data = data[:len(data)-1]

	_, err := puz.Decode(bytes.NewReader(data))
	require.Error(t, err)

	var formatErr *puz.FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.ErrorIs(t, err, puz.ErrClueCount)
	assert.Contains(t, err.Error(), "expected 5 clues, got 3")
}

func TestDecode_Truncated(t *testing.T) {
	full := puztest.ThreeByThree().Bytes()
	tests := []struct {
		name string
		size int
	}{
		{"empty", 0},
		{"mid header", 0x2d},
		{"before grids", 0x34},
		{"mid solution", 0x34 + 4},
		{"mid fill", 0x34 + 9 + 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := puz.Decode(bytes.NewReader(full[:tt.size]))
			require.Error(t, err)
			assert.ErrorIs(t, err, puz.ErrTruncated)
		})
	}
}

func TestDecode_MissingStrings(t *testing.T) {
	full := puztest.ThreeByThree().Bytes()
	// Grids and a title only.
	data := append(full[:0x34+18:0x34+18], []byte("Tiny\x00")...)
	_, err := puz.Decode(bytes.NewReader(data))
	assert.ErrorIs(t, err, puz.ErrTruncated)
}

func TestDecode_ZeroSize(t *testing.T) {
	data := make([]byte, 0x40)
	_, err := puz.Decode(bytes.NewReader(data))
	assert.ErrorIs(t, err, puz.ErrBadSize)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.puz")
	require.NoError(t, os.WriteFile(path, puztest.ThreeByThree().Bytes(), 0o644))

	f, err := puz.Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)
	assert.Len(t, f.Clues, 6)

	_, err = puz.Open(filepath.Join(t.TempDir(), "missing.puz"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
