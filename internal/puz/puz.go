// Package puz decodes the Across Lite .puz binary puzzle format.
package puz

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	// Offset of the (width, height, clue count) triple. Everything before it is checksums and the
	// file magic, which we don't verify.
	boardOffset = 0x2c
	// The board triple is followed by a bitmask and the scrambled tag, neither of which we use.
	gridOffset = boardOffset + 4 + 4

	// Grid characters.
	BLACK = '.'
	EMPTY = '-'
)

var (
	ErrTruncated = errors.New("truncated")
	ErrClueCount = errors.New("clue count mismatch")
	ErrBadSize   = errors.New("bad board size")
)

// FormatError is returned for any file that can't be decoded into a puzzle.
type FormatError struct {
	Msg string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid puzzle file: %s", e.Msg)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatErrorf(err error, format string, args ...any) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(format, args...), Err: err}
}

// File is the raw content of a .puz file. Grids are indexed [y][x].
type File struct {
	Path string

	Width, Height int
	Solution      [][]rune
	Fill          [][]rune

	Title     string
	Author    string
	Copyright string
	Clues     []string // In the order the grid is numbered, across before down for a shared number.
	Notes     []string
}

// Open reads and decodes the puzzle at path.
func Open(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := Decode(file)
	if err != nil {
		return nil, err
	}
	f.Path = path
	return f, nil
}

// Decode reads a whole .puz file from r.
func Decode(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(data) < gridOffset {
		return nil, formatErrorf(ErrTruncated, "header needs %d bytes, got %d", gridOffset, len(data))
	}
	f := &File{
		Width:  int(data[boardOffset]),
		Height: int(data[boardOffset+1]),
	}
	numClues := int(binary.LittleEndian.Uint16(data[boardOffset+2 : boardOffset+4]))
	if f.Width == 0 || f.Height == 0 {
		return nil, formatErrorf(ErrBadSize, "board is %dx%d", f.Width, f.Height)
	}

	// Solution grid, then the fill grid.
	ofs := gridOffset
	gridLen := f.Width * f.Height
	if len(data) < ofs+2*gridLen {
		return nil, formatErrorf(ErrTruncated, "grids need %d bytes, got %d", 2*gridLen, len(data)-ofs)
	}
	f.Solution = decodeGrid(data[ofs:ofs+gridLen], f.Width, f.Height)
	ofs += gridLen
	f.Fill = decodeGrid(data[ofs:ofs+gridLen], f.Width, f.Height)
	ofs += gridLen

	// Strings section.
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(data[ofs:])
	if err != nil {
		return nil, formatErrorf(err, "strings section: %v", err)
	}
	strs := strings.Split(strings.TrimSuffix(string(text), "\x00"), "\x00")
	if len(strs) < 3 {
		return nil, formatErrorf(ErrTruncated, "missing title, author or copyright")
	}
	f.Title, f.Author, f.Copyright = strs[0], strs[1], strs[2]

	rest := strs[3:]
	if len(rest) < numClues {
		return nil, formatErrorf(ErrClueCount, "expected %d clues, got %d", numClues, len(rest))
	}
	f.Clues = rest[:numClues]
	f.Notes = rest[numClues:]
	return f, nil
}

func decodeGrid(b []byte, width, height int) [][]rune {
	grid := make([][]rune, height)
	for y := range grid {
		row := make([]rune, width)
		for x := range row {
			row[x] = charmap.ISO8859_1.DecodeByte(b[y*width+x])
		}
		grid[y] = row
	}
	return grid
}
