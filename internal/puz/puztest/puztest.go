// Package puztest builds .puz files in memory for tests.
package puztest

import (
	"bytes"
	"encoding/binary"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Puzzle describes a file to encode. Rows of Solution and Fill are strings of grid characters.
// A nil Fill means every white square is empty.
type Puzzle struct {
	Solution  []string
	Fill      []string
	Title     string
	Author    string
	Copyright string
	Clues     []string
	Notes     string

	// ClueCount overrides the header's clue count when non-zero.
	ClueCount int
}

// Bytes encodes p. Checksums and magic are left zeroed since nothing reads them.
func (p Puzzle) Bytes() []byte {
	width, height := utf8.RuneCountInString(p.Solution[0]), len(p.Solution)
	fill := p.Fill
	if fill == nil {
		fill = make([]string, height)
		for y, row := range p.Solution {
			var b strings.Builder
			for _, r := range row {
				if r == '.' {
					b.WriteRune('.')
				} else {
					b.WriteRune('-')
				}
			}
			fill[y] = b.String()
		}
	}
	numClues := p.ClueCount
	if numClues == 0 {
		numClues = len(p.Clues)
	}

	var buf bytes.Buffer
	buf.Write(make([]byte, 0x2c))
	buf.WriteByte(byte(width))
	buf.WriteByte(byte(height))
	binary.Write(&buf, binary.LittleEndian, uint16(numClues))
	buf.Write(make([]byte, 4))
	for _, grid := range [][]string{p.Solution, fill} {
		for _, row := range grid {
			writeLatin1(&buf, row)
		}
	}
	strs := append([]string{p.Title, p.Author, p.Copyright}, p.Clues...)
	strs = append(strs, p.Notes)
	for _, s := range strs {
		writeLatin1(&buf, s)
		buf.WriteByte(0)
	}
	return buf.Bytes()
}

func writeLatin1(buf *bytes.Buffer, s string) {
	for _, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b = '?'
		}
		buf.WriteByte(b)
	}
}

// ThreeByThree is the open 3x3 grid with answers A-I in row-major order.
func ThreeByThree() Puzzle {
	return Puzzle{
		Solution: []string{"ABC", "DEF", "GHI"},
		Title:    "Tiny",
		Author:   "Nobody",
		Clues:    []string{"ABC", "ADG", "BEH", "CFI", "DEF", "GHI"},
	}
}
