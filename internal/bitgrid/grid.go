// Package bitgrid models the 32-cell toggle grid shown for the current value.
//
// The grid is a derived view: it is built from the 32-character binary text
// and every operation returns a new binary string instead of mutating the
// grid. Index 0 is the most significant bit (bit 31) and index 31 the least
// significant bit (bit 0).
package bitgrid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Width is the number of cells in the grid.
const Width = 32

// ErrIndexRange is returned for a cell index outside 0..Width-1.
var ErrIndexRange = errors.New("bit index out of range")

// Grid holds one bit per cell, most significant first.
type Grid struct {
	bits [Width]uint8
}

// FromBinary builds a grid from binary text. Short text is left-padded with
// zeros; long text keeps its Width least significant characters. Any
// character other than '1' reads as 0.
func FromBinary(text string) Grid {
	var g Grid
	if len(text) > Width {
		text = text[len(text)-Width:]
	}
	offset := Width - len(text)
	for i := 0; i < len(text); i++ {
		if text[i] == '1' {
			g.bits[offset+i] = 1
		}
	}
	return g
}

// FromValue builds a grid from a value.
func FromValue(v uint32) Grid {
	var g Grid
	for i := 0; i < Width; i++ {
		g.bits[i] = uint8(v >> uint(Position(i)) & 1)
	}
	return g
}

// Bit returns the bit at cell index i, or 0 when i is out of range.
func (g Grid) Bit(i int) uint8 {
	if i < 0 || i >= Width {
		return 0
	}
	return g.bits[i]
}

// Bits returns a copy of all cells, most significant first.
func (g Grid) Bits() [Width]uint8 {
	return g.bits
}

// Binary renders the grid as 32 characters of '0' and '1'.
func (g Grid) Binary() string {
	var b strings.Builder
	b.Grow(Width)
	for _, bit := range g.bits {
		b.WriteByte('0' + bit)
	}
	return b.String()
}

// Value returns the grid as an unsigned integer.
func (g Grid) Value() uint32 {
	var v uint32
	for _, bit := range g.bits {
		v = v<<1 | uint32(bit)
	}
	return v
}

// Toggle flips the cell at index i and returns the new binary text.
func (g Grid) Toggle(i int) (string, error) {
	if i < 0 || i >= Width {
		return "", fmt.Errorf("%w: %d (want 0-%d)", ErrIndexRange, i, Width-1)
	}
	g.bits[i] ^= 1
	return g.Binary(), nil
}

// SetAll returns the binary text with every bit set.
func (g Grid) SetAll() string {
	return strings.Repeat("1", Width)
}

// ClearAll returns the binary text with every bit cleared.
func (g Grid) ClearAll() string {
	return strings.Repeat("0", Width)
}

// ShiftLeft drops the most significant bit and shifts a 0 in at the bottom.
func (g Grid) ShiftLeft() string {
	b := g.Binary()
	return b[1:] + "0"
}

// ShiftRight drops the least significant bit and shifts a 0 in at the top.
func (g Grid) ShiftRight() string {
	b := g.Binary()
	return "0" + b[:Width-1]
}

// Position returns the bit number (31..0) shown at cell index i.
func Position(i int) int {
	return Width - 1 - i
}

// labelled bit numbers sit on byte boundaries
var labelled = map[int]bool{31: true, 24: true, 23: true, 16: true, 15: true, 8: true, 7: true, 0: true}

// Label returns the caption above cell index i: its bit number on byte
// boundaries, otherwise "".
func Label(i int) string {
	if i < 0 || i >= Width {
		return ""
	}
	pos := Position(i)
	if !labelled[pos] {
		return ""
	}
	return strconv.Itoa(pos)
}
