// Package reftable provides the static conversion table of small sample
// values. It never depends on the live value.
package reftable

import (
	"fmt"

	"github.com/muurk/basemaster/internal/radix"
)

// Samples are the values listed in the table, in display order.
var Samples = []uint32{1, 2, 4, 8, 10, 16, 32, 64, 127, 255}

// ByteWidth is the padding of the binary column.
const ByteWidth = 8

// Row is one line of the table.
type Row struct {
	Decimal string `json:"decimal" yaml:"decimal"`
	Binary  string `json:"binary" yaml:"binary"`
	Octal   string `json:"octal" yaml:"octal"`
	Hex     string `json:"hex" yaml:"hex"`
}

// Headers are the column titles matching Row.Cells.
var Headers = []string{"Decimal", "Binary", "Octal", "Hex"}

// NewRow formats n for the table. Binary is padded to 8 digits.
func NewRow(n uint32) Row {
	f := radix.Format(n)
	return Row{
		Decimal: f.Decimal,
		Binary:  fmt.Sprintf("%0*b", ByteWidth, n),
		Octal:   f.Octal,
		Hex:     f.Hex,
	}
}

// Cells returns the row in column order.
func (r Row) Cells() []string {
	return []string{r.Decimal, r.Binary, r.Octal, r.Hex}
}

// Rows returns the full table.
func Rows() []Row {
	rows := make([]Row, len(Samples))
	for i, n := range Samples {
		rows[i] = NewRow(n)
	}
	return rows
}

// Lookup returns the row for a sample value.
func Lookup(n uint32) (Row, bool) {
	for _, s := range Samples {
		if s == n {
			return NewRow(n), true
		}
	}
	return Row{}, false
}
