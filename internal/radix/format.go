package radix

import (
	"fmt"
	"strconv"
	"strings"
)

// Fields holds the text of every radix for one value.
type Fields struct {
	Decimal string `json:"decimal" yaml:"decimal"`
	Octal   string `json:"octal" yaml:"octal"`
	Hex     string `json:"hex" yaml:"hex"`
	Binary  string `json:"binary" yaml:"binary"`
}

// Format renders v in all four radixes.
func Format(v uint32) Fields {
	return Fields{
		Decimal: FormatRadix(v, Decimal),
		Octal:   FormatRadix(v, Octal),
		Hex:     FormatRadix(v, Hex),
		Binary:  FormatRadix(v, Binary),
	}
}

// FormatEmpty returns the all-blank fields shown for empty input.
func FormatEmpty() Fields {
	return Fields{}
}

// FormatRadix renders v in a single radix.
func FormatRadix(v uint32, r Radix) string {
	switch r {
	case Binary:
		return fmt.Sprintf("%0*b", BinaryWidth, v)
	case Hex:
		return strings.ToUpper(strconv.FormatUint(uint64(v), 16))
	case Octal, Decimal:
		return strconv.FormatUint(uint64(v), int(r))
	default:
		return ""
	}
}

// Get returns the field for radix r.
func (f Fields) Get(r Radix) string {
	switch r {
	case Binary:
		return f.Binary
	case Octal:
		return f.Octal
	case Decimal:
		return f.Decimal
	case Hex:
		return f.Hex
	}
	return ""
}

// IsEmpty reports whether f is the blank state.
func (f Fields) IsEmpty() bool {
	return f == Fields{}
}
