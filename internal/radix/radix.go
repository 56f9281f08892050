package radix

import (
	"fmt"
	"strings"
)

// Radix is a numeral base understood by the engine.
type Radix int

const (
	Binary  Radix = 2
	Octal   Radix = 8
	Decimal Radix = 10
	Hex     Radix = 16
)

// All lists the supported radixes in the order fields are displayed.
var All = []Radix{Decimal, Hex, Octal, Binary}

// BinaryWidth is the fixed length of the binary field.
const BinaryWidth = 32

// Name returns the long display name of the radix.
func (r Radix) Name() string {
	switch r {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Decimal:
		return "Decimal"
	case Hex:
		return "Hexadecimal"
	default:
		return fmt.Sprintf("Radix(%d)", int(r))
	}
}

// String returns the short name used by flags and log fields.
func (r Radix) String() string {
	switch r {
	case Binary:
		return "bin"
	case Octal:
		return "oct"
	case Decimal:
		return "dec"
	case Hex:
		return "hex"
	default:
		return fmt.Sprintf("radix%d", int(r))
	}
}

// Valid reports whether r is one of the four supported radixes.
func (r Radix) Valid() bool {
	switch r {
	case Binary, Octal, Decimal, Hex:
		return true
	}
	return false
}

// ParseRadix maps a user supplied name to a Radix.
// Accepted: bin/binary/2, oct/octal/8, dec/decimal/10, hex/hexadecimal/16.
func ParseRadix(name string) (Radix, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bin", "binary", "2", "b":
		return Binary, nil
	case "oct", "octal", "8", "o":
		return Octal, nil
	case "dec", "decimal", "10", "d":
		return Decimal, nil
	case "hex", "hexadecimal", "16", "h", "x":
		return Hex, nil
	}
	return 0, fmt.Errorf("unknown radix %q (use bin, oct, dec or hex)", name)
}

// digit returns the value of c in radix r, or -1 when c is not a digit of r.
func (r Radix) digit(c byte) int {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'z':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		d = int(c-'A') + 10
	default:
		return -1
	}
	if d >= int(r) {
		return -1
	}
	return d
}
