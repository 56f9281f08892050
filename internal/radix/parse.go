package radix

import (
	"fmt"
	"strings"
	"unicode"
)

// Mode selects how much non-canonical input Parse tolerates.
type Mode int

const (
	// Permissive reads the longest leading numeral: leading whitespace, a
	// sign and a 0x prefix (hex only) are accepted and trailing text is
	// ignored. A leading '-' wraps the magnitude modulo 2^32.
	Permissive Mode = iota
	// Strict accepts only digits of the radix.
	Strict
)

// String returns the config file spelling of the mode.
func (m Mode) String() string {
	switch m {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a config or flag value to a Mode. Empty means Permissive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	}
	return Permissive, fmt.Errorf("unknown parse mode %q (use permissive or strict)", s)
}

// Parser parses text in a given radix into the canonical value.
// The zero value is a permissive parser.
type Parser struct {
	Mode Mode
}

// Parse parses text with the default permissive parser.
func Parse(text string, r Radix) (uint32, error) {
	return Parser{}.Parse(text, r)
}

// Parse parses text in radix r. The result is reduced modulo 2^32.
// Failures are *ParseError wrapping ErrEmpty or ErrInvalid.
func (p Parser) Parse(text string, r Radix) (uint32, error) {
	if !r.Valid() {
		return 0, fmt.Errorf("unsupported radix %d", int(r))
	}
	if text == "" {
		return 0, &ParseError{Text: text, Radix: r, Err: ErrEmpty}
	}

	var (
		v  uint32
		ok bool
	)
	if p.Mode == Strict {
		v, ok = parseStrict(text, r)
	} else {
		v, ok = parsePrefix(text, r)
	}
	if !ok {
		return 0, &ParseError{Text: text, Radix: r, Err: ErrInvalid}
	}
	return v, nil
}

func parseStrict(text string, r Radix) (uint32, bool) {
	v, n := accumulate(text, r)
	return v, n > 0 && n == len(text)
}

func parsePrefix(text string, r Radix) (uint32, bool) {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	if r == Hex && len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	v, n := accumulate(s, r)
	if n == 0 {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}

// accumulate consumes leading digits of s and returns their value modulo
// 2^32 together with the number of bytes consumed.
func accumulate(s string, r Radix) (uint32, int) {
	var v uint32
	n := 0
	for n < len(s) {
		d := r.digit(s[n])
		if d < 0 {
			break
		}
		v = v*uint32(r) + uint32(d)
		n++
	}
	return v, n
}
