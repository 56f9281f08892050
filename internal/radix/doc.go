// Package radix converts the canonical 32-bit unsigned value to and from its
// decimal, octal, hexadecimal and binary text forms.
//
// # Parsing
//
// Parse reports two conditions besides success:
//
//   - ErrEmpty: the text was empty. Callers clear every field.
//   - ErrInvalid: no numeral could be read. Callers keep the previous display.
//
// Both are returned wrapped in a *ParseError and can be tested with
// errors.Is.
//
// Two parse modes exist. Permissive (the default) reads the longest valid
// leading numeral and ignores whatever follows it:
//
//	radix.Parse("12abc", radix.Decimal) // 12
//	radix.Parse("-1", radix.Decimal)    // 0xFFFFFFFF
//	radix.Parse("0x1f", radix.Hex)      // 31
//
// Strict accepts digits of the radix only:
//
//	p := radix.Parser{Mode: radix.Strict}
//	p.Parse("12abc", radix.Decimal) // ErrInvalid
//
// In both modes values wider than 32 bits wrap modulo 2^32.
//
// # Formatting
//
// Format renders every radix at once. Hex is upper-case without a prefix and
// binary is always 32 characters wide:
//
//	f := radix.Format(255)
//	// f.Decimal == "255", f.Octal == "377", f.Hex == "FF"
//	// f.Binary  == "00000000000000000000000011111111"
package radix
