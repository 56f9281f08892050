package radix

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty means the input text was empty. Callers clear every field.
	ErrEmpty = errors.New("empty input")
	// ErrInvalid means no numeral could be read. Callers keep the previous display.
	ErrInvalid = errors.New("invalid numeral")
)

// ParseError records the text and radix of a failed parse.
type ParseError struct {
	Text  string
	Radix Radix
	Err   error // ErrEmpty or ErrInvalid
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Err == ErrEmpty {
		return fmt.Sprintf("%s: %v", e.Radix.Name(), e.Err)
	}
	return fmt.Sprintf("%s: %v %q", e.Radix.Name(), e.Err, e.Text)
}

// Unwrap returns the sentinel for errors.Is
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsEmpty reports whether err is an empty-input result.
func IsEmpty(err error) bool {
	return errors.Is(err, ErrEmpty)
}

// IsInvalid reports whether err is an invalid-numeral result.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}
