// Package converter owns the single current value and runs every edit through
// the radix engine.
//
// Text edits and grid operations take the same path: grid operations produce
// a 32-character binary string which is parsed in radix 2, exactly as if the
// user had typed it into the binary field.
package converter

import (
	"errors"

	"go.uber.org/zap"

	"github.com/muurk/basemaster/internal/bitgrid"
	"github.com/muurk/basemaster/internal/logging"
	"github.com/muurk/basemaster/internal/radix"
)

// Outcome describes what an edit did to the display.
type Outcome int

const (
	// Accepted means the value was replaced and every field reformatted.
	Accepted Outcome = iota
	// Cleared means the input was empty and every field is now blank.
	Cleared
	// Ignored means the input was not a numeral and nothing changed.
	Ignored
)

// String returns the outcome name used in logs.
func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Cleared:
		return "cleared"
	case Ignored:
		return "ignored"
	}
	return "unknown"
}

// Changed reports whether the display must be refreshed.
func (o Outcome) Changed() bool {
	return o != Ignored
}

// Converter holds the canonical value. The zero value is not usable; call New.
type Converter struct {
	parser radix.Parser
	log    *zap.Logger

	value  uint32
	set    bool
	fields radix.Fields
}

// Option configures a Converter.
type Option func(*Converter)

// WithMode selects the parse mode for every edit.
func WithMode(mode radix.Mode) Option {
	return func(c *Converter) {
		c.parser.Mode = mode
	}
}

// WithLogger routes converter events to l.
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a converter in the empty state.
func New(opts ...Option) *Converter {
	c := &Converter{
		log:    logging.GetLogger(),
		fields: radix.FormatEmpty(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the parse mode in use.
func (c *Converter) Mode() radix.Mode {
	return c.parser.Mode
}

// Edit applies text typed into the field for radix r.
func (c *Converter) Edit(r radix.Radix, text string) Outcome {
	v, err := c.parser.Parse(text, r)

	var outcome Outcome
	switch {
	case err == nil:
		c.Set(v)
		outcome = Accepted
	case errors.Is(err, radix.ErrEmpty):
		c.Clear()
		outcome = Cleared
	default:
		// Invalid input keeps the previous display.
		outcome = Ignored
	}

	logging.LogEdit(c.log, r.String(), text, outcome.String())
	return outcome
}

// Apply runs a grid operation against the current value. The empty state
// behaves as all zeros. index is only used by bitgrid.OpToggle.
func (c *Converter) Apply(op bitgrid.Op, index int) (Outcome, error) {
	before := c.value
	binary, err := c.Grid().Apply(op, index)
	if err != nil {
		return Ignored, err
	}

	outcome := c.Edit(radix.Binary, binary)
	logging.LogBitOp(c.log, op.String(), index, before, c.value)
	return outcome, nil
}

// Set replaces the value directly.
func (c *Converter) Set(v uint32) {
	c.value = v
	c.set = true
	c.fields = radix.Format(v)
}

// Clear returns to the empty state.
func (c *Converter) Clear() {
	c.value = 0
	c.set = false
	c.fields = radix.FormatEmpty()
}

// Value returns the current value and whether one is set.
func (c *Converter) Value() (uint32, bool) {
	return c.value, c.set
}

// Empty reports whether the converter is in the empty state.
func (c *Converter) Empty() bool {
	return !c.set
}

// Fields returns the text of every radix for the current value.
func (c *Converter) Fields() radix.Fields {
	return c.fields
}

// Grid returns the bit grid derived from the binary field.
func (c *Converter) Grid() bitgrid.Grid {
	return bitgrid.FromBinary(c.fields.Binary)
}
