package converter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/muurk/basemaster/internal/bitgrid"
	"github.com/muurk/basemaster/internal/radix"
)

func TestNewIsEmpty(t *testing.T) {
	c := New()
	assert.True(t, c.Empty())
	assert.True(t, c.Fields().IsEmpty())
	_, ok := c.Value()
	assert.False(t, ok)
	assert.Equal(t, radix.Permissive, c.Mode())
}

func TestEditAccepted(t *testing.T) {
	c := New()

	assert.Equal(t, Accepted, c.Edit(radix.Hex, "1A"))
	v, ok := c.Value()
	require.True(t, ok)
	assert.Equal(t, uint32(26), v)
	assert.Equal(t, radix.Fields{
		Decimal: "26",
		Octal:   "32",
		Hex:     "1A",
		Binary:  "00000000000000000000000000011010",
	}, c.Fields())
}

func TestEditEmptyClears(t *testing.T) {
	c := New()
	c.Edit(radix.Decimal, "99")

	assert.Equal(t, Cleared, c.Edit(radix.Octal, ""))
	assert.True(t, c.Empty())
	assert.True(t, c.Fields().IsEmpty())
}

func TestEditInvalidKeepsDisplay(t *testing.T) {
	c := New()
	c.Edit(radix.Decimal, "255")
	before := c.Fields()

	outcome := c.Edit(radix.Hex, "G")
	assert.Equal(t, Ignored, outcome)
	assert.False(t, outcome.Changed())
	assert.Equal(t, before, c.Fields())

	v, ok := c.Value()
	require.True(t, ok)
	assert.Equal(t, uint32(255), v)
}

func TestEditInvalidFromEmptyStaysEmpty(t *testing.T) {
	c := New()
	assert.Equal(t, Ignored, c.Edit(radix.Decimal, "zzz"))
	assert.True(t, c.Empty())
}

func TestStrictMode(t *testing.T) {
	c := New(WithMode(radix.Strict))
	assert.Equal(t, Ignored, c.Edit(radix.Decimal, "12abc"))
	assert.Equal(t, Accepted, c.Edit(radix.Decimal, "12"))

	p := New()
	assert.Equal(t, Accepted, p.Edit(radix.Decimal, "12abc"))
	assert.Equal(t, "12", p.Fields().Decimal)
}

func TestApplyOperations(t *testing.T) {
	tests := []struct {
		name  string
		start string
		op    bitgrid.Op
		index int
		want  uint32
	}{
		{name: "toggle msb on zero", start: "0", op: bitgrid.OpToggle, index: 0, want: 0x80000000},
		{name: "shift left drops msb", start: "80000001", op: bitgrid.OpShiftLeft, want: 0x00000002},
		{name: "shift right of one", start: "1", op: bitgrid.OpShiftRight, want: 0},
		{name: "set all", start: "5", op: bitgrid.OpSetAll, want: 0xFFFFFFFF},
		{name: "clear all", start: "FFFF", op: bitgrid.OpClearAll, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			require.Equal(t, Accepted, c.Edit(radix.Hex, tt.start))

			outcome, err := c.Apply(tt.op, tt.index)
			require.NoError(t, err)
			assert.Equal(t, Accepted, outcome)

			v, ok := c.Value()
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, radix.Format(tt.want), c.Fields())
		})
	}
}

func TestApplyFromEmpty(t *testing.T) {
	c := New()
	outcome, err := c.Apply(bitgrid.OpToggle, 31)
	require.NoError(t, err)
	assert.Equal(t, Accepted, outcome)
	assert.Equal(t, "1", c.Fields().Decimal)
	assert.Equal(t, strings.Repeat("0", 31)+"1", c.Fields().Binary)
}

func TestApplyOutOfRange(t *testing.T) {
	c := New()
	c.Edit(radix.Decimal, "7")

	outcome, err := c.Apply(bitgrid.OpToggle, 32)
	assert.ErrorIs(t, err, bitgrid.ErrIndexRange)
	assert.Equal(t, Ignored, outcome)
	assert.Equal(t, "7", c.Fields().Decimal)
}

func TestGridTracksBinary(t *testing.T) {
	c := New()
	c.Edit(radix.Binary, "101")
	g := c.Grid()
	assert.Equal(t, c.Fields().Binary, g.Binary())
	assert.Equal(t, uint8(1), g.Bit(29))
	assert.Equal(t, uint8(0), g.Bit(30))
	assert.Equal(t, uint8(1), g.Bit(31))
}

func TestEditsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := New(WithLogger(zap.New(core)))

	c.Edit(radix.Decimal, "abc")
	_, err := c.Apply(bitgrid.OpSetAll, 0)
	require.NoError(t, err)

	edits := logs.FilterMessage("Field edited").All()
	require.Len(t, edits, 2)
	assert.Equal(t, "ignored", edits[0].ContextMap()["outcome"])
	assert.Equal(t, "accepted", edits[1].ContextMap()["outcome"])
	assert.Equal(t, 1, logs.FilterMessage("Bit operation").Len())
}

func TestSetAndClear(t *testing.T) {
	c := New()
	c.Set(0xDEADBEEF)

	v, ok := c.Value()
	require.True(t, ok)
	assert.Equal(t, uint32(0xDEADBEEF), v)
	assert.Equal(t, "DEADBEEF", c.Fields().Hex)

	c.Clear()
	assert.True(t, c.Empty())
	assert.Equal(t, radix.FormatEmpty(), c.Fields())
}
