package bitgrid

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValueMatchesFromBinary(t *testing.T) {
	values := []uint32{0, 1, 0x80000000, 0x80000001, 0xDEADBEEF, 0xFFFFFFFF}
	for _, v := range values {
		g := FromValue(v)
		assert.Equal(t, v, g.Value(), "value %#x", v)
		assert.Equal(t, g, FromBinary(g.Binary()), "value %#x", v)
		assert.Len(t, g.Binary(), Width)
	}
}

func TestCellIndexIsMostSignificantFirst(t *testing.T) {
	g := FromValue(0x80000001)
	assert.Equal(t, uint8(1), g.Bit(0))
	assert.Equal(t, uint8(1), g.Bit(31))
	for i := 1; i < 31; i++ {
		assert.Equal(t, uint8(0), g.Bit(i), "cell %d", i)
	}
	assert.Equal(t, uint8(0), g.Bit(-1))
	assert.Equal(t, uint8(0), g.Bit(32))
}

func TestFromBinaryNormalizes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want uint32
	}{
		{name: "empty", text: "", want: 0},
		{name: "short is left padded", text: "101", want: 5},
		{name: "long keeps low bits", text: "11" + strings.Repeat("0", 30) + "1", want: 0x80000001},
		{name: "foreign characters read as zero", text: "1x1", want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := FromBinary(tt.text)
			assert.Equal(t, tt.want, g.Value())
			assert.Len(t, g.Binary(), Width)
		})
	}
}

func TestToggle(t *testing.T) {
	got, err := FromValue(0).Toggle(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x80000000), FromBinary(got).Value())

	got, err = FromValue(0xFFFFFFFF).Toggle(31)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFFFFFFE), FromBinary(got).Value())

	// Only the target cell changes.
	before := FromValue(0xA5A5A5A5)
	got, err = before.Toggle(12)
	require.NoError(t, err)
	after := FromBinary(got)
	for i := 0; i < Width; i++ {
		if i == 12 {
			assert.NotEqual(t, before.Bit(i), after.Bit(i))
			continue
		}
		assert.Equal(t, before.Bit(i), after.Bit(i), "cell %d", i)
	}
}

func TestToggleDoesNotMutate(t *testing.T) {
	g := FromValue(0)
	_, err := g.Toggle(5)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), g.Value())
}

func TestToggleOutOfRange(t *testing.T) {
	for _, i := range []int{-1, 32, 100} {
		_, err := FromValue(0).Toggle(i)
		assert.True(t, errors.Is(err, ErrIndexRange), "index %d: %v", i, err)
	}
}

func TestSetAllClearAll(t *testing.T) {
	g := FromValue(0x1234)
	assert.Equal(t, uint32(0xFFFFFFFF), FromBinary(g.SetAll()).Value())
	assert.Equal(t, uint32(0), FromBinary(g.ClearAll()).Value())
	assert.Len(t, g.SetAll(), Width)
	assert.Len(t, g.ClearAll(), Width)
}

func TestShifts(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		op    func(Grid) string
		want  uint32
	}{
		{name: "left drops msb", value: 0x80000001, op: Grid.ShiftLeft, want: 0x00000002},
		{name: "left of max", value: 0xFFFFFFFF, op: Grid.ShiftLeft, want: 0xFFFFFFFE},
		{name: "right drops lsb", value: 1, op: Grid.ShiftRight, want: 0},
		{name: "right no sign extension", value: 0x80000000, op: Grid.ShiftRight, want: 0x40000000},
		{name: "right of max", value: 0xFFFFFFFF, op: Grid.ShiftRight, want: 0x7FFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.op(FromValue(tt.value))
			assert.Len(t, out, Width)
			assert.Equal(t, tt.want, FromBinary(out).Value())
		})
	}
}

func TestApply(t *testing.T) {
	g := FromValue(3)

	out, err := g.Apply(OpShiftLeft, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(6), FromBinary(out).Value())

	out, err = g.Apply(OpToggle, 31)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), FromBinary(out).Value())

	_, err = g.Apply(OpToggle, 40)
	assert.ErrorIs(t, err, ErrIndexRange)

	_, err = g.Apply(Op(99), 0)
	assert.Error(t, err)
}

func TestParseOp(t *testing.T) {
	for _, op := range []Op{OpToggle, OpShiftLeft, OpShiftRight, OpSetAll, OpClearAll} {
		got, err := ParseOp(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}
	_, err := ParseOp("rotate")
	assert.Error(t, err)
	assert.True(t, OpToggle.NeedsIndex())
	assert.False(t, OpSetAll.NeedsIndex())
}

func TestLabels(t *testing.T) {
	var labelled []string
	for i := 0; i < Width; i++ {
		if l := Label(i); l != "" {
			labelled = append(labelled, l)
		}
	}
	assert.Equal(t, []string{"31", "24", "23", "16", "15", "8", "7", "0"}, labelled)
	assert.Equal(t, "31", Label(0))
	assert.Equal(t, "0", Label(31))
	assert.Equal(t, "", Label(1))
	assert.Equal(t, "", Label(-1))
}
