package reftable

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRows(t *testing.T) {
	want := []Row{
		{"1", "00000001", "1", "1"},
		{"2", "00000010", "2", "2"},
		{"4", "00000100", "4", "4"},
		{"8", "00001000", "10", "8"},
		{"10", "00001010", "12", "A"},
		{"16", "00010000", "20", "10"},
		{"32", "00100000", "40", "20"},
		{"64", "01000000", "100", "40"},
		{"127", "01111111", "177", "7F"},
		{"255", "11111111", "377", "FF"},
	}
	if diff := cmp.Diff(want, Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	row, ok := Lookup(255)
	assert.True(t, ok)
	assert.Equal(t, "11111111", row.Binary)
	assert.Equal(t, "377", row.Octal)
	assert.Equal(t, "FF", row.Hex)

	_, ok = Lookup(3)
	assert.False(t, ok)
}

func TestCellsOrder(t *testing.T) {
	row := NewRow(10)
	assert.Equal(t, []string{"10", "00001010", "12", "A"}, row.Cells())
	assert.Len(t, Headers, len(row.Cells()))
}
