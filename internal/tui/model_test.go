package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/basemaster/internal/radix"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

func press(t *testing.T, m Model, keys ...tea.KeyType) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, tea.KeyMsg{Type: k})
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// toGrid tabs from the first field to the grid.
func toGrid(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < numFields; i++ {
		m = press(t, m, tea.KeyTab)
	}
	require.Equal(t, focusGrid, m.focus)
	return m
}

func newTestModel(opts Options) Model {
	if opts.Clipboard == nil {
		opts.Clipboard = func(string) error { return nil }
	}
	return New(opts)
}

func TestTypingDecimalUpdatesAllFields(t *testing.T) {
	m := typeText(t, newTestModel(Options{}), "255")

	assert.Equal(t, radix.Fields{
		Decimal: "255",
		Hex:     "FF",
		Octal:   "377",
		Binary:  strings.Repeat("0", 24) + "11111111",
	}, m.Fields())

	v, ok := m.Value()
	assert.True(t, ok)
	assert.Equal(t, uint32(255), v)
}

func TestTypingHexNormalisesCase(t *testing.T) {
	m := newTestModel(Options{})
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "1a")

	f := m.Fields()
	assert.Equal(t, "1A", f.Hex)
	assert.Equal(t, "26", f.Decimal)
	assert.Equal(t, "32", f.Octal)
}

func TestInvalidKeystrokeIsDropped(t *testing.T) {
	m := typeText(t, newTestModel(Options{}), "x")

	assert.Equal(t, radix.Fields{}, m.Fields())
	_, ok := m.Value()
	assert.False(t, ok)
	assert.Contains(t, m.status, "not a Decimal numeral")
	assert.True(t, m.warn)

	m = typeText(t, m, "7")
	assert.Empty(t, m.status)
	assert.False(t, m.warn)
}

func TestStrictModeRestoresPreviousText(t *testing.T) {
	m := newTestModel(Options{Mode: radix.Strict})
	m = typeText(t, m, "12a")

	assert.Equal(t, "12", m.Fields().Decimal)
	v, _ := m.Value()
	assert.Equal(t, uint32(12), v)
}

func TestClearingFieldBlanksEverything(t *testing.T) {
	m := typeText(t, newTestModel(Options{}), "5")
	m = press(t, m, tea.KeyBackspace)

	assert.True(t, m.Fields().IsEmpty())
	_, ok := m.Value()
	assert.False(t, ok)
}

func TestBinaryFieldOverflowKeepsLowBits(t *testing.T) {
	m := newTestModel(Options{InitialText: "1", InitialRadix: radix.Decimal, StartField: radix.Binary})
	require.Equal(t, fieldIndex(radix.Binary), m.focus)

	// The field holds 32 digits; a 33rd shifts the value left.
	m = typeText(t, m, "0")

	v, _ := m.Value()
	assert.Equal(t, uint32(2), v)
	assert.Len(t, m.Fields().Binary, radix.BinaryWidth)
}

func TestInitialValue(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		want   uint32
		isSet  bool
		status bool
	}{
		{"hex", Options{InitialText: "ff", InitialRadix: radix.Hex}, 255, true, false},
		{"default radix", Options{InitialText: "42"}, 42, true, false},
		{"invalid", Options{InitialText: "zz", InitialRadix: radix.Octal}, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(tt.opts)
			v, ok := m.Value()
			assert.Equal(t, tt.isSet, ok)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.status, m.status != "")
		})
	}
}

func TestFocusRingWraps(t *testing.T) {
	m := newTestModel(Options{})
	m = press(t, m, tea.KeyShiftTab)
	assert.Equal(t, focusButtons+3, m.focus)

	m = press(t, m, tea.KeyTab)
	assert.Equal(t, 0, m.focus)
	assert.True(t, m.inputs[0].Focused())
}

func TestGridToggleFromEmpty(t *testing.T) {
	m := toGrid(t, newTestModel(Options{}))

	m = press(t, m, tea.KeySpace)
	v, ok := m.Value()
	require.True(t, ok)
	assert.Equal(t, uint32(0x80000000), v)
	assert.Equal(t, "2147483648", m.Fields().Decimal)

	m = press(t, m, tea.KeyRight, tea.KeyEnter)
	v, _ = m.Value()
	assert.Equal(t, uint32(0xC0000000), v)
	assert.Equal(t, "C0000000", m.Fields().Hex)
}

func TestGridCursorClamps(t *testing.T) {
	m := toGrid(t, newTestModel(Options{}))
	m = press(t, m, tea.KeyLeft)
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 40; i++ {
		m = press(t, m, tea.KeyRight)
	}
	assert.Equal(t, 31, m.cursor)

	m = press(t, m, tea.KeySpace)
	v, _ := m.Value()
	assert.Equal(t, uint32(1), v)
}

func TestGridShortcutKeys(t *testing.T) {
	tests := []struct {
		key  string
		from string
		want uint32
	}{
		{"<", "1", 2},
		{">", "1", 0},
		{">", "3", 1},
		{"<", "2147483648", 0},
		{"s", "0", 0xFFFFFFFF},
		{"S", "7", 0xFFFFFFFF},
		{"c", "12345", 0},
		{"C", "1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.from, func(t *testing.T) {
			m := toGrid(t, newTestModel(Options{InitialText: tt.from}))
			m = typeText(t, m, tt.key)

			v, ok := m.Value()
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, radix.Format(tt.want), m.Fields())
		})
	}
}

func TestButtons(t *testing.T) {
	tests := []struct {
		name   string
		button int
		want   uint32
	}{
		{"shift left", 0, 0x2A},
		{"shift right", 1, 0x0A},
		{"set all", 2, 0xFFFFFFFF},
		{"clear", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := toGrid(t, newTestModel(Options{InitialText: "21"}))
			m = press(t, m, tea.KeyTab)
			for i := 0; i < tt.button; i++ {
				m = press(t, m, tea.KeyRight)
			}
			require.Equal(t, focusButtons+tt.button, m.focus)

			m = press(t, m, tea.KeyEnter)
			v, _ := m.Value()
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestLettersInFieldsAreNotShortcuts(t *testing.T) {
	m := typeText(t, newTestModel(Options{InitialText: "9"}), "s")
	v, _ := m.Value()
	assert.Equal(t, uint32(9), v)
}

func TestCopyFocusedField(t *testing.T) {
	var copied string
	m := New(Options{
		InitialText: "42",
		Clipboard: func(s string) error {
			copied = s
			return nil
		},
	})

	m = press(t, m, tea.KeyTab)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, "2A", copied)
	assert.Contains(t, m.status, "copied Hexadecimal")
}

func TestCopyFromGridUsesBinary(t *testing.T) {
	var copied string
	m := New(Options{
		InitialText: "5",
		Clipboard: func(s string) error {
			copied = s
			return nil
		},
	})
	m = toGrid(t, m)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, strings.Repeat("0", 29)+"101", copied)
}

func TestCopyErrors(t *testing.T) {
	m := New(Options{Clipboard: func(string) error { return errors.New("no display") }})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Nil(t, cmd, "empty value should not reach the clipboard")
	assert.Contains(t, m.status, "nothing to copy")

	m = typeText(t, m, "1")
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Contains(t, m.status, "no display")
	assert.True(t, m.warn)
}

func TestQuit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := update(t, newTestModel(Options{}), tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "key %v should quit", k)
	}
}

func TestHelpToggleOnlyOutsideFields(t *testing.T) {
	m := typeText(t, newTestModel(Options{}), "?")
	assert.False(t, m.help.ShowAll)

	m = toGrid(t, m)
	m = typeText(t, m, "?")
	assert.True(t, m.help.ShowAll)
}

func TestView(t *testing.T) {
	m := newTestModel(Options{InitialText: "255"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	for _, want := range []string{
		AppName,
		"Decimal",
		"Hexadecimal",
		"Octal",
		"Binary",
		"32-Bit Manipulator",
		"Shift L",
		"Shift R",
		"Set All",
		"Clear",
		"Reference",
		"01111111",
		"31 ",
		"FF",
	} {
		assert.Contains(t, view, want)
	}
}

func TestViewShowsCursorPosition(t *testing.T) {
	m := toGrid(t, newTestModel(Options{}))
	m = press(t, m, tea.KeyRight, tea.KeyRight)
	assert.Contains(t, m.View(), "cursor: bit 29")
}
