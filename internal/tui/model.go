package tui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/basemaster/internal/bitgrid"
	"github.com/muurk/basemaster/internal/config"
	"github.com/muurk/basemaster/internal/converter"
	"github.com/muurk/basemaster/internal/radix"
	"github.com/muurk/basemaster/internal/ui"
)

// numFields is the number of text fields, one per radix.
const numFields = 4

// Focus ring: the text fields, then the grid, then one stop per button.
const (
	focusGrid    = numFields
	focusButtons = focusGrid + 1
)

// fieldOrder is the on-screen order of the text fields.
var fieldOrder = [numFields]radix.Radix{radix.Decimal, radix.Hex, radix.Octal, radix.Binary}

// Options configures a converter screen.
type Options struct {
	Mode       radix.Mode
	StartField radix.Radix
	Theme      *config.Theme
	Logger     *zap.Logger

	// Initial value typed into the InitialRadix field before the first frame.
	InitialText  string
	InitialRadix radix.Radix

	// Clipboard receives copied text. Defaults to the system clipboard.
	Clipboard func(string) error
}

// copiedMsg reports the result of a clipboard write
type copiedMsg struct {
	label string
	err   error
}

// Model is the converter screen.
type Model struct {
	conv *converter.Converter

	inputs [numFields]textinput.Model
	focus  int
	cursor int // grid cell under the cursor, 0 = bit 31

	status    string
	warn      bool // status reports rejected input
	clipboard func(string) error

	styles styles
	keys   keyMap
	help   help.Model

	Width  int
	Height int
}

// New creates the converter screen.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	write := opts.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}

	m := Model{
		conv:      converter.New(converter.WithMode(opts.Mode), converter.WithLogger(logger)),
		clipboard: write,
		styles:    newStyles(ui.NewPalette(opts.Theme)),
		keys:      newKeyMap(),
		help:      help.New(),
	}

	for i, r := range fieldOrder {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholder(r)
		in.CharLimit = 2 * radix.BinaryWidth
		in.Width = 12
		if r == radix.Binary {
			in.Width = radix.BinaryWidth + 2
		}
		in.TextStyle = in.TextStyle.Foreground(m.styles.palette.RadixColor(r))
		m.inputs[i] = in
	}

	if opts.InitialText != "" {
		r := opts.InitialRadix
		if !r.Valid() {
			r = radix.Decimal
		}
		if m.conv.Edit(r, opts.InitialText) == converter.Ignored {
			m.status = fmt.Sprintf("could not read %q as %s", opts.InitialText, r.Name())
			m.warn = true
		}
		m.syncInputs()
	}

	m.focus = 0
	if i := fieldIndex(opts.StartField); i >= 0 {
		m.focus = i
	}
	m.inputs[m.focus].Focus()

	return m
}

func placeholder(r radix.Radix) string {
	switch r {
	case radix.Hex:
		return "FF"
	case radix.Octal:
		return "377"
	case radix.Binary:
		return "11111111"
	default:
		return "255"
	}
}

func fieldIndex(r radix.Radix) int {
	for i, fr := range fieldOrder {
		if fr == r {
			return i
		}
	}
	return -1
}

// Init initializes the screen
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width - 6
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("%s clipboard unavailable: %v", ui.FailureMarker, msg.err)
			m.warn = true
		} else {
			m.status = fmt.Sprintf("%s copied %s to clipboard", ui.SuccessMarker, msg.label)
			m.warn = false
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m.setFocus(m.focus - 1)
		case key.Matches(msg, m.keys.Copy):
			return m.copyFocused()
		}
		if m.focus < numFields {
			return m.updateField(msg)
		}
		return m.updateGrid(msg)
	}

	if m.focus < numFields {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// setFocus moves focus around the ring, wrapping at both ends.
func (m Model) setFocus(next int) (tea.Model, tea.Cmd) {
	total := focusButtons + len(bitgrid.Ops)
	next = ((next % total) + total) % total

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = next
	m.help.ShowAll = false
	if next < numFields {
		return m, m.inputs[next].Focus()
	}
	return m, nil
}

// updateField passes a key to the focused text field and runs the edited
// text through the converter.
func (m Model) updateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	i := m.focus
	prev := m.inputs[i].Value()
	prevPos := m.inputs[i].Position()

	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	text := m.inputs[i].Value()
	if text == prev {
		return m, cmd
	}

	r := fieldOrder[i]
	if m.conv.Edit(r, text) == converter.Ignored {
		m.inputs[i].SetValue(prev)
		m.inputs[i].SetCursor(prevPos)
		m.status = fmt.Sprintf("%q is not a %s numeral", text, r.Name())
		m.warn = true
		return m, cmd
	}
	m.syncInputs()
	m.status = ""
	m.warn = false
	return m, cmd
}

// updateGrid handles keys while the grid or a button has focus.
func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	onGrid := m.focus == focusGrid

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		if onGrid {
			m.cursor = max(0, m.cursor-1)
		} else if m.focus > focusButtons {
			return m.setFocus(m.focus - 1)
		}
	case key.Matches(msg, m.keys.Right):
		if onGrid {
			m.cursor = min(bitgrid.Width-1, m.cursor+1)
		} else if m.focus < focusButtons+len(bitgrid.Ops)-1 {
			return m.setFocus(m.focus + 1)
		}
	case key.Matches(msg, m.keys.Toggle):
		if onGrid {
			return m.apply(bitgrid.OpToggle), nil
		}
		return m.apply(bitgrid.Ops[m.focus-focusButtons]), nil
	case key.Matches(msg, m.keys.ShiftLeft):
		return m.apply(bitgrid.OpShiftLeft), nil
	case key.Matches(msg, m.keys.ShiftRight):
		return m.apply(bitgrid.OpShiftRight), nil
	case key.Matches(msg, m.keys.SetAll):
		return m.apply(bitgrid.OpSetAll), nil
	case key.Matches(msg, m.keys.ClearAll):
		return m.apply(bitgrid.OpClearAll), nil
	}
	return m, nil
}

// apply runs a grid operation against the current value.
func (m Model) apply(op bitgrid.Op) Model {
	if _, err := m.conv.Apply(op, m.cursor); err != nil {
		m.status = err.Error()
		m.warn = true
		return m
	}
	m.syncInputs()
	m.warn = false

	if op == bitgrid.OpToggle {
		m.status = fmt.Sprintf("bit %d toggled, value 0x%s", bitgrid.Position(m.cursor), m.conv.Fields().Hex)
	} else {
		m.status = fmt.Sprintf("%s, value 0x%s", op.Label(), m.conv.Fields().Hex)
	}
	return m
}

// syncInputs shows the converter's fields in every text input.
func (m *Model) syncInputs() {
	f := m.conv.Fields()
	for i, r := range fieldOrder {
		m.inputs[i].SetValue(f.Get(r))
		m.inputs[i].CursorEnd()
	}
}

var errNothingToCopy = errors.New("nothing to copy")

// copyFocused copies the focused field, or the binary form from the grid.
func (m Model) copyFocused() (tea.Model, tea.Cmd) {
	r := radix.Binary
	if m.focus < numFields {
		r = fieldOrder[m.focus]
	}
	text := m.conv.Fields().Get(r)
	if text == "" {
		m.status = fmt.Sprintf("%s %v", ui.FailureMarker, errNothingToCopy)
		m.warn = true
		return m, nil
	}

	write := m.clipboard
	label := r.Name()
	return m, func() tea.Msg {
		return copiedMsg{label: label, err: write(text)}
	}
}

// Value returns the current value and whether one is set.
func (m Model) Value() (uint32, bool) {
	return m.conv.Value()
}

// Fields returns the text currently shown for each radix.
func (m Model) Fields() radix.Fields {
	return radix.Fields{
		Decimal: m.inputs[fieldIndex(radix.Decimal)].Value(),
		Hex:     m.inputs[fieldIndex(radix.Hex)].Value(),
		Octal:   m.inputs[fieldIndex(radix.Octal)].Value(),
		Binary:  m.inputs[fieldIndex(radix.Binary)].Value(),
	}
}

// Run starts the converter screen and blocks until the user quits.
func Run(opts Options, altScreen bool) error {
	var progOpts []tea.ProgramOption
	if altScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(New(opts), progOpts...)
	_, err := p.Run()
	return err
}
