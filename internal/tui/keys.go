package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the converter screen
type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Left       key.Binding
	Right      key.Binding
	Toggle     key.Binding
	ShiftLeft  key.Binding
	ShiftRight key.Binding
	SetAll     key.Binding
	ClearAll   key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		ShiftLeft: key.NewBinding(
			key.WithKeys("<"),
			key.WithHelp("<", "shift L"),
		),
		ShiftRight: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "shift R"),
		),
		SetAll: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "set all"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "clear"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// fieldHelp is shown while a text field has focus
type fieldHelp struct{ k keyMap }

// ShortHelp returns keybindings to be shown in the mini help view
func (h fieldHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Next, h.k.Prev, h.k.Copy, h.k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (h fieldHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{h.k.Next, h.k.Prev}, {h.k.Copy, h.k.Quit}}
}

// gridHelp is shown while the bit grid or a button has focus
type gridHelp struct{ k keyMap }

// ShortHelp returns keybindings to be shown in the mini help view
func (h gridHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Left, h.k.Right, h.k.Toggle, h.k.Next, h.k.Help, h.k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (h gridHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Left, h.k.Right, h.k.Toggle},
		{h.k.ShiftLeft, h.k.ShiftRight, h.k.SetAll, h.k.ClearAll},
		{h.k.Next, h.k.Prev, h.k.Copy},
		{h.k.Help, h.k.Quit},
	}
}
