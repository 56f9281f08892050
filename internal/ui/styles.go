package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/basemaster/internal/config"
	"github.com/muurk/basemaster/internal/radix"
)

// Fixed colours not covered by the theme
var (
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, X marks
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Status markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
)

// Palette is the set of colours derived from the configured theme.
type Palette struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	BitSet   lipgloss.Color
	BitClear lipgloss.Color
	Decimal  lipgloss.Color
	Hex      lipgloss.Color
	Octal    lipgloss.Color
	Binary   lipgloss.Color
}

// NewPalette builds a palette from a theme; nil means the default theme.
func NewPalette(theme *config.Theme) Palette {
	if theme == nil {
		theme = config.DefaultTheme()
	}
	return Palette{
		Primary:  lipgloss.Color(theme.Primary),
		Muted:    lipgloss.Color(theme.Muted),
		BitSet:   lipgloss.Color(theme.BitSet),
		BitClear: lipgloss.Color(theme.BitClear),
		Decimal:  lipgloss.Color(theme.Decimal),
		Hex:      lipgloss.Color(theme.Hex),
		Octal:    lipgloss.Color(theme.Octal),
		Binary:   lipgloss.Color(theme.Binary),
	}
}

// RadixColor returns the accent colour of a radix field.
func (p Palette) RadixColor(r radix.Radix) lipgloss.Color {
	switch r {
	case radix.Decimal:
		return p.Decimal
	case radix.Hex:
		return p.Hex
	case radix.Octal:
		return p.Octal
	case radix.Binary:
		return p.Binary
	}
	return TextColor
}

// TitleStyle is for box titles
func (p Palette) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TextColor).Bold(true).PaddingLeft(2)
}

// MutedStyle is for secondary text such as command paths and captions
func (p Palette) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Muted)
}

// KeyStyle is for the left column of key/value listings
func (p Palette) KeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Muted).Width(14)
}

// BoxStyle returns the rounded border used by headers and result boxes
func (p Palette) BoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Width(width - 2) // Account for border characters
}

// ErrorBoxStyle returns the border style for error result boxes
func ErrorBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width-2).
		Padding(0, 2)
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func (p Palette) RenderHorizontalDivider(width int) string {
	if width < 10 {
		width = 10
	}
	return lipgloss.NewStyle().
		Foreground(p.Primary).
		Render(strings.Repeat("─", width))
}
