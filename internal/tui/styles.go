package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/basemaster/internal/radix"
	"github.com/muurk/basemaster/internal/ui"
	"github.com/muurk/basemaster/internal/version"
)

// Application branding constants
const (
	AppName = "BASEMASTER"
	Tagline = "number system conversion & bit manipulation"
)

// Layout constants
const (
	defaultWidth  = 80
	defaultHeight = 30
	labelWidth    = 14
)

// styles holds every lipgloss style the screen uses, built once from the
// palette.
type styles struct {
	palette ui.Palette

	Title        lipgloss.Style
	Section      lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	BitSet       lipgloss.Style
	BitClear     lipgloss.Style
	BitCursor    lipgloss.Style
	BitCaption   lipgloss.Style
	Button       lipgloss.Style
	FocusButton  lipgloss.Style
	Status       lipgloss.Style
	Warning      lipgloss.Style
	Subtle       lipgloss.Style
}

func newStyles(p ui.Palette) styles {
	return styles{
		palette: p,
		Title: lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Bold(true),
		Section: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(p.Muted).
			Width(labelWidth),
		FocusedLabel: lipgloss.NewStyle().
			Bold(true).
			Width(labelWidth),
		BitSet: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0B2E1A")).
			Background(p.BitSet).
			Bold(true),
		BitClear: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Background(p.BitClear),
		BitCursor: lipgloss.NewStyle().
			Underline(true).
			Bold(true),
		BitCaption: lipgloss.NewStyle().
			Foreground(p.Muted),
		Button: lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Background(lipgloss.Color("#3A3A3A")).
			Padding(0, 2).
			MarginRight(1),
		FocusButton: lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Background(p.Primary).
			Bold(true).
			Padding(0, 2).
			MarginRight(1),
		Status: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Warning: lipgloss.NewStyle().
			Foreground(ui.WarningColor),
		Subtle: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}

// fieldLabel renders the caption in front of a text field.
func (s styles) fieldLabel(r radix.Radix, focused bool) string {
	if focused {
		return s.FocusedLabel.Foreground(s.palette.RadixColor(r)).Render("→ " + r.Name())
	}
	return s.Label.Render("  " + r.Name())
}

// buildHeaderContent creates header content with app name and version
func (s styles) buildHeaderContent() string {
	left := s.Title.Render(AppName + " v" + version.Version)
	right := s.Subtle.Render(Tagline)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// renderApplicationContainer wraps screen content with the header, the help
// footer and an outer border sized to the terminal.
func (s styles) renderApplicationContainer(content, footer string, width, height int) string {
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(s.palette.Primary).
		Width(width-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(s.palette.Primary).
		Width(width-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(width-4).
		Padding(0, 1)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(s.buildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(s.Subtle.Render(footer)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.palette.Primary).
		Width(width - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, bordered)
}
