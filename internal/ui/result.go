package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/basemaster/internal/bitgrid"
	"github.com/muurk/basemaster/internal/radix"
	"github.com/muurk/basemaster/internal/reftable"
)

// emptyMarker stands in for blank fields so the layout does not collapse
const emptyMarker = "—"

// RenderFields renders the four radix fields as a key/value box.
func RenderFields(p Palette, f radix.Fields, width int) string {
	lines := []string{""}
	for _, r := range radix.All {
		value := f.Get(r)
		if value == "" {
			value = emptyMarker
		}
		key := p.KeyStyle().PaddingLeft(2).Render(r.Name() + ":")
		val := lipgloss.NewStyle().Foreground(p.RadixColor(r)).Bold(true).Render(value)
		lines = append(lines, key+" "+val)
	}
	lines = append(lines, "")
	return p.BoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderGrid renders the 32 bits in four byte groups with bit-number
// captions on the byte boundaries.
func RenderGrid(p Palette, g bitgrid.Grid) string {
	setStyle := lipgloss.NewStyle().Foreground(p.BitSet).Bold(true)
	clearStyle := lipgloss.NewStyle().Foreground(p.Muted)

	var labels, cells strings.Builder
	for i := 0; i < bitgrid.Width; i++ {
		if i > 0 && i%8 == 0 {
			labels.WriteString(" ")
			cells.WriteString(" ")
		}
		labels.WriteString(padLabel(bitgrid.Label(i)))

		if g.Bit(i) == 1 {
			cells.WriteString(setStyle.Render("1"))
		} else {
			cells.WriteString(clearStyle.Render("0"))
		}
		cells.WriteString(" ")
	}
	return p.MutedStyle().Render(strings.TrimRight(labels.String(), " ")) + "\n" + cells.String()
}

// padLabel returns a caption as wide as one cell ("b ").
func padLabel(label string) string {
	switch len(label) {
	case 0:
		return "  "
	case 1:
		return label + " "
	default:
		return label
	}
}

// RenderTable renders the reference table.
func RenderTable(p Palette, rows []reftable.Row) string {
	headerStyle := lipgloss.NewStyle().Foreground(p.Muted).Bold(true).Width(12)
	colours := []lipgloss.Color{TextColor, p.Binary, p.Octal, p.Hex}

	var b strings.Builder
	for _, h := range reftable.Headers {
		b.WriteString(headerStyle.Render(strings.ToUpper(h)))
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row.Cells() {
			b.WriteString(lipgloss.NewStyle().Foreground(colours[i]).Width(12).Render(cell))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderErrorBox renders an error result box with troubleshooting
func RenderErrorBox(title string, err error, troubleshooting []string, width int) string {
	lines := []string{
		"",
		lipgloss.NewStyle().Foreground(ErrorColor).Bold(true).Render(FailureMarker + "  FAILED  ─  " + title),
		"",
	}

	if err != nil {
		lines = append(lines, lipgloss.NewStyle().Foreground(ErrorColor).Render("Error: "+err.Error()), "")
	}

	if len(troubleshooting) > 0 {
		muted := lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
		lines = append(lines, muted.Bold(true).Render("Troubleshooting:"))
		for _, tip := range troubleshooting {
			lines = append(lines, muted.Render("  • "+tip))
		}
		lines = append(lines, "")
	}

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}
