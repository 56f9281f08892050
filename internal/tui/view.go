package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/muurk/basemaster/internal/bitgrid"
	"github.com/muurk/basemaster/internal/reftable"
	"github.com/muurk/basemaster/internal/ui"
)

// View renders the screen
func (m Model) View() string {
	width, height := m.Width, m.Height
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}

	var keys help.KeyMap = fieldHelp{m.keys}
	if m.focus >= numFields {
		keys = gridHelp{m.keys}
	}

	return m.styles.renderApplicationContainer(m.buildContent(width-6), m.help.View(keys), width, height)
}

func (m Model) buildContent(width int) string {
	var b strings.Builder

	b.WriteString(m.styles.Section.Render("Conversions"))
	b.WriteString("\n\n")
	for i, r := range fieldOrder {
		b.WriteString(m.styles.fieldLabel(r, m.focus == i))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Section.Render("32-Bit Manipulator"))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderButtons())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Section.Render("Reference"))
	b.WriteString("\n\n")
	b.WriteString(ui.RenderTable(m.styles.palette, reftable.Rows()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		style := m.styles.Status
		if m.warn {
			style = m.styles.Warning
		}
		b.WriteString(style.Render(wordwrap.String(m.status, width)))
	}

	return b.String()
}

// renderGrid draws the caption row, the 32 cells and the cursor line.
func (m Model) renderGrid() string {
	grid := m.conv.Grid()
	onGrid := m.focus == focusGrid

	var labels, cells strings.Builder
	for i := 0; i < bitgrid.Width; i++ {
		if i > 0 && i%8 == 0 {
			labels.WriteString(" ")
			cells.WriteString(" ")
		}
		labels.WriteString(fmt.Sprintf("%-2s", bitgrid.Label(i)))

		style := m.styles.BitClear
		if grid.Bit(i) == 1 {
			style = m.styles.BitSet
		}
		if onGrid && i == m.cursor {
			style = style.Inherit(m.styles.BitCursor).Reverse(true)
		}
		cells.WriteString(style.Render(fmt.Sprintf("%d", grid.Bit(i))))
		cells.WriteString(" ")
	}

	caption := fmt.Sprintf("cursor: bit %d", bitgrid.Position(m.cursor))
	if !onGrid {
		caption = "tab to the grid to toggle bits"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.BitCaption.Render(strings.TrimRight(labels.String(), " ")),
		cells.String(),
		m.styles.Subtle.Render(caption),
	)
}

func (m Model) renderButtons() string {
	buttons := make([]string, len(bitgrid.Ops))
	for i, op := range bitgrid.Ops {
		style := m.styles.Button
		if m.focus == focusButtons+i {
			style = m.styles.FocusButton
		}
		buttons[i] = style.Render(op.Label())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
