package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one key/value line in a header.
type Param struct {
	Key   string
	Value string
}

// Header represents a command header with title, command, and parameters.
type Header struct {
	Title   string  // e.g., "CONVERT"
	Command string  // e.g., "basemaster convert 1A --from hex"
	Params  []Param // Printed in order
	Width   int     // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title, command string, params ...Param) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render(p Palette) string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	titleLine := p.TitleStyle().Render(strings.ToUpper(h.Title))
	commandLine := p.MutedStyle().PaddingLeft(2).Render(h.Command)
	topSection := lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)

	if len(h.Params) == 0 {
		return p.BoxStyle(width).Render(topSection)
	}

	paramLines := make([]string, 0, len(h.Params))
	for _, param := range h.Params {
		keyStyled := p.MutedStyle().PaddingLeft(2).Render(param.Key + ":")
		valueStyled := lipgloss.NewStyle().Foreground(TextColor).Render(param.Value)
		paramLines = append(paramLines, keyStyled+" "+valueStyled)
	}

	divider := p.RenderHorizontalDivider(width - 6) // Account for border and padding
	content := lipgloss.JoinVertical(lipgloss.Left, topSection, divider, strings.Join(paramLines, "\n"))
	return p.BoxStyle(width).Render(content)
}
