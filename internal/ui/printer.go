package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muurk/basemaster/internal/bitgrid"
	"github.com/muurk/basemaster/internal/radix"
	"github.com/muurk/basemaster/internal/reftable"
)

// Printer provides methods for printing UI components to a writer.
// This is the primary way CLI commands should output styled content.
type Printer struct {
	out     io.Writer
	width   int
	palette Palette
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer, palette Palette) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:     w,
		width:   GetTerminalWidth(),
		palette: palette,
	}
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) {
	p.width = width
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(h *Header) {
	p.Println(h.SetWidth(p.width).Render(p.palette))
}

// PrintFields prints the four radix fields
func (p *Printer) PrintFields(f radix.Fields) {
	p.Println(RenderFields(p.palette, f, p.width))
}

// PrintGrid prints the bit grid
func (p *Printer) PrintGrid(g bitgrid.Grid) {
	p.Println(RenderGrid(p.palette, g))
}

// PrintTable prints the reference table
func (p *Printer) PrintTable(rows []reftable.Row) {
	p.Println(RenderTable(p.palette, rows))
}

// PrintError prints an error result box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	p.Println(RenderErrorBox(title, err, troubleshooting, p.width))
}
