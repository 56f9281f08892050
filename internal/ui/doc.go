// Package ui renders styled, non-interactive output for the basemaster CLI.
//
// Commands build a Printer and print components in order:
//
//	p := ui.NewPrinter(os.Stdout, ui.NewPalette(cfg.Theme))
//	p.PrintHeader(ui.NewHeader("Convert", "basemaster convert 1A --from hex",
//	    ui.Param{Key: "Input", Value: "1A"}))
//	p.PrintFields(radix.Format(26))
//	p.PrintGrid(bitgrid.FromValue(26))
//
// Widths follow the terminal (golang.org/x/term) clamped to
// MinTerminalWidth..MaxContentWidth. Colours come from the configured theme
// through Palette.
package ui
