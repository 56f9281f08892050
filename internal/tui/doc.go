// Package tui implements the interactive converter screen.
//
// The screen shows one text field per radix, the 32-bit grid with its
// shift/set/clear buttons and the reference table. Every keystroke in a
// field is run through a converter.Converter: accepted text rewrites all
// four fields, empty text blanks them and anything unparseable is dropped
// so the field keeps its previous text.
//
// Usage:
//
//	err := tui.Run(tui.Options{Mode: radix.Permissive}, true)
package tui
