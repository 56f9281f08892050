package bitgrid

import (
	"fmt"
	"strings"
)

// Op is one of the grid operations.
type Op int

const (
	OpToggle Op = iota
	OpShiftLeft
	OpShiftRight
	OpSetAll
	OpClearAll
)

// Ops lists the button operations in display order.
var Ops = []Op{OpShiftLeft, OpShiftRight, OpSetAll, OpClearAll}

// String returns the name used on the command line.
func (op Op) String() string {
	switch op {
	case OpToggle:
		return "toggle"
	case OpShiftLeft:
		return "shl"
	case OpShiftRight:
		return "shr"
	case OpSetAll:
		return "set"
	case OpClearAll:
		return "clear"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Label returns the button caption.
func (op Op) Label() string {
	switch op {
	case OpToggle:
		return "Toggle"
	case OpShiftLeft:
		return "Shift L"
	case OpShiftRight:
		return "Shift R"
	case OpSetAll:
		return "Set All"
	case OpClearAll:
		return "Clear"
	default:
		return op.String()
	}
}

// NeedsIndex reports whether the operation targets a single cell.
func (op Op) NeedsIndex() bool {
	return op == OpToggle
}

// ParseOp maps a command line name to an Op.
func ParseOp(name string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toggle", "flip":
		return OpToggle, nil
	case "shl", "shift-left", "left":
		return OpShiftLeft, nil
	case "shr", "shift-right", "right":
		return OpShiftRight, nil
	case "set", "set-all":
		return OpSetAll, nil
	case "clear", "clear-all":
		return OpClearAll, nil
	}
	return 0, fmt.Errorf("unknown bit operation %q (use toggle, shl, shr, set or clear)", name)
}

// Apply runs op against the grid and returns the new binary text. index is
// only used by OpToggle.
func (g Grid) Apply(op Op, index int) (string, error) {
	switch op {
	case OpToggle:
		return g.Toggle(index)
	case OpShiftLeft:
		return g.ShiftLeft(), nil
	case OpShiftRight:
		return g.ShiftRight(), nil
	case OpSetAll:
		return g.SetAll(), nil
	case OpClearAll:
		return g.ClearAll(), nil
	}
	return "", fmt.Errorf("unsupported bit operation %v", op)
}
