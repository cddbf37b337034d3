package tui

import (
	"fmt"
	"strings"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
)

// cellText returns the unstyled text for the diagram cell of op on
// qubit and true, or ("", false) if op does not touch qubit at all —
// the caller then draws a plain wire segment.
func cellText(op circuit.Operation, qubit int) (string, bool) {
	switch {
	case op.Kind == circuit.CNOT:
		if op.Control() == qubit {
			return "*", true
		}
		if op.Target() == qubit {
			return "+", true
		}
		return "", false
	case op.Kind == circuit.MEASURE:
		return "M", true
	default:
		if op.Target() != qubit {
			return "", false
		}
		if op.Kind.IsRotation() || op.Kind.IsNoise() {
			return fmt.Sprintf("%s(%.2g)", op.Kind, op.Angle), true
		}
		return string(op.Kind), true
	}
}

func styleFor(op circuit.Operation, text string) string {
	switch {
	case op.Kind == circuit.CNOT && text == "*":
		return controlStyle.Render(text)
	case op.Kind == circuit.CNOT:
		return controlStyle.Render(text)
	case op.Kind == circuit.MEASURE:
		return measureStyle.Render(text)
	case op.Kind.IsNoise():
		return noiseStyle.Render(text)
	default:
		return gateStyle.Render(text)
	}
}

func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// RenderDiagram draws the full grid: one row per qubit, a leading label
// column, one cellWidth-wide column per operation.
func RenderDiagram(c *circuit.Circuit) string {
	var b strings.Builder
	for q := 0; q < c.NumQubits; q++ {
		label := qubitLabelStyle.Render(fmt.Sprintf("q%-2d", q))
		b.WriteString(label)
		b.WriteString(wireStyle.Render("─"))
		for _, op := range c.Ops {
			text, hit := cellText(op, q)
			if !hit {
				b.WriteString(wireStyle.Render(strings.Repeat("─", cellWidth)))
				continue
			}
			cell := padCenter(text, cellWidth)
			b.WriteString(styleFor(op, cell))
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓/←/→ scroll · q quit"))
	return b.String()
}
