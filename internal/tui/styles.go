// Package tui renders a parsed circuit as a read-only wire diagram in
// the terminal: one row per qubit, one column per operation, a CNOT
// drawn as "*" on the control row and "+" on the target row (no
// vertical connector between them). Adapted from the teacher's
// interactive circuit editor into a scrollable viewer with no editing
// state — see DESIGN.md for what was dropped and why.
package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants, carried from the teacher's editor at the same
// values: a gate box is wide enough for a 5-character name plus its
// brackets, and each step column reserves 11 characters so wires stay
// aligned regardless of what occupies a cell.
const (
	cellWidth    = 11
	gateNameWidth = 5
	gateBoxWidth  = 7 // "[" + gateNameWidth + "]"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	qubitLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	controlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bb9af7")).
			Bold(true)

	noiseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	measureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f7768e")).
			Bold(true)

	wireStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)
