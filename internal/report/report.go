// Package report serializes executor results into the formats the CLI
// emits: JSON and CSV run reports, CSV shot reports, and a Graphviz DOT
// rendering of a circuit for visual inspection outside the terminal
// viewer.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
	"github.com/AUSP59/QuantumSimX/internal/executor"
)

// Envelope wraps a RunResult with a run identifier and backend label,
// per §3's "Run envelope". No timestamp is carried; RunID is a fresh
// random UUID, so two invocations over the same circuit/seed/flags
// serialize identically except for run_id.
type Envelope struct {
	RunID         uuid.UUID `json:"run_id"`
	Backend       string    `json:"backend"`
	NumQubits     int       `json:"nqubits"`
	Probabilities []float64 `json:"probabilities"`
	Outcome       []int     `json:"outcome,omitempty"`
}

// NewEnvelope wraps a RunResult, assigning it a fresh UUID.
func NewEnvelope(nqubits int, r executor.RunResult) Envelope {
	backend := "state"
	if r.Dense {
		backend = "density"
	}
	return Envelope{
		RunID:         uuid.New(),
		Backend:       backend,
		NumQubits:     nqubits,
		Probabilities: r.Probabilities,
		Outcome:       r.Outcome,
	}
}

// WriteJSON writes e as indented JSON.
func WriteJSON(w io.Writer, e Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteCSV writes one row per basis index: index,probability.
func WriteCSV(w io.Writer, e Envelope) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "probability"}); err != nil {
		return err
	}
	for i, p := range e.Probabilities {
		if err := cw.Write([]string{strconv.Itoa(i), strconv.FormatFloat(p, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteShotsCSV writes one row per observed outcome string: outcome,count.
func WriteShotsCSV(w io.Writer, counts map[string]int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"outcome", "count"}); err != nil {
		return err
	}
	for outcome, n := range counts {
		if err := cw.Write([]string{outcome, strconv.Itoa(n)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDOT renders c as a Graphviz digraph with one node per operation:
// gate, noise and measure operations are labeled boxes, and a CNOT is a
// control point joined to a target circle on the same rank. Qubit wires
// are not drawn, and operations are not linked in circuit order.
func WriteDOT(w io.Writer, c *circuit.Circuit) error {
	var b strings.Builder
	b.WriteString("digraph circuit {\n  rankdir=LR;\n  node [shape=box fontname=monospace];\n")
	for col, op := range c.Ops {
		label := opLabel(op)
		switch {
		case op.Kind == circuit.CNOT:
			fmt.Fprintf(&b, "  ctrl%d [shape=point label=\"\"];\n", col)
			fmt.Fprintf(&b, "  tgt%d [shape=circle label=\"+\"];\n", col)
			fmt.Fprintf(&b, "  ctrl%d -> tgt%d [arrowhead=none];\n", col, col)
			fmt.Fprintf(&b, "  { rank=same; ctrl%d; tgt%d; }\n", col, col)
		default:
			fmt.Fprintf(&b, "  op%d [label=%q];\n", col, label)
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func opLabel(op circuit.Operation) string {
	switch {
	case op.Kind.IsRotation():
		return fmt.Sprintf("%s(%.4g) q%d", op.Kind, op.Angle, op.Target())
	case op.Kind.IsNoise():
		return fmt.Sprintf("%s(%.4g) q%d", op.Kind, op.Angle, op.Target())
	case op.Kind == circuit.MEASURE:
		return "MEASURE ALL"
	default:
		return fmt.Sprintf("%s q%d", op.Kind, op.Target())
	}
}
