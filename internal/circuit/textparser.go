package circuit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AUSP59/QuantumSimX/internal/qerr"
)

// ParseText parses the custom line-based circuit format described in the
// external-interfaces section: one operation per line, '#' introduces a
// line comment, blank lines are ignored. The circuit's qubit count is
// inferred as max(index)+1 across every operand seen.
//
// Grounded on the same line-oriented, error-per-line approach as the
// original parser, but expressed as bufio.Scanner + strings.Fields
// rather than hand-rolled character scanning.
func ParseText(r io.Reader) (*Circuit, error) {
	c := &Circuit{}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if hash := strings.IndexByte(line, '#'); hash >= 0 {
			line = line[:hash]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		op, err := parseTextLine(fields, lineno)
		if err != nil {
			return nil, err
		}
		c.Ops = append(c.Ops, op)
		for _, q := range op.Qubits {
			if q+1 > c.NumQubits {
				c.NumQubits = q + 1
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, qerr.NewAt(qerr.Parse, lineno, err.Error())
	}
	return c, nil
}

func parseTextLine(fields []string, lineno int) (Operation, error) {
	if len(fields) == 0 {
		return Operation{}, qerr.NewAt(qerr.Parse, lineno, "empty operation")
	}
	kw := strings.ToUpper(fields[0])
	switch kw {
	case "H", "X", "Y", "Z", "S":
		q, err := requireQubit(fields, 1, lineno)
		if err != nil {
			return Operation{}, err
		}
		return gate1(Kind(kw), q), nil
	case "RX", "RY", "RZ":
		q, err := requireQubit(fields, 1, lineno)
		if err != nil {
			return Operation{}, err
		}
		angle, err := requireFloat(fields, 2, lineno, "angle")
		if err != nil {
			return Operation{}, err
		}
		return Operation{Kind: Kind(kw), Qubits: []int{q}, Angle: angle}, nil
	case "CNOT":
		c0, err := requireQubit(fields, 1, lineno)
		if err != nil {
			return Operation{}, err
		}
		t0, err := requireQubit(fields, 2, lineno)
		if err != nil {
			return Operation{}, err
		}
		return NewCNOT(c0, t0), nil
	case "DEPHASE", "DEPOL", "AMPDAMP":
		q, err := requireQubit(fields, 1, lineno)
		if err != nil {
			return Operation{}, err
		}
		p, err := requireFloat(fields, 2, lineno, "probability")
		if err != nil {
			return Operation{}, err
		}
		return Operation{Kind: Kind(kw), Qubits: []int{q}, Angle: p}, nil
	case "MEASURE":
		if len(fields) < 2 || strings.ToUpper(fields[1]) != "ALL" {
			return Operation{}, qerr.NewAt(qerr.Parse, lineno, "only 'MEASURE ALL' is supported")
		}
		return NewMeasureAll(), nil
	default:
		return Operation{}, qerr.NewAt(qerr.Parse, lineno, fmt.Sprintf("unknown operation %q", fields[0]))
	}
}

func requireQubit(fields []string, idx, lineno int) (int, error) {
	if idx >= len(fields) {
		return 0, qerr.NewAt(qerr.Parse, lineno, "missing qubit index")
	}
	v, err := strconv.Atoi(fields[idx])
	if err != nil || v < 0 {
		return 0, qerr.NewAt(qerr.Parse, lineno, fmt.Sprintf("invalid qubit index %q", fields[idx]))
	}
	return v, nil
}

func requireFloat(fields []string, idx, lineno int, what string) (float64, error) {
	if idx >= len(fields) {
		return 0, qerr.NewAt(qerr.Parse, lineno, "missing "+what)
	}
	v, err := strconv.ParseFloat(fields[idx], 64)
	if err != nil {
		return 0, qerr.NewAt(qerr.Parse, lineno, fmt.Sprintf("invalid %s %q", what, fields[idx]))
	}
	return v, nil
}
