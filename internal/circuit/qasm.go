package circuit

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/AUSP59/QuantumSimX/internal/qerr"
)

// Pre-compiled regexps for the OpenQASM 2.0 subset this kernel accepts.
// Grounded on the teacher's QASM line-matching style (circuit.go), pared
// down to the gate set this kernel's gate table actually supports plus a
// comment convention for the three noise channels (which OpenQASM 2.0
// has no native syntax for).
var (
	qasmQreg        = regexp.MustCompile(`^qreg\s+\w+\[(\d+)\];?$`)
	qasmSingle      = regexp.MustCompile(`^(h|x|y|z|s|sdg)\s+q\[(\d+)\];?$`)
	qasmRotation    = regexp.MustCompile(`^(rx|ry|rz)\s*\(\s*([-+0-9.eE]+)\s*\)\s+q\[(\d+)\];?$`)
	qasmCX          = regexp.MustCompile(`^cx\s+q\[(\d+)\]\s*,\s*q\[(\d+)\];?$`)
	qasmMeasure     = regexp.MustCompile(`^measure\s+q\[(\d+)\]\s*->\s*\w+\[(\d+)\];?$`)
	qasmNoiseAll    = regexp.MustCompile(`^measure\s+q\s*->\s*\w+;?$`)
	qasmNoiseLine   = regexp.MustCompile(`^//\s*noise\s+(dephase|depol|ampdamp)\s+q\[(\d+)\]\s+param=([-+0-9.eE]+)\s*$`)
)

// ParseQASM parses the OpenQASM 2.0 subset described in the external
// interfaces section: qreg declaration, h/x/y/z/s/sdg, rx/ry/rz(theta),
// cx, measure -> creg, and a "// noise KIND q[i] param=p" comment
// convention for DEPHASE/DEPOL/AMPDAMP (OpenQASM 2.0 has no native
// syntax for them). OPENQASM and include headers, creg and barrier
// lines, and any other // comment line are skipped; every other line
// outside this subset is a ParseError.
func ParseQASM(r io.Reader) (*Circuit, error) {
	c := &Circuit{}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if m := qasmNoiseLine.FindStringSubmatch(line); m != nil {
			q, _ := strconv.Atoi(m[2])
			p, err := strconv.ParseFloat(m[3], 64)
			if err != nil {
				return nil, qerr.NewAt(qerr.Parse, lineno, "invalid noise parameter")
			}
			c.Ops = append(c.Ops, Operation{Kind: noiseKind(m[1]), Qubits: []int{q}, Angle: p})
			growQubits(c, q)
			continue
		}
		if strings.HasPrefix(line, "//") || strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") {
			continue
		}
		if m := qasmQreg.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			if n > c.NumQubits {
				c.NumQubits = n
			}
			continue
		}
		if strings.HasPrefix(line, "creg") || strings.HasPrefix(line, "barrier") {
			continue
		}
		if qasmNoiseAll.MatchString(line) {
			c.Ops = append(c.Ops, NewMeasureAll())
			continue
		}
		if m := qasmMeasure.FindStringSubmatch(line); m != nil {
			// A per-qubit measure only makes full sense as part of a
			// MEASURE ALL sweep in this kernel's model (see RunResult);
			// accept it but fold it into a single trailing MEASURE ALL,
			// matching §6's "MEASURE ALL" outcome contract.
			q, _ := strconv.Atoi(m[1])
			growQubits(c, q)
			appendMeasureAllOnce(c)
			continue
		}
		if m := qasmSingle.FindStringSubmatch(line); m != nil {
			q, _ := strconv.Atoi(m[2])
			kind, dagger := singleKind(m[1])
			if dagger {
				// sdg = S^-1 = S^3; S_coeffs has no dagger parameter in
				// this kernel's table, so sdg lowers to three S's, which
				// the optimizer's "S.S -> Z" rule will partially fold.
				c.Ops = append(c.Ops, gate1(S, q), gate1(S, q), gate1(S, q))
			} else {
				c.Ops = append(c.Ops, gate1(kind, q))
			}
			growQubits(c, q)
			continue
		}
		if m := qasmRotation.FindStringSubmatch(line); m != nil {
			theta, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				return nil, qerr.NewAt(qerr.Parse, lineno, "invalid rotation angle")
			}
			q, _ := strconv.Atoi(m[3])
			c.Ops = append(c.Ops, Operation{Kind: Kind(strings.ToUpper(m[1])), Qubits: []int{q}, Angle: theta})
			growQubits(c, q)
			continue
		}
		if m := qasmCX.FindStringSubmatch(line); m != nil {
			ctrl, _ := strconv.Atoi(m[1])
			tgt, _ := strconv.Atoi(m[2])
			c.Ops = append(c.Ops, NewCNOT(ctrl, tgt))
			growQubits(c, ctrl, tgt)
			continue
		}
		return nil, qerr.NewAt(qerr.Parse, lineno, fmt.Sprintf("unsupported QASM line: %q", line))
	}
	if err := scanner.Err(); err != nil {
		return nil, qerr.NewAt(qerr.Parse, lineno, err.Error())
	}
	return c, nil
}

func growQubits(c *Circuit, qubits ...int) {
	for _, q := range qubits {
		if q+1 > c.NumQubits {
			c.NumQubits = q + 1
		}
	}
}

func appendMeasureAllOnce(c *Circuit) {
	for _, op := range c.Ops {
		if op.Kind == MEASURE {
			return
		}
	}
	c.Ops = append(c.Ops, NewMeasureAll())
}

func singleKind(tok string) (Kind, bool) {
	switch tok {
	case "h":
		return H, false
	case "x":
		return X, false
	case "y":
		return Y, false
	case "z":
		return Z, false
	case "s":
		return S, false
	case "sdg":
		return S, true
	default:
		return "", false
	}
}

func noiseKind(tok string) Kind {
	switch tok {
	case "dephase":
		return DEPHASE
	case "depol":
		return DEPOL
	case "ampdamp":
		return AMPDAMP
	default:
		return ""
	}
}
