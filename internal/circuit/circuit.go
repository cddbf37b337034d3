// Package circuit defines the intermediate representation consumed by
// every other kernel component: the executor, the optimizer, the
// topology mapper, unitary synthesis, and the gradient evaluator all
// take a *Circuit as read-only input and (where they transform it)
// return a new one.
//
// Operation is a flat tagged record rather than an interface with one
// implementation per gate — there are only thirteen kinds and none of
// them needs behavior beyond "what are my qubits, angle, and kind",
// so a sum type keeps the executor's dispatch loop a single switch
// over a comparable value instead of a slice of heap-boxed interfaces.
package circuit

import (
	"fmt"
	"math"

	"github.com/AUSP59/QuantumSimX/internal/qerr"
)

// Kind identifies the operation a tagged record represents.
type Kind string

const (
	H        Kind = "H"
	X        Kind = "X"
	Y        Kind = "Y"
	Z        Kind = "Z"
	S        Kind = "S"
	RX       Kind = "RX"
	RY       Kind = "RY"
	RZ       Kind = "RZ"
	CNOT     Kind = "CNOT"
	MEASURE  Kind = "MEASURE"
	DEPHASE  Kind = "DEPHASE"
	DEPOL    Kind = "DEPOL"
	AMPDAMP  Kind = "AMPDAMP"
)

// IsRotation reports whether k is one of RX/RY/RZ.
func (k Kind) IsRotation() bool {
	return k == RX || k == RY || k == RZ
}

// IsNoise reports whether k is one of the three supported noise channels.
func (k Kind) IsNoise() bool {
	return k == DEPHASE || k == DEPOL || k == AMPDAMP
}

// IsSingleQubitUnitary reports whether k is a single-qubit gate with a
// 2x2 coefficient matrix (the set package gate can supply Coefficients
// for).
func (k Kind) IsSingleQubitUnitary() bool {
	switch k {
	case H, X, Y, Z, S, RX, RY, RZ:
		return true
	default:
		return false
	}
}

// Operation is one tagged step of a circuit.
//
//   - Qubits has length 0 for MEASURE, 1 for single-qubit gates and
//     noise channels, 2 for CNOT, ordered (control, target).
//   - Angle is the rotation angle in radians for RX/RY/RZ, and the
//     channel probability p in [0,1] for DEPHASE/DEPOL/AMPDAMP. It is
//     unused (zero) for every other kind.
type Operation struct {
	Kind   Kind
	Qubits []int
	Angle  float64
}

// Control returns Qubits[0] for a CNOT; callers must only call this on
// a CNOT operation.
func (op Operation) Control() int { return op.Qubits[0] }

// Target returns the acted-upon qubit: Qubits[0] for single-qubit ops
// and noise channels, Qubits[1] for CNOT.
func (op Operation) Target() int {
	if op.Kind == CNOT {
		return op.Qubits[1]
	}
	return op.Qubits[0]
}

func gate1(kind Kind, q int) Operation { return Operation{Kind: kind, Qubits: []int{q}} }

// NewH, NewX, ... are small constructors mirroring the teacher's
// AddGate-style helpers, kept because circuit construction by hand (in
// tests) reads better than spelling out Operation{...} literals
// everywhere.
func NewH(q int) Operation  { return gate1(H, q) }
func NewX(q int) Operation  { return gate1(X, q) }
func NewY(q int) Operation  { return gate1(Y, q) }
func NewZ(q int) Operation  { return gate1(Z, q) }
func NewS(q int) Operation  { return gate1(S, q) }
func NewRX(q int, theta float64) Operation { return Operation{Kind: RX, Qubits: []int{q}, Angle: theta} }
func NewRY(q int, theta float64) Operation { return Operation{Kind: RY, Qubits: []int{q}, Angle: theta} }
func NewRZ(q int, theta float64) Operation { return Operation{Kind: RZ, Qubits: []int{q}, Angle: theta} }
func NewCNOT(control, target int) Operation {
	return Operation{Kind: CNOT, Qubits: []int{control, target}}
}
func NewMeasureAll() Operation { return Operation{Kind: MEASURE} }
func NewDephase(q int, p float64) Operation  { return Operation{Kind: DEPHASE, Qubits: []int{q}, Angle: p} }
func NewDepol(q int, p float64) Operation    { return Operation{Kind: DEPOL, Qubits: []int{q}, Angle: p} }
func NewAmpDamp(q int, p float64) Operation  { return Operation{Kind: AMPDAMP, Qubits: []int{q}, Angle: p} }

// Circuit is a qubit count plus an ordered operation list.
type Circuit struct {
	NumQubits int
	Ops       []Operation
}

// New returns an empty circuit over n qubits.
func New(n int) *Circuit {
	return &Circuit{NumQubits: n}
}

// Clone returns a deep copy; every transform in this module (optimizer,
// mapper, gradient) reads a circuit without mutating it and produces a
// fresh one, so Clone is the one place an Operation slice is actually
// duplicated.
func (c *Circuit) Clone() *Circuit {
	out := &Circuit{NumQubits: c.NumQubits, Ops: make([]Operation, len(c.Ops))}
	for i, op := range c.Ops {
		out.Ops[i] = Operation{Kind: op.Kind, Angle: op.Angle, Qubits: append([]int(nil), op.Qubits...)}
	}
	return out
}

// Append adds op to the end of the circuit.
func (c *Circuit) Append(op Operation) {
	c.Ops = append(c.Ops, op)
}

// Validate checks every invariant from the data model: qubit indices in
// range, finite rotation angles, channel probabilities in [0,1], and
// MEASURE (if present) appearing only as the last non-trivial operation.
func (c *Circuit) Validate() error {
	for i, op := range c.Ops {
		for _, q := range op.Qubits {
			if q < 0 || q >= c.NumQubits {
				return qerr.New(qerr.InvalidOperand, fmt.Sprintf("operation %d (%s): qubit %d out of range [0,%d)", i, op.Kind, q, c.NumQubits))
			}
		}
		if op.Kind == CNOT && op.Qubits[0] == op.Qubits[1] {
			return qerr.New(qerr.InvalidOperand, fmt.Sprintf("operation %d: CNOT control equals target (%d)", i, op.Qubits[0]))
		}
		if op.Kind.IsRotation() && !isFinite(op.Angle) {
			return qerr.New(qerr.InvalidOperand, fmt.Sprintf("operation %d (%s): angle is not finite", i, op.Kind))
		}
		if op.Kind.IsNoise() && (op.Angle < 0 || op.Angle > 1) {
			return qerr.New(qerr.InvalidOperand, fmt.Sprintf("operation %d (%s): probability %g outside [0,1]", i, op.Kind, op.Angle))
		}
		if op.Kind == MEASURE {
			for _, later := range c.Ops[i+1:] {
				if later.Kind != MEASURE {
					return qerr.New(qerr.InvalidOperand, "MEASURE must be the last non-trivial operation")
				}
			}
		}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// HasMeasure reports whether the circuit contains a MEASURE operation.
func (c *Circuit) HasMeasure() bool {
	for _, op := range c.Ops {
		if op.Kind == MEASURE {
			return true
		}
	}
	return false
}

// HasNoise reports whether the circuit contains any noise channel.
func (c *Circuit) HasNoise() bool {
	for _, op := range c.Ops {
		if op.Kind.IsNoise() {
			return true
		}
	}
	return false
}

// Dim returns 2^NumQubits, the dimension of the state space.
func (c *Circuit) Dim() int {
	return 1 << c.NumQubits
}
