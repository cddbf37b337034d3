// Package optimizer rewrites a circuit into an equivalent, shorter one
// using local algebraic identities: merging consecutive same-axis
// rotations, cancelling involutory pairs, folding S*S into Z, dropping
// negligible rotations, and cancelling adjacent identical CNOT pairs.
// Every rewrite preserves the circuit's action up to the stated
// tolerance — this package never changes measurement statistics.
package optimizer

import (
	"math"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
)

// zeroAngleTolerance is the threshold below which a rotation is treated
// as the identity and dropped in the second pass.
const zeroAngleTolerance = 1e-15

// Options toggles each rewrite independently, mirroring the three knobs
// the original optimizer exposed; all default to enabled.
type Options struct {
	MergeRotations    bool
	CancelInvolutory  bool
	CancelCNOTPairs   bool
}

// Default returns an Options with every rewrite enabled.
func Default() Options {
	return Options{MergeRotations: true, CancelInvolutory: true, CancelCNOTPairs: true}
}

func isInvolutory(k circuit.Kind) bool {
	return k == circuit.X || k == circuit.H || k == circuit.Z
}

// Optimize returns a new circuit equivalent to in. MEASURE, CNOT, and
// every noise channel pass through the first pass verbatim and act as
// barriers: a single-qubit rewrite never merges or cancels across one
// of them, since doing so could change a non-unitary operation's effect
// or reorder it relative to a measurement.
func Optimize(in *circuit.Circuit, opts Options) *circuit.Circuit {
	pass1 := &circuit.Circuit{NumQubits: in.NumQubits, Ops: make([]circuit.Operation, 0, len(in.Ops))}
	for _, op := range in.Ops {
		if isBarrier(op.Kind) {
			pass1.Ops = append(pass1.Ops, op)
			continue
		}
		if len(pass1.Ops) == 0 || !sameSingleQubitTarget(pass1.Ops[len(pass1.Ops)-1], op) {
			pass1.Ops = append(pass1.Ops, op)
			continue
		}
		prev := &pass1.Ops[len(pass1.Ops)-1]
		if opts.MergeRotations && prev.Kind.IsRotation() && prev.Kind == op.Kind {
			prev.Angle += op.Angle
			continue
		}
		if opts.CancelInvolutory && isInvolutory(prev.Kind) && prev.Kind == op.Kind {
			pass1.Ops = pass1.Ops[:len(pass1.Ops)-1]
			continue
		}
		if opts.CancelInvolutory && prev.Kind == circuit.S && op.Kind == circuit.S {
			prev.Kind = circuit.Z
			prev.Angle = 0
			continue
		}
		pass1.Ops = append(pass1.Ops, op)
	}

	out := &circuit.Circuit{NumQubits: pass1.NumQubits, Ops: make([]circuit.Operation, 0, len(pass1.Ops))}
	for i := 0; i < len(pass1.Ops); i++ {
		op := pass1.Ops[i]
		if op.Kind.IsRotation() && math.Abs(op.Angle) < zeroAngleTolerance {
			continue
		}
		if opts.CancelCNOTPairs && op.Kind == circuit.CNOT && i+1 < len(pass1.Ops) {
			next := pass1.Ops[i+1]
			if next.Kind == circuit.CNOT && sameQubits(op.Qubits, next.Qubits) {
				i++
				continue
			}
		}
		out.Ops = append(out.Ops, op)
	}
	return out
}

func isBarrier(k circuit.Kind) bool {
	return k == circuit.MEASURE || k == circuit.CNOT || k.IsNoise()
}

func sameSingleQubitTarget(prev, op circuit.Operation) bool {
	return len(prev.Qubits) == 1 && len(op.Qubits) == 1 && prev.Qubits[0] == op.Qubits[0]
}

func sameQubits(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
