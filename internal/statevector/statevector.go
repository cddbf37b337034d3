// Package statevector implements the pure-state backend: a contiguous
// amplitude buffer of length 2^n, updated in place by pair-wise
// single-qubit and two-qubit kernels. See package densitymatrix for the
// mixed-state counterpart.
package statevector

import (
	"math"
	"math/cmplx"

	"github.com/AUSP59/QuantumSimX/internal/gate"
	"github.com/AUSP59/QuantumSimX/internal/qerr"
	"github.com/AUSP59/QuantumSimX/internal/qnum"
	"github.com/AUSP59/QuantumSimX/internal/qrng"
)

// renormalizeEvery is the number of gate applications between periodic
// renormalizations; see §4.1's "Renormalization" contract. Chosen to
// match the original kernel's amortized-cost design (a power of two,
// so the modulo test in afterGate is cheap per gate).
const renormalizeEvery = 256

// StateVector owns an amplitude buffer of length 2^n exclusively for the
// duration of one run. Indices are basis states: bit q of the index is
// the value of qubit q (least-significant-bit convention).
type StateVector struct {
	amp     []qnum.Complex
	n       int
	applied uint64
}

// New returns a StateVector for n qubits initialized to |0...0>.
func New(n int) *StateVector {
	amp := make([]qnum.Complex, 1<<n)
	amp[0] = 1
	return &StateVector{amp: amp, n: n}
}

// NumQubits returns n.
func (s *StateVector) NumQubits() int { return s.n }

// Dim returns 2^n.
func (s *StateVector) Dim() int { return len(s.amp) }

// Amplitudes returns the live backing slice. Callers that need a stable
// copy (snapshotting, testing) must copy it themselves; every engine
// method below treats it as owned and updates it in place.
func (s *StateVector) Amplitudes() []qnum.Complex { return s.amp }

// Clone returns a deep copy of the amplitude buffer and the gate counter.
func (s *StateVector) Clone() *StateVector {
	out := &StateVector{n: s.n, applied: s.applied, amp: make([]qnum.Complex, len(s.amp))}
	copy(out.amp, s.amp)
	return out
}

// ApplyGate1 applies a 2x2 matrix to the (i, i|bit) pair for every index
// i with bit q clear, using the old values of both entries.
func (s *StateVector) ApplyGate1(target int, c gate.Coeffs) {
	bit := 1 << target
	n := len(s.amp)
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amp[i], s.amp[j]
			s.amp[i] = c.U00*a0 + c.U01*a1
			s.amp[j] = c.U10*a0 + c.U11*a1
		}
	}
	s.afterGate()
}

// CNOT swaps a_i and a_{i|tbit} for every i with the control bit set and
// the target bit clear.
func (s *StateVector) CNOT(control, target int) error {
	if control == target {
		return qerr.New(qerr.InvalidOperand, "CNOT control equals target")
	}
	cm := 1 << control
	tm := 1 << target
	n := len(s.amp)
	for i := 0; i < n; i++ {
		if i&cm != 0 && i&tm == 0 {
			j := i | tm
			s.amp[i], s.amp[j] = s.amp[j], s.amp[i]
		}
	}
	return nil
}

// ControlledGate1 applies a 2x2 matrix to the (i, i|tbit) pair for every
// i with the control bit set and the target bit clear — the same index
// selection as CNOT, but a matrix multiply instead of a swap.
func (s *StateVector) ControlledGate1(control, target int, c gate.Coeffs) error {
	if control == target {
		return qerr.New(qerr.InvalidOperand, "controlled gate control equals target")
	}
	cm := 1 << control
	tm := 1 << target
	n := len(s.amp)
	for i := 0; i < n; i++ {
		if i&cm != 0 && i&tm == 0 {
			j := i | tm
			a0, a1 := s.amp[i], s.amp[j]
			s.amp[i] = c.U00*a0 + c.U01*a1
			s.amp[j] = c.U10*a0 + c.U11*a1
		}
	}
	s.afterGate()
	return nil
}

func (s *StateVector) afterGate() {
	s.applied++
	if s.applied%renormalizeEvery == 0 {
		s.Renormalize()
	}
}

// ProbabilityOf returns |a_i|^2 for basis index i, erroring if i is out
// of range.
func (s *StateVector) ProbabilityOf(i int) (float64, error) {
	if i < 0 || i >= len(s.amp) {
		return 0, qerr.New(qerr.OutOfRange, "basis index out of range")
	}
	return cmplx.Abs(s.amp[i]) * cmplx.Abs(s.amp[i]), nil
}

// Probabilities renormalizes unconditionally (per the public-operation
// boundary contract) and returns |a_i|^2 for every basis state.
func (s *StateVector) Probabilities() []float64 {
	s.Renormalize()
	out := make([]float64, len(s.amp))
	for i, a := range s.amp {
		out[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return out
}

// Renormalize divides every amplitude by sqrt(sum |a_i|^2), using
// compensated (Kahan) summation so the norm itself does not drift under
// repeated calls.
func (s *StateVector) Renormalize() {
	norm2, c := 0.0, 0.0
	for _, a := range s.amp {
		v := real(a)*real(a) + imag(a)*imag(a)
		y := v - c
		t := norm2 + y
		c = (t - norm2) - y
		norm2 = t
	}
	if norm2 == 0 {
		return
	}
	inv := complex(1/math.Sqrt(norm2), 0)
	for i := range s.amp {
		s.amp[i] *= inv
	}
}

// MeasureAll renormalizes, draws one uniform sample from the RNG,
// inverse-CDF-samples a basis index, decomposes it into per-qubit bits
// (bit q = (k>>q)&1), and — if collapse is true — sets the amplitude
// buffer to the corresponding basis vector. A draw marginally above the
// cumulative sum due to floating-point rounding clamps to the last
// index rather than failing.
func (s *StateVector) MeasureAll(rng *qrng.Source, collapse bool) []int {
	s.Renormalize()
	u := rng.Float64()
	acc := 0.0
	k := len(s.amp) - 1
	for i, a := range s.amp {
		acc += real(a)*real(a) + imag(a)*imag(a)
		if u <= acc {
			k = i
			break
		}
	}
	outcome := make([]int, s.n)
	for q := 0; q < s.n; q++ {
		outcome[q] = (k >> q) & 1
	}
	if collapse {
		for i := range s.amp {
			s.amp[i] = 0
		}
		s.amp[k] = 1
	}
	return outcome
}
