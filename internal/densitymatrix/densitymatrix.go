// Package densitymatrix implements the mixed-state backend: a
// contiguous 2^n x 2^n row-major buffer updated by two-sided unitary
// sweeps and single-qubit Kraus channels (dephasing, depolarizing,
// amplitude damping). See package statevector for the pure-state
// counterpart; the two backends are required to agree on probabilities
// for any unitary-only circuit (spec testable property 2).
package densitymatrix

import (
	"math"

	"github.com/AUSP59/QuantumSimX/internal/gate"
	"github.com/AUSP59/QuantumSimX/internal/qnum"
	"github.com/AUSP59/QuantumSimX/internal/qrng"
)

// DensityMatrix owns a dim*dim buffer exclusively for one run, starting
// at |0...0><0...0|.
type DensityMatrix struct {
	rho []qnum.Complex
	n   int
	dim int
}

// New returns a DensityMatrix for n qubits initialized to the all-zeros
// pure state.
func New(n int) *DensityMatrix {
	dim := 1 << n
	rho := make([]qnum.Complex, dim*dim)
	rho[0] = 1
	return &DensityMatrix{rho: rho, n: n, dim: dim}
}

// NumQubits returns n.
func (d *DensityMatrix) NumQubits() int { return d.n }

// Dim returns 2^n.
func (d *DensityMatrix) Dim() int { return d.dim }

// Entries returns the live row-major backing slice, entry (r,c) at
// r*dim+c.
func (d *DensityMatrix) Entries() []qnum.Complex { return d.rho }

func (d *DensityMatrix) idx(r, c int) int { return r*d.dim + c }

// ApplyUnitary1 applies rho' = U rho U^dagger for a single-qubit U,
// implemented as the two sweeps from §4.2: rows via U on the
// target-indexed pair, then columns via U^dagger on the same pair.
func (d *DensityMatrix) ApplyUnitary1(target int, c gate.Coeffs) {
	m := 1 << target
	dim := d.dim
	tmp := make([]qnum.Complex, len(d.rho))
	for r := 0; r < dim; r++ {
		r0 := r &^ m
		r1 := r0 | m
		if r&m == 0 {
			for col := 0; col < dim; col++ {
				tmp[d.idx(r, col)] = c.U00*d.rho[d.idx(r, col)] + c.U01*d.rho[d.idx(r1, col)]
			}
		} else {
			for col := 0; col < dim; col++ {
				tmp[d.idx(r, col)] = c.U10*d.rho[d.idx(r0, col)] + c.U11*d.rho[d.idx(r, col)]
			}
		}
	}
	u00c, u01c, u10c, u11c := conj(c.U00), conj(c.U01), conj(c.U10), conj(c.U11)
	out := make([]qnum.Complex, len(d.rho))
	for col := 0; col < dim; col++ {
		c0 := col &^ m
		c1 := c0 | m
		if col&m == 0 {
			for r := 0; r < dim; r++ {
				out[d.idx(r, col)] = tmp[d.idx(r, col)]*u00c + tmp[d.idx(r, c1)]*u10c
			}
		} else {
			for r := 0; r < dim; r++ {
				out[d.idx(r, col)] = tmp[d.idx(r, c0)]*u01c + tmp[d.idx(r, col)]*u11c
			}
		}
	}
	d.rho = out
	d.renormalize()
}

// CNOT permutes both row and column indices simultaneously: row r and
// column c each XOR the target bit when the control bit is set.
func (d *DensityMatrix) CNOT(control, target int) {
	cm := 1 << control
	tm := 1 << target
	dim := d.dim
	out := make([]qnum.Complex, len(d.rho))
	for r := 0; r < dim; r++ {
		r2 := r
		if r&cm != 0 {
			r2 = r ^ tm
		}
		for c := 0; c < dim; c++ {
			c2 := c
			if c&cm != 0 {
				c2 = c ^ tm
			}
			out[d.idx(r2, c2)] = d.rho[d.idx(r, c)]
		}
	}
	d.rho = out
}

// Dephase applies rho <- (1-p) rho + p Z rho Z on the target qubit.
func (d *DensityMatrix) Dephase(target int, p float64) {
	m := 1 << target
	dim := d.dim
	zrz := make([]qnum.Complex, len(d.rho))
	for r := 0; r < dim; r++ {
		rz := r&m != 0
		for c := 0; c < dim; c++ {
			cz := c&m != 0
			v := d.rho[d.idx(r, c)]
			if rz != cz {
				v = -v
			}
			zrz[d.idx(r, c)] = v
		}
	}
	oneMinusP := complex(1-p, 0)
	pc := complex(p, 0)
	for i := range d.rho {
		d.rho[i] = oneMinusP*d.rho[i] + pc*zrz[i]
	}
	d.renormalize()
}

// Depolarize applies rho <- (1-p) rho + (p/3) (X rho X + Y rho Y + Z rho Z)
// on the target qubit.
func (d *DensityMatrix) Depolarize(target int, p float64) {
	dim := d.dim
	m := 1 << target
	acc := make([]qnum.Complex, len(d.rho))

	// X rho X: flips the target bit on both row and column.
	for r := 0; r < dim; r++ {
		r2 := r ^ m
		for c := 0; c < dim; c++ {
			c2 := c ^ m
			acc[d.idx(r2, c2)] += d.rho[d.idx(r, c)]
		}
	}
	// Y rho Y: flips the target bit with the Pauli-Y phase convention
	// (Y = [[0,-i],[i,0]]): row bit 0->1 contributes +i, 1->0 contributes
	// -i, mirrored (conjugated) on the column side.
	for r := 0; r < dim; r++ {
		r2 := r ^ m
		rb := r&m != 0
		for c := 0; c < dim; c++ {
			c2 := c ^ m
			cb := c&m != 0
			v := d.rho[d.idx(r, c)]
			if rb {
				v *= -1i
			} else {
				v *= 1i
			}
			if cb {
				v *= 1i
			} else {
				v *= -1i
			}
			acc[d.idx(r2, c2)] += v
		}
	}
	// Z rho Z: sign flip when exactly one of row/col has the target bit.
	for r := 0; r < dim; r++ {
		rb := r&m != 0
		for c := 0; c < dim; c++ {
			cb := c&m != 0
			v := d.rho[d.idx(r, c)]
			if rb != cb {
				v = -v
			}
			acc[d.idx(r, c)] += v
		}
	}

	oneMinusP := complex(1-p, 0)
	third := complex(p/3, 0)
	for i := range d.rho {
		d.rho[i] = oneMinusP*d.rho[i] + third*acc[i]
	}
	d.renormalize()
}

// AmpDamp applies the amplitude-damping channel with Kraus operators
// K0 = diag(1, sqrt(1-p)) and K1 = sqrt(p) |0><1| on the target qubit,
// extended by identity on every other qubit: rho <- K0 rho K0^dagger +
// K1 rho K1^dagger.
func (d *DensityMatrix) AmpDamp(target int, p float64) {
	dim := d.dim
	m := 1 << target
	sq := math.Sqrt(math.Max(0, 1-p))
	out := make([]qnum.Complex, len(d.rho))

	// K0 rho K0^dagger: multiplies by 1 on |0> indices, by sqrt(1-p) on
	// each |1> index (one factor for the row, one for the column).
	for r := 0; r < dim; r++ {
		rf := 1.0
		if r&m != 0 {
			rf = sq
		}
		for c := 0; c < dim; c++ {
			cf := 1.0
			if c&m != 0 {
				cf = sq
			}
			out[d.idx(r, c)] += complex(rf*cf, 0) * d.rho[d.idx(r, c)]
		}
	}
	// K1 rho K1^dagger: K1 maps |1> -> sqrt(p)|0>, so only the rows/cols
	// with the target bit set contribute, landing at the bit-cleared
	// index on both sides.
	for r := 0; r < dim; r++ {
		if r&m == 0 {
			continue
		}
		r0 := r &^ m
		for c := 0; c < dim; c++ {
			if c&m == 0 {
				continue
			}
			c0 := c &^ m
			out[d.idx(r0, c0)] += complex(p, 0) * d.rho[d.idx(r, c)]
		}
	}

	d.rho = out
	d.renormalize()
}

// Probabilities returns Re(rho_ii) for every basis index.
func (d *DensityMatrix) Probabilities() []float64 {
	out := make([]float64, d.dim)
	for i := range out {
		out[i] = real(d.rho[d.idx(i, i)])
	}
	return out
}

// Sample draws one outcome from the diagonal by inverse-CDF sampling
// against a single RNG draw. No collapse of rho is performed — mixed
// states stay mixed across a run, per §4.2.
func (d *DensityMatrix) Sample(rng *qrng.Source) []int {
	probs := d.Probabilities()
	u := rng.Float64()
	acc := 0.0
	k := len(probs) - 1
	for i, p := range probs {
		acc += p
		if u <= acc {
			k = i
			break
		}
	}
	outcome := make([]int, d.n)
	for q := 0; q < d.n; q++ {
		outcome[q] = (k >> q) & 1
	}
	return outcome
}

// renormalize divides every entry by Re(trace(rho)) to control the
// numerical drift a sequence of channels can introduce.
func (d *DensityMatrix) renormalize() {
	tr := 0.0
	for i := 0; i < d.dim; i++ {
		tr += real(d.rho[d.idx(i, i)])
	}
	if tr == 0 {
		return
	}
	inv := complex(1/tr, 0)
	for i := range d.rho {
		d.rho[i] *= inv
	}
}

func conj(c qnum.Complex) qnum.Complex { return complex(real(c), -imag(c)) }
