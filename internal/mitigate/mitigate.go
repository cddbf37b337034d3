// Package mitigate inverts a per-qubit readout assignment matrix out of
// a measured probability vector, undoing the readout error common to
// near-term hardware: a qubit that should read 0 is reported
// 1 with probability p01, and vice versa with p10.
package mitigate

import "github.com/AUSP59/QuantumSimX/internal/qerr"

// Mitigate applies M^-1 along every qubit axis of p (a probability
// vector of length 2^n), where M = [[1-p01, p10], [p01, 1-p10]], then
// clips negative entries to zero and renormalizes to unit sum. It fails
// with Singular when det(M) = 0.
func Mitigate(p []float64, nqubits int, p01, p10 float64) ([]float64, error) {
	a, b, c, d := 1-p01, p10, p01, 1-p10
	det := a*d - b*c
	if det == 0 {
		return nil, qerr.New(qerr.Singular, "readout assignment matrix is not invertible")
	}
	ia, ib, ic, id := d/det, -b/det, -c/det, a/det

	out := make([]float64, len(p))
	copy(out, p)
	dim := len(p)
	for q := 0; q < nqubits; q++ {
		step := 1 << q
		for base := 0; base < dim; base += step << 1 {
			for i := 0; i < step; i++ {
				i0 := base + i
				i1 := i0 + step
				x0, x1 := out[i0], out[i1]
				out[i0] = ia*x0 + ib*x1
				out[i1] = ic*x0 + id*x1
			}
		}
	}

	sum := 0.0
	for i, v := range out {
		if v < 0 {
			v = 0
			out[i] = 0
		}
		sum += v
	}
	if sum > 0 {
		for i := range out {
			out[i] /= sum
		}
	}
	return out, nil
}

// ApplyNoise is the forward readout-error model used by property 6's
// round-trip check: it applies M (not M^-1) along every qubit axis, the
// same butterfly sweep with the un-inverted matrix entries.
func ApplyNoise(p []float64, nqubits int, p01, p10 float64) []float64 {
	a, b, c, d := 1-p01, p10, p01, 1-p10
	out := make([]float64, len(p))
	copy(out, p)
	dim := len(p)
	for q := 0; q < nqubits; q++ {
		step := 1 << q
		for base := 0; base < dim; base += step << 1 {
			for i := 0; i < step; i++ {
				i0 := base + i
				i1 := i0 + step
				x0, x1 := out[i0], out[i1]
				out[i0] = a*x0 + b*x1
				out[i1] = c*x0 + d*x1
			}
		}
	}
	return out
}
