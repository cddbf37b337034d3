// Package gate holds pure coefficient functions for every supported
// single-qubit gate. Each function returns the four complex entries of
// the gate's 2x2 matrix
//
//	[[u00, u01],
//	 [u10, u11]]
//
// and nothing else — no qubit index, no buffer, no dispatch. The state
// vector and density matrix engines route a gate to the single-qubit,
// CNOT, or controlled-single-qubit code path by inspecting the caller's
// request, not by asking the gate what kind of object it is. This keeps
// numerical identities (RZ is diagonal, X is anti-diagonal and real)
// visible at the call site instead of hidden behind a virtual method.
package gate

import (
	"math"

	"github.com/AUSP59/QuantumSimX/internal/qnum"
)

// Coeffs is the 2x2 matrix of a single-qubit gate, row-major.
type Coeffs struct {
	U00, U01, U10, U11 qnum.Complex
}

// X returns the Pauli-X (bit flip) matrix.
func X() Coeffs {
	return Coeffs{0, 1, 1, 0}
}

// Y returns the Pauli-Y matrix.
func Y() Coeffs {
	return Coeffs{0, -1i, 1i, 0}
}

// Z returns the Pauli-Z (phase flip) matrix.
func Z() Coeffs {
	return Coeffs{1, 0, 0, -1}
}

// H returns the Hadamard matrix.
func H() Coeffs {
	const s = 0.70710678118654752440 // 1/sqrt(2)
	return Coeffs{complex(s, 0), complex(s, 0), complex(s, 0), complex(-s, 0)}
}

// S returns diag(1, i), the phase gate.
func S() Coeffs {
	return Coeffs{1, 0, 0, 1i}
}

// RX returns the rotation-about-X matrix for angle theta (radians).
func RX(theta float64) Coeffs {
	c, s := cosSin(theta / 2)
	return Coeffs{
		complex(c, 0), complex(0, -s),
		complex(0, -s), complex(c, 0),
	}
}

// RY returns the rotation-about-Y matrix for angle theta (radians).
func RY(theta float64) Coeffs {
	c, s := cosSin(theta / 2)
	return Coeffs{
		complex(c, 0), complex(-s, 0),
		complex(s, 0), complex(c, 0),
	}
}

// RZ returns the rotation-about-Z matrix for angle theta (radians):
// diag(e^{-i*theta/2}, e^{i*theta/2}).
func RZ(theta float64) Coeffs {
	c, s := cosSin(theta / 2)
	return Coeffs{
		complex(c, -s), 0,
		0, complex(c, s),
	}
}

// Coefficients returns the 2x2 matrix for a gate kind from the tagged
// operation set. It panics on a kind with no 2x2 matrix (CNOT, MEASURE,
// and the noise channels are not single-qubit unitaries); callers must
// only invoke this for the single-qubit unitary kinds.
func Coefficients(kind string, angle float64) Coeffs {
	switch kind {
	case "H":
		return H()
	case "X":
		return X()
	case "Y":
		return Y()
	case "Z":
		return Z()
	case "S":
		return S()
	case "RX":
		return RX(angle)
	case "RY":
		return RY(angle)
	case "RZ":
		return RZ(angle)
	default:
		panic("gate: " + kind + " has no single-qubit coefficient matrix")
	}
}

func cosSin(x float64) (c, s float64) {
	return math.Cos(x), math.Sin(x)
}
