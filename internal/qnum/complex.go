// Package qnum defines the complex scalar type shared by every numeric
// component of the simulation kernel (state vector, density matrix, gate
// table, unitary synthesis).
package qnum

// Complex is the scalar type used throughout the kernel. It is a type
// alias for the built-in complex128 rather than a wrapper struct, so the
// buffers it backs stay dense, contiguous, and free of per-element
// method-dispatch overhead.
//
// A 32-bit build (complex64, half the memory per amplitude) is a
// straightforward swap of this alias plus the float64->float32 literals
// in package gate; it is not wired into the CLI because none of the
// example corpus's numeric code exposes a precision flag, and adding one
// here without a caller to drive it would be speculative.
type Complex = complex128

// Tolerance is the default numerical tolerance used when comparing
// probabilities and norms against their expected values (1.0 for a
// normalized state, a published expectation value, and so on).
const Tolerance = 1e-9
