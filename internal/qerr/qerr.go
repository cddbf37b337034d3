// Package qerr defines the structured error kinds the simulation kernel
// returns to its caller. The kernel never retries and never logs — every
// failure is a returned value, not a side effect, so callers (the CLI,
// the gradient evaluator looping over shifted circuits, a future
// language binding) can branch on Kind without parsing strings.
package qerr

import "fmt"

// Kind classifies a kernel error. See spec section "Error Handling
// Design" for the full contract each kind carries.
type Kind int

const (
	// Parse is returned by the parser collaborator for ill-formed input.
	// The kernel itself never produces it, since it only ever consumes
	// already-validated IR, but it is part of the shared error vocabulary
	// so the CLI can report parser and kernel failures uniformly.
	Parse Kind = iota
	// InvalidOperand covers an out-of-range qubit index, control==target
	// on a CNOT, a non-finite rotation angle, or a channel probability
	// outside [0,1].
	InvalidOperand
	// BackendUnsupported is returned when AMPDAMP is requested on the
	// state-vector backend.
	BackendUnsupported
	// NonUnitaryOp is returned by unitary synthesis when the circuit
	// contains MEASURE or a noise channel.
	NonUnitaryOp
	// InvalidFormat is returned when a snapshot header fails to match or
	// the file is truncated.
	InvalidFormat
	// Singular is returned when a readout assignment matrix has zero
	// determinant and cannot be inverted.
	Singular
	// OutOfRange covers numerical guards such as a basis index at or
	// beyond 2^n.
	OutOfRange
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "ParseError"
	case InvalidOperand:
		return "InvalidOperand"
	case BackendUnsupported:
		return "BackendUnsupported"
	case NonUnitaryOp:
		return "NonUnitaryOp"
	case InvalidFormat:
		return "InvalidFormat"
	case Singular:
		return "Singular"
	case OutOfRange:
		return "OutOfRange"
	default:
		return "UnknownError"
	}
}

// Error is a structured kernel failure: a Kind plus a human-readable
// message and, for parse failures, a location.
type Error struct {
	Kind    Kind
	Message string
	Line    int // 1-based; 0 when not applicable
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New constructs an *Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewAt constructs a parse *Error carrying a 1-based source line.
func NewAt(kind Kind, line int, message string) *Error {
	return &Error{Kind: kind, Message: message, Line: line}
}

// Is reports whether err is a *Error of the given kind, so callers can
// write `qerr.Is(err, qerr.Singular)` instead of a type assertion.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
