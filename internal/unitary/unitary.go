// Package unitary synthesizes the full 2^n x 2^n matrix a unitary-only
// circuit implements, by left-multiplying an accumulator with each
// operation's matrix in circuit order. It rejects MEASURE and any
// noise channel outright — those operations have no unitary matrix by
// definition — with NonUnitaryOp rather than silently skipping them.
package unitary

import (
	"fmt"
	"io"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
	"github.com/AUSP59/QuantumSimX/internal/gate"
	"github.com/AUSP59/QuantumSimX/internal/qerr"
	"github.com/AUSP59/QuantumSimX/internal/qnum"
)

// csvExportQubitCap mirrors the original 10-qubit safety limit on CSV
// export: a 1024x1024 matrix of complex entries is already a sizeable
// text file, and anything larger is a sign the caller wants the binary
// synthesis result, not a spreadsheet.
const csvExportQubitCap = 10

// Matrix is a dense row-major d x d complex matrix, d = 2^n.
type Matrix struct {
	Dim     int
	Entries []qnum.Complex
}

func (m *Matrix) at(i, j int) qnum.Complex { return m.Entries[i*m.Dim+j] }
func (m *Matrix) set(i, j int, v qnum.Complex) { m.Entries[i*m.Dim+j] = v }

func eye(d int) *Matrix {
	m := &Matrix{Dim: d, Entries: make([]qnum.Complex, d*d)}
	for i := 0; i < d; i++ {
		m.set(i, i, 1)
	}
	return m
}

func matmul(a, b *Matrix) *Matrix {
	d := a.Dim
	out := &Matrix{Dim: d, Entries: make([]qnum.Complex, d*d)}
	for i := 0; i < d; i++ {
		for k := 0; k < d; k++ {
			aik := a.at(i, k)
			if aik == 0 {
				continue
			}
			for j := 0; j < d; j++ {
				out.Entries[i*d+j] += aik * b.at(k, j)
			}
		}
	}
	return out
}

// gate1Matrix builds I (x) ... (x) U (x) ... (x) I, the n-qubit matrix
// of a single-qubit gate acting on target, by direct index construction
// rather than an explicit Kronecker-product loop: entry (i,j) is
// nonzero only when i and j agree on every bit except target, in which
// case it is the corresponding entry of U.
func gate1Matrix(c gate.Coeffs, n, target int) *Matrix {
	d := 1 << n
	bit := 1 << target
	m := &Matrix{Dim: d, Entries: make([]qnum.Complex, d*d)}
	for i := 0; i < d; i++ {
		i0 := i &^ bit
		i1 := i0 | bit
		if i&bit == 0 {
			m.set(i0, i0, c.U00)
			m.set(i0, i1, c.U01)
		} else {
			m.set(i1, i0, c.U10)
			m.set(i1, i1, c.U11)
		}
	}
	return m
}

// cnotMatrix builds the permutation matrix |i> -> |i XOR (control bit
// set ? target bit : 0)>.
func cnotMatrix(n, control, target int) *Matrix {
	d := 1 << n
	cbit := 1 << control
	tbit := 1 << target
	m := &Matrix{Dim: d, Entries: make([]qnum.Complex, d*d)}
	for i := 0; i < d; i++ {
		j := i
		if i&cbit != 0 {
			j = i ^ tbit
		}
		m.set(j, i, 1)
	}
	return m
}

// Build synthesizes the full matrix of c, failing with NonUnitaryOp if
// c contains MEASURE or a noise channel.
func Build(c *circuit.Circuit) (*Matrix, error) {
	for _, op := range c.Ops {
		if op.Kind == circuit.MEASURE || op.Kind.IsNoise() {
			return nil, qerr.New(qerr.NonUnitaryOp, "circuit contains a non-unitary operation: "+string(op.Kind))
		}
	}
	n := c.NumQubits
	u := eye(1 << n)
	for _, op := range c.Ops {
		var g *Matrix
		switch {
		case op.Kind == circuit.CNOT:
			g = cnotMatrix(n, op.Control(), op.Target())
		case op.Kind.IsSingleQubitUnitary():
			g = gate1Matrix(gate.Coefficients(string(op.Kind), op.Angle), n, op.Target())
		default:
			return nil, qerr.New(qerr.NonUnitaryOp, "unsupported operation: "+string(op.Kind))
		}
		u = matmul(g, u)
	}
	return u, nil
}

// ExportCSV builds the matrix of c and writes it one row per line, each
// entry formatted "re+imi", rejecting circuits above csvExportQubitCap
// qubits since the
// resulting file would be impractically large.
func ExportCSV(w io.Writer, c *circuit.Circuit) error {
	if c.NumQubits > csvExportQubitCap {
		return qerr.New(qerr.InvalidOperand, fmt.Sprintf("unitary CSV export capped at %d qubits", csvExportQubitCap))
	}
	m, err := Build(c)
	if err != nil {
		return err
	}
	for i := 0; i < m.Dim; i++ {
		for j := 0; j < m.Dim; j++ {
			z := m.at(i, j)
			sign := "+"
			if imag(z) < 0 {
				sign = ""
			}
			if _, err := fmt.Fprintf(w, "%g%s%gi", real(z), sign, imag(z)); err != nil {
				return err
			}
			if j+1 < m.Dim {
				if _, err := w.Write([]byte(",")); err != nil {
					return err
				}
			}
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
