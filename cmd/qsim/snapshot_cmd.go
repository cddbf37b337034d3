package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
	"github.com/AUSP59/QuantumSimX/internal/gate"
	"github.com/AUSP59/QuantumSimX/internal/statevector"
)

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "snapshot", Short: "Save or load a state-vector binary snapshot"}
	cmd.AddCommand(newSnapshotSaveCmd(), newSnapshotLoadCmd())
	return cmd
}

func newSnapshotSaveCmd() *cobra.Command {
	var (
		qasm bool
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "save <circuit-file> <snapshot-file>",
		Short: "Run a circuit on the state-vector backend and save the resulting amplitudes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCircuitFile(args[0], qasm)
			if err != nil {
				return err
			}
			sv := statevector.New(c.NumQubits)
			if err := replayUnitaryOnly(sv, c); err != nil {
				return err
			}
			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer out.Close()
			return sv.Save(out)
		},
	}
	cmd.Flags().BoolVar(&qasm, "qasm", false, "parse input as OpenQASM 2.0")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "unused (snapshot save only accepts unitary-only circuits); kept for symmetry with run")
	return cmd
}

func newSnapshotLoadCmd() *cobra.Command {
	var nqubits int
	cmd := &cobra.Command{
		Use:   "load <snapshot-file>",
		Short: "Load a snapshot and print its basis probabilities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			sv, err := statevector.Load(f, nqubits)
			if err != nil {
				return err
			}
			enc := jsonEncoder(cmd.OutOrStdout())
			return enc(sv.Probabilities())
		},
	}
	cmd.Flags().IntVar(&nqubits, "nqubits", 0, "expected qubit count; 0 to accept whatever the file declares")
	return cmd
}

// replayUnitaryOnly applies every unitary op in c directly to sv; used
// by `snapshot save`, which only makes sense for a deterministic,
// noise-free, non-measuring circuit (the snapshot is meant to capture a
// definite amplitude buffer, not one sample of a stochastic run).
func replayUnitaryOnly(sv *statevector.StateVector, c *circuit.Circuit) error {
	for _, op := range c.Ops {
		switch {
		case op.Kind == circuit.CNOT:
			if err := sv.CNOT(op.Control(), op.Target()); err != nil {
				return err
			}
		case op.Kind.IsSingleQubitUnitary():
			sv.ApplyGate1(op.Target(), gate.Coefficients(string(op.Kind), op.Angle))
		default:
			return &unsupportedSnapshotOp{op.Kind}
		}
	}
	return nil
}

type unsupportedSnapshotOp struct{ kind circuit.Kind }

func (e *unsupportedSnapshotOp) Error() string {
	return "snapshot save requires a unitary-only circuit, found " + string(e.kind)
}
