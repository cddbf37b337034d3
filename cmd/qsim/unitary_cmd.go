package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AUSP59/QuantumSimX/internal/unitary"
)

func newUnitaryCmd() *cobra.Command {
	var (
		qasm    bool
		csvPath string
	)
	cmd := &cobra.Command{
		Use:   "unitary <circuit-file>",
		Short: "Synthesize the full unitary matrix of a unitary-only circuit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCircuitFile(args[0], qasm)
			if err != nil {
				return err
			}
			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := unitary.ExportCSV(f, c); err != nil {
					return err
				}
				logger.Debug("unitary exported", "path", csvPath, "dim", 1<<c.NumQubits)
				return nil
			}
			if _, err := unitary.Build(c); err != nil {
				return err
			}
			return unitary.ExportCSV(cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().BoolVar(&qasm, "qasm", false, "parse input as OpenQASM 2.0")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the unitary as CSV to this path instead of stdout")
	return cmd
}
