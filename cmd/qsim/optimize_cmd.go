package main

import (
	"github.com/spf13/cobra"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
	"github.com/AUSP59/QuantumSimX/internal/optimizer"
)

func newOptimizeCmd() *cobra.Command {
	var qasm bool
	cmd := &cobra.Command{
		Use:   "optimize <circuit-file>",
		Short: "Print the algebraically optimized circuit in text format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCircuitFile(args[0], qasm)
			if err != nil {
				return err
			}
			out := optimizer.Optimize(c, optimizer.Default())
			logger.Debug("optimized", "before", len(c.Ops), "after", len(out.Ops))
			return circuit.ToText(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&qasm, "qasm", false, "parse input as OpenQASM 2.0")
	return cmd
}
