package main

import (
	"github.com/spf13/cobra"

	"github.com/AUSP59/QuantumSimX/internal/report"
	"github.com/AUSP59/QuantumSimX/internal/tui"
)

func newViewCmd() *cobra.Command {
	var (
		qasm bool
		dot  bool
	)
	cmd := &cobra.Command{
		Use:   "view <circuit-file>",
		Short: "Open the terminal circuit diagram viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCircuitFile(args[0], qasm)
			if err != nil {
				return err
			}
			if dot {
				return report.WriteDOT(cmd.OutOrStdout(), c)
			}
			return tui.Run(args[0], c)
		},
	}
	cmd.Flags().BoolVar(&qasm, "qasm", false, "parse input as OpenQASM 2.0")
	cmd.Flags().BoolVar(&dot, "dot", false, "print a Graphviz DOT diagram instead of opening the terminal viewer")
	return cmd
}
