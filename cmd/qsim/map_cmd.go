package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
	"github.com/AUSP59/QuantumSimX/internal/topology"
)

func newMapCmd() *cobra.Command {
	var (
		qasm     bool
		line     bool
		topoFile string
	)
	cmd := &cobra.Command{
		Use:   "map <circuit-file>",
		Short: "Insert SWAPs so every CNOT acts on adjacent physical qubits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCircuitFile(args[0], qasm)
			if err != nil {
				return err
			}
			var out *circuit.Circuit
			if topoFile != "" {
				f, err := os.Open(topoFile)
				if err != nil {
					return err
				}
				defer f.Close()
				adj, err := topology.ReadGraph(f, c.NumQubits)
				if err != nil {
					return err
				}
				out = topology.MapToGraph(c, adj)
			} else {
				out = topology.MapToLine(c)
			}
			logger.Debug("mapped", "before", len(c.Ops), "after", len(out.Ops))
			return circuit.ToText(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&qasm, "qasm", false, "parse input as OpenQASM 2.0")
	cmd.Flags().BoolVar(&line, "line", true, "map onto the 1-D line topology (default)")
	cmd.Flags().StringVar(&topoFile, "topology", "", "path to an arbitrary topology edge-list file")
	return cmd
}
