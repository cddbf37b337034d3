package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AUSP59/QuantumSimX/internal/gradient"
)

func newGradCmd() *cobra.Command {
	var (
		qasm bool
		wrt  string
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "grad <circuit-file>",
		Short: "Evaluate the parameter-shift gradient of <Z_q> for each rotation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCircuitFile(args[0], qasm)
			if err != nil {
				return err
			}
			var indices []int
			if wrt != "" {
				for _, tok := range strings.Split(wrt, ",") {
					idx, err := strconv.Atoi(strings.TrimSpace(tok))
					if err != nil {
						return err
					}
					indices = append(indices, idx)
				}
			}
			res, err := gradient.Gradient(c, indices, seed)
			if err != nil {
				return err
			}
			logger.Debug("gradient computed", "params", len(res.ParamOpIndices))
			enc := jsonEncoder(cmd.OutOrStdout())
			return enc(res)
		},
	}
	cmd.Flags().BoolVar(&qasm, "qasm", false, "parse input as OpenQASM 2.0")
	cmd.Flags().StringVar(&wrt, "wrt", "", "comma-separated operation indices to differentiate w.r.t. (default: every rotation)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "RNG seed shared by both shifted runs")
	return cmd
}
