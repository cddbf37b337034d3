package main

import (
	"github.com/spf13/cobra"

	"github.com/AUSP59/QuantumSimX/internal/shotloop"
)

func newShotsCmd() *cobra.Command {
	var (
		qasm    bool
		dense   bool
		seed    uint64
		shots   int
		workers int
		format  string
	)
	cmd := &cobra.Command{
		Use:   "shots <circuit-file>",
		Short: "Run the parallel shot loop and print aggregated outcome counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCircuitFile(args[0], qasm)
			if err != nil {
				return err
			}
			if shots <= 0 {
				shots = cfg.DefaultShots
			}
			if workers <= 0 {
				workers = cfg.DefaultWorkers
			}
			rep, err := shotloop.Run(c, seed, shots, workers, dense)
			if err != nil {
				return err
			}
			logger.Debug("shots complete", "shots", shots, "workers", workers)
			return writeShotReport(cmd.OutOrStdout(), rep, format)
		},
	}
	cmd.Flags().BoolVar(&qasm, "qasm", false, "parse input as OpenQASM 2.0")
	cmd.Flags().BoolVar(&dense, "dense", false, "use the density-matrix backend")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "base RNG seed")
	cmd.Flags().IntVar(&shots, "shots", 0, "number of shots (0 uses the config default)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 uses the config default)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or csv")
	return cmd
}
