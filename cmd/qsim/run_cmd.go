package main

import (
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AUSP59/QuantumSimX/internal/executor"
	"github.com/AUSP59/QuantumSimX/internal/optimizer"
	"github.com/AUSP59/QuantumSimX/internal/report"
	"github.com/AUSP59/QuantumSimX/internal/shotloop"
	"github.com/AUSP59/QuantumSimX/internal/topology"
)

func newRunCmd() *cobra.Command {
	var (
		qasm     bool
		dense    bool
		seed     uint64
		shots    int
		workers  int
		optimize bool
		mapMode  string
		format   string
	)
	cmd := &cobra.Command{
		Use:   "run <circuit-file>",
		Short: "Execute a circuit and print its probability vector and outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCircuitFile(args[0], qasm)
			if err != nil {
				return err
			}
			if optimize {
				c = optimizer.Optimize(c, optimizer.Default())
			}
			if mapMode == "line" {
				c = topology.MapToLine(c)
			}
			start := time.Now()
			if shots > 1 {
				rep, err := shotloop.Run(c, seed, shots, workers, dense)
				if err != nil {
					return err
				}
				logger.Debug("shots complete", "shots", shots, "elapsed", time.Since(start))
				return writeShotReport(cmd.OutOrStdout(), rep, format)
			}
			r, err := executor.Run(c, seed, dense)
			if err != nil {
				return err
			}
			logger.Debug("run complete", "ops", len(c.Ops), "dense", dense, "elapsed", time.Since(start))
			env := report.NewEnvelope(c.NumQubits, r)
			return writeEnvelope(cmd.OutOrStdout(), env, format)
		},
	}
	cmd.Flags().BoolVar(&qasm, "qasm", false, "parse input as OpenQASM 2.0")
	cmd.Flags().BoolVar(&dense, "dense", false, "use the density-matrix backend")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "base RNG seed")
	cmd.Flags().IntVar(&shots, "shots", 1, "number of shots; >1 runs the shot loop")
	cmd.Flags().IntVar(&workers, "workers", 1, "parallel shot workers")
	cmd.Flags().BoolVar(&optimize, "optimize", false, "optimize the circuit before running")
	cmd.Flags().StringVar(&mapMode, "map", "", "topology to map onto before running: \"line\" or empty")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or csv")
	return cmd
}

func writeEnvelope(w io.Writer, env report.Envelope, format string) error {
	switch strings.ToLower(format) {
	case "csv":
		return report.WriteCSV(w, env)
	default:
		return report.WriteJSON(w, env)
	}
}

func writeShotReport(w io.Writer, rep shotloop.Report, format string) error {
	switch strings.ToLower(format) {
	case "csv":
		return report.WriteShotsCSV(w, rep.Counts)
	default:
		enc := jsonEncoder(w)
		return enc(rep)
	}
}
