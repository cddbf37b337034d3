package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AUSP59/QuantumSimX/internal/mitigate"
)

func newMitigateCmd() *cobra.Command {
	var (
		nqubits int
		p01     float64
		p10     float64
	)
	cmd := &cobra.Command{
		Use:   "mitigate <probabilities-file>",
		Short: "Invert per-qubit readout assignment error on a probability vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			probs, err := readProbabilities(args[0])
			if err != nil {
				return err
			}
			if p01 == 0 {
				p01 = cfg.MitigateP01
			}
			if p10 == 0 {
				p10 = cfg.MitigateP10
			}
			out, err := mitigate.Mitigate(probs, nqubits, p01, p10)
			if err != nil {
				return err
			}
			enc := jsonEncoder(cmd.OutOrStdout())
			return enc(out)
		},
	}
	cmd.Flags().IntVar(&nqubits, "nqubits", 0, "number of qubits (required)")
	cmd.Flags().Float64Var(&p01, "p01", 0, "Pr(report 1 | true 0)")
	cmd.Flags().Float64Var(&p10, "p10", 0, "Pr(report 0 | true 1)")
	cmd.MarkFlagRequired("nqubits")
	return cmd
}

func readProbabilities(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		for _, tok := range strings.Fields(scanner.Text()) {
			tok = strings.TrimSuffix(tok, ",")
			if tok == "" {
				continue
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, scanner.Err()
}
