package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/AUSP59/QuantumSimX/internal/config"
	"github.com/AUSP59/QuantumSimX/internal/qerr"
)

var (
	logLevel string
	cfgPath  string
	logger   *slog.Logger
	cfg      config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qsim",
		Short: "Classical simulator for small-to-medium quantum circuits",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = newLogger(logLevel)
			loaded, err := config.LoadOptional(cfgPath)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&cfgPath, "config", "qsim.yaml", "path to optional config file")

	root.AddCommand(
		newRunCmd(),
		newOptimizeCmd(),
		newMapCmd(),
		newUnitaryCmd(),
		newGradCmd(),
		newMitigateCmd(),
		newSnapshotCmd(),
		newShotsCmd(),
		newViewCmd(),
	)
	return root
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(h)
}

// exitCodeFor maps a returned error to a process exit code per
// SPEC_FULL.md §7: 1 for parse/format errors, 2 for every other
// structured kernel error, 3 for anything else (e.g. an I/O failure).
func exitCodeFor(err error) int {
	if logger != nil {
		logger.Error("command failed", "error", err)
	}
	switch {
	case qerr.Is(err, qerr.Parse), qerr.Is(err, qerr.InvalidFormat):
		return 1
	case isQerr(err):
		return 2
	default:
		return 3
	}
}

func isQerr(err error) bool {
	_, ok := err.(*qerr.Error)
	return ok
}
