package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AUSP59/QuantumSimX/internal/config"
)

func TestDefaultValues(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, 1, cfg.DefaultShots)
	require.Equal(t, 1, cfg.DefaultWorkers)
}

func TestDecodeOverridesOnlySetFields(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader("default_shots: 500\n"))
	require.NoError(t, err)
	require.Equal(t, 500, cfg.DefaultShots)
	require.Equal(t, 1, cfg.DefaultWorkers)
}

func TestDecodeParsesMitigationDefaults(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader("mitigate_p01: 0.02\nmitigate_p10: 0.05\n"))
	require.NoError(t, err)
	require.InDelta(t, 0.02, cfg.MitigateP01, 1e-12)
	require.InDelta(t, 0.05, cfg.MitigateP10, 1e-12)
}

func TestLoadOptionalFallsBackWhenFileMissing(t *testing.T) {
	cfg, err := config.LoadOptional("/nonexistent/qsim.yaml")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestDecodeRejectsMalformedYAML(t *testing.T) {
	_, err := config.Decode(strings.NewReader("default_shots: [this is not an int\n"))
	require.Error(t, err)
}
