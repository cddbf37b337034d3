package mitigate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AUSP59/QuantumSimX/internal/mitigate"
	"github.com/AUSP59/QuantumSimX/internal/qerr"
)

func TestMitigateIsIdentityWithoutReadoutError(t *testing.T) {
	p := []float64{0.5, 0.0, 0.0, 0.5}
	out, err := mitigate.Mitigate(p, 2, 0, 0)
	require.NoError(t, err)
	require.InDeltaSlice(t, p, out, 1e-9)
}

func TestMitigateRoundTripsAppliedNoise(t *testing.T) {
	p := []float64{0.5, 0.0, 0.0, 0.5}
	p01, p10 := 0.05, 0.1

	noisy := mitigate.ApplyNoise(p, 2, p01, p10)
	recovered, err := mitigate.Mitigate(noisy, 2, p01, p10)
	require.NoError(t, err)
	require.InDeltaSlice(t, p, recovered, 1e-9)
}

func TestMitigateRejectsSingularAssignmentMatrix(t *testing.T) {
	p := []float64{1, 0}
	_, err := mitigate.Mitigate(p, 1, 0.5, 0.5)
	require.True(t, qerr.Is(err, qerr.Singular))
}

func TestMitigateClipsAndRenormalizes(t *testing.T) {
	p := []float64{0.02, 0.98}
	out, err := mitigate.Mitigate(p, 1, 0.4, 0.4)
	require.NoError(t, err)
	sum := 0.0
	for _, v := range out {
		require.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}
