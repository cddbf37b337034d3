package densitymatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AUSP59/QuantumSimX/internal/densitymatrix"
	"github.com/AUSP59/QuantumSimX/internal/gate"
)

func TestNewStartsAtAllZeros(t *testing.T) {
	dm := densitymatrix.New(1)
	probs := dm.Probabilities()
	require.InDelta(t, 1.0, probs[0], 1e-12)
	require.InDelta(t, 0.0, probs[1], 1e-12)
}

func TestBellPairMatchesStateVector(t *testing.T) {
	dm := densitymatrix.New(2)
	dm.ApplyUnitary1(0, gate.H())
	dm.CNOT(0, 1)
	probs := dm.Probabilities()
	require.InDelta(t, 0.5, probs[0], 1e-9)
	require.InDelta(t, 0.0, probs[1], 1e-9)
	require.InDelta(t, 0.0, probs[2], 1e-9)
	require.InDelta(t, 0.5, probs[3], 1e-9)
}

func TestDephaseFullyPreservesPopulations(t *testing.T) {
	dm := densitymatrix.New(1)
	dm.ApplyUnitary1(0, gate.H())
	dm.Dephase(0, 1.0)
	probs := dm.Probabilities()
	require.InDelta(t, 0.5, probs[0], 1e-9)
	require.InDelta(t, 0.5, probs[1], 1e-9)
}

func TestDepolarizeFullyRandomizesSingleQubit(t *testing.T) {
	dm := densitymatrix.New(1)
	dm.Depolarize(0, 1.0)
	probs := dm.Probabilities()
	require.InDelta(t, 1.0/3.0, probs[0], 1e-9)
	require.InDelta(t, 2.0/3.0, probs[1], 1e-9)
}

func TestAmpDampFullyDecaysToGround(t *testing.T) {
	dm := densitymatrix.New(1)
	dm.ApplyUnitary1(0, gate.X())
	dm.AmpDamp(0, 1.0)
	probs := dm.Probabilities()
	require.InDelta(t, 1.0, probs[0], 1e-9)
	require.InDelta(t, 0.0, probs[1], 1e-9)
}

func TestAmpDampZeroIsIdentity(t *testing.T) {
	dm := densitymatrix.New(1)
	dm.ApplyUnitary1(0, gate.H())
	before := dm.Probabilities()
	dm.AmpDamp(0, 0.0)
	after := dm.Probabilities()
	require.InDelta(t, before[0], after[0], 1e-9)
	require.InDelta(t, before[1], after[1], 1e-9)
}

func TestProbabilitiesSumToOne(t *testing.T) {
	dm := densitymatrix.New(2)
	dm.ApplyUnitary1(0, gate.H())
	dm.ApplyUnitary1(1, gate.RY(0.8))
	dm.CNOT(0, 1)
	dm.Depolarize(1, 0.2)
	sum := 0.0
	for _, p := range dm.Probabilities() {
		sum += p
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}
