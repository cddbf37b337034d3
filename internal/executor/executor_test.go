package executor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
	"github.com/AUSP59/QuantumSimX/internal/executor"
	"github.com/AUSP59/QuantumSimX/internal/qerr"
)

func bellCircuit() *circuit.Circuit {
	c := circuit.New(2)
	c.Append(circuit.NewH(0))
	c.Append(circuit.NewCNOT(0, 1))
	c.Append(circuit.NewMeasureAll())
	return c
}

func TestRunBellPairSparse(t *testing.T) {
	r, err := executor.Run(bellCircuit(), 1, false)
	require.NoError(t, err)
	require.InDelta(t, 0.5, r.Probabilities[0], 1e-9)
	require.InDelta(t, 0.5, r.Probabilities[3], 1e-9)
	require.Equal(t, r.Outcome[0], r.Outcome[1])
}

func TestRunBellPairDense(t *testing.T) {
	r, err := executor.Run(bellCircuit(), 1, true)
	require.NoError(t, err)
	require.InDelta(t, 0.5, r.Probabilities[0], 1e-9)
	require.InDelta(t, 0.5, r.Probabilities[3], 1e-9)
	require.True(t, r.Dense)
}

func TestRunGHZ3(t *testing.T) {
	c := circuit.New(3)
	c.Append(circuit.NewH(0))
	c.Append(circuit.NewCNOT(0, 1))
	c.Append(circuit.NewCNOT(0, 2))
	c.Append(circuit.NewMeasureAll())
	r, err := executor.Run(c, 5, false)
	require.NoError(t, err)
	require.InDelta(t, 0.5, r.Probabilities[0], 1e-9)
	require.InDelta(t, 0.5, r.Probabilities[7], 1e-9)
}

func TestRunRejectsAmpDampOnSparseBackend(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewAmpDamp(0, 0.3))
	_, err := executor.Run(c, 1, false)
	require.True(t, qerr.Is(err, qerr.BackendUnsupported))
}

func TestRunAllowsAmpDampOnDenseBackend(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewX(0))
	c.Append(circuit.NewAmpDamp(0, 1.0))
	r, err := executor.Run(c, 1, true)
	require.NoError(t, err)
	require.InDelta(t, 1.0, r.Probabilities[0], 1e-9)
}

func TestDephaseZeroIsIdentityOnStateBackend(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewH(0))
	c.Append(circuit.NewDephase(0, 0.0))
	c.Append(circuit.NewMeasureAll())
	r, err := executor.Run(c, 99, false)
	require.NoError(t, err)
	require.InDelta(t, 0.5, r.Probabilities[0], 1e-9)
	require.InDelta(t, 0.5, r.Probabilities[1], 1e-9)
}

func TestRunPropagatesValidationError(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewH(3))
	_, err := executor.Run(c, 1, false)
	require.True(t, qerr.Is(err, qerr.InvalidOperand))
}

func TestRunDeterministicAcrossCalls(t *testing.T) {
	c := circuit.New(2)
	c.Append(circuit.NewH(0))
	c.Append(circuit.NewCNOT(0, 1))
	c.Append(circuit.NewMeasureAll())
	a, err1 := executor.Run(c, 777, false)
	b, err2 := executor.Run(c, 777, false)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, a.Outcome, b.Outcome)
	require.Equal(t, a.Probabilities, b.Probabilities)
}
