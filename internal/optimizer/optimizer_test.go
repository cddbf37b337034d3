package optimizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
	"github.com/AUSP59/QuantumSimX/internal/executor"
	"github.com/AUSP59/QuantumSimX/internal/optimizer"
)

func TestOptimizeCancelsHHPair(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewH(0))
	c.Append(circuit.NewH(0))
	c.Append(circuit.NewMeasureAll())

	out := optimizer.Optimize(c, optimizer.Default())
	require.Len(t, out.Ops, 1)
	require.Equal(t, circuit.MEASURE, out.Ops[0].Kind)
}

func TestOptimizeMergesConsecutiveRotations(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewRX(0, 0.3))
	c.Append(circuit.NewRX(0, 0.4))

	out := optimizer.Optimize(c, optimizer.Default())
	require.Len(t, out.Ops, 1)
	require.Equal(t, circuit.RX, out.Ops[0].Kind)
	require.InDelta(t, 0.7, out.Ops[0].Angle, 1e-12)
}

func TestOptimizeFoldsSSIntoZ(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewS(0))
	c.Append(circuit.NewS(0))

	out := optimizer.Optimize(c, optimizer.Default())
	require.Len(t, out.Ops, 1)
	require.Equal(t, circuit.Z, out.Ops[0].Kind)
}

func TestOptimizeDropsNegligibleRotation(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewRZ(0, 1e-18))

	out := optimizer.Optimize(c, optimizer.Default())
	require.Empty(t, out.Ops)
}

func TestOptimizeCancelsAdjacentCNOTPair(t *testing.T) {
	c := circuit.New(2)
	c.Append(circuit.NewCNOT(0, 1))
	c.Append(circuit.NewCNOT(0, 1))
	c.Append(circuit.NewMeasureAll())

	out := optimizer.Optimize(c, optimizer.Default())
	require.Len(t, out.Ops, 1)
	require.Equal(t, circuit.MEASURE, out.Ops[0].Kind)
}

func TestOptimizeTreatsCNOTAsSingleQubitBarrier(t *testing.T) {
	c := circuit.New(2)
	c.Append(circuit.NewH(0))
	c.Append(circuit.NewCNOT(0, 1))
	c.Append(circuit.NewH(0))

	out := optimizer.Optimize(c, optimizer.Default())
	require.Len(t, out.Ops, 3)
}

func TestOptimizePreservesMeasurementStatistics(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewH(0))
	c.Append(circuit.NewH(0))
	c.Append(circuit.NewX(0))
	c.Append(circuit.NewMeasureAll())

	before, err := executor.Run(c, 42, false)
	require.NoError(t, err)

	optimized := optimizer.Optimize(c, optimizer.Default())
	after, err := executor.Run(optimized, 42, false)
	require.NoError(t, err)

	require.InDeltaSlice(t, before.Probabilities, after.Probabilities, 1e-9)
}
