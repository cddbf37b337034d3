package topology_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
	"github.com/AUSP59/QuantumSimX/internal/executor"
	"github.com/AUSP59/QuantumSimX/internal/topology"
)

func TestMapToLineInsertsSwapForDistantCNOT(t *testing.T) {
	c := circuit.New(3)
	c.Append(circuit.NewCNOT(0, 2))

	out := topology.MapToLine(c)
	require.Len(t, out.Ops, 4)
	for _, op := range out.Ops {
		require.Equal(t, circuit.CNOT, op.Kind)
	}
	last := out.Ops[len(out.Ops)-1]
	require.Equal(t, 1, last.Control())
	require.Equal(t, 2, last.Target())
}

func TestMapToLineLeavesAdjacentCNOTAlone(t *testing.T) {
	c := circuit.New(2)
	c.Append(circuit.NewCNOT(0, 1))

	out := topology.MapToLine(c)
	require.Len(t, out.Ops, 1)
	require.Equal(t, circuit.CNOT, out.Ops[0].Kind)
}

func TestMapToLinePreservesMeasurementStatistics(t *testing.T) {
	c := circuit.New(3)
	c.Append(circuit.NewH(0))
	c.Append(circuit.NewCNOT(0, 2))
	c.Append(circuit.NewMeasureAll())

	before, err := executor.Run(c, 11, false)
	require.NoError(t, err)

	mapped := topology.MapToLine(c)
	after, err := executor.Run(mapped, 11, false)
	require.NoError(t, err)

	require.InDeltaSlice(t, before.Probabilities, after.Probabilities, 1e-9)
}

func TestReadGraphAndMapToGraphMatchesLineMapper(t *testing.T) {
	c := circuit.New(3)
	c.Append(circuit.NewH(0))
	c.Append(circuit.NewCNOT(0, 2))
	c.Append(circuit.NewMeasureAll())

	g, err := topology.ReadGraph(strings.NewReader("0 1\n1 2\n"), 3)
	require.NoError(t, err)

	viaGraph := topology.MapToGraph(c, g)
	viaLine := topology.MapToLine(c)

	resGraph, err := executor.Run(viaGraph, 11, false)
	require.NoError(t, err)
	resLine, err := executor.Run(viaLine, 11, false)
	require.NoError(t, err)

	require.InDeltaSlice(t, resLine.Probabilities, resGraph.Probabilities, 1e-9)
}

func TestReadGraphRejectsOutOfRangeVertex(t *testing.T) {
	_, err := topology.ReadGraph(strings.NewReader("0 5\n"), 2)
	require.Error(t, err)
}
