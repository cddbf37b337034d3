package circuit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
	"github.com/AUSP59/QuantumSimX/internal/qerr"
)

func TestValidateRejectsOutOfRangeQubit(t *testing.T) {
	c := circuit.New(2)
	c.Append(circuit.NewH(5))
	err := c.Validate()
	require.Error(t, err)
	require.True(t, qerr.Is(err, qerr.InvalidOperand))
}

func TestValidateRejectsCNOTSelfLoop(t *testing.T) {
	c := circuit.New(2)
	c.Append(circuit.NewCNOT(0, 0))
	require.True(t, qerr.Is(c.Validate(), qerr.InvalidOperand))
}

func TestValidateRejectsMeasureNotLast(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewMeasureAll())
	c.Append(circuit.NewH(0))
	require.True(t, qerr.Is(c.Validate(), qerr.InvalidOperand))
}

func TestValidateRejectsOutOfRangeProbability(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewDephase(0, 1.5))
	require.True(t, qerr.Is(c.Validate(), qerr.InvalidOperand))
}

func TestCloneIsIndependent(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewH(0))
	clone := c.Clone()
	clone.Ops[0].Qubits[0] = 99
	require.Equal(t, 0, c.Ops[0].Qubits[0])
}

func TestTextRoundTrip(t *testing.T) {
	c := circuit.New(2)
	c.Append(circuit.NewH(0))
	c.Append(circuit.NewRX(1, 0.75))
	c.Append(circuit.NewCNOT(0, 1))
	c.Append(circuit.NewDepol(1, 0.1))
	c.Append(circuit.NewMeasureAll())

	var buf strings.Builder
	require.NoError(t, circuit.ToText(&buf, c))

	reparsed, err := circuit.ParseText(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, c.NumQubits, reparsed.NumQubits)
	require.Len(t, reparsed.Ops, len(c.Ops))
	for i := range c.Ops {
		require.Equal(t, c.Ops[i].Kind, reparsed.Ops[i].Kind)
		require.Equal(t, c.Ops[i].Qubits, reparsed.Ops[i].Qubits)
		require.InDelta(t, c.Ops[i].Angle, reparsed.Ops[i].Angle, 1e-12)
	}
}

func TestParseTextInfersQubitCount(t *testing.T) {
	c, err := circuit.ParseText(strings.NewReader("H 0\nCNOT 0 2\nMEASURE ALL\n"))
	require.NoError(t, err)
	require.Equal(t, 3, c.NumQubits)
}

func TestParseTextCommentsAndBlankLines(t *testing.T) {
	c, err := circuit.ParseText(strings.NewReader("# a comment\n\nH 0 # trailing\n"))
	require.NoError(t, err)
	require.Len(t, c.Ops, 1)
}

func TestParseTextRejectsUnknownToken(t *testing.T) {
	_, err := circuit.ParseText(strings.NewReader("FROB 0\n"))
	require.True(t, qerr.Is(err, qerr.Parse))
}
