package unitary_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
	"github.com/AUSP59/QuantumSimX/internal/qerr"
	"github.com/AUSP59/QuantumSimX/internal/unitary"
)

func TestBuildXIsPauliX(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewX(0))

	m, err := unitary.Build(c)
	require.NoError(t, err)
	require.Equal(t, 2, m.Dim)

	entries := m.Entries
	require.InDelta(t, 0, real(entries[0]), 1e-12)
	require.InDelta(t, 1, real(entries[1]), 1e-12)
	require.InDelta(t, 1, real(entries[2]), 1e-12)
	require.InDelta(t, 0, real(entries[3]), 1e-12)
}

func TestBuildCNOTIsPermutation(t *testing.T) {
	c := circuit.New(2)
	c.Append(circuit.NewCNOT(0, 1))

	m, err := unitary.Build(c)
	require.NoError(t, err)
	require.Equal(t, 4, m.Dim)

	sum := 0.0
	for _, z := range m.Entries {
		sum += real(z)*real(z) + imag(z)*imag(z)
	}
	require.InDelta(t, 4.0, sum, 1e-9)
}

func TestBuildRejectsMeasure(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewMeasureAll())
	_, err := unitary.Build(c)
	require.True(t, qerr.Is(err, qerr.NonUnitaryOp))
}

func TestBuildRejectsNoiseChannel(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewDephase(0, 0.2))
	_, err := unitary.Build(c)
	require.True(t, qerr.Is(err, qerr.NonUnitaryOp))
}

func TestExportCSVWritesOneLinePerRow(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewX(0))

	var buf strings.Builder
	require.NoError(t, unitary.ExportCSV(&buf, c))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		require.Len(t, strings.Split(line, ","), 2)
	}
}

func TestExportCSVRejectsAboveQubitCap(t *testing.T) {
	c := circuit.New(11)
	var buf strings.Builder
	err := unitary.ExportCSV(&buf, c)
	require.True(t, qerr.Is(err, qerr.InvalidOperand))
}
