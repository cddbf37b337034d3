package report_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
	"github.com/AUSP59/QuantumSimX/internal/executor"
	"github.com/AUSP59/QuantumSimX/internal/report"
)

func bellCircuit() *circuit.Circuit {
	c := circuit.New(2)
	c.Append(circuit.NewH(0))
	c.Append(circuit.NewCNOT(0, 1))
	c.Append(circuit.NewMeasureAll())
	return c
}

func TestNewEnvelopeLabelsBackendFromDenseFlag(t *testing.T) {
	r, err := executor.Run(bellCircuit(), 1, true)
	require.NoError(t, err)
	env := report.NewEnvelope(2, r)
	require.Equal(t, "density", env.Backend)
	require.NotEqual(t, env.RunID.String(), "")
}

func TestWriteJSONRoundTrips(t *testing.T) {
	r, err := executor.Run(bellCircuit(), 1, false)
	require.NoError(t, err)
	env := report.NewEnvelope(2, r)

	var buf strings.Builder
	require.NoError(t, report.WriteJSON(&buf, env))

	var decoded report.Envelope
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &decoded))
	require.Equal(t, env.Backend, decoded.Backend)
	require.Equal(t, env.NumQubits, decoded.NumQubits)
	require.InDeltaSlice(t, env.Probabilities, decoded.Probabilities, 1e-12)
}

func TestWriteCSVHasHeaderAndOneRowPerBasisIndex(t *testing.T) {
	r, err := executor.Run(bellCircuit(), 1, false)
	require.NoError(t, err)
	env := report.NewEnvelope(2, r)

	var buf strings.Builder
	require.NoError(t, report.WriteCSV(&buf, env))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, "index,probability", lines[0])
	require.Len(t, lines, 1+len(env.Probabilities))
}

func TestWriteShotsCSVHasOneRowPerOutcome(t *testing.T) {
	counts := map[string]int{"00": 3, "11": 5}
	var buf strings.Builder
	require.NoError(t, report.WriteShotsCSV(&buf, counts))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "outcome,count", lines[0])
}

func TestWriteDOTEmitsValidDigraphWrapper(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, report.WriteDOT(&buf, bellCircuit()))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "digraph circuit {"))
	require.True(t, strings.HasSuffix(out, "}\n"))
	require.Contains(t, out, "ctrl1")
}
