package qrng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AUSP59/QuantumSimX/internal/qrng"
)

func TestSourceDeterministic(t *testing.T) {
	a := qrng.New(42)
	b := qrng.New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint32(), b.Uint32())
	}
}

func TestFloat64InUnitInterval(t *testing.T) {
	s := qrng.New(7)
	for i := 0; i < 1000; i++ {
		v := s.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestNewStreamDivergesFromBaseSeed(t *testing.T) {
	a := qrng.NewStream(1, 0)
	b := qrng.NewStream(1, 1)
	same := true
	for i := 0; i < 8; i++ {
		if a.Uint32() != b.Uint32() {
			same = false
			break
		}
	}
	require.False(t, same, "different streams from the same seed should diverge")
}
