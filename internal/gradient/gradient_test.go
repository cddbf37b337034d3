package gradient_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
	"github.com/AUSP59/QuantumSimX/internal/executor"
	"github.com/AUSP59/QuantumSimX/internal/gradient"
)

func TestGradientOfRYMatchesAnalyticDerivative(t *testing.T) {
	theta := math.Pi / 3
	c := circuit.New(1)
	c.Append(circuit.NewRY(0, theta))

	res, err := gradient.Gradient(c, []int{0}, 7)
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.ParamOpIndices)
	require.Len(t, res.Grads, 1)
	require.InDelta(t, -math.Sin(theta), res.Grads[0][0], 1e-9)
}

func TestGradientDefaultsToEveryRotation(t *testing.T) {
	c := circuit.New(2)
	c.Append(circuit.NewRX(0, 0.4))
	c.Append(circuit.NewRY(1, 0.2))
	c.Append(circuit.NewCNOT(0, 1))

	res, err := gradient.Gradient(c, nil, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.ParamOpIndices)
	require.Len(t, res.Grads, 2)
}

func TestGradientMatchesFiniteDifference(t *testing.T) {
	theta := 0.9
	eps := 1e-6
	seed := uint64(31)

	c := circuit.New(1)
	c.Append(circuit.NewRY(0, theta))
	res, err := gradient.Gradient(c, []int{0}, seed)
	require.NoError(t, err)

	plus := circuit.New(1)
	plus.Append(circuit.NewRY(0, theta+eps))
	minus := circuit.New(1)
	minus.Append(circuit.NewRY(0, theta-eps))

	rPlus, err := executor.Run(plus, seed, false)
	require.NoError(t, err)
	rMinus, err := executor.Run(minus, seed, false)
	require.NoError(t, err)

	ezPlus := rPlus.Probabilities[0] - rPlus.Probabilities[1]
	ezMinus := rMinus.Probabilities[0] - rMinus.Probabilities[1]
	finite := (ezPlus - ezMinus) / (2 * eps)

	require.InDelta(t, finite, res.Grads[0][0], 1e-6)
}

func TestGradientPropagatesExecutorError(t *testing.T) {
	c := circuit.New(1)
	c.Append(circuit.NewRX(5, 0.1))
	_, err := gradient.Gradient(c, []int{0}, 1)
	require.Error(t, err)
}
