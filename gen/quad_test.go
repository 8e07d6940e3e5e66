package gen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrate_Sine(t *testing.T) {
	v, err := integrate(math.Sin, 0, math.Pi, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-10)
}

func TestIntegrate_SplitPointsCoverKink(t *testing.T) {
	// |x| has a kink at 0; splitting there makes each segment polynomial.
	f := math.Abs
	v, err := integrate(f, -1, 1, []float64{0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-12)
}

func TestIntegrate_IgnoresPointsOutsideInterval(t *testing.T) {
	v, err := integrate(func(x float64) float64 { return x }, 0, 2, []float64{-5, 1, 7})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-12)
}

func TestIntegrate_EmptyOrInvertedIntervalIsZero(t *testing.T) {
	v, err := integrate(math.Exp, 3, 3, nil)
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = integrate(math.Exp, 5, 3, nil)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestIntegrate_UnresolvedIntegrandFails(t *testing.T) {
	// A spike far thinner than the node spacing: the two node counts see
	// different pictures and the convergence check must fail rather than
	// return either value.
	spike := func(x float64) float64 {
		return math.Exp(-x * x / 1e-4)
	}
	_, err := integrate(spike, -1, 1, nil)
	assert.Error(t, err)
}
