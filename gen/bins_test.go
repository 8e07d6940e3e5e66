package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svalder/sntools/flux"
)

// preparedFlux records PrepareEvtGen invocations.
type preparedFlux struct {
	flux.Constant
	prepareCalls int
	prepareTimes []float64
}

func (f *preparedFlux) PrepareEvtGen(times []float64) {
	f.prepareCalls++
	f.prepareTimes = times
}

func TestBinWindow_DropsTrailingPartialBin(t *testing.T) {
	// GIVEN a 999.5 ms window and 1 ms bins
	f := flux.Constant{Density: 1, Start: 0, End: 999.5, Steps: 3}
	r := newTestRun(boxChannel{sigma: 1}, f, 0)
	curve, err := newRateCurve([]float64{0, 999.5}, []float64{1, 1})
	require.NoError(t, err)

	// WHEN binning
	bins := r.binWindow(curve, f.StartTime(), f.EndTime(), 1)

	// THEN only the 999 full-width bins survive
	require.Len(t, bins, 999)
	assert.Equal(t, 0.0, bins[0].Start)
	assert.Equal(t, 0.5, bins[0].Mid())
	assert.Equal(t, 998.0, bins[998].Start)
}

func TestBinWindow_ClampsNegativeRates(t *testing.T) {
	f := flux.Constant{Density: 1, Start: 0, End: 10, Steps: 3}
	r := newTestRun(boxChannel{sigma: 1}, f, 0)
	curve, err := newRateCurve([]float64{0, 10}, []float64{-3, -3})
	require.NoError(t, err)

	bins := r.binWindow(curve, 0, 10, 1)
	for _, b := range bins {
		assert.Zero(t, b.Expected)
		assert.Zero(t, b.Count)
	}
}

func TestBinWindow_CallsPrepareEvtGenOnceWithAllMidpoints(t *testing.T) {
	f := &preparedFlux{Constant: flux.Constant{Density: 1, Start: 0, End: 10, Steps: 3}}
	r := newTestRun(boxChannel{sigma: 1}, f, 0)
	curve, err := newRateCurve([]float64{0, 10}, []float64{1, 1})
	require.NoError(t, err)

	r.binWindow(curve, 0, 10, 2)

	require.Equal(t, 1, f.prepareCalls)
	assert.Equal(t, []float64{1, 3, 5, 7, 9}, f.prepareTimes)
}

func TestBinWindow_PoissonCountsConvergeToMean(t *testing.T) {
	// GIVEN a constant rate curve of 2 events per bin
	lambda := 2.0
	f := flux.Constant{Density: 1, Start: 0, End: 10000, Steps: 3}
	r := newTestRun(boxChannel{sigma: 1}, f, 0)
	curve, err := newRateCurve([]float64{0, 10000}, []float64{lambda, lambda})
	require.NoError(t, err)

	// WHEN drawing 10000 bins
	bins := r.binWindow(curve, 0, 10000, 1)
	require.Len(t, bins, 10000)
	sum := 0
	for _, b := range bins {
		sum += b.Count
	}

	// THEN the sample mean is within 4 sigma of the Poisson mean
	mean := float64(sum) / float64(len(bins))
	assert.InDelta(t, lambda, mean, 0.06)
}
