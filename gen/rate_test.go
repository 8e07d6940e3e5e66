package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/svalder/sntools/flux"
)

// boxChannel is a toy channel with a constant cross section over a fixed
// kinematic box. Every rate integral is known in closed form:
// rate = scale * sigma * (eE width) * (eNu width) * flux density.
type boxChannel struct {
	sigma float64
}

func (boxChannel) Name() string                            { return "box" }
func (c boxChannel) DSigmaDE(eNu, eE float64) float64      { return c.sigma }
func (boxChannel) DSigmaDCosT(eNu, cosT float64) float64   { return 0.5 }
func (boxChannel) BoundsE(eNu float64) (float64, float64)  { return 0, 1 }
func (boxChannel) BoundsENu() (float64, float64)           { return 2, 10 }
func (boxChannel) IntegrationPoints(eNu float64) []float64 { return nil }
func (c boxChannel) GenerateEvent(eNu float64, dir r3.Vec) Event {
	return Event{
		Code:     9999,
		Incoming: []Particle{{PID: -12, Energy: eNu, Direction: r3.Vec{Z: 1}}},
		Outgoing: []Particle{{PID: 11, Energy: eNu / 2, Direction: dir}},
	}
}

// invertedEChannel violates the eE bounds contract.
type invertedEChannel struct{ boxChannel }

func (invertedEChannel) BoundsE(eNu float64) (float64, float64) { return 1, 0 }

// invertedNuChannel violates the eNu bounds contract.
type invertedNuChannel struct{ boxChannel }

func (invertedNuChannel) BoundsENu() (float64, float64) { return 10, 2 }

func newTestRun(ch Channel, f Flux, scale float64) *run {
	return &run{
		channel: ch,
		flux:    f,
		scale:   scale,
		rng:     KeyFromSeed("42").NewRand(),
		cache:   newFluxCache(f),
	}
}

func TestEstimateRate_ConstantFluxClosedForm(t *testing.T) {
	// GIVEN sigma=1 over a unit eE range and an 8 MeV eNu range, flux
	// density 2, scale 0.5
	f := flux.Constant{Density: 2, Start: 0, End: 10, Steps: 5}
	r := newTestRun(boxChannel{sigma: 1}, f, 0.5)

	// WHEN estimating the rate curve
	curve, err := r.estimateRate(r.channel.BoundsE)
	require.NoError(t, err)

	// THEN the curve reproduces rate = 0.5*1*1*8*2 = 8 at the raw times
	// and in between
	for _, tt := range f.RawTimes() {
		assert.InDelta(t, 8.0, curve.At(tt), 1e-9)
	}
	assert.InDelta(t, 8.0, curve.At(1.25), 1e-9)
	assert.InDelta(t, 8.0, curve.At(7.9), 1e-9)
}

func TestEstimateRate_CachesFluxEvaluations(t *testing.T) {
	f := &countingFlux{}
	r := newTestRun(boxChannel{sigma: 1}, f, 1)

	_, err := r.estimateRate(r.channel.BoundsE)
	require.NoError(t, err)

	// The inner eE integral revisits the same (eNu, t) key at every node,
	// so the flux is evaluated once per outer node, not once per inner
	// node: distinct keys = outer nodes (both resolutions) per raw time.
	assert.Equal(t, r.cache.size(), f.calls)
	assert.Equal(t, 2*(quadNodes+2*quadNodes), f.calls)
}

func TestEstimateRate_InvertedBoundsFail(t *testing.T) {
	f := flux.Constant{Density: 1, Start: 0, End: 10, Steps: 3}

	_, err := newTestRun(invertedEChannel{}, f, 1).estimateRate(invertedEChannel{}.BoundsE)
	assert.ErrorContains(t, err, "inverted eE bounds")

	r := newTestRun(invertedNuChannel{}, f, 1)
	_, err = r.estimateRate(r.channel.BoundsE)
	assert.ErrorContains(t, err, "inverted eNu bounds")
}

func TestEstimateRate_NeedsTwoRawTimes(t *testing.T) {
	f := singleTimeFlux{}
	r := newTestRun(boxChannel{sigma: 1}, f, 1)
	_, err := r.estimateRate(r.channel.BoundsE)
	assert.ErrorContains(t, err, "need at least 2")
}

type singleTimeFlux struct{ flux.Constant }

func (singleTimeFlux) RawTimes() []float64 { return []float64{0} }

func TestRateCurve_KnotExactAndNoOvershoot(t *testing.T) {
	// Monotone data: the shape-preserving cubic must stay within the data
	// range between knots.
	times := []float64{0, 1, 2, 3}
	rates := []float64{0, 0, 5, 5}
	curve, err := newRateCurve(times, rates)
	require.NoError(t, err)

	for i, tt := range times {
		assert.InDelta(t, rates[i], curve.At(tt), 1e-12)
	}
	for x := 0.0; x <= 3.0; x += 0.01 {
		v := curve.At(x)
		assert.GreaterOrEqual(t, v, -1e-12, "undershoot at t=%g", x)
		assert.LessOrEqual(t, v, 5.0+1e-12, "overshoot at t=%g", x)
	}
}
