package gen

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// RateCurve is a continuous event-rate curve over the flux's raw sample
// times, built from a shape-preserving monotone cubic through the
// computed (time, rate) points. It reproduces the rate exactly at each
// sample time and introduces no extrema beyond those of the data, but may
// still dip slightly below zero between points; callers clamp before
// using a value as a Poisson mean.
type RateCurve struct {
	times []float64
	rates []float64
	cubic interp.FritschButland
}

func newRateCurve(times, rates []float64) (*RateCurve, error) {
	rc := &RateCurve{times: times, rates: rates}
	if err := rc.cubic.Fit(times, rates); err != nil {
		return nil, fmt.Errorf("fitting rate curve through %d points: %w", len(times), err)
	}
	return rc, nil
}

// At evaluates the interpolated rate at time t. Only meaningful inside
// the sampled time range.
func (rc *RateCurve) At(t float64) float64 {
	return rc.cubic.Predict(t)
}

// ddRate is the double-differential event rate at fixed time: the
// channel's differential cross section weighted by the (cached) flux
// spectral density.
func (r *run) ddRate(eNu, eE, t float64) float64 {
	return r.channel.DSigmaDE(eNu, eE) * r.cache.at(eNu, t)
}

// rateAt integrates ddRate over the outgoing-energy bounds and then the
// incoming-energy bounds, scaled by the run's scale factor, giving the
// expected event rate at time t. boundsE is a parameter so the
// above-threshold variant can reuse the same integral with clamped
// bounds.
func (r *run) rateAt(t float64, boundsE func(float64) (float64, float64)) (float64, error) {
	nuMin, nuMax := r.channel.BoundsENu()
	if nuMin > nuMax {
		return 0, fmt.Errorf("channel %s: inverted eNu bounds [%g, %g]", r.channel.Name(), nuMin, nuMax)
	}

	var innerErr error
	outer := func(eNu float64) float64 {
		lo, hi := boundsE(eNu)
		if lo > hi {
			if innerErr == nil {
				innerErr = fmt.Errorf("channel %s: inverted eE bounds [%g, %g] at eNu=%g", r.channel.Name(), lo, hi, eNu)
			}
			return 0
		}
		v, err := integrate(func(eE float64) float64 { return r.ddRate(eNu, eE, t) }, lo, hi, r.channel.IntegrationPoints(eNu))
		if err != nil && innerErr == nil {
			innerErr = err
		}
		return v
	}

	total, err := integrate(outer, nuMin, nuMax, nil)
	if innerErr != nil {
		return 0, innerErr
	}
	if err != nil {
		return 0, err
	}
	return r.scale * total, nil
}

// estimateRate computes the expected rate at every raw flux time and fits
// the rate curve through the results.
func (r *run) estimateRate(boundsE func(float64) (float64, float64)) (*RateCurve, error) {
	times := r.flux.RawTimes()
	if len(times) < 2 {
		return nil, fmt.Errorf("flux provides %d raw times, need at least 2 to interpolate", len(times))
	}
	rates := make([]float64, len(times))
	for i, t := range times {
		v, err := r.rateAt(t, boundsE)
		if err != nil {
			return nil, fmt.Errorf("event rate at t=%g ms: %w", t, err)
		}
		rates[i] = v
	}
	return newRateCurve(times, rates)
}
