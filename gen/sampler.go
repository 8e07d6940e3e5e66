package gen

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// SamplerConfig controls one rejection-sampling draw.
type SamplerConfig struct {
	// ProbeBins is the number of bins the interval is divided into while
	// estimating the density maximum. Defaults to 100.
	ProbeBins int
	// MaxIter caps the accept/reject loop. A density/bounds mismatch
	// (e.g. a maximum hiding in a spike thinner than one probe bin) would
	// otherwise loop forever. Defaults to 1e6 attempts.
	MaxIter int
}

const (
	defaultProbeBins = 100
	defaultMaxIter   = 1000000
)

// rejectionSample draws a value from an arbitrary non-negative, possibly
// unnormalized density over [lo, hi].
//
// The density maximum is estimated in two passes, assuming the density
// does not oscillate quickly: a coarse pass probing every tenth bin
// center, then a refinement pass probing every bin center within nine
// bins of the coarse maximum. The accept/reject loop then draws uniform
// candidates until one passes, consuming exactly two uniforms per
// attempt.
//
// The returned value always lies in [lo, hi]. An inverted interval or a
// negative probed density is a contract violation and fails immediately;
// exhausting MaxIter attempts fails with a sampling-exhausted error.
func rejectionSample(rng *rand.Rand, density func(float64) (float64, error), lo, hi float64, cfg SamplerConfig) (float64, error) {
	if lo > hi {
		return 0, fmt.Errorf("rejection sampling: inverted interval [%g, %g]", lo, hi)
	}
	nBins := cfg.ProbeBins
	if nBins <= 0 {
		nBins = defaultProbeBins
	}
	maxIter := cfg.MaxIter
	if maxIter <= 0 {
		maxIter = defaultMaxIter
	}
	binW := (hi - lo) / float64(nBins)

	probe := func(j int) (float64, error) {
		x := lo + binW*(float64(j)+0.5)
		p, err := density(x)
		if err != nil {
			return 0, err
		}
		if p < 0 {
			return 0, fmt.Errorf("rejection sampling: negative density %g at %g", p, x)
		}
		return p, nil
	}

	// Coarse pass over every tenth bin.
	var pMax float64
	var jMax int
	for j := 0; j < nBins; j += 10 {
		p, err := probe(j)
		if err != nil {
			return 0, err
		}
		if p > pMax {
			pMax, jMax = p, j
		}
	}
	// Refinement pass around the coarse maximum.
	for j := max(jMax-9, 0); j < min(jMax+10, nBins); j++ {
		p, err := probe(j)
		if err != nil {
			return 0, err
		}
		if p > pMax {
			pMax = p
		}
	}

	for i := 0; i < maxIter; i++ {
		val := lo + (hi-lo)*rng.Float64()
		p, err := density(val)
		if err != nil {
			return 0, err
		}
		if p < 0 {
			return 0, fmt.Errorf("rejection sampling: negative density %g at %g", p, val)
		}
		if pMax*rng.Float64() < p {
			return val, nil
		}
	}
	return 0, fmt.Errorf("rejection sampling: no accept after %d attempts over [%g, %g] (estimated maximum %g)",
		maxIter, lo, hi, pMax)
}
