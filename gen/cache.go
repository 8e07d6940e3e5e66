package gen

// fluxKey identifies one flux evaluation. Matching is exact floating-point
// equality on both coordinates: hits happen because the quadrature and the
// sampler probe passes revisit identical node positions, not because of
// any tolerance. A miss is never wrong, only slower.
type fluxKey struct {
	eNu, t float64
}

// fluxCache memoizes flux spectral-density evaluations. The double
// differential rate is evaluated hundreds of times per generated event,
// mostly at repeated (eNu, t) pairs while integrating over the outgoing
// energy. Scoped to a single generation run; never shared.
type fluxCache struct {
	flux Flux
	vals map[fluxKey]float64
}

func newFluxCache(flux Flux) *fluxCache {
	return &fluxCache{flux: flux, vals: make(map[fluxKey]float64)}
}

func (c *fluxCache) at(eNu, t float64) float64 {
	k := fluxKey{eNu: eNu, t: t}
	if v, ok := c.vals[k]; ok {
		return v
	}
	v := c.flux.SpectralDensity(eNu, t)
	c.vals[k] = v
	return v
}

func (c *fluxCache) size() int { return len(c.vals) }
