package gen

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	// quadNodes is the Gauss-Legendre node count of the coarse evaluation;
	// the convergence check re-evaluates with twice as many nodes.
	quadNodes  = 32
	quadRelTol = 1e-6
)

// integrate computes the definite integral of f over [lo, hi], splitting
// the interval at the supplied interior points before applying
// Gauss-Legendre quadrature per segment. The integral is evaluated at two
// node counts; if the results disagree beyond quadRelTol the integrand is
// not resolved by the quadrature and an error is returned rather than a
// silently wrong value.
func integrate(f func(float64) float64, lo, hi float64, points []float64) (float64, error) {
	if hi <= lo {
		return 0, nil
	}

	edges := []float64{lo}
	for _, p := range points {
		if p > lo && p < hi {
			edges = append(edges, p)
		}
	}
	edges = append(edges, hi)
	sort.Float64s(edges)

	var coarse, fine float64
	for i := 0; i+1 < len(edges); i++ {
		a, b := edges[i], edges[i+1]
		coarse += quad.Fixed(f, a, b, quadNodes, nil, 0)
		fine += quad.Fixed(f, a, b, 2*quadNodes, nil, 0)
	}

	diff := math.Abs(fine - coarse)
	scale := math.Max(math.Abs(fine), math.Abs(coarse))
	if diff > quadRelTol*scale {
		return 0, fmt.Errorf("quadrature did not converge over [%g, %g]: n=%d gave %g, n=%d gave %g",
			lo, hi, quadNodes, coarse, 2*quadNodes, fine)
	}
	return fine, nil
}
