package gen

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Bin is one fixed-width slice of the simulation window.
type Bin struct {
	Start    float64 // bin start time in ms
	Width    float64 // bin width in ms
	Expected float64 // interpolated rate at the bin midpoint, clamped at 0
	Count    int     // realized event count, Poisson-drawn with mean Expected
}

// Mid returns the bin midpoint time.
func (b Bin) Mid() float64 {
	return b.Start + b.Width/2
}

// binWindow partitions [start, end) into floor((end-start)/width)
// full-width bins; a trailing partial bin is dropped. The rate curve is
// evaluated at every bin midpoint, negative values are clamped to zero
// (an interpolation artifact, not a physical rate), and the realized
// count per bin is Poisson-drawn from the run's random source. All
// Poisson draws happen before the flux's PrepareEvtGen hook, which in
// turn runs before any event is sampled.
func (r *run) binWindow(curve *RateCurve, start, end, width float64) []Bin {
	n := int((end - start) / width)
	if n < 0 {
		n = 0
	}
	bins := make([]Bin, n)
	mids := make([]float64, n)
	for i := range bins {
		bins[i] = Bin{Start: start + float64(i)*width, Width: width}
		mids[i] = bins[i].Mid()
		if v := curve.At(mids[i]); v > 0 {
			bins[i].Expected = v
		}
	}
	for i := range bins {
		if bins[i].Expected > 0 {
			bins[i].Count = int(distuv.Poisson{Lambda: bins[i].Expected, Src: r.rng}.Rand())
		}
	}
	r.flux.PrepareEvtGen(mids)
	return bins
}
