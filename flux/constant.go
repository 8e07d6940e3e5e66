// Package flux provides concrete flux models for the generation engine.
package flux

// Constant is a flat spectral density over a fixed time window,
// independent of energy and time. Useful for calibration runs and for
// checking generated totals against analytically known rates.
type Constant struct {
	Density float64 // spectral density, neutrinos per MeV per ms
	Start   float64 // window start in ms
	End     float64 // window end in ms
	Steps   int     // raw sample times across the window; minimum 2
}

func (c Constant) RawTimes() []float64 {
	n := c.Steps
	if n < 2 {
		n = 2
	}
	times := make([]float64, n)
	step := (c.End - c.Start) / float64(n-1)
	for i := range times {
		times[i] = c.Start + float64(i)*step
	}
	return times
}

func (c Constant) StartTime() float64 { return c.Start }
func (c Constant) EndTime() float64   { return c.End }

func (c Constant) SpectralDensity(eNu, t float64) float64 {
	return c.Density
}

func (Constant) PrepareEvtGen(times []float64) {}
