package gen

// Flux models the time-dependent energy spectrum of the incoming
// neutrinos. SpectralDensity must be referentially transparent: the
// engine memoizes it by exact (eNu, t) key during integration.
type Flux interface {
	// RawTimes returns the flux's native sample times, in ms, strictly
	// increasing. The rate curve is interpolated through these points.
	RawTimes() []float64

	// StartTime and EndTime delimit the simulation window in ms.
	StartTime() float64
	EndTime() float64

	// SpectralDensity is the neutrino spectral density at energy eNu
	// (MeV) and time t (ms), in neutrinos per MeV per ms.
	SpectralDensity(eNu, t float64) float64

	// PrepareEvtGen is called exactly once per run, with the full list of
	// bin midpoint times, after binning and before any event is sampled.
	// Implementations may precompute per-time data they need for the
	// per-event SpectralDensity queries that follow.
	PrepareEvtGen(times []float64)
}
