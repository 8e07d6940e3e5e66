package flux

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// Gamma is the pinched thermal flux parameterization (Keil, Raffelt,
// Janka): at each time the energy spectrum is a gamma distribution with
// shape alpha+1 and mean energy ⟨E⟩, scaled by the number luminosity
// L/⟨E⟩. Parameters are tabulated at discrete times and interpolated
// linearly in between.
type Gamma struct {
	times []float64
	lum   []float64 // energy luminosity, MeV per ms
	meanE []float64 // mean neutrino energy, MeV
	alpha []float64 // pinching parameter

	// per-midpoint parameters precomputed by PrepareEvtGen, so the many
	// per-event spectral queries at bin midpoints skip the interpolation
	// search.
	prepared map[float64][3]float64
}

// NewGamma builds a Gamma flux from parallel parameter slices. Times must
// be strictly increasing and at least two rows long.
func NewGamma(times, lum, meanE, alpha []float64) (*Gamma, error) {
	if len(times) < 2 {
		return nil, fmt.Errorf("gamma flux needs at least 2 time rows, got %d", len(times))
	}
	if len(lum) != len(times) || len(meanE) != len(times) || len(alpha) != len(times) {
		return nil, fmt.Errorf("gamma flux parameter slices have mismatched lengths")
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, fmt.Errorf("gamma flux times must be strictly increasing, got %g after %g", times[i], times[i-1])
		}
	}
	return &Gamma{times: times, lum: lum, meanE: meanE, alpha: alpha}, nil
}

// LoadGamma reads a whitespace-separated table of
//
//	time  luminosity  meanE  alpha
//
// rows from path. Blank lines and lines starting with '#' are skipped.
func LoadGamma(path string) (*Gamma, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening flux file: %w", err)
	}
	defer f.Close()

	var times, lum, meanE, alpha []float64
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 4 {
			return nil, fmt.Errorf("%s:%d: want 4 columns (time, luminosity, meanE, alpha), got %d", path, line, len(fields))
		}
		var vals [4]float64
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: column %d: %w", path, line, i+1, err)
			}
			vals[i] = v
		}
		times = append(times, vals[0])
		lum = append(lum, vals[1])
		meanE = append(meanE, vals[2])
		alpha = append(alpha, vals[3])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading flux file: %w", err)
	}
	g, err := NewGamma(times, lum, meanE, alpha)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func (g *Gamma) RawTimes() []float64 { return g.times }
func (g *Gamma) StartTime() float64  { return g.times[0] }
func (g *Gamma) EndTime() float64    { return g.times[len(g.times)-1] }

// paramsAt linearly interpolates (L, ⟨E⟩, alpha) at time t, clamping to
// the first/last row outside the tabulated range.
func (g *Gamma) paramsAt(t float64) (lum, meanE, alpha float64) {
	n := len(g.times)
	if t <= g.times[0] {
		return g.lum[0], g.meanE[0], g.alpha[0]
	}
	if t >= g.times[n-1] {
		return g.lum[n-1], g.meanE[n-1], g.alpha[n-1]
	}
	i := sort.SearchFloat64s(g.times, t)
	// g.times[i-1] < t <= g.times[i]
	w := (t - g.times[i-1]) / (g.times[i] - g.times[i-1])
	lum = g.lum[i-1] + w*(g.lum[i]-g.lum[i-1])
	meanE = g.meanE[i-1] + w*(g.meanE[i]-g.meanE[i-1])
	alpha = g.alpha[i-1] + w*(g.alpha[i]-g.alpha[i-1])
	return lum, meanE, alpha
}

// SpectralDensity returns the neutrino spectral density at (eNu, t) in
// neutrinos per MeV per ms.
func (g *Gamma) SpectralDensity(eNu, t float64) float64 {
	var lum, meanE, alpha float64
	if p, ok := g.prepared[t]; ok {
		lum, meanE, alpha = p[0], p[1], p[2]
	} else {
		lum, meanE, alpha = g.paramsAt(t)
	}
	if eNu <= 0 || lum <= 0 || meanE <= 0 {
		return 0
	}
	spectrum := distuv.Gamma{Alpha: alpha + 1, Beta: (alpha + 1) / meanE}
	return lum / meanE * spectrum.Prob(eNu)
}

// PrepareEvtGen precomputes the interpolated parameters at every bin
// midpoint ahead of per-event sampling.
func (g *Gamma) PrepareEvtGen(times []float64) {
	g.prepared = make(map[float64][3]float64, len(times))
	for _, t := range times {
		lum, meanE, alpha := g.paramsAt(t)
		g.prepared[t] = [3]float64{lum, meanE, alpha}
	}
}
