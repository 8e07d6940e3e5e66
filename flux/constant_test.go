package flux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstant_RawTimesSpanWindow(t *testing.T) {
	c := Constant{Density: 1, Start: 0, End: 10, Steps: 5}
	times := c.RawTimes()
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, times)
}

func TestConstant_MinimumTwoRawTimes(t *testing.T) {
	c := Constant{Density: 1, Start: 0, End: 10}
	assert.Equal(t, []float64{0, 10}, c.RawTimes())
}

func TestConstant_DensityIsFlat(t *testing.T) {
	c := Constant{Density: 3.5, Start: 0, End: 10}
	assert.Equal(t, 3.5, c.SpectralDensity(1, 0))
	assert.Equal(t, 3.5, c.SpectralDensity(80, 9.9))
}
