package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromSeed_NumericStringsUsedVerbatim(t *testing.T) {
	assert.Equal(t, RunKey(42), KeyFromSeed("42"))
	assert.Equal(t, RunKey(0), KeyFromSeed("0"))
}

func TestKeyFromSeed_TextSeedsAreStable(t *testing.T) {
	k1 := KeyFromSeed("supernova-1987A")
	k2 := KeyFromSeed("supernova-1987A")
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, KeyFromSeed("supernova-1987B"))
}

func TestRunKey_NewRandReproducesStream(t *testing.T) {
	r1 := KeyFromSeed("7").NewRand()
	r2 := KeyFromSeed("7").NewRand()
	for i := 0; i < 100; i++ {
		assert.Equal(t, r1.Float64(), r2.Float64())
	}
}
