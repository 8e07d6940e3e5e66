package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/svalder/sntools/gen"
)

func sampleEvents() []gen.Event {
	return []gen.Event{
		{
			Code: 1001,
			Time: 12.25,
			Incoming: []gen.Particle{
				{PID: -12, Energy: 20, Direction: r3.Vec{Z: 1}},
				{PID: 2212, Energy: 938.2721, Direction: r3.Vec{Z: 1}},
			},
			Outgoing: []gen.Particle{
				{PID: -11, Energy: 18.5, Direction: r3.Vec{X: 0.6, Z: 0.8}},
			},
		},
	}
}

func TestWriteNuance(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteNuance(&sb, sampleEvents()))

	want := `$ begin
$ nuance 1001
$ vertex 0.00000 0.00000 0.00000 12.25000000
$ track -12 20.00000 0.00000 0.00000 1.00000 -1
$ track 2212 938.27210 0.00000 0.00000 1.00000 -1
$ info 0 0 0
$ track -11 18.50000 0.60000 0.00000 0.80000 0
$ end
$ stop
`
	assert.Equal(t, want, sb.String())
}

func TestWriteNuance_EmptyListStillTerminates(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteNuance(&sb, nil))
	assert.Equal(t, "$ stop\n", sb.String())
}
