package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svalder/sntools/gen"
)

func TestWriteJSON_OneObjectPerLine(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteJSON(&sb, sampleEvents()))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 1)

	var ev gen.Event
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ev))
	assert.Equal(t, 1001, ev.Code)
	assert.Equal(t, 12.25, ev.Time)
	require.Len(t, ev.Outgoing, 1)
	assert.Equal(t, -11, ev.Outgoing[0].PID)
	assert.Equal(t, 0.8, ev.Outgoing[0].Direction.Z)
}
