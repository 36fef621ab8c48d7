package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", DEFAULT},
		{"info", DEFAULT},
		{"INFO", DEFAULT},
		{"verbose", VERBOSE},
		{"debug", DEBUG},
		{"Trace", TRACE},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNewLoggerTo_Verbosity(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, DEBUG)

	logger.Info("epoch done", "epoch", 3)
	logger.V(DEBUG).Info("ant stalled", "ant", 7)
	logger.V(TRACE).Info("routing decision")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "trace record must be filtered at DEBUG")

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "epoch done", first["msg"])
	assert.Equal(t, float64(3), first["epoch"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "ant stalled", second["msg"])
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(VERBOSE, false)
	require.NoError(t, err)
	assert.True(t, logger.V(VERBOSE).Enabled())
	assert.False(t, logger.V(DEBUG).Enabled())

	assert.True(t, NewTestLogger().V(TRACE).Enabled())
}
