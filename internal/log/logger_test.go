package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Format: "json", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	l := WithComponent("session")
	l.Debug().Str("id", "abc123").Msg("registering")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "session", entry["component"])
	assert.Equal(t, "abc123", entry["id"])
	assert.Equal(t, "registering", entry["message"])
}

func TestConfigureLevelFiltersDebug(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	Configure(Config{Level: "warn", Format: "json", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	l := Base()
	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestConfigureFallsBackToEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	var buf bytes.Buffer
	Configure(Config{Level: "bogus", Format: "json", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	l := Base()
	l.Warn().Msg("dropped")
	assert.Zero(t, buf.Len())
}
