package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json")

	log.Debug("hidden")
	log.Info("review listed", slog.Int("count", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "review listed", entry["msg"])
	assert.Equal(t, float64(3), entry["count"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", "text")

	log.Debug("guard checked", slog.String("entity", "review"))
	assert.Contains(t, buf.String(), "msg=\"guard checked\"")
	assert.Contains(t, buf.String(), "entity=review")
}
