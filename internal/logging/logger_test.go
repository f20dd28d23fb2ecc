package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/pavanmanishd/adt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel slog.Level
		expectJSON  bool
	}{
		{"debug_text", "debug", "text", slog.LevelDebug, false},
		{"info_json", "info", "json", slog.LevelInfo, true},
		{"warn_text", "warn", "text", slog.LevelWarn, false},
		{"warning_text", "warning", "text", slog.LevelWarn, false},
		{"error_json", "error", "JSON", slog.LevelError, true},
		{"invalid_level_defaults_to_info", "invalid", "text", slog.LevelInfo, false},
		{"empty_level_defaults_to_info", "", "", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.level, tt.format, &buf)
			require.NotNil(t, logger)
			assert.Equal(t, tt.expectLevel, logger.level)

			logger.Error("ready")
			out := buf.String()
			require.NotEmpty(t, out)
			if tt.expectJSON {
				var entry map[string]any
				assert.NoError(t, json.Unmarshal([]byte(out), &entry))
			} else {
				assert.Contains(t, out, "msg=ready")
			}
		})
	}
}

func TestNewNilOutput(t *testing.T) {
	logger := New("info", "text", nil)
	assert.NotNil(t, logger)
}

func TestIsDebugEnabled(t *testing.T) {
	assert.True(t, New("debug", "text", &bytes.Buffer{}).IsDebugEnabled())
	assert.False(t, New("info", "text", &bytes.Buffer{}).IsDebugEnabled())
}

func TestBuffer(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", "json", &buf)

	a := adt.NewArray[int](4)
	_ = a.Push(1)
	logger.Buffer("collected", a.Metrics(), "source", "stdin")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "collected", entry["msg"])
	assert.Equal(t, "buffer", entry["category"])
	assert.Equal(t, float64(1), entry["len"])
	assert.Equal(t, float64(4), entry["cap"])
	assert.Equal(t, float64(3), entry["free"])
	assert.Equal(t, 0.25, entry["utilization"])
	assert.Equal(t, "stdin", entry["source"])
}

func TestBufferSuppressedAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "text", &buf)
	logger.Buffer("collected", adt.BufferMetrics{})
	assert.Empty(t, buf.String())
}

func TestFailureAndWithCommand(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "text", &buf).WithCommand("render")
	logger.Failure("reading input failed", "error", "boom")

	out := buf.String()
	assert.True(t, strings.Contains(out, "level=ERROR"), out)
	assert.Contains(t, out, "command=render")
	assert.Contains(t, out, "type=failure")
	assert.Contains(t, out, "error=boom")
}
