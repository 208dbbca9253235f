package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestNewHandler_JSONWithRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := NewHandler(&buf, &Config{Encoding: "json", Level: "debug"})
	require.NoError(t, err)

	log := slog.New(h).With("app", "astro_calendar")
	ctx := WithRequestID(context.Background(), "req-1")
	log.InfoContext(ctx, "hello", "user_id", "u1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "astro_calendar", rec["app"])
	assert.Equal(t, "u1", rec["user_id"])
	assert.Equal(t, "req-1", rec["request_id"])
}

func TestNewHandler_ConsoleLevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := NewHandler(&buf, &Config{Encoding: "console", Level: "warn"})
	require.NoError(t, err)

	log := slog.New(h)
	log.Info("skipped")
	log.Warn("kept")

	out := buf.String()
	assert.False(t, strings.Contains(out, "skipped"))
	assert.Contains(t, out, "msg=kept")
	assert.NotContains(t, out, "request_id")
}

func TestNewHandler_Invalid(t *testing.T) {
	t.Parallel()

	_, err := NewHandler(&bytes.Buffer{}, &Config{Encoding: "xml"})
	assert.Error(t, err)

	_, err = NewHandler(&bytes.Buffer{}, &Config{Level: "loud"})
	assert.Error(t, err)

	assert.Panics(t, func() { New("app", &Config{Encoding: "xml"}) })
}

func TestNewHandler_NilConfig(t *testing.T) {
	t.Parallel()

	h, err := NewHandler(&bytes.Buffer{}, nil)
	require.NoError(t, err)
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}
