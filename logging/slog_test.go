package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelError, ParseLevel("verbose"))
}

func TestNewWritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{LogLevel: slog.LevelInfo, Output: &buf})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("record added", slog.String("name", "Alice"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"record added"`)
	assert.Contains(t, buf.String(), `"name":"Alice"`)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SENTRY_DSN", "")
	c := ConfigFromEnv()
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
	assert.Empty(t, c.SentryConfig.Dsn)
}
