package main

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readString(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(b)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseLevel("loud")
	require.ErrorIs(t, err, errInvalidConfig)
}

func TestNewLogger_Formats(t *testing.T) {
	var buf bytes.Buffer

	log, err := newLogger(LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	log.Info("hello", slog.Int("n", 3))
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	log, err = newLogger(LogConfig{Level: "info", Format: "text"}, &buf)
	require.NoError(t, err)
	log.Info("hello", slog.Int("n", 3))
	assert.Contains(t, buf.String(), "msg=hello n=3")

	// A buffer is not a terminal, so auto picks JSON.
	buf.Reset()
	log, err = newLogger(LogConfig{Level: "info", Format: "auto"}, &buf)
	require.NoError(t, err)
	log.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	log, err = newLogger(LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)
	log.Info("quiet")
	assert.Empty(t, buf.String())
}
