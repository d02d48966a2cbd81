package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" info ", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.WarnLevel},
		{"loud", zerolog.WarnLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in, zerolog.WarnLevel), tt.in)
	}
}

func TestNew_JSONWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})

	logger.Debug().Msg("hidden")
	logger.Info().Str("url", "https:example.com").Msg("loaded")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"url":"https:example.com"`)
	assert.Contains(t, out, `"message":"loaded"`)
}

func TestConfigFromValues_EnvOverrides(t *testing.T) {
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")

	cfg := configFromValues("error", "console")
	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestConfigFromValues_IgnoresUnknownFormat(t *testing.T) {
	t.Setenv(envLogLevel, "")
	t.Setenv(envLogFormat, "")

	cfg := configFromValues("warn", "xml")
	assert.Equal(t, zerolog.WarnLevel, cfg.Level)
	assert.Equal(t, "console", cfg.Format)
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "address-bar")
	ctx = WithURL(ctx, "https://example.com/"+strings.Repeat("a", 200))

	FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"address-bar"`)
	assert.Contains(t, out, `..."`)
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestTruncateURL(t *testing.T) {
	assert.Equal(t, "https:example.com", TruncateURL("https:example.com", 60))
	assert.Equal(t, "https://ex...", TruncateURL("https://example.com", 13))
	assert.Equal(t, "abcdef", TruncateURL("abcdef", 2))
}

func TestShortSessionID(t *testing.T) {
	id := GenerateSessionID()
	assert.Len(t, ShortSessionID(id), 4)
	assert.True(t, strings.HasSuffix(id, ShortSessionID(id)))
	assert.Equal(t, "ab", ShortSessionID("ab"))
}

func TestNewWithFile_TeesIntoFile(t *testing.T) {
	t.Setenv(envLogLevel, "")
	t.Setenv(envLogFormat, "")
	dir := t.TempDir()

	logger, closer, err := NewWithFile("info", "json", FileConfig{Dir: dir, MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Info().Msg("to-file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "to-file")
}
