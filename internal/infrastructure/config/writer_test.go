package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	assert.Equal(t, []string{"[appearance]", "[engine]", "[keyboard]", "[logging]"}, sections)
	assert.True(t, strings.HasPrefix(string(content), "home_page = "))
}

func TestWriteConfigOrdered_RoundTrips(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	want := DefaultConfig()
	want.HomePage = "https://example.org/"
	want.Keyboard.Source = KeyboardSourceDBus

	require.NoError(t, WriteConfigOrdered(want, configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var got Config
	require.NoError(t, toml.Unmarshal(content, &got))
	assert.Equal(t, *want, got)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "x.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	in := "a = 1\n\n[zeta]\n  k = 1\n\n[alpha]\n  k = 2\n"
	want := "a = 1\n\n[alpha]\n  k = 2\n\n[zeta]\n  k = 1\n"
	assert.Equal(t, want, sortTOMLSections(in))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	schema := string(data)
	assert.Contains(t, schema, `"home_page"`)
	assert.Contains(t, schema, `"obscured_tint"`)
	assert.Contains(t, schema, `"swipe_velocity_threshold"`)
	assert.Contains(t, schema, schemaID)
}
