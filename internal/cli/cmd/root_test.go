package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-mobile/internal/domain/url"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"browse", "resolve", "config", "about"} {
		assert.True(t, names[want], "missing %s", want)
	}
}

func TestConfigCommand_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range configCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"path", "show", "init", "schema"} {
		assert.True(t, names[want], "missing %s", want)
	}
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resolveQuiet = false
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveCommand_QuietPrintsAddress(t *testing.T) {
	out, err := executeRoot(t, "resolve", "-q", "Example.com")
	require.NoError(t, err)
	assert.Equal(t, "https:example.com\n", out)
}

func TestResolveCommand_RejectsUnparseableText(t *testing.T) {
	_, err := executeRoot(t, "resolve", "-q", "not", "a", "url")
	require.Error(t, err)
	assert.ErrorIs(t, err, url.ErrInvalidAddress)
}

func TestAboutCommand_PrintsRepository(t *testing.T) {
	out, err := executeRoot(t, "about")
	require.NoError(t, err)
	assert.Contains(t, out, "github.com/bnema/dumber-mobile")
}
