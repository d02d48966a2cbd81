package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	dir := t.TempDir()
	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	return mgr, dir
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, DefaultHomePage, mgr.viper.GetString("home_page"))
	assert.Equal(t, DefaultKeyboardHeight, mgr.viper.GetInt("keyboard.height"))
	assert.Equal(t, "#d1d4da", mgr.viper.GetString("appearance.obscured_tint"))
	assert.Equal(t, 500.0, mgr.viper.GetFloat64("engine.swipe_velocity_threshold"))
}

func TestLoad_CreatesDefaultFileAndSchema(t *testing.T) {
	mgr, dir := newTestManager(t)

	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))

	cfg := mgr.Get()
	assert.Equal(t, DefaultHomePage, cfg.HomePage)
	assert.Equal(t, KeyboardSourceAuto, cfg.Keyboard.Source)
	assert.Equal(t, 300, cfg.Keyboard.Height)
	assert.Equal(t, 12, cfg.Appearance.CornerRadius)
}

func TestLoad_ReadsUserValues(t *testing.T) {
	mgr, dir := newTestManager(t)
	content := `home_page = "https://example.org/"

[keyboard]
  source = "FOCUS"
  height = 260

[appearance]
  obscured_tint = "#AABBCC"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "https://example.org/", cfg.HomePage)
	assert.Equal(t, KeyboardSourceFocus, cfg.Keyboard.Source)
	assert.Equal(t, 260, cfg.Keyboard.Height)
	assert.Equal(t, "#aabbcc", cfg.Appearance.ObscuredTint)
	// Untouched keys keep their defaults.
	assert.Equal(t, "#ffffff", cfg.Appearance.BaselineTint)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	mgr, _ := newTestManager(t)
	t.Setenv("DUMBER_MOBILE_HOME_PAGE", "https://env.example/")
	t.Setenv("DUMBER_MOBILE_LOG_LEVEL", "debug")

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "https://env.example/", cfg.HomePage)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidTOML(t *testing.T) {
	mgr, dir := newTestManager(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("home_page = ["), 0o644))

	err := mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_ValidationFailure(t *testing.T) {
	mgr, dir := newTestManager(t)
	content := "[keyboard]\n  height = -1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	err := mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keyboard.height")
}

func TestGet_BeforeLoadReturnsDefaults(t *testing.T) {
	mgr, _ := newTestManager(t)
	assert.Equal(t, DefaultHomePage, mgr.Get().HomePage)
}

func TestGet_ReturnsCopy(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.HomePage = "mutated"

	assert.Equal(t, DefaultHomePage, mgr.Get().HomePage)
}

func TestInitDefault(t *testing.T) {
	mgr, dir := newTestManager(t)

	path, err := mgr.InitDefault(false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), path)

	_, err = mgr.InitDefault(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = mgr.InitDefault(true)
	assert.NoError(t, err)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HomePage = "  "
	cfg.Keyboard.Source = "bogus"
	cfg.Engine.HardwareAcceleration = "NEVER"
	cfg.Logging.Level = " DEBUG "

	normalizeConfig(cfg)

	assert.Equal(t, DefaultHomePage, cfg.HomePage)
	assert.Equal(t, KeyboardSourceAuto, cfg.Keyboard.Source)
	assert.Equal(t, HardwareAccelerationNever, cfg.Engine.HardwareAcceleration)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestReload_NotifiesCallbacks(t *testing.T) {
	mgr, dir := newTestManager(t)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(cfg *Config) { got = cfg })

	content := "home_page = \"https://reloaded.example/\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	require.NoError(t, mgr.Reload())
	require.NotNil(t, got)
	assert.Equal(t, "https://reloaded.example/", got.HomePage)
}

func TestReload_InvalidKeepsPreviousConfig(t *testing.T) {
	mgr, dir := newTestManager(t)
	require.NoError(t, mgr.Load())

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[appearance]\n  obscured_tint = \"red\"\n"), 0o644))

	require.Error(t, mgr.Reload())
	assert.False(t, called)
	assert.Equal(t, DefaultObscuredTint, mgr.Get().Appearance.ObscuredTint)
}
