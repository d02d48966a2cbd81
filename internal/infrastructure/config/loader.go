package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const envPrefix = "DUMBER_MOBILE"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager that reads config.toml from configDir.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// DUMBER_MOBILE_HOME_PAGE, DUMBER_MOBILE_KEYBOARD_HEIGHT, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with the logging package.
	if err := v.BindEnv("logging.level", envPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", envPrefix, err)
	}
	if err := v.BindEnv("logging.format", envPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", envPrefix, err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created from the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.reload(false)
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// reload re-reads and validates the configuration. Must be called with m.mu held for write.
func (m *Manager) reload(reread bool) error {
	if reread {
		if err := m.viper.ReadInConfig(); err != nil {
			return err
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func normalizeConfig(config *Config) {
	config.HomePage = strings.TrimSpace(config.HomePage)
	if config.HomePage == "" {
		config.HomePage = DefaultHomePage
	}

	switch KeyboardSource(strings.ToLower(string(config.Keyboard.Source))) {
	case KeyboardSourceDBus:
		config.Keyboard.Source = KeyboardSourceDBus
	case KeyboardSourceFocus:
		config.Keyboard.Source = KeyboardSourceFocus
	case KeyboardSourceNone:
		config.Keyboard.Source = KeyboardSourceNone
	default:
		config.Keyboard.Source = KeyboardSourceAuto
	}

	switch HardwareAcceleration(strings.ToLower(string(config.Engine.HardwareAcceleration))) {
	case HardwareAccelerationNever:
		config.Engine.HardwareAcceleration = HardwareAccelerationNever
	default:
		config.Engine.HardwareAcceleration = HardwareAccelerationAlways
	}

	config.Appearance.ObscuredTint = strings.ToLower(strings.TrimSpace(config.Appearance.ObscuredTint))
	config.Appearance.BaselineTint = strings.ToLower(strings.TrimSpace(config.Appearance.BaselineTint))
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path to the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configFileName)
}

// SchemaFile returns the path of the JSON schema next to the config file.
func (m *Manager) SchemaFile() string {
	return filepath.Join(m.configDir, schemaFileName)
}

// createDefaultConfig writes the defaults and their JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, configFileName)

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if err := GenerateSchemaFile(m.SchemaFile()); err != nil {
		return err
	}
	return nil
}

// InitDefault writes a default config file. An existing file is kept unless force is set.
func (m *Manager) InitDefault(force bool) (string, error) {
	configFile := filepath.Join(m.configDir, configFileName)

	if _, err := os.Stat(configFile); err == nil && !force {
		return configFile, fmt.Errorf("config file already exists at %s (use --force to overwrite)", configFile)
	}
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return configFile, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := m.createDefaultConfig(); err != nil {
		return configFile, err
	}
	return configFile, nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("home_page", defaults.HomePage)

	m.viper.SetDefault("engine.user_agent", defaults.Engine.UserAgent)
	m.viper.SetDefault("engine.enable_javascript", defaults.Engine.EnableJavaScript)
	m.viper.SetDefault("engine.enable_webgl", defaults.Engine.EnableWebGL)
	m.viper.SetDefault("engine.enable_developer_extras", defaults.Engine.EnableDeveloperExtras)
	m.viper.SetDefault("engine.default_font_size", defaults.Engine.DefaultFontSize)
	m.viper.SetDefault("engine.minimum_font_size", defaults.Engine.MinimumFontSize)
	m.viper.SetDefault("engine.hardware_acceleration", string(defaults.Engine.HardwareAcceleration))
	m.viper.SetDefault("engine.swipe_velocity_threshold", defaults.Engine.SwipeVelocityThreshold)

	m.viper.SetDefault("keyboard.source", string(defaults.Keyboard.Source))
	m.viper.SetDefault("keyboard.height", defaults.Keyboard.Height)

	m.viper.SetDefault("appearance.obscured_tint", defaults.Appearance.ObscuredTint)
	m.viper.SetDefault("appearance.baseline_tint", defaults.Appearance.BaselineTint)
	m.viper.SetDefault("appearance.placeholder", defaults.Appearance.Placeholder)
	m.viper.SetDefault("appearance.corner_radius", defaults.Appearance.CornerRadius)
	m.viper.SetDefault("appearance.pulse_opacity", defaults.Appearance.PulseOpacity)
	m.viper.SetDefault("appearance.pulse_dim_ms", defaults.Appearance.PulseDimMs)
	m.viper.SetDefault("appearance.pulse_restore_ms", defaults.Appearance.PulseRestoreMs)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}
