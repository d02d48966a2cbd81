// Package config loads, validates, watches and writes the dumber-mobile configuration.
package config

// Config represents the complete configuration for dumber-mobile.
type Config struct {
	// HomePage is loaded when the screen first appears.
	HomePage   string           `mapstructure:"home_page" toml:"home_page" jsonschema:"description=Address loaded when the browser starts"`
	Engine     EngineConfig     `mapstructure:"engine" toml:"engine"`
	Keyboard   KeyboardConfig   `mapstructure:"keyboard" toml:"keyboard"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging"`
}

// HardwareAcceleration selects the WebKit hardware acceleration policy.
type HardwareAcceleration string

const (
	HardwareAccelerationAlways HardwareAcceleration = "always"
	HardwareAccelerationNever  HardwareAcceleration = "never"
)

// EngineConfig is applied to the web view settings at creation.
type EngineConfig struct {
	// UserAgent overrides the engine's default when not empty.
	UserAgent             string               `mapstructure:"user_agent" toml:"user_agent"`
	EnableJavaScript      bool                 `mapstructure:"enable_javascript" toml:"enable_javascript"`
	EnableWebGL           bool                 `mapstructure:"enable_webgl" toml:"enable_webgl"`
	EnableDeveloperExtras bool                 `mapstructure:"enable_developer_extras" toml:"enable_developer_extras"`
	DefaultFontSize       int                  `mapstructure:"default_font_size" toml:"default_font_size" jsonschema:"minimum=1,maximum=72"`
	MinimumFontSize       int                  `mapstructure:"minimum_font_size" toml:"minimum_font_size" jsonschema:"minimum=0,maximum=72"`
	HardwareAcceleration  HardwareAcceleration `mapstructure:"hardware_acceleration" toml:"hardware_acceleration" jsonschema:"enum=always,enum=never"`
	// SwipeVelocityThreshold is the horizontal swipe speed, in px/s, that triggers back/forward.
	SwipeVelocityThreshold float64 `mapstructure:"swipe_velocity_threshold" toml:"swipe_velocity_threshold" jsonschema:"minimum=0"`
}

// KeyboardSource selects where on-screen keyboard notifications come from.
type KeyboardSource string

const (
	// KeyboardSourceAuto tries D-Bus and falls back to focus tracking.
	KeyboardSourceAuto  KeyboardSource = "auto"
	KeyboardSourceDBus  KeyboardSource = "dbus"
	KeyboardSourceFocus KeyboardSource = "focus"
	KeyboardSourceNone  KeyboardSource = "none"
)

// KeyboardConfig controls keyboard avoidance.
type KeyboardConfig struct {
	Source KeyboardSource `mapstructure:"source" toml:"source" jsonschema:"enum=auto,enum=dbus,enum=focus,enum=none"`
	// Height is the keyboard height in pixels when the source reports visibility only.
	Height int `mapstructure:"height" toml:"height" jsonschema:"minimum=0"`
}

// AppearanceConfig styles the screen.
type AppearanceConfig struct {
	// ObscuredTint is the background while the keyboard is shown.
	ObscuredTint string `mapstructure:"obscured_tint" toml:"obscured_tint" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	BaselineTint string `mapstructure:"baseline_tint" toml:"baseline_tint" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Placeholder  string `mapstructure:"placeholder" toml:"placeholder"`
	CornerRadius int    `mapstructure:"corner_radius" toml:"corner_radius" jsonschema:"minimum=0"`
	// PulseOpacity is the dimmed opacity of a pressed control.
	PulseOpacity   float64 `mapstructure:"pulse_opacity" toml:"pulse_opacity" jsonschema:"minimum=0,maximum=1"`
	PulseDimMs     int     `mapstructure:"pulse_dim_ms" toml:"pulse_dim_ms" jsonschema:"minimum=0"`
	PulseRestoreMs int     `mapstructure:"pulse_restore_ms" toml:"pulse_restore_ms" jsonschema:"minimum=0"`
}

// LoggingConfig holds the [logging] section.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" toml:"compress"`
}
