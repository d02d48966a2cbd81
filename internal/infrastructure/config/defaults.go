package config

// Default values shared with the rest of the application.
const (
	DefaultHomePage       = "https://github.com/NGrani"
	DefaultKeyboardHeight = 300
	DefaultObscuredTint   = "#d1d4da"
	DefaultBaselineTint   = "#ffffff"
	DefaultPlaceholder    = "Enter website address"
)

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		HomePage: DefaultHomePage,
		Engine: EngineConfig{
			EnableJavaScript:       true,
			EnableWebGL:            true,
			DefaultFontSize:        16,
			MinimumFontSize:        0,
			HardwareAcceleration:   HardwareAccelerationAlways,
			SwipeVelocityThreshold: 500,
		},
		Keyboard: KeyboardConfig{
			Source: KeyboardSourceAuto,
			Height: DefaultKeyboardHeight,
		},
		Appearance: AppearanceConfig{
			ObscuredTint:   DefaultObscuredTint,
			BaselineTint:   DefaultBaselineTint,
			Placeholder:    DefaultPlaceholder,
			CornerRadius:   12,
			PulseOpacity:   0.5,
			PulseDimMs:     100,
			PulseRestoreMs: 500,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			LogDir:     getDefaultLogDir(),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

func getDefaultLogDir() string {
	dir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return dir
}
