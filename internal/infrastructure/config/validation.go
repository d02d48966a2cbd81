package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/dumber-mobile/internal/domain/url"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateHomePage(config)...)
	validationErrors = append(validationErrors, validateEngine(config)...)
	validationErrors = append(validationErrors, validateKeyboard(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateHomePage(config *Config) []string {
	if _, err := url.Parse(config.HomePage); err != nil {
		return []string{fmt.Sprintf("home_page %q is not a valid address", config.HomePage)}
	}
	return nil
}

func validateEngine(config *Config) []string {
	var validationErrors []string
	if config.Engine.DefaultFontSize < 1 || config.Engine.DefaultFontSize > 72 {
		validationErrors = append(validationErrors, "engine.default_font_size must be between 1 and 72")
	}
	if config.Engine.MinimumFontSize < 0 || config.Engine.MinimumFontSize > 72 {
		validationErrors = append(validationErrors, "engine.minimum_font_size must be between 0 and 72")
	}
	if config.Engine.SwipeVelocityThreshold < 0 {
		validationErrors = append(validationErrors, "engine.swipe_velocity_threshold must be non-negative")
	}
	return validationErrors
}

func validateKeyboard(config *Config) []string {
	if config.Keyboard.Height < 0 {
		return []string{"keyboard.height must be non-negative"}
	}
	return nil
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	if !hexColorPattern.MatchString(config.Appearance.ObscuredTint) {
		validationErrors = append(validationErrors, "appearance.obscured_tint must be a #rrggbb color")
	}
	if !hexColorPattern.MatchString(config.Appearance.BaselineTint) {
		validationErrors = append(validationErrors, "appearance.baseline_tint must be a #rrggbb color")
	}
	if config.Appearance.CornerRadius < 0 {
		validationErrors = append(validationErrors, "appearance.corner_radius must be non-negative")
	}
	if config.Appearance.PulseOpacity < 0 || config.Appearance.PulseOpacity > 1 {
		validationErrors = append(validationErrors, "appearance.pulse_opacity must be between 0 and 1")
	}
	if config.Appearance.PulseDimMs < 0 || config.Appearance.PulseRestoreMs < 0 {
		validationErrors = append(validationErrors, "appearance pulse durations must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q must be one of trace, debug, info, warn, error", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format %q must be console or json", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_backups and logging.max_age_days must be non-negative")
	}
	return validationErrors
}
