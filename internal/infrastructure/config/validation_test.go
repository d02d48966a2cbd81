package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "home page with space", mutate: func(c *Config) { c.HomePage = "https://a b" }, wantErr: "home_page"},
		{name: "font size too large", mutate: func(c *Config) { c.Engine.DefaultFontSize = 100 }, wantErr: "engine.default_font_size"},
		{name: "negative swipe threshold", mutate: func(c *Config) { c.Engine.SwipeVelocityThreshold = -1 }, wantErr: "swipe_velocity_threshold"},
		{name: "negative keyboard height", mutate: func(c *Config) { c.Keyboard.Height = -5 }, wantErr: "keyboard.height"},
		{name: "short hex tint", mutate: func(c *Config) { c.Appearance.ObscuredTint = "#fff" }, wantErr: "obscured_tint"},
		{name: "named tint", mutate: func(c *Config) { c.Appearance.BaselineTint = "white" }, wantErr: "baseline_tint"},
		{name: "pulse opacity above one", mutate: func(c *Config) { c.Appearance.PulseOpacity = 1.5 }, wantErr: "pulse_opacity"},
		{name: "unknown log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "unknown log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "zero max size", mutate: func(c *Config) { c.Logging.MaxSizeMB = 0 }, wantErr: "max_size_mb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keyboard.Height = -1
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "keyboard.height")
		assert.Contains(t, err.Error(), "logging.format")
	}
}
