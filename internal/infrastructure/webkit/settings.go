package webkit

import (
	"context"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	"github.com/bnema/dumber-mobile/internal/logging"
)

// ApplySettings copies the [engine] config section onto WebKit settings.
func ApplySettings(ctx context.Context, settings *webkit.Settings, cfg config.EngineConfig) {
	log := logging.FromContext(ctx)

	settings.SetEnableJavascript(cfg.EnableJavaScript)
	settings.SetEnableWebgl(cfg.EnableWebGL)
	settings.SetEnableDeveloperExtras(cfg.EnableDeveloperExtras)
	settings.SetEnableSmoothScrolling(true)

	if cfg.DefaultFontSize > 0 {
		settings.SetDefaultFontSize(uint32(cfg.DefaultFontSize))
	}
	if cfg.MinimumFontSize > 0 {
		settings.SetMinimumFontSize(uint32(cfg.MinimumFontSize))
	}
	if cfg.UserAgent != "" {
		settings.SetUserAgent(cfg.UserAgent)
	}

	switch cfg.HardwareAcceleration {
	case config.HardwareAccelerationNever:
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyNever)
	default:
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	}

	log.Debug().
		Bool("javascript", cfg.EnableJavaScript).
		Bool("webgl", cfg.EnableWebGL).
		Bool("developer_extras", cfg.EnableDeveloperExtras).
		Str("hardware_acceleration", string(cfg.HardwareAcceleration)).
		Msg("engine settings applied")
}
