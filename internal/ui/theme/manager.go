package theme

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	"github.com/bnema/dumber-mobile/internal/logging"
)

// Manager handles theme state and CSS application.
type Manager struct {
	palette     Palette
	style       Style
	cssProvider *gtk.CSSProvider
}

// NewManager creates a theme manager from configuration.
func NewManager(ctx context.Context, cfg *config.Config) *Manager {
	log := logging.FromContext(ctx)

	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Manager{
		palette: PaletteFromConfig(cfg.Appearance),
		style:   StyleFromConfig(cfg.Appearance),
	}

	log.Debug().
		Str("baseline", m.palette.Baseline).
		Str("obscured", m.palette.Obscured).
		Int("corner_radius", m.style.CornerRadius).
		Msg("theme manager initialized")

	return m
}

func (m *Manager) Palette() Palette {
	return m.palette
}

func (m *Manager) Style() Style {
	return m.style
}

// CSS returns the stylesheet for the current state.
func (m *Manager) CSS() string {
	return GenerateCSS(m.palette, m.style)
}

// ApplyToDisplay loads the theme CSS into the display.
func (m *Manager) ApplyToDisplay(ctx context.Context, display *gdk.Display) {
	log := logging.FromContext(ctx)

	if display == nil {
		log.Warn().Msg("cannot apply theme: display is nil")
		return
	}

	// One provider for the process lifetime; reloading replaces its rules.
	if m.cssProvider == nil {
		m.cssProvider = gtk.NewCSSProvider()
		gtk.StyleContextAddProviderForDisplay(
			display,
			m.cssProvider,
			gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
		)
	}
	m.cssProvider.LoadFromString(m.CSS())

	log.Debug().Msg("theme CSS applied to display")
}

// UpdateFromConfig refreshes colors and style, re-applying when display is set.
func (m *Manager) UpdateFromConfig(ctx context.Context, cfg *config.Config, display *gdk.Display) {
	log := logging.FromContext(ctx)

	if cfg == nil {
		return
	}

	m.palette = PaletteFromConfig(cfg.Appearance)
	m.style = StyleFromConfig(cfg.Appearance)

	log.Info().
		Str("baseline", m.palette.Baseline).
		Str("obscured", m.palette.Obscured).
		Msg("theme manager updated from config")

	if display != nil {
		m.ApplyToDisplay(ctx, display)
	}
}
