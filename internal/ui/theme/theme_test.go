package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
)

func TestPaletteFromConfig(t *testing.T) {
	p := PaletteFromConfig(config.AppearanceConfig{
		ObscuredTint: "#AABBCC",
		BaselineTint: "",
	})

	assert.Equal(t, "#aabbcc", p.Obscured)
	assert.Equal(t, config.DefaultBaselineTint, p.Baseline)
	assert.Equal(t, DefaultPalette().Accent, p.Accent)
}

func TestDefaultPalette_Tints(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, "#d1d4da", p.Obscured)
	assert.Equal(t, "#ffffff", p.Baseline)
}

func TestGenerateCSS(t *testing.T) {
	css := GenerateCSS(DefaultPalette(), Style{
		CornerRadius:   12,
		PulseOpacity:   0.5,
		PulseDimMs:     100,
		PulseRestoreMs: 500,
	})

	assert.Contains(t, css, "@define-color obscured_bg #d1d4da;")
	assert.Contains(t, css, "@define-color baseline_bg #ffffff;")
	assert.Contains(t, css, "scrolledwindow.browser-scroller.tint-obscured")
	assert.Contains(t, css, "border-radius: 12px;")
	assert.Contains(t, css, "button.browser-control.pulsing {\n\topacity: 0.50;\n\ttransition: opacity 100ms")
	assert.Contains(t, css, "transition: opacity 500ms")
	assert.Contains(t, css, "entry.address-field")
}

func TestNewManager_NilConfigUsesDefaults(t *testing.T) {
	m := NewManager(context.Background(), nil)

	assert.Equal(t, DefaultPalette(), m.Palette())
	assert.Equal(t, 12, m.Style().CornerRadius)
	assert.Contains(t, m.CSS(), "opacity: 0.50;")
}

func TestManager_UpdateFromConfig(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, config.DefaultConfig())

	cfg := config.DefaultConfig()
	cfg.Appearance.ObscuredTint = "#101010"
	cfg.Appearance.CornerRadius = 4
	m.UpdateFromConfig(ctx, cfg, nil)

	assert.Equal(t, "#101010", m.Palette().Obscured)
	assert.Contains(t, m.CSS(), "border-radius: 4px;")

	m.UpdateFromConfig(ctx, nil, nil)
	assert.Equal(t, "#101010", m.Palette().Obscured)
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "a", Coalesce("a", "b"))
	assert.Equal(t, "b", Coalesce("  ", "b"))
}
