// Package theme provides GTK CSS styling for the browser screen.
package theme

import (
	"strings"

	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
)

// Palette holds the screen's color tokens.
type Palette struct {
	Baseline       string // Background with no keyboard on screen
	Obscured       string // Background while the keyboard is up
	Text           string
	Muted          string // Placeholder text
	ControlSurface string // Control bar background
	FieldSurface   string // Address field background
	Border         string
	Accent         string // Focus ring
}

// DefaultPalette returns the built-in light palette.
func DefaultPalette() Palette {
	return Palette{
		Baseline:       config.DefaultBaselineTint,
		Obscured:       config.DefaultObscuredTint,
		Text:           "#1a1a1a",
		Muted:          "#8e8e93",
		ControlSurface: "#f2f2f7",
		FieldSurface:   "#f2f2f7",
		Border:         "#d1d1d6",
		Accent:         "#007aff",
	}
}

// PaletteFromConfig fills the configurable tints, keeping defaults for the rest.
func PaletteFromConfig(cfg config.AppearanceConfig) Palette {
	p := DefaultPalette()
	p.Baseline = Coalesce(strings.ToLower(cfg.BaselineTint), p.Baseline)
	p.Obscured = Coalesce(strings.ToLower(cfg.ObscuredTint), p.Obscured)
	return p
}

// ToCSSVars renders the palette as GTK named colors.
func (p Palette) ToCSSVars() string {
	var sb strings.Builder
	for _, c := range []struct{ name, value string }{
		{"baseline_bg", p.Baseline},
		{"obscured_bg", p.Obscured},
		{"screen_fg", p.Text},
		{"muted_fg", p.Muted},
		{"control_bg", p.ControlSurface},
		{"field_bg", p.FieldSurface},
		{"border_color", p.Border},
		{"accent_color", p.Accent},
	} {
		sb.WriteString("@define-color ")
		sb.WriteString(c.name)
		sb.WriteString(" ")
		sb.WriteString(c.value)
		sb.WriteString(";\n")
	}
	return sb.String()
}

// Coalesce returns value unless it is empty.
func Coalesce(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
