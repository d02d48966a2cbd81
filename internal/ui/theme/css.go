package theme

import (
	"fmt"
	"strings"

	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	"github.com/bnema/dumber-mobile/internal/ui/component"
	"github.com/bnema/dumber-mobile/internal/ui/layout"
)

// Style holds the non-color appearance settings.
type Style struct {
	CornerRadius   int
	PulseOpacity   float64
	PulseDimMs     int
	PulseRestoreMs int
}

// StyleFromConfig extracts the style settings.
func StyleFromConfig(cfg config.AppearanceConfig) Style {
	return Style{
		CornerRadius:   cfg.CornerRadius,
		PulseOpacity:   cfg.PulseOpacity,
		PulseDimMs:     cfg.PulseDimMs,
		PulseRestoreMs: cfg.PulseRestoreMs,
	}
}

// GenerateCSS creates the GTK4 stylesheet for the browser screen.
func GenerateCSS(p Palette, s Style) string {
	var sb strings.Builder

	sb.WriteString("/* Theme colors */\n")
	sb.WriteString(p.ToCSSVars())
	sb.WriteString("\n")

	sb.WriteString(generateScreenCSS())
	sb.WriteString("\n")

	sb.WriteString(generateControlsCSS(s))
	sb.WriteString("\n")

	sb.WriteString(generateAddressFieldCSS(s))

	return sb.String()
}

// generateScreenCSS styles the scroller and its tint states.
func generateScreenCSS() string {
	return fmt.Sprintf(`/* Screen */
scrolledwindow.%[1]s,
scrolledwindow.%[1]s > viewport {
	background-color: @baseline_bg;
	transition: background-color 250ms ease-out;
}

scrolledwindow.%[1]s.%[2]s,
scrolledwindow.%[1]s.%[2]s > viewport {
	background-color: @obscured_bg;
}

.%[3]s {
	background-color: transparent;
}
`, layout.ClassScroller, component.ClassTintObscured, layout.ClassContent)
}

// generateControlsCSS styles the back/reload/forward bar and the pulse.
// The restore transition lives on the base rule so removing the pulsing
// class animates back at the slower rate.
func generateControlsCSS(s Style) string {
	return fmt.Sprintf(`/* Control bar */
box.%[1]s {
	background-color: @control_bg;
	border: 1px solid @border_color;
	border-radius: %[2]dpx;
	padding: 0 4px;
}

button.%[3]s {
	background: none;
	border: none;
	box-shadow: none;
	color: @screen_fg;
	min-width: 40px;
	min-height: 40px;
	opacity: 1;
	transition: opacity %[4]dms ease-in-out;
}

button.%[3]s.%[5]s {
	opacity: %.2[6]f;
	transition: opacity %[7]dms ease-in-out;
}
`, layout.ClassControls, s.CornerRadius, layout.ClassControlButton,
		s.PulseRestoreMs, component.ClassPulsing, s.PulseOpacity, s.PulseDimMs)
}

// generateAddressFieldCSS styles the address text field.
func generateAddressFieldCSS(s Style) string {
	return fmt.Sprintf(`/* Address field */
entry.%[1]s {
	background-color: @field_bg;
	color: @screen_fg;
	border: 1px solid @border_color;
	border-radius: %[2]dpx;
	padding: 0 12px;
	font-size: 1.05em;
}

entry.%[1]s:focus-within {
	border-color: @accent_color;
	outline: none;
}

entry.%[1]s > text > placeholder {
	color: @muted_fg;
}
`, layout.ClassAddressField, s.CornerRadius)
}
