package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ResolveRenderer renders address normalization results.
type ResolveRenderer struct {
	theme *Theme
}

func NewResolveRenderer(theme *Theme) *ResolveRenderer {
	return &ResolveRenderer{theme: theme}
}

// RenderAccepted shows the text the engine would be asked to load.
func (r *ResolveRenderer) RenderAccepted(raw, resolved, host string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	out := fmt.Sprintf("  %s %s %s %s",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(raw),
		r.theme.Subtle.Render(IconArrow),
		r.theme.Highlight.Render(resolved),
	)
	if host != "" {
		out += "  " + r.theme.Subtle.Render("("+host+")")
	}
	return out
}

// RenderRejected shows that the text would be ignored by the address bar.
func (r *ResolveRenderer) RenderRejected(raw string, err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("  %s %s %s",
		iconStyle.Render(IconX),
		r.theme.Normal.Render(fmt.Sprintf("%q", raw)),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}
