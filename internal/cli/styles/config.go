package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config command output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths shows where the config and schema live.
func (r *ConfigRenderer) RenderPaths(configFile, schemaFile string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	status := r.theme.SuccessStyle.Render("present")
	if !exists {
		status = r.theme.WarningStyle.Render("missing, defaults in use")
	}

	return fmt.Sprintf(
		"\n  %s Config %s (%s)\n  %s Schema %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(configFile),
		status,
		iconStyle.Render(IconFile),
		r.theme.Subtle.Render(schemaFile),
	)
}

// RenderTOML colors section headers and keys of an encoded config.
func (r *ConfigRenderer) RenderTOML(content string) string {
	section := r.theme.Highlight
	key := lipgloss.NewStyle().Foreground(r.theme.Text)
	value := r.theme.Subtle

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "["):
			lines[i] = section.Render(line)
		case strings.Contains(line, "="):
			k, v, _ := strings.Cut(line, "=")
			lines[i] = key.Render(k) + "=" + value.Render(v)
		}
	}
	return strings.Join(lines, "\n")
}

// RenderWritten confirms a file was written.
func (r *ConfigRenderer) RenderWritten(what, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s %s written to %s\n",
		iconStyle.Render(IconCheck),
		what,
		r.theme.Subtle.Render(path),
	)
}

// RenderExists explains why init did nothing.
func (r *ConfigRenderer) RenderExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf("\n  %s %s already exists; pass --force to overwrite\n",
		iconStyle.Render(IconInfo),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
