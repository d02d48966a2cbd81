// Package model contains the Bubble Tea models used by CLI commands.
package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dumber-mobile/internal/cli/styles"
	"github.com/bnema/dumber-mobile/internal/domain/url"
)

// ResolveModel is an interactive prompt that previews address normalization
// while the user types.
type ResolveModel struct {
	input    textinput.Model
	help     help.Model
	keys     styles.ResolveKeyMap
	theme    *styles.Theme
	renderer *styles.ResolveRenderer

	resolved string
	err      error

	// Result
	Submitted bool
	Cancelled bool
}

// NewResolveModel creates a prompt prefilled with initial.
func NewResolveModel(theme *styles.Theme, initial string) ResolveModel {
	input := styles.NewAddressInput(theme, "example.com")
	input.SetValue(initial)
	input.Focus()

	m := ResolveModel{
		input:    input,
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultResolveKeyMap(),
		theme:    theme,
		renderer: styles.NewResolveRenderer(theme),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m ResolveModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m ResolveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.Cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Submit):
			if m.err != nil || m.resolved == "" {
				// Rejected text keeps the prompt open.
				return m, nil
			}
			m.Submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *ResolveModel) refresh() {
	m.resolved, m.err = url.Resolve(m.input.Value())
}

// View implements tea.Model.
func (m ResolveModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.InputFocused.Render(m.input.View()))
	b.WriteString("\n")

	raw := m.input.Value()
	switch {
	case raw == "":
		b.WriteString(m.theme.Subtle.Render("  type an address"))
	case m.err != nil:
		b.WriteString(m.renderer.RenderRejected(raw, m.err))
	default:
		b.WriteString(m.renderer.RenderAccepted(raw, m.resolved, url.ExtractDomain(m.resolved)))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Resolved returns the normalized address of the last accepted input.
func (m ResolveModel) Resolved() string {
	return m.resolved
}

// Value returns the raw input text.
func (m ResolveModel) Value() string {
	return m.input.Value()
}

var _ tea.Model = ResolveModel{}
