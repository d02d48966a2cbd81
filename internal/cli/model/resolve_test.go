package model

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-mobile/internal/cli/styles"
)

func update(t *testing.T, m ResolveModel, msg tea.Msg) (ResolveModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	rm, ok := next.(ResolveModel)
	require.True(t, ok)
	return rm, cmd
}

func typeText(t *testing.T, m ResolveModel, text string) ResolveModel {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestResolveModel_PrefilledValueIsResolved(t *testing.T) {
	m := NewResolveModel(styles.NewTheme(), "Example.com")

	assert.Equal(t, "Example.com", m.Value())
	assert.Equal(t, "https:example.com", m.Resolved())
	assert.Contains(t, m.View(), "https:example.com")
}

func TestResolveModel_TypingUpdatesPreview(t *testing.T) {
	m := NewResolveModel(styles.NewTheme(), "")
	assert.Empty(t, m.Resolved())

	m = typeText(t, m, "news.site")

	assert.Equal(t, "https:news.site", m.Resolved())
}

func TestResolveModel_EnterAcceptsValidAddress(t *testing.T) {
	m := NewResolveModel(styles.NewTheme(), "example.com")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Submitted)
	assert.False(t, m.Cancelled)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestResolveModel_EnterIgnoredForRejectedText(t *testing.T) {
	m := NewResolveModel(styles.NewTheme(), "not a url")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.Submitted)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "invalid address")
}

func TestResolveModel_EscCancels(t *testing.T) {
	m := NewResolveModel(styles.NewTheme(), "example.com")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.Cancelled)
	assert.False(t, m.Submitted)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
