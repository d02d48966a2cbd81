package ui

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-mobile/internal/application/usecase"
	"github.com/bnema/dumber-mobile/internal/domain/entity"
	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	"github.com/bnema/dumber-mobile/internal/infrastructure/osk"
	"github.com/bnema/dumber-mobile/internal/logging"
	"github.com/bnema/dumber-mobile/internal/ui/component"
	"github.com/bnema/dumber-mobile/internal/ui/layout/mocks"
)

func TestReloadTargets_Apply(t *testing.T) {
	ctx := context.Background()
	previous := config.DefaultConfig()

	navigateUC := usecase.NewNavigateUseCase(previous.HomePage)
	keyboard := osk.NewFocusSource(previous.Keyboard.Height)

	widget := mocks.NewMockWidget(t)
	var holds []uint
	pulse := component.NewPulse(widget, 100, func(ms uint, fn func()) func() {
		holds = append(holds, ms)
		return func() {}
	})

	var placeholder string
	var themed *config.Config

	targets := reloadTargets{
		navigateUC:  navigateUC,
		keyboard:    keyboard,
		pulses:      []*component.Pulse{pulse},
		placeholder: func(text string) { placeholder = text },
		theme:       func(cfg *config.Config) { themed = cfg },
	}

	next := config.DefaultConfig()
	next.HomePage = "https://example.org/"
	next.Keyboard.Height = 280
	next.Appearance.PulseDimMs = 150
	next.Appearance.Placeholder = "Search or enter address"

	targets.apply(ctx, previous, next)

	assert.Equal(t, "https://example.org/", navigateUC.HomePage())
	assert.Equal(t, "Search or enter address", placeholder)
	assert.Same(t, next, themed)

	var events []entity.KeyboardEvent
	_, err := keyboard.Subscribe(func(ev entity.KeyboardEvent) { events = append(events, ev) })
	require.NoError(t, err)
	keyboard.FocusChanged(true)
	require.Len(t, events, 1)
	assert.Equal(t, 280, events[0].Height)

	widget.EXPECT().AddCssClass(component.ClassPulsing).Return().Once()
	pulse.Pulse()
	assert.Equal(t, []uint{150}, holds)
}

func TestReloadTargets_ApplyWithoutTargets(t *testing.T) {
	assert.NotPanics(t, func() {
		reloadTargets{}.apply(context.Background(), nil, config.DefaultConfig())
	})
}

func TestDependencies_Validate(t *testing.T) {
	deps := &Dependencies{}
	err := deps.Validate()
	require.Error(t, err)
	assert.Equal(t, "missing required dependency: Ctx", err.Error())

	deps.Ctx = context.Background()
	assert.Equal(t, ErrMissingDependency("Config"), deps.Validate())

	deps.Config = config.DefaultConfig()
	assert.Equal(t, ErrMissingDependency("Keyboard"), deps.Validate())

	deps.Keyboard = osk.NewFocusSource(300)
	assert.Equal(t, ErrMissingDependency("MainThread"), deps.Validate())
}

func TestReloadTargets_ApplyReportsRestartOnlySettings(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})
	ctx := logging.WithContext(context.Background(), logger)

	previous := config.DefaultConfig()
	next := config.DefaultConfig()
	next.Keyboard.Source = config.KeyboardSourceFocus
	next.Engine.EnableWebGL = !previous.Engine.EnableWebGL

	reloadTargets{}.apply(ctx, previous, next)

	out := buf.String()
	assert.Contains(t, out, `"source":"focus"`)
	assert.Contains(t, out, "keyboard source changed; restart to apply")
	assert.Contains(t, out, "engine settings changed; restart to apply")
}
