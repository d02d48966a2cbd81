package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/dumber-mobile/internal/application/port/mocks"
	"github.com/bnema/dumber-mobile/internal/domain/entity"
	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	"github.com/bnema/dumber-mobile/internal/infrastructure/osk"
	"github.com/bnema/dumber-mobile/internal/ui/component"
	"github.com/bnema/dumber-mobile/internal/ui/layout"
	"github.com/bnema/dumber-mobile/internal/ui/layout/mocks"
)

type wiredScreen struct {
	app      *App
	engine   *portmocks.MockWebEngine
	entry    *mocks.MockEntryWidget
	webView  *mocks.MockWidget
	back     *mocks.MockButtonWidget
	keyboard *osk.FocusSource

	activate func()
	focus    func(bool)
	clicks   map[string]func()
	holds    []uint
}

// newWiredScreen runs initControllers against mocked widgets and engine,
// capturing the callbacks it connects.
func newWiredScreen(t *testing.T) *wiredScreen {
	t.Helper()

	cfg := config.DefaultConfig()
	w := &wiredScreen{
		engine:   portmocks.NewMockWebEngine(t),
		entry:    mocks.NewMockEntryWidget(t),
		webView:  mocks.NewMockWidget(t),
		back:     mocks.NewMockButtonWidget(t),
		keyboard: osk.NewFocusSource(cfg.Keyboard.Height),
		clicks:   make(map[string]func()),
	}
	reload := mocks.NewMockButtonWidget(t)
	forward := mocks.NewMockButtonWidget(t)

	w.engine.EXPECT().OnNavigationFinished(mock.Anything).Return().Once()
	w.entry.EXPECT().ConnectActivate(mock.Anything).Run(func(cb func()) { w.activate = cb }).Return().Once()
	w.entry.EXPECT().ConnectFocusChanged(mock.Anything).Run(func(cb func(bool)) { w.focus = cb }).Return().Once()
	for name, button := range map[string]*mocks.MockButtonWidget{"back": w.back, "reload": reload, "forward": forward} {
		button.EXPECT().ConnectClicked(mock.Anything).Run(func(cb func()) { w.clicks[name] = cb }).Return().Once()
	}

	w.app = &App{
		deps: &Dependencies{
			Ctx:      context.Background(),
			Config:   cfg,
			Keyboard: w.keyboard,
		},
		engine: w.engine,
		screen: &layout.Screen{
			WebView: w.webView,
			Back:    w.back,
			Reload:  reload,
			Forward: forward,
			Address: w.entry,
		},
		timer: func(ms uint, _ func()) func() {
			w.holds = append(w.holds, ms)
			return func() {}
		},
	}
	w.app.initControllers(context.Background())

	require.NotNil(t, w.activate)
	require.NotNil(t, w.focus)
	require.Len(t, w.clicks, 3)
	return w
}

func TestInitControllers_FocusSelectsAllAndShowsKeyboard(t *testing.T) {
	w := newWiredScreen(t)

	var events []entity.KeyboardEvent
	_, err := w.keyboard.Subscribe(func(ev entity.KeyboardEvent) { events = append(events, ev) })
	require.NoError(t, err)

	w.entry.EXPECT().SelectRegion(0, -1).Return().Once()
	w.focus(true)

	require.Len(t, events, 1)
	assert.Equal(t, entity.KeyboardWillShow, events[0].Kind)
	assert.Equal(t, config.DefaultConfig().Keyboard.Height, events[0].Height)

	w.focus(false)

	require.Len(t, events, 2)
	assert.Equal(t, entity.KeyboardWillHide, events[1].Kind)
	w.entry.AssertNumberOfCalls(t, "SelectRegion", 1)
}

func TestInitControllers_ActivateSubmitsFieldText(t *testing.T) {
	w := newWiredScreen(t)

	w.entry.EXPECT().Text().Return("Example.com").Once()
	w.engine.EXPECT().Load(mock.Anything, "https:example.com").Return(nil).Once()
	w.entry.EXPECT().HasFocus().Return(true).Once()
	w.webView.EXPECT().GrabFocus().Return(true).Once()

	w.activate()
}

func TestInitControllers_BackClickWithoutHistoryOnlyPulses(t *testing.T) {
	w := newWiredScreen(t)

	w.engine.EXPECT().CanGoBack().Return(false).Once()
	w.back.EXPECT().AddCssClass(component.ClassPulsing).Return().Once()

	w.clicks["back"]()

	w.engine.AssertNotCalled(t, "GoBack", mock.Anything)
	assert.Equal(t, []uint{uint(config.DefaultConfig().Appearance.PulseDimMs)}, w.holds)
}
