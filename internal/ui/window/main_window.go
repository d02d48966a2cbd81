// Package window provides GTK window implementations.
package window

import (
	"context"
	"errors"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/dumber-mobile/internal/logging"
)

const (
	// Portrait phone size; compositors on phones maximize anyway.
	defaultWidth  = 390
	defaultHeight = 844
	windowTitle   = "Dumber Mobile"
	maxTitleLen   = 255
)

// ErrWindowCreationFailed is returned when GTK cannot create the window.
var ErrWindowCreationFailed = errors.New("failed to create window")

// MainWindow is the single application window hosting the browser screen.
type MainWindow struct {
	window *gtk.ApplicationWindow
	logger zerolog.Logger
}

// New creates the main window for app.
func New(ctx context.Context, app *gtk.Application) (*MainWindow, error) {
	log := logging.FromContext(ctx)

	win := gtk.NewApplicationWindow(app)
	if win == nil {
		return nil, ErrWindowCreationFailed
	}
	win.SetTitle(windowTitle)
	win.SetDefaultSize(defaultWidth, defaultHeight)

	return &MainWindow{
		window: win,
		logger: log.With().Str("component", "main-window").Logger(),
	}, nil
}

// SetContent places the screen root in the window.
func (mw *MainWindow) SetContent(widget gtk.Widgetter) {
	mw.window.SetChild(widget)
}

// Show makes the window visible.
func (mw *MainWindow) Show() {
	mw.window.Present()
}

// Close closes the window.
func (mw *MainWindow) Close() {
	mw.window.Close()
}

// SetTitle updates the window title, capped at 255 characters.
func (mw *MainWindow) SetTitle(title string) {
	if title == "" {
		title = windowTitle
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}
	mw.window.SetTitle(title)
}

// OnVisibilityChanged fires with true when the window maps and false when it unmaps.
func (mw *MainWindow) OnVisibilityChanged(callback func(visible bool)) {
	mw.window.ConnectMap(func() { callback(true) })
	mw.window.ConnectUnmap(func() { callback(false) })
}

// OnViewportChanged fires with the window height whenever it changes.
// Resize notifications arrive before the new allocation, so the height is
// read from an idle callback, which runs after layout.
func (mw *MainWindow) OnViewportChanged(callback func(height int)) {
	tracker := &viewportTracker{callback: callback}
	notify := func() {
		glib.IdleAdd(func() bool {
			h := mw.ViewportHeight()
			if tracker.report(h) {
				mw.logger.Trace().Int("height", h).Msg("viewport changed")
			}
			return false
		})
	}
	mw.window.NotifyProperty("default-height", notify)
	mw.window.NotifyProperty("maximized", notify)
	mw.window.NotifyProperty("fullscreened", notify)
}

// ViewportHeight returns the current window height.
func (mw *MainWindow) ViewportHeight() int {
	_, fallback := mw.window.DefaultSize()
	return heightFrom(mw.window.Height(), fallback)
}

// Window returns the underlying GTK window.
func (mw *MainWindow) Window() *gtk.ApplicationWindow {
	return mw.window
}
