// Package webkit adapts WebKitGTK 6 to the application's web engine port.
package webkit

import (
	"context"
	"sync"
	"sync/atomic"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	"github.com/bnema/dumber-mobile/internal/logging"
)

var _ port.WebEngine = (*Engine)(nil)

// Engine wraps a WebKitGTK web view. All methods must run on the GTK main thread.
type Engine struct {
	view  *webkit.WebView
	swipe *gtk.GestureSwipe

	swipeThreshold float64
	gestures       atomic.Bool
	destroyed      atomic.Bool

	mu         sync.RWMutex
	onFinished func(resolved string)

	logger *zerolog.Logger
}

// NewEngine creates the web view and applies cfg to its settings.
func NewEngine(ctx context.Context, cfg config.EngineConfig) (*Engine, error) {
	view := webkit.NewWebView()
	if view == nil {
		return nil, ErrEngineNotInitialized
	}

	settings := view.Settings()
	if settings == nil {
		return nil, ErrEngineNotInitialized
	}
	ApplySettings(ctx, settings, cfg)

	e := &Engine{
		view:           view,
		swipeThreshold: cfg.SwipeVelocityThreshold,
		logger:         logging.FromContext(ctx),
	}
	e.connectSignals()
	e.attachSwipeGestures()

	return e, nil
}

// connectSignals sets up signal handlers for the web view.
func (e *Engine) connectSignals() {
	e.view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		if event != webkit.LoadFinished {
			return
		}

		e.mu.RLock()
		handler := e.onFinished
		e.mu.RUnlock()

		uri := e.view.URI()
		e.logger.Debug().Str("url", logging.TruncateURL(uri, 60)).Msg("navigation finished")
		if handler != nil {
			handler(uri)
		}
	})

	e.view.ConnectDestroy(func() {
		e.destroyed.Store(true)
	})
}

// attachSwipeGestures adds a swipe controller that navigates the history.
// It stays inert until SetBackForwardGestures(true).
func (e *Engine) attachSwipeGestures() {
	e.swipe = gtk.NewGestureSwipe()
	e.swipe.SetPropagationPhase(gtk.PhaseCapture)
	e.swipe.SetTouchOnly(false)

	e.swipe.ConnectSwipe(func(velocityX, velocityY float64) {
		if !e.gestures.Load() || e.destroyed.Load() {
			return
		}

		switch ClassifySwipe(velocityX, velocityY, e.swipeThreshold) {
		case SwipeBack:
			if e.view.CanGoBack() {
				e.logger.Debug().Float64("velocity", velocityX).Msg("swipe back")
				e.view.GoBack()
			}
		case SwipeForward:
			if e.view.CanGoForward() {
				e.logger.Debug().Float64("velocity", velocityX).Msg("swipe forward")
				e.view.GoForward()
			}
		}
	})

	e.view.AddController(e.swipe)
}

func (e *Engine) usable() error {
	if e.view == nil {
		return ErrEngineNotInitialized
	}
	if e.destroyed.Load() {
		return ErrEngineDestroyed
	}
	return nil
}

// Load asks the engine to navigate to address. A newer load supersedes this one.
func (e *Engine) Load(ctx context.Context, address string) error {
	if address == "" {
		return ErrInvalidURL
	}
	if err := e.usable(); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Str("url", logging.TruncateURL(address, 60)).Msg("loading")
	e.view.LoadURI(address)
	return nil
}

// GoBack navigates back in the engine's history.
func (e *Engine) GoBack(_ context.Context) error {
	if err := e.usable(); err != nil {
		return err
	}
	e.view.GoBack()
	return nil
}

// GoForward navigates forward in the engine's history.
func (e *Engine) GoForward(_ context.Context) error {
	if err := e.usable(); err != nil {
		return err
	}
	e.view.GoForward()
	return nil
}

func (e *Engine) CanGoBack() bool {
	return e.usable() == nil && e.view.CanGoBack()
}

func (e *Engine) CanGoForward() bool {
	return e.usable() == nil && e.view.CanGoForward()
}

// URI returns the current location, or "" when unavailable.
func (e *Engine) URI() string {
	if e.usable() != nil {
		return ""
	}
	return e.view.URI()
}

// SetBackForwardGestures toggles swipe navigation.
func (e *Engine) SetBackForwardGestures(enabled bool) {
	e.gestures.Store(enabled)
}

// GesturesEnabled reports whether swipe navigation is active.
func (e *Engine) GesturesEnabled() bool {
	return e.gestures.Load()
}

// OnNavigationFinished registers the callback fired with the resolved address
// once a navigation completes. A later registration replaces the earlier one.
func (e *Engine) OnNavigationFinished(handler func(resolved string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onFinished = handler
}

// Widget returns the web view for embedding in the screen.
func (e *Engine) Widget() gtk.Widgetter {
	if e.view == nil {
		return nil
	}
	return e.view
}
