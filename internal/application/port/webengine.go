// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, D-Bus).
package port

import "context"

// WebEngine is the embedded web engine the browser screen delegates to.
// It owns page loading, rendering and the back/forward history stack; the
// screen only issues navigation requests and reads availability flags.
// Implementations must invoke callbacks on the main thread.
type WebEngine interface {
	// Load starts loading address, superseding any in-flight load.
	Load(ctx context.Context, address string) error

	// GoBack navigates one step back in the engine's history.
	GoBack(ctx context.Context) error

	// GoForward navigates one step forward in the engine's history.
	GoForward(ctx context.Context) error

	// CanGoBack reports whether backward history is available.
	CanGoBack() bool

	// CanGoForward reports whether forward history is available.
	CanGoForward() bool

	// SetBackForwardGestures enables or disables swipe back/forward on the engine surface.
	SetBackForwardGestures(enabled bool)

	// OnNavigationFinished registers the handler fired when a page finishes loading.
	// The handler receives the engine's resolved address, which may differ from
	// the requested one after redirects. Registering replaces any previous handler.
	OnNavigationFinished(handler func(resolved string))

	// URI returns the engine's current address.
	URI() string
}
