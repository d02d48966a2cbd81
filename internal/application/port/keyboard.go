package port

import "github.com/bnema/dumber-mobile/internal/domain/entity"

// KeyboardHandler receives on-screen keyboard notifications on the main thread.
type KeyboardHandler func(event entity.KeyboardEvent)

// Subscription is a registered keyboard handler.
// Unsubscribe is safe to call more than once.
type Subscription interface {
	Unsubscribe()
}

// KeyboardEvents is the input-method notification source.
// It is injected into consumers rather than reached through a process-wide singleton.
type KeyboardEvents interface {
	Subscribe(handler KeyboardHandler) (Subscription, error)
}

// InsetSurface is the scrollable region that avoids the on-screen keyboard.
type InsetSurface interface {
	// SetBottomInset sets the bottom content and scroll-indicator inset in pixels.
	SetBottomInset(px int)

	// SetTint switches the screen background.
	SetTint(tint entity.Tint)
}

// MainThread schedules work on the UI event-dispatch thread.
type MainThread interface {
	Post(fn func())
}
