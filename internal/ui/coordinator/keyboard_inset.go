// Package coordinator holds the screen-level coordinators that outlive a single widget.
package coordinator

import (
	"context"
	"sync"

	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/domain/entity"
	"github.com/bnema/dumber-mobile/internal/logging"
)

// KeyboardInsetCoordinator keeps the address field above the on-screen keyboard.
// While attached it mirrors keyboard show/hide into the bottom inset and background tint.
type KeyboardInsetCoordinator struct {
	events  port.KeyboardEvents
	surface port.InsetSurface
}

// NewKeyboardInsetCoordinator creates a coordinator for surface fed by events.
func NewKeyboardInsetCoordinator(
	ctx context.Context,
	events port.KeyboardEvents,
	surface port.InsetSurface,
) *KeyboardInsetCoordinator {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating keyboard inset coordinator")

	return &KeyboardInsetCoordinator{
		events:  events,
		surface: surface,
	}
}

// Attach subscribes to keyboard events for as long as the screen is visible.
// The returned release unsubscribes; it is idempotent and also runs when ctx is done.
func (c *KeyboardInsetCoordinator) Attach(ctx context.Context) (release func()) {
	log := logging.FromContext(ctx)

	sub, err := c.events.Subscribe(c.Handle)
	if err != nil {
		log.Warn().Err(err).Msg("keyboard events unavailable, insets stay fixed")
		return func() {}
	}
	log.Debug().Msg("keyboard inset coordinator attached")

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			sub.Unsubscribe()
			log.Debug().Msg("keyboard inset coordinator released")
		})
	}
	stop := context.AfterFunc(ctx, unsubscribe)

	return func() {
		stop()
		unsubscribe()
	}
}

// Handle applies one keyboard event to the surface.
func (c *KeyboardInsetCoordinator) Handle(event entity.KeyboardEvent) {
	switch event.Kind {
	case entity.KeyboardWillShow:
		c.surface.SetBottomInset(max(event.Height, 0))
		c.surface.SetTint(entity.TintObscured)
	case entity.KeyboardWillHide:
		c.surface.SetBottomInset(entity.ZeroInsets.Bottom)
		c.surface.SetTint(entity.TintBaseline)
	}
}
