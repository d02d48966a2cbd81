package osk

import (
	"context"
	"fmt"

	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	"github.com/bnema/dumber-mobile/internal/logging"
)

// Source names accepted in the keyboard.source setting.
const (
	SourceAuto  = "auto"
	SourceDBus  = "dbus"
	SourceFocus = "focus"
	SourceNone  = "none"
)

// Source is a keyboard event source the screen can feed and reconfigure.
type Source interface {
	port.KeyboardEvents

	// Name is the resolved source kind.
	Name() string

	// FocusChanged reports address field focus. Only focus-based sources react.
	FocusChanged(focused bool)

	// SetHeight sets the height attached to show events.
	SetHeight(px int)

	Close() error
}

// Open selects a source per cfg. bus may be nil when the session bus could
// not be reached; "auto" then falls back to focus tracking.
func Open(ctx context.Context, cfg config.KeyboardConfig, bus Bus, thread port.MainThread) (Source, error) {
	log := logging.FromContext(ctx)

	switch cfg.Source {
	case SourceAuto, "":
		if bus != nil {
			src, err := NewDBusSource(ctx, bus, thread, cfg.Height)
			if err == nil {
				return src, nil
			}
			log.Debug().Err(err).Msg("keyboard source: D-Bus unusable, tracking focus instead")
			_ = bus.Close()
		}
		return NewFocusSource(cfg.Height), nil

	case SourceDBus:
		if bus == nil {
			return nil, ErrServiceUnavailable
		}
		src, err := NewDBusSource(ctx, bus, thread, cfg.Height)
		if err != nil {
			_ = bus.Close()
			return nil, err
		}
		return src, nil

	case SourceFocus:
		closeBus(bus)
		return NewFocusSource(cfg.Height), nil

	case SourceNone:
		closeBus(bus)
		return nopSource{}, nil

	default:
		closeBus(bus)
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

func closeBus(bus Bus) {
	if bus != nil {
		_ = bus.Close()
	}
}
