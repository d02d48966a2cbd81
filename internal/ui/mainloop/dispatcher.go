package mainloop

import (
	"sync/atomic"

	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/bnema/dumber-mobile/internal/application/port"
)

var _ port.MainThread = (*Dispatcher)(nil)

// Dispatcher posts work onto the GLib default main context.
// Post is safe to call from any goroutine.
type Dispatcher struct {
	closed atomic.Bool
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Post schedules fn as a one-shot idle callback.
func (d *Dispatcher) Post(fn func()) {
	if fn == nil || d.closed.Load() {
		return
	}

	glib.IdleAdd(func() bool {
		if !d.closed.Load() {
			fn()
		}
		return false
	})
}

// Close drops pending and future work. Used once the main loop is shutting down.
func (d *Dispatcher) Close() {
	d.closed.Store(true)
}
