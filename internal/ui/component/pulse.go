package component

import (
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/ui/layout"
)

// ClassPulsing dims a control. The theme gives it a short transition in and
// the control's base class a longer transition back out.
const ClassPulsing = "pulsing"

// Timer runs fn once after ms milliseconds. The returned func cancels it.
type Timer func(ms uint, fn func()) (cancel func())

// GlibTimer schedules on the GTK main loop.
func GlibTimer(ms uint, fn func()) func() {
	handle := glib.TimeoutAdd(ms, func() bool {
		fn()
		return false
	})
	return func() { glib.SourceRemove(handle) }
}

var _ port.Pulsable = (*Pulse)(nil)

// Pulse plays the press feedback on a control: dim, hold for the dim
// duration, then restore.
type Pulse struct {
	widget layout.Widget
	holdMs uint
	timer  Timer
	cancel func()
}

func NewPulse(widget layout.Widget, holdMs uint, timer Timer) *Pulse {
	if timer == nil {
		timer = GlibTimer
	}
	return &Pulse{widget: widget, holdMs: holdMs, timer: timer}
}

// Pulse restarts the animation if one is already running.
func (p *Pulse) Pulse() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}

	p.widget.AddCssClass(ClassPulsing)
	p.cancel = p.timer(p.holdMs, func() {
		p.cancel = nil
		p.widget.RemoveCssClass(ClassPulsing)
	})
}

// SetHold changes the dim duration for later pulses.
func (p *Pulse) SetHold(ms uint) {
	p.holdMs = ms
}
