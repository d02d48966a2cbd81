package osk

import (
	"fmt"
	"sync/atomic"

	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/domain/entity"
)

var _ Source = (*FocusSource)(nil)

// FocusSource infers the keyboard from text-entry focus. Compositors that pop
// the keyboard on focus without a D-Bus service behave this way.
// FocusChanged must be called on the main thread; handlers run synchronously.
type FocusSource struct {
	reg     *registry
	height  atomic.Int64
	visible bool
}

func NewFocusSource(height int) *FocusSource {
	s := &FocusSource{reg: newRegistry()}
	s.height.Store(int64(height))
	return s
}

func (s *FocusSource) Name() string { return SourceFocus }

func (s *FocusSource) Subscribe(handler port.KeyboardHandler) (port.Subscription, error) {
	if handler == nil {
		return nil, fmt.Errorf("subscribe: nil handler")
	}
	return s.reg.add(handler)
}

// FocusChanged emits show on focus gain and hide on focus loss.
// Repeated notifications for the same state are dropped.
func (s *FocusSource) FocusChanged(focused bool) {
	if focused == s.visible {
		return
	}
	s.visible = focused

	event := entity.KeyboardEvent{Kind: entity.KeyboardWillHide}
	if focused {
		event = entity.KeyboardEvent{Kind: entity.KeyboardWillShow, Height: int(s.height.Load())}
	}
	s.reg.dispatch(event)
}

func (s *FocusSource) SetHeight(px int) {
	s.height.Store(int64(px))
}

func (s *FocusSource) Close() error {
	s.reg.close()
	return nil
}

// nopSource never emits.
type nopSource struct{}

func (nopSource) Name() string { return SourceNone }

func (nopSource) Subscribe(port.KeyboardHandler) (port.Subscription, error) {
	return &subscription{remove: func() {}}, nil
}

func (nopSource) FocusChanged(bool) {}
func (nopSource) SetHeight(int)     {}
func (nopSource) Close() error      { return nil }
