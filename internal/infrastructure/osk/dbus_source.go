package osk

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"

	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/domain/entity"
	"github.com/bnema/dumber-mobile/internal/logging"
)

const signalBuffer = 8

var _ Source = (*DBusSource)(nil)

// DBusSource reports keyboard visibility from the sm.puri.OSK0 service.
// The service exposes no height, so show events carry the configured height.
// Handlers run on the main thread.
type DBusSource struct {
	bus    Bus
	thread port.MainThread
	reg    *registry
	height atomic.Int64

	visible bool // owned by the watch goroutine

	signals chan *dbus.Signal
	cancel  context.CancelFunc
	done    chan struct{}

	closeOnce sync.Once
	logger    *zerolog.Logger
}

// NewDBusSource starts watching bus until ctx is cancelled or Close is called.
func NewDBusSource(ctx context.Context, bus Bus, thread port.MainThread, height int) (*DBusSource, error) {
	log := logging.FromContext(ctx)

	visible, err := bus.Visible()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	signals := make(chan *dbus.Signal, signalBuffer)
	if err := bus.Watch(signals); err != nil {
		return nil, fmt.Errorf("watch keyboard visibility: %w", err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	s := &DBusSource{
		bus:     bus,
		thread:  thread,
		reg:     newRegistry(),
		visible: visible,
		signals: signals,
		cancel:  cancel,
		done:    make(chan struct{}),
		logger:  log,
	}
	s.height.Store(int64(height))

	go s.watch(watchCtx)

	log.Debug().Bool("visible", visible).Msg("keyboard source: watching sm.puri.OSK0")
	return s, nil
}

func (s *DBusSource) Name() string { return SourceDBus }

func (s *DBusSource) watch(ctx context.Context) {
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-s.signals:
			if !ok {
				return
			}
			visible, relevant := visibilityFromSignal(sig)
			if !relevant || visible == s.visible {
				continue
			}
			s.visible = visible
			s.emit(visible)
		}
	}
}

func (s *DBusSource) emit(visible bool) {
	event := entity.KeyboardEvent{Kind: entity.KeyboardWillHide}
	if visible {
		event = entity.KeyboardEvent{Kind: entity.KeyboardWillShow, Height: int(s.height.Load())}
	}

	s.logger.Debug().
		Str("kind", event.Kind.String()).
		Int("height", event.Height).
		Msg("keyboard visibility changed")

	s.thread.Post(func() { s.reg.dispatch(event) })
}

// Subscribe registers handler for show/hide events.
func (s *DBusSource) Subscribe(handler port.KeyboardHandler) (port.Subscription, error) {
	if handler == nil {
		return nil, fmt.Errorf("subscribe: nil handler")
	}
	return s.reg.add(handler)
}

// SetHeight changes the height reported with later show events.
func (s *DBusSource) SetHeight(px int) {
	s.height.Store(int64(px))
}

// FocusChanged is ignored; the service reports visibility itself.
func (s *DBusSource) FocusChanged(bool) {}

// Close stops watching and drops every subscription.
func (s *DBusSource) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.done
		s.bus.Unwatch(s.signals)
		s.reg.close()
		err = s.bus.Close()
	})
	return err
}
