package osk

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/dumber-mobile/internal/logging"
)

const (
	oskDest      = "sm.puri.OSK0"
	oskPath      = dbus.ObjectPath("/sm/puri/OSK0")
	oskInterface = "sm.puri.OSK0"

	propertiesInterface = "org.freedesktop.DBus.Properties"
	propertiesChanged   = propertiesInterface + ".PropertiesChanged"
	visibleProperty     = "Visible"
)

var _ Bus = (*sessionBus)(nil)

type sessionBus struct {
	conn *dbus.Conn
}

// ConnectSessionBus connects to the session bus and checks that an on-screen
// keyboard service answers.
func ConnectSessionBus(ctx context.Context) (Bus, error) {
	log := logging.FromContext(ctx)

	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}

	b := &sessionBus{conn: conn}
	if _, err := b.Visible(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	log.Debug().Str("service", oskDest).Msg("on-screen keyboard service available")
	return b, nil
}

func (b *sessionBus) Visible() (bool, error) {
	variant, err := b.conn.Object(oskDest, oskPath).GetProperty(oskInterface + "." + visibleProperty)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", visibleProperty, err)
	}

	visible, ok := variant.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%s has type %s", visibleProperty, variant.Signature())
	}
	return visible, nil
}

func (b *sessionBus) matchOptions() []dbus.MatchOption {
	return []dbus.MatchOption{
		dbus.WithMatchObjectPath(oskPath),
		dbus.WithMatchInterface(propertiesInterface),
		dbus.WithMatchMember("PropertiesChanged"),
	}
}

func (b *sessionBus) Watch(ch chan<- *dbus.Signal) error {
	if err := b.conn.AddMatchSignal(b.matchOptions()...); err != nil {
		return fmt.Errorf("add match: %w", err)
	}
	b.conn.Signal(ch)
	return nil
}

func (b *sessionBus) Unwatch(ch chan<- *dbus.Signal) {
	b.conn.RemoveSignal(ch)
	_ = b.conn.RemoveMatchSignal(b.matchOptions()...)
}

func (b *sessionBus) Close() error {
	return b.conn.Close()
}

// visibilityFromSignal extracts the Visible property from a PropertiesChanged signal.
// ok is false for unrelated signals.
func visibilityFromSignal(sig *dbus.Signal) (visible, ok bool) {
	if sig == nil || sig.Name != propertiesChanged || sig.Path != oskPath {
		return false, false
	}
	if len(sig.Body) < 2 {
		return false, false
	}
	if iface, _ := sig.Body[0].(string); iface != oskInterface {
		return false, false
	}

	changed, isMap := sig.Body[1].(map[string]dbus.Variant)
	if !isMap {
		return false, false
	}
	variant, present := changed[visibleProperty]
	if !present {
		return false, false
	}
	visible, ok = variant.Value().(bool)
	return visible, ok
}
