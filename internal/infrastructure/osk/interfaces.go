// Package osk provides on-screen keyboard visibility sources.
package osk

import "github.com/godbus/dbus/v5"

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_bus.go -package=mock_osk

// Bus is the slice of a D-Bus session connection the keyboard source needs.
type Bus interface {
	// Visible reads the current keyboard visibility property.
	Visible() (bool, error)

	// Watch starts delivering property-change signals to ch.
	Watch(ch chan<- *dbus.Signal) error

	// Unwatch stops delivering signals to ch.
	Unwatch(ch chan<- *dbus.Signal)

	Close() error
}
