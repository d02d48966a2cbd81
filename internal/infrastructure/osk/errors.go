package osk

import "errors"

var (
	// ErrServiceUnavailable is returned when no on-screen keyboard answers on the session bus.
	ErrServiceUnavailable = errors.New("on-screen keyboard service unavailable")

	// ErrUnknownSource is returned for a keyboard source name that is not recognized.
	ErrUnknownSource = errors.New("unknown keyboard source")

	// ErrSourceClosed is returned when subscribing to a closed source.
	ErrSourceClosed = errors.New("keyboard source closed")
)
