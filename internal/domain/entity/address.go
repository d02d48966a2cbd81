// Package entity defines the domain types of the browser screen.
package entity

// Address is the text shown in the address bar.
// Before reaching the engine it always carries a scheme; after a navigation
// completes it mirrors the engine's resolved location.
type Address string

// String returns the address text.
func (a Address) String() string {
	return string(a)
}

// IsEmpty reports whether the address has no text.
func (a Address) IsEmpty() bool {
	return a == ""
}

// NavigationAvailability mirrors the engine's back/forward capability flags.
// It is read when a control is activated and never cached.
type NavigationAvailability struct {
	CanGoBack    bool
	CanGoForward bool
}
