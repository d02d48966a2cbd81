// Package component adapts screen widgets to the application's UI ports.
package component

import (
	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/ui/layout"
)

var _ port.AddressField = (*AddressEntry)(nil)

// AddressEntry exposes the address text field to the controllers.
// Releasing focus hands it to focusSink, which dismisses the on-screen keyboard.
type AddressEntry struct {
	entry     layout.EntryWidget
	focusSink layout.Widget
}

func NewAddressEntry(entry layout.EntryWidget, focusSink layout.Widget) *AddressEntry {
	return &AddressEntry{entry: entry, focusSink: focusSink}
}

func (a *AddressEntry) Text() string {
	return a.entry.Text()
}

func (a *AddressEntry) SetText(text string) {
	a.entry.SetText(text)
}

// SelectAll selects from the first to the last character.
func (a *AddressEntry) SelectAll() {
	a.entry.SelectRegion(0, -1)
}

func (a *AddressEntry) ReleaseFocus() {
	if !a.entry.HasFocus() {
		return
	}
	a.focusSink.GrabFocus()
}

func (a *AddressEntry) HasFocus() bool {
	return a.entry.HasFocus()
}

// OnFocusChanged forwards focus transitions of the underlying entry.
func (a *AddressEntry) OnFocusChanged(callback func(focused bool)) {
	a.entry.ConnectFocusChanged(callback)
}

// OnActivate fires when the user submits with Enter or the keyboard's Go key.
func (a *AddressEntry) OnActivate(callback func()) {
	a.entry.ConnectActivate(callback)
}
