package port

// AddressField is the editable text field holding the address.
type AddressField interface {
	Text() string
	SetText(text string)

	// SelectAll selects the whole text so typing replaces it.
	SelectAll()

	// ReleaseFocus gives up input focus, dismissing the on-screen keyboard.
	ReleaseFocus()
	HasFocus() bool
}

// Pulsable is a control that plays a short press feedback animation.
type Pulsable interface {
	Pulse()
}
