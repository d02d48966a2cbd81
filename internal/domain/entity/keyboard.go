package entity

// KeyboardEventKind distinguishes on-screen keyboard transitions.
type KeyboardEventKind int

const (
	// KeyboardWillShow is emitted before the on-screen keyboard covers the screen.
	KeyboardWillShow KeyboardEventKind = iota
	// KeyboardWillHide is emitted before the on-screen keyboard goes away.
	KeyboardWillHide
)

// String returns a human-readable representation of the event kind.
func (k KeyboardEventKind) String() string {
	switch k {
	case KeyboardWillShow:
		return "show"
	case KeyboardWillHide:
		return "hide"
	default:
		return "unknown"
	}
}

// KeyboardEvent is a show/hide notification from the input-method system.
// Height is the obscured height in pixels and is only meaningful for show events.
type KeyboardEvent struct {
	Kind   KeyboardEventKind
	Height int
}

// Insets describes the scrollable region's content insets in pixels.
type Insets struct {
	Bottom int
}

// ZeroInsets is the baseline with no keyboard on screen.
var ZeroInsets = Insets{}

// Tint selects the screen background while the keyboard is up or down.
type Tint int

const (
	// TintBaseline is the normal background.
	TintBaseline Tint = iota
	// TintObscured is applied while the on-screen keyboard is visible.
	TintObscured
)

// String returns the CSS class suffix for the tint.
func (t Tint) String() string {
	if t == TintObscured {
		return "obscured"
	}
	return "baseline"
}
