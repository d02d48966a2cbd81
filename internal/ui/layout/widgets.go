// Package layout provides GTK widget abstractions and builds the browser screen.
// It defines interfaces that wrap GTK types, enabling unit testing without GTK runtime.
package layout

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Orientation represents the orientation for layout widgets.
type Orientation = gtk.Orientation

// Orientation constants matching GTK values.
const (
	OrientationHorizontal = gtk.OrientationHorizontal
	OrientationVertical   = gtk.OrientationVertical
)

// Align mirrors gtk.Align.
type Align = gtk.Align

// Align constants matching GTK values.
const (
	AlignFill   = gtk.AlignFill
	AlignStart  = gtk.AlignStart
	AlignEnd    = gtk.AlignEnd
	AlignCenter = gtk.AlignCenter
)

// ScrollPolicy mirrors gtk.PolicyType.
type ScrollPolicy = gtk.PolicyType

// ScrollPolicy constants matching GTK values.
const (
	ScrollAutomatic = gtk.PolicyAutomatic
	ScrollNever     = gtk.PolicyNever
)

// Widget is the base interface that all GTK widgets implement.
type Widget interface {
	// Visibility
	SetVisible(visible bool)
	IsVisible() bool

	// Focus
	GrabFocus() bool
	HasFocus() bool
	SetFocusOnClick(focusOnClick bool)

	// Layout
	SetHexpand(expand bool)
	SetVexpand(expand bool)
	SetHalign(align Align)
	SetValign(align Align)
	SetSizeRequest(width, height int)
	SetMarginTop(margin int)
	SetMarginBottom(margin int)
	SetMarginStart(margin int)
	SetMarginEnd(margin int)

	// Appearance
	SetOpacity(opacity float64)
	AddCssClass(cssClass string)
	RemoveCssClass(cssClass string)
	HasCssClass(cssClass string) bool

	// GTK interop - returns the underlying GTK widget for embedding
	GtkWidget() *gtk.Widget

	// AddController adds an event controller to the widget
	AddController(controller gtk.EventControllerer)
}

// BoxWidget wraps gtk.Box for linear layouts.
type BoxWidget interface {
	Widget

	Append(child Widget)
	Remove(child Widget)
	SetHomogeneous(homogeneous bool)
	SetSpacing(spacing int)
}

// ButtonWidget wraps gtk.Button for clickable elements.
type ButtonWidget interface {
	Widget

	SetIconName(iconName string)
	SetTooltipText(text string)

	// Connect click handler
	ConnectClicked(callback func())
}

// EntryWidget wraps gtk.Entry for the address field.
type EntryWidget interface {
	Widget

	Text() string
	SetText(text string)
	SetPlaceholderText(text string)
	SelectRegion(start, end int)
	SetInputPurpose(purpose gtk.InputPurpose)

	// ConnectActivate fires when the user presses Enter.
	ConnectActivate(callback func())
	// ConnectFocusChanged fires with true on focus enter and false on focus leave.
	ConnectFocusChanged(callback func(focused bool))
}

// ScrolledWidget wraps gtk.ScrolledWindow.
type ScrolledWidget interface {
	Widget

	SetChild(child Widget)
	SetPolicy(horizontal, vertical ScrollPolicy)
}

// WidgetFactory creates widget instances.
// This abstraction allows tests to inject mock factories.
type WidgetFactory interface {
	NewBox(orientation Orientation, spacing int) BoxWidget
	NewButton() ButtonWidget
	NewEntry() EntryWidget
	NewScrolled() ScrolledWidget

	// Wrap existing GTK widget
	WrapWidget(w gtk.Widgetter) Widget
}
