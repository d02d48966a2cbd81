package layout

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Screen geometry, in pixels.
const (
	ControlBarLeading     = 20
	FieldTrailing         = 20
	BottomMargin          = 5
	WebViewGap            = 5
	FieldHeight           = 50
	ControlBarWidth       = 145
	ControlBarHeight      = 49
	ControlToFieldSpacing = 2
	// WebViewHeightOffset is the room left below the web view for the control row.
	WebViewHeightOffset = 60
)

// CSS classes applied to screen widgets. The theme package styles them.
const (
	ClassScroller      = "browser-scroller"
	ClassContent       = "browser-content"
	ClassControls      = "browser-controls"
	ClassControlButton = "browser-control"
	ClassAddressField  = "address-field"
)

// Icon names for the navigation controls.
const (
	IconBack    = "go-previous-symbolic"
	IconReload  = "view-refresh-symbolic"
	IconForward = "go-next-symbolic"
)

// ScreenOptions tunes the built screen.
type ScreenOptions struct {
	Placeholder string
}

// Screen holds the widget tree of the single browser screen.
//
//	Scroller
//	└── Content (vertical)
//	    ├── WebView
//	    └── row (horizontal)
//	        ├── Controls: Back | Reload | Forward
//	        └── Address
type Screen struct {
	Scroller ScrolledWidget
	Content  BoxWidget
	WebView  Widget
	Controls BoxWidget
	Back     ButtonWidget
	Reload   ButtonWidget
	Forward  ButtonWidget
	Address  EntryWidget
}

// BuildScreen assembles the screen around an already created web view widget.
func BuildScreen(factory WidgetFactory, webView Widget, opts ScreenOptions) *Screen {
	s := &Screen{WebView: webView}

	s.Scroller = factory.NewScrolled()
	s.Scroller.SetPolicy(ScrollNever, ScrollAutomatic)
	s.Scroller.SetHexpand(true)
	s.Scroller.SetVexpand(true)
	s.Scroller.AddCssClass(ClassScroller)

	s.Content = factory.NewBox(OrientationVertical, 0)
	s.Content.SetHexpand(true)
	s.Content.AddCssClass(ClassContent)

	webView.SetHexpand(true)
	webView.SetVexpand(true)
	webView.SetMarginBottom(WebViewGap)
	s.Content.Append(webView)

	row := factory.NewBox(OrientationHorizontal, ControlToFieldSpacing)
	row.SetMarginStart(ControlBarLeading)
	row.SetMarginEnd(FieldTrailing)
	row.SetMarginBottom(BottomMargin)
	row.SetValign(AlignEnd)

	s.Controls = factory.NewBox(OrientationHorizontal, 0)
	s.Controls.SetHomogeneous(true)
	s.Controls.SetSizeRequest(ControlBarWidth, ControlBarHeight)
	s.Controls.SetValign(AlignCenter)
	s.Controls.AddCssClass(ClassControls)

	s.Back = newControlButton(factory, IconBack, "Back")
	s.Reload = newControlButton(factory, IconReload, "Reload")
	s.Forward = newControlButton(factory, IconForward, "Forward")
	s.Controls.Append(s.Back)
	s.Controls.Append(s.Reload)
	s.Controls.Append(s.Forward)
	row.Append(s.Controls)

	s.Address = factory.NewEntry()
	s.Address.SetHexpand(true)
	s.Address.SetSizeRequest(-1, FieldHeight)
	s.Address.SetInputPurpose(gtk.InputPurposeURL)
	s.Address.AddCssClass(ClassAddressField)
	if opts.Placeholder != "" {
		s.Address.SetPlaceholderText(opts.Placeholder)
	}
	row.Append(s.Address)

	s.Content.Append(row)
	s.Scroller.SetChild(s.Content)

	return s
}

func newControlButton(factory WidgetFactory, icon, tooltip string) ButtonWidget {
	button := factory.NewButton()
	button.SetIconName(icon)
	button.SetTooltipText(tooltip)
	button.SetFocusOnClick(false)
	button.AddCssClass(ClassControlButton)
	return button
}

// WebViewHeight returns the web view height for a viewport height.
// Never negative.
func WebViewHeight(viewport int) int {
	return max(viewport-WebViewHeightOffset, 0)
}

// FitViewport sizes the web view for the current viewport height.
func (s *Screen) FitViewport(viewport int) {
	s.WebView.SetSizeRequest(-1, WebViewHeight(viewport))
}
