package layout

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Ensure implementations satisfy interfaces at compile time.
var (
	_ Widget         = (*gtkWidget)(nil)
	_ BoxWidget      = (*gtkBox)(nil)
	_ ButtonWidget   = (*gtkButton)(nil)
	_ EntryWidget    = (*gtkEntry)(nil)
	_ ScrolledWidget = (*gtkScrolled)(nil)
	_ WidgetFactory  = (*GtkWidgetFactory)(nil)
)

// gtkWidget wraps a gtk.Widget to implement the Widget interface.
// Concrete wrappers embed it for the shared widget surface.
type gtkWidget struct {
	inner *gtk.Widget
}

func (w *gtkWidget) SetVisible(visible bool)               { w.inner.SetVisible(visible) }
func (w *gtkWidget) IsVisible() bool                       { return w.inner.IsVisible() }
func (w *gtkWidget) GrabFocus() bool                       { return w.inner.GrabFocus() }
func (w *gtkWidget) HasFocus() bool                        { return w.inner.HasFocus() }
func (w *gtkWidget) SetFocusOnClick(focus bool)            { w.inner.SetFocusOnClick(focus) }
func (w *gtkWidget) SetHexpand(expand bool)                { w.inner.SetHExpand(expand) }
func (w *gtkWidget) SetVexpand(expand bool)                { w.inner.SetVExpand(expand) }
func (w *gtkWidget) SetHalign(align Align)                 { w.inner.SetHAlign(align) }
func (w *gtkWidget) SetValign(align Align)                 { w.inner.SetVAlign(align) }
func (w *gtkWidget) SetSizeRequest(width, h int)           { w.inner.SetSizeRequest(width, h) }
func (w *gtkWidget) SetMarginTop(margin int)               { w.inner.SetMarginTop(margin) }
func (w *gtkWidget) SetMarginBottom(margin int)            { w.inner.SetMarginBottom(margin) }
func (w *gtkWidget) SetMarginStart(margin int)             { w.inner.SetMarginStart(margin) }
func (w *gtkWidget) SetMarginEnd(margin int)               { w.inner.SetMarginEnd(margin) }
func (w *gtkWidget) SetOpacity(opacity float64)            { w.inner.SetOpacity(opacity) }
func (w *gtkWidget) AddCssClass(class string)              { w.inner.AddCSSClass(class) }
func (w *gtkWidget) RemoveCssClass(class string)           { w.inner.RemoveCSSClass(class) }
func (w *gtkWidget) HasCssClass(class string) bool         { return w.inner.HasCSSClass(class) }
func (w *gtkWidget) GtkWidget() *gtk.Widget                { return w.inner }
func (w *gtkWidget) SetTooltipText(text string)            { w.inner.SetTooltipText(text) }
func (w *gtkWidget) AddController(c gtk.EventControllerer) { w.inner.AddController(c) }

// gtkBox wraps gtk.Box to implement BoxWidget.
type gtkBox struct {
	gtkWidget
	box *gtk.Box
}

func (b *gtkBox) Append(child Widget)             { b.box.Append(child.GtkWidget()) }
func (b *gtkBox) Remove(child Widget)             { b.box.Remove(child.GtkWidget()) }
func (b *gtkBox) SetHomogeneous(homogeneous bool) { b.box.SetHomogeneous(homogeneous) }
func (b *gtkBox) SetSpacing(spacing int)          { b.box.SetSpacing(spacing) }

// gtkButton wraps gtk.Button to implement ButtonWidget.
type gtkButton struct {
	gtkWidget
	button *gtk.Button
}

func (b *gtkButton) SetIconName(iconName string) { b.button.SetIconName(iconName) }

func (b *gtkButton) ConnectClicked(callback func()) {
	b.button.ConnectClicked(callback)
}

// gtkEntry wraps gtk.Entry to implement EntryWidget.
type gtkEntry struct {
	gtkWidget
	entry *gtk.Entry
}

func (e *gtkEntry) Text() string                   { return e.entry.Text() }
func (e *gtkEntry) SetText(text string)            { e.entry.SetText(text) }
func (e *gtkEntry) SetPlaceholderText(text string) { e.entry.SetPlaceholderText(text) }
func (e *gtkEntry) SelectRegion(start, end int)    { e.entry.SelectRegion(start, end) }

func (e *gtkEntry) SetInputPurpose(purpose gtk.InputPurpose) {
	e.entry.SetInputPurpose(purpose)
}

func (e *gtkEntry) ConnectActivate(callback func()) {
	e.entry.ConnectActivate(callback)
}

// HasFocus reports focus on the entry's inner text widget too, since GTK
// moves keyboard focus to that child.
func (e *gtkEntry) HasFocus() bool {
	return e.entry.HasFocus() || e.entry.IsFocus()
}

func (e *gtkEntry) ConnectFocusChanged(callback func(focused bool)) {
	focus := gtk.NewEventControllerFocus()
	focus.ConnectEnter(func() { callback(true) })
	focus.ConnectLeave(func() { callback(false) })
	e.entry.AddController(focus)
}

// gtkScrolled wraps gtk.ScrolledWindow to implement ScrolledWidget.
type gtkScrolled struct {
	gtkWidget
	scrolled *gtk.ScrolledWindow
}

func (s *gtkScrolled) SetChild(child Widget) {
	if child == nil {
		s.scrolled.SetChild(nil)
		return
	}
	s.scrolled.SetChild(child.GtkWidget())
}

func (s *gtkScrolled) SetPolicy(horizontal, vertical ScrollPolicy) {
	s.scrolled.SetPolicy(horizontal, vertical)
}

// GtkWidgetFactory creates real GTK widgets.
type GtkWidgetFactory struct{}

// NewGtkWidgetFactory creates a new factory for real GTK widgets.
func NewGtkWidgetFactory() *GtkWidgetFactory {
	return &GtkWidgetFactory{}
}

func (f *GtkWidgetFactory) NewBox(orientation Orientation, spacing int) BoxWidget {
	box := gtk.NewBox(orientation, spacing)
	return &gtkBox{gtkWidget: gtkWidget{inner: &box.Widget}, box: box}
}

func (f *GtkWidgetFactory) NewButton() ButtonWidget {
	button := gtk.NewButton()
	return &gtkButton{gtkWidget: gtkWidget{inner: &button.Widget}, button: button}
}

func (f *GtkWidgetFactory) NewEntry() EntryWidget {
	entry := gtk.NewEntry()
	return &gtkEntry{gtkWidget: gtkWidget{inner: &entry.Widget}, entry: entry}
}

func (f *GtkWidgetFactory) NewScrolled() ScrolledWidget {
	scrolled := gtk.NewScrolledWindow()
	return &gtkScrolled{gtkWidget: gtkWidget{inner: &scrolled.Widget}, scrolled: scrolled}
}

func (f *GtkWidgetFactory) WrapWidget(w gtk.Widgetter) Widget {
	if w == nil {
		return nil
	}
	return &gtkWidget{inner: gtk.BaseWidget(w)}
}
