package layout_test

import (
	"testing"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/dumber-mobile/internal/ui/layout"
	"github.com/bnema/dumber-mobile/internal/ui/layout/mocks"
)

type screenMocks struct {
	factory  *mocks.MockWidgetFactory
	scroller *mocks.MockScrolledWidget
	content  *mocks.MockBoxWidget
	row      *mocks.MockBoxWidget
	controls *mocks.MockBoxWidget
	back     *mocks.MockButtonWidget
	reload   *mocks.MockButtonWidget
	forward  *mocks.MockButtonWidget
	entry    *mocks.MockEntryWidget
	webView  *mocks.MockWidget
}

func expectControlButton(button *mocks.MockButtonWidget, icon, tooltip string) {
	button.EXPECT().SetIconName(icon).Once()
	button.EXPECT().SetTooltipText(tooltip).Once()
	button.EXPECT().SetFocusOnClick(false).Once()
	button.EXPECT().AddCssClass(layout.ClassControlButton).Once()
}

// setupScreenMocks wires every widget BuildScreen creates.
func setupScreenMocks(t *testing.T, placeholder string) *screenMocks {
	m := &screenMocks{
		factory:  mocks.NewMockWidgetFactory(t),
		scroller: mocks.NewMockScrolledWidget(t),
		content:  mocks.NewMockBoxWidget(t),
		row:      mocks.NewMockBoxWidget(t),
		controls: mocks.NewMockBoxWidget(t),
		back:     mocks.NewMockButtonWidget(t),
		reload:   mocks.NewMockButtonWidget(t),
		forward:  mocks.NewMockButtonWidget(t),
		entry:    mocks.NewMockEntryWidget(t),
		webView:  mocks.NewMockWidget(t),
	}

	m.factory.EXPECT().NewScrolled().Return(m.scroller).Once()
	m.scroller.EXPECT().SetPolicy(layout.ScrollNever, layout.ScrollAutomatic).Once()
	m.scroller.EXPECT().SetHexpand(true).Once()
	m.scroller.EXPECT().SetVexpand(true).Once()
	m.scroller.EXPECT().AddCssClass(layout.ClassScroller).Once()

	m.factory.EXPECT().NewBox(layout.OrientationVertical, 0).Return(m.content).Once()
	m.content.EXPECT().SetHexpand(true).Once()
	m.content.EXPECT().AddCssClass(layout.ClassContent).Once()

	m.webView.EXPECT().SetHexpand(true).Once()
	m.webView.EXPECT().SetVexpand(true).Once()
	m.webView.EXPECT().SetMarginBottom(layout.WebViewGap).Once()
	m.content.EXPECT().Append(m.webView).Once()

	m.factory.EXPECT().NewBox(layout.OrientationHorizontal, layout.ControlToFieldSpacing).Return(m.row).Once()
	m.row.EXPECT().SetMarginStart(layout.ControlBarLeading).Once()
	m.row.EXPECT().SetMarginEnd(layout.FieldTrailing).Once()
	m.row.EXPECT().SetMarginBottom(layout.BottomMargin).Once()
	m.row.EXPECT().SetValign(layout.AlignEnd).Once()

	m.factory.EXPECT().NewBox(layout.OrientationHorizontal, 0).Return(m.controls).Once()
	m.controls.EXPECT().SetHomogeneous(true).Once()
	m.controls.EXPECT().SetSizeRequest(layout.ControlBarWidth, layout.ControlBarHeight).Once()
	m.controls.EXPECT().SetValign(layout.AlignCenter).Once()
	m.controls.EXPECT().AddCssClass(layout.ClassControls).Once()

	m.factory.EXPECT().NewButton().Return(m.back).Once()
	m.factory.EXPECT().NewButton().Return(m.reload).Once()
	m.factory.EXPECT().NewButton().Return(m.forward).Once()
	expectControlButton(m.back, layout.IconBack, "Back")
	expectControlButton(m.reload, layout.IconReload, "Reload")
	expectControlButton(m.forward, layout.IconForward, "Forward")
	m.controls.EXPECT().Append(m.back).Once()
	m.controls.EXPECT().Append(m.reload).Once()
	m.controls.EXPECT().Append(m.forward).Once()
	m.row.EXPECT().Append(m.controls).Once()

	m.factory.EXPECT().NewEntry().Return(m.entry).Once()
	m.entry.EXPECT().SetHexpand(true).Once()
	m.entry.EXPECT().SetSizeRequest(-1, layout.FieldHeight).Once()
	m.entry.EXPECT().SetInputPurpose(gtk.InputPurposeURL).Once()
	m.entry.EXPECT().AddCssClass(layout.ClassAddressField).Once()
	if placeholder != "" {
		m.entry.EXPECT().SetPlaceholderText(placeholder).Once()
	}
	m.row.EXPECT().Append(m.entry).Once()

	m.content.EXPECT().Append(m.row).Once()
	m.scroller.EXPECT().SetChild(m.content).Once()

	return m
}

func TestBuildScreen_AssemblesHierarchy(t *testing.T) {
	m := setupScreenMocks(t, "Enter website address")

	screen := layout.BuildScreen(m.factory, m.webView, layout.ScreenOptions{Placeholder: "Enter website address"})

	assert.Same(t, m.scroller, screen.Scroller)
	assert.Same(t, m.content, screen.Content)
	assert.Same(t, m.webView, screen.WebView)
	assert.Same(t, m.controls, screen.Controls)
	assert.Same(t, m.back, screen.Back)
	assert.Same(t, m.reload, screen.Reload)
	assert.Same(t, m.forward, screen.Forward)
	assert.Same(t, m.entry, screen.Address)
}

func TestBuildScreen_WithoutPlaceholder(t *testing.T) {
	m := setupScreenMocks(t, "")

	layout.BuildScreen(m.factory, m.webView, layout.ScreenOptions{})

	m.entry.AssertNotCalled(t, "SetPlaceholderText", mock.Anything)
}

func TestWebViewHeight(t *testing.T) {
	assert.Equal(t, 740, layout.WebViewHeight(800))
	assert.Equal(t, 0, layout.WebViewHeight(60))
	assert.Equal(t, 0, layout.WebViewHeight(10))
}

func TestScreen_FitViewport(t *testing.T) {
	webView := mocks.NewMockWidget(t)
	webView.EXPECT().SetSizeRequest(-1, 580).Once()

	screen := &layout.Screen{WebView: webView}
	screen.FitViewport(640)
}
