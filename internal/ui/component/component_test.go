package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/dumber-mobile/internal/domain/entity"
	"github.com/bnema/dumber-mobile/internal/ui/layout/mocks"
)

// manualTimer records scheduled work and runs it on demand.
type manualTimer struct {
	pending   []func()
	durations []uint
	cancelled int
}

func (m *manualTimer) schedule(ms uint, fn func()) func() {
	idx := len(m.pending)
	m.pending = append(m.pending, fn)
	m.durations = append(m.durations, ms)
	return func() {
		m.pending[idx] = nil
		m.cancelled++
	}
}

func (m *manualTimer) fire(t *testing.T, idx int) {
	t.Helper()
	if fn := m.pending[idx]; fn != nil {
		fn()
	}
}

func TestPulse_DimsThenRestores(t *testing.T) {
	widget := mocks.NewMockWidget(t)
	timer := &manualTimer{}
	p := NewPulse(widget, 100, timer.schedule)

	widget.EXPECT().AddCssClass(ClassPulsing).Return().Once()
	p.Pulse()

	assert.Equal(t, []uint{100}, timer.durations)

	widget.EXPECT().RemoveCssClass(ClassPulsing).Return().Once()
	timer.fire(t, 0)
}

func TestPulse_RestartCancelsPendingRestore(t *testing.T) {
	widget := mocks.NewMockWidget(t)
	timer := &manualTimer{}
	p := NewPulse(widget, 100, timer.schedule)

	widget.EXPECT().AddCssClass(ClassPulsing).Return().Twice()
	p.Pulse()
	p.Pulse()

	assert.Equal(t, 1, timer.cancelled)
	assert.Nil(t, timer.pending[0])

	widget.EXPECT().RemoveCssClass(ClassPulsing).Return().Once()
	timer.fire(t, 1)
}

func TestPulse_SetHold(t *testing.T) {
	widget := mocks.NewMockWidget(t)
	timer := &manualTimer{}
	p := NewPulse(widget, 100, timer.schedule)
	p.SetHold(250)

	widget.EXPECT().AddCssClass(ClassPulsing).Return().Once()
	p.Pulse()

	assert.Equal(t, []uint{250}, timer.durations)
}

func TestAddressEntry_SelectAllSelectsWholeText(t *testing.T) {
	entry := mocks.NewMockEntryWidget(t)
	a := NewAddressEntry(entry, mocks.NewMockWidget(t))

	entry.EXPECT().SelectRegion(0, -1).Return().Once()
	a.SelectAll()
}

func TestAddressEntry_TextRoundTrip(t *testing.T) {
	entry := mocks.NewMockEntryWidget(t)
	a := NewAddressEntry(entry, mocks.NewMockWidget(t))

	entry.EXPECT().SetText("https://example.com/").Return().Once()
	entry.EXPECT().Text().Return("https://example.com/").Once()

	a.SetText("https://example.com/")
	assert.Equal(t, "https://example.com/", a.Text())
}

func TestAddressEntry_ReleaseFocusMovesFocusToSink(t *testing.T) {
	entry := mocks.NewMockEntryWidget(t)
	sink := mocks.NewMockWidget(t)
	a := NewAddressEntry(entry, sink)

	entry.EXPECT().HasFocus().Return(true).Once()
	sink.EXPECT().GrabFocus().Return(true).Once()
	a.ReleaseFocus()
}

func TestAddressEntry_ReleaseFocusWithoutFocusIsNoop(t *testing.T) {
	entry := mocks.NewMockEntryWidget(t)
	sink := mocks.NewMockWidget(t)
	a := NewAddressEntry(entry, sink)

	entry.EXPECT().HasFocus().Return(false).Once()
	a.ReleaseFocus()

	sink.AssertNotCalled(t, "GrabFocus")
}

func TestAddressEntry_ForwardsSignals(t *testing.T) {
	entry := mocks.NewMockEntryWidget(t)
	a := NewAddressEntry(entry, mocks.NewMockWidget(t))

	entry.EXPECT().ConnectFocusChanged(mock.Anything).Return().Once()
	entry.EXPECT().ConnectActivate(mock.Anything).Return().Once()

	a.OnFocusChanged(func(bool) {})
	a.OnActivate(func() {})
}

func TestInsetSurface_ShowAndHide(t *testing.T) {
	scroller := mocks.NewMockScrolledWidget(t)
	content := mocks.NewMockWidget(t)

	scroller.EXPECT().AddCssClass(ClassTintBaseline).Return().Once()
	s := NewInsetSurface(scroller, content)
	assert.Equal(t, entity.ZeroInsets, s.Insets())
	assert.Equal(t, entity.TintBaseline, s.Tint())

	content.EXPECT().SetMarginBottom(300).Return().Once()
	scroller.EXPECT().RemoveCssClass(ClassTintBaseline).Return().Once()
	scroller.EXPECT().AddCssClass(ClassTintObscured).Return().Once()
	s.SetBottomInset(300)
	s.SetTint(entity.TintObscured)
	assert.Equal(t, entity.Insets{Bottom: 300}, s.Insets())

	content.EXPECT().SetMarginBottom(0).Return().Once()
	scroller.EXPECT().RemoveCssClass(ClassTintObscured).Return().Once()
	scroller.EXPECT().AddCssClass(ClassTintBaseline).Return().Once()
	s.SetBottomInset(0)
	s.SetTint(entity.TintBaseline)
	assert.Equal(t, entity.ZeroInsets, s.Insets())
}

func TestInsetSurface_UnchangedValuesTouchNothing(t *testing.T) {
	scroller := mocks.NewMockScrolledWidget(t)
	content := mocks.NewMockWidget(t)

	scroller.EXPECT().AddCssClass(ClassTintBaseline).Return().Once()
	s := NewInsetSurface(scroller, content)

	s.SetBottomInset(0)
	s.SetBottomInset(-20)
	s.SetTint(entity.TintBaseline)

	content.AssertNotCalled(t, "SetMarginBottom", mock.Anything)
}

func TestTintClass(t *testing.T) {
	assert.Equal(t, ClassTintObscured, TintClass(entity.TintObscured))
	assert.Equal(t, ClassTintBaseline, TintClass(entity.TintBaseline))
}
