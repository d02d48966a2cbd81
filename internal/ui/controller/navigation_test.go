package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-mobile/internal/application/port/mocks"
	"github.com/bnema/dumber-mobile/internal/application/usecase"
)

type navFixture struct {
	ctrl    *NavigationController
	engine  *mocks.MockWebEngine
	field   *mocks.MockAddressField
	back    *mocks.MockPulsable
	reload  *mocks.MockPulsable
	forward *mocks.MockPulsable
}

func newNavFixture(t *testing.T) *navFixture {
	f := &navFixture{
		engine:  mocks.NewMockWebEngine(t),
		field:   mocks.NewMockAddressField(t),
		back:    mocks.NewMockPulsable(t),
		reload:  mocks.NewMockPulsable(t),
		forward: mocks.NewMockPulsable(t),
	}
	f.ctrl = NewNavigationController(
		context.Background(),
		f.engine,
		f.field,
		NavigationControls{Back: f.back, Reload: f.reload, Forward: f.forward},
		usecase.NewNavigateUseCase("https://github.com/NGrani"),
	)
	return f
}

func TestNavigation_GoBackWithoutHistoryOnlyPulses(t *testing.T) {
	f := newNavFixture(t)
	f.back.EXPECT().Pulse().Once()
	f.engine.EXPECT().CanGoBack().Return(false).Once()

	require.NoError(t, f.ctrl.GoBack(context.Background()))
	f.engine.AssertNotCalled(t, "GoBack", mock.Anything)
}

func TestNavigation_GoBackWithHistory(t *testing.T) {
	f := newNavFixture(t)
	f.back.EXPECT().Pulse().Once()
	f.engine.EXPECT().CanGoBack().Return(true).Once()
	f.engine.EXPECT().GoBack(mock.Anything).Return(nil).Once()

	require.NoError(t, f.ctrl.GoBack(context.Background()))
}

func TestNavigation_GoForwardPulsesForwardControl(t *testing.T) {
	f := newNavFixture(t)
	f.forward.EXPECT().Pulse().Once()
	f.engine.EXPECT().CanGoForward().Return(true).Once()
	f.engine.EXPECT().GoForward(mock.Anything).Return(nil).Once()

	require.NoError(t, f.ctrl.GoForward(context.Background()))
	f.back.AssertNotCalled(t, "Pulse")
}

func TestNavigation_GoForwardReportsEngineError(t *testing.T) {
	f := newNavFixture(t)
	f.forward.EXPECT().Pulse().Once()
	f.engine.EXPECT().CanGoForward().Return(true).Once()
	f.engine.EXPECT().GoForward(mock.Anything).Return(errors.New("boom")).Once()

	assert.Error(t, f.ctrl.GoForward(context.Background()))
}

func TestNavigation_ReloadLoadsFieldTextVerbatim(t *testing.T) {
	f := newNavFixture(t)
	f.reload.EXPECT().Pulse().Once()
	f.field.EXPECT().Text().Return("https:example.com").Once()
	f.engine.EXPECT().Load(mock.Anything, "https:example.com").Return(nil).Once()
	f.engine.EXPECT().SetBackForwardGestures(true).Once()

	require.NoError(t, f.ctrl.Reload(context.Background()))
}

func TestNavigation_ReloadUnparseableOnlyPulses(t *testing.T) {
	f := newNavFixture(t)
	f.reload.EXPECT().Pulse().Once()
	f.field.EXPECT().Text().Return("").Once()

	err := f.ctrl.Reload(context.Background())

	assert.ErrorIs(t, err, usecase.ErrUnparseableAddress)
	f.engine.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestNavigation_LoadHome(t *testing.T) {
	f := newNavFixture(t)
	f.engine.EXPECT().Load(mock.Anything, "https://github.com/NGrani").Return(nil).Once()
	f.engine.EXPECT().SetBackForwardGestures(true).Once()

	require.NoError(t, f.ctrl.LoadHome(context.Background()))
}
