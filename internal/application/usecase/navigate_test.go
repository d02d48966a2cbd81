package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-mobile/internal/application/port/mocks"
	"github.com/bnema/dumber-mobile/internal/domain/entity"
)

const testHomePage = "https://github.com/NGrani"

func TestGoBack_WithoutHistoryIsNoop(t *testing.T) {
	engine := mocks.NewMockWebEngine(t)
	engine.EXPECT().CanGoBack().Return(false).Once()

	uc := NewNavigateUseCase(testHomePage)
	out, err := uc.GoBack(context.Background(), engine)

	require.NoError(t, err)
	assert.False(t, out.Navigated)
	engine.AssertNotCalled(t, "GoBack", mock.Anything)
}

func TestGoBack_WithHistoryNavigates(t *testing.T) {
	engine := mocks.NewMockWebEngine(t)
	engine.EXPECT().CanGoBack().Return(true).Once()
	engine.EXPECT().GoBack(mock.Anything).Return(nil).Once()

	uc := NewNavigateUseCase(testHomePage)
	out, err := uc.GoBack(context.Background(), engine)

	require.NoError(t, err)
	assert.True(t, out.Navigated)
}

func TestGoForward_Symmetric(t *testing.T) {
	engine := mocks.NewMockWebEngine(t)
	engine.EXPECT().CanGoForward().Return(false).Once()
	engine.EXPECT().CanGoForward().Return(true).Once()
	engine.EXPECT().GoForward(mock.Anything).Return(nil).Once()

	uc := NewNavigateUseCase(testHomePage)

	out, err := uc.GoForward(context.Background(), engine)
	require.NoError(t, err)
	assert.False(t, out.Navigated)

	out, err = uc.GoForward(context.Background(), engine)
	require.NoError(t, err)
	assert.True(t, out.Navigated)
}

func TestGoForward_WrapsEngineError(t *testing.T) {
	engineErr := errors.New("boom")
	engine := mocks.NewMockWebEngine(t)
	engine.EXPECT().CanGoForward().Return(true).Once()
	engine.EXPECT().GoForward(mock.Anything).Return(engineErr).Once()

	uc := NewNavigateUseCase(testHomePage)
	_, err := uc.GoForward(context.Background(), engine)

	assert.ErrorIs(t, err, engineErr)
}

func TestReload_LoadsTextVerbatimAndEnablesGestures(t *testing.T) {
	engine := mocks.NewMockWebEngine(t)
	engine.EXPECT().Load(mock.Anything, "https://Example.com/Page").Return(nil).Once()
	engine.EXPECT().SetBackForwardGestures(true).Once()

	uc := NewNavigateUseCase(testHomePage)
	out, err := uc.Reload(context.Background(), engine, "https://Example.com/Page")

	require.NoError(t, err)
	assert.True(t, out.Navigated)
	assert.Equal(t, entity.Address("https://Example.com/Page"), out.Address)
}

func TestReload_UnparseableTextDoesNothing(t *testing.T) {
	engine := mocks.NewMockWebEngine(t)

	uc := NewNavigateUseCase(testHomePage)
	out, err := uc.Reload(context.Background(), engine, "not parseable")

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrUnparseableAddress)
	engine.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
	engine.AssertNotCalled(t, "SetBackForwardGestures", mock.Anything)
}

func TestLoadHome_UsesLatestHomePage(t *testing.T) {
	engine := mocks.NewMockWebEngine(t)
	engine.EXPECT().Load(mock.Anything, "https://example.org/").Return(nil).Once()
	engine.EXPECT().SetBackForwardGestures(true).Once()

	uc := NewNavigateUseCase(testHomePage)
	uc.SetHomePage("https://example.org/")

	out, err := uc.LoadHome(context.Background(), engine)
	require.NoError(t, err)
	assert.True(t, out.Navigated)
	assert.Equal(t, "https://example.org/", uc.HomePage())
}

func TestAvailability_ReadsEngineFlags(t *testing.T) {
	engine := mocks.NewMockWebEngine(t)
	engine.EXPECT().CanGoBack().Return(true).Once()
	engine.EXPECT().CanGoForward().Return(false).Once()

	uc := NewNavigateUseCase(testHomePage)

	assert.Equal(t, entity.NavigationAvailability{CanGoBack: true}, uc.Availability(engine))
}
