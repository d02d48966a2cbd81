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

func newAddressBar(t *testing.T) (*AddressBarController, *mocks.MockAddressField, *mocks.MockWebEngine) {
	field := mocks.NewMockAddressField(t)
	engine := mocks.NewMockWebEngine(t)
	c := NewAddressBarController(context.Background(), field, engine, usecase.NewSubmitAddressUseCase())
	return c, field, engine
}

func TestAddressBar_SubmitLoadsNormalizedAddressAndReleasesFocus(t *testing.T) {
	c, field, engine := newAddressBar(t)
	engine.EXPECT().Load(mock.Anything, "https:example.com").Return(nil).Once()
	field.EXPECT().ReleaseFocus().Once()

	require.NoError(t, c.Submit(context.Background(), "example.com"))
}

func TestAddressBar_UnparseableSubmissionKeepsTextAndFocus(t *testing.T) {
	c, field, engine := newAddressBar(t)

	err := c.Submit(context.Background(), "not a url")

	assert.ErrorIs(t, err, usecase.ErrUnparseableAddress)
	field.AssertNotCalled(t, "ReleaseFocus")
	field.AssertNotCalled(t, "SetText", mock.Anything)
	engine.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestAddressBar_EngineFailureKeepsFocus(t *testing.T) {
	c, field, engine := newAddressBar(t)
	engine.EXPECT().Load(mock.Anything, "https:example.com").Return(errors.New("gone")).Once()

	err := c.Submit(context.Background(), "example.com")

	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrUnparseableAddress)
	field.AssertNotCalled(t, "ReleaseFocus")
}

func TestAddressBar_ActivateSubmitsFieldText(t *testing.T) {
	c, field, engine := newAddressBar(t)
	field.EXPECT().Text().Return("Go.dev").Once()
	engine.EXPECT().Load(mock.Anything, "https:go.dev").Return(nil).Once()
	field.EXPECT().ReleaseFocus().Once()

	require.NoError(t, c.Activate(context.Background()))
}

func TestAddressBar_BeginEditingSelectsAll(t *testing.T) {
	c, field, _ := newAddressBar(t)
	field.EXPECT().SelectAll().Once()

	c.BeginEditing()
}

func TestAddressBar_NavigationFinishedMirrorsResolvedAddress(t *testing.T) {
	c, field, _ := newAddressBar(t)
	field.EXPECT().SetText("https://example.com/").Once()

	c.NavigationFinished(context.Background(), "https://example.com/")
}

func TestAddressBar_BindRoutesEngineCallback(t *testing.T) {
	c, field, engine := newAddressBar(t)

	var handler func(string)
	engine.EXPECT().OnNavigationFinished(mock.Anything).Run(func(h func(string)) {
		handler = h
	}).Once()
	field.EXPECT().SetText("https://example.com/").Once()

	c.Bind(context.Background())
	require.NotNil(t, handler)
	handler("https://example.com/")
}
