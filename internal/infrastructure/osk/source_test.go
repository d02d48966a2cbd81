package osk

import (
	"context"
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/dumber-mobile/internal/application/port/mocks"
	"github.com/bnema/dumber-mobile/internal/domain/entity"
	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	mock_osk "github.com/bnema/dumber-mobile/internal/infrastructure/osk/mocks"
)

func TestFocusSource_FocusDrivesShowAndHide(t *testing.T) {
	src := NewFocusSource(300)

	var got []entity.KeyboardEvent
	sub, err := src.Subscribe(func(ev entity.KeyboardEvent) { got = append(got, ev) })
	require.NoError(t, err)

	src.FocusChanged(true)
	src.FocusChanged(true)
	src.FocusChanged(false)

	assert.Equal(t, []entity.KeyboardEvent{
		{Kind: entity.KeyboardWillShow, Height: 300},
		{Kind: entity.KeyboardWillHide},
	}, got)

	sub.Unsubscribe()
	src.FocusChanged(true)
	assert.Len(t, got, 2)
}

func TestFocusSource_RejectsNilHandlerAndClosedSubscribe(t *testing.T) {
	src := NewFocusSource(300)

	_, err := src.Subscribe(nil)
	require.Error(t, err)

	require.NoError(t, src.Close())
	_, err = src.Subscribe(func(entity.KeyboardEvent) {})
	assert.ErrorIs(t, err, ErrSourceClosed)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("auto without bus tracks focus", func(t *testing.T) {
		src, err := Open(ctx, config.KeyboardConfig{Source: SourceAuto, Height: 300}, nil, mocks.NewMockMainThread(t))
		require.NoError(t, err)
		assert.Equal(t, SourceFocus, src.Name())
	})

	t.Run("auto with dead service falls back and closes bus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bus := mock_osk.NewMockBus(ctrl)
		bus.EXPECT().Visible().Return(false, errors.New("no owner"))
		bus.EXPECT().Close().Return(nil)

		src, err := Open(ctx, config.KeyboardConfig{Source: SourceAuto, Height: 300}, bus, mocks.NewMockMainThread(t))
		require.NoError(t, err)
		assert.Equal(t, SourceFocus, src.Name())
	})

	t.Run("auto with live service uses dbus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bus := mock_osk.NewMockBus(ctrl)
		bus.EXPECT().Visible().Return(false, nil)
		bus.EXPECT().Watch(gomock.Any()).DoAndReturn(func(chan<- *dbus.Signal) error { return nil })

		src, err := Open(ctx, config.KeyboardConfig{Source: SourceAuto, Height: 300}, bus, mocks.NewMockMainThread(t))
		require.NoError(t, err)
		assert.Equal(t, SourceDBus, src.Name())

		expectClose(bus)
		require.NoError(t, src.Close())
	})

	t.Run("dbus without bus fails", func(t *testing.T) {
		_, err := Open(ctx, config.KeyboardConfig{Source: SourceDBus}, nil, mocks.NewMockMainThread(t))
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})

	t.Run("focus closes unused bus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bus := mock_osk.NewMockBus(ctrl)
		bus.EXPECT().Close().Return(nil)

		src, err := Open(ctx, config.KeyboardConfig{Source: SourceFocus, Height: 300}, bus, mocks.NewMockMainThread(t))
		require.NoError(t, err)
		assert.Equal(t, SourceFocus, src.Name())
	})

	t.Run("none never emits", func(t *testing.T) {
		src, err := Open(ctx, config.KeyboardConfig{Source: SourceNone}, nil, mocks.NewMockMainThread(t))
		require.NoError(t, err)
		assert.Equal(t, SourceNone, src.Name())

		called := false
		sub, err := src.Subscribe(func(entity.KeyboardEvent) { called = true })
		require.NoError(t, err)
		src.FocusChanged(true)
		sub.Unsubscribe()
		assert.False(t, called)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := Open(ctx, config.KeyboardConfig{Source: "telepathy"}, nil, mocks.NewMockMainThread(t))
		assert.ErrorIs(t, err, ErrUnknownSource)
	})
}
