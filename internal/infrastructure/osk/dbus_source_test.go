package osk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/dumber-mobile/internal/application/port/mocks"
	"github.com/bnema/dumber-mobile/internal/domain/entity"
	mock_osk "github.com/bnema/dumber-mobile/internal/infrastructure/osk/mocks"
)

// inlineThread runs posted work immediately on the calling goroutine.
func inlineThread(t *testing.T) *mocks.MockMainThread {
	t.Helper()
	thread := mocks.NewMockMainThread(t)
	thread.EXPECT().Post(mock.Anything).Run(func(fn func()) { fn() }).Maybe()
	return thread
}

func startDBusSource(t *testing.T, bus *mock_osk.MockBus, initiallyVisible bool) (*DBusSource, chan<- *dbus.Signal) {
	t.Helper()

	var signals chan<- *dbus.Signal
	bus.EXPECT().Visible().Return(initiallyVisible, nil)
	bus.EXPECT().Watch(gomock.Any()).DoAndReturn(func(ch chan<- *dbus.Signal) error {
		signals = ch
		return nil
	})

	src, err := NewDBusSource(context.Background(), bus, inlineThread(t), 300)
	require.NoError(t, err)
	require.NotNil(t, signals)
	return src, signals
}

func expectClose(bus *mock_osk.MockBus) {
	bus.EXPECT().Unwatch(gomock.Any())
	bus.EXPECT().Close().Return(nil)
}

func receive(t *testing.T, events <-chan entity.KeyboardEvent) entity.KeyboardEvent {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for keyboard event")
		return entity.KeyboardEvent{}
	}
}

func TestDBusSource_EmitsShowAndHide(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock_osk.NewMockBus(ctrl)
	src, signals := startDBusSource(t, bus, false)

	events := make(chan entity.KeyboardEvent, 4)
	_, err := src.Subscribe(func(ev entity.KeyboardEvent) { events <- ev })
	require.NoError(t, err)

	signals <- visibleSignal(true)
	assert.Equal(t, entity.KeyboardEvent{Kind: entity.KeyboardWillShow, Height: 300}, receive(t, events))

	signals <- visibleSignal(false)
	assert.Equal(t, entity.KeyboardEvent{Kind: entity.KeyboardWillHide}, receive(t, events))

	expectClose(bus)
	require.NoError(t, src.Close())
}

func TestDBusSource_DropsRepeatedState(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock_osk.NewMockBus(ctrl)
	src, signals := startDBusSource(t, bus, true)

	events := make(chan entity.KeyboardEvent, 4)
	_, err := src.Subscribe(func(ev entity.KeyboardEvent) { events <- ev })
	require.NoError(t, err)

	// Already visible at start, so only the hide gets through.
	signals <- visibleSignal(true)
	signals <- visibleSignal(false)
	assert.Equal(t, entity.KeyboardWillHide, receive(t, events).Kind)

	expectClose(bus)
	require.NoError(t, src.Close())
	assert.Empty(t, events)
}

func TestDBusSource_SetHeightAppliesToLaterShows(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock_osk.NewMockBus(ctrl)
	src, signals := startDBusSource(t, bus, false)

	events := make(chan entity.KeyboardEvent, 4)
	_, err := src.Subscribe(func(ev entity.KeyboardEvent) { events <- ev })
	require.NoError(t, err)

	src.SetHeight(420)
	signals <- visibleSignal(true)
	assert.Equal(t, 420, receive(t, events).Height)

	expectClose(bus)
	require.NoError(t, src.Close())
}

func TestDBusSource_UnsubscribedHandlerIsNotCalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock_osk.NewMockBus(ctrl)
	src, signals := startDBusSource(t, bus, false)

	dropped := make(chan entity.KeyboardEvent, 4)
	kept := make(chan entity.KeyboardEvent, 4)
	sub, err := src.Subscribe(func(ev entity.KeyboardEvent) { dropped <- ev })
	require.NoError(t, err)
	_, err = src.Subscribe(func(ev entity.KeyboardEvent) { kept <- ev })
	require.NoError(t, err)

	sub.Unsubscribe()
	sub.Unsubscribe()

	signals <- visibleSignal(true)
	receive(t, kept)
	assert.Empty(t, dropped)

	expectClose(bus)
	require.NoError(t, src.Close())
}

func TestDBusSource_CloseIsIdempotentAndRejectsSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock_osk.NewMockBus(ctrl)
	src, _ := startDBusSource(t, bus, false)

	expectClose(bus)
	require.NoError(t, src.Close())
	require.NoError(t, src.Close())

	_, err := src.Subscribe(func(entity.KeyboardEvent) {})
	assert.ErrorIs(t, err, ErrSourceClosed)
}

func TestNewDBusSource_ServiceUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock_osk.NewMockBus(ctrl)
	bus.EXPECT().Visible().Return(false, errors.New("no such name"))

	_, err := NewDBusSource(context.Background(), bus, mocks.NewMockMainThread(t), 300)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestNewDBusSource_WatchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock_osk.NewMockBus(ctrl)
	bus.EXPECT().Visible().Return(false, nil)
	bus.EXPECT().Watch(gomock.Any()).Return(errors.New("match rejected"))

	_, err := NewDBusSource(context.Background(), bus, mocks.NewMockMainThread(t), 300)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "match rejected")
}
