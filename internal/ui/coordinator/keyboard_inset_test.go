package coordinator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/application/port/mocks"
	"github.com/bnema/dumber-mobile/internal/domain/entity"
)

func TestKeyboardInset_ShowThenHide(t *testing.T) {
	events := mocks.NewMockKeyboardEvents(t)
	surface := mocks.NewMockInsetSurface(t)
	sub := mocks.NewMockSubscription(t)

	var handler port.KeyboardHandler
	events.EXPECT().Subscribe(mock.Anything).Run(func(h port.KeyboardHandler) {
		handler = h
	}).Return(sub, nil).Once()

	surface.EXPECT().SetBottomInset(300).Once()
	surface.EXPECT().SetTint(entity.TintObscured).Once()
	surface.EXPECT().SetBottomInset(0).Once()
	surface.EXPECT().SetTint(entity.TintBaseline).Once()
	sub.EXPECT().Unsubscribe().Once()

	c := NewKeyboardInsetCoordinator(context.Background(), events, surface)
	release := c.Attach(context.Background())
	require.NotNil(t, handler)

	handler(entity.KeyboardEvent{Kind: entity.KeyboardWillShow, Height: 300})
	handler(entity.KeyboardEvent{Kind: entity.KeyboardWillHide})

	release()
}

func TestKeyboardInset_NegativeHeightClampsToZero(t *testing.T) {
	surface := mocks.NewMockInsetSurface(t)
	surface.EXPECT().SetBottomInset(0).Once()
	surface.EXPECT().SetTint(entity.TintObscured).Once()

	c := &KeyboardInsetCoordinator{surface: surface}
	c.Handle(entity.KeyboardEvent{Kind: entity.KeyboardWillShow, Height: -12})
}

func TestKeyboardInset_ReleaseIsIdempotent(t *testing.T) {
	events := mocks.NewMockKeyboardEvents(t)
	surface := mocks.NewMockInsetSurface(t)
	sub := mocks.NewMockSubscription(t)
	events.EXPECT().Subscribe(mock.Anything).Return(sub, nil).Once()
	sub.EXPECT().Unsubscribe().Once()

	c := NewKeyboardInsetCoordinator(context.Background(), events, surface)
	release := c.Attach(context.Background())

	release()
	release()
}

func TestKeyboardInset_ContextCancelReleases(t *testing.T) {
	events := mocks.NewMockKeyboardEvents(t)
	surface := mocks.NewMockInsetSurface(t)
	sub := mocks.NewMockSubscription(t)
	events.EXPECT().Subscribe(mock.Anything).Return(sub, nil).Once()

	done := make(chan struct{})
	sub.EXPECT().Unsubscribe().Run(func() { close(done) }).Once()

	ctx, cancel := context.WithCancel(context.Background())
	c := NewKeyboardInsetCoordinator(ctx, events, surface)
	release := c.Attach(ctx)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription not released after context cancel")
	}

	// A later explicit release must not unsubscribe twice.
	release()
}

func TestKeyboardInset_SubscribeFailureReturnsNoopRelease(t *testing.T) {
	events := mocks.NewMockKeyboardEvents(t)
	surface := mocks.NewMockInsetSurface(t)
	events.EXPECT().Subscribe(mock.Anything).Return(nil, errors.New("no bus")).Once()

	c := NewKeyboardInsetCoordinator(context.Background(), events, surface)
	release := c.Attach(context.Background())

	assert.NotPanics(t, release)
}
