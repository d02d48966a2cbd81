package webkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngine_WithoutViewRejectsCalls(t *testing.T) {
	e := &Engine{}
	ctx := context.Background()

	assert.ErrorIs(t, e.Load(ctx, "https:example.com"), ErrEngineNotInitialized)
	assert.ErrorIs(t, e.GoBack(ctx), ErrEngineNotInitialized)
	assert.ErrorIs(t, e.GoForward(ctx), ErrEngineNotInitialized)
	assert.False(t, e.CanGoBack())
	assert.False(t, e.CanGoForward())
	assert.Empty(t, e.URI())
	assert.Nil(t, e.Widget())
}

func TestEngine_LoadRejectsEmptyAddress(t *testing.T) {
	e := &Engine{}
	assert.ErrorIs(t, e.Load(context.Background(), ""), ErrInvalidURL)
}

func TestEngine_GestureToggle(t *testing.T) {
	e := &Engine{}
	assert.False(t, e.GesturesEnabled())

	e.SetBackForwardGestures(true)
	assert.True(t, e.GesturesEnabled())

	e.SetBackForwardGestures(false)
	assert.False(t, e.GesturesEnabled())
}

func TestEngine_OnNavigationFinishedReplacesHandler(t *testing.T) {
	e := &Engine{}
	var got []string

	e.OnNavigationFinished(func(s string) { got = append(got, "first:"+s) })
	e.OnNavigationFinished(func(s string) { got = append(got, "second:"+s) })

	e.mu.RLock()
	handler := e.onFinished
	e.mu.RUnlock()
	handler("https://example.com/")

	assert.Equal(t, []string{"second:https://example.com/"}, got)
}
