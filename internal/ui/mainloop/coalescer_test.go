package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-mobile/internal/application/port/mocks"
)

// queueThread captures posted work so the test decides when it runs.
func queueThread(t *testing.T) (*mocks.MockMainThread, *[]func()) {
	t.Helper()
	queue := make([]func(), 0, 8)
	thread := mocks.NewMockMainThread(t)
	thread.EXPECT().Post(mock.Anything).Run(func(fn func()) {
		queue = append(queue, fn)
	}).Maybe()
	return thread, &queue
}

func TestCoalescer_MergesBurstIntoSingleIdle(t *testing.T) {
	thread, queue := queueThread(t)
	c := NewCoalescer(thread)

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("config-reload", func() { value = v })
	}

	require.Len(t, *queue, 1)
	assert.True(t, c.Pending("config-reload"))

	(*queue)[0]()

	assert.Equal(t, 5, value)
	assert.False(t, c.Pending("config-reload"))
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	thread, queue := queueThread(t)
	c := NewCoalescer(thread)

	var ran []string
	c.Post("home-page", func() { ran = append(ran, "home-page") })
	c.Post("tint", func() { ran = append(ran, "tint") })

	require.Len(t, *queue, 2)
	for _, fn := range *queue {
		fn()
	}
	assert.ElementsMatch(t, []string{"home-page", "tint"}, ran)
}

func TestCoalescer_DropsWorkAfterDestroy(t *testing.T) {
	thread, queue := queueThread(t)
	c := NewCoalescer(thread)

	ran := false
	c.Post("tint", func() { ran = true })
	c.Destroy()

	require.Len(t, *queue, 1)
	(*queue)[0]()
	assert.False(t, ran)

	c.Post("tint", func() { ran = true })
	assert.Len(t, *queue, 1)
}

func TestCoalescer_IgnoresEmptyKeyAndNilWork(t *testing.T) {
	thread, queue := queueThread(t)
	c := NewCoalescer(thread)

	c.Post("", func() {})
	c.Post("tint", nil)

	assert.Empty(t, *queue)
}

func TestNewCoalescer_PanicsOnNilThread(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer(nil) })
}
