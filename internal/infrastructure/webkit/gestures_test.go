package webkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySwipe(t *testing.T) {
	const threshold = 500.0

	tests := []struct {
		name   string
		vx, vy float64
		want   SwipeDirection
	}{
		{name: "fast right goes back", vx: 900, vy: 10, want: SwipeBack},
		{name: "fast left goes forward", vx: -900, vy: -10, want: SwipeForward},
		{name: "exactly at threshold counts", vx: 500, vy: 0, want: SwipeBack},
		{name: "too slow", vx: 499, vy: 0, want: SwipeNone},
		{name: "mostly vertical", vx: 800, vy: 1200, want: SwipeNone},
		{name: "diagonal tie is horizontal", vx: -700, vy: 700, want: SwipeForward},
		{name: "no motion", vx: 0, vy: 0, want: SwipeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySwipe(tt.vx, tt.vy, threshold))
		})
	}
}

func TestSwipeDirection_String(t *testing.T) {
	assert.Equal(t, "back", SwipeBack.String())
	assert.Equal(t, "forward", SwipeForward.String())
	assert.Equal(t, "none", SwipeNone.String())
}
