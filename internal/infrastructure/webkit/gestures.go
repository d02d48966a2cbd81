package webkit

import (
	"math"
)

// SwipeDirection is the navigation a swipe asks for.
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeBack
	SwipeForward
)

func (d SwipeDirection) String() string {
	switch d {
	case SwipeBack:
		return "back"
	case SwipeForward:
		return "forward"
	default:
		return "none"
	}
}

// ClassifySwipe maps swipe velocities (px/s) to a navigation direction.
// Mostly vertical swipes and swipes slower than threshold are ignored.
// A rightward swipe goes back, a leftward swipe goes forward.
func ClassifySwipe(velocityX, velocityY, threshold float64) SwipeDirection {
	absX := math.Abs(velocityX)
	absY := math.Abs(velocityY)

	if absY > absX {
		return SwipeNone
	}
	if absX < threshold {
		return SwipeNone
	}
	if velocityX > 0 {
		return SwipeBack
	}
	return SwipeForward
}
