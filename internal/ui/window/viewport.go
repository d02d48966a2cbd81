package window

// viewportTracker reports a height only when it differs from the last one.
type viewportTracker struct {
	last     int
	callback func(height int)
}

func (v *viewportTracker) report(height int) bool {
	if height <= 0 || height == v.last {
		return false
	}
	v.last = height
	v.callback(height)
	return true
}

// heightFrom prefers the allocated height. Before the first allocation
// only the default size is known.
func heightFrom(allocated, fallback int) int {
	if allocated > 0 {
		return allocated
	}
	return fallback
}
