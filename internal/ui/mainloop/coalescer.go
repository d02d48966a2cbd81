// Package mainloop marshals work onto the GTK main loop.
package mainloop

import (
	"sync"

	"github.com/bnema/dumber-mobile/internal/application/port"
)

// Coalescer merges bursts of same-key main-loop tasks so only the latest runs.
// Config reloads fire several fsnotify events per save; they land here.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	callbacks map[string]func()
	thread    port.MainThread
	destroyed bool
}

func NewCoalescer(thread port.MainThread) *Coalescer {
	if thread == nil {
		panic("mainloop.NewCoalescer: main thread cannot be nil")
	}

	return &Coalescer{
		pending:   make(map[string]bool),
		callbacks: make(map[string]func()),
		thread:    thread,
	}
}

func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	thread := c.thread
	c.mu.Unlock()

	thread.Post(func() {
		c.mu.Lock()
		if c.destroyed {
			c.mu.Unlock()
			return
		}
		latest := c.callbacks[key]
		delete(c.pending, key)
		delete(c.callbacks, key)
		c.mu.Unlock()

		if latest != nil {
			latest()
		}
	})
}

// Pending reports whether work for key is waiting to run.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[key]
}

func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]bool{}
	c.callbacks = map[string]func(){}
	c.mu.Unlock()
}
