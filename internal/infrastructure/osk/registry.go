package osk

import (
	"slices"
	"sync"

	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/domain/entity"
)

// registry holds keyboard handlers. Safe for concurrent use.
type registry struct {
	mu       sync.Mutex
	handlers map[uint64]port.KeyboardHandler
	nextID   uint64
	closed   bool
}

func newRegistry() *registry {
	return &registry{handlers: make(map[uint64]port.KeyboardHandler)}
}

func (r *registry) add(handler port.KeyboardHandler) (port.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrSourceClosed
	}
	r.nextID++
	id := r.nextID
	r.handlers[id] = handler

	return &subscription{remove: func() { r.remove(id) }}, nil
}

func (r *registry) remove(id uint64) {
	r.mu.Lock()
	delete(r.handlers, id)
	r.mu.Unlock()
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handlers)
}

// dispatch calls every handler with event, in subscription order.
func (r *registry) dispatch(event entity.KeyboardEvent) {
	r.mu.Lock()
	ids := make([]uint64, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	snapshot := make([]port.KeyboardHandler, 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		snapshot = append(snapshot, r.handlers[id])
	}
	r.mu.Unlock()

	for _, h := range snapshot {
		h(event)
	}
}

func (r *registry) close() {
	r.mu.Lock()
	r.closed = true
	r.handlers = make(map[uint64]port.KeyboardHandler)
	r.mu.Unlock()
}

type subscription struct {
	once   sync.Once
	remove func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(s.remove)
}
