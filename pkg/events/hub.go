// Package events provides an in-process event hub and observer containers
// that drop their items when those items are closed.
package events

import (
	"sync"
)

// Event is a named notification with optional arguments.
type Event struct {
	Name string
	Args map[string]any
}

// Arg returns the named argument or nil.
func (e Event) Arg(key string) any {
	return e.Args[key]
}

// Handler processes an event delivered by a Hub.
type Handler func(h *Hub, ev Event)

// Hub queues events and delivers them to registered handlers on a single
// delivery goroutine, one event at a time.
type Hub struct {
	mu       sync.Mutex
	handlers map[string]Handler
	queue    chan Event
	stop     chan struct{}
	running  bool
	wg       sync.WaitGroup
}

// NewHub creates a hub with the given queue capacity (minimum 1).
func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		handlers: make(map[string]Handler),
		queue:    make(chan Event, buffer),
	}
}

// Start launches the delivery goroutine. Starting a running hub is a no-op.
func (h *Hub) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.running {
		return
	}
	h.running = true
	h.stop = make(chan struct{})
	h.wg.Add(1)
	go h.loop(h.stop)
}

// Stop halts delivery and waits for the delivery goroutine to exit. Queued
// but undelivered events are discarded.
func (h *Hub) Stop() {
	h.mu.Lock()
	if !h.running {
		h.mu.Unlock()
		return
	}
	h.running = false
	close(h.stop)
	h.mu.Unlock()
	h.wg.Wait()
}

func (h *Hub) loop(stop chan struct{}) {
	defer h.wg.Done()
	for {
		select {
		case ev := <-h.queue:
			h.mu.Lock()
			handler, ok := h.handlers[ev.Name]
			h.mu.Unlock()
			if ok {
				handler(h, ev)
			}
		case <-stop:
			return
		}
	}
}

// Dispatch queues an event built from name and args. It returns false when
// the hub is stopped or the queue is full.
func (h *Hub) Dispatch(name string, args map[string]any) bool {
	return h.DispatchEvent(Event{Name: name, Args: args})
}

// DispatchEvent queues ev. It returns false when the hub is stopped or the
// queue is full.
func (h *Hub) DispatchEvent(ev Event) bool {
	h.mu.Lock()
	running := h.running
	stop := h.stop
	h.mu.Unlock()
	if !running {
		return false
	}
	select {
	case h.queue <- ev:
		return true
	case <-stop:
		return false
	}
}

// On registers handler for events with the given name, replacing any
// previous handler for that name.
func (h *Hub) On(name string, handler Handler) {
	h.mu.Lock()
	h.handlers[name] = handler
	h.mu.Unlock()
}

// Off removes the handler for the given name.
func (h *Hub) Off(name string) {
	h.mu.Lock()
	delete(h.handlers, name)
	h.mu.Unlock()
}
