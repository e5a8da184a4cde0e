// Package event provides the process-wide event bus decoupling the HTTP layer
// from whatever surface is driving it (CLI command, embedding application).
//
// The bus carries the session-expired signal raised on HTTP 401 and the
// transient notification stream that replaces the dashboard's toast layer:
//
//	off := event.Listen(event.SessionExpired, func(payload interface{}) {
//	    // force logout, drop credentials
//	})
//	defer off()
package event

import (
	"sync"
)

// Well-known event names.
const (
	// SessionExpired fires when the backend answers any call with HTTP 401.
	// Fired once per failed call, regardless of which caller issued it.
	SessionExpired = "session.expired"

	// NotifyError and NotifySuccess carry transient user-facing messages
	// (the string payload is the message text).
	NotifyError   = "notify.error"
	NotifySuccess = "notify.success"
)

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

type entry struct {
	id      uint64
	handler Handler
}

var (
	mu       sync.RWMutex
	nextID   uint64
	handlers = map[string][]entry{}
)

// Listen registers a handler for the given event name and returns a function
// that removes it again. One listener per app lifetime, torn down by the
// owner, is the intended usage.
func Listen(event string, handler Handler) (off func()) {
	mu.Lock()
	nextID++
	id := nextID
	handlers[event] = append(handlers[event], entry{id: id, handler: handler})
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		es := handlers[event]
		for i, e := range es {
			if e.id == id {
				handlers[event] = append(es[:i:i], es[i+1:]...)
				return
			}
		}
	}
}

// Fire dispatches an event synchronously to all registered listeners.
func Fire(event string, payload interface{}) {
	mu.RLock()
	es := make([]entry, len(handlers[event]))
	copy(es, handlers[event])
	mu.RUnlock()

	for _, e := range es {
		e.handler(payload)
	}
}

// FireAsync dispatches the event to all listeners concurrently.
// It returns immediately without waiting for handlers to complete.
func FireAsync(event string, payload interface{}) {
	mu.RLock()
	es := make([]entry, len(handlers[event]))
	copy(es, handlers[event])
	mu.RUnlock()

	for _, e := range es {
		go e.handler(payload)
	}
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]entry{}
}
