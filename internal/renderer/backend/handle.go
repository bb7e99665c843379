package backend

import "sync"

// Handle serializes access to a Terminal.
//
// Every screen operation goes through With. The guard is held only for
// the duration of the callback, never across widget drawing or input
// polling.
type Handle struct {
	mu   sync.Mutex
	term *Terminal
}

// NewHandle wraps a started terminal.
func NewHandle(t *Terminal) *Handle {
	return &Handle{term: t}
}

// With runs fn with exclusive access to the terminal.
// It returns ErrStopped once the terminal has been stopped.
func (h *Handle) With(fn func(t *Terminal) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.term == nil || h.term.stopped {
		return ErrStopped
	}
	return fn(h.term)
}

// Stop stops the terminal. Subsequent calls return ErrStopped.
func (h *Handle) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.term == nil {
		return ErrStopped
	}
	return h.term.Stop()
}
