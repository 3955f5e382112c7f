package stream

import (
	"sync"
	"time"

	"github.com/wenjunnutter/hailort/internal/status"
)

// Event is the core-op activation event. It is edge triggered with a
// sticky signalled state: waiters blocked before Signal wake up, and
// late observers see the signalled state until the next Reset.
type Event struct {
	mu       sync.Mutex
	signaled bool
	ch       chan struct{}
}

// NewEvent creates an event in the not-signalled state.
func NewEvent() *Event {
	return &Event{ch: make(chan struct{})}
}

// Signal moves the event to the signalled state, waking every waiter.
// Signalling an already-signalled event is a no-op.
func (e *Event) Signal() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.signaled {
		e.signaled = true
		close(e.ch)
	}
}

// Reset returns the event to the not-signalled state.
func (e *Event) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.signaled {
		e.signaled = false
		e.ch = make(chan struct{})
	}
}

// IsSignaled reports the sticky signalled state.
func (e *Event) IsSignaled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.signaled
}

// Wait blocks until the event is signalled or the timeout expires.
func (e *Event) Wait(timeout time.Duration) error {
	e.mu.Lock()
	ch := e.ch
	e.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ch:
		return nil
	case <-timer.C:
		return status.New(status.Timeout, "timed out waiting for activation")
	}
}
