package coreop

import "sync"

// Holder owns the device-wide Activated slot. At most one core-op holds
// the slot at any time under manual activation.
type Holder struct {
	mu     sync.Mutex
	active *CoreOp
}

// NewHolder creates an empty holder.
func NewHolder() *Holder {
	return &Holder{}
}

// TryClaim installs c as the active core-op. It fails if any core-op
// already holds the slot.
func (h *Holder) TryClaim(c *CoreOp) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.active != nil {
		return false
	}
	h.active = c
	return true
}

// Current returns the core-op holding the slot, nil if none.
func (h *Holder) Current() *CoreOp {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// IsAnyActive reports whether the slot is held.
func (h *Holder) IsAnyActive() bool {
	return h.Current() != nil
}

// Release clears the slot if c holds it.
func (h *Holder) Release(c *CoreOp) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.active == c {
		h.active = nil
	}
}
