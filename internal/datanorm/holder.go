package datanorm

import "sync"

// Holder keeps the most recently committed snapshot. Loads replace the
// snapshot wholesale; readers always see one complete snapshot.
type Holder struct {
	mu      sync.RWMutex
	current *Snapshot
}

// NewHolder returns an empty holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Commit replaces the current snapshot and returns the one it replaced.
func (h *Holder) Commit(s *Snapshot) *Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	prev := h.current
	h.current = s
	return prev
}

// Current returns the committed snapshot, or nil before the first load.
func (h *Holder) Current() *Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}
