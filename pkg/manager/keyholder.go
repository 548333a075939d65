package manager

import "sync"

// KeyHolder is the one piece of shared mutable state in the core: the
// process-wide cloud credential. Reads and writes are synchronized so
// a concurrent update can never produce a torn value; resolution takes
// a snapshot, so handles in flight keep the credential they were built
// with.
type KeyHolder struct {
	mu  sync.RWMutex
	key string
}

// NewKeyHolder creates a holder with an initial credential, typically
// loaded from the environment at startup. Empty means unconfigured.
func NewKeyHolder(initial string) *KeyHolder {
	return &KeyHolder{key: initial}
}

// Set replaces the credential. It takes effect for all subsequent
// resolutions; in-flight calls keep their snapshot.
func (h *KeyHolder) Set(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.key = key
}

// Snapshot returns the current credential value.
func (h *KeyHolder) Snapshot() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.key
}

// Configured reports whether a non-empty credential is present.
func (h *KeyHolder) Configured() bool {
	return h.Snapshot() != ""
}
