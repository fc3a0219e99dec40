// Package reqgen tags asynchronous loads with a per-resource generation so
// that a late response for a superseded request can be recognised and dropped.
package reqgen

import "sync"

// Tracker issues generations. The zero value is ready to use.
type Tracker struct {
	mu     sync.Mutex
	latest map[string]uint64
}

// Next issues a new generation for resource, superseding all earlier ones.
func (t *Tracker) Next(resource string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.latest == nil {
		t.latest = make(map[string]uint64)
	}
	t.latest[resource]++
	return t.latest[resource]
}

// Current reports whether id is the latest generation issued for resource.
func (t *Tracker) Current(resource string, id uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return id != 0 && t.latest[resource] == id
}
