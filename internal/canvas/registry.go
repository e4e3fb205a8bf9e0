package canvas

import (
	"fmt"
	"sync"
)

type entry struct {
	surface       Surface
	width, height int
}

// Registry is an in-memory Host. Hosts register their surfaces under an
// element id and the store later acquires them by that id.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds or replaces the surface stored under id.
func (r *Registry) Register(id string, s Surface, width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = entry{surface: s, width: width, height: height}
}

// Acquire implements Host.
func (r *Registry) Acquire(id string) (Surface, int, int, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	switch {
	case !ok:
		return nil, 0, 0, fmt.Errorf("%w: no element %q", ErrSurfaceUnavailable, id)
	case e.surface == nil:
		return nil, 0, 0, fmt.Errorf("%w: element %q has no 2d context", ErrSurfaceUnavailable, id)
	case e.width <= 0 || e.height <= 0:
		return nil, 0, 0, fmt.Errorf("%w: element %q has size %dx%d", ErrSurfaceUnavailable, id, e.width, e.height)
	}
	return e.surface, e.width, e.height, nil
}

var _ Host = (*Registry)(nil)
