package tiercache

import "sync"

// keyRegistry tracks which keys this cache instance has written to the
// durable tier, so Clear can be scoped to cache-owned data instead of wiping
// a store it may share with someone else.
type keyRegistry struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newKeyRegistry() *keyRegistry {
	return &keyRegistry{keys: make(map[string]struct{})}
}

func (r *keyRegistry) add(key string) {
	r.mu.Lock()
	r.keys[key] = struct{}{}
	r.mu.Unlock()
}

func (r *keyRegistry) remove(key string) {
	r.mu.Lock()
	delete(r.keys, key)
	r.mu.Unlock()
}

// drain returns every tracked key and resets the registry.
func (r *keyRegistry) drain() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.keys))
	for key := range r.keys {
		keys = append(keys, key)
	}
	r.keys = make(map[string]struct{})
	return keys
}
