package syncmap

import "sync"

// Map is a thread-safe generic registry keyed by string.
type Map[T any] struct {
	mux sync.RWMutex
	m   map[string]T
}

// NewRegistry creates a new instance of Map
func NewRegistry[T any]() *Map[T] {
	return &Map[T]{
		m: make(map[string]T),
	}
}

// Get retrieves an item by name; the second return reports presence.
func (r *Map[T]) Get(name string) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[name]
	return v, ok
}

// Set adds or updates an item by name
func (r *Map[T]) Set(name string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[name] = value
}

// Delete removes an item by name
func (r *Map[T]) Delete(name string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	delete(r.m, name)
}

// Len returns the number of registered items.
func (r *Map[T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}

// Names returns the registered names in unspecified order.
func (r *Map[T]) Names() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	names := make([]string, 0, len(r.m))
	for name := range r.m {
		names = append(names, name)
	}
	return names
}

// List returns a slice of all items
func (r *Map[T]) List() []T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]T, 0, len(r.m))
	for _, v := range r.m {
		ret = append(ret, v)
	}
	return ret
}
