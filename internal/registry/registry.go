// Package registry provides a named factory registry.
// Components register factories in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknown is returned when an id has no registered factory.
var ErrUnknown = errors.New("registry: unknown id")

// Info contains metadata about a registered entry.
type Info struct {
	ID    string
	Title string
}

type entry[F any] struct {
	title   string
	factory F
}

// Registry maps ids to factories of type F. The zero value is not usable;
// create one with New.
type Registry[F any] struct {
	kind    string
	mu      sync.RWMutex
	entries map[string]entry[F]
}

// New creates an empty registry. kind names the registered things in
// error and panic messages (e.g. "weapon").
func New[F any](kind string) *Registry[F] {
	return &Registry[F]{
		kind:    kind,
		entries: make(map[string]entry[F]),
	}
}

// Register adds a factory under id.
// Typically called from an init() function.
// Panics if the id is already registered.
func (r *Registry[F]) Register(id, title string, f F) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		panic(fmt.Sprintf("registry: %s %q already registered", r.kind, id))
	}
	r.entries[id] = entry[F]{title: title, factory: f}
}

// Lookup returns the factory registered under id.
// The error wraps ErrUnknown if the id is not registered.
func (r *Registry[F]) Lookup(id string) (F, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		var zero F
		return zero, fmt.Errorf("%w: %s %q", ErrUnknown, r.kind, id)
	}
	return e.factory, nil
}

// List returns information about all registered entries, sorted by ID.
func (r *Registry[F]) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Info, 0, len(r.entries))
	for id, e := range r.entries {
		result = append(result, Info{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Exists checks if an entry with the given ID is registered.
func (r *Registry[F]) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[id]
	return ok
}
