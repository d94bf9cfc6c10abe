// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"sort"
	"sync"
)

// Options configures host creation.
type Options struct {
	// Title is the initial window title.
	Title string

	// Width is the window width in pixels.
	Width int

	// Height is the window height in pixels.
	Height int
}

// Factory creates a host with the given options.
// Implementations create the window and renderer and report any failure.
type Factory func(opts Options) (Host, error)

// RegistryEntry represents a registered host backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	//   - 100: native windowing backends (SDL)
	//   - 10: headless software backend
	Priority int

	// Factory creates host instances.
	Factory Factory

	// Available reports if the backend can run on this system.
	Available func() bool
}

var globalRegistry = &Registry{}

// Registry manages registered host backends.
//
// Backends register themselves from init:
//
//	func init() {
//	    host.Register("sdl", 100, New, nil)
//	}
//
// and a command picks one:
//
//	h, err := host.NewByName("sdl", host.Options{Width: 1024, Height: 768})
//	// or the best available:
//	h, err := host.New(opts)
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and New.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// New creates a host using the best available backend.
func New(opts Options) (Host, error) {
	return globalRegistry.New(opts)
}

// NewByName creates a host using a specific named backend.
func NewByName(name string, opts Options) (Host, error) {
	return globalRegistry.NewByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// New creates a host using the best available backend.
// Backends are tried in priority order; the last error is returned
// when all of them fail.
func (r *Registry) New(opts Options) (Host, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range available {
		h, err := r.NewByName(name, opts)
		if err == nil {
			return h, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// NewByName creates a host using a specific backend.
func (r *Registry) NewByName(name string, opts Options) (Host, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	return entry.Factory(opts)
}

// sortedNames returns backend names sorted by priority (highest first),
// ties broken by name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no host backends are registered
	// or available on the current system.
	ErrNoBackendAvailable = errors.New("host: no backend available")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "host: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "host: backend unavailable: " + e.Name
}
