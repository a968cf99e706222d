package provider

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new Counter from the given configuration.
// Each backend registers its own factory function.
type Factory func(cfg Config) (Counter, error)

// registry stores registered backend factories.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a backend factory to the registry.
// Backends should call this in their init() function.
// Panics if a backend with the same name is already registered.
//
// Example:
//
//	func init() {
//	    provider.Register("openai", func(cfg provider.Config) (provider.Counter, error) {
//	        return NewCounter(cfg)
//	    })
//	}
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("backend %q already registered", name))
	}
	registry[name] = factory
}

// New creates a new Counter using the named backend.
// Returns ErrUnknownBackend if the backend is not registered.
func New(name string, cfg Config) (Counter, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, name)
	}
	return factory(cfg)
}

// FromConfig creates a Counter for cfg.Backend.
// An empty backend means no authoritative counting and returns (nil, nil).
func FromConfig(cfg Config) (Counter, error) {
	if cfg.Backend == "" {
		return nil, nil
	}
	return New(cfg.Backend, cfg)
}

// MustNew creates a new Counter, panicking on error.
// Use only when backend availability is guaranteed (e.g., in tests).
func MustNew(name string, cfg Config) Counter {
	counter, err := New(name, cfg)
	if err != nil {
		panic(fmt.Sprintf("provider.MustNew(%q): %v", name, err))
	}
	return counter
}

// Available returns the names of all registered backends, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()

	_, ok := registry[name]
	return ok
}

// Unregister removes a backend from the registry.
// This is primarily useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(registry, name)
}

// ClearRegistry removes all registered backends.
// This is primarily useful for testing.
func ClearRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry = make(map[string]Factory)
}
