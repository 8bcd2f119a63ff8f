// Package registry restricts selected engine types to a single instance
// per process. It is not a dependency-injection container: it holds one
// strong reference per key so the instance survives for the process
// lifetime, and entries are never removed.
package registry

import "sync"

// Registry maps a type identity key to its one instance.
type Registry struct {
	mu        sync.Mutex
	instances map[string]any
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{instances: make(map[string]any)}
}

// GetOrCreate returns the instance stored under key, constructing it
// via factory on first access. The factory runs at most once per key
// even when first access races from multiple goroutines, and every
// caller observes the same instance.
func (r *Registry) GetOrCreate(key string, factory func() any) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, ok := r.instances[key]
	if !ok {
		inst = factory()
		r.instances[key] = inst
	}
	return inst
}

// Len reports the number of registered instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.instances)
}

// defaultRegistry backs the package-level functions. Process-wide state
// is the registry's contract.
var defaultRegistry = New() //nolint:gochecknoglobals // process-wide by contract

// GetOrCreate is GetOrCreate on the process-wide default registry.
func GetOrCreate(key string, factory func() any) any {
	return defaultRegistry.GetOrCreate(key, factory)
}
