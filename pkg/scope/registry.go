// Package scope ties loader lifetime to one top-level execution: a Registry
// is created when the execution starts, hands out one loader per entity-type
// tag, and tears everything down when the execution finishes.
package scope

import (
	"errors"
	"fmt"
	"sync"

	"github.com/UnAfraid/batchload/pkg/dataloader"
)

var (
	ErrScopeClosed      = errors.New("scope already closed")
	ErrRegistryNotFound = errors.New("scope registry not found")
)

type managedLoader interface {
	Flush()
	Close()
}

// Registry owns the loaders of one top-level execution, keyed by an
// entity-type tag supplied by the caller at registration time. Within one
// registry the same tag always yields the same loader, and therefore the
// same cache; nothing survives Close, which bounds cache growth and keeps
// data from leaking across executions.
type Registry struct {
	mu      sync.Mutex
	loaders map[string]managedLoader
	closed  bool
}

func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]managedLoader),
	}
}

// GetOrCreate returns the loader registered under tag, constructing it with
// factory on first use. A tag already bound to a loader of a different key
// or value type is an error.
func GetOrCreate[K comparable, V any](registry *Registry, tag string, factory func() *dataloader.Loader[K, V]) (*dataloader.Loader[K, V], error) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if registry.closed {
		return nil, ErrScopeClosed
	}

	if existing, ok := registry.loaders[tag]; ok {
		loader, ok := existing.(*dataloader.Loader[K, V])
		if !ok {
			return nil, fmt.Errorf("loader %q is already registered with a different key or value type", tag)
		}
		return loader, nil
	}

	loader := factory()
	registry.loaders[tag] = loader
	return loader, nil
}

// Flush dispatches the pending batch of every loader in the scope.
func (r *Registry) Flush() {
	r.mu.Lock()
	loaders := make([]managedLoader, 0, len(r.loaders))
	for _, loader := range r.loaders {
		loaders = append(loaders, loader)
	}
	r.mu.Unlock()

	for _, loader := range loaders {
		loader.Flush()
	}
}

// Close tears the scope down. Every owned loader rejects its undispatched
// requests and further GetOrCreate calls fail with ErrScopeClosed. Closing
// an already closed registry is a no-op.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true

	for _, loader := range r.loaders {
		loader.Close()
	}
	r.loaders = nil
}
