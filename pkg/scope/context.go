package scope

import (
	"context"
)

type contextKey struct {
	name string
}

var registryCtxKey = &contextKey{"scopeRegistry"}

func NewContext(ctx context.Context, registry *Registry) context.Context {
	return context.WithValue(ctx, registryCtxKey, registry)
}

func FromContext(ctx context.Context) (*Registry, error) {
	registry, ok := ctx.Value(registryCtxKey).(*Registry)
	if !ok {
		return nil, ErrRegistryNotFound
	}
	return registry, nil
}
