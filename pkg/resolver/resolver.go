// Package resolver is the glue between a query execution engine and the
// per-scope loaders: a field resolver handed a parent entity derives the
// child's key and delegates to the tagged loader of the current scope.
package resolver

import (
	"context"

	"github.com/UnAfraid/batchload/pkg/dataloader"
	"github.com/UnAfraid/batchload/pkg/scope"
)

// Field resolves the child entity for a key derived from the parent. It
// looks the tagged loader up in the request's scope registry, creating it
// with factory on first use, and returns the deferred child immediately.
func Field[K comparable, V any](ctx context.Context, tag string, factory func() *dataloader.Loader[K, V], key K) (*dataloader.Deferred[V], error) {
	loader, err := loaderFromContext(ctx, tag, factory)
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx, key), nil
}

// Fields is the list-valued counterpart of Field, preserving key order.
func Fields[K comparable, V any](ctx context.Context, tag string, factory func() *dataloader.Loader[K, V], keys []K) ([]*dataloader.Deferred[V], error) {
	loader, err := loaderFromContext(ctx, tag, factory)
	if err != nil {
		return nil, err
	}
	return loader.LoadMany(ctx, keys), nil
}

func loaderFromContext[K comparable, V any](ctx context.Context, tag string, factory func() *dataloader.Loader[K, V]) (*dataloader.Loader[K, V], error) {
	registry, err := scope.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return scope.GetOrCreate(registry, tag, factory)
}
