package dataloader

import (
	"context"
	"sync"
)

// Deferred is a handle for a value that is not available yet.
// It is resolved or rejected exactly once by the loader that created it;
// every caller that was handed the same Deferred observes the same outcome.
type Deferred[V any] struct {
	done  chan struct{}
	once  sync.Once
	value V
	err   error
}

func newDeferred[V any]() *Deferred[V] {
	return &Deferred[V]{
		done: make(chan struct{}),
	}
}

func resolvedDeferred[V any](value V) *Deferred[V] {
	deferred := newDeferred[V]()
	deferred.complete(value, nil)
	return deferred
}

func rejectedDeferred[V any](err error) *Deferred[V] {
	deferred := newDeferred[V]()
	var zero V
	deferred.complete(zero, err)
	return deferred
}

func (d *Deferred[V]) complete(value V, err error) {
	d.once.Do(func() {
		d.value = value
		d.err = err
		close(d.done)
	})
}

// Done is closed once the deferred is resolved or rejected.
func (d *Deferred[V]) Done() <-chan struct{} {
	return d.done
}

// Await blocks until the deferred completes or ctx is done, whichever
// comes first.
func (d *Deferred[V]) Await(ctx context.Context) (V, error) {
	select {
	case <-d.done:
		return d.value, d.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}
