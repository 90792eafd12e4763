package dataloader

import (
	"context"
	"sync"
	"time"
)

// BatchFunc fetches the values for an ordered list of keys in one call.
// The returned slice must be positionally aligned with keys: same length,
// same order, with the zero value at the position of any key the data
// source does not have. A non-nil error fails the whole batch.
type BatchFunc[K comparable, V any] func(ctx context.Context, keys []K) ([]V, error)

type Config[K comparable, V any] struct {
	// Fetch is the batch function invoked once per dispatch.
	Fetch BatchFunc[K, V]

	// Wait is how long the loader waits after the first key of a batch
	// before dispatching automatically. Zero disables the timer, leaving
	// dispatch to Flush and MaxBatch.
	Wait time.Duration

	// MaxBatch dispatches a batch as soon as it holds this many keys.
	// Zero means unbounded.
	MaxBatch int

	// Cache overrides the default in-memory memo cache.
	Cache Cache[K, *Deferred[V]]
}

// Loader binds one batch function with its own pending-key registry and
// result cache. A loader is expected to live for exactly one scope (one
// top-level execution) and is safe for concurrent use.
type Loader[K comparable, V any] struct {
	fetch    BatchFunc[K, V]
	wait     time.Duration
	maxBatch int

	mu     sync.Mutex
	cache  Cache[K, *Deferred[V]]
	batch  *batch[K, V]
	closed bool
}

type batch[K comparable, V any] struct {
	ctx     context.Context
	keys    []K
	pending []*Deferred[V]
	timer   *time.Timer
}

func New[K comparable, V any](config Config[K, V]) *Loader[K, V] {
	if config.Fetch == nil {
		panic("dataloader: Config.Fetch is required")
	}
	cache := config.Cache
	if cache == nil {
		cache = newMemoCache[K, *Deferred[V]]()
	}
	return &Loader[K, V]{
		fetch:    config.Fetch,
		wait:     config.Wait,
		maxBatch: config.MaxBatch,
		cache:    cache,
	}
}

// Load registers key for the next dispatch and returns its deferred value
// immediately, it never fails synchronously. A key already requested within
// this loader's lifetime returns the identical deferred, whether it is
// still in flight or long resolved. After Close the returned deferred is
// already rejected with ErrLoaderClosed.
func (l *Loader[K, V]) Load(ctx context.Context, key K) *Deferred[V] {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return rejectedDeferred[V](ErrLoaderClosed)
	}

	if deferred, ok := l.cache.Get(key); ok {
		return deferred
	}

	deferred := newDeferred[V]()
	l.cache.Put(key, deferred)

	if l.batch == nil {
		b := &batch[K, V]{
			ctx: ctx,
		}
		if l.wait > 0 {
			b.timer = time.AfterFunc(l.wait, func() {
				l.flushBatch(b)
			})
		}
		l.batch = b
	}
	l.batch.keys = append(l.batch.keys, key)
	l.batch.pending = append(l.batch.pending, deferred)

	if l.maxBatch > 0 && len(l.batch.keys) >= l.maxBatch {
		l.dispatchLocked()
	}

	return deferred
}

// LoadMany calls Load for every key, preserving caller order. Duplicate
// keys within one call map to the same deferred.
func (l *Loader[K, V]) LoadMany(ctx context.Context, keys []K) []*Deferred[V] {
	if len(keys) == 0 {
		return nil
	}
	deferreds := make([]*Deferred[V], 0, len(keys))
	for _, key := range keys {
		deferreds = append(deferreds, l.Load(ctx, key))
	}
	return deferreds
}

// Flush dispatches all pending keys, in first-requested order, into exactly
// one batch function call. It is the primitive the automatic triggers (the
// wait timer and the MaxBatch cap) are thin wrappers over. Flushing a
// loader with no pending keys is a no-op.
func (l *Loader[K, V]) Flush() {
	l.mu.Lock()
	l.dispatchLocked()
	l.mu.Unlock()
}

// Prime pre-resolves the cache entry for key. If the key is already cached
// no change is made and false is returned; clear the key first to
// forcefully prime it.
func (l *Loader[K, V]) Prime(key K, value V) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return false
	}
	if _, ok := l.cache.Get(key); ok {
		return false
	}
	l.cache.Put(key, resolvedDeferred(value))
	return true
}

// Clear drops the cache entry for key, if any. The next Load for that key
// issues a new pending request.
func (l *Loader[K, V]) Clear(key K) {
	l.mu.Lock()
	l.cache.Clear(key)
	l.mu.Unlock()
}

// Close tears the loader down with its scope. Every pending request that
// has not been dispatched yet is rejected with ErrLoaderClosed and
// subsequent Load calls return an already rejected deferred. A batch
// already handed to the batch function is left to finish on its own.
func (l *Loader[K, V]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	l.closed = true

	b := l.batch
	l.batch = nil
	if b == nil {
		return
	}
	if b.timer != nil {
		b.timer.Stop()
	}
	var zero V
	for _, deferred := range b.pending {
		deferred.complete(zero, ErrLoaderClosed)
	}
}

// flushBatch dispatches b only if it is still the loader's current batch,
// so the wait timer cannot double-dispatch a batch already flushed
// explicitly or by the MaxBatch cap.
func (l *Loader[K, V]) flushBatch(b *batch[K, V]) {
	l.mu.Lock()
	if l.batch == b {
		l.dispatchLocked()
	}
	l.mu.Unlock()
}

func (l *Loader[K, V]) dispatchLocked() {
	b := l.batch
	if b == nil {
		return
	}
	l.batch = nil
	if b.timer != nil {
		b.timer.Stop()
	}
	go l.run(b)
}

func (l *Loader[K, V]) run(b *batch[K, V]) {
	values, err := l.fetch(b.ctx, b.keys)
	if err == nil && len(values) != len(b.keys) {
		err = &MismatchError{
			Requested: len(b.keys),
			Returned:  len(values),
		}
	}
	if err != nil {
		var zero V
		for _, deferred := range b.pending {
			deferred.complete(zero, err)
		}
		return
	}
	for i, deferred := range b.pending {
		deferred.complete(values[i], nil)
	}
}
