package dataloader

// Cache memoizes one deferred value per key for the lifetime of a loader.
// Holding the deferred rather than the resolved value is what lets callers
// asking for an in-flight key join the pending batch instead of issuing a
// second fetch. Implementations do not need to be safe for concurrent use,
// the loader serializes access.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V)
	Clear(key K)
}

type memoCache[K comparable, V any] struct {
	entries map[K]V
}

func newMemoCache[K comparable, V any]() *memoCache[K, V] {
	return &memoCache[K, V]{
		entries: make(map[K]V),
	}
}

func (c *memoCache[K, V]) Get(key K) (V, bool) {
	value, ok := c.entries[key]
	return value, ok
}

func (c *memoCache[K, V]) Put(key K, value V) {
	c.entries[key] = value
}

func (c *memoCache[K, V]) Clear(key K) {
	delete(c.entries, key)
}

// NoCache disables memoization. Every Load registers a new pending request,
// including repeated loads of the same key within one batch.
type NoCache[K comparable, V any] struct{}

func (NoCache[K, V]) Get(K) (value V, ok bool) {
	return value, false
}

func (NoCache[K, V]) Put(K, V) {
}

func (NoCache[K, V]) Clear(K) {
}
