package dataloader

// OrderByKeys realigns values fetched in arbitrary order against the
// requested keys. The returned slice holds one entry per key, in key order,
// with the zero value at the position of any key absent from values. This
// is the usual bridge between a repository returning an unordered set and
// the positional batch function contract.
func OrderByKeys[K comparable, V any](keys []K, values []V, keyFn func(V) K) []V {
	valueByKey := make(map[K]V, len(values))
	for _, value := range values {
		valueByKey[keyFn(value)] = value
	}

	ordered := make([]V, len(keys))
	for i, key := range keys {
		if value, ok := valueByKey[key]; ok {
			ordered[i] = value
		}
	}
	return ordered
}
