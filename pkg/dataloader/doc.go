// Package dataloader coalesces many independent single-key fetches into
// batched calls against an underlying data source.
//
// A Loader collects the keys requested since its last dispatch, hands them
// to its batch function in first-requested order in exactly one call, and
// resolves each caller's Deferred positionally from the result. Repeated
// requests for a key within the loader's lifetime are memoized to the same
// Deferred, so N logical requests become one physical fetch.
//
// Loaders are meant to live for exactly one top-level execution; see the
// scope package for the per-execution registry and the resolver package for
// the field-resolution glue.
package dataloader
