// Package lazy provides an explicit loaded/unloaded association reference.
//
// Relational mappers usually hide follow-up fetches behind proxy objects:
// touching an unloaded association silently issues a query. Ref makes that
// cost visible instead. A Ref is either loaded (the value is already in
// memory) or deferred (the value must be fetched through an explicit Resolve
// call). Callers that want the value of a deferred Ref have to pass a context
// and handle an error, so every extra store round-trip shows up in the code
// that causes it.
package lazy

import (
	"context"
	"errors"
)

// ErrNotLoaded is returned by Value when the reference has not been resolved.
var ErrNotLoaded = errors.New("association is not loaded; call Resolve")

// ResolveFunc fetches the referenced value from the backing store.
type ResolveFunc[T any] func(ctx context.Context) (T, error)

// Ref is an association reference that is either already loaded or must be
// resolved through an explicit call. The zero value behaves as an unloaded
// reference with no resolver and fails any access.
type Ref[T any] struct {
	value   T
	loaded  bool
	resolve ResolveFunc[T]
}

// Loaded creates a reference whose value is already in memory.
func Loaded[T any](value T) Ref[T] {
	return Ref[T]{value: value, loaded: true}
}

// Deferred creates an unloaded reference backed by a resolver.
// The resolver runs at most once; Resolve memoizes its result.
func Deferred[T any](resolve ResolveFunc[T]) Ref[T] {
	return Ref[T]{resolve: resolve}
}

// IsLoaded reports whether the value is available without a store round-trip.
func (r *Ref[T]) IsLoaded() bool {
	return r.loaded
}

// Value returns the loaded value, or ErrNotLoaded if the reference has not
// been resolved yet. It never touches the store.
func (r *Ref[T]) Value() (T, error) {
	if !r.loaded {
		var zero T
		return zero, ErrNotLoaded
	}
	return r.value, nil
}

// Resolve returns the referenced value, fetching it through the resolver on
// first use. Subsequent calls return the memoized value without another
// fetch.
func (r *Ref[T]) Resolve(ctx context.Context) (T, error) {
	if r.loaded {
		return r.value, nil
	}
	if r.resolve == nil {
		var zero T
		return zero, ErrNotLoaded
	}

	value, err := r.resolve(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	r.value = value
	r.loaded = true
	r.resolve = nil
	return r.value, nil
}
