package turbo

import "fmt"

// Default is a fallback value substituted when its owning scope
// ultimately fails. It is either eager (a precomputed value) or lazy (a
// function evaluated only at failure time, inside the failing scope, so
// it may itself run nested jobs).
//
// A resolved default short-circuits failure propagation for the scope.
// A lazy default that itself fails is terminal for the scope: the
// failure surfaces as ErrDefaultResolution and is never retried.
type Default[T any] struct {
	value T
	fn    func(*Scope) (T, error)
	set   bool
}

// NewDefault creates an eager default carrying v.
func NewDefault[T any](v T) Default[T] {
	return Default[T]{value: v, set: true}
}

// NewDefaultFunc creates a lazy default computed by fn at failure time.
func NewDefaultFunc[T any](fn func(*Scope) (T, error)) Default[T] {
	return Default[T]{fn: fn, set: true}
}

// ZeroDefault creates an eager default carrying T's zero value: 0 for
// numeric types, "" for strings, false for booleans.
func ZeroDefault[T any]() Default[T] {
	var zero T
	return Default[T]{value: zero, set: true}
}

// IsSet reports whether this default was configured.
func (d Default[T]) IsSet() bool { return d.set }

// Resolve produces the fallback value. Lazy defaults run inside s; a
// lazy computation failure is wrapped in ErrDefaultResolution.
func (d Default[T]) Resolve(s *Scope) (T, error) {
	if d.fn == nil {
		return d.value, nil
	}
	v, err := d.fn(s)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrDefaultResolution, err)
	}
	return v, nil
}
