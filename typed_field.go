// typed_field.go: optional, type-safe context helpers.
//
// TypedField complements the plain map/kv context API. Set produces a
// Wrapper; Get reads the merged chain context (newest layer wins), so a
// field set deep in the chain is visible from any wrapping layer.
//
//	var FUserID = fault.Key[int64]("user_id")
//
//	err := fault.Wrap(cause, FUserID.Set(42))
//	id, ok := FUserID.Get(err) // 42, true
//
// The dynamic type stored in the context MUST match T exactly; no implicit
// conversions are made.
package fault

import "fmt"

// TypedField is a typed handle for one context key.
type TypedField[T any] struct {
	key string
}

// Key constructs a TypedField[T] for key.
func Key[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the underlying string key.
func (f TypedField[T]) Key() string { return f.key }

// Set returns a Wrapper that stores val under the field's key.
func (f TypedField[T]) Set(val T) Wrapper {
	return WithField(f.key, val)
}

// Get retrieves the typed value from err's chain.
// Returns (zero, false) if err is nil, the field is absent, or the value has a
// different dynamic type than T.
func (f TypedField[T]) Get(err error) (T, bool) {
	var zero T
	v, ok := ContextOf(err)[f.key]
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet retrieves the typed value or panics if the field is missing or has
// a different dynamic type than T. Intended for tests.
func (f TypedField[T]) MustGet(err error) T {
	var zero T
	if err == nil {
		panic(fmt.Errorf("fault.TypedField[%T](%q): error is nil", zero, f.key))
	}
	v, ok := ContextOf(err)[f.key]
	if !ok {
		panic(fmt.Errorf("fault.TypedField[%T](%q): field missing", zero, f.key))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("fault.TypedField[%T](%q): wrong dynamic type (%T)", zero, f.key, v))
	}
	return tv
}
