package equality

import (
	"reflect"
)

// EqualityFn reports whether two values are equivalent for caching purposes.
// Implementations are expected to be reflexive and symmetric, and free of side effects.
type EqualityFn[T any] func(a, b T) bool

// Args is an ordered snapshot of the arguments passed to a single call.
// It is used as a cache key and must not be mutated once stored.
type Args []any

// DefaultEqualityCheck is strict equality.
//
// Values of different dynamic types are never equal. Comparable values are
// compared with ==, so NaN is not equal to itself. Slices, maps and funcs are
// compared by reference: a slice by its backing array and length, a map or a
// func by its pointer. Structs and arrays that hold such fields are compared
// field by field with the same rules.
//
// Zero-length slices with no capacity of their own (make([]T, 0), []T{}) share
// the runtime's zero-size base address, so two of them are equal even when made
// separately. A nil slice never equals a non-nil one.
func DefaultEqualityCheck(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	return strictEqual(va, vb)
}

// Strict returns == for comparable types.
func Strict[T comparable]() EqualityFn[T] {
	return func(a, b T) bool {
		return a == b
	}
}

// strictEqual expects va and vb to share the same static type.
func strictEqual(va, vb reflect.Value) bool {
	if va.Comparable() && vb.Comparable() {
		return va.Equal(vb)
	}

	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Map, reflect.Func:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Array:
		for i := range va.Len() {
			if !strictEqual(va.Index(i), vb.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range va.NumField() {
			if !strictEqual(va.Field(i), vb.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Interface:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		ea, eb := va.Elem(), vb.Elem()
		if ea.Type() != eb.Type() {
			return false
		}
		return strictEqual(ea, eb)
	default:
		return false
	}
}

// BuildArgumentComparator lifts a per-argument equality into an equality over
// whole argument lists.
//
// The returned comparator is false when either list is nil or when the lengths
// differ. Otherwise it compares positions in order and stops at the first
// mismatch. A nil eq falls back to DefaultEqualityCheck.
func BuildArgumentComparator(eq EqualityFn[any]) EqualityFn[Args] {
	if eq == nil {
		eq = DefaultEqualityCheck
	}
	return func(prev, next Args) bool {
		if prev == nil || next == nil || len(prev) != len(next) {
			return false
		}
		for i := range prev {
			if !eq(prev[i], next[i]) {
				return false
			}
		}
		return true
	}
}
