package helper

import (
	"fmt"
)

// TypedValueOf asserts v to T. A nil v yields T's zero value, so nil
// interfaces, pointers and slices survive a round trip through any.
func TypedValueOf[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}

	val, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T, want %T", v, zero)
	}

	return val, nil
}

// MustTypedValue is the panic-on-failure variant of TypedValueOf.
// Use when a mismatch is a programming error.
func MustTypedValue[T any](v any) T {
	res, err := TypedValueOf[T](v)
	if err != nil {
		panic(err)
	}
	return res
}
