package purefn

import "github.com/on-the-ground/memo_ive_go/shared/helper"

// The E variants memoize fallible functions. A non-nil error is returned as is
// and leaves the cache untouched, so the next call with the same arguments retries.

func MemoizeI1O1E[I1, O1 any](
	fn func(I1) (O1, error),
	opts ...Option,
) (func(I1) (O1, error), *Memoized[O1]) {
	m := CreateMemoized(func(args Args) (O1, error) {
		return fn(helper.MustTypedValue[I1](args[0]))
	}, opts...)
	return func(i1 I1) (O1, error) {
		return m.Call(i1)
	}, m
}

func MemoizeI2O1E[I1, I2, O1 any](
	fn func(I1, I2) (O1, error),
	opts ...Option,
) (func(I1, I2) (O1, error), *Memoized[O1]) {
	m := CreateMemoized(func(args Args) (O1, error) {
		return fn(
			helper.MustTypedValue[I1](args[0]),
			helper.MustTypedValue[I2](args[1]),
		)
	}, opts...)
	return func(i1 I1, i2 I2) (O1, error) {
		return m.Call(i1, i2)
	}, m
}

func MemoizeI3O1E[I1, I2, I3, O1 any](
	fn func(I1, I2, I3) (O1, error),
	opts ...Option,
) (func(I1, I2, I3) (O1, error), *Memoized[O1]) {
	m := CreateMemoized(func(args Args) (O1, error) {
		return fn(
			helper.MustTypedValue[I1](args[0]),
			helper.MustTypedValue[I2](args[1]),
			helper.MustTypedValue[I3](args[2]),
		)
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3) (O1, error) {
		return m.Call(i1, i2, i3)
	}, m
}

func MemoizeI4O1E[I1, I2, I3, I4, O1 any](
	fn func(I1, I2, I3, I4) (O1, error),
	opts ...Option,
) (func(I1, I2, I3, I4) (O1, error), *Memoized[O1]) {
	m := CreateMemoized(func(args Args) (O1, error) {
		return fn(
			helper.MustTypedValue[I1](args[0]),
			helper.MustTypedValue[I2](args[1]),
			helper.MustTypedValue[I3](args[2]),
			helper.MustTypedValue[I4](args[3]),
		)
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, error) {
		return m.Call(i1, i2, i3, i4)
	}, m
}
