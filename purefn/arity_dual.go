package purefn

import "github.com/on-the-ground/memo_ive_go/shared/helper"

// Pair is the cached form of a two-result function.
// Result equality checks configured for these wrappers receive Pair values.
type Pair[O1, O2 any] struct {
	First  O1
	Second O2
}

func MemoizeI1O2[I1, O1, O2 any](
	pureFn func(I1) (O1, O2),
	opts ...Option,
) (func(I1) (O1, O2), *Memoized[Pair[O1, O2]]) {
	m := memoizeDual(func(args Args) (O1, O2) {
		return pureFn(helper.MustTypedValue[I1](args[0]))
	}, opts)
	return func(i1 I1) (O1, O2) {
		return callDual(m, i1)
	}, m
}

func MemoizeI2O2[I1, I2, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	opts ...Option,
) (func(I1, I2) (O1, O2), *Memoized[Pair[O1, O2]]) {
	m := memoizeDual(func(args Args) (O1, O2) {
		return pureFn(
			helper.MustTypedValue[I1](args[0]),
			helper.MustTypedValue[I2](args[1]),
		)
	}, opts)
	return func(i1 I1, i2 I2) (O1, O2) {
		return callDual(m, i1, i2)
	}, m
}

func MemoizeI3O2[I1, I2, I3, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	opts ...Option,
) (func(I1, I2, I3) (O1, O2), *Memoized[Pair[O1, O2]]) {
	m := memoizeDual(func(args Args) (O1, O2) {
		return pureFn(
			helper.MustTypedValue[I1](args[0]),
			helper.MustTypedValue[I2](args[1]),
			helper.MustTypedValue[I3](args[2]),
		)
	}, opts)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		return callDual(m, i1, i2, i3)
	}, m
}

func MemoizeI4O2[I1, I2, I3, I4, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	opts ...Option,
) (func(I1, I2, I3, I4) (O1, O2), *Memoized[Pair[O1, O2]]) {
	m := memoizeDual(func(args Args) (O1, O2) {
		return pureFn(
			helper.MustTypedValue[I1](args[0]),
			helper.MustTypedValue[I2](args[1]),
			helper.MustTypedValue[I3](args[2]),
			helper.MustTypedValue[I4](args[3]),
		)
	}, opts)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		return callDual(m, i1, i2, i3, i4)
	}, m
}

func memoizeDual[O1, O2 any](
	pureFn func(Args) (O1, O2),
	opts []Option,
) *Memoized[Pair[O1, O2]] {
	return CreateMemoized(func(args Args) (Pair[O1, O2], error) {
		v1, v2 := pureFn(args)
		return Pair[O1, O2]{First: v1, Second: v2}, nil
	}, opts...)
}

func callDual[O1, O2 any](m *Memoized[Pair[O1, O2]], args ...any) (O1, O2) {
	res, _ := m.Call(args...)
	return res.First, res.Second
}
