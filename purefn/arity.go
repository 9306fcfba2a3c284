package purefn

import "github.com/on-the-ground/memo_ive_go/shared/helper"

func MemoizeI1O1[I1, O1 any](
	pureFn func(I1) O1,
	opts ...Option,
) (func(I1) O1, *Memoized[O1]) {
	m := CreateMemoized(func(args Args) (O1, error) {
		return pureFn(helper.MustTypedValue[I1](args[0])), nil
	}, opts...)
	return func(i1 I1) O1 {
		v, _ := m.Call(i1)
		return v
	}, m
}

func MemoizeI2O1[I1, I2, O1 any](
	pureFn func(I1, I2) O1,
	opts ...Option,
) (func(I1, I2) O1, *Memoized[O1]) {
	m := CreateMemoized(func(args Args) (O1, error) {
		return pureFn(
			helper.MustTypedValue[I1](args[0]),
			helper.MustTypedValue[I2](args[1]),
		), nil
	}, opts...)
	return func(i1 I1, i2 I2) O1 {
		v, _ := m.Call(i1, i2)
		return v
	}, m
}

func MemoizeI3O1[I1, I2, I3, O1 any](
	pureFn func(I1, I2, I3) O1,
	opts ...Option,
) (func(I1, I2, I3) O1, *Memoized[O1]) {
	m := CreateMemoized(func(args Args) (O1, error) {
		return pureFn(
			helper.MustTypedValue[I1](args[0]),
			helper.MustTypedValue[I2](args[1]),
			helper.MustTypedValue[I3](args[2]),
		), nil
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		v, _ := m.Call(i1, i2, i3)
		return v
	}, m
}

func MemoizeI4O1[I1, I2, I3, I4, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	opts ...Option,
) (func(I1, I2, I3, I4) O1, *Memoized[O1]) {
	m := CreateMemoized(func(args Args) (O1, error) {
		return pureFn(
			helper.MustTypedValue[I1](args[0]),
			helper.MustTypedValue[I2](args[1]),
			helper.MustTypedValue[I3](args[2]),
			helper.MustTypedValue[I4](args[3]),
		), nil
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		v, _ := m.Call(i1, i2, i3, i4)
		return v
	}, m
}
