package helper_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/memo_ive_go/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedValueOf(t *testing.T) {
	v, err := helper.TypedValueOf[int](3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = helper.TypedValueOf[int]("3")
	assert.ErrorContains(t, err, "unexpected type: string")
}

func TestTypedValueOf_NilIsZero(t *testing.T) {
	s, err := helper.TypedValueOf[[]int](nil)
	require.NoError(t, err)
	assert.Nil(t, s)

	e, err := helper.TypedValueOf[error](nil)
	require.NoError(t, err)
	assert.Nil(t, e)

	st, err := helper.TypedValueOf[fmt.Stringer](nil)
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestMustTypedValue(t *testing.T) {
	assert.Equal(t, "x", helper.MustTypedValue[string]("x"))
	assert.Panics(t, func() {
		helper.MustTypedValue[string](1)
	})
}
