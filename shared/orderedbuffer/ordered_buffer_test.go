package orderedbuffer_test

import (
	"testing"

	"github.com/on-the-ground/memo_ive_go/shared/orderedbuffer"
	"github.com/stretchr/testify/assert"
)

func TestRecencyBuffer_PushFrontAndEviction(t *testing.T) {
	buf := orderedbuffer.NewRecencyBuffer[int](3)

	for _, v := range []int{1, 2, 3} {
		_, evicted := buf.PushFront(v)
		assert.Falsef(t, evicted, "unexpected eviction inserting %d", v)
	}
	assert.Equal(t, []int{3, 2, 1}, buf.All())

	dropped, evicted := buf.PushFront(4)
	assert.True(t, evicted)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, []int{4, 3, 2}, buf.All())
	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, 3, buf.Cap())
}

func TestRecencyBuffer_FindAndPromote(t *testing.T) {
	buf := orderedbuffer.NewRecencyBuffer[string](4)
	for _, v := range []string{"a", "b", "c", "d"} {
		buf.PushFront(v)
	}
	// d c b a
	idx, val, ok := buf.Find(func(s string) bool { return s == "b" })
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "b", val)

	buf.Promote(idx)
	assert.Equal(t, []string{"b", "d", "c", "a"}, buf.All())

	buf.Promote(0)
	buf.Promote(10)
	assert.Equal(t, []string{"b", "d", "c", "a"}, buf.All(), "out of range promotes are no-ops")

	idx, _, ok = buf.Find(func(s string) bool { return s == "z" })
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestRecencyBuffer_AllReturnsCopy(t *testing.T) {
	buf := orderedbuffer.NewRecencyBuffer[int](2)
	buf.PushFront(1)
	snapshot := buf.All()
	snapshot[0] = 99
	assert.Equal(t, []int{1}, buf.All())
}

func TestRecencyBuffer_Clear(t *testing.T) {
	buf := orderedbuffer.NewRecencyBuffer[int](2)
	buf.PushFront(1)
	buf.PushFront(2)
	buf.Clear()
	assert.Equal(t, 0, buf.Len())
	assert.Empty(t, buf.All())

	buf.PushFront(3)
	assert.Equal(t, []int{3}, buf.All())
}

func TestRecencyBuffer_ZeroCapacityPanics(t *testing.T) {
	assert.PanicsWithValue(t, orderedbuffer.ErrInvalidCapacity, func() {
		orderedbuffer.NewRecencyBuffer[int](0)
	})
}
