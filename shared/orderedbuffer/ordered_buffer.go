package orderedbuffer

import (
	"errors"
	"slices"
)

var ErrInvalidCapacity = errors.New("buffer capacity must be greater than 0")

// RecencyBuffer is a bounded sequence ordered from most to least recently used.
// Inserting past capacity drops the item at the back.
//
// It is not safe for concurrent use.
type RecencyBuffer[T any] struct {
	data      []T
	maxBufLen int
}

func NewRecencyBuffer[T any](maxBufLen int) *RecencyBuffer[T] {
	if maxBufLen <= 0 {
		panic(ErrInvalidCapacity)
	}
	return &RecencyBuffer[T]{
		data:      make([]T, 0, maxBufLen+1),
		maxBufLen: maxBufLen,
	}
}

// PushFront inserts val as the most recent item.
// When that overflows the buffer, the least recent item is removed and returned with ok set.
func (b *RecencyBuffer[T]) PushFront(val T) (evicted T, ok bool) {
	b.data = append(b.data, val)
	copy(b.data[1:], b.data[:len(b.data)-1])
	b.data[0] = val

	if len(b.data) > b.maxBufLen {
		last := len(b.data) - 1
		evicted, ok = b.data[last], true
		var zero T
		b.data[last] = zero // release the reference
		b.data = b.data[:last]
	}
	return
}

// Find scans from the front and returns the first item matching pred.
func (b *RecencyBuffer[T]) Find(pred func(T) bool) (idx int, val T, ok bool) {
	for i, v := range b.data {
		if pred(v) {
			return i, v, true
		}
	}
	return -1, val, false
}

// Promote moves the item at idx to the front, shifting the ones before it back by one.
func (b *RecencyBuffer[T]) Promote(idx int) {
	if idx <= 0 || idx >= len(b.data) {
		return
	}
	val := b.data[idx]
	copy(b.data[1:idx+1], b.data[:idx])
	b.data[0] = val
}

// All returns a copy of the items, most recent first.
func (b *RecencyBuffer[T]) All() []T {
	return slices.Clone(b.data)
}

func (b *RecencyBuffer[T]) Len() int { return len(b.data) }

func (b *RecencyBuffer[T]) Cap() int { return b.maxBufLen }

func (b *RecencyBuffer[T]) Clear() {
	clear(b.data)
	b.data = b.data[:0]
}
