package cache

import (
	"fmt"

	"github.com/on-the-ground/memo_ive_go/equality"
	"github.com/on-the-ground/memo_ive_go/shared/orderedbuffer"
)

var _ Cache[int, int] = (*LRU[int, int])(nil)

// LRU keeps up to maxSize entries in recency order and evicts the least
// recently used one on overflow.
//
// Lookups are a linear scan through the pluggable key equality, which suits
// the small sizes memoization asks for and works for keys that cannot be hashed.
type LRU[K, V any] struct {
	entries *orderedbuffer.RecencyBuffer[Entry[K, V]]
	equals  equality.EqualityFn[K]
	onEvict EvictFunc[K, V]
}

func NewLRU[K, V any](maxSize int, eq equality.EqualityFn[K], opts ...Option[K, V]) (*LRU[K, V], error) {
	if maxSize < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxSize, maxSize)
	}
	if eq == nil {
		return nil, ErrNilEquality
	}
	cfg := newConfig(opts)
	return &LRU[K, V]{
		entries: orderedbuffer.NewRecencyBuffer[Entry[K, V]](maxSize),
		equals:  eq,
		onEvict: cfg.onEvict,
	}, nil
}

// Get scans from most to least recent. A hit is moved to the front.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	idx, entry, ok := c.entries.Find(func(e Entry[K, V]) bool {
		return c.equals(e.Key, key)
	})
	if !ok {
		var zero V
		return zero, false
	}
	c.entries.Promote(idx)
	return entry.Value, true
}

// Put inserts at the front only when key is not already present; an existing
// entry is promoted instead of overwritten.
func (c *LRU[K, V]) Put(key K, value V) {
	if _, ok := c.Get(key); ok {
		return
	}
	if evicted, ok := c.entries.PushFront(Entry[K, V]{Key: key, Value: value}); ok {
		c.onEvict(evicted)
	}
}

func (c *LRU[K, V]) Entries() []Entry[K, V] {
	return c.entries.All()
}

func (c *LRU[K, V]) Clear() {
	c.entries.Clear()
}

func (c *LRU[K, V]) Len() int { return c.entries.Len() }

func (c *LRU[K, V]) MaxSize() int { return c.entries.Cap() }

func (*LRU[K, V]) cache() {}
