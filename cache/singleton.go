package cache

import "github.com/on-the-ground/memo_ive_go/equality"

var _ Cache[int, int] = (*Singleton[int, int])(nil)

// Singleton holds at most one entry. Every Put replaces it.
type Singleton[K, V any] struct {
	entry   *Entry[K, V]
	equals  equality.EqualityFn[K]
	onEvict EvictFunc[K, V]
}

// NewSingleton panics if eq is nil.
func NewSingleton[K, V any](eq equality.EqualityFn[K], opts ...Option[K, V]) *Singleton[K, V] {
	if eq == nil {
		panic(ErrNilEquality)
	}
	cfg := newConfig(opts)
	return &Singleton[K, V]{
		equals:  eq,
		onEvict: cfg.onEvict,
	}
}

func (c *Singleton[K, V]) Get(key K) (V, bool) {
	if c.entry != nil && c.equals(c.entry.Key, key) {
		return c.entry.Value, true
	}
	var zero V
	return zero, false
}

func (c *Singleton[K, V]) Put(key K, value V) {
	if c.entry != nil {
		c.onEvict(*c.entry)
	}
	c.entry = &Entry[K, V]{Key: key, Value: value}
}

func (c *Singleton[K, V]) Entries() []Entry[K, V] {
	if c.entry == nil {
		return []Entry[K, V]{}
	}
	return []Entry[K, V]{*c.entry}
}

func (c *Singleton[K, V]) Clear() {
	c.entry = nil
}

func (c *Singleton[K, V]) Len() int {
	if c.entry == nil {
		return 0
	}
	return 1
}

func (c *Singleton[K, V]) MaxSize() int { return 1 }

func (*Singleton[K, V]) cache() {}
