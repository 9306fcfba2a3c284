package cache

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/memo_ive_go/equality"
)

var (
	ErrInvalidMaxSize = errors.New("lru cache needs a max size of at least 2")
	ErrNilEquality    = errors.New("cache key equality must not be nil")
)

// Entry is a stored (key, value) pair. Caches never modify an entry in place.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Cache is the capability shared by the Singleton and LRU strategies.
// Only those two types implement it.
type Cache[K, V any] interface {
	// Get returns the value stored under a key equal to key, if any.
	Get(key K) (V, bool)
	// Put stores value under key.
	Put(key K, value V)
	// Entries lists the stored entries. For the LRU, most recent first.
	Entries() []Entry[K, V]
	Clear()
	Len() int
	MaxSize() int

	// cache prevents external packages from implementing Cache.
	cache()
}

// EvictFunc observes entries dropped to respect the capacity bound.
type EvictFunc[K, V any] func(Entry[K, V])

type config[K, V any] struct {
	onEvict EvictFunc[K, V]
}

type Option[K, V any] func(*config[K, V])

// WithOnEvict registers fn to be called with every entry dropped for capacity.
// Clear does not call it.
func WithOnEvict[K, V any](fn EvictFunc[K, V]) Option[K, V] {
	return func(c *config[K, V]) {
		c.onEvict = fn
	}
}

func newConfig[K, V any](opts []Option[K, V]) config[K, V] {
	var cfg config[K, V]
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.onEvict == nil {
		cfg.onEvict = func(Entry[K, V]) {}
	}
	return cfg
}

// New picks the strategy for maxSize: a Singleton for 1 or less, an LRU otherwise.
// It panics if eq is nil.
func New[K, V any](maxSize int, eq equality.EqualityFn[K], opts ...Option[K, V]) Cache[K, V] {
	if maxSize <= 1 {
		return NewSingleton(eq, opts...)
	}
	lru, err := NewLRU(maxSize, eq, opts...)
	if err != nil {
		panic(err)
	}
	return lru
}

// Match dispatches on the concrete strategy behind c.
func Match[K, V, T any](
	c Cache[K, V],
	onSingleton func(*Singleton[K, V]) T,
	onLRU func(*LRU[K, V]) T,
) T {
	switch c := c.(type) {
	case *Singleton[K, V]:
		return onSingleton(c)
	case *LRU[K, V]:
		return onLRU(c)
	}
	panic(fmt.Sprintf("exhaustive match fallback, cache type: %T", c))
}

// StrategyName is "singleton" or "lru".
func StrategyName[K, V any](c Cache[K, V]) string {
	return Match(c,
		func(*Singleton[K, V]) string { return "singleton" },
		func(*LRU[K, V]) string { return "lru" },
	)
}
