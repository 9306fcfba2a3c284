package cache_test

import (
	"testing"

	"github.com/on-the-ground/memo_ive_go/cache"
	"github.com/on-the-ground/memo_ive_go/equality"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf[K, V any](entries []cache.Entry[K, V]) []K {
	keys := make([]K, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}

func TestNew_SelectsStrategy(t *testing.T) {
	eq := equality.Strict[string]()
	for _, size := range []int{-1, 0, 1} {
		c := cache.New[string, int](size, eq)
		assert.Equal(t, "singleton", cache.StrategyName(c))
		assert.Equal(t, 1, c.MaxSize())
	}
	c := cache.New[string, int](5, eq)
	assert.Equal(t, "lru", cache.StrategyName(c))
	assert.Equal(t, 5, c.MaxSize())
}

func TestNew_NilEqualityPanics(t *testing.T) {
	assert.PanicsWithValue(t, cache.ErrNilEquality, func() {
		cache.New[string, int](1, nil)
	})
	assert.Panics(t, func() {
		cache.New[string, int](3, nil)
	})
}

func TestNewLRU_InvalidMaxSize(t *testing.T) {
	_, err := cache.NewLRU[string, int](1, equality.Strict[string]())
	assert.ErrorIs(t, err, cache.ErrInvalidMaxSize)

	_, err = cache.NewLRU[string, int](2, nil)
	assert.ErrorIs(t, err, cache.ErrNilEquality)
}

func TestSingleton_PutReplaces(t *testing.T) {
	var evicted []string
	c := cache.NewSingleton(equality.Strict[string](), cache.WithOnEvict(func(e cache.Entry[string, int]) {
		evicted = append(evicted, e.Key)
	}))

	_, ok := c.Get("k1")
	assert.False(t, ok)
	assert.Empty(t, c.Entries())

	c.Put("k1", 1)
	v, ok := c.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Put("k2", 2)
	_, ok = c.Get("k1")
	assert.False(t, ok, "k1 must be gone after k2 replaced it")
	v, ok = c.Get("k2")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	assert.Equal(t, []cache.Entry[string, int]{{Key: "k2", Value: 2}}, c.Entries())
	assert.Equal(t, []string{"k1"}, evicted)
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok = c.Get("k2")
	assert.False(t, ok)
	assert.Equal(t, []string{"k1"}, evicted, "clear is not an eviction")
}

func TestSingleton_UsesInjectedEquality(t *testing.T) {
	c := cache.NewSingleton[equality.Args, string](equality.BuildArgumentComparator(nil))
	c.Put(equality.Args{1, "a"}, "v")

	v, ok := c.Get(equality.Args{1, "a"})
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = c.Get(equality.Args{1})
	assert.False(t, ok)
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	var evicted []int
	c, err := cache.NewLRU(3, equality.Strict[int](), cache.WithOnEvict(func(e cache.Entry[int, string]) {
		evicted = append(evicted, e.Key)
	}))
	require.NoError(t, err)

	c.Put(1, "one")
	c.Put(2, "two")
	c.Put(3, "three")
	assert.Equal(t, []int{3, 2, 1}, keysOf(c.Entries()))

	c.Put(4, "four")
	assert.Equal(t, []int{4, 3, 2}, keysOf(c.Entries()))
	assert.Equal(t, []int{1}, evicted)
	assert.Equal(t, 3, c.Len())
}

func TestLRU_GetPromotes(t *testing.T) {
	c, err := cache.NewLRU[int, string](3, equality.Strict[int]())
	require.NoError(t, err)

	c.Put(1, "one")
	c.Put(2, "two")
	c.Put(3, "three")

	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", v)
	assert.Equal(t, []int{1, 3, 2}, keysOf(c.Entries()))

	c.Put(4, "four")
	_, ok = c.Get(2)
	assert.False(t, ok, "2 became least recent once 1 was read")
	assert.Equal(t, []int{4, 1, 3}, keysOf(c.Entries()))
}

func TestLRU_PutDoesNotOverwrite(t *testing.T) {
	c, err := cache.NewLRU[int, string](2, equality.Strict[int]())
	require.NoError(t, err)

	c.Put(1, "one")
	c.Put(2, "two")
	c.Put(1, "uno")

	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", v)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []int{1, 2}, keysOf(c.Entries()), "existing key is promoted")
}

func TestLRU_Clear(t *testing.T) {
	c, err := cache.NewLRU[int, int](2, equality.Strict[int]())
	require.NoError(t, err)
	c.Put(1, 1)
	c.Put(2, 2)
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Entries())
	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Put(3, 3)
	assert.Equal(t, []int{3}, keysOf(c.Entries()))
}

func TestLRU_NeverExceedsMaxSize(t *testing.T) {
	c, err := cache.NewLRU[int, int](4, equality.Strict[int]())
	require.NoError(t, err)
	for i := range 100 {
		c.Put(i%7, i)
		assert.LessOrEqual(t, c.Len(), 4)
	}
}

func TestMatch(t *testing.T) {
	eq := equality.Strict[int]()
	single := cache.New[int, int](1, eq)
	lru := cache.New[int, int](2, eq)

	sizeOf := func(c cache.Cache[int, int]) int {
		return cache.Match(c,
			func(s *cache.Singleton[int, int]) int { return s.MaxSize() },
			func(l *cache.LRU[int, int]) int { return l.MaxSize() * 10 },
		)
	}
	assert.Equal(t, 1, sizeOf(single))
	assert.Equal(t, 20, sizeOf(lru))
}
