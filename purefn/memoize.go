package purefn

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/memo_ive_go/cache"
	"github.com/on-the-ground/memo_ive_go/equality"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Args is the argument snapshot a memoized function receives and is keyed on.
type Args = equality.Args

// Memoized wraps a function with a cache keyed on its argument list.
//
// A Memoized owns its cache exclusively. It is not safe for concurrent use:
// callers sharing one across goroutines must guard every Call, ResetCache and
// Stats with their own lock.
type Memoized[O any] struct {
	id           uuid.UUID
	name         string
	fn           func(Args) (O, error)
	cache        cache.Cache[Args, O]
	resultEquals equality.EqualityFn[any]
	logger       *zap.Logger
	stats        Stats
}

// CreateMemoized wraps fn so that calls with equal arguments reuse the first result.
//
// Errors returned by fn are passed through and never cached.
func CreateMemoized[O any](fn func(Args) (O, error), opts ...Option) *Memoized[O] {
	o := newOptions(opts)
	m := &Memoized[O]{
		id:           uuid.New(),
		name:         o.Name,
		fn:           fn,
		resultEquals: o.ResultEqualityCheck,
	}
	m.logger = o.Logger.With(
		zap.String("memoizer", m.name),
		zap.String("memoizer_id", m.id.String()),
	)
	m.cache = cache.New(
		o.MaxSize,
		equality.BuildArgumentComparator(o.EqualityCheck),
		cache.WithOnEvict(m.onEvict),
	)
	m.logger.Debug("created memoized function",
		zap.String("strategy", cache.StrategyName(m.cache)),
		zap.Int("max_size", m.cache.MaxSize()),
	)
	return m
}

// Call returns the cached result for args or computes, stores and returns it.
func (m *Memoized[O]) Call(args ...any) (O, error) {
	key := make(Args, len(args))
	copy(key, args)

	if v, ok := m.cache.Get(key); ok {
		m.stats.Hits++
		m.debug("memoized hit", key)
		return v, nil
	}
	m.stats.Misses++

	// fn gets its own copy so it cannot rewrite the stored key.
	start := time.Now()
	v, err := m.fn(slices.Clone(key))
	if err != nil {
		m.debug("memoized computation failed", key, zap.Error(err))
		var zero O
		return zero, err
	}
	m.stats.Recomputations++
	m.stats.LastComputation = timespan.BetweenTimes(start, time.Now())

	if m.resultEquals != nil {
		if existing, ok := m.findEqualResult(v); ok {
			m.stats.Deduplicated++
			m.debug("memoized result deduplicated", key)
			v = existing
		}
	}

	m.cache.Put(key, v)
	m.debug("memoized miss", key)
	return v, nil
}

// findEqualResult looks for a cached value the result equality accepts as equal to v.
func (m *Memoized[O]) findEqualResult(v O) (O, bool) {
	for _, e := range m.cache.Entries() {
		if m.resultEquals(e.Value, v) {
			return e.Value, true
		}
	}
	var zero O
	return zero, false
}

// ResetCache drops every cached entry. The function stays usable and refills
// the cache on later calls.
func (m *Memoized[O]) ResetCache() {
	m.cache.Clear()
	m.logger.Debug("memoized cache reset")
}

// Stats returns a snapshot of the counters and the current cache occupancy.
func (m *Memoized[O]) Stats() Stats {
	s := m.stats
	s.Strategy = cache.StrategyName(m.cache)
	s.Size = m.cache.Len()
	s.MaxSize = m.cache.MaxSize()
	return s
}

// ResetStats zeroes the counters without touching the cache.
func (m *Memoized[O]) ResetStats() {
	m.stats = Stats{}
}

func (m *Memoized[O]) Name() string { return m.name }

func (m *Memoized[O]) ID() uuid.UUID { return m.id }

func (m *Memoized[O]) onEvict(e cache.Entry[Args, O]) {
	m.stats.Evictions++
	m.debug("memoized entry evicted", e.Key)
}

func (m *Memoized[O]) debug(msg string, key Args, fields ...zap.Field) {
	ce := m.logger.Check(zapcore.DebugLevel, msg)
	if ce == nil {
		return
	}
	fields = append(fields,
		zap.Uint64("args_digest", equality.Digest(key)),
		zap.Int("arity", len(key)),
	)
	ce.Write(fields...)
}
