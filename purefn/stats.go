package purefn

import "github.com/rickb777/date/v2/timespan"

// Stats describes how a memoized function has been used since creation or
// the last ResetStats.
type Stats struct {
	Strategy string

	Hits   uint64
	Misses uint64
	// Recomputations counts successful calls of the wrapped function.
	Recomputations uint64
	Evictions      uint64
	// Deduplicated counts results swapped for an equal cached value.
	Deduplicated uint64

	Size    int
	MaxSize int

	// LastComputation spans the most recent successful call of the wrapped function.
	LastComputation timespan.TimeSpan
}
