// Package purefn memoizes functions keyed on their argument lists.
//
// Memoization is not just a performance trick here.
// Wrapping a function forces the developer to ask:
//
//	→ "Is this function really pure?"
//	→ "Do downstream consumers rely on getting the same value back?"
//
// The second question matters in selector pipelines, where a consumer detects change
// by identity. Returning the cached value for equal inputs keeps it stable, and the
// optional result equality check keeps it stable even across different inputs
// that happen to produce equal outputs.
//
// Features:
//   - CreateMemoized: the untyped core over an Args snapshot.
//   - MemoizeI1O1 to MemoizeI4O2, MemoizeI1O1E to MemoizeI4O1E: typed wrappers for common arities.
//   - A single-entry cache by default, or an LRU when MaxSize is above 1.
//   - Pluggable argument and result equality (see package equality).
//   - Hit/miss/eviction stats and zap debug logging.
//
// Every memoized function owns its own cache; nothing is shared between wrappers.
// Calls run synchronously and there is no locking, so a memoized function must have a
// single logical owner.
//
// Example:
//
//	total, m := purefn.MemoizeI1O1(func(items []Item) int {
//	    sum := 0
//	    for _, it := range items {
//	        sum += it.Price
//	    }
//	    return sum
//	}, purefn.WithMaxSize(4))
//
//	_ = total(cart) // computes
//	_ = total(cart) // cached
//	m.ResetCache()
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package purefn
