package purefn

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/memo_ive_go/equality"
	"go.uber.org/zap"
)

// ErrUnsupportedOptions is returned by ParseOptions for anything that is neither
// an Options record nor an equality function.
var ErrUnsupportedOptions = errors.New("unsupported memoize options")

const defaultName = "memoized"

// Options configures a memoized function.
type Options struct {
	// EqualityCheck compares individual arguments. Defaults to equality.DefaultEqualityCheck.
	EqualityCheck equality.EqualityFn[any]
	// ResultEqualityCheck, when set, lets a freshly computed result be replaced by
	// an equal result already in the cache.
	ResultEqualityCheck equality.EqualityFn[any]
	// MaxSize selects a single-entry cache when 1 (the default) and an LRU otherwise.
	MaxSize int
	// Logger receives debug events. Defaults to a no-op logger.
	Logger *zap.Logger
	// Name labels logs and metrics.
	Name string
}

type Option func(*Options)

func WithEqualityCheck(eq equality.EqualityFn[any]) Option {
	return func(o *Options) {
		o.EqualityCheck = eq
	}
}

func WithResultEqualityCheck(eq equality.EqualityFn[any]) Option {
	return func(o *Options) {
		o.ResultEqualityCheck = eq
	}
}

// WithTypedResultEquality is WithResultEqualityCheck for a known result type.
// Results of any other type are never considered equal.
func WithTypedResultEquality[O any](eq func(a, b O) bool) Option {
	return WithResultEqualityCheck(func(a, b any) bool {
		oa, okA := a.(O)
		ob, okB := b.(O)
		return okA && okB && eq(oa, ob)
	})
}

func WithMaxSize(maxSize int) Option {
	return func(o *Options) {
		o.MaxSize = maxSize
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithOptions copies every field of opts, zero values included.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

// ParseOptions accepts either an options record or the legacy shorthand of a bare
// equality function, which is the same as setting only EqualityCheck.
// A nil v yields the defaults.
func ParseOptions(v any) (Option, error) {
	switch v := v.(type) {
	case nil:
		return func(*Options) {}, nil
	case Options:
		return WithOptions(v), nil
	case *Options:
		if v == nil {
			return func(*Options) {}, nil
		}
		return WithOptions(*v), nil
	case equality.EqualityFn[any]:
		return WithEqualityCheck(v), nil
	case func(a, b any) bool:
		return WithEqualityCheck(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedOptions, v)
	}
}

func newOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.EqualityCheck == nil {
		o.EqualityCheck = equality.DefaultEqualityCheck
	}
	if o.MaxSize <= 0 {
		o.MaxSize = 1
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Name == "" {
		o.Name = defaultName
	}
	return o
}
