package equality

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
)

// ShallowEqual compares containers one level deep.
//
// Slices and arrays are equal when their elements are pairwise equal, maps when
// they hold the same keys with equal values, structs when their fields are equal,
// and pointers to structs when the pointed-to structs are. Every nested comparison
// uses DefaultEqualityCheck, so nothing below the first level is walked.
func ShallowEqual(a, b any) bool {
	if DefaultEqualityCheck(a, b) {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	return shallowEqual(va, vb)
}

func shallowEqual(va, vb reflect.Value) bool {
	switch va.Kind() {
	case reflect.Slice, reflect.Array:
		if va.Len() != vb.Len() {
			return false
		}
		for i := range va.Len() {
			if !strictEqual(va.Index(i), vb.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if va.IsNil() != vb.IsNil() || va.Len() != vb.Len() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			other := vb.MapIndex(iter.Key())
			if !other.IsValid() || !strictEqual(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range va.NumField() {
			if !strictEqual(va.Field(i), vb.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Pointer:
		if va.IsNil() || vb.IsNil() || va.Elem().Kind() != reflect.Struct {
			return false
		}
		return shallowEqual(va.Elem(), vb.Elem())
	default:
		return false
	}
}

// Deep compares values structurally with go-cmp.
//
// Like cmp.Equal, it panics on unexported fields unless opts say how to handle them.
func Deep(opts ...cmp.Option) EqualityFn[any] {
	return func(a, b any) bool {
		return cmp.Equal(a, b, opts...)
	}
}

// Proto compares protobuf messages with proto.Equal and anything else with
// DefaultEqualityCheck.
func Proto() EqualityFn[any] {
	return func(a, b any) bool {
		ma, okA := a.(proto.Message)
		mb, okB := b.(proto.Message)
		if okA && okB {
			return proto.Equal(ma, mb)
		}
		return DefaultEqualityCheck(a, b)
	}
}

var canonicalMode = func() cbor.EncMode {
	mode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Errorf("cbor deterministic mode: %w", err))
	}
	return mode
}()

// Canonical treats two values of the same type as equal when their
// deterministic CBOR encodings match byte for byte. Values that cannot be
// encoded are compared with DefaultEqualityCheck.
func Canonical() EqualityFn[any] {
	return func(a, b any) bool {
		if DefaultEqualityCheck(a, b) {
			return true
		}
		if reflect.TypeOf(a) != reflect.TypeOf(b) {
			return false
		}
		ea, err := canonicalMode.Marshal(a)
		if err != nil {
			return false
		}
		eb, err := canonicalMode.Marshal(b)
		if err != nil {
			return false
		}
		return bytes.Equal(ea, eb)
	}
}

// Digest fingerprints an argument list for log correlation.
// Equal digests do not imply equal arguments.
//
// Only the top level is read: each argument's dynamic type, its value when it is
// a scalar, and its length when it has one. Nested values are never walked, so
// the cost is bounded and cyclic values are safe.
func Digest(args Args) uint64 {
	d := xxhash.New()
	var buf []byte
	for _, arg := range args {
		buf = appendDigestPart(buf[:0], arg)
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

func appendDigestPart(buf []byte, arg any) []byte {
	if arg == nil {
		return append(buf, "<nil>;"...)
	}
	v := reflect.ValueOf(arg)
	buf = append(buf, v.Type().String()...)
	buf = append(buf, '=')
	switch v.Kind() {
	case reflect.Bool:
		buf = strconv.AppendBool(buf, v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf = strconv.AppendInt(buf, v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		buf = strconv.AppendUint(buf, v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		buf = strconv.AppendFloat(buf, v.Float(), 'g', -1, 64)
	case reflect.String:
		buf = strconv.AppendQuote(buf, v.String())
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		buf = append(buf, "len:"...)
		buf = strconv.AppendInt(buf, int64(v.Len()), 10)
	}
	return append(buf, ';')
}
