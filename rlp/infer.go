package rlp

import (
	"reflect"

	lru "github.com/hashicorp/golang-lru/v2"
)

// inferCache memoizes, per concrete reflect.Type, the built-in sedes chosen
// for that type. Sequence types are not cached, since their List sedes
// depends on the value's length and elements; every other cached type always
// maps to the same sedes, so entries never need to be invalidated. Bounded
// to avoid unbounded growth from pathological callers that construct many
// distinct anonymous types.
var inferCache, _ = lru.New[reflect.Type, Sedes](256)

// InferSedes selects a sedes for value using an ordered set of rules; the
// first matching rule wins. The boolean-before-integer ordering is
// load-bearing: bool must never match the integer rule.
func InferSedes(value any) (Sedes, error) {
	if value == nil {
		return nil, ErrNoSedes
	}

	// Rule 1: the value names its own sedes.
	if ri, ok := value.(recordInstance); ok {
		return ri.RLPSedes(), nil
	}

	// A negative integer matches no rule. Checked ahead of the cache, which
	// holds BigEndianInt for every integer type already seen.
	if isNegative(value) {
		return nil, ErrNoSedes
	}

	t := reflect.TypeOf(value)
	if cached, ok := inferCache.Get(t); ok {
		return cached, nil
	}

	sedes, err := inferByType(value, t)
	if err != nil {
		return nil, err
	}
	if _, isList := sedes.(listSedes); !isList {
		inferCache.Add(t, sedes)
	}
	return sedes, nil
}

func inferByType(value any, t reflect.Type) (Sedes, error) {
	// Rule 2: unsigned integer (bool is explicitly excluded; it is checked
	// first by Go's type switch rather than by Kind so that a named bool
	// type cannot fall through to Kind-based integer detection).
	switch value.(type) {
	case bool:
		return Boolean, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		if isNegative(value) {
			return nil, ErrNoSedes
		}
		return BigEndianInt, nil
	case string:
		return Text, nil
	case []byte:
		return Binary, nil
	}

	switch t.Kind() {
	case reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return Binary, nil
		}
		return inferSequence(value, t)
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return Binary, nil
		}
		return inferSequence(value, t)
	}

	return nil, ErrNoSedes
}

// inferSequence builds a List sedes whose elements are the recursively
// inferred sedes of each child (rule 4). A fixed array of bytes is handled
// by the caller before reaching here.
func inferSequence(value any, t reflect.Type) (Sedes, error) {
	v := reflect.ValueOf(value)
	elems := make([]Sedes, v.Len())
	for i := 0; i < v.Len(); i++ {
		s, err := InferSedes(v.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		elems[i] = s
	}
	return List(elems...), nil
}

func isNegative(value any) bool {
	switch v := value.(type) {
	case int:
		return v < 0
	case int8:
		return v < 0
	case int16:
		return v < 0
	case int32:
		return v < 0
	case int64:
		return v < 0
	default:
		return false
	}
}
