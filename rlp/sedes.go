package rlp

import (
	"math/big"
	"reflect"
	"unicode/utf8"

	"github.com/holiman/uint256"
)

// Sedes is a type-directed (de)serializer: it lifts a higher-level value
// into the raw Node domain and projects a Node back into a value. Sedes
// instances are stateless (spec component D).
type Sedes interface {
	Serialize(value any) (Node, error)
	Deserialize(node Node) (any, error)
}

// bigEndianInt is the built-in unsigned integer sedes. The zero value is
// ready to use; BigEndianInt is the package singleton.
type bigEndianInt struct{}

// BigEndianInt serializes non-negative integers (any native integer kind,
// *big.Int, or *uint256.Int) to their minimal big-endian representation
// (empty for zero) and deserializes back to uint64 when the value fits, or
// *big.Int otherwise.
var BigEndianInt Sedes = bigEndianInt{}

func (bigEndianInt) Serialize(value any) (Node, error) {
	switch v := value.(type) {
	case int:
		return serializeInt64(int64(v))
	case int8:
		return serializeInt64(int64(v))
	case int16:
		return serializeInt64(int64(v))
	case int32:
		return serializeInt64(int64(v))
	case int64:
		return serializeInt64(v)
	case uint:
		return Leaf(bigEndianNoLeadingZero(uint64(v))), nil
	case uint8:
		return Leaf(bigEndianNoLeadingZero(uint64(v))), nil
	case uint16:
		return Leaf(bigEndianNoLeadingZero(uint64(v))), nil
	case uint32:
		return Leaf(bigEndianNoLeadingZero(uint64(v))), nil
	case uint64:
		return Leaf(bigEndianNoLeadingZero(v)), nil
	case *big.Int:
		if v == nil {
			return nil, ErrSerialization
		}
		if v.Sign() < 0 {
			return nil, ErrSerialization
		}
		if v.Sign() == 0 {
			return Leaf(nil), nil
		}
		return Leaf(v.Bytes()), nil
	case *uint256.Int:
		if v == nil {
			return nil, ErrSerialization
		}
		if v.IsZero() {
			return Leaf(nil), nil
		}
		return Leaf(v.Bytes()), nil
	default:
		return nil, ErrSerialization
	}
}

func serializeInt64(v int64) (Node, error) {
	if v < 0 {
		return nil, ErrSerialization
	}
	return Leaf(bigEndianNoLeadingZero(uint64(v))), nil
}

func (bigEndianInt) Deserialize(node Node) (any, error) {
	leaf, ok := node.(Leaf)
	if !ok {
		return nil, ErrExpectedString
	}
	if len(leaf) > 0 && leaf[0] == 0 {
		return nil, ErrDeserialization
	}
	if len(leaf) <= 8 {
		var u uint64
		for _, b := range leaf {
			u = (u << 8) | uint64(b)
		}
		return u, nil
	}
	return new(big.Int).SetBytes(leaf), nil
}

// binarySedes is the built-in identity sedes over byte strings.
type binarySedes struct{}

// Binary serializes a byte slice or byte array (named byte types included)
// as-is; Deserialize requires a Leaf and returns a []byte.
var Binary Sedes = binarySedes{}

func (binarySedes) Serialize(value any) (Node, error) {
	if b, ok := value.([]byte); ok {
		return Leaf(b), nil
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) || v.Type().Elem().Kind() != reflect.Uint8 {
		return nil, ErrSerialization
	}
	b := make([]byte, v.Len())
	for i := range b {
		b[i] = byte(v.Index(i).Uint())
	}
	return Leaf(b), nil
}

func (binarySedes) Deserialize(node Node) (any, error) {
	leaf, ok := node.(Leaf)
	if !ok {
		return nil, ErrExpectedString
	}
	return []byte(leaf), nil
}

// booleanSedes is the built-in boolean sedes: true <-> 0x01, false <-> "".
type booleanSedes struct{}

// Boolean is the package singleton implementing booleanSedes.
var Boolean Sedes = booleanSedes{}

func (booleanSedes) Serialize(value any) (Node, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, ErrSerialization
	}
	if b {
		return Leaf{0x01}, nil
	}
	return Leaf(nil), nil
}

func (booleanSedes) Deserialize(node Node) (any, error) {
	leaf, ok := node.(Leaf)
	if !ok {
		return nil, ErrExpectedString
	}
	switch {
	case len(leaf) == 0:
		return false, nil
	case len(leaf) == 1 && leaf[0] == 0x01:
		return true, nil
	default:
		return nil, ErrDeserialization
	}
}

// textSedes is the built-in UTF-8 text sedes.
type textSedes struct{}

// Text is the package singleton implementing textSedes.
var Text Sedes = textSedes{}

func (textSedes) Serialize(value any) (Node, error) {
	s, ok := value.(string)
	if !ok {
		return nil, ErrSerialization
	}
	if !utf8.ValidString(s) {
		return nil, ErrSerialization
	}
	return Leaf(s), nil
}

func (textSedes) Deserialize(node Node) (any, error) {
	leaf, ok := node.(Leaf)
	if !ok {
		return nil, ErrExpectedString
	}
	if !utf8.Valid(leaf) {
		return nil, ErrDeserialization
	}
	return string(leaf), nil
}
