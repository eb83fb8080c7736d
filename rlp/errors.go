package rlp

import "errors"

// Sentinel errors returned by the codec. The codec returns them unwrapped,
// with no offending byte or offset attached; callers should still use
// errors.Is to test for a specific kind.
var (
	// ErrEncodingType is returned by EncodeRaw when a Node is neither a Leaf
	// nor a Seq.
	ErrEncodingType = errors.New("rlp: cannot encode node of unknown type")

	// ErrEncodingTooLarge is returned when a payload's length would not fit
	// in a 64-bit length prefix.
	ErrEncodingTooLarge = errors.New("rlp: payload too large to encode")

	// ErrSerialization is returned by a built-in sedes when asked to
	// serialize a value it does not accept (e.g. a negative integer).
	ErrSerialization = errors.New("rlp: value cannot be serialized")

	// ErrInputTruncated is returned when the decoder reads past the end of
	// the input buffer.
	ErrInputTruncated = errors.New("rlp: input truncated")

	// ErrExpectedString is returned by a leaf sedes when a Seq is
	// encountered where a Leaf was expected.
	ErrExpectedString = errors.New("rlp: expected string, got list")

	// ErrExpectedList is returned when a Leaf is encountered where a Seq
	// was expected (by List or a record sedes).
	ErrExpectedList = errors.New("rlp: expected list, got string")

	// ErrNonCanonical covers every non-canonical encoding the decoder must
	// reject: a single byte < 0x80 wrapped in a short-string prefix, a
	// leading zero in a long-form length field, and long form used where
	// short form would suffice.
	ErrNonCanonical = errors.New("rlp: non-canonical encoding")

	// ErrTrailingBytes is returned by a strict decode when the input is
	// longer than the root item.
	ErrTrailingBytes = errors.New("rlp: input contains trailing bytes after the root item")

	// ErrListLengthMismatch is returned when a list's children do not
	// exactly fill its declared payload length.
	ErrListLengthMismatch = errors.New("rlp: list payload length mismatch")

	// ErrDeserialization is returned by a sedes that was handed a
	// well-formed Node it cannot turn into a value (arity mismatch,
	// leading-zero integer, invalid boolean byte, invalid UTF-8, ...).
	ErrDeserialization = errors.New("rlp: value cannot be deserialized")

	// ErrNoSedes is returned by InferSedes when no rule in the dispatch
	// table applies to the given value.
	ErrNoSedes = errors.New("rlp: no sedes found for value")
)
