package rlp

import (
	"bytes"
	"errors"
	"testing"
)

func TestListSerializeDeserialize(t *testing.T) {
	l := List(Text, BigEndianInt)
	node, err := l.Serialize([]any{"dog", uint64(5)})
	if err != nil {
		t.Fatal(err)
	}
	enc, err := EncodeRaw(node)
	if err != nil {
		t.Fatal(err)
	}

	decoded, _, err := DecodeRawNode(enc, 0)
	if err != nil {
		t.Fatal(err)
	}
	values, err := l.Deserialize(decoded)
	if err != nil {
		t.Fatal(err)
	}
	got := values.([]any)
	if got[0].(string) != "dog" || got[1].(uint64) != 5 {
		t.Fatalf("got %v", got)
	}
}

func TestListSerializeAcceptsTypedArray(t *testing.T) {
	l := List(BigEndianInt, BigEndianInt)
	node, err := l.Serialize([2]uint64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	enc, err := EncodeRaw(node)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc, []byte{0xC2, 0x01, 0x02}) {
		t.Fatalf("got %x", enc)
	}
}

func TestListArityMismatch(t *testing.T) {
	l := List(Text, BigEndianInt)
	if _, err := l.Serialize([]any{"only-one"}); !errors.Is(err, ErrSerialization) {
		t.Fatalf("got %v, want ErrSerialization", err)
	}
	seq := Seq{Leaf("only-one")}
	if _, err := l.Deserialize(seq); !errors.Is(err, ErrDeserialization) {
		t.Fatalf("got %v, want ErrDeserialization", err)
	}
}

func TestListExpectsSeq(t *testing.T) {
	l := List(Text)
	if _, err := l.Deserialize(Leaf("dog")); !errors.Is(err, ErrExpectedList) {
		t.Fatalf("got %v, want ErrExpectedList", err)
	}
}
