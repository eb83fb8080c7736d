package rlp

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

func TestBigEndianIntSerialize(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want []byte
	}{
		{"uint64(0)", uint64(0), []byte{0x80}},
		{"uint64(1024)", uint64(1024), []byte{0x82, 0x04, 0x00}},
		{"int(127)", int(127), []byte{0x7f}},
		{"big.Int(256)", big.NewInt(256), []byte{0x82, 0x01, 0x00}},
		{"uint256(0)", uint256.NewInt(0), []byte{0x80}},
		{"uint256(1024)", uint256.NewInt(1024), []byte{0x82, 0x04, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := BigEndianInt.Serialize(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			got, err := EncodeRaw(n)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got %x, want %x", got, tt.want)
			}
		})
	}
}

func TestBigEndianIntRejectsNegative(t *testing.T) {
	if _, err := BigEndianInt.Serialize(-1); !errors.Is(err, ErrSerialization) {
		t.Fatalf("got %v, want ErrSerialization", err)
	}
	if _, err := BigEndianInt.Serialize(big.NewInt(-1)); !errors.Is(err, ErrSerialization) {
		t.Fatalf("got %v, want ErrSerialization", err)
	}
}

func TestBigEndianIntDeserialize(t *testing.T) {
	v, err := BigEndianInt.Deserialize(Leaf{0x04, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if v != uint64(1024) {
		t.Fatalf("got %v, want 1024", v)
	}

	// 9-byte value: exceeds uint64, must come back as *big.Int.
	wide := make([]byte, 9)
	wide[0] = 1
	v, err = BigEndianInt.Deserialize(Leaf(wide))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(*big.Int); !ok {
		t.Fatalf("got %T, want *big.Int", v)
	}
}

func TestBigEndianIntRejectsLeadingZero(t *testing.T) {
	if _, err := BigEndianInt.Deserialize(Leaf{0x00, 0x01}); !errors.Is(err, ErrDeserialization) {
		t.Fatalf("got %v, want ErrDeserialization", err)
	}
}

func TestBooleanVectors(t *testing.T) {
	trueNode, err := Boolean.Serialize(true)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := EncodeRaw(trueNode); !bytes.Equal(got, []byte{0x01}) {
		t.Fatalf("true: got %x", got)
	}
	falseNode, err := Boolean.Serialize(false)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := EncodeRaw(falseNode); !bytes.Equal(got, []byte{0x80}) {
		t.Fatalf("false: got %x", got)
	}

	v, err := Boolean.Deserialize(Leaf{0x01})
	if err != nil || v != true {
		t.Fatalf("got %v, %v", v, err)
	}
	v, err = Boolean.Deserialize(Leaf(nil))
	if err != nil || v != false {
		t.Fatalf("got %v, %v", v, err)
	}
	if _, err := Boolean.Deserialize(Leaf{0x02}); !errors.Is(err, ErrDeserialization) {
		t.Fatalf("got %v, want ErrDeserialization", err)
	}
}

func TestBinaryIdentity(t *testing.T) {
	in := []byte{0xde, 0xad, 0xbe, 0xef}
	n, err := Binary.Serialize(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Binary.Deserialize(n)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.([]byte), in) {
		t.Fatalf("got %x, want %x", out, in)
	}
}

func TestTextRoundTrip(t *testing.T) {
	n, err := Text.Serialize("dog")
	if err != nil {
		t.Fatal(err)
	}
	got, err := EncodeRaw(n)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x83, 0x64, 0x6f, 0x67}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
	v, err := Text.Deserialize(Leaf("dog"))
	if err != nil || v != "dog" {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestTextRejectsInvalidUTF8(t *testing.T) {
	if _, err := Text.Serialize(string([]byte{0xff, 0xfe})); !errors.Is(err, ErrSerialization) {
		t.Fatalf("got %v, want ErrSerialization", err)
	}
	if _, err := Text.Deserialize(Leaf{0xff, 0xfe}); !errors.Is(err, ErrDeserialization) {
		t.Fatalf("got %v, want ErrDeserialization", err)
	}
}
