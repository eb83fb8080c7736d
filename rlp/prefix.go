package rlp

// Length prefix framing (spec component B). The two offsets distinguishing
// strings from lists, as laid out by the original RLP scheme.
const (
	offsetString = 0x80
	offsetList   = 0xC0

	shortStringMax = 0x80 + 55 // 0xB7, inclusive
	longStringMax  = 0xC0 - 1  // 0xBF, inclusive
	shortListMax   = 0xC0 + 55 // 0xF7, inclusive
)

// maxLength is the largest payload length this codec will ever frame: a
// 64-bit length.
const maxLength = ^uint64(0)

// appendLengthPrefix appends the length prefix for a payload of the given
// length to dst and returns the result. offset is offsetString or
// offsetList.
func appendLengthPrefix(dst []byte, length int, offset byte) ([]byte, error) {
	if length < 0 {
		return nil, ErrEncodingType
	}
	if length < 56 {
		return append(dst, offset+byte(length)), nil
	}
	if uint64(length) > maxLength {
		return nil, ErrEncodingTooLarge
	}
	lenBytes := bigEndianNoLeadingZero(uint64(length))
	dst = append(dst, offset+55+byte(len(lenBytes)))
	return append(dst, lenBytes...), nil
}

// bigEndianNoLeadingZero returns n in big-endian form with no leading zero
// byte; for n == 0 it returns an empty slice (never needed here since all
// callers pass length >= 56, but kept total for reuse by integer codecs).
func bigEndianNoLeadingZero(n uint64) []byte {
	if n == 0 {
		return nil
	}
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = byte(n)
		n >>= 8
	}
	i := 0
	for i < 8 && buf[i] == 0 {
		i++
	}
	out := make([]byte, 8-i)
	copy(out, buf[i:])
	return out
}

// nodeKind distinguishes a decoded item's shape without yet knowing its
// value.
type nodeKind int

const (
	kindLeaf nodeKind = iota
	kindSeq
)

// prefixInfo is the result of reading one length prefix at a position.
type prefixInfo struct {
	prefixLen    int      // number of bytes the prefix itself occupies
	kind         nodeKind
	payloadLen   int
	payloadStart int // offset, relative to the same base as pos, of the first payload byte
}

// readLengthPrefix reads the prefix at data[pos] and returns its
// decomposition, enforcing every RLP canonicality check.
func readLengthPrefix(data []byte, pos int) (prefixInfo, error) {
	if pos >= len(data) {
		return prefixInfo{}, ErrInputTruncated
	}
	b0 := data[pos]

	switch {
	case b0 < offsetString:
		// Single byte; the byte itself is the one-byte payload.
		return prefixInfo{prefixLen: 0, kind: kindLeaf, payloadLen: 1, payloadStart: pos}, nil

	case b0 <= shortStringMax:
		length := int(b0 - offsetString)
		payloadStart := pos + 1
		if length == 1 {
			if payloadStart >= len(data) {
				return prefixInfo{}, ErrInputTruncated
			}
			if data[payloadStart] < offsetString {
				return prefixInfo{}, ErrNonCanonical
			}
		}
		return prefixInfo{prefixLen: 1, kind: kindLeaf, payloadLen: length, payloadStart: payloadStart}, nil

	case b0 <= longStringMax:
		ll := int(b0 - shortStringMax)
		length, payloadStart, err := readLongLength(data, pos, ll)
		if err != nil {
			return prefixInfo{}, err
		}
		return prefixInfo{prefixLen: 1 + ll, kind: kindLeaf, payloadLen: length, payloadStart: payloadStart}, nil

	case b0 <= shortListMax:
		length := int(b0 - offsetList)
		return prefixInfo{prefixLen: 1, kind: kindSeq, payloadLen: length, payloadStart: pos + 1}, nil

	default: // 0xF8..0xFF
		ll := int(b0 - shortListMax)
		length, payloadStart, err := readLongLength(data, pos, ll)
		if err != nil {
			return prefixInfo{}, err
		}
		return prefixInfo{prefixLen: 1 + ll, kind: kindSeq, payloadLen: length, payloadStart: payloadStart}, nil
	}
}

// readLongLength reads the ll-byte big-endian length field following the
// one-byte tag at data[pos], enforcing "no leading zero" and "length >= 56".
func readLongLength(data []byte, pos, ll int) (length, payloadStart int, err error) {
	start := pos + 1
	end := start + ll
	if end > len(data) {
		return 0, 0, ErrInputTruncated
	}
	lenBytes := data[start:end]
	if lenBytes[0] == 0x00 {
		return 0, 0, ErrNonCanonical
	}
	var l uint64
	for _, x := range lenBytes {
		l = (l << 8) | uint64(x)
	}
	if l < 56 {
		return 0, 0, ErrNonCanonical
	}
	return int(l), end, nil
}
