package rlp

// Raw codec (spec component C): encode a Node tree to canonical bytes, and
// decode canonical bytes back to a Node tree, carrying per-node provenance
// (the exact input slice that produced each node) for cache attachment.

// EncodeRaw encodes a Node tree to its canonical RLP byte sequence.
func EncodeRaw(n Node) ([]byte, error) {
	return appendNode(nil, n)
}

func appendNode(dst []byte, n Node) ([]byte, error) {
	switch v := n.(type) {
	case Leaf:
		if len(v) == 1 && v[0] < offsetString {
			return append(dst, v[0]), nil
		}
		return appendLengthPrefix2(dst, v, offsetString)

	case Seq:
		var payload []byte
		var err error
		for _, child := range v {
			payload, err = appendNode(payload, child)
			if err != nil {
				return nil, err
			}
		}
		return appendLengthPrefix2(dst, payload, offsetList)

	default:
		return nil, ErrEncodingType
	}
}

// appendLengthPrefix2 appends prefix(len(payload), offset) followed by
// payload itself to dst.
func appendLengthPrefix2(dst, payload []byte, offset byte) ([]byte, error) {
	dst, err := appendLengthPrefix(dst, len(payload), offset)
	if err != nil {
		return nil, err
	}
	return append(dst, payload...), nil
}

// encodedSpan pairs a decoded Node with the exact slice of the input that
// produced it, for every node in the tree. It is the decorated tree
// consumed by the cache-attachment pass in codec.go and then discarded.
type encodedSpan struct {
	encoded  []byte
	children []*encodedSpan // populated only when the paired Node is a Seq
}

// DecodeRawNode decodes a single Node starting at data[start], returning the
// bare tree and the offset one past its end. Callers needing the
// cache-warming provenance should use Decode instead.
func DecodeRawNode(data []byte, start int) (Node, int, error) {
	n, _, end, err := decodeItem(data, start)
	return n, end, err
}

// decodeItem consumes one RLP item at data[start] and returns the decoded
// Node, its encodedSpan, and the offset one past its end.
func decodeItem(data []byte, start int) (Node, *encodedSpan, int, error) {
	info, err := readLengthPrefix(data, start)
	if err != nil {
		return nil, nil, 0, err
	}

	payloadEnd := info.payloadStart + info.payloadLen
	if payloadEnd > len(data) {
		return nil, nil, 0, ErrInputTruncated
	}

	switch info.kind {
	case kindLeaf:
		payload := data[info.payloadStart:payloadEnd]
		span := &encodedSpan{encoded: data[start:payloadEnd]}
		return Leaf(payload), span, payloadEnd, nil

	default: // kindSeq
		var (
			children   Seq
			childSpans []*encodedSpan
			next       = info.payloadStart
		)
		for next < payloadEnd {
			child, childSpan, end, err := decodeItem(data, next)
			if err != nil {
				return nil, nil, 0, err
			}
			if end > payloadEnd {
				return nil, nil, 0, ErrListLengthMismatch
			}
			children = append(children, child)
			childSpans = append(childSpans, childSpan)
			next = end
		}
		span := &encodedSpan{encoded: data[start:payloadEnd], children: childSpans}
		return children, span, payloadEnd, nil
	}
}
