package rlp

import (
	"sync"

	"github.com/ethrlp/rlp/internal/metrics"
)

// EncoderPool is a pooled encoder for high-throughput encoding scenarios
// such as batch-serializing many values into a single RLP list (e.g. a
// block's transaction list). It reuses a scratch buffer across calls via
// sync.Pool, reducing GC pressure, and reports its activity through an
// internal metrics.Registry.
type EncoderPool struct {
	pool sync.Pool
	reg  *metrics.Registry
}

// NewEncoderPool creates a pool reporting into its own metrics.Registry.
func NewEncoderPool() *EncoderPool {
	return NewEncoderPoolWithRegistry(metrics.NewRegistry())
}

// NewEncoderPoolWithRegistry creates a pool reporting into reg, so callers
// can share one registry across multiple pools or export it alongside
// other process metrics.
func NewEncoderPoolWithRegistry(reg *metrics.Registry) *EncoderPool {
	ep := &EncoderPool{reg: reg}
	ep.pool.New = func() any {
		reg.Counter("rlp.pool.misses").Inc()
		buf := make([]byte, 0, defaultBufSize)
		return &buf
	}
	return ep
}

// defaultBufSize is the initial capacity for pooled scratch buffers.
const defaultBufSize = 4096

// maxBufSize caps the buffer size retained in the pool; oversized buffers
// are left for the GC instead of being pooled.
const maxBufSize = 1 << 20 // 1 MiB

// Metrics returns the registry this pool reports into.
func (ep *EncoderPool) Metrics() *metrics.Registry { return ep.reg }

func (ep *EncoderPool) get() *[]byte {
	ep.reg.Counter("rlp.pool.gets").Inc()
	buf := ep.pool.Get().(*[]byte)
	*buf = (*buf)[:0]
	return buf
}

func (ep *EncoderPool) put(buf *[]byte) {
	if cap(*buf) > maxBufSize {
		return
	}
	ep.pool.Put(buf)
}

// Encode calls the package-level Encode and records the encode count, byte
// throughput and encoded size into the pool's registry. It does not use the
// pooled scratch buffer; only EncodeBatch does.
func (ep *EncoderPool) Encode(value any, opts ...EncodeOption) ([]byte, error) {
	result, err := Encode(value, opts...)
	if err != nil {
		return nil, err
	}
	ep.reg.Counter("rlp.pool.encodes").Inc()
	ep.reg.Counter("rlp.pool.bytes").Add(int64(len(result)))
	ep.reg.Histogram("rlp.pool.encode_size_bytes").Observe(float64(len(result)))
	return result, nil
}

// EncodeBatch encodes each item independently (via InferSedes) and wraps
// the concatenation in a single RLP list header — the shape used to
// serialize a transaction list, a log list, or any other homogeneous batch.
func (ep *EncoderPool) EncodeBatch(items []any) ([]byte, error) {
	buf := ep.get()
	defer ep.put(buf)

	for _, item := range items {
		enc, err := Encode(item)
		if err != nil {
			return nil, err
		}
		*buf = append(*buf, enc...)
	}

	result, err := appendLengthPrefix(nil, len(*buf), offsetList)
	if err != nil {
		return nil, err
	}
	result = append(result, *buf...)

	ep.reg.Counter("rlp.pool.encodes").Add(int64(len(items)))
	ep.reg.Counter("rlp.pool.bytes").Add(int64(len(result)))
	ep.reg.Histogram("rlp.pool.encode_size_bytes").Observe(float64(len(result)))
	return result, nil
}
