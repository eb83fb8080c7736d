package rlp

import "sync/atomic"

// Field couples a declared name with the sedes used to (de)serialize it.
// The name exists for documentation/introspection only; ordering (not
// name lookup) drives (de)serialization.
type Field struct {
	Name  string
	Sedes Sedes
}

// RecordSedes is the static descriptor that makes a Go struct type into an
// ordered named-field record: an ordered (field_name, sedes) list plus the
// two closures needed to move between an instance and its ordered field
// values. It is built once per record type (typically as a package-level
// var) and never mutated, avoiding any need for reflection over the record
// type at encode/decode time.
type RecordSedes struct {
	Fields []Field

	// Values extracts the ordered field values of instance, one per Field.
	Values func(instance any) ([]any, error)

	// New constructs an instance from ordered field values, one per Field,
	// in the order produced by deserializing each Field.Sedes.
	New func(values []any) (any, error)
}

func (r *RecordSedes) Serialize(value any) (Node, error) {
	values, err := r.Values(value)
	if err != nil {
		return nil, err
	}
	if len(values) != len(r.Fields) {
		return nil, ErrSerialization
	}
	seq := make(Seq, len(r.Fields))
	for i, f := range r.Fields {
		n, err := f.Sedes.Serialize(values[i])
		if err != nil {
			return nil, err
		}
		seq[i] = n
	}
	return seq, nil
}

func (r *RecordSedes) Deserialize(node Node) (any, error) {
	seq, ok := node.(Seq)
	if !ok {
		return nil, ErrExpectedList
	}
	if len(seq) != len(r.Fields) {
		return nil, ErrDeserialization
	}
	values := make([]any, len(r.Fields))
	for i, f := range r.Fields {
		v, err := f.Sedes.Deserialize(seq[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return r.New(values)
}

// recordInstance is implemented by concrete record types to expose the
// descriptor that serializes/deserializes them. This lets a value name
// its own sedes without reflecting over its type.
type recordInstance interface {
	RLPSedes() *RecordSedes
}

// Cacheable is implemented by any value carrying a memoized encoded form.
// Embed Cache to get it for free.
type Cacheable interface {
	CachedRLP() []byte
	SetCachedRLP(b []byte)
	ClearCachedRLP()
}

// Cache is an embeddable cache slot for a standard encoding, implemented
// with atomic.Pointer so that two goroutines racing to populate an empty
// cache on the same record both compute the same bytes (the encoding is
// canonical) and the last store simply wins — no lock is required.
// Grounded on the atomic.Value per-field cache embedded in vechain-thor's
// block.Header.
type Cache struct {
	cached atomic.Pointer[[]byte]
}

// CachedRLP returns the memoized encoding, or nil if the cache is empty.
func (c *Cache) CachedRLP() []byte {
	p := c.cached.Load()
	if p == nil {
		return nil
	}
	return *p
}

// SetCachedRLP stores b as the memoized encoding.
func (c *Cache) SetCachedRLP(b []byte) {
	c.cached.Store(&b)
}

// ClearCachedRLP empties the cache. Records that allow field mutation after
// construction must call this on every mutation; records that are
// immutable (the expected default) never need to.
func (c *Cache) ClearCachedRLP() {
	c.cached.Store(nil)
}
