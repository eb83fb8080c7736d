package rlp

// Public façade (spec component G): Encode/Decode, wiring sedes selection,
// cache population, and strictness together.

type encodeConfig struct {
	sedes           Sedes
	inferSerializer bool
	cache           bool
}

// EncodeOption configures a single Encode call.
type EncodeOption func(*encodeConfig)

// WithSedes supplies an explicit sedes, bypassing InferSedes. It also
// suppresses caching regardless of WithoutCache: an explicit sedes is
// assumed to differ from a record's standard encoding.
func WithSedes(s Sedes) EncodeOption {
	return func(c *encodeConfig) { c.sedes = s }
}

// WithoutInference disables InferSedes; value must already be a Node.
func WithoutInference() EncodeOption {
	return func(c *encodeConfig) { c.inferSerializer = false }
}

// WithoutCache disables storing the result in a record's cache slot.
func WithoutCache() EncodeOption {
	return func(c *encodeConfig) { c.cache = false }
}

// Encode RLP-encodes value.
//
// By default value is serialized first via InferSedes and then encoded.
// If value implements Cacheable and already holds a non-empty cached
// encoding, and no explicit sedes was supplied, that cached encoding is
// returned directly. Otherwise, if value implements Cacheable, the result
// is stored in its cache (unless WithoutCache or WithSedes was used).
func Encode(value any, opts ...EncodeOption) ([]byte, error) {
	cfg := encodeConfig{inferSerializer: true, cache: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	cacheable, isCacheable := value.(Cacheable)
	if isCacheable && cfg.sedes == nil {
		if cached := cacheable.CachedRLP(); len(cached) > 0 {
			return cached, nil
		}
	}
	reallyCache := isCacheable && cfg.cache && cfg.sedes == nil

	var (
		node Node
		err  error
	)
	switch {
	case cfg.sedes != nil:
		node, err = cfg.sedes.Serialize(value)
	case cfg.inferSerializer:
		var sedes Sedes
		sedes, err = InferSedes(value)
		if err == nil {
			node, err = sedes.Serialize(value)
		}
	default:
		var ok bool
		node, ok = value.(Node)
		if !ok {
			err = ErrSerialization
		}
	}
	if err != nil {
		return nil, err
	}

	result, err := EncodeRaw(node)
	if err != nil {
		return nil, err
	}
	if reallyCache {
		cacheable.SetCachedRLP(result)
	}
	return result, nil
}

type decodeConfig struct {
	sedes  Sedes
	strict bool
}

// DecodeOption configures a single Decode call.
type DecodeOption func(*decodeConfig)

// WithDeserializer supplies the sedes used to turn the decoded Node tree
// into a value. Without it, Decode returns the bare Node.
func WithDeserializer(s Sedes) DecodeOption {
	return func(c *decodeConfig) { c.sedes = s }
}

// NonStrict allows trailing bytes after the root item instead of failing.
func NonStrict() DecodeOption {
	return func(c *decodeConfig) { c.strict = false }
}

// Decode decodes data as RLP. Without WithDeserializer it returns the bare
// Node tree. With WithDeserializer it applies the sedes and, as a side
// effect, attaches the per-node encoded slice of every cache-bearing
// record encountered during deserialization (see the pre-order walk in
// applyCache).
func Decode(data []byte, opts ...DecodeOption) (any, error) {
	cfg := decodeConfig{strict: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	node, span, end, err := decodeItem(data, 0)
	if err != nil {
		return nil, err
	}
	if cfg.strict && end != len(data) {
		return nil, ErrTrailingBytes
	}

	if cfg.sedes == nil {
		return node, nil
	}

	obj, err := cfg.sedes.Deserialize(node)
	if err != nil {
		return nil, err
	}
	applyCache(obj, span)
	return obj, nil
}

// applyCache walks obj in parallel with span, a pre-order traversal of the
// decorated tree produced by decodeItem. Every node that implements
// Cacheable receives the exact encoded slice that produced it, regardless
// of whether it is also a sequence; sequence-shaped values ([]any, or a
// record's ordered fields) recurse one span per child.
func applyCache(obj any, span *encodedSpan) {
	if span == nil {
		return
	}
	if c, ok := obj.(Cacheable); ok {
		c.SetCachedRLP(span.encoded)
	}

	switch v := obj.(type) {
	case []any:
		for i, child := range v {
			if i < len(span.children) {
				applyCache(child, span.children[i])
			}
		}
	default:
		if ri, ok := obj.(recordInstance); ok {
			values, err := ri.RLPSedes().Values(obj)
			if err != nil {
				return
			}
			for i, fv := range values {
				if i < len(span.children) {
					applyCache(fv, span.children[i])
				}
			}
		}
	}
}
