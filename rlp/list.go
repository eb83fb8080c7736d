package rlp

import "reflect"

// listSedes is the built-in fixed-arity tuple sedes: it applies one
// subsedes per positional element.
type listSedes struct {
	elems []Sedes
}

// List returns a sedes for a fixed-arity ordered tuple, applying subsedes[i]
// to the i-th element on both serialize and deserialize. Serialize accepts
// a []any or any concrete slice/array of the same length as subsedes (the
// latter so InferSedes can reuse List for an arbitrary inferred Go
// sequence without first copying it into a []any); Deserialize always
// returns a []any.
func List(subsedes ...Sedes) Sedes {
	return listSedes{elems: subsedes}
}

func (l listSedes) Serialize(value any) (Node, error) {
	v := reflect.ValueOf(value)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return nil, ErrSerialization
	}
	if v.Len() != len(l.elems) {
		return nil, ErrSerialization
	}
	seq := make(Seq, len(l.elems))
	for i, sedes := range l.elems {
		n, err := sedes.Serialize(v.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		seq[i] = n
	}
	return seq, nil
}

func (l listSedes) Deserialize(node Node) (any, error) {
	seq, ok := node.(Seq)
	if !ok {
		return nil, ErrExpectedList
	}
	if len(seq) != len(l.elems) {
		return nil, ErrDeserialization
	}
	values := make([]any, len(l.elems))
	for i, sedes := range l.elems {
		v, err := sedes.Deserialize(seq[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
