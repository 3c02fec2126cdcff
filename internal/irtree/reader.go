package irtree

import (
	"encoding/base64"
	"fmt"

	"github.com/signadot/pack"
	"github.com/signadot/pack/debug"
	"github.com/signadot/pack/ir"
)

// Reader navigates an IR tree for pack.Decode. Null nodes read as absent:
// leaves keep their value and containers come out empty.
type Reader struct {
	// Flat accepts the shapes of formats without typed leaves or arrays
	// (ZPL): a list may be an object of numbered children, and an empty
	// object stands for a missing scalar.
	Flat bool
}

var _ pack.Reader[*ir.Node] = (*Reader)(nil)

// Decode reads n into a.
func Decode(n *ir.Node, a pack.Attribute, flat bool) error {
	if debug.Decode() {
		debug.Logf("decoding into %s:\n%s", a.Kind(), n)
	}
	return pack.Decode(&Reader{Flat: flat}, n, a)
}

func (r *Reader) Object(v *ir.Node) error {
	switch v.Type {
	case ir.ObjectType, ir.NullType:
		return nil
	}
	return shapeErr(v, "object")
}

func (r *Reader) Keys(v *ir.Node) []string {
	if v.Type != ir.ObjectType {
		return nil
	}
	res := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		res[i] = f.String
	}
	return res
}

func (r *Reader) Field(v *ir.Node, key string) (*ir.Node, bool) {
	if v.Type != ir.ObjectType {
		return nil, false
	}
	res := ir.Get(v, key)
	return res, res != nil
}

func (r *Reader) List(v *ir.Node) (int, error) {
	switch v.Type {
	case ir.ArrayType:
		return len(v.Values), nil
	case ir.NullType:
		return 0, nil
	case ir.ObjectType:
		if r.Flat {
			return len(v.Values), nil
		}
	}
	return 0, shapeErr(v, "list")
}

func (r *Reader) Elem(v *ir.Node, i int) *ir.Node {
	return v.Values[i]
}

func (r *Reader) Entries(v *ir.Node) ([]pack.Entry[*ir.Node], error) {
	switch v.Type {
	case ir.NullType:
		return nil, nil
	case ir.ObjectType:
	default:
		return nil, shapeErr(v, "map")
	}
	res := make([]pack.Entry[*ir.Node], len(v.Fields))
	for i, f := range v.Fields {
		res[i] = pack.Entry[*ir.Node]{Key: f.String, Value: v.Values[i]}
	}
	return res, nil
}

func (r *Reader) absent(v *ir.Node) bool {
	return v.Type == ir.NullType || r.Flat && v.Type == ir.ObjectType && len(v.Fields) == 0
}

// Scalar accepts enum names and numbers for enums, and the text form of
// any primitive.
func (r *Reader) Scalar(v *ir.Node, s pack.Leaf) error {
	if r.absent(v) {
		return nil
	}
	if v.Type == ir.StringType {
		return s.Parse(v.String)
	}
	x, err := leafValue(s.Type(), v)
	if err != nil {
		return err
	}
	if err := s.SetAny(x); err != nil {
		return fmt.Errorf("%s: %w", v.Path(), err)
	}
	return nil
}

func (r *Reader) ScalarList(v *ir.Node, l pack.ScalarSeq) error {
	if l.Type() == pack.UCharType && v.Type == ir.StringType {
		b, err := base64.StdEncoding.DecodeString(v.String)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", pack.ErrParse, v.Path(), err)
		}
		return pack.SetBytes(l, b)
	}
	if _, err := r.List(v); err != nil {
		return err
	}
	l.Clear()
	for _, e := range v.Values {
		x, err := leafValue(l.Type(), e)
		if err != nil {
			return err
		}
		if err := l.AppendAny(x); err != nil {
			return fmt.Errorf("%s: %w", e.Path(), err)
		}
	}
	return nil
}

// ScalarMap keeps the last value of a repeated key.
func (r *Reader) ScalarMap(v *ir.Node, m pack.ScalarDict) error {
	if v.Type == ir.NullType {
		m.Clear()
		return nil
	}
	if v.Type != ir.ObjectType {
		return shapeErr(v, "map")
	}
	m.Clear()
	for i, f := range v.Fields {
		x, err := leafValue(m.Type(), v.Values[i])
		if err != nil {
			return err
		}
		if err := m.PutAny(f.String, x); err != nil {
			return fmt.Errorf("%s: %w", v.Values[i].Path(), err)
		}
	}
	return nil
}
