package irtree

import (
	"encoding/base64"

	"github.com/signadot/pack"
	"github.com/signadot/pack/debug"
	"github.com/signadot/pack/ir"
)

// Writer builds an IR tree for pack.Encode. Nodes are created empty by
// Field, Elem and Entry and take their shape from the next call.
type Writer struct {
	Options pack.Options
}

var _ pack.Writer[*ir.Node] = (*Writer)(nil)

func NewWriter(opts ...pack.Option) *Writer {
	return &Writer{Options: pack.NewOptions(opts...)}
}

// Encode returns a as a new IR tree.
func Encode(a pack.Attribute, opts ...pack.Option) (*ir.Node, error) {
	root := ir.Null()
	if err := pack.Encode(NewWriter(opts...), root, a, opts...); err != nil {
		return nil, err
	}
	if debug.Encode() {
		debug.Logf("encoded %s:\n%s", a.Kind(), root)
	}
	return root, nil
}

func (w *Writer) Object(v *ir.Node) error {
	v.Type = ir.ObjectType
	return nil
}

func (w *Writer) Field(v *ir.Node, key string) (*ir.Node, error) {
	return v.Append(key, ir.Null()), nil
}

func (w *Writer) List(v *ir.Node, n int) error {
	v.Type = ir.ArrayType
	v.Values = make([]*ir.Node, 0, n)
	return nil
}

func (w *Writer) Elem(v *ir.Node, _ int) (*ir.Node, error) {
	return v.Push(ir.Null()), nil
}

func (w *Writer) Map(v *ir.Node) error {
	v.Type = ir.ObjectType
	return nil
}

func (w *Writer) Entry(v *ir.Node, key string) (*ir.Node, error) {
	return v.Append(key, ir.Null()), nil
}

// Scalar writes enums by name.
func (w *Writer) Scalar(v *ir.Node, s pack.Leaf) error {
	if s.Kind() == pack.EnumKind {
		ir.FromStringAt(v, s.(pack.Named).Name())
		return nil
	}
	setLeaf(v, s.Type(), s.Any(), w.Options.ValueAsString)
	return nil
}

// ScalarList writes byte lists as one base64 string.
func (w *Writer) ScalarList(v *ir.Node, l pack.ScalarSeq) error {
	if l.Type() == pack.UCharType {
		ir.FromStringAt(v, base64.StdEncoding.EncodeToString(pack.Bytes(l)))
		return nil
	}
	v.Type = ir.ArrayType
	for i := range l.Len() {
		setLeaf(v.Push(&ir.Node{}), l.Type(), l.AnyAt(i), w.Options.ValueAsString)
	}
	return nil
}

func (w *Writer) ScalarMap(v *ir.Node, m pack.ScalarDict) error {
	v.Type = ir.ObjectType
	for _, k := range m.Keys() {
		setLeaf(v.Append(k, &ir.Node{}), m.Type(), m.AnyOf(k), w.Options.ValueAsString)
	}
	return nil
}
