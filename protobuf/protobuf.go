package protobuf

import (
	"fmt"
	"reflect"
	"strings"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/signadot/pack"
)

// wrapperKey identifies the descriptor of a non-object root.
type wrapperKey struct {
	t     reflect.Type
	names string
}

// root returns an empty message for a and a cursor at the value a codes
// to. Attributes other than objects are wrapped as the only field of a
// message named Root.
func root(a pack.Attribute) (*dynamicpb.Message, *cursor, error) {
	if o, ok := a.(pack.Object); ok && a.Kind() == pack.ObjectKind {
		md, err := Descriptor(o)
		if err != nil {
			return nil, nil, err
		}
		m := dynamicpb.NewMessage(md)
		return m, &cursor{msg: m}, nil
	}
	k := wrapperKey{t: reflect.TypeOf(a)}
	if vt, ok := a.(*pack.Variant); ok {
		k.names = strings.Join(vt.TypeNames(), ",")
	}
	var md protoreflect.MessageDescriptor
	if x, ok := descriptors.Load(k); ok {
		md = x.(protoreflect.MessageDescriptor)
	} else {
		var err error
		md, err = synthesize("Root", []pack.Field{{Name: "Value", Attribute: a}})
		if err != nil {
			return nil, nil, err
		}
		descriptors.Store(k, md)
	}
	m := dynamicpb.NewMessage(md)
	c := &cursor{msg: m}
	if a.Kind() == pack.VariantKind {
		c.oneof = md.Oneofs().Get(0)
	} else {
		c.fd = md.Fields().Get(0)
	}
	return m, c, nil
}

// Message encodes a into a new dynamic message.
func Message(a pack.Attribute, opts ...pack.Option) (proto.Message, error) {
	m, c, err := root(a)
	if err != nil {
		return nil, err
	}
	if err := pack.Encode[*cursor](writer{}, c, a, opts...); err != nil {
		return nil, err
	}
	return m, nil
}

// Serialize returns the binary wire form of a. Map entries are ordered
// by key so equal trees serialize to equal bytes.
func Serialize(a pack.Attribute, opts ...pack.Option) ([]byte, error) {
	m, err := Message(a, opts...)
	if err != nil {
		return nil, err
	}
	d, err := proto.MarshalOptions{Deterministic: true}.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pack.ErrShape, err)
	}
	return d, nil
}

// Deserialize decodes the binary wire form d into a.
func Deserialize(d []byte, a pack.Attribute) error {
	m, c, err := root(a)
	if err != nil {
		return err
	}
	if err := proto.Unmarshal(d, m); err != nil {
		return fmt.Errorf("%w: %w", pack.ErrParse, err)
	}
	return pack.Decode[*cursor](reader{}, c, a)
}

// Text returns a in protobuf text format, one field per line when
// pack.PrettyPrint is given.
func Text(a pack.Attribute, opts ...pack.Option) (string, error) {
	m, err := Message(a, opts...)
	if err != nil {
		return "", err
	}
	mo := prototext.MarshalOptions{}
	if pack.NewOptions(opts...).PrettyPrint {
		mo.Multiline = true
		mo.Indent = "  "
	}
	d, err := mo.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("%w: %w", pack.ErrShape, err)
	}
	return string(d), nil
}

func SerializeFile(path string, a pack.Attribute, opts ...pack.Option) error {
	d, err := Serialize(a, opts...)
	if err != nil {
		return err
	}
	return pack.WriteFile(path, d)
}

func DeserializeFile(path string, a pack.Attribute) error {
	d, err := pack.ReadFile(path)
	if err != nil {
		return err
	}
	return Deserialize(d, a)
}
