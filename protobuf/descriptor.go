package protobuf

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/signadot/pack"
	"github.com/signadot/pack/debug"
)

// Package is the proto package of synthesized descriptors.
const Package = "pack.schema"

// Described is implemented by objects that carry a message descriptor of
// their own instead of having one synthesized from their field list.
type Described interface {
	pack.Object
	// ProtoName is the full name of the message, e.g. "acme.v1.Person".
	ProtoName() string
	// FileDescriptor returns a serialized FileDescriptorSet that
	// declares the message and everything it depends on.
	FileDescriptor() []byte
}

// descriptors caches message descriptors by object type for synthesized
// schemas and by full name for described ones.
var descriptors sync.Map

// Descriptor returns the message descriptor o is coded with.
func Descriptor(o pack.Object) (protoreflect.MessageDescriptor, error) {
	if d, ok := o.(Described); ok {
		return described(d)
	}
	t := reflect.TypeOf(o)
	if md, ok := descriptors.Load(t); ok {
		return md.(protoreflect.MessageDescriptor), nil
	}
	md, err := synthesize(o.TypeName(), o.Fields())
	if err != nil {
		return nil, err
	}
	res, _ := descriptors.LoadOrStore(t, md)
	return res.(protoreflect.MessageDescriptor), nil
}

func described(d Described) (protoreflect.MessageDescriptor, error) {
	name := d.ProtoName()
	if md, ok := descriptors.Load(name); ok {
		return md.(protoreflect.MessageDescriptor), nil
	}
	set := &descriptorpb.FileDescriptorSet{}
	if err := proto.Unmarshal(d.FileDescriptor(), set); err != nil {
		return nil, fmt.Errorf("%w: descriptor of %s: %w", pack.ErrParse, name, err)
	}
	files, err := protodesc.NewFiles(set)
	if err != nil {
		return nil, fmt.Errorf("%w: descriptor of %s: %w", pack.ErrShape, name, err)
	}
	desc, err := files.FindDescriptorByName(protoreflect.FullName(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", pack.ErrShape, name, err)
	}
	md, ok := desc.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a message", pack.ErrShape, name)
	}
	descriptors.Store(name, md)
	return md, nil
}

// synthesize builds a proto2 file holding one message for the field list
// and one for each object type reachable from it. Objects are named by
// TypeName, so distinct types in one schema need distinct names.
func synthesize(typeName string, fields []pack.Field) (protoreflect.MessageDescriptor, error) {
	b := &builder{
		file: &descriptorpb.FileDescriptorProto{
			Name:    proto.String("pack/" + protoName(typeName) + ".proto"),
			Package: proto.String(Package),
			Syntax:  proto.String("proto2"),
		},
		declared: map[string]bool{},
	}
	name := b.message(typeName, fields)
	if debug.Proto() {
		debug.Logf("synthesized %s:\n%s\n", name, prototext.Format(b.file))
	}
	fd, err := protodesc.NewFile(b.file, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", pack.ErrShape, typeName, err)
	}
	return fd.Messages().ByName(protoreflect.Name(name)), nil
}

type builder struct {
	file     *descriptorpb.FileDescriptorProto
	declared map[string]bool
}

var (
	optional = descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum()
	repeated = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	message  = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
)

func ref(names ...string) *string {
	return proto.String("." + Package + "." + strings.Join(names, "."))
}

func (b *builder) message(typeName string, fields []pack.Field) string {
	name := protoName(typeName)
	if b.declared[name] {
		return name
	}
	b.declared[name] = true
	m := &descriptorpb.DescriptorProto{Name: proto.String(name)}
	b.file.MessageType = append(b.file.MessageType, m)
	names := map[string]bool{}
	var num int32
	for _, f := range fields {
		b.field(m, names, &num, f.Attribute)
	}
	return name
}

func (b *builder) field(m *descriptorpb.DescriptorProto, names map[string]bool, num *int32, a pack.Attribute) {
	key := a.Key()
	name := unique(names, fieldName(key))
	fp := &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(key),
		Label:    optional,
	}
	switch a.Kind() {
	case pack.ScalarKind:
		fp.Type = scalarType(a.(pack.Leaf).Type())
	case pack.EnumKind:
		fp.Type = descriptorpb.FieldDescriptorProto_TYPE_ENUM.Enum()
		fp.TypeName = b.enum(a.(pack.Named))
	case pack.ScalarListKind:
		l := a.(pack.ScalarSeq)
		if l.Type() == pack.UCharType {
			fp.Type = descriptorpb.FieldDescriptorProto_TYPE_BYTES.Enum()
			break
		}
		fp.Label = repeated
		fp.Type = scalarType(l.Type())
	case pack.ScalarMapKind:
		entry := &descriptorpb.DescriptorProto{
			Name: proto.String(mapEntryName(name)),
			Field: []*descriptorpb.FieldDescriptorProto{
				{Name: proto.String("key"), Number: proto.Int32(1), Label: optional,
					Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()},
				{Name: proto.String("value"), Number: proto.Int32(2), Label: optional,
					Type: scalarType(a.(pack.ScalarDict).Type())},
			},
			Options: &descriptorpb.MessageOptions{MapEntry: proto.Bool(true)},
		}
		m.NestedType = append(m.NestedType, entry)
		fp.Label = repeated
		fp.Type = message
		fp.TypeName = ref(m.GetName(), entry.GetName())
	case pack.ObjectListKind:
		o := a.(pack.ObjectSeq).NewObject()
		fp.Label = repeated
		fp.Type = message
		fp.TypeName = ref(b.message(o.TypeName(), o.Fields()))
	case pack.ObjectMapKind:
		// Keys may repeat, so entries are a repeated key/value message
		// rather than a proto map.
		o := a.(pack.ObjectDict).NewObject()
		elem := b.message(o.TypeName(), o.Fields())
		pair := &descriptorpb.DescriptorProto{
			Name: proto.String(camel(name) + "Pair"),
			Field: []*descriptorpb.FieldDescriptorProto{
				{Name: proto.String("key"), Number: proto.Int32(1), Label: optional,
					Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()},
				{Name: proto.String("value"), Number: proto.Int32(2), Label: optional,
					Type: message, TypeName: ref(elem)},
			},
		}
		m.NestedType = append(m.NestedType, pair)
		fp.Label = repeated
		fp.Type = message
		fp.TypeName = ref(m.GetName(), pair.GetName())
	case pack.ObjectKind:
		o := a.(pack.Object)
		fp.Type = message
		fp.TypeName = ref(b.message(o.TypeName(), o.Fields()))
	case pack.VariantKind:
		vt := a.(*pack.Variant)
		idx := proto.Int32(int32(len(m.OneofDecl)))
		m.OneofDecl = append(m.OneofDecl, &descriptorpb.OneofDescriptorProto{Name: proto.String(name)})
		for i := range vt.Len() {
			c := vt.NewCandidate(i)
			*num++
			m.Field = append(m.Field, &descriptorpb.FieldDescriptorProto{
				Name:       proto.String(unique(names, name+"_"+fieldName(c.TypeName()))),
				Number:     proto.Int32(*num),
				Label:      optional,
				Type:       message,
				TypeName:   ref(b.message(c.TypeName(), c.Fields())),
				OneofIndex: idx,
			})
		}
		return
	default:
		panic(&pack.TagError{What: "attribute kind", Tag: a.Kind().String()})
	}
	*num++
	fp.Number = proto.Int32(*num)
	m.Field = append(m.Field, fp)
}

func (b *builder) enum(n pack.Named) *string {
	name := protoName(n.EnumName())
	if !b.declared[name] {
		b.declared[name] = true
		e := &descriptorpb.EnumDescriptorProto{Name: proto.String(name)}
		nums := n.Numbers()
		for i, v := range n.Names() {
			e.Value = append(e.Value, &descriptorpb.EnumValueDescriptorProto{
				Name:   proto.String(name + "_" + fieldName(v)),
				Number: proto.Int32(nums[i]),
			})
		}
		b.file.EnumType = append(b.file.EnumType, e)
	}
	return ref(name)
}

func scalarType(t pack.Type) *descriptorpb.FieldDescriptorProto_Type {
	var res descriptorpb.FieldDescriptorProto_Type
	switch t {
	case pack.StringType:
		res = descriptorpb.FieldDescriptorProto_TYPE_STRING
	case pack.Int32Type:
		res = descriptorpb.FieldDescriptorProto_TYPE_INT32
	case pack.Int64Type:
		res = descriptorpb.FieldDescriptorProto_TYPE_INT64
	case pack.UInt32Type, pack.UCharType:
		res = descriptorpb.FieldDescriptorProto_TYPE_UINT32
	case pack.UInt64Type:
		res = descriptorpb.FieldDescriptorProto_TYPE_UINT64
	case pack.FloatType:
		res = descriptorpb.FieldDescriptorProto_TYPE_FLOAT
	case pack.DoubleType:
		res = descriptorpb.FieldDescriptorProto_TYPE_DOUBLE
	case pack.BoolType:
		res = descriptorpb.FieldDescriptorProto_TYPE_BOOL
	default:
		panic(&pack.TagError{What: "primitive type", Tag: strconv.Itoa(int(t))})
	}
	return res.Enum()
}

// fieldName maps a key to a proto identifier.
func fieldName(key string) string {
	var b strings.Builder
	for _, r := range key {
		if r < unicode.MaxASCII && (r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	s := b.String()
	switch {
	case s == "":
		return "value"
	case s[0] >= '0' && s[0] <= '9':
		return "_" + s
	}
	return s
}

func protoName(typeName string) string {
	return camel(fieldName(typeName))
}

func unique(names map[string]bool, name string) string {
	res := name
	for i := 2; names[res]; i++ {
		res = name + "_" + strconv.Itoa(i)
	}
	names[res] = true
	return res
}

func camel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// mapEntryName is the nested type name protodesc requires for the map
// field name.
func mapEntryName(name string) string {
	var b strings.Builder
	upper := true
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_':
			upper = true
		case upper && 'a' <= c && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
			upper = false
		default:
			b.WriteByte(c)
			upper = false
		}
	}
	return b.String() + "Entry"
}

// index resolves keys of a message to its fields and oneofs.
type index struct {
	fields map[string]protoreflect.FieldDescriptor
	oneofs map[string]protoreflect.OneofDescriptor
}

var indexes sync.Map

func indexOf(md protoreflect.MessageDescriptor) *index {
	if x, ok := indexes.Load(md); ok {
		return x.(*index)
	}
	x := &index{
		fields: map[string]protoreflect.FieldDescriptor{},
		oneofs: map[string]protoreflect.OneofDescriptor{},
	}
	fds := md.Fields()
	for i := range fds.Len() {
		fd := fds.Get(i)
		if od := fd.ContainingOneof(); od != nil && !od.IsSynthetic() {
			continue
		}
		x.fields[fd.JSONName()] = fd
	}
	for i := range fds.Len() {
		fd := fds.Get(i)
		if od := fd.ContainingOneof(); od != nil && !od.IsSynthetic() {
			continue
		}
		if _, ok := x.fields[string(fd.Name())]; !ok {
			x.fields[string(fd.Name())] = fd
		}
	}
	ods := md.Oneofs()
	for i := range ods.Len() {
		if od := ods.Get(i); !od.IsSynthetic() {
			x.oneofs[string(od.Name())] = od
		}
	}
	res, _ := indexes.LoadOrStore(md, x)
	return res.(*index)
}

func (x *index) field(key string) (protoreflect.FieldDescriptor, protoreflect.OneofDescriptor) {
	if fd, ok := x.fields[key]; ok {
		return fd, nil
	}
	if od, ok := x.oneofs[key]; ok {
		return nil, od
	}
	return nil, x.oneofs[fieldName(key)]
}
