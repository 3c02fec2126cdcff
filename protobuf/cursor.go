package protobuf

import (
	"fmt"
	"slices"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/signadot/pack"
)

// cursor addresses a value under construction or being read: the message
// itself when fd and oneof are nil, otherwise one of its fields or
// oneofs. Object resolves a message field to its message in place.
type cursor struct {
	msg   protoreflect.Message
	fd    protoreflect.FieldDescriptor
	oneof protoreflect.OneofDescriptor
}

func shape(fd protoreflect.FieldDescriptor, want string) error {
	return fmt.Errorf("%w: field %s is not %s", pack.ErrShape, fd.FullName(), want)
}

func isMessage(fd protoreflect.FieldDescriptor) bool {
	return fd.Message() != nil && !fd.IsList() && !fd.IsMap()
}

func isMessageList(fd protoreflect.FieldDescriptor) bool {
	return fd.IsList() && fd.Message() != nil
}

// isPairList reports whether fd is a repeated key/value message, the
// layout of an object map.
func isPairList(fd protoreflect.FieldDescriptor) bool {
	if !isMessageList(fd) {
		return false
	}
	fs := fd.Message().Fields()
	k, v := fs.ByNumber(1), fs.ByNumber(2)
	return k != nil && k.Kind() == protoreflect.StringKind && v != nil && isMessage(v)
}

func isObjectMap(fd protoreflect.FieldDescriptor) bool {
	if fd.IsMap() {
		return fd.MapKey().Kind() == protoreflect.StringKind && fd.MapValue().Message() != nil
	}
	return isPairList(fd)
}

func toProto(fd protoreflect.FieldDescriptor, v any) (protoreflect.Value, error) {
	var t pack.Type
	switch fd.Kind() {
	case protoreflect.BoolKind:
		t = pack.BoolType
	case protoreflect.StringKind:
		t = pack.StringType
	case protoreflect.EnumKind, protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		t = pack.Int32Type
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		t = pack.Int64Type
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		t = pack.UInt32Type
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		t = pack.UInt64Type
	case protoreflect.FloatKind:
		t = pack.FloatType
	case protoreflect.DoubleKind:
		t = pack.DoubleType
	default:
		return protoreflect.Value{}, shape(fd, "a scalar")
	}
	x, err := pack.Coerce(t, v)
	if err != nil {
		return protoreflect.Value{}, fmt.Errorf("field %s: %w", fd.FullName(), err)
	}
	if fd.Kind() == protoreflect.EnumKind {
		return protoreflect.ValueOfEnum(protoreflect.EnumNumber(x.(int32))), nil
	}
	return protoreflect.ValueOf(x), nil
}

func fromProto(fd protoreflect.FieldDescriptor, v protoreflect.Value) any {
	if fd.Kind() == protoreflect.EnumKind {
		return int32(v.Enum())
	}
	return v.Interface()
}

// memberOf returns the oneof field holding candidate i of vt. Members are
// matched by message name, then by position.
func memberOf(od protoreflect.OneofDescriptor, vt *pack.Variant, i int) (protoreflect.FieldDescriptor, error) {
	name := protoreflect.Name(protoName(vt.TypeNames()[i]))
	fs := od.Fields()
	for j := range fs.Len() {
		if f := fs.Get(j); f.Message() != nil && f.Message().Name() == name {
			return f, nil
		}
	}
	if i < fs.Len() && fs.Get(i).Message() != nil {
		return fs.Get(i), nil
	}
	return nil, fmt.Errorf("%w: oneof %s has no member for %s", pack.ErrShape, od.FullName(), name)
}

func candidateOf(vt *pack.Variant, od protoreflect.OneofDescriptor, f protoreflect.FieldDescriptor) int {
	if f.Message() == nil {
		return -1
	}
	if i := slices.IndexFunc(vt.TypeNames(), func(n string) bool {
		return protoreflect.Name(protoName(n)) == f.Message().Name()
	}); i >= 0 {
		return i
	}
	if od == nil {
		return -1
	}
	fs := od.Fields()
	for j := range min(fs.Len(), vt.Len()) {
		if fs.Get(j) == f {
			return j
		}
	}
	return -1
}

type writer struct{}

var (
	_ pack.Writer[*cursor]        = writer{}
	_ pack.VariantWriter[*cursor] = writer{}
)

func (writer) Object(v *cursor) error {
	switch {
	case v.oneof != nil:
		return nil
	case v.fd == nil:
		return nil
	case !isMessage(v.fd):
		return shape(v.fd, "a message")
	}
	v.msg = v.msg.Mutable(v.fd).Message()
	v.fd = nil
	return nil
}

func (writer) Field(v *cursor, key string) (*cursor, error) {
	fd, od := indexOf(v.msg.Descriptor()).field(key)
	if fd == nil && od == nil {
		return nil, fmt.Errorf("%w: message %s has no field %q", pack.ErrShape, v.msg.Descriptor().FullName(), key)
	}
	return &cursor{msg: v.msg, fd: fd, oneof: od}, nil
}

func (writer) List(v *cursor, _ int) error {
	if v.fd == nil || !isMessageList(v.fd) {
		return fmt.Errorf("%w: expected a repeated message", pack.ErrShape)
	}
	return nil
}

func (writer) Elem(v *cursor, _ int) (*cursor, error) {
	e := v.msg.Mutable(v.fd).List().AppendMutable()
	return &cursor{msg: e.Message()}, nil
}

func (writer) Map(v *cursor) error {
	if v.fd == nil || !isObjectMap(v.fd) {
		return fmt.Errorf("%w: expected a map of messages", pack.ErrShape)
	}
	return nil
}

func (writer) Entry(v *cursor, key string) (*cursor, error) {
	if v.fd.IsMap() {
		m := v.msg.Mutable(v.fd).Map()
		k := protoreflect.ValueOfString(key).MapKey()
		if m.Has(k) {
			return nil, fmt.Errorf("%w: map field %s cannot repeat key %q", pack.ErrShape, v.fd.FullName(), key)
		}
		return &cursor{msg: m.Mutable(k).Message()}, nil
	}
	pair := v.msg.Mutable(v.fd).List().AppendMutable().Message()
	fs := pair.Descriptor().Fields()
	pair.Set(fs.ByNumber(1), protoreflect.ValueOfString(key))
	return &cursor{msg: pair, fd: fs.ByNumber(2)}, nil
}

func (writer) Scalar(v *cursor, s pack.Leaf) error {
	if v.fd == nil || v.fd.IsList() || v.fd.IsMap() {
		return fmt.Errorf("%w: expected a scalar field", pack.ErrShape)
	}
	if n, ok := s.(pack.Named); ok && v.fd.Kind() == protoreflect.StringKind {
		v.msg.Set(v.fd, protoreflect.ValueOfString(n.Name()))
		return nil
	}
	x, err := toProto(v.fd, s.Any())
	if err != nil {
		return err
	}
	v.msg.Set(v.fd, x)
	return nil
}

// ScalarList writes byte lists to a bytes field when there is one.
func (writer) ScalarList(v *cursor, l pack.ScalarSeq) error {
	switch {
	case v.fd == nil:
		return fmt.Errorf("%w: expected a repeated field", pack.ErrShape)
	case v.fd.Kind() == protoreflect.BytesKind && !v.fd.IsList():
		v.msg.Set(v.fd, protoreflect.ValueOfBytes(pack.Bytes(l)))
		return nil
	case !v.fd.IsList() || v.fd.Message() != nil:
		return shape(v.fd, "a repeated scalar")
	}
	list := v.msg.Mutable(v.fd).List()
	for i := range l.Len() {
		x, err := toProto(v.fd, l.AnyAt(i))
		if err != nil {
			return err
		}
		list.Append(x)
	}
	return nil
}

func (writer) ScalarMap(v *cursor, d pack.ScalarDict) error {
	if v.fd == nil || !v.fd.IsMap() {
		return fmt.Errorf("%w: expected a map field", pack.ErrShape)
	}
	m := v.msg.Mutable(v.fd).Map()
	for _, k := range d.Keys() {
		x, err := toProto(v.fd.MapValue(), d.AnyOf(k))
		if err != nil {
			return err
		}
		m.Set(protoreflect.ValueOfString(k).MapKey(), x)
	}
	return nil
}

// Variant sets the oneof member of candidate i. Without a oneof, the
// member is written to the message field itself.
func (writer) Variant(v *cursor, vt *pack.Variant, i int) (*cursor, error) {
	if v.oneof == nil {
		return v, nil
	}
	f, err := memberOf(v.oneof, vt, i)
	if err != nil {
		return nil, err
	}
	return &cursor{msg: v.msg, fd: f}, nil
}

type reader struct{}

var (
	_ pack.Reader[*cursor]        = reader{}
	_ pack.VariantReader[*cursor] = reader{}
)

func (reader) Object(v *cursor) error {
	switch {
	case v.oneof != nil:
		return nil
	case v.fd == nil:
		return nil
	case !isMessage(v.fd):
		return shape(v.fd, "a message")
	}
	v.msg = v.msg.Get(v.fd).Message()
	v.fd = nil
	return nil
}

func (reader) Keys(v *cursor) []string {
	var keys []string
	v.msg.Range(func(fd protoreflect.FieldDescriptor, _ protoreflect.Value) bool {
		keys = append(keys, fd.JSONName())
		return true
	})
	return keys
}

func (reader) Field(v *cursor, key string) (*cursor, bool) {
	fd, od := indexOf(v.msg.Descriptor()).field(key)
	switch {
	case fd != nil:
		if !v.msg.Has(fd) {
			return nil, false
		}
	case od != nil:
		if v.msg.WhichOneof(od) == nil {
			return nil, false
		}
	default:
		return nil, false
	}
	return &cursor{msg: v.msg, fd: fd, oneof: od}, true
}

func (reader) List(v *cursor) (int, error) {
	if v.fd == nil || !isMessageList(v.fd) {
		return 0, fmt.Errorf("%w: expected a repeated message", pack.ErrShape)
	}
	return v.msg.Get(v.fd).List().Len(), nil
}

func (reader) Elem(v *cursor, i int) *cursor {
	return &cursor{msg: v.msg.Get(v.fd).List().Get(i).Message()}
}

// Entries returns proto map entries in key order and pair lists in wire
// order.
func (reader) Entries(v *cursor) ([]pack.Entry[*cursor], error) {
	if v.fd == nil || !isObjectMap(v.fd) {
		return nil, fmt.Errorf("%w: expected a map of messages", pack.ErrShape)
	}
	var res []pack.Entry[*cursor]
	if v.fd.IsMap() {
		m := v.msg.Get(v.fd).Map()
		m.Range(func(k protoreflect.MapKey, x protoreflect.Value) bool {
			res = append(res, pack.Entry[*cursor]{Key: k.String(), Value: &cursor{msg: x.Message()}})
			return true
		})
		slices.SortFunc(res, func(a, b pack.Entry[*cursor]) int {
			return strings.Compare(a.Key, b.Key)
		})
		return res, nil
	}
	list := v.msg.Get(v.fd).List()
	for i := range list.Len() {
		pair := list.Get(i).Message()
		fs := pair.Descriptor().Fields()
		res = append(res, pack.Entry[*cursor]{
			Key:   pair.Get(fs.ByNumber(1)).String(),
			Value: &cursor{msg: pair, fd: fs.ByNumber(2)},
		})
	}
	return res, nil
}

func (reader) Scalar(v *cursor, s pack.Leaf) error {
	if v.fd == nil || v.fd.IsList() || v.fd.IsMap() {
		return fmt.Errorf("%w: expected a scalar field", pack.ErrShape)
	}
	x := v.msg.Get(v.fd)
	if v.fd.Kind() == protoreflect.StringKind {
		if _, ok := s.(pack.Named); ok {
			return s.Parse(x.String())
		}
	}
	return s.SetAny(fromProto(v.fd, x))
}

func (reader) ScalarList(v *cursor, l pack.ScalarSeq) error {
	switch {
	case v.fd == nil:
		return fmt.Errorf("%w: expected a repeated field", pack.ErrShape)
	case v.fd.Kind() == protoreflect.BytesKind && !v.fd.IsList():
		return pack.SetBytes(l, v.msg.Get(v.fd).Bytes())
	case !v.fd.IsList() || v.fd.Message() != nil:
		return shape(v.fd, "a repeated scalar")
	}
	l.Clear()
	list := v.msg.Get(v.fd).List()
	for i := range list.Len() {
		if err := l.AppendAny(fromProto(v.fd, list.Get(i))); err != nil {
			return err
		}
	}
	return nil
}

func (reader) ScalarMap(v *cursor, d pack.ScalarDict) error {
	if v.fd == nil || !v.fd.IsMap() {
		return fmt.Errorf("%w: expected a map field", pack.ErrShape)
	}
	d.Clear()
	var err error
	v.msg.Get(v.fd).Map().Range(func(k protoreflect.MapKey, x protoreflect.Value) bool {
		err = d.PutAny(k.String(), fromProto(v.fd.MapValue(), x))
		return err == nil
	})
	return err
}

// Variant reports the set oneof member. Without a oneof, a set message
// field is matched to a candidate by message name.
func (reader) Variant(v *cursor, vt *pack.Variant) (int, *cursor, bool) {
	f := v.fd
	if v.oneof != nil {
		f = v.msg.WhichOneof(v.oneof)
	}
	if f == nil || !isMessage(f) || !v.msg.Has(f) {
		return -1, nil, false
	}
	i := candidateOf(vt, v.oneof, f)
	if i < 0 {
		return -1, nil, false
	}
	return i, &cursor{msg: v.msg.Get(f).Message()}, true
}
