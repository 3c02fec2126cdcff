package pack

import "fmt"

// Value is a primitive leaf with a default captured at construction.
type Value[T Primitive] struct {
	key      string
	val, def T
}

type (
	String = Value[string]
	Int32  = Value[int32]
	Int64  = Value[int64]
	UInt32 = Value[uint32]
	UInt64 = Value[uint64]
	Float  = Value[float32]
	Double = Value[float64]
	Bool   = Value[bool]
	UChar  = Value[uint8]
)

// NewValue returns a leaf coded as key whose default is def.
func NewValue[T Primitive](key string, def T) *Value[T] {
	return &Value[T]{key: key, val: def, def: def}
}

func NewString(key string) *String { return NewValue(key, "") }
func NewInt32(key string) *Int32 { return NewValue[int32](key, 0) }
func NewInt64(key string) *Int64 { return NewValue[int64](key, 0) }
func NewUInt32(key string) *UInt32 { return NewValue[uint32](key, 0) }
func NewUInt64(key string) *UInt64 { return NewValue[uint64](key, 0) }
func NewFloat(key string) *Float { return NewValue[float32](key, 0) }
func NewDouble(key string) *Double { return NewValue[float64](key, 0) }
func NewBool(key string) *Bool { return NewValue(key, false) }
func NewUChar(key string) *UChar { return NewValue[uint8](key, 0) }

func (v *Value[T]) Key() string { return v.key }
func (v *Value[T]) Kind() Kind { return ScalarKind }
func (v *Value[T]) Type() Type { return TypeOf[T]() }

func (v *Value[T]) Get() T { return v.val }
func (v *Value[T]) Default() T { return v.def }

// Set assigns x. Floats within epsilon of the current value are ignored.
func (v *Value[T]) Set(x T) {
	if equalPrim(v.val, x) {
		return
	}
	v.val = x
}

// HasValue reports whether v differs from its default.
func (v *Value[T]) HasValue() bool {
	return !equalPrim(v.val, v.def)
}

func (v *Value[T]) Clear() {
	v.val = v.def
}

func (v *Value[T]) Any() any {
	return v.val
}

func (v *Value[T]) SetAny(x any) error {
	c, err := Coerce(v.Type(), x)
	if err != nil {
		return err
	}
	v.Set(c.(T))
	return nil
}

func (v *Value[T]) String() string {
	return FormatPrim(v.Type(), v.val)
}

func (v *Value[T]) Parse(s string) error {
	x, err := ParsePrim(v.Type(), s)
	if err != nil {
		return err
	}
	v.Set(x.(T))
	return nil
}

func (v *Value[T]) equal(o Attribute) bool {
	ov, ok := o.(*Value[T])
	return ok && equalPrim(v.val, ov.val)
}

func (v *Value[T]) assign(o Attribute) error {
	ov, ok := o.(*Value[T])
	if !ok {
		return fmt.Errorf("%w: cannot assign %T to %T", ErrShape, o, v)
	}
	v.val = ov.val
	return nil
}
