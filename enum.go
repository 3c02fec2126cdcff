package pack

import (
	"fmt"
	"reflect"
	"strconv"
)

// EnumValue names one member of an enum.
type EnumValue[E ~int32] struct {
	Name  string
	Value E
}

// Enum is a leaf restricted to a closed set of named integers. Its default
// is the first declared member unless WithDefault says otherwise.
type Enum[E ~int32] struct {
	key      string
	values   []EnumValue[E]
	val, def E
}

func NewEnum[E ~int32](key string, values ...EnumValue[E]) *Enum[E] {
	e := &Enum[E]{key: key, values: values}
	if len(values) > 0 {
		e.val = values[0].Value
		e.def = values[0].Value
	}
	return e
}

// WithDefault sets both the default and the current value.
func (e *Enum[E]) WithDefault(d E) *Enum[E] {
	e.def = d
	e.val = d
	return e
}

func (e *Enum[E]) Key() string { return e.key }
func (e *Enum[E]) Kind() Kind { return EnumKind }
func (e *Enum[E]) Type() Type { return Int32Type }

func (e *Enum[E]) Get() E { return e.val }
func (e *Enum[E]) Default() E { return e.def }

func (e *Enum[E]) Set(x E) error {
	if _, ok := e.lookup(x); !ok {
		return fmt.Errorf("%w: %d is not a member of %s", ErrShape, x, e.EnumName())
	}
	e.val = x
	return nil
}

func (e *Enum[E]) lookup(x E) (string, bool) {
	for _, v := range e.values {
		if v.Value == x {
			return v.Name, true
		}
	}
	return "", false
}

// Name returns the name of the current value.
func (e *Enum[E]) Name() string {
	n, ok := e.lookup(e.val)
	if !ok {
		return strconv.FormatInt(int64(e.val), 10)
	}
	return n
}

func (e *Enum[E]) SetName(name string) error {
	for _, v := range e.values {
		if v.Name == name {
			e.val = v.Value
			return nil
		}
	}
	return fmt.Errorf("%w: %q is not a member of %s", ErrShape, name, e.EnumName())
}

func (e *Enum[E]) Int() int32 { return int32(e.val) }

func (e *Enum[E]) SetInt(i int32) error {
	return e.Set(E(i))
}

func (e *Enum[E]) Names() []string {
	res := make([]string, len(e.values))
	for i := range e.values {
		res[i] = e.values[i].Name
	}
	return res
}

func (e *Enum[E]) Numbers() []int32 {
	res := make([]int32, len(e.values))
	for i := range e.values {
		res[i] = int32(e.values[i].Value)
	}
	return res
}

func (e *Enum[E]) Values() []EnumValue[E] {
	return append([]EnumValue[E](nil), e.values...)
}

// EnumName is the Go type name of E.
func (e *Enum[E]) EnumName() string {
	n := reflect.TypeFor[E]().Name()
	if n == "" {
		return "Enum"
	}
	return n
}

func (e *Enum[E]) HasValue() bool { return e.val != e.def }
func (e *Enum[E]) Clear() { e.val = e.def }

func (e *Enum[E]) Any() any { return int32(e.val) }

func (e *Enum[E]) SetAny(x any) error {
	if s, ok := x.(string); ok {
		return e.SetName(s)
	}
	i, err := Coerce(Int32Type, x)
	if err != nil {
		return err
	}
	return e.SetInt(i.(int32))
}

func (e *Enum[E]) String() string { return e.Name() }

// Parse accepts a member name or its decimal number.
func (e *Enum[E]) Parse(s string) error {
	if err := e.SetName(s); err == nil {
		return nil
	}
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %q is not a member of %s", ErrParse, s, e.EnumName())
	}
	return e.SetInt(int32(i))
}

func (e *Enum[E]) equal(o Attribute) bool {
	oe, ok := o.(*Enum[E])
	return ok && e.val == oe.val
}

func (e *Enum[E]) assign(o Attribute) error {
	oe, ok := o.(*Enum[E])
	if !ok {
		return fmt.Errorf("%w: cannot assign %T to %T", ErrShape, o, e)
	}
	e.val = oe.val
	return nil
}
