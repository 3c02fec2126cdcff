package pack

import (
	"fmt"
	"reflect"

	"github.com/signadot/pack/debug"
)

// Variant holds at most one object chosen from a fixed list of candidate
// types. It codes exactly as its active member.
type Variant struct {
	key        string
	candidates []func(key string) Object
	types      []reflect.Type
	names      []string
	keys       [][]string

	index int
	value Object
}

// Candidate adapts a typed constructor for NewVariant.
func Candidate[T Object](f func(key string) T) func(key string) Object {
	return func(key string) Object { return f(key) }
}

func NewVariant(key string, candidates ...func(key string) Object) *Variant {
	v := &Variant{key: key, candidates: candidates, index: -1}
	for _, c := range candidates {
		o := c(key)
		v.types = append(v.types, reflect.TypeOf(o))
		v.names = append(v.names, o.TypeName())
		v.keys = append(v.keys, Keys(o))
	}
	return v
}

func (v *Variant) Key() string { return v.key }
func (v *Variant) Kind() Kind { return VariantKind }

// Get returns the active member, or nil.
func (v *Variant) Get() Object { return v.value }

// Index returns the candidate index of the active member, or -1.
func (v *Variant) Index() int { return v.index }

// Len returns the number of candidates.
func (v *Variant) Len() int { return len(v.candidates) }

// TypeNames returns the candidate type names in declaration order.
func (v *Variant) TypeNames() []string {
	return append([]string(nil), v.names...)
}

// NewCandidate returns a default instance of candidate i without
// selecting it.
func (v *Variant) NewCandidate(i int) Object {
	return v.candidates[i](v.key)
}

// Select makes a fresh default instance of candidate i active.
func (v *Variant) Select(i int) Object {
	v.value = v.candidates[i](v.key)
	v.index = i
	return v.value
}

// Set makes o active. Its type must be one of the candidates.
func (v *Variant) Set(o Object) error {
	if o == nil {
		return fmt.Errorf("%w: nil is not a candidate of variant %q", ErrShape, v.key)
	}
	t := reflect.TypeOf(o)
	for i, ct := range v.types {
		if ct == t {
			v.index = i
			v.value = o
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not a candidate of variant %q", ErrShape, o.TypeName(), v.key)
}

// FindBetter selects a fresh member whose declared keys best cover keys,
// as decided by Resolve.
func (v *Variant) FindBetter(keys []string) Object {
	i := Resolve(v.keys, keys)
	if debug.Variant() {
		debug.Logf("variant %q: keys %v select %d of %v\n", v.key, keys, i, v.names)
	}
	if i < 0 {
		return nil
	}
	return v.Select(i)
}

func (v *Variant) HasValue() bool { return v.value != nil }

func (v *Variant) Clear() {
	v.value = nil
	v.index = -1
}

func (v *Variant) equal(o Attribute) bool {
	ov, ok := o.(*Variant)
	if !ok || v.index != ov.index {
		return false
	}
	if v.value == nil || ov.value == nil {
		return v.value == ov.value
	}
	return Equal(v.value, ov.value)
}

func (v *Variant) assign(o Attribute) error {
	ov, ok := o.(*Variant)
	if !ok {
		return fmt.Errorf("%w: cannot assign %T to variant", ErrShape, o)
	}
	if ov.value == nil {
		v.Clear()
		return nil
	}
	if ov.index >= len(v.candidates) {
		return fmt.Errorf("%w: variant %q has no candidate %d", ErrShape, v.key, ov.index)
	}
	return Assign(v.Select(ov.index), ov.value)
}

// Is reports whether the active member of v is a T.
func Is[T Object](v *Variant) bool {
	_, ok := v.value.(T)
	return ok
}

// As returns the active member of v as a T.
func As[T Object](v *Variant) (T, bool) {
	t, ok := v.value.(T)
	return t, ok
}

// Choose selects a fresh member of type T.
func Choose[T Object](v *Variant) (T, error) {
	want := reflect.TypeFor[T]()
	for i, ct := range v.types {
		if ct == want {
			return v.Select(i).(T), nil
		}
	}
	var z T
	return z, fmt.Errorf("%w: %v is not a candidate of variant %q", ErrShape, want, v.key)
}
