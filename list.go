package pack

import (
	"fmt"
	"iter"
	"slices"
)

// List is an ordered list of primitives.
type List[T Primitive] struct {
	key   string
	items []T
}

// Binary is a byte list. Text formats code it as base64 and protobuf as
// bytes.
type Binary = List[uint8]

func NewList[T Primitive](key string, items ...T) *List[T] {
	return &List[T]{key: key, items: items}
}

func NewBinary(key string) *Binary {
	return &Binary{key: key}
}

func (l *List[T]) Key() string { return l.key }
func (l *List[T]) Kind() Kind { return ScalarListKind }
func (l *List[T]) Type() Type { return TypeOf[T]() }

func (l *List[T]) Len() int { return len(l.items) }
func (l *List[T]) At(i int) T { return l.items[i] }
func (l *List[T]) Set(i int, x T) { l.items[i] = x }

func (l *List[T]) Append(xs ...T) {
	l.items = append(l.items, xs...)
}

// Values returns a copy of the items.
func (l *List[T]) Values() []T {
	return slices.Clone(l.items)
}

func (l *List[T]) SetValues(xs []T) {
	l.items = slices.Clone(xs)
}

func (l *List[T]) Remove(i int) {
	l.items = slices.Delete(l.items, i, i+1)
}

// Find returns the index of the first item satisfying f.
func (l *List[T]) Find(f func(T) bool) (int, bool) {
	i := slices.IndexFunc(l.items, f)
	return i, i >= 0
}

func (l *List[T]) Contains(x T) bool {
	_, ok := l.Find(func(y T) bool { return equalPrim(x, y) })
	return ok
}

func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	slices.SortStableFunc(l.items, cmp)
}

func (l *List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

func (l *List[T]) HasValue() bool { return len(l.items) > 0 }
func (l *List[T]) Clear() { l.items = nil }

func (l *List[T]) AnyAt(i int) any { return l.items[i] }

func (l *List[T]) AppendAny(x any) error {
	c, err := Coerce(l.Type(), x)
	if err != nil {
		return err
	}
	l.items = append(l.items, c.(T))
	return nil
}

func (l *List[T]) equal(o Attribute) bool {
	ol, ok := o.(*List[T])
	return ok && slices.EqualFunc(l.items, ol.items, equalPrim[T])
}

func (l *List[T]) assign(o Attribute) error {
	ol, ok := o.(*List[T])
	if !ok {
		return fmt.Errorf("%w: cannot assign %T to %T", ErrShape, o, l)
	}
	l.items = slices.Clone(ol.items)
	return nil
}

// Bytes returns the content of a byte list.
func Bytes(l ScalarSeq) []byte {
	if b, ok := l.(*Binary); ok {
		return slices.Clone(b.items)
	}
	res := make([]byte, l.Len())
	for i := range res {
		res[i] = l.AnyAt(i).(uint8)
	}
	return res
}

// SetBytes replaces the content of a byte list.
func SetBytes(l ScalarSeq, b []byte) error {
	if bl, ok := l.(*Binary); ok {
		bl.items = slices.Clone(b)
		return nil
	}
	l.Clear()
	for _, c := range b {
		if err := l.AppendAny(c); err != nil {
			return err
		}
	}
	return nil
}

// ObjectList is an ordered list of objects built by a factory.
type ObjectList[T Object] struct {
	key     string
	newElem func(key string) T
	items   []T
}

func NewObjectList[T Object](key string, newElem func(key string) T) *ObjectList[T] {
	return &ObjectList[T]{key: key, newElem: newElem}
}

func (l *ObjectList[T]) Key() string { return l.key }
func (l *ObjectList[T]) Kind() Kind { return ObjectListKind }

func (l *ObjectList[T]) Len() int { return len(l.items) }
func (l *ObjectList[T]) At(i int) T { return l.items[i] }

// Append adds a default element and returns it.
func (l *ObjectList[T]) Append() T {
	e := l.newElem("")
	l.items = append(l.items, e)
	return e
}

func (l *ObjectList[T]) Remove(i int) {
	l.items = slices.Delete(l.items, i, i+1)
}

func (l *ObjectList[T]) Find(f func(T) bool) (T, bool) {
	i := slices.IndexFunc(l.items, f)
	if i < 0 {
		var z T
		return z, false
	}
	return l.items[i], true
}

func (l *ObjectList[T]) SortFunc(cmp func(a, b T) int) {
	slices.SortStableFunc(l.items, cmp)
}

func (l *ObjectList[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

func (l *ObjectList[T]) HasValue() bool { return len(l.items) > 0 }
func (l *ObjectList[T]) Clear() { l.items = nil }

func (l *ObjectList[T]) ObjectAt(i int) Object { return l.items[i] }
func (l *ObjectList[T]) AppendObject() Object { return l.Append() }
func (l *ObjectList[T]) NewObject() Object { return l.newElem("") }

func (l *ObjectList[T]) equal(o Attribute) bool {
	ol, ok := o.(*ObjectList[T])
	if !ok || len(l.items) != len(ol.items) {
		return false
	}
	for i := range l.items {
		if !Equal(l.items[i], ol.items[i]) {
			return false
		}
	}
	return true
}

func (l *ObjectList[T]) assign(o Attribute) error {
	ol, ok := o.(*ObjectList[T])
	if !ok {
		return fmt.Errorf("%w: cannot assign %T to %T", ErrShape, o, l)
	}
	l.items = nil
	for _, src := range ol.items {
		if err := Assign(l.Append(), src); err != nil {
			return err
		}
	}
	return nil
}
