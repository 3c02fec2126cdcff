package pack

import (
	"fmt"
	"iter"
	"maps"
	"regexp"
	"slices"
)

// Map is a unique-key map of primitives. Iteration is in key order.
type Map[T Primitive] struct {
	key   string
	items map[string]T
}

func NewMap[T Primitive](key string) *Map[T] {
	return &Map[T]{key: key}
}

func (m *Map[T]) Key() string { return m.key }
func (m *Map[T]) Kind() Kind { return ScalarMapKind }
func (m *Map[T]) Type() Type { return TypeOf[T]() }

func (m *Map[T]) Len() int { return len(m.items) }

// At returns the value under k, or ErrKeyNotFound.
func (m *Map[T]) At(k string) (T, error) {
	v, ok := m.items[k]
	if !ok {
		var z T
		return z, fmt.Errorf("%w: %q in %s", ErrKeyNotFound, k, m.key)
	}
	return v, nil
}

// Set updates the value under k or adds it.
func (m *Map[T]) Set(k string, v T) {
	if m.items == nil {
		m.items = map[string]T{}
	}
	m.items[k] = v
}

func (m *Map[T]) Contains(k string) bool {
	_, ok := m.items[k]
	return ok
}

func (m *Map[T]) Delete(k string) {
	delete(m.items, k)
}

func (m *Map[T]) Keys() []string {
	return slices.Sorted(maps.Keys(m.items))
}

func (m *Map[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m.items[k]) {
				return
			}
		}
	}
}

// Find returns the first entry, in key order, satisfying f.
func (m *Map[T]) Find(f func(k string, v T) bool) (string, T, bool) {
	for k, v := range m.All() {
		if f(k, v) {
			return k, v, true
		}
	}
	var z T
	return "", z, false
}

// Match returns the keys matching re, in order.
func (m *Map[T]) Match(re *regexp.Regexp) []string {
	var res []string
	for _, k := range m.Keys() {
		if re.MatchString(k) {
			res = append(res, k)
		}
	}
	return res
}

func (m *Map[T]) HasValue() bool { return len(m.items) > 0 }
func (m *Map[T]) Clear() { m.items = nil }

func (m *Map[T]) AnyOf(k string) any { return m.items[k] }

func (m *Map[T]) PutAny(k string, x any) error {
	c, err := Coerce(m.Type(), x)
	if err != nil {
		return err
	}
	m.Set(k, c.(T))
	return nil
}

func (m *Map[T]) equal(o Attribute) bool {
	om, ok := o.(*Map[T])
	return ok && maps.EqualFunc(m.items, om.items, equalPrim[T])
}

func (m *Map[T]) assign(o Attribute) error {
	om, ok := o.(*Map[T])
	if !ok {
		return fmt.Errorf("%w: cannot assign %T to %T", ErrShape, o, m)
	}
	m.items = maps.Clone(om.items)
	return nil
}

type entry[T any] struct {
	key string
	val T
}

// ObjectMap is an ordered list of keyed objects. Keys may repeat; lookups
// return the first match.
type ObjectMap[T Object] struct {
	key     string
	newElem func(key string) T
	items   []entry[T]
}

func NewObjectMap[T Object](key string, newElem func(key string) T) *ObjectMap[T] {
	return &ObjectMap[T]{key: key, newElem: newElem}
}

func (m *ObjectMap[T]) Key() string { return m.key }
func (m *ObjectMap[T]) Kind() Kind { return ObjectMapKind }

func (m *ObjectMap[T]) Len() int { return len(m.items) }

// Find returns the first value under k.
func (m *ObjectMap[T]) Find(k string) (T, bool) {
	for i := range m.items {
		if m.items[i].key == k {
			return m.items[i].val, true
		}
	}
	var z T
	return z, false
}

func (m *ObjectMap[T]) Contains(k string) bool {
	_, ok := m.Find(k)
	return ok
}

// At returns the first value under k, appending a default one if there is
// none.
func (m *ObjectMap[T]) At(k string) T {
	if v, ok := m.Find(k); ok {
		return v
	}
	return m.Append(k)
}

// Append adds a default value under k, even if k is present.
func (m *ObjectMap[T]) Append(k string) T {
	v := m.newElem("")
	m.items = append(m.items, entry[T]{key: k, val: v})
	return v
}

// Remove deletes every entry under k.
func (m *ObjectMap[T]) Remove(k string) {
	m.items = slices.DeleteFunc(m.items, func(e entry[T]) bool { return e.key == k })
}

func (m *ObjectMap[T]) Keys() []string {
	res := make([]string, len(m.items))
	for i := range m.items {
		res[i] = m.items[i].key
	}
	return res
}

func (m *ObjectMap[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, e := range m.items {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

func (m *ObjectMap[T]) HasValue() bool { return len(m.items) > 0 }
func (m *ObjectMap[T]) Clear() { m.items = nil }

func (m *ObjectMap[T]) EntryAt(i int) (string, Object) {
	return m.items[i].key, m.items[i].val
}

func (m *ObjectMap[T]) AppendEntry(k string) Object { return m.Append(k) }
func (m *ObjectMap[T]) NewObject() Object { return m.newElem("") }

func (m *ObjectMap[T]) equal(o Attribute) bool {
	om, ok := o.(*ObjectMap[T])
	if !ok || len(m.items) != len(om.items) {
		return false
	}
	for i := range m.items {
		if m.items[i].key != om.items[i].key || !Equal(m.items[i].val, om.items[i].val) {
			return false
		}
	}
	return true
}

func (m *ObjectMap[T]) assign(o Attribute) error {
	om, ok := o.(*ObjectMap[T])
	if !ok {
		return fmt.Errorf("%w: cannot assign %T to %T", ErrShape, o, m)
	}
	m.items = nil
	for _, e := range om.items {
		if err := Assign(m.Append(e.key), e.val); err != nil {
			return err
		}
	}
	return nil
}
