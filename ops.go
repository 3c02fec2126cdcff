package pack

import (
	"fmt"
	"reflect"
)

// HasValue reports whether a differs from its default. An object has a
// value when any of its fields does.
func HasValue(a Attribute) bool {
	switch a.Kind() {
	case ObjectKind:
		for _, f := range a.(Object).Fields() {
			if HasValue(f.Attribute) {
				return true
			}
		}
		return false
	case ScalarKind, EnumKind, ObjectListKind, ScalarListKind,
		ObjectMapKind, ScalarMapKind, VariantKind:
		return a.(valuer).HasValue()
	}
	panic(&TagError{What: "attribute kind", Tag: a.Kind().String()})
}

// Clear resets a, and every field of an object, to its default.
func Clear(a Attribute) {
	switch a.Kind() {
	case ObjectKind:
		for _, f := range a.(Object).Fields() {
			Clear(f.Attribute)
		}
	case ScalarKind, EnumKind, ObjectListKind, ScalarListKind,
		ObjectMapKind, ScalarMapKind, VariantKind:
		a.(valuer).Clear()
	default:
		panic(&TagError{What: "attribute kind", Tag: a.Kind().String()})
	}
}

// Equal reports deep equality. Attributes of different concrete types are
// never equal; floats compare within epsilon.
func Equal(a, b Attribute) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case ObjectKind:
		if reflect.TypeOf(a) != reflect.TypeOf(b) {
			return false
		}
		af, bf := a.(Object).Fields(), b.(Object).Fields()
		if len(af) != len(bf) {
			return false
		}
		for i := range af {
			if af[i].Key() != bf[i].Key() || !Equal(af[i].Attribute, bf[i].Attribute) {
				return false
			}
		}
		return true
	case ScalarKind, EnumKind, ObjectListKind, ScalarListKind,
		ObjectMapKind, ScalarMapKind, VariantKind:
		return a.(valuer).equal(b)
	}
	panic(&TagError{What: "attribute kind", Tag: a.Kind().String()})
}

// Assign copies src into dst. Objects copy field by field, matching
// fields by key; fields of dst without a counterpart in src are left as
// they are.
func Assign(dst, src Attribute) error {
	if dst.Kind() != src.Kind() {
		return fmt.Errorf("%w: cannot assign %s to %s", ErrShape, src.Kind(), dst.Kind())
	}
	switch dst.Kind() {
	case ObjectKind:
		so := src.(Object)
		for _, f := range dst.(Object).Fields() {
			sf, ok := FieldByKey(so, f.Key())
			if !ok {
				continue
			}
			if err := Assign(f.Attribute, sf); err != nil {
				return fmt.Errorf("%s: %w", f.Key(), err)
			}
		}
		return nil
	case ScalarKind, EnumKind, ObjectListKind, ScalarListKind,
		ObjectMapKind, ScalarMapKind, VariantKind:
		return dst.(valuer).assign(src)
	}
	panic(&TagError{What: "attribute kind", Tag: dst.Kind().String()})
}
