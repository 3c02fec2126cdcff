package pack

// Attribute is a node of a schema tree. The key is the name the attribute
// is coded under and is fixed at construction; it is empty for roots and
// for elements of lists and maps.
type Attribute interface {
	Key() string
	Kind() Kind
}

// Leaf is a single primitive value: a Value or an Enum.
type Leaf interface {
	Attribute
	Type() Type
	HasValue() bool
	Clear()
	// Any returns the current value as the Go type of Type().
	Any() any
	SetAny(v any) error
	// String and Parse convert to and from the text form.
	String() string
	Parse(s string) error
}

// Named is implemented by enum leaves, which text formats code by name.
type Named interface {
	Leaf
	Name() string
	SetName(name string) error
	Int() int32
	SetInt(i int32) error
	Names() []string
	Numbers() []int32
	EnumName() string
}

// ScalarSeq is a homogeneous list of primitives.
type ScalarSeq interface {
	Attribute
	Type() Type
	HasValue() bool
	Clear()
	Len() int
	AnyAt(i int) any
	AppendAny(v any) error
}

// ScalarDict is a unique-key map of primitives, iterated in key order.
type ScalarDict interface {
	Attribute
	Type() Type
	HasValue() bool
	Clear()
	Len() int
	Keys() []string
	AnyOf(key string) any
	PutAny(key string, v any) error
}

// ObjectSeq is a list of objects.
type ObjectSeq interface {
	Attribute
	HasValue() bool
	Clear()
	Len() int
	ObjectAt(i int) Object
	// AppendObject appends a default element and returns it for
	// population in place.
	AppendObject() Object
	// NewObject returns a default element without appending it.
	NewObject() Object
}

// ObjectDict is an ordered list of keyed objects in which keys may repeat.
type ObjectDict interface {
	Attribute
	HasValue() bool
	Clear()
	Len() int
	EntryAt(i int) (string, Object)
	AppendEntry(key string) Object
	NewObject() Object
}

// valuer is implemented by every attribute type of this package.
type valuer interface {
	HasValue() bool
	Clear()
	equal(o Attribute) bool
	assign(o Attribute) error
}
