package pack

// Writer builds a backend value of type V. Encode calls it while walking
// an attribute tree; V is typically a pointer or a cursor into the tree
// under construction.
type Writer[V any] interface {
	// Object marks v as an object.
	Object(v V) error
	// Field adds a child of object v under key and returns it.
	Field(v V, key string) (V, error)
	// List marks v as a list of n objects.
	List(v V, n int) error
	// Elem adds element i of list v and returns it.
	Elem(v V, i int) (V, error)
	// Map marks v as a keyed collection of objects.
	Map(v V) error
	// Entry appends an entry under key to map v and returns it. Keys may
	// repeat.
	Entry(v V, key string) (V, error)

	Scalar(v V, s Leaf) error
	ScalarList(v V, l ScalarSeq) error
	ScalarMap(v V, m ScalarDict) error
}

// Entry is a keyed child of a backend value.
type Entry[V any] struct {
	Key   string
	Value V
}

// Reader navigates a backend value of type V for Decode.
type Reader[V any] interface {
	// Object checks that v is an object.
	Object(v V) error
	// Keys returns the keys present in object v, in source order.
	Keys(v V) []string
	// Field returns the child of object v under key, if present.
	Field(v V, key string) (V, bool)
	// List checks that v is a list and returns its length.
	List(v V) (int, error)
	Elem(v V, i int) V
	// Entries returns the children of map v in source order, duplicate
	// keys included.
	Entries(v V) ([]Entry[V], error)

	Scalar(v V, s Leaf) error
	ScalarList(v V, l ScalarSeq) error
	ScalarMap(v V, m ScalarDict) error
}

// VariantWriter is implemented by writers whose format carries an explicit
// variant discriminator. Variant returns the value the active member, with
// candidate index i, is written to.
type VariantWriter[V any] interface {
	Variant(v V, vt *Variant, i int) (V, error)
}

// VariantReader is implemented by readers whose format carries an explicit
// variant discriminator. Variant reports the candidate index present at v
// and the value to decode it from.
type VariantReader[V any] interface {
	Variant(v V, vt *Variant) (int, V, bool)
}
