package pack

import "slices"

// Object is a structure with a declared, ordered field list.
//
// Schema structs embed Node and list their fields in Fields:
//
//	type Point struct {
//		pack.Node
//		X *pack.Int32
//		Y *pack.Int32
//	}
//
//	func NewPoint(key string) *Point {
//		return &Point{
//			Node: pack.NewNode(key),
//			X:    pack.NewInt32("x"),
//			Y:    pack.NewInt32("y"),
//		}
//	}
//
//	func (p *Point) TypeName() string { return "Point" }
//
//	func (p *Point) Fields() []pack.Field {
//		return []pack.Field{
//			{Name: "X", Attribute: p.X},
//			{Name: "Y", Attribute: p.Y},
//		}
//	}
//
// A derived object composes its base's list: append(p.Point.Fields(), ...).
// The field order is the coding order.
type Object interface {
	Attribute
	TypeName() string
	Fields() []Field
}

// Field pairs the Go identifier of a field with its attribute, whose Key is
// the coded name.
type Field struct {
	Name string
	Attribute
}

// Node supplies Key and Kind to schema structs.
type Node struct {
	key string
}

func NewNode(key string) Node {
	return Node{key: key}
}

func (n Node) Key() string { return n.key }
func (n Node) Kind() Kind { return ObjectKind }

// FieldByKey looks up a field of o by coded key.
func FieldByKey(o Object, key string) (Attribute, bool) {
	for _, f := range o.Fields() {
		if f.Key() == key {
			return f.Attribute, true
		}
	}
	return nil, false
}

// FieldByName looks up a field of o by Go identifier.
func FieldByName(o Object, name string) (Attribute, bool) {
	for _, f := range o.Fields() {
		if f.Name == name {
			return f.Attribute, true
		}
	}
	return nil, false
}

// FieldNames returns the Go identifiers of o's fields, parallel to Fields.
func FieldNames(o Object) []string {
	fields := o.Fields()
	res := make([]string, len(fields))
	for i := range fields {
		res[i] = fields[i].Name
	}
	return res
}

// Keys returns the coded keys of o's fields in declaration order.
func Keys(o Object) []string {
	fields := o.Fields()
	res := make([]string, len(fields))
	for i := range fields {
		res[i] = fields[i].Key()
	}
	return res
}

// HasKey reports whether o declares a field coded as key.
func HasKey(o Object, key string) bool {
	return slices.Contains(Keys(o), key)
}
