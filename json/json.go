// Package json serializes attribute trees as JSON.
//
// Decoding accepts comments and trailing commas. Duplicate keys are kept
// in order, so an object map may hold the same key twice.
package json

import (
	"github.com/signadot/pack"
	"github.com/signadot/pack/format"
	"github.com/signadot/pack/internal/irtree"
)

// Serialize returns a as JSON. Output is compact unless pack.PrettyPrint
// is given.
func Serialize(a pack.Attribute, opts ...pack.Option) (string, error) {
	d, err := irtree.Serialize(format.JSONFormat, a, opts...)
	return string(d), err
}

func Deserialize(data string, a pack.Attribute) error {
	return irtree.Deserialize(format.JSONFormat, []byte(data), a)
}

func SerializeFile(path string, a pack.Attribute, opts ...pack.Option) error {
	return irtree.SerializeFile(format.JSONFormat, path, a, opts...)
}

func DeserializeFile(path string, a pack.Attribute) error {
	return irtree.DeserializeFile(format.JSONFormat, path, a)
}
