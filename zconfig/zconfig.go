// Package zconfig serializes attribute trees as ZPL, the text form of czmq
// zconfig trees.
//
// ZPL has no types: every leaf is written as a quoted string and parsed
// back into the type of its destination. Lists are written as children
// named "1", "2", ... and byte lists as one base64 value. Object map
// entries become children named by their key, so keys must be valid ZPL
// names. The root attribute must be an object, a list or a map.
package zconfig

import (
	"github.com/signadot/pack"
	"github.com/signadot/pack/format"
	"github.com/signadot/pack/internal/irtree"
)

func Serialize(a pack.Attribute, opts ...pack.Option) (string, error) {
	d, err := irtree.Serialize(format.ZConfigFormat, a, opts...)
	return string(d), err
}

func Deserialize(data string, a pack.Attribute) error {
	return irtree.Deserialize(format.ZConfigFormat, []byte(data), a)
}

func SerializeFile(path string, a pack.Attribute, opts ...pack.Option) error {
	return irtree.SerializeFile(format.ZConfigFormat, path, a, opts...)
}

func DeserializeFile(path string, a pack.Attribute) error {
	return irtree.DeserializeFile(format.ZConfigFormat, path, a)
}
