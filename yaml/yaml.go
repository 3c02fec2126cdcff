// Package yaml serializes attribute trees as YAML.
package yaml

import (
	"github.com/signadot/pack"
	"github.com/signadot/pack/format"
	"github.com/signadot/pack/internal/irtree"
)

func Serialize(a pack.Attribute, opts ...pack.Option) (string, error) {
	d, err := irtree.Serialize(format.YAMLFormat, a, opts...)
	return string(d), err
}

// Deserialize reads the first document of data into a. Anchors, aliases
// and merge keys are resolved.
func Deserialize(data string, a pack.Attribute) error {
	return irtree.Deserialize(format.YAMLFormat, []byte(data), a)
}

func SerializeFile(path string, a pack.Attribute, opts ...pack.Option) error {
	return irtree.SerializeFile(format.YAMLFormat, path, a, opts...)
}

func DeserializeFile(path string, a pack.Attribute) error {
	return irtree.DeserializeFile(format.YAMLFormat, path, a)
}

// Dump returns a as YAML for diagnostics, or "" if it cannot be encoded.
func Dump(a pack.Attribute) string {
	s, err := Serialize(a)
	if err != nil {
		return ""
	}
	return s
}
