package irtree

import (
	"bytes"

	"github.com/signadot/pack"
	"github.com/signadot/pack/encode"
	"github.com/signadot/pack/format"
	"github.com/signadot/pack/parse"
)

// Serialize renders a as text in format f.
func Serialize(f format.Format, a pack.Attribute, opts ...pack.Option) ([]byte, error) {
	node, err := Encode(a, opts...)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	err = encode.Encode(node, buf,
		encode.EncodeFormat(f),
		encode.EncodePretty(pack.NewOptions(opts...).PrettyPrint))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialize parses d as format f into a.
func Deserialize(f format.Format, d []byte, a pack.Attribute) error {
	node, err := parse.Parse(d, parse.ParseFormat(f))
	if err != nil {
		return err
	}
	return Decode(node, a, f.IsZConfig())
}

func SerializeFile(f format.Format, path string, a pack.Attribute, opts ...pack.Option) error {
	d, err := Serialize(f, a, opts...)
	if err != nil {
		return err
	}
	return pack.WriteFile(path, d)
}

func DeserializeFile(f format.Format, path string, a pack.Attribute) error {
	d, err := pack.ReadFile(path)
	if err != nil {
		return err
	}
	return Deserialize(f, d, a)
}
