package encode

import "github.com/signadot/pack/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodePretty selects the indented JSON layout and indented YAML
// sequences. ZPL has a single layout.
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
