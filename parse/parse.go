package parse

import (
	"fmt"

	"github.com/signadot/pack/format"
	"github.com/signadot/pack/ir"
)

// Parse parses a single document. The format defaults to JSON.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	docs, err := ParseAll(d, opts...)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return ir.Null(), nil
	case 1:
		return docs[0], nil
	default:
		return nil, ErrMultiDocs
	}
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseAll parses every document in d. Only YAML streams hold more than
// one; the other formats yield exactly one.
func ParseAll(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat:
		n, err := parseJSON(d)
		if err != nil {
			return nil, err
		}
		return []*ir.Node{n}, nil
	case format.YAMLFormat:
		return parseYAML(d)
	case format.ZConfigFormat:
		n, err := parseZPL(d)
		if err != nil {
			return nil, err
		}
		return []*ir.Node{n}, nil
	}
	return nil, fmt.Errorf("%w: cannot parse %s as text", format.ErrBadFormat, pOpts.format)
}
