package encode

import (
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"

	"github.com/signadot/pack/ir"
)

const yamlIndent = 2

func encodeYAML(node *ir.Node, es *EncState) ([]byte, error) {
	v, err := toYAML(node)
	if err != nil {
		return nil, err
	}
	d, err := yaml.MarshalWithOptions(v,
		yaml.Indent(yamlIndent),
		yaml.IndentSequence(es.pretty),
		yaml.UseLiteralStyleIfMultiline(true),
	)
	if err != nil {
		return nil, errAt(node, "%v", err)
	}
	if es.Color != nil {
		d = colorYAML(d, es.Color)
	}
	return d, nil
}

// toYAML maps objects to yaml.MapSlice so that field order and repeated
// keys reach the output unchanged.
func toYAML(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Fields))
		for i, f := range node.Fields {
			v, err := toYAML(node.Values[i])
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: f.String, Value: v})
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, 0, len(node.Values))
		for _, e := range node.Values {
			v, err := toYAML(e)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case ir.StringType:
		return node.String, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			return *node.Float64, nil
		}
		u, err := strconv.ParseUint(node.Number, 10, 64)
		if err != nil {
			return nil, errAt(node, "bad number %q", node.Number)
		}
		return u, nil
	}
	return nil, nil
}

func colorYAML(d []byte, c func(ir.Type, ColorAttr, string) string) []byte {
	prop := func(t ir.Type, a ColorAttr) printer.PrintFunc {
		pre, suf := affixes(c, t, a)
		return func() *printer.Property {
			return &printer.Property{Prefix: pre, Suffix: suf}
		}
	}
	p := printer.Printer{
		MapKey: prop(ir.ObjectType, FieldColor),
		Bool:   prop(ir.BoolType, ValueColor),
		String: prop(ir.StringType, ValueColor),
		Number: prop(ir.NumberType, ValueColor),
	}
	return []byte(p.PrintTokens(lexer.Tokenize(string(d))))
}
