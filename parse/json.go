package parse

import (
	"fmt"
	"strconv"

	"github.com/tailscale/hujson"

	"github.com/signadot/pack/ir"
)

// parseJSON accepts standard JSON plus comments and trailing commas.
func parseJSON(d []byte) (*ir.Node, error) {
	v, err := hujson.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromHuJSON(&v)
}

func fromHuJSON(v *hujson.Value) (*ir.Node, error) {
	switch x := v.Value.(type) {
	case *hujson.Object:
		res := &ir.Node{Type: ir.ObjectType}
		for i := range x.Members {
			m := &x.Members[i]
			val, err := fromHuJSON(&m.Value)
			if err != nil {
				return nil, err
			}
			res.Append(m.Name.Value.(hujson.Literal).String(), val)
		}
		return res, nil
	case *hujson.Array:
		res := &ir.Node{Type: ir.ArrayType}
		for i := range x.Elements {
			val, err := fromHuJSON(&x.Elements[i])
			if err != nil {
				return nil, err
			}
			res.Push(val)
		}
		return res, nil
	case hujson.Literal:
		return fromLiteral(x, v.StartOffset)
	}
	return nil, fmt.Errorf("%w: offset %d: unexpected value %T", ErrParse, v.StartOffset, v.Value)
}

func fromLiteral(lit hujson.Literal, off int) (*ir.Node, error) {
	switch lit.Kind() {
	case 'n':
		return ir.Null(), nil
	case 't', 'f':
		return ir.FromBool(lit.Bool()), nil
	case '"':
		return ir.FromString(lit.String()), nil
	case '0':
		return numberNode(string(lit))
	}
	return nil, fmt.Errorf("%w: offset %d: bad literal %q", ErrParse, off, lit)
}

// numberNode keeps integers exact: Int64 when they fit, Number text for
// larger unsigned values, Float64 for the rest.
func numberNode(s string) (*ir.Node, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ir.FromInt(i), nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return ir.FromUint(u), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad number %q", ErrParse, s)
	}
	return ir.FromFloat(f), nil
}
