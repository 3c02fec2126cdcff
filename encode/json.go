package encode

import (
	"math"

	"github.com/tailscale/hujson"

	"github.com/signadot/pack/ir"
)

func encodeJSON(node *ir.Node, es *EncState) ([]byte, error) {
	v, err := toHuJSON(node, es.pretty)
	if err != nil {
		return nil, err
	}
	if es.pretty {
		v.Format()
	}
	if es.Color != nil {
		colorJSON(&v, es.Color)
	}
	return v.Pack(), nil
}

// With expand set, every member and element starts on a new line, which
// makes Format lay out all non-empty composites vertically.
func toHuJSON(node *ir.Node, expand bool) (hujson.Value, error) {
	var nl hujson.Extra
	if expand {
		nl = hujson.Extra("\n")
	}
	switch node.Type {
	case ir.ObjectType:
		obj := &hujson.Object{Members: make([]hujson.ObjectMember, 0, len(node.Fields))}
		for i, f := range node.Fields {
			val, err := toHuJSON(node.Values[i], expand)
			if err != nil {
				return hujson.Value{}, err
			}
			obj.Members = append(obj.Members, hujson.ObjectMember{
				Name:  hujson.Value{BeforeExtra: nl, Value: hujson.String(f.String)},
				Value: val,
			})
		}
		return hujson.Value{Value: obj}, nil
	case ir.ArrayType:
		arr := &hujson.Array{Elements: make([]hujson.ArrayElement, 0, len(node.Values))}
		for _, e := range node.Values {
			val, err := toHuJSON(e, expand)
			if err != nil {
				return hujson.Value{}, err
			}
			val.BeforeExtra = nl
			arr.Elements = append(arr.Elements, val)
		}
		return hujson.Value{Value: arr}, nil
	case ir.StringType:
		return hujson.Value{Value: hujson.String(node.String)}, nil
	case ir.BoolType:
		return hujson.Value{Value: hujson.Bool(node.Bool)}, nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return hujson.Value{Value: hujson.Int(*node.Int64)}, nil
		case node.Float64 != nil:
			f := *node.Float64
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return hujson.Value{}, errAt(node, "%v has no JSON form", f)
			}
			return hujson.Value{Value: hujson.Float(f)}, nil
		}
		lit := hujson.Literal(node.Number)
		if !lit.IsValid() || lit.Kind() != '0' {
			return hujson.Value{}, errAt(node, "bad number %q", node.Number)
		}
		return hujson.Value{Value: lit}, nil
	}
	return hujson.Value{Value: hujson.Literal("null")}, nil
}

// colorJSON rewrites literals and member names in place. It must run after
// Format, which re-normalizes literals.
func colorJSON(v *hujson.Value, c func(ir.Type, ColorAttr, string) string) {
	switch x := v.Value.(type) {
	case *hujson.Object:
		for i := range x.Members {
			m := &x.Members[i]
			m.Name.Value = hujson.Literal(c(ir.ObjectType, FieldColor, string(m.Name.Value.(hujson.Literal))))
			colorJSON(&m.Value, c)
		}
	case *hujson.Array:
		for i := range x.Elements {
			colorJSON(&x.Elements[i], c)
		}
	case hujson.Literal:
		var t ir.Type
		switch x.Kind() {
		case 'n':
			t = ir.NullType
		case 't', 'f':
			t = ir.BoolType
		case '"':
			t = ir.StringType
		default:
			t = ir.NumberType
		}
		v.Value = hujson.Literal(c(t, ValueColor, string(x)))
	}
}
