package irtree

import (
	"fmt"
	"strconv"

	"github.com/signadot/pack"
	"github.com/signadot/pack/ir"
)

// setLeaf stores primitive v of type t into node p. With asString, numeric
// values are stored in their text form.
func setLeaf(p *ir.Node, t pack.Type, v any, asString bool) {
	if asString && t.IsNumeric() {
		ir.FromStringAt(p, pack.FormatPrim(t, v))
		return
	}
	switch t {
	case pack.StringType:
		ir.FromStringAt(p, v.(string))
	case pack.BoolType:
		ir.FromBoolAt(p, v.(bool))
	case pack.Int32Type:
		ir.FromIntAt(p, int64(v.(int32)))
	case pack.Int64Type:
		ir.FromIntAt(p, v.(int64))
	case pack.UInt32Type:
		ir.FromIntAt(p, int64(v.(uint32)))
	case pack.UInt64Type:
		ir.FromUintAt(p, v.(uint64))
	case pack.UCharType:
		ir.FromIntAt(p, int64(v.(uint8)))
	case pack.FloatType:
		// go through the shortest float32 text so 0.1 stays 0.1
		f, _ := strconv.ParseFloat(pack.FormatPrim(t, v), 64)
		ir.FromFloatAt(p, f)
	case pack.DoubleType:
		ir.FromFloatAt(p, v.(float64))
	default:
		panic(&pack.TagError{What: "primitive type", Tag: strconv.Itoa(int(t))})
	}
}

// leafValue returns the primitive held by n for a destination of type t.
// Strings are parsed, so every scalar accepts its text form. String
// destinations accept the text of numbers and booleans.
func leafValue(t pack.Type, n *ir.Node) (any, error) {
	switch n.Type {
	case ir.StringType:
		return pack.ParsePrim(t, n.String)
	case ir.BoolType:
		if t == pack.StringType {
			return strconv.FormatBool(n.Bool), nil
		}
		return n.Bool, nil
	case ir.NumberType:
		if t == pack.StringType {
			return n.NumberText(), nil
		}
		switch {
		case n.Int64 != nil:
			return *n.Int64, nil
		case n.Float64 != nil:
			return *n.Float64, nil
		}
		u, err := strconv.ParseUint(n.Number, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: bad number %q", pack.ErrParse, n.Path(), n.Number)
		}
		return u, nil
	}
	return nil, shapeErr(n, "scalar")
}

func shapeErr(n *ir.Node, want string) error {
	return fmt.Errorf("%w: %s: expected %s, got %s", pack.ErrShape, n.Path(), want, n.Type)
}
