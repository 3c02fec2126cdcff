package ir

import (
	"fmt"
	"strconv"
)

// ToAny converts y to plain Go values: map[string]any, []any, string,
// bool, int64, float64 and nil. When an object repeats a key, the first
// value wins.
func ToAny(y *Node) any {
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			if _, ok := res[f.String]; ok {
				continue
			}
			res[f.String] = ToAny(y.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case StringType:
		return y.String
	case BoolType:
		return y.Bool
	case NumberType:
		switch {
		case y.Int64 != nil:
			return *y.Int64
		case y.Float64 != nil:
			return *y.Float64
		}
		if u, err := strconv.ParseUint(y.Number, 10, 64); err == nil {
			return u
		}
		return y.Number
	}
	return nil
}

// FromAny is the inverse of ToAny. It also accepts the other integer and
// float types, map[string]string and *Node.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return FromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		res := &Node{Type: ArrayType}
		for i := range x {
			e, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			res.Push(e)
		}
		return res, nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	case map[string]string:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			m[k] = FromString(e)
		}
		return FromMap(m), nil
	}
	return nil, fmt.Errorf("cannot convert %T to a node", v)
}
