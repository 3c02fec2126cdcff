package ir

import (
	"maps"
	"math"
	"slices"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return FromIntAt(&Node{}, v)
}

func FromIntAt(p *Node, v int64) *Node {
	p.Type = NumberType
	p.Int64 = &v
	return p
}

// FromUint stores v as Int64 when it fits and as Number text otherwise.
func FromUint(v uint64) *Node {
	return FromUintAt(&Node{}, v)
}

func FromUintAt(p *Node, v uint64) *Node {
	if v <= math.MaxInt64 {
		return FromIntAt(p, int64(v))
	}
	p.Type = NumberType
	p.Number = strconv.FormatUint(v, 10)
	return p
}

func FromFloat(f float64) *Node {
	return FromFloatAt(&Node{}, f)
}

func FromFloatAt(p *Node, f float64) *Node {
	p.Type = NumberType
	p.Float64 = &f
	return p
}

func FromBool(v bool) *Node {
	return FromBoolAt(&Node{}, v)
}

func FromBoolAt(p *Node, v bool) *Node {
	p.Type = BoolType
	p.Bool = v
	return p
}

func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object keeping the order of kvs. Keys may repeat.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for _, kv := range kvs {
		res.Append(kv.Key, kv.Val)
	}
	return res
}

// Append adds val under key to object y.
func (y *Node) Append(key string, val *Node) *Node {
	i := len(y.Values)
	val.Parent = y
	val.ParentIndex = i
	val.ParentField = key
	y.Fields = append(y.Fields, &Node{
		Type:        StringType,
		String:      key,
		Parent:      y,
		ParentIndex: i,
		ParentField: key,
	})
	y.Values = append(y.Values, val)
	return val
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, 0, len(ySlice)),
	}
	for _, y := range ySlice {
		res.Push(y)
	}
	return res
}

// Push adds y as the last element of array a.
func (a *Node) Push(y *Node) *Node {
	y.Parent = a
	y.ParentIndex = len(a.Values)
	a.Values = append(a.Values, y)
	return y
}

// Get returns the first value under field, or nil.
func Get(y *Node, field string) *Node {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

func Null() *Node {
	return &Node{Type: NullType}
}

// NumberText returns the text of a number node.
func (y *Node) NumberText() string {
	switch {
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	case y.Float64 != nil:
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	default:
		return y.Number
	}
}
