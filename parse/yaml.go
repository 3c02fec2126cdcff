package parse

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/signadot/pack/ir"
)

// parseYAML walks the goccy AST rather than decoding into Go maps so that
// key order and duplicate keys survive.
func parseYAML(d []byte) ([]*ir.Node, error) {
	f, err := parser.ParseBytes(d, 0, parser.AllowDuplicateMapKey())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	res := make([]*ir.Node, 0, len(f.Docs))
	for _, doc := range f.Docs {
		if doc.Body == nil {
			if len(f.Docs) > 1 {
				res = append(res, ir.Null())
			}
			continue
		}
		y := &yamlState{anchors: map[string]ast.Node{}}
		n, err := y.node(doc.Body)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

type yamlState struct {
	anchors map[string]ast.Node
}

func (y *yamlState) node(n ast.Node) (*ir.Node, error) {
	switch x := n.(type) {
	case nil, *ast.NullNode:
		return ir.Null(), nil
	case *ast.MappingNode:
		return y.mapping(x.Values)
	case *ast.MappingValueNode:
		return y.mapping([]*ast.MappingValueNode{x})
	case *ast.SequenceNode:
		res := &ir.Node{Type: ir.ArrayType}
		for _, e := range x.Values {
			v, err := y.node(e)
			if err != nil {
				return nil, err
			}
			res.Push(v)
		}
		return res, nil
	case *ast.StringNode:
		return ir.FromString(x.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(x.Value.Value), nil
	case *ast.BoolNode:
		return ir.FromBool(x.Value), nil
	case *ast.IntegerNode:
		switch i := x.Value.(type) {
		case int64:
			return ir.FromInt(i), nil
		case uint64:
			return ir.FromUint(i), nil
		}
		return numberNode(x.Token.Value)
	case *ast.FloatNode:
		return ir.FromFloat(x.Value), nil
	case *ast.InfinityNode:
		return ir.FromFloat(x.Value), nil
	case *ast.NanNode:
		return ir.FromFloat(math.NaN()), nil
	case *ast.TagNode:
		return y.tagged(x)
	case *ast.AnchorNode:
		y.anchors[x.Name.GetToken().Value] = x.Value
		return y.node(x.Value)
	case *ast.AliasNode:
		name := x.Value.GetToken().Value
		a, ok := y.anchors[name]
		if !ok {
			return nil, y.errAt(x, "unknown alias %q", name)
		}
		return y.node(a)
	}
	return nil, y.errAt(n, "unsupported yaml node %s", n.Type())
}

func (y *yamlState) tagged(t *ast.TagNode) (*ir.Node, error) {
	switch t.Start.Value {
	case "!!str", "!!binary":
		if t.Value == nil {
			return ir.FromString(""), nil
		}
		if s, ok := t.Value.(*ast.StringNode); ok {
			return ir.FromString(s.Value), nil
		}
		if l, ok := t.Value.(*ast.LiteralNode); ok {
			return ir.FromString(l.Value.Value), nil
		}
		return ir.FromString(t.Value.GetToken().Value), nil
	}
	return y.node(t.Value)
}

// mapping builds an object from mvs. Fields brought in by "<<" keys follow
// the explicit ones and are dropped when an explicit key or an earlier
// merge already supplies them.
func (y *yamlState) mapping(mvs []*ast.MappingValueNode) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	var merged []ir.KeyVal
	for _, mv := range mvs {
		if mv.Key.IsMergeKey() {
			src, err := y.node(mv.Value)
			if err != nil {
				return nil, err
			}
			if merged, err = merge(merged, src, mv); err != nil {
				return nil, err
			}
			continue
		}
		key, err := y.key(mv.Key)
		if err != nil {
			return nil, err
		}
		val, err := y.node(mv.Value)
		if err != nil {
			return nil, err
		}
		res.Append(key, val)
	}
	seen := make(map[string]bool, len(res.Fields))
	for _, f := range res.Fields {
		seen[f.String] = true
	}
	for _, kv := range merged {
		if seen[kv.Key] {
			continue
		}
		seen[kv.Key] = true
		res.Append(kv.Key, kv.Val)
	}
	return res, nil
}

func (y *yamlState) key(k ast.MapKeyNode) (string, error) {
	var n ast.Node = k
	if mk, ok := k.(*ast.MappingKeyNode); ok {
		n = mk.Value
	}
	switch x := n.(type) {
	case *ast.StringNode:
		return x.Value, nil
	case *ast.NullNode:
		return "", nil
	case ast.ScalarNode:
		return x.GetToken().Value, nil
	}
	return "", y.errAt(n, "unsupported key %s", n.Type())
}

// merge appends the fields of src (an object or a list of objects) to kvs
// for a "<<" key.
func merge(kvs []ir.KeyVal, src *ir.Node, at ast.Node) ([]ir.KeyVal, error) {
	switch src.Type {
	case ir.ObjectType:
		for i, f := range src.Fields {
			kvs = append(kvs, ir.KeyVal{Key: f.String, Val: src.Values[i]})
		}
		return kvs, nil
	case ir.ArrayType:
		var err error
		for _, e := range src.Values {
			if kvs, err = merge(kvs, e, at); err != nil {
				return nil, err
			}
		}
		return kvs, nil
	}
	pos := at.GetToken().Position
	return nil, errAt(pos.Line, pos.Column, "merge key needs an object, got %s", src.Type)
}

func (y *yamlState) errAt(n ast.Node, format string, args ...any) error {
	if tok := n.GetToken(); tok != nil && tok.Position != nil {
		return errAt(tok.Position.Line, tok.Position.Column, format, args...)
	}
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}
