package encode

import (
	"errors"
	"strconv"
	"strings"

	"github.com/signadot/pack/ir"
)

const zplIndent = "    "

// encodeZPL writes the children of node as a ZPL tree. Array elements are
// named "1", "2", ... and every leaf is written as a quoted string. The
// root must be an object or an array.
func encodeZPL(node *ir.Node, es *EncState) ([]byte, error) {
	if node.Type != ir.ObjectType && node.Type != ir.ArrayType {
		return nil, errAt(node, "ZPL root must be an object or array, not %s", node.Type)
	}
	var b strings.Builder
	if err := zplChildren(&b, node, 0, es); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func zplChildren(b *strings.Builder, node *ir.Node, depth int, es *EncState) error {
	for i, v := range node.Values {
		name := strconv.Itoa(i + 1)
		if node.Type == ir.ObjectType {
			name = node.Fields[i].String
		}
		if err := zplNode(b, name, v, depth, es); err != nil {
			return err
		}
	}
	return nil
}

func zplNode(b *strings.Builder, name string, v *ir.Node, depth int, es *EncState) error {
	if !validZPLName(name) {
		return errAt(v, "%q is not a valid ZPL name", name)
	}
	b.WriteString(strings.Repeat(zplIndent, depth))
	if es.Color != nil {
		name = es.Color(ir.ObjectType, FieldColor, name)
	}
	b.WriteString(name)
	var text string
	switch v.Type {
	case ir.ObjectType, ir.ArrayType:
		b.WriteByte('\n')
		return zplChildren(b, v, depth+1, es)
	case ir.NullType:
		b.WriteByte('\n')
		return nil
	case ir.StringType:
		text = v.String
	case ir.BoolType:
		text = strconv.FormatBool(v.Bool)
	case ir.NumberType:
		text = v.NumberText()
	}
	q, err := zplQuote(text)
	if err != nil {
		return errAt(v, "%v", err)
	}
	if es.Color != nil {
		q = es.Color(v.Type, ValueColor, q)
	}
	b.WriteString(" = ")
	b.WriteString(q)
	b.WriteByte('\n')
	return nil
}

func zplQuote(s string) (string, error) {
	if strings.ContainsAny(s, "\n\r") {
		return "", errZPLBreak
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`, nil
	}
	if !strings.Contains(s, "'") {
		return "'" + s + "'", nil
	}
	return "", errZPLQuotes
}

var (
	errZPLBreak  = errors.New("ZPL values cannot hold line breaks")
	errZPLQuotes = errors.New("ZPL values cannot hold both quote characters")
)

func validZPLName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.IndexByte("$-_@.&+/", c) != -1:
		default:
			return false
		}
	}
	return true
}
