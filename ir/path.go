package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns the location of y in its tree, e.g. $.servers[2].name.
// Fields that are empty or hold path punctuation are single quoted.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return y.Parent.Path() + "." + quoteField(y.ParentField)
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

func quoteField(f string) string {
	if f != "" && strings.IndexAny(f, "'.$[]") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// Segment is one step of a parsed path: a field when Index is negative,
// an array index otherwise.
type Segment struct {
	Field string
	Index int
}

// ParsePath parses the form produced by Node.Path.
func ParsePath(p string) ([]Segment, error) {
	if !strings.HasPrefix(p, "$") {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrParse, p)
	}
	var res []Segment
	rest := p[1:]
	for rest != "" {
		switch rest[0] {
		case '.':
			field, tail, err := parseField(rest[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: path %q: %w", ErrParse, p, err)
			}
			res = append(res, Segment{Field: field, Index: -1})
			rest = tail
		case '[':
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return nil, fmt.Errorf("%w: path %q: unterminated index", ErrParse, p)
			}
			i, err := strconv.Atoi(rest[1:end])
			if err != nil || i < 0 {
				return nil, fmt.Errorf("%w: path %q: bad index %q", ErrParse, p, rest[1:end])
			}
			res = append(res, Segment{Index: i})
			rest = rest[end+1:]
		default:
			return nil, fmt.Errorf("%w: path %q: expected '.' or '['", ErrParse, p)
		}
	}
	return res, nil
}

func parseField(frag string) (field, rest string, err error) {
	if frag == "" {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	var b strings.Builder
	for i := 1; i < len(frag); i++ {
		switch c := frag[i]; c {
		case '\\':
			if i+1 < len(frag) {
				i++
				b.WriteByte(frag[i])
			}
		case '\'':
			return b.String(), frag[i+1:], nil
		default:
			b.WriteByte(c)
		}
	}
	return "", "", fmt.Errorf("unterminated quoted field")
}

// GetPath returns the node at path p below y.
func (y *Node) GetPath(p string) (*Node, error) {
	segs, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	res := y
	for _, seg := range segs {
		if seg.Index >= 0 {
			if res.Type != ArrayType || seg.Index >= len(res.Values) {
				return nil, fmt.Errorf("%w: no element %d at %s", ErrNotFound, seg.Index, res.Path())
			}
			res = res.Values[seg.Index]
			continue
		}
		if res.Type != ObjectType {
			return nil, fmt.Errorf("%w: %s is not an object", ErrNotFound, res.Path())
		}
		next := Get(res, seg.Field)
		if next == nil {
			return nil, fmt.Errorf("%w: no field %q at %s", ErrNotFound, seg.Field, res.Path())
		}
		res = next
	}
	return res, nil
}
