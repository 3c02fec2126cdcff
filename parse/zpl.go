package parse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/pack/ir"
)

// ZPL (the czmq "zconfig" text format) is a tree of named nodes. Each line
// holds one node: four spaces of indentation per level, a name, and
// optionally "= value". Values are bare words or quoted with ' or ".
// A '#' outside quotes starts a comment.
//
// The document root is unnamed and not written. A node with a value and no
// children becomes a string; a node with children becomes an object whose
// fields keep file order, duplicates included. A node with neither is an
// empty object.

const zplIndent = 4

type zplNode struct {
	name     string
	value    *string
	children []*zplNode
}

func parseZPL(d []byte) (*ir.Node, error) {
	root := &zplNode{}
	stack := []*zplNode{root}
	sc := bufio.NewScanner(bytes.NewReader(d))
	// A byte list is written as one base64 line of any length.
	sc.Buffer(nil, len(d)+1)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		body := strings.TrimLeft(line, " ")
		if body == "" || body[0] == '#' {
			continue
		}
		ind := len(line) - len(body)
		if body[0] == '\t' || ind%zplIndent != 0 {
			return nil, fmt.Errorf("%w: %d:%d: indent must be a multiple of %d spaces", ErrIndent, lineNo, ind+1, zplIndent)
		}
		level := ind/zplIndent + 1
		if level > len(stack) {
			return nil, fmt.Errorf("%w: %d:%d: too deep", ErrIndent, lineNo, ind+1)
		}
		n, err := parseZPLLine(body, lineNo, ind+1)
		if err != nil {
			return nil, err
		}
		stack = stack[:level]
		parent := stack[level-1]
		parent.children = append(parent.children, n)
		stack = append(stack, n)
	}
	if err := sc.Err(); err != nil {
		return nil, errAt(lineNo+1, 1, "%v", err)
	}
	return root.toIR(), nil
}

func parseZPLLine(s string, line, col int) (*zplNode, error) {
	i := 0
	for i < len(s) && isZPLNameChar(s[i]) {
		i++
	}
	if i == 0 {
		return nil, errAt(line, col, "expected a name, found %q", s[0])
	}
	n := &zplNode{name: s[:i]}
	rest := strings.TrimLeft(s[i:], " \t")
	if rest == "" || rest[0] == '#' {
		return n, nil
	}
	if rest[0] != '=' {
		return nil, errAt(line, col+len(s)-len(rest), "expected '=', found %q", rest[0])
	}
	rest = strings.TrimLeft(rest[1:], " \t")
	val, tail, err := zplValue(rest)
	if err != nil {
		return nil, errAt(line, col+len(s)-len(rest), "%v", err)
	}
	tail = strings.TrimLeft(tail, " \t")
	if tail != "" && tail[0] != '#' {
		return nil, errAt(line, col+len(s)-len(tail), "unexpected %q after value", tail)
	}
	n.value = &val
	return n, nil
}

func zplValue(s string) (val, tail string, err error) {
	if s == "" {
		return "", "", nil
	}
	if q := s[0]; q == '"' || q == '\'' {
		end := strings.IndexByte(s[1:], q)
		if end == -1 {
			return "", "", errUnterminated
		}
		return s[1 : end+1], s[end+2:], nil
	}
	end := strings.IndexAny(s, " \t#")
	if end == -1 {
		return s, "", nil
	}
	return s[:end], s[end:], nil
}

var errUnterminated = errors.New("unterminated quoted value")

func isZPLNameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("$-_@.&+/", c) != -1
}

func (z *zplNode) toIR() *ir.Node {
	if len(z.children) == 0 && z.value != nil {
		return ir.FromString(*z.value)
	}
	res := &ir.Node{Type: ir.ObjectType}
	for _, c := range z.children {
		res.Append(c.name, c.toIR())
	}
	return res
}
