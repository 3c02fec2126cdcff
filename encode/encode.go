package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/pack/format"
	"github.com/signadot/pack/ir"
)

// ErrEncode reports a tree the target format cannot represent.
var ErrEncode = errors.New("encode error")

type EncState struct {
	format format.Format
	pretty bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in the selected format (JSON by default),
// followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	var (
		d   []byte
		err error
	)
	switch es.format {
	case format.JSONFormat:
		d, err = encodeJSON(node, es)
	case format.YAMLFormat:
		d, err = encodeYAML(node, es)
	case format.ZConfigFormat:
		d, err = encodeZPL(node, es)
	default:
		return fmt.Errorf("%w: cannot encode %s as text", format.ErrBadFormat, es.format)
	}
	if err != nil {
		return err
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

func errAt(node *ir.Node, msg string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrEncode, node.Path(), fmt.Sprintf(msg, args...))
}
