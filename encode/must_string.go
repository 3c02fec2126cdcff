package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/pack/ir"
)

// MustString encodes node as compact JSON, or with opts, and panics on
// failure.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
