package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/pack/encode"
	"github.com/signadot/pack/format"
	"github.com/signadot/pack/ir"
)

var out io.Writer = os.Stderr

// Logf writes to stderr. *ir.Node arguments are rendered as YAML.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf, encode.EncodeFormat(format.YAMLFormat)); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = buf.String()
		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
