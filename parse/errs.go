package parse

import (
	"fmt"

	"github.com/signadot/pack/ir"
)

var (
	ErrParse     = ir.ErrParse
	ErrIndent    = fmt.Errorf("%w: bad indentation", ErrParse)
	ErrMultiDocs = fmt.Errorf("%w: more than one document", ErrParse)
)

func errAt(line, col int, format string, args ...any) error {
	return fmt.Errorf("%w: %d:%d: %s", ErrParse, line, col, fmt.Sprintf(format, args...))
}
