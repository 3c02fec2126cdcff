package debug

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/signadot/pack/ir"
)

func TestLogfNodes(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	out = buf
	defer func() { out = os.Stderr }()

	n := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	Logf("tree %s|%d\n", n, 3)
	got := buf.String()
	if !strings.HasPrefix(got, "tree a: 1\n") || !strings.HasSuffix(got, "|3\n") {
		t.Errorf("got %q", got)
	}
}
