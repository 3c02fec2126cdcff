package ir_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/pack/ir"
	"github.com/signadot/pack/parse"
)

type pathTest struct {
	Path string
	Doc  string
	Res  any
}

var pathTests = []pathTest{
	{
		Path: "$",
		Doc:  "null",
		Res:  nil,
	},
	{
		Path: "$.f",
		Doc:  `{"f": 1}`,
		Res:  int64(1),
	},
	{
		Path: "$[0]",
		Doc:  "[1,2,3]",
		Res:  int64(1),
	},
	{
		Path: "$",
		Doc:  "[1,2,3]",
		Res:  []any{int64(1), int64(2), int64(3)},
	},
	{
		Path: "$[1].f",
		Doc:  `[0, {"f": 2, "g": 3}]`,
		Res:  int64(2),
	},
	{
		Path: "$.f[3]",
		Doc:  `{"a": [1,2], "f": [0,1,2,"three"]}`,
		Res:  "three",
	},
	{
		Path: "$.'f[3]'[2]",
		Doc:  `{"a": [1,2], "f[3]": [0,1,2,"three"]}`,
		Res:  int64(2),
	},
	{
		Path: "$.'$f[\\'3]'[2]",
		Doc:  `{"a": [1,2], "$f['3]": [0,1,2,"three"]}`,
		Res:  int64(2),
	},
	{
		Path: "$.''",
		Doc:  `{"": "empty"}`,
		Res:  "empty",
	},
}

func TestPathGet(t *testing.T) {
	for i := range pathTests {
		pathTest := &pathTests[i]
		node, err := parse.ParseString(pathTest.Doc)
		if err != nil {
			t.Errorf("# doc\n%s\n---\n# %v\n", pathTest.Doc, err)
			continue
		}
		res, err := node.GetPath(pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		if diff := cmp.Diff(pathTest.Res, ir.ToAny(res)); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", pathTest.Path, diff)
		}
		if got := res.Path(); got != pathTest.Path {
			t.Errorf("path of result: got %q want %q", got, pathTest.Path)
		}
	}
}

func TestPathErrors(t *testing.T) {
	doc, err := parse.ParseString(`{"a": [1, {"b": 2}]}`)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"a", "$a", "$[", "$[x]", "$[-1]", "$.'a", "$."} {
		if _, err := doc.GetPath(p); !errors.Is(err, ir.ErrParse) {
			t.Errorf("%q: got %v", p, err)
		}
	}
	for _, p := range []string{"$.b", "$.a[2]", "$.a.b", "$[0]", "$.a[1].c"} {
		if _, err := doc.GetPath(p); !errors.Is(err, ir.ErrNotFound) {
			t.Errorf("%q: got %v", p, err)
		}
	}
}

func TestParsePath(t *testing.T) {
	segs, err := ir.ParsePath("$.servers[2].'a.b'")
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.Segment{
		{Field: "servers", Index: -1},
		{Index: 2},
		{Field: "a.b", Index: -1},
	}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}
