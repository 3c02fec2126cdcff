package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/pack/ir"
)

type parseTest struct {
	in   string
	opts []ParseOption
	want any
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`, want: nil},
		{in: `true`, want: true},
		{in: `22`, want: int64(22)},
		{in: `-1.5e3`, want: float64(-1500)},
		{in: `18446744073709551615`, want: uint64(18446744073709551615)},
		{in: `"hello"`, want: "hello"},
		{in: `[1, "a", false]`, want: []any{int64(1), "a", false}},
		{
			in: `{
	// comment
	"a": {"b": [1, 2,],},
}`,
			want: map[string]any{"a": map[string]any{"b": []any{int64(1), int64(2)}}},
		},
		{in: "a: 1\nb: [x, y]\n", opts: []ParseOption{ParseYAML()},
			want: map[string]any{"a": int64(1), "b": []any{"x", "y"}}},
		{in: "s: |\n  line1\n  line2\n", opts: []ParseOption{ParseYAML()},
			want: map[string]any{"s": "line1\nline2\n"}},
		{in: "n: !!str 12\nf: 0.5\nz: ~\n", opts: []ParseOption{ParseYAML()},
			want: map[string]any{"n": "12", "f": 0.5, "z": nil}},
		{in: "base: &b\n  x: 1\nder:\n  <<: *b\n  y: 2\n", opts: []ParseOption{ParseYAML()},
			want: map[string]any{
				"base": map[string]any{"x": int64(1)},
				"der":  map[string]any{"x": int64(1), "y": int64(2)},
			}},
		{in: "", opts: []ParseOption{ParseYAML()}, want: nil},
		{
			in: `# comment
server
    name = "alpha beta"   # trailing
    port = 8080
    tags
        1 = a
        2 = 'b c'
    empty
`,
			opts: []ParseOption{ParseZConfig()},
			want: map[string]any{"server": map[string]any{
				"name":  "alpha beta",
				"port":  "8080",
				"tags":  map[string]any{"1": "a", "2": "b c"},
				"empty": map[string]any{},
			}},
		},
	}
	for _, pt := range pts {
		node, err := Parse([]byte(pt.in), pt.opts...)
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if diff := cmp.Diff(pt.want, ir.ToAny(node)); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", pt.in, diff)
		}
	}
}

func TestParseDuplicates(t *testing.T) {
	for _, pt := range []parseTest{
		{in: `{"k": 1, "k": 2}`},
		{in: "k: 1\nk: 2\n", opts: []ParseOption{ParseYAML()}},
		{in: "k = 1\nk = 2\n", opts: []ParseOption{ParseZConfig()}},
	} {
		node, err := Parse([]byte(pt.in), pt.opts...)
		if err != nil {
			t.Fatalf("%q: %v", pt.in, err)
		}
		if len(node.Fields) != 2 || node.Fields[0].String != "k" || node.Fields[1].String != "k" {
			t.Errorf("%q: duplicates lost: %d fields", pt.in, len(node.Fields))
		}
		if node.Values[1].Path() != "$.k" {
			t.Errorf("%q: got path %s", pt.in, node.Values[1].Path())
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, pt := range []parseTest{
		{in: `{"a": }`},
		{in: `[1, 2`},
		{in: "a: [1, 2\n", opts: []ParseOption{ParseYAML()}},
		{in: "a\n   b = 1\n", opts: []ParseOption{ParseZConfig()}},
		{in: "a\n        b = 1\n", opts: []ParseOption{ParseZConfig()}},
		{in: "a = \"open\n", opts: []ParseOption{ParseZConfig()}},
		{in: "a = 1 2\n", opts: []ParseOption{ParseZConfig()}},
		{in: "a: 1\n---\nb: 2\n", opts: []ParseOption{ParseYAML()}},
	} {
		_, err := Parse([]byte(pt.in), pt.opts...)
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: expected parse error, got %v", pt.in, err)
		}
	}
}

func TestParseAllYAML(t *testing.T) {
	docs, err := ParseAll([]byte("a: 1\n---\nb: 2\n"), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs", len(docs))
	}
	if ir.Get(docs[1], "b") == nil {
		t.Errorf("second document lost")
	}
}

func TestParseYAMLMergeOverride(t *testing.T) {
	in := `home:
  <<: [{street: old, zip: 1}, {zip: 2, city: x}]
  street: new
`
	node, err := Parse([]byte(in), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	home := ir.Get(node, "home")
	var keys []string
	for _, f := range home.Fields {
		keys = append(keys, f.String)
	}
	if diff := cmp.Diff([]string{"street", "zip", "city"}, keys); diff != "" {
		t.Errorf("keys (-want +got)\n%s", diff)
	}
	want := map[string]any{"street": "new", "zip": int64(1), "city": "x"}
	if diff := cmp.Diff(want, ir.ToAny(home)); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if got := ir.Get(home, "street").String; got != "new" {
		t.Errorf("street is %q", got)
	}
}
