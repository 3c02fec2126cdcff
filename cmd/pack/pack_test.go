package main

import (
	"bytes"
	"testing"

	"github.com/expr-lang/expr"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/pack/format"
	"github.com/signadot/pack/ir"
	"github.com/signadot/pack/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestInFormat(t *testing.T) {
	yf := format.ZConfigFormat
	for _, tc := range []struct {
		cfg  *MainConfig
		path string
		want format.Format
	}{
		{&MainConfig{}, "a.yaml", format.YAMLFormat},
		{&MainConfig{}, "a.cfg", format.ZConfigFormat},
		{&MainConfig{}, "a.pb", format.JSONFormat},
		{&MainConfig{}, "-", format.JSONFormat},
		{&MainConfig{Y: true}, "a.json", format.YAMLFormat},
		{&MainConfig{Y: true, InFormat: &yf}, "a.json", format.ZConfigFormat},
	} {
		if got := tc.cfg.inFormat(tc.path); got != tc.want {
			t.Errorf("%s: got %s want %s", tc.path, got, tc.want)
		}
	}
}

func TestDocWriter(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	dw := &docWriter{cfg: &MainConfig{Y: true}, w: buf}
	for _, n := range []*ir.Node{ir.FromInt(1), ir.FromInt(2)} {
		if err := dw.write(n); err != nil {
			t.Fatal(err)
		}
	}
	if got, want := buf.String(), "1\n---\n2\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestQuery(t *testing.T) {
	doc := mustParse(t, `{"replicas": 3, "servers": [{"port": 80}, {"port": 8080}]}`)
	for _, tc := range []struct {
		q    string
		want any
	}{
		{"replicas * 2", int64(6)},
		{"doc.replicas", int64(3)},
		{"filter(servers, .port > 8000)", []any{map[string]any{"port": int64(8080)}}},
		{"len(doc.servers) == 2", true},
		{"missing", nil},
	} {
		prog, err := expr.Compile(tc.q, expr.AllowUndefinedVariables())
		if err != nil {
			t.Fatalf("%s: %v", tc.q, err)
		}
		res, err := eval(prog, doc)
		if err != nil {
			t.Fatalf("%s: %v", tc.q, err)
		}
		if diff := cmp.Diff(tc.want, ir.ToAny(res)); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", tc.q, diff)
		}
	}
}

func TestPatch(t *testing.T) {
	doc := mustParse(t, `{"a": 1, "b": [1, 2]}`)
	for _, tc := range []struct {
		name  string
		patch string
		merge bool
		want  any
	}{
		{
			name:  "ops",
			patch: `[{"op": "replace", "path": "/a", "value": 5}, {"op": "add", "path": "/b/-", "value": 3}]`,
			want:  map[string]any{"a": int64(5), "b": []any{int64(1), int64(2), int64(3)}},
		},
		{
			name:  "merge",
			patch: `{"a": null, "c": "x"}`,
			merge: true,
			want:  map[string]any{"b": []any{int64(1), int64(2)}, "c": "x"},
		},
	} {
		apply, err := patchFunc(mustParse(t, tc.patch), tc.merge)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		res, err := applyPatch(apply, doc)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if diff := cmp.Diff(tc.want, ir.ToAny(res)); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", tc.name, diff)
		}
	}
	apply, err := patchFunc(mustParse(t, `[{"op": "remove", "path": "/zz"}]`), false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := applyPatch(apply, doc); err == nil {
		t.Error("expected an error removing a missing path")
	}
}

func TestDiff(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	differs, err := writeDiff(buf, lineDiff("a\nb\n", "a\nc\n"), false)
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Error("expected a difference")
	}
	if got, want := buf.String(), " a\n-b\n+c\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}

	buf.Reset()
	cfg := &MainConfig{Y: true}
	differs, err = diffDocs(cfg, buf, mustParse(t, `{"x": [1]}`), mustParse(t, `{"x": [1]}`))
	if err != nil {
		t.Fatal(err)
	}
	if differs || buf.Len() != 0 {
		t.Errorf("unexpected diff %q", buf.String())
	}

	differs, err = diffDocs(cfg, buf, mustParse(t, `{"x": 1, "y": 2}`), mustParse(t, `{"x": 1, "y": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Error("expected a difference")
	}
	if got, want := buf.String(), " x: 1\n-y: 2\n+y: 3\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
