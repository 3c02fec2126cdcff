package ir_test

import (
	"testing"

	"github.com/signadot/pack/ir"
	"github.com/signadot/pack/parse"
)

func TestCompare(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		want int
	}{
		{`1`, `1.0`, 0},
		{`2`, `10`, -1},
		{`1.5`, `1`, 1},
		{`null`, `false`, -1},
		{`true`, `false`, 1},
		{`"a"`, `1`, 1},
		{`"a"`, `"b"`, -1},
		{`[1, 2]`, `[1, 2, 3]`, -1},
		{`[1, 3]`, `[1, 2, 3]`, 1},
		{`{"a": 1}`, `[1]`, 1},
		{`{"a": 1}`, `{"a": 1}`, 0},
		{`{"a": 1}`, `{"b": 1}`, -1},
		{`{"a": 2}`, `{"a": 1}`, 1},
		{`18446744073709551615`, `18446744073709551615`, 0},
	} {
		a, err := parse.ParseString(tc.a)
		if err != nil {
			t.Fatal(err)
		}
		b, err := parse.ParseString(tc.b)
		if err != nil {
			t.Fatal(err)
		}
		if got := ir.Compare(a, b); got != tc.want {
			t.Errorf("compare %s %s: got %d want %d", tc.a, tc.b, got, tc.want)
		}
		if got := ir.Compare(b, a); got != -tc.want {
			t.Errorf("compare %s %s: got %d want %d", tc.b, tc.a, got, -tc.want)
		}
	}
}
