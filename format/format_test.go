package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s: got %s", f, g)
		}
		h, err := FromSuffix(f.Suffix())
		if err != nil {
			t.Fatal(err)
		}
		if h != f {
			t.Errorf("suffix %s: got %s", f.Suffix(), h)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	if f, _ := ParseFormat("zpl"); !f.IsZConfig() {
		t.Errorf("zpl: got %s", f)
	}
}
