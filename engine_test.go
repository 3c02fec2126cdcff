package pack_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/pack"
	"github.com/signadot/pack/internal/schematest"
)

// trace is a writer whose values are paths; it records each call.
type trace struct {
	events []string
	fail   string
}

var errFail = errors.New("refused")

func (t *trace) add(format string, args ...any) {
	t.events = append(t.events, fmt.Sprintf(format, args...))
}

func (t *trace) Object(v string) error {
	t.add("%s {}", v)
	return nil
}

func (t *trace) Field(v, key string) (string, error) { return v + "." + key, nil }

func (t *trace) List(v string, n int) error {
	t.add("%s [%d]", v, n)
	return nil
}

func (t *trace) Elem(v string, i int) (string, error) { return fmt.Sprintf("%s[%d]", v, i), nil }

func (t *trace) Map(v string) error {
	t.add("%s map", v)
	return nil
}

func (t *trace) Entry(v, key string) (string, error) { return v + "{" + key + "}", nil }

func (t *trace) Scalar(v string, s pack.Leaf) error {
	if t.fail != "" && strings.HasSuffix(v, t.fail) {
		return errFail
	}
	t.add("%s = %s", v, s.String())
	return nil
}

func (t *trace) ScalarList(v string, l pack.ScalarSeq) error {
	t.add("%s = list of %d", v, l.Len())
	return nil
}

func (t *trace) ScalarMap(v string, m pack.ScalarDict) error {
	t.add("%s = map %v", v, m.Keys())
	return nil
}

func TestEncodeWalk(t *testing.T) {
	tr := &trace{}
	s := schematest.NewSettings("")
	s.Count.Set(3)
	if err := pack.Encode[string](tr, "$", s); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"$ {}", "$.count = 3"}, tr.events); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	tr = &trace{}
	if err := pack.Encode[string](tr, "$", schematest.NewSettings(""), pack.WithDefaults()); err != nil {
		t.Fatal(err)
	}
	want := []string{"$ {}", "$.value = val", "$.count = 0", "$.flag = false"}
	if diff := cmp.Diff(want, tr.events); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestEncodeContainers(t *testing.T) {
	p := schematest.NewPerson("")
	p.Scores.Set("key2", 66)
	p.Scores.Set("key1", 42)
	p.Addresses.Append().Zip.Set(1)
	p.Contacts.Append("office")
	p.Contacts.Append("office").Street.Set("x")
	cat, _ := pack.Choose[*schematest.Cat](p.Pet)
	cat.Lives.Set(9)

	tr := &trace{}
	if err := pack.Encode[string](tr, "$", p); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"$ {}",
		"$.scores = map [key1 key2]",
		"$.addresses [1]",
		"$.addresses[0] {}",
		"$.addresses[0].zip = 1",
		"$.contacts map",
		"$.contacts{office} {}",
		"$.contacts{office} {}",
		"$.contacts{office}.street = x",
		"$.pet {}",
		"$.pet.lives = 9",
	}
	if diff := cmp.Diff(want, tr.events); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	tr := &trace{}
	if err := pack.Encode[string](tr, "$", schematest.NewHolder(""), pack.WithDefaults()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"$ {}", "$.union {}"}, tr.events); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestEncodePathError(t *testing.T) {
	p := schematest.NewPerson("")
	p.Addresses.Append()
	p.Addresses.Append().Zip.Set(5)
	err := pack.Encode[string](&trace{fail: "zip"}, "$", p)
	var pe *pack.PathError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v", err)
	}
	if pe.Op != "encode" || pe.Path != "addresses[1].zip" {
		t.Errorf("got %s at %q", pe.Op, pe.Path)
	}
	if !errors.Is(err, errFail) {
		t.Errorf("%v does not wrap the writer error", err)
	}
	if got, want := err.Error(), "encode error at addresses[1].zip: refused"; got != want {
		t.Errorf("got %q", got)
	}
}
