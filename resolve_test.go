package pack_test

import (
	"errors"
	"testing"

	"github.com/signadot/pack"
	"github.com/signadot/pack/internal/schematest"
)

func TestResolve(t *testing.T) {
	ab := []string{"a", "b"}
	abc := []string{"a", "b", "c"}
	tests := []struct {
		name  string
		cands [][]string
		keys  []string
		want  int
	}{
		{"full overlap", [][]string{ab, abc}, []string{"a", "b", "c"}, 1},
		{"partial overlap", [][]string{ab, abc}, []string{"a"}, 0},
		{"equal scores pick later", [][]string{ab, {"c", "d"}}, []string{"a", "c"}, 1},
		{"no keys pick last", [][]string{ab, abc}, nil, 1},
		{"unknown keys pick last", [][]string{ab, abc}, []string{"z"}, 1},
		{"no declared keys", [][]string{{}, ab}, []string{"a"}, 1},
		{"no declared keys loses", [][]string{ab, {}}, []string{"a"}, 0},
		{"no candidates", nil, []string{"a"}, -1},
		{"no declared keys and no keys", [][]string{{}, {}}, nil, 1},
		{"empty candidate last without keys", [][]string{ab, {}}, nil, 1},
		{"empty candidate first without keys", [][]string{{}, ab}, []string{}, 1},
	}
	for _, tc := range tests {
		if got := pack.Resolve(tc.cands, tc.keys); got != tc.want {
			t.Errorf("%s: got %d want %d", tc.name, got, tc.want)
		}
	}
}

func TestFindBetter(t *testing.T) {
	h := schematest.NewHolder("")
	m := h.Union.FindBetter([]string{"a", "b", "c"})
	if _, ok := m.(*schematest.B); !ok {
		t.Fatalf("got %T", m)
	}
	if h.Union.Get() != m || h.Union.Index() != 1 {
		t.Error("FindBetter did not select its result")
	}
	if m := h.Union.FindBetter([]string{"a"}); !pack.Is[*schematest.A](h.Union) {
		t.Errorf("got %T", m)
	}
	empty := pack.NewVariant("v")
	if m := empty.FindBetter([]string{"a"}); m != nil {
		t.Errorf("got %T from a variant without candidates", m)
	}
}

type blank struct{ pack.Node }

func newBlank(key string) *blank { return &blank{Node: pack.NewNode(key)} }

func (b *blank) TypeName() string     { return "Blank" }
func (b *blank) Fields() []pack.Field { return nil }

func TestFindBetterEmptyCandidate(t *testing.T) {
	v := pack.NewVariant("v", pack.Candidate(schematest.NewA), pack.Candidate(newBlank))
	if m := v.FindBetter(nil); !pack.Is[*blank](v) {
		t.Errorf("got %T", m)
	}
	if m := v.FindBetter([]string{"a"}); !pack.Is[*schematest.A](v) {
		t.Errorf("got %T", m)
	}
}

func TestVariantSet(t *testing.T) {
	h := schematest.NewHolder("")
	if err := h.Union.Set(nil); !errors.Is(err, pack.ErrShape) {
		t.Errorf("set nil: got %v", err)
	}
	if err := h.Union.Set(schematest.NewCat("")); !errors.Is(err, pack.ErrShape) {
		t.Errorf("set cat: got %v", err)
	}
	b := schematest.NewB("")
	if err := h.Union.Set(b); err != nil || h.Union.Get() != b || h.Union.Index() != 1 {
		t.Errorf("set b: %v", err)
	}
}
