package pack_test

import (
	"math"
	"testing"

	"github.com/signadot/pack"
	"github.com/signadot/pack/internal/schematest"
	"github.com/signadot/pack/json"
	"github.com/signadot/pack/protobuf"
	"github.com/signadot/pack/yaml"
	"github.com/signadot/pack/zconfig"
)

type backend struct {
	name string
	enc  func(pack.Attribute, ...pack.Option) ([]byte, error)
	dec  func([]byte, pack.Attribute) error
}

func text(ser func(pack.Attribute, ...pack.Option) (string, error)) func(pack.Attribute, ...pack.Option) ([]byte, error) {
	return func(a pack.Attribute, opts ...pack.Option) ([]byte, error) {
		s, err := ser(a, opts...)
		return []byte(s), err
	}
}

func untext(des func(string, pack.Attribute) error) func([]byte, pack.Attribute) error {
	return func(d []byte, a pack.Attribute) error {
		return des(string(d), a)
	}
}

var backends = []backend{
	{"json", text(json.Serialize), untext(json.Deserialize)},
	{"yaml", text(yaml.Serialize), untext(yaml.Deserialize)},
	{"zconfig", text(zconfig.Serialize), untext(zconfig.Deserialize)},
	{"protobuf", protobuf.Serialize, protobuf.Deserialize},
}

func TestRoundTripLaw(t *testing.T) {
	for _, b := range backends {
		for _, opts := range [][]pack.Option{
			nil,
			{pack.WithDefaults()},
			{pack.ValueAsString(), pack.PrettyPrint()},
		} {
			p := schematest.NewEmployee("")
			schematest.Populate(p.Person)
			p.Company.Set("ACME")
			d, err := b.enc(p, opts...)
			if err != nil {
				t.Fatalf("%s: %v", b.name, err)
			}
			q := schematest.NewEmployee("")
			if err := b.dec(d, q); err != nil {
				t.Fatalf("%s: %v\n%s", b.name, err, d)
			}
			if !pack.Equal(p, q) {
				t.Errorf("%s: round trip differs\n%s", b.name, d)
			}
		}
	}
}

func TestDefaultsRoundTrip(t *testing.T) {
	for _, b := range backends {
		d, err := b.enc(schematest.NewSettings(""), pack.WithDefaults())
		if err != nil {
			t.Fatalf("%s: %v", b.name, err)
		}
		s := schematest.NewSettings("")
		s.Value.Set("changed")
		s.Count.Set(2)
		s.Flag.Set(true)
		if err := b.dec(d, s); err != nil {
			t.Fatalf("%s: %v", b.name, err)
		}
		if pack.HasValue(s) {
			t.Errorf("%s: explicit defaults did not reset fields", b.name)
		}
	}
}

func TestKeyedCollectionScenario(t *testing.T) {
	for _, b := range backends {
		m := pack.NewMap[int32]("")
		m.Set("key1", 42)
		m.Set("key2", 66)
		d, err := b.enc(m)
		if err != nil {
			t.Fatalf("%s: %v", b.name, err)
		}
		n := pack.NewMap[int32]("")
		if err := b.dec(d, n); err != nil {
			t.Fatalf("%s: %v", b.name, err)
		}
		if n.Len() != 2 || !n.Contains("key1") || !n.Contains("key2") {
			t.Fatalf("%s: got keys %v", b.name, n.Keys())
		}
		if v, _ := n.At("key1"); v != 42 {
			t.Errorf("%s: key1 is %d", b.name, v)
		}
		if v, _ := n.At("key2"); v != 66 {
			t.Errorf("%s: key2 is %d", b.name, v)
		}
	}
}

func TestDuplicateKeysScenario(t *testing.T) {
	for _, b := range backends {
		p := schematest.NewPerson("")
		p.Contacts.Append("office").Street.Set("first")
		p.Contacts.Append("office").Street.Set("second")
		d, err := b.enc(p)
		if err != nil {
			t.Fatalf("%s: %v", b.name, err)
		}
		q := schematest.NewPerson("")
		if err := b.dec(d, q); err != nil {
			t.Fatalf("%s: %v", b.name, err)
		}
		if q.Contacts.Len() != 2 {
			t.Fatalf("%s: %d contacts", b.name, q.Contacts.Len())
		}
		first, _ := q.Contacts.Find("office")
		if first.Street.Get() != "first" {
			t.Errorf("%s: lookup returned %q", b.name, first.Street.Get())
		}
	}
}

func TestUnionScenario(t *testing.T) {
	for _, b := range backends {
		h := schematest.NewHolder("")
		src, _ := pack.Choose[*schematest.B](h.Union)
		src.FA.Set("1")
		src.FB.Set("2")
		src.FC.Set("3")
		d, err := b.enc(h)
		if err != nil {
			t.Fatalf("%s: %v", b.name, err)
		}
		g := schematest.NewHolder("")
		if err := b.dec(d, g); err != nil {
			t.Fatalf("%s: %v", b.name, err)
		}
		got, ok := pack.As[*schematest.B](g.Union)
		if !ok {
			t.Fatalf("%s: selected %T", b.name, g.Union.Get())
		}
		if got.FC.Get() != "3" {
			t.Errorf("%s: c is %q", b.name, got.FC.Get())
		}
	}
}

func TestUnionTieBreak(t *testing.T) {
	// Only "a" and "b" are present: A covers all of its keys, B two thirds.
	h := schematest.NewHolder("")
	if err := json.Deserialize(`{"union": {"a": "1", "b": "2"}}`, h); err != nil {
		t.Fatal(err)
	}
	if !pack.Is[*schematest.A](h.Union) {
		t.Errorf("selected %T", h.Union.Get())
	}
	// No keys at all scores every candidate 0; the later one wins.
	if err := json.Deserialize(`{"union": {}}`, h); err != nil {
		t.Fatal(err)
	}
	if !pack.Is[*schematest.B](h.Union) {
		t.Errorf("selected %T", h.Union.Get())
	}
}

func TestInfiniteRoundTrip(t *testing.T) {
	for _, b := range backends {
		if b.name == "json" {
			continue
		}
		p := schematest.NewPerson("")
		p.Weight.Set(float32(math.Inf(1)))
		p.Height.Set(math.Inf(-1))
		d, err := b.enc(p)
		if err != nil {
			t.Fatalf("%s: %v", b.name, err)
		}
		q := schematest.NewPerson("")
		if err := b.dec(d, q); err != nil {
			t.Fatalf("%s: %v", b.name, err)
		}
		if !pack.Equal(p, q) {
			t.Errorf("%s: got %v %v", b.name, q.Weight.Get(), q.Height.Get())
		}
	}
}
