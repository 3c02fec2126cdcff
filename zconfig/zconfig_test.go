package zconfig

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/signadot/pack"
	"github.com/signadot/pack/encode"
	"github.com/signadot/pack/internal/schematest"
	"github.com/signadot/pack/yaml"
)

func TestDefaultOmission(t *testing.T) {
	s := schematest.NewSettings("")
	got, err := Serialize(s)
	if err != nil {
		t.Fatal(err)
	}
	if got != "\n" {
		t.Errorf("got %q", got)
	}
	got, err = Serialize(s, pack.WithDefaults())
	if err != nil {
		t.Fatal(err)
	}
	if want := "value = \"val\"\ncount = \"0\"\nflag = \"false\"\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestLayout(t *testing.T) {
	p := schematest.NewPerson("")
	p.Name.Set("Ada")
	p.Tags.Append("a", "b")
	p.Addresses.Append().Zip.Set(7)
	got, err := Serialize(p)
	if err != nil {
		t.Fatal(err)
	}
	want := `name = "Ada"
tags
    1 = "a"
    2 = "b"
addresses
    1
        zip = "7"
`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	p := schematest.NewPerson("")
	schematest.Populate(p)
	s, err := Serialize(p)
	if err != nil {
		t.Fatal(err)
	}
	back := schematest.NewPerson("")
	if err := Deserialize(s, back); err != nil {
		t.Fatalf("%v\n%s", err, s)
	}
	if !pack.Equal(p, back) {
		t.Errorf("round trip changed value:\n%s\n%s", s, yaml.Dump(back))
	}
}

func TestKeyedCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.zpl")
	m := pack.NewMap[int32]("")
	m.Set("key1", 42)
	m.Set("key2", 66)
	if err := SerializeFile(path, m); err != nil {
		t.Fatal(err)
	}
	back := pack.NewMap[int32]("")
	if err := DeserializeFile(path, back); err != nil {
		t.Fatal(err)
	}
	if back.Len() != 2 || !back.Contains("key1") || !back.Contains("key2") {
		t.Fatalf("got %v", back.Keys())
	}
	if v, _ := back.At("key1"); v != 42 {
		t.Errorf("key1: got %d", v)
	}
}

func TestUnrepresentable(t *testing.T) {
	p := schematest.NewPerson("")
	p.Contacts.Append("two words")
	if _, err := Serialize(p, pack.WithDefaults()); !errors.Is(err, encode.ErrEncode) {
		t.Errorf("bad name: got %v", err)
	}
	if _, err := Serialize(pack.NewString("root")); !errors.Is(err, encode.ErrEncode) {
		t.Errorf("scalar root: got %v", err)
	}
}

func TestLongLine(t *testing.T) {
	p := schematest.NewPerson("")
	b := make([]byte, 70000)
	for i := range b {
		b[i] = byte(i * 7)
	}
	p.Avatar.Append(b...)
	s, err := Serialize(p)
	if err != nil {
		t.Fatal(err)
	}
	back := schematest.NewPerson("")
	if err := Deserialize(s, back); err != nil {
		t.Fatalf("%d bytes: %v", len(s), err)
	}
	if !pack.Equal(p, back) {
		t.Error("byte list changed in round trip")
	}
}
