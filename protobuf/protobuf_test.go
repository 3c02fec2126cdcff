package protobuf

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/signadot/pack"
	"github.com/signadot/pack/internal/schematest"
)

func roundTrip(t *testing.T, src, dst pack.Attribute, opts ...pack.Option) {
	t.Helper()
	d, err := Serialize(src, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if err := Deserialize(d, dst); err != nil {
		t.Fatal(err)
	}
}

func TestRoundTrip(t *testing.T) {
	p := schematest.NewPerson("")
	schematest.Populate(p)
	q := schematest.NewPerson("")
	roundTrip(t, p, q)
	if !pack.Equal(p, q) {
		t.Fatal("round trip changed value")
	}
	if q.Contacts.Len() != 2 {
		t.Errorf("%d contacts", q.Contacts.Len())
	}
	dog, ok := pack.As[*schematest.Dog](q.Pet)
	if !ok || dog.Breed.Get() != "collie" {
		t.Errorf("pet %T", q.Pet.Get())
	}
	if diff := cmp.Diff([]uint8{0, 1, 2, 250, 255}, q.Avatar.Values()); diff != "" {
		t.Errorf("avatar (-want +got)\n%s", diff)
	}
}

func TestDeterministic(t *testing.T) {
	p := schematest.NewPerson("")
	schematest.Populate(p)
	a, err := Serialize(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Serialize(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("two serializations differ")
	}
}

func TestComposedObject(t *testing.T) {
	e := schematest.NewEmployee("")
	schematest.Populate(e.Person)
	e.Company.Set("Analytical Engines")
	f := schematest.NewEmployee("")
	roundTrip(t, e, f)
	if f.Company.Get() != "Analytical Engines" || !pack.Equal(e, f) {
		t.Errorf("got company %q", f.Company.Get())
	}
}

func TestDefaultOmission(t *testing.T) {
	s := schematest.NewSettings("")
	d, err := Serialize(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(d) != 0 {
		t.Errorf("got %d bytes for defaults", len(d))
	}
	d, err = Serialize(s, pack.WithDefaults())
	if err != nil {
		t.Fatal(err)
	}
	if len(d) == 0 {
		t.Fatal("WithDefaults wrote nothing")
	}
	u := schematest.NewSettings("")
	u.Value.Set("other")
	u.Count.Set(9)
	if err := Deserialize(d, u); err != nil {
		t.Fatal(err)
	}
	if u.Value.Get() != "val" || u.Count.Get() != 0 || u.Flag.Get() {
		t.Errorf("got %q %d %t", u.Value.Get(), u.Count.Get(), u.Flag.Get())
	}
}

func TestAbsentFieldsKept(t *testing.T) {
	s := schematest.NewSettings("")
	s.Count.Set(4)
	u := schematest.NewSettings("")
	u.Flag.Set(true)
	roundTrip(t, s, u)
	if u.Count.Get() != 4 || !u.Flag.Get() {
		t.Errorf("got %d %t", u.Count.Get(), u.Flag.Get())
	}
}

func TestVariantDiscriminator(t *testing.T) {
	// B with only "a" set would resolve to A by key overlap; the oneof
	// member records B.
	h := schematest.NewHolder("")
	b, err := pack.Choose[*schematest.B](h.Union)
	if err != nil {
		t.Fatal(err)
	}
	b.FA.Set("x")
	g := schematest.NewHolder("")
	roundTrip(t, h, g)
	got, ok := pack.As[*schematest.B](g.Union)
	if !ok {
		t.Fatalf("selected %T", g.Union.Get())
	}
	if got.FA.Get() != "x" {
		t.Errorf("a is %q", got.FA.Get())
	}
}

func TestEmptyVariant(t *testing.T) {
	g := schematest.NewHolder("")
	roundTrip(t, schematest.NewHolder(""), g, pack.WithDefaults())
	if g.Union.Get() != nil {
		t.Errorf("selected %T", g.Union.Get())
	}
}

func TestNonObjectRoots(t *testing.T) {
	m := pack.NewMap[int32]("")
	m.Set("key1", 42)
	m.Set("key2", 66)
	n := pack.NewMap[int32]("")
	n.Set("stale", 1)
	roundTrip(t, m, n)
	if diff := cmp.Diff([]string{"key1", "key2"}, n.Keys()); diff != "" {
		t.Errorf("keys (-want +got)\n%s", diff)
	}
	if v, err := n.At("key2"); err != nil || v != 66 {
		t.Errorf("key2: %d %v", v, err)
	}

	l := pack.NewObjectList("", schematest.NewAddress)
	l.Append().Street.Set("Marylebone")
	l.Append().Zip.Set(7)
	k := pack.NewObjectList("", schematest.NewAddress)
	roundTrip(t, l, k)
	if !pack.Equal(l, k) {
		t.Error("object list changed")
	}

	vt := pack.NewVariant("", pack.Candidate(schematest.NewCat), pack.Candidate(schematest.NewDog))
	cat, _ := pack.Choose[*schematest.Cat](vt)
	cat.Lives.Set(9)
	wt := pack.NewVariant("", pack.Candidate(schematest.NewCat), pack.Candidate(schematest.NewDog))
	roundTrip(t, vt, wt)
	got, ok := pack.As[*schematest.Cat](wt)
	if !ok || got.Lives.Get() != 9 {
		t.Errorf("got %T", wt.Get())
	}
}

func TestSynthesizedDescriptor(t *testing.T) {
	md, err := Descriptor(schematest.NewPerson(""))
	if err != nil {
		t.Fatal(err)
	}
	if got := md.FullName(); got != Package+".Person" {
		t.Errorf("name %s", got)
	}
	fields := md.Fields()
	if name := fields.ByName("name"); name == nil || name.Number() != 1 || name.JSONName() != "name" {
		t.Errorf("name field %v", name)
	}
	role := fields.ByName("role")
	if role.Kind() != protoreflect.EnumKind || role.Enum().Values().ByName("Role_ADMIN") == nil {
		t.Errorf("role field %v", role)
	}
	if fields.ByName("avatar").Kind() != protoreflect.BytesKind {
		t.Error("avatar is not bytes")
	}
	if !fields.ByName("scores").IsMap() || !fields.ByName("tags").IsList() {
		t.Error("scores is not a map or tags is not repeated")
	}
	contacts := fields.ByName("contacts")
	if !contacts.IsList() || contacts.Message().Name() != "ContactsPair" {
		t.Errorf("contacts field %v", contacts)
	}
	pet := md.Oneofs().ByName("pet")
	if pet == nil || pet.Fields().Len() != 2 || pet.Fields().Get(1).Message().Name() != "Dog" {
		t.Errorf("pet oneof %v", pet)
	}
	again, err := Descriptor(schematest.NewPerson("other"))
	if err != nil {
		t.Fatal(err)
	}
	if again != md {
		t.Error("descriptor not cached")
	}
}

func TestFieldNames(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"name", "name"},
		{"first-name", "first_name"},
		{"9lives", "_9lives"},
		{"", "value"},
		{"naïve", "na_ve"},
	} {
		if got := fieldName(tc.in); got != tc.want {
			t.Errorf("%q: got %q want %q", tc.in, got, tc.want)
		}
	}
	for in, want := range map[string]string{"scores": "ScoresEntry", "first_name": "FirstNameEntry"} {
		if got := mapEntryName(in); got != want {
			t.Errorf("%q: got %q want %q", in, got, want)
		}
	}
}

// location codes an Address with a hand-written descriptor whose field
// numbers differ from the synthesized ones.
type location struct {
	*schematest.Address
}

func (l *location) ProtoName() string { return "acme.v1.Location" }

func (l *location) FileDescriptor() []byte {
	fd := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("acme/v1/location.proto"),
		Package: proto.String("acme.v1"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{{
			Name: proto.String("Location"),
			Field: []*descriptorpb.FieldDescriptorProto{
				{
					Name:     proto.String("street"),
					Number:   proto.Int32(3),
					Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
					Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
					JsonName: proto.String("street"),
				},
				{
					Name:     proto.String("zip"),
					Number:   proto.Int32(7),
					Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
					Type:     descriptorpb.FieldDescriptorProto_TYPE_FIXED32.Enum(),
					JsonName: proto.String("zip"),
				},
			},
		}},
	}
	d, err := proto.Marshal(&descriptorpb.FileDescriptorSet{File: []*descriptorpb.FileDescriptorProto{fd}})
	if err != nil {
		panic(err)
	}
	return d
}

func TestDescribed(t *testing.T) {
	l := &location{schematest.NewAddress("")}
	l.Street.Set("Somerset House")
	l.Zip.Set(2)

	m, err := Message(l)
	if err != nil {
		t.Fatal(err)
	}
	r := m.ProtoReflect()
	if got := r.Descriptor().FullName(); got != "acme.v1.Location" {
		t.Errorf("name %s", got)
	}
	if got := r.Get(r.Descriptor().Fields().ByNumber(7)).Uint(); got != 2 {
		t.Errorf("zip at field 7 is %d", got)
	}

	k := &location{schematest.NewAddress("")}
	roundTrip(t, l, k)
	if k.Street.Get() != "Somerset House" || k.Zip.Get() != 2 {
		t.Errorf("got %q %d", k.Street.Get(), k.Zip.Get())
	}
}

func TestErrors(t *testing.T) {
	p := schematest.NewPerson("")
	if err := Deserialize([]byte{0x0a, 0x05, 'A'}, p); !errors.Is(err, pack.ErrParse) {
		t.Errorf("truncated: got %v", err)
	}
	err := DeserializeFile(filepath.Join(t.TempDir(), "missing.pb"), p)
	if !errors.Is(err, pack.ErrIO) {
		t.Errorf("missing file: got %v", err)
	}
}

func TestFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "person.pb")
	p := schematest.NewPerson("")
	schematest.Populate(p)
	if err := SerializeFile(path, p); err != nil {
		t.Fatal(err)
	}
	q := schematest.NewPerson("")
	if err := DeserializeFile(path, q); err != nil {
		t.Fatal(err)
	}
	if !pack.Equal(p, q) {
		t.Error("file round trip changed value")
	}
}

func TestText(t *testing.T) {
	s := schematest.NewSettings("")
	s.Count.Set(3)
	got, err := Text(s)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "count:") || !strings.Contains(got, "3") || strings.Contains(got, "value") {
		t.Errorf("got %q", got)
	}
}
