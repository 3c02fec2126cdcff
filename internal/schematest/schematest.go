// Package schematest declares the schemas shared by the backend tests.
package schematest

import "github.com/signadot/pack"

type Role int32

const (
	Guest Role = iota
	Member
	Admin
)

func NewRole(key string) *pack.Enum[Role] {
	return pack.NewEnum(key,
		pack.EnumValue[Role]{Name: "GUEST", Value: Guest},
		pack.EnumValue[Role]{Name: "MEMBER", Value: Member},
		pack.EnumValue[Role]{Name: "ADMIN", Value: Admin},
	)
}

// Settings has a non-zero default and fields of three primitive types.
type Settings struct {
	pack.Node
	Value *pack.String
	Count *pack.Int32
	Flag  *pack.Bool
}

func NewSettings(key string) *Settings {
	return &Settings{
		Node:  pack.NewNode(key),
		Value: pack.NewValue("value", "val"),
		Count: pack.NewInt32("count"),
		Flag:  pack.NewBool("flag"),
	}
}

func (s *Settings) TypeName() string { return "Settings" }

func (s *Settings) Fields() []pack.Field {
	return []pack.Field{
		{Name: "Value", Attribute: s.Value},
		{Name: "Count", Attribute: s.Count},
		{Name: "Flag", Attribute: s.Flag},
	}
}

type Address struct {
	pack.Node
	Street *pack.String
	Zip    *pack.UInt32
}

func NewAddress(key string) *Address {
	return &Address{
		Node:   pack.NewNode(key),
		Street: pack.NewString("street"),
		Zip:    pack.NewUInt32("zip"),
	}
}

func (a *Address) TypeName() string { return "Address" }

func (a *Address) Fields() []pack.Field {
	return []pack.Field{
		{Name: "Street", Attribute: a.Street},
		{Name: "Zip", Attribute: a.Zip},
	}
}

type Cat struct {
	pack.Node
	Name  *pack.String
	Lives *pack.Int32
}

func NewCat(key string) *Cat {
	return &Cat{
		Node:  pack.NewNode(key),
		Name:  pack.NewString("name"),
		Lives: pack.NewInt32("lives"),
	}
}

func (c *Cat) TypeName() string { return "Cat" }

func (c *Cat) Fields() []pack.Field {
	return []pack.Field{
		{Name: "Name", Attribute: c.Name},
		{Name: "Lives", Attribute: c.Lives},
	}
}

type Dog struct {
	pack.Node
	Name  *pack.String
	Breed *pack.String
	Good  *pack.Bool
}

func NewDog(key string) *Dog {
	return &Dog{
		Node:  pack.NewNode(key),
		Name:  pack.NewString("name"),
		Breed: pack.NewString("breed"),
		Good:  pack.NewBool("good"),
	}
}

func (d *Dog) TypeName() string { return "Dog" }

func (d *Dog) Fields() []pack.Field {
	return []pack.Field{
		{Name: "Name", Attribute: d.Name},
		{Name: "Breed", Attribute: d.Breed},
		{Name: "Good", Attribute: d.Good},
	}
}

// Person exercises every attribute kind and primitive type.
type Person struct {
	pack.Node
	Name      *pack.String
	Age       *pack.Int32
	Serial    *pack.Int64
	ID        *pack.UInt32
	Big       *pack.UInt64
	Height    *pack.Double
	Weight    *pack.Float
	Active    *pack.Bool
	Grade     *pack.UChar
	Role      *pack.Enum[Role]
	Tags      *pack.List[string]
	Lucky     *pack.List[int64]
	Scores    *pack.Map[int32]
	Avatar    *pack.Binary
	Addresses *pack.ObjectList[*Address]
	Contacts  *pack.ObjectMap[*Address]
	Pet       *pack.Variant
}

func NewPerson(key string) *Person {
	return &Person{
		Node:      pack.NewNode(key),
		Name:      pack.NewString("name"),
		Age:       pack.NewInt32("age"),
		Serial:    pack.NewInt64("serial"),
		ID:        pack.NewUInt32("id"),
		Big:       pack.NewUInt64("big"),
		Height:    pack.NewDouble("height"),
		Weight:    pack.NewFloat("weight"),
		Active:    pack.NewBool("active"),
		Grade:     pack.NewUChar("grade"),
		Role:      NewRole("role"),
		Tags:      pack.NewList[string]("tags"),
		Lucky:     pack.NewList[int64]("lucky"),
		Scores:    pack.NewMap[int32]("scores"),
		Avatar:    pack.NewBinary("avatar"),
		Addresses: pack.NewObjectList("addresses", NewAddress),
		Contacts:  pack.NewObjectMap("contacts", NewAddress),
		Pet:       pack.NewVariant("pet", pack.Candidate(NewCat), pack.Candidate(NewDog)),
	}
}

func (p *Person) TypeName() string { return "Person" }

func (p *Person) Fields() []pack.Field {
	return []pack.Field{
		{Name: "Name", Attribute: p.Name},
		{Name: "Age", Attribute: p.Age},
		{Name: "Serial", Attribute: p.Serial},
		{Name: "ID", Attribute: p.ID},
		{Name: "Big", Attribute: p.Big},
		{Name: "Height", Attribute: p.Height},
		{Name: "Weight", Attribute: p.Weight},
		{Name: "Active", Attribute: p.Active},
		{Name: "Grade", Attribute: p.Grade},
		{Name: "Role", Attribute: p.Role},
		{Name: "Tags", Attribute: p.Tags},
		{Name: "Lucky", Attribute: p.Lucky},
		{Name: "Scores", Attribute: p.Scores},
		{Name: "Avatar", Attribute: p.Avatar},
		{Name: "Addresses", Attribute: p.Addresses},
		{Name: "Contacts", Attribute: p.Contacts},
		{Name: "Pet", Attribute: p.Pet},
	}
}

// Employee extends Person by composing its field list.
type Employee struct {
	*Person
	Company *pack.String
}

func NewEmployee(key string) *Employee {
	return &Employee{
		Person:  NewPerson(key),
		Company: pack.NewString("company"),
	}
}

func (e *Employee) TypeName() string { return "Employee" }

func (e *Employee) Fields() []pack.Field {
	return append(e.Person.Fields(), pack.Field{Name: "Company", Attribute: e.Company})
}

// Populate sets every field of p to a value other than its default.
func Populate(p *Person) {
	p.Name.Set("Ada")
	p.Age.Set(36)
	p.Serial.Set(-1 << 40)
	p.ID.Set(4000000000)
	p.Big.Set(1<<64 - 1)
	p.Height.Set(1.72)
	p.Weight.Set(61.3)
	p.Active.Set(true)
	p.Grade.Set(200)
	_ = p.Role.Set(Admin)
	p.Tags.Append("math", "engines")
	p.Lucky.Append(7, -13)
	p.Scores.Set("key1", 42)
	p.Scores.Set("key2", 66)
	p.Avatar.Append(0, 1, 2, 250, 255)
	home := p.Addresses.Append()
	home.Street.Set("St James's Square")
	home.Zip.Set(10115)
	p.Addresses.Append().Street.Set("Marylebone")
	p.Contacts.Append("office").Street.Set("Somerset House")
	p.Contacts.Append("office").Zip.Set(2)
	dog, _ := pack.Choose[*Dog](p.Pet)
	dog.Name.Set("Rex")
	dog.Breed.Set("collie")
	dog.Good.Set(true)
}

type A struct {
	pack.Node
	FA, FB *pack.String
}

func NewA(key string) *A {
	return &A{Node: pack.NewNode(key), FA: pack.NewString("a"), FB: pack.NewString("b")}
}

func (a *A) TypeName() string { return "A" }

func (a *A) Fields() []pack.Field {
	return []pack.Field{{Name: "FA", Attribute: a.FA}, {Name: "FB", Attribute: a.FB}}
}

type B struct {
	pack.Node
	FA, FB, FC *pack.String
}

func NewB(key string) *B {
	return &B{Node: pack.NewNode(key), FA: pack.NewString("a"), FB: pack.NewString("b"), FC: pack.NewString("c")}
}

func (b *B) TypeName() string { return "B" }

func (b *B) Fields() []pack.Field {
	return []pack.Field{
		{Name: "FA", Attribute: b.FA},
		{Name: "FB", Attribute: b.FB},
		{Name: "FC", Attribute: b.FC},
	}
}

// Holder carries a variant over A and B.
type Holder struct {
	pack.Node
	Union *pack.Variant
}

func NewHolder(key string) *Holder {
	return &Holder{
		Node:  pack.NewNode(key),
		Union: pack.NewVariant("union", pack.Candidate(NewA), pack.Candidate(NewB)),
	}
}

func (h *Holder) TypeName() string { return "Holder" }

func (h *Holder) Fields() []pack.Field {
	return []pack.Field{{Name: "Union", Attribute: h.Union}}
}
