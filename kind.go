package pack

import "fmt"

// Kind is the shape of an attribute.
type Kind int

const (
	ScalarKind Kind = iota
	EnumKind
	ObjectListKind
	ScalarListKind
	ObjectMapKind
	ScalarMapKind
	ObjectKind
	VariantKind
)

var kindNames = map[Kind]string{
	ScalarKind:     "Scalar",
	EnumKind:       "Enum",
	ObjectListKind: "ObjectList",
	ScalarListKind: "ScalarList",
	ObjectMapKind:  "ObjectMap",
	ScalarMapKind:  "ScalarMap",
	ObjectKind:     "Object",
	VariantKind:    "Variant",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, s := range kindNames {
		if s == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	return []Kind{
		ScalarKind,
		EnumKind,
		ObjectListKind,
		ScalarListKind,
		ObjectMapKind,
		ScalarMapKind,
		ObjectKind,
		VariantKind,
	}
}

// IsLeaf reports whether attributes of kind k are coded by a single backend
// leaf call rather than a recursive walk.
func (k Kind) IsLeaf() bool {
	switch k {
	case ScalarKind, EnumKind, ScalarListKind, ScalarMapKind:
		return true
	default:
		return false
	}
}
