package pack

import (
	"fmt"
	"math"
	"strconv"
)

// Type is the closed set of primitive leaf types.
type Type int

const (
	StringType Type = iota
	Int32Type
	Int64Type
	UInt32Type
	UInt64Type
	FloatType
	DoubleType
	BoolType
	UCharType
)

// Primitive is the Go type set matching Type.
type Primitive interface {
	string | int32 | int64 | uint32 | uint64 | float32 | float64 | bool | uint8
}

const (
	floatEpsilon  = 0x1p-23
	doubleEpsilon = 0x1p-52
)

var typeNames = map[Type]string{
	StringType: "string",
	Int32Type:  "int32",
	Int64Type:  "int64",
	UInt32Type: "uint32",
	UInt64Type: "uint64",
	FloatType:  "float",
	DoubleType: "double",
	BoolType:   "bool",
	UCharType:  "uchar",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, s := range typeNames {
		if s == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		StringType,
		Int32Type,
		Int64Type,
		UInt32Type,
		UInt64Type,
		FloatType,
		DoubleType,
		BoolType,
		UCharType,
	}
}

// IsNumeric reports whether t renders as a number in the text formats.
func (t Type) IsNumeric() bool {
	switch t {
	case StringType, BoolType:
		return false
	default:
		return true
	}
}

// TypeOf returns the Type tag of T.
func TypeOf[T Primitive]() Type {
	var z T
	switch any(z).(type) {
	case string:
		return StringType
	case int32:
		return Int32Type
	case int64:
		return Int64Type
	case uint32:
		return UInt32Type
	case uint64:
		return UInt64Type
	case float32:
		return FloatType
	case float64:
		return DoubleType
	case bool:
		return BoolType
	case uint8:
		return UCharType
	}
	panic(&TagError{What: "primitive type", Tag: fmt.Sprintf("%T", z)})
}

// FormatPrim renders v, which must hold the Go type of t, in its text form.
func FormatPrim(t Type, v any) string {
	switch t {
	case StringType:
		return v.(string)
	case Int32Type:
		return strconv.FormatInt(int64(v.(int32)), 10)
	case Int64Type:
		return strconv.FormatInt(v.(int64), 10)
	case UInt32Type:
		return strconv.FormatUint(uint64(v.(uint32)), 10)
	case UInt64Type:
		return strconv.FormatUint(v.(uint64), 10)
	case FloatType:
		return strconv.FormatFloat(float64(v.(float32)), 'g', -1, 32)
	case DoubleType:
		return strconv.FormatFloat(v.(float64), 'g', -1, 64)
	case BoolType:
		return strconv.FormatBool(v.(bool))
	case UCharType:
		return strconv.FormatUint(uint64(v.(uint8)), 10)
	}
	panic(&TagError{What: "primitive type", Tag: strconv.Itoa(int(t))})
}

// ParsePrim parses the text form of a t.
func ParsePrim(t Type, s string) (any, error) {
	var (
		res any
		err error
	)
	switch t {
	case StringType:
		return s, nil
	case Int32Type:
		var i int64
		i, err = strconv.ParseInt(s, 10, 32)
		res = int32(i)
	case Int64Type:
		res, err = strconv.ParseInt(s, 10, 64)
	case UInt32Type:
		var u uint64
		u, err = strconv.ParseUint(s, 10, 32)
		res = uint32(u)
	case UInt64Type:
		res, err = strconv.ParseUint(s, 10, 64)
	case FloatType:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		res = float32(f)
	case DoubleType:
		res, err = strconv.ParseFloat(s, 64)
	case BoolType:
		res, err = strconv.ParseBool(s)
	case UCharType:
		var u uint64
		u, err = strconv.ParseUint(s, 10, 8)
		res = uint8(u)
	default:
		panic(&TagError{What: "primitive type", Tag: strconv.Itoa(int(t))})
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a %s", ErrParse, s, t)
	}
	return res, nil
}

// Coerce converts a Go value of any integer, float, string or bool type to
// the Go type of t. Numeric conversions are range checked; integer targets
// reject fractional floats.
func Coerce(t Type, v any) (any, error) {
	switch t {
	case StringType:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case BoolType:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case Int32Type:
		i, err := toInt(v, 32)
		return int32(i), err
	case Int64Type:
		return toInt(v, 64)
	case UInt32Type:
		u, err := toUint(v, 32)
		return uint32(u), err
	case UInt64Type:
		return toUint(v, 64)
	case UCharType:
		u, err := toUint(v, 8)
		return uint8(u), err
	case FloatType:
		f, err := toFloat(v)
		return float32(f), err
	case DoubleType:
		return toFloat(v)
	default:
		panic(&TagError{What: "primitive type", Tag: strconv.Itoa(int(t))})
	}
	return nil, fmt.Errorf("%w: %T is not a %s", ErrShape, v, t)
}

func toInt(v any, bits int) (int64, error) {
	var i int64
	switch x := v.(type) {
	case int:
		i = int64(x)
	case int8:
		i = int64(x)
	case int16:
		i = int64(x)
	case int32:
		i = int64(x)
	case int64:
		i = x
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, overflow(v, "int", bits)
		}
		i = int64(x)
	case uint8:
		i = int64(x)
	case uint16:
		i = int64(x)
	case uint32:
		i = int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return 0, overflow(v, "int", bits)
		}
		i = int64(x)
	case float32:
		return toInt(float64(x), bits)
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrShape, x)
		}
		i = int64(x)
	default:
		return 0, fmt.Errorf("%w: %T is not an integer", ErrShape, v)
	}
	if bits < 64 {
		lim := int64(1) << (bits - 1)
		if i < -lim || i >= lim {
			return 0, overflow(v, "int", bits)
		}
	}
	return i, nil
}

func toUint(v any, bits int) (uint64, error) {
	var u uint64
	switch x := v.(type) {
	case int, int8, int16, int32, int64, float32, float64:
		i, err := toInt(x, 64)
		if err != nil {
			if f, ok := x.(float64); ok && f == math.Trunc(f) && f >= 0 && f < math.MaxUint64 {
				u = uint64(f)
				break
			}
			return 0, err
		}
		if i < 0 {
			return 0, overflow(v, "uint", bits)
		}
		u = uint64(i)
	case uint:
		u = uint64(x)
	case uint8:
		u = uint64(x)
	case uint16:
		u = uint64(x)
	case uint32:
		u = uint64(x)
	case uint64:
		u = x
	default:
		return 0, fmt.Errorf("%w: %T is not an unsigned integer", ErrShape, v)
	}
	if bits < 64 && u >= uint64(1)<<bits {
		return 0, overflow(v, "uint", bits)
	}
	return u, nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	}
	return 0, fmt.Errorf("%w: %T is not a number", ErrShape, v)
}

func overflow(v any, kind string, bits int) error {
	return fmt.Errorf("%w: %v overflows %s%d", ErrShape, v, kind, bits)
}

// equalPrim compares two values of the same primitive type; floats compare
// within their type's epsilon. Equal infinities are equal.
func equalPrim[T Primitive](a, b T) bool {
	if a == b {
		return true
	}
	switch x := any(a).(type) {
	case float32:
		y := any(b).(float32)
		return math.Abs(float64(x)-float64(y)) <= floatEpsilon
	case float64:
		y := any(b).(float64)
		return math.Abs(x-y) <= doubleEpsilon
	}
	return false
}
