package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	ZConfigFormat
	ProtobufFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":        JSONFormat,
		"json":     JSONFormat,
		"y":        YAMLFormat,
		"yaml":     YAMLFormat,
		"yml":      YAMLFormat,
		"z":        ZConfigFormat,
		"zpl":      ZConfigFormat,
		"zconfig":  ZConfigFormat,
		"p":        ProtobufFormat,
		"pb":       ProtobufFormat,
		"protobuf": ProtobufFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case ZConfigFormat:
		return []byte("zconfig"), nil
	case ProtobufFormat:
		return []byte("protobuf"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsYAML() bool { return f == YAMLFormat }
func (f Format) IsZConfig() bool { return f == ZConfigFormat }

// IsText reports whether documents in f are human readable text.
func (f Format) IsText() bool { return f != ProtobufFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case ZConfigFormat:
		return ".zpl"
	case ProtobufFormat:
		return ".pb"
	default:
		return ""
	}
}

// FromSuffix returns the format whose Suffix is ext. ".yml" and ".cfg"
// are accepted as well.
func FromSuffix(ext string) (Format, error) {
	switch ext {
	case ".yml":
		return YAMLFormat, nil
	case ".cfg":
		return ZConfigFormat, nil
	}
	for _, f := range AllFormats() {
		if f.Suffix() == ext {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: no format for suffix %q", ErrBadFormat, ext)
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat, ZConfigFormat, ProtobufFormat}
}
