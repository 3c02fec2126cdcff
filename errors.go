package pack

import (
	"errors"
	"fmt"

	"github.com/signadot/pack/ir"
)

var (
	// ErrParse reports malformed source text or bytes.
	ErrParse = ir.ErrParse
	// ErrIO reports a failure reading or writing a file.
	ErrIO = errors.New("i/o error")
	// ErrKeyNotFound is returned by Map.At for an absent key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrShape reports a value whose shape does not fit its destination.
	ErrShape = errors.New("shape mismatch")
)

// PathError records the field path at which an encode or decode failed.
type PathError struct {
	Op   string // "encode" or "decode"
	Path string // Field path (e.g., "person.address[2].street")
	Err  error
}

func (e *PathError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error at %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Op, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// TagError is raised by panic when a closed tag (a primitive Type or an
// attribute Kind) holds a value outside its declared set. It signals a
// broken data model rather than bad input and is never recovered.
type TagError struct {
	What string
	Tag  string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("pack: unknown %s %s", e.What, e.Tag)
}
