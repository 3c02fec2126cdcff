package pack

import (
	"fmt"
	"os"

	"github.com/creachadair/atomicfile"
)

// ReadFile returns the content of path.
func ReadFile(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return d, nil
}

// WriteFile replaces the content of path with d. The file is written
// atomically: readers see either the old or the new content.
func WriteFile(path string, d []byte) error {
	if err := atomicfile.WriteData(path, d, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
