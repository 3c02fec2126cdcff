// Package format names the serialization formats pack supports.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	name := "config" + f.Suffix()
//
// Formats also implement encoding.TextMarshaler so they can be used
// directly as command line flags.
//
// # Related Packages
//
//   - github.com/signadot/pack/parse - Parse text to IR
//   - github.com/signadot/pack/encode - Encode IR to text
package format
