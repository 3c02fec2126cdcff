// Package parse parses JSON, YAML and ZPL text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse(data, parse.ParseYAML())
//	if err != nil {
//	    return err
//	}
//
//	// A YAML stream may hold several documents.
//	docs, err := parse.ParseAll(data, parse.ParseYAML())
//
// Objects keep the key order of the source and keep duplicate keys. JSON
// input may carry comments and trailing commas. ZPL leaves are always
// strings; the consumer decides their type.
//
// All errors wrap ErrParse.
//
// # Related Packages
//
//   - github.com/signadot/pack/ir - IR representation
//   - github.com/signadot/pack/encode - Encode IR to text
package parse
