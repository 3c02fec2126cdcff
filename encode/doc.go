// Package encode renders IR nodes as JSON, YAML or ZPL text.
//
// # Usage
//
//	err := encode.Encode(node, os.Stdout,
//	    encode.EncodeFormat(format.YAMLFormat),
//	    encode.EncodePretty(true))
//
// JSON is compact unless EncodePretty is given, in which case it is laid
// out by hujson with tab indentation. YAML is always block style. ZPL
// quotes every value. EncodeColors adds terminal colors to any format.
//
// Trees a format cannot hold, such as NaN in JSON or a multi-line ZPL
// value, fail with ErrEncode and the path of the offending node.
//
// # Related Packages
//
//   - github.com/signadot/pack/ir - IR representation
//   - github.com/signadot/pack/parse - Parse text to IR
package encode
