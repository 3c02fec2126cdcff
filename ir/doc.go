// Package ir provides the tree value shared by the text formats.
//
// # Node Structure
//
// A Node is a recursive tagged union; the Type field says which other
// fields are meaningful:
//
//   - NullType: no value
//   - BoolType: Bool
//   - NumberType: Int64 for integers, Float64 for floats, Number as text
//     for values neither can hold (large unsigned integers)
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields and Values, where Fields[i] is the string key of
//     Values[i]
//
// Objects keep their keys in source order and may repeat a key. Get
// returns the first match.
//
// Each node records its Parent and its position in it, so Path reports a
// location such as $.servers[2].name and GetPath resolves one.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "count", Val: ir.FromInt(2)},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromBool(true)})
//
// # Related Packages
//
//   - github.com/signadot/pack/parse - Parses text into IR nodes
//   - github.com/signadot/pack/encode - Encodes IR nodes to text
package ir
