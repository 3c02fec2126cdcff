// Package pack maps explicitly declared data structures to and from several
// wire formats through one traversal.
//
// # Attributes
//
// A schema is a tree of attributes. Leaves are Value (one primitive with a
// default) and Enum (a closed set of named integers). Containers are List
// and Map of primitives, ObjectList and ObjectMap of objects, and Variant,
// which holds one object chosen from a fixed list of candidate types.
// Objects are user structs that embed Node and declare their fields in
// order:
//
//	type Config struct {
//		pack.Node
//		Value *pack.String
//		Count *pack.Int32
//	}
//
//	func NewConfig(key string) *Config {
//		return &Config{
//			Node:  pack.NewNode(key),
//			Value: pack.NewValue("value", "val"),
//			Count: pack.NewInt32("count"),
//		}
//	}
//
//	func (c *Config) TypeName() string { return "Config" }
//
//	func (c *Config) Fields() []pack.Field {
//		return []pack.Field{
//			{Name: "Value", Attribute: c.Value},
//			{Name: "Count", Attribute: c.Count},
//		}
//	}
//
// HasValue, Clear, Equal and Assign work on any attribute.
//
// # Backends
//
// Encode and Decode walk an attribute tree against a Writer or Reader over
// some backend value type. Backends implement only leaf codecs and
// navigation; the walk is shared. The json, yaml and zconfig packages code
// text through an *ir.Node tree, and the protobuf package codes binary
// messages through dynamic protobuf messages.
//
//	s, err := json.Serialize(cfg, pack.WithDefaults())
//	err = yaml.Deserialize(data, cfg)
//
// # Variants
//
// Text formats carry no discriminator for a Variant. On decode the member
// is chosen by Resolve from the keys present in the source: the candidate
// covering the largest fraction of its declared keys wins, and ties go to
// the later candidate.
//
// # Errors
//
// Malformed input wraps ErrParse, file failures wrap ErrIO, and values that
// do not fit their destination wrap ErrShape; errors from the walk are
// *PathError values naming the failing field. A primitive Type or attribute
// Kind outside its closed set panics with *TagError.
//
// # Related Packages
//
//   - github.com/signadot/pack/json - JSON text
//   - github.com/signadot/pack/yaml - YAML text
//   - github.com/signadot/pack/zconfig - ZPL config trees
//   - github.com/signadot/pack/protobuf - protobuf binary messages
package pack
