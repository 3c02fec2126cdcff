// Package protobuf serializes attribute trees in the protobuf wire format.
//
// Messages are dynamic: the descriptor of an object is synthesized from
// its field list the first time it is coded, or taken from the object
// itself when it implements Described. A synthesized message
//
//   - numbers fields in declaration order from 1 and records each key as
//     the field's json_name,
//   - codes enums as proto enums whose values are prefixed by the enum
//     name, byte lists as bytes and scalar maps as proto maps,
//   - codes an object map as a repeated key/value message, so keys may
//     repeat,
//   - codes a variant as a oneof with one message member per candidate.
//
// The wire form carries the variant discriminator, so decoding selects
// the candidate that was encoded rather than the closest match.
//
// Setting PACK_DEBUG_PROTO=1 logs each synthesized file descriptor.
package protobuf
