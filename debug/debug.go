// Package debug gates diagnostic output on environment variables.
//
// PACK_DEBUG_ENCODE, PACK_DEBUG_DECODE, PACK_DEBUG_VARIANT and
// PACK_DEBUG_PROTO each enable one area; PACK_DEBUG=all enables them all.
package debug

import (
	"os"
	"strconv"
)

const (
	encodeFlag  = "ENCODE"
	decodeFlag  = "DECODE"
	variantFlag = "VARIANT"
	protoFlag   = "PROTO"
)

var flags = map[string]bool{}

func init() {
	all := os.Getenv("PACK_DEBUG") == "all"
	for _, f := range []string{encodeFlag, decodeFlag, variantFlag, protoFlag} {
		flags[f] = all || boolEnv("PACK_DEBUG_"+f)
	}
}

func boolEnv(v string) bool {
	b, _ := strconv.ParseBool(os.Getenv(v))
	return b
}

// Encode traces each attribute visited by pack.Encode.
func Encode() bool { return flags[encodeFlag] }

// Decode traces each attribute visited by pack.Decode.
func Decode() bool { return flags[decodeFlag] }

// Variant logs union resolution.
func Variant() bool { return flags[variantFlag] }

// Proto dumps synthesized protobuf descriptors.
func Proto() bool { return flags[protoFlag] }
