package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementType_String(t *testing.T) {
	cases := map[ElementType]string{
		TypeBool:      "Bool",
		TypeNull:      "Null",
		TypeF32:       "F32",
		TypeF64:       "F64",
		TypeI32:       "I32",
		TypeI64:       "I64",
		TypeU32:       "U32",
		TypeU64:       "U64",
		TypeI8:        "I8",
		TypeU8:        "U8",
		TypeI16:       "I16",
		TypeU16:       "U16",
		TypeString:    "String",
		TypeBinary:    "Binary",
		TypeArray:     "Array",
		TypeMap:       "Map",
		TypeTimeStamp: "TimeStamp",
		TypeID:        "ID",
	}

	for et, name := range cases {
		assert.Equal(t, name, et.String())
	}

	assert.Equal(t, "Unknown", ElementType(0xFF).String())
}

func TestElementTypeFromByte_KnownTags(t *testing.T) {
	known := []ElementType{
		TypeBool, TypeNull,
		TypeF32, TypeF64,
		TypeI32, TypeI64, TypeU32, TypeU64,
		TypeI8, TypeU8, TypeI16, TypeU16,
		TypeString, TypeBinary,
		TypeArray, TypeMap,
		TypeTimeStamp, TypeID,
	}

	for _, et := range known {
		got, ok := ElementTypeFromByte(byte(et))
		require.True(t, ok, "tag 0x%02X should be recognized", byte(et))
		require.Equal(t, et, got)
	}
}

func TestElementTypeFromByte_RejectsUnknown(t *testing.T) {
	known := make(map[byte]bool)
	for _, et := range []ElementType{
		TypeBool, TypeNull, TypeF32, TypeF64, TypeI32, TypeI64, TypeU32,
		TypeU64, TypeI8, TypeU8, TypeI16, TypeU16, TypeString, TypeBinary,
		TypeArray, TypeMap, TypeTimeStamp, TypeID,
	} {
		known[byte(et)] = true
	}

	// The set is closed: every byte outside it must be rejected, including
	// the terminator.
	for b := 0; b < 256; b++ {
		if known[byte(b)] {
			continue
		}
		_, ok := ElementTypeFromByte(byte(b))
		assert.False(t, ok, "tag 0x%02X should be rejected", b)
	}
}
