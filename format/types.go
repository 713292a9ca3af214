// Package format defines the one-byte element type tags of the bindoc wire
// format and their lookup table.
package format

// ElementType is the one-byte discriminant preceding every encoded value.
type ElementType uint8

const (
	TypeBool      ElementType = 0x01 // TypeBool is a 1-byte boolean (0x00/0x01).
	TypeNull      ElementType = 0x02 // TypeNull has no payload.
	TypeF32       ElementType = 0x11 // TypeF32 is an IEEE-754 binary32, little-endian.
	TypeF64       ElementType = 0x12 // TypeF64 is an IEEE-754 binary64, little-endian.
	TypeI32       ElementType = 0x13 // TypeI32 is a signed 32-bit integer, little-endian.
	TypeI64       ElementType = 0x14 // TypeI64 is a signed 64-bit integer, little-endian.
	TypeU32       ElementType = 0x15 // TypeU32 is an unsigned 32-bit integer, little-endian.
	TypeU64       ElementType = 0x16 // TypeU64 is an unsigned 64-bit integer, little-endian.
	TypeI8        ElementType = 0x17 // TypeI8 is a signed 8-bit integer.
	TypeU8        ElementType = 0x18 // TypeU8 is an unsigned 8-bit integer.
	TypeI16       ElementType = 0x19 // TypeI16 is a signed 16-bit integer, little-endian.
	TypeU16       ElementType = 0x1A // TypeU16 is an unsigned 16-bit integer, little-endian.
	TypeString    ElementType = 0x21 // TypeString is a length-prefixed UTF-8 string.
	TypeBinary    ElementType = 0x22 // TypeBinary is a length-prefixed byte buffer.
	TypeArray     ElementType = 0x31 // TypeArray is a length-framed element sequence.
	TypeMap       ElementType = 0x32 // TypeMap is a length-framed key/value sequence.
	TypeTimeStamp ElementType = 0x41 // TypeTimeStamp is an unsigned 64-bit magnitude, little-endian.
	TypeID        ElementType = 0x42 // TypeID is an opaque 12-byte identifier.
)

// Terminator is the single zero byte closing a container frame's element
// sequence. It is not an element type.
const Terminator byte = 0x00

// String returns the human-readable name of the element type.
func (t ElementType) String() string {
	switch t {
	case TypeBool:
		return "Bool"
	case TypeNull:
		return "Null"
	case TypeF32:
		return "F32"
	case TypeF64:
		return "F64"
	case TypeI32:
		return "I32"
	case TypeI64:
		return "I64"
	case TypeU32:
		return "U32"
	case TypeU64:
		return "U64"
	case TypeI8:
		return "I8"
	case TypeU8:
		return "U8"
	case TypeI16:
		return "I16"
	case TypeU16:
		return "U16"
	case TypeString:
		return "String"
	case TypeBinary:
		return "Binary"
	case TypeArray:
		return "Array"
	case TypeMap:
		return "Map"
	case TypeTimeStamp:
		return "TimeStamp"
	case TypeID:
		return "ID"
	default:
		return "Unknown"
	}
}

// ElementTypeFromByte maps a raw tag byte to its element type.
//
// The element set is closed: decode dispatch must reject any byte this
// function does not recognize rather than defaulting to a variant.
func ElementTypeFromByte(b byte) (ElementType, bool) {
	switch t := ElementType(b); t {
	case TypeBool, TypeNull,
		TypeF32, TypeF64,
		TypeI32, TypeI64, TypeU32, TypeU64,
		TypeI8, TypeU8, TypeI16, TypeU16,
		TypeString, TypeBinary,
		TypeArray, TypeMap,
		TypeTimeStamp, TypeID:
		return t, true
	default:
		return 0, false
	}
}
