// Package encoding implements the low-level wire codecs of the bindoc
// format: fixed-width scalar fields and length-prefixed variable fields.
//
// All functions operate on plain byte slices. Append-style encoders extend
// the destination slice and return it; Read-style decoders consume from the
// front of the source slice and fail with errs.ErrTruncated when fewer bytes
// remain than the declared width requires. No numeric range checks are
// performed beyond the width itself: the element type is the range contract.
package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/bindoc/endian"
	"github.com/arloliu/bindoc/errs"
)

// Fixed scalar widths in bytes, excluding the type tag.
const (
	SizeBool = 1
	SizeI8   = 1
	SizeU8   = 1
	SizeI16  = 2
	SizeU16  = 2
	SizeI32  = 4
	SizeU32  = 4
	SizeI64  = 8
	SizeU64  = 8
	SizeF32  = 4
	SizeF64  = 8
)

// AppendBool appends a boolean as a single 0x00/0x01 byte.
func AppendBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 0x01)
	}

	return append(buf, 0x00)
}

// AppendUint8 appends an unsigned 8-bit value.
func AppendUint8(buf []byte, v uint8) []byte {
	return append(buf, v)
}

// AppendInt8 appends a signed 8-bit value in two's complement.
func AppendInt8(buf []byte, v int8) []byte {
	return append(buf, byte(v))
}

// AppendUint16 appends an unsigned 16-bit value using the given engine.
func AppendUint16(buf []byte, v uint16, engine endian.EndianEngine) []byte {
	return engine.AppendUint16(buf, v)
}

// AppendInt16 appends a signed 16-bit value in two's complement.
func AppendInt16(buf []byte, v int16, engine endian.EndianEngine) []byte {
	return engine.AppendUint16(buf, uint16(v))
}

// AppendUint32 appends an unsigned 32-bit value using the given engine.
func AppendUint32(buf []byte, v uint32, engine endian.EndianEngine) []byte {
	return engine.AppendUint32(buf, v)
}

// AppendInt32 appends a signed 32-bit value in two's complement.
func AppendInt32(buf []byte, v int32, engine endian.EndianEngine) []byte {
	return engine.AppendUint32(buf, uint32(v))
}

// AppendUint64 appends an unsigned 64-bit value using the given engine.
func AppendUint64(buf []byte, v uint64, engine endian.EndianEngine) []byte {
	return engine.AppendUint64(buf, v)
}

// AppendInt64 appends a signed 64-bit value in two's complement.
func AppendInt64(buf []byte, v int64, engine endian.EndianEngine) []byte {
	return engine.AppendUint64(buf, uint64(v))
}

// AppendFloat32 appends an IEEE-754 binary32 value.
func AppendFloat32(buf []byte, v float32, engine endian.EndianEngine) []byte {
	return engine.AppendUint32(buf, math.Float32bits(v))
}

// AppendFloat64 appends an IEEE-754 binary64 value.
func AppendFloat64(buf []byte, v float64, engine endian.EndianEngine) []byte {
	return engine.AppendUint64(buf, math.Float64bits(v))
}

// ReadBool reads a boolean from the front of data.
// Any nonzero payload byte decodes as true.
func ReadBool(data []byte) (bool, error) {
	if len(data) < SizeBool {
		return false, fmt.Errorf("%w: need %d bytes for Bool, have %d", errs.ErrTruncated, SizeBool, len(data))
	}

	return data[0] != 0x00, nil
}

// ReadUint8 reads an unsigned 8-bit value from the front of data.
func ReadUint8(data []byte) (uint8, error) {
	if len(data) < SizeU8 {
		return 0, fmt.Errorf("%w: need %d bytes for U8, have %d", errs.ErrTruncated, SizeU8, len(data))
	}

	return data[0], nil
}

// ReadInt8 reads a signed 8-bit value from the front of data.
func ReadInt8(data []byte) (int8, error) {
	if len(data) < SizeI8 {
		return 0, fmt.Errorf("%w: need %d bytes for I8, have %d", errs.ErrTruncated, SizeI8, len(data))
	}

	return int8(data[0]), nil
}

// ReadUint16 reads an unsigned 16-bit value from the front of data.
func ReadUint16(data []byte, engine endian.EndianEngine) (uint16, error) {
	if len(data) < SizeU16 {
		return 0, fmt.Errorf("%w: need %d bytes for U16, have %d", errs.ErrTruncated, SizeU16, len(data))
	}

	return engine.Uint16(data), nil
}

// ReadInt16 reads a signed 16-bit value from the front of data.
func ReadInt16(data []byte, engine endian.EndianEngine) (int16, error) {
	v, err := ReadUint16(data, engine)

	return int16(v), err
}

// ReadUint32 reads an unsigned 32-bit value from the front of data.
func ReadUint32(data []byte, engine endian.EndianEngine) (uint32, error) {
	if len(data) < SizeU32 {
		return 0, fmt.Errorf("%w: need %d bytes for U32, have %d", errs.ErrTruncated, SizeU32, len(data))
	}

	return engine.Uint32(data), nil
}

// ReadInt32 reads a signed 32-bit value from the front of data.
func ReadInt32(data []byte, engine endian.EndianEngine) (int32, error) {
	v, err := ReadUint32(data, engine)

	return int32(v), err
}

// ReadUint64 reads an unsigned 64-bit value from the front of data.
func ReadUint64(data []byte, engine endian.EndianEngine) (uint64, error) {
	if len(data) < SizeU64 {
		return 0, fmt.Errorf("%w: need %d bytes for U64, have %d", errs.ErrTruncated, SizeU64, len(data))
	}

	return engine.Uint64(data), nil
}

// ReadInt64 reads a signed 64-bit value from the front of data.
func ReadInt64(data []byte, engine endian.EndianEngine) (int64, error) {
	v, err := ReadUint64(data, engine)

	return int64(v), err
}

// ReadFloat32 reads an IEEE-754 binary32 value from the front of data.
func ReadFloat32(data []byte, engine endian.EndianEngine) (float32, error) {
	v, err := ReadUint32(data, engine)

	return math.Float32frombits(v), err
}

// ReadFloat64 reads an IEEE-754 binary64 value from the front of data.
func ReadFloat64(data []byte, engine endian.EndianEngine) (float64, error) {
	v, err := ReadUint64(data, engine)

	return math.Float64frombits(v), err
}
