// Package endian provides byte order utilities for the bindoc wire codec.
//
// It combines the ByteOrder and AppendByteOrder interfaces of the standard
// encoding/binary package into a single EndianEngine interface so codec code
// can both read fixed-width fields and append them without temporary buffers.
//
// The bindoc wire format is little-endian; GetLittleEndianEngine is the
// engine every production code path uses. The big-endian engine exists for
// tests and for the identifier type, whose time and counter fields are
// big-endian by convention.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy this interface, so
// engines are immutable, stateless, and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the byte order of
// every multi-byte field in the bindoc wire format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
