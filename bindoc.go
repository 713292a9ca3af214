// Package bindoc provides a compact, typed, binary document format for
// embedding rich scalar types, nested collections, timestamps, and
// globally-unique identifiers in IoT, embedded, and message-passing
// contexts.
//
// A document is a Map (ordered key/value) or an Array (ordered sequence)
// whose elements are tagged values: Null, Bool, eight integer widths, two
// float widths, String, Binary, TimeStamp, a 12-byte ID, or a nested
// container. Each element carries a one-byte type tag on the wire, and the
// tag is part of the document's identity: callers choose the narrowest
// numeric type that fits, which keeps encoded documents small on
// constrained transports.
//
// # Basic Usage
//
// Building and encoding a document:
//
//	import "github.com/arloliu/bindoc"
//
//	m := bindoc.NewMap()
//	m.Set("temperature", bindoc.I16(2350))
//	m.Set("humidity", bindoc.U8(65))
//
//	data, err := m.ToBytes()
//
// Decoding and typed extraction:
//
//	m, err := bindoc.MapFromBytes(data)
//	temp, err := m.GetI16("temperature") // 2350
//	hum, err := m.GetU8("humidity")      // 65
//
// Typed getters never coerce: GetU16("temperature") against an I16 element
// fails with errs.ErrTypeMismatch, and an absent key fails with
// errs.ErrNotFound.
//
// Generating identifiers:
//
//	id, err := bindoc.NewID()
//	m.Set("device", id)
//
// # Package Structure
//
// This package wraps the doc and oid packages for the common cases. Use doc
// directly for decode options such as doc.WithMaxDepth, and oid directly to
// construct injectable ID generators.
package bindoc

import (
	"time"

	"github.com/arloliu/bindoc/doc"
	"github.com/arloliu/bindoc/oid"
)

// Re-exported document types. See the doc package for details.
type (
	Value     = doc.Value
	Map       = doc.Map
	Array     = doc.Array
	Null      = doc.Null
	Bool      = doc.Bool
	I8        = doc.I8
	U8        = doc.U8
	I16       = doc.I16
	U16       = doc.U16
	I32       = doc.I32
	U32       = doc.U32
	I64       = doc.I64
	U64       = doc.U64
	F32       = doc.F32
	F64       = doc.F64
	String    = doc.String
	Binary    = doc.Binary
	TimeStamp = doc.TimeStamp
	ID        = oid.ID
)

// NewMap creates an empty document map.
func NewMap() *Map {
	return doc.NewMap()
}

// NewArray creates an empty document array.
func NewArray() *Array {
	return doc.NewArray()
}

// MapFromBytes decodes one map document from the front of data using
// default decode settings.
func MapFromBytes(data []byte) (*Map, error) {
	return doc.MapFromBytes(data)
}

// ArrayFromBytes decodes one array document from the front of data using
// default decode settings.
func ArrayFromBytes(data []byte) (*Array, error) {
	return doc.ArrayFromBytes(data)
}

// NewID produces an identifier from the process-wide default generator.
func NewID() (ID, error) {
	return oid.NewID()
}

// Now returns the current time as a document TimeStamp (seconds since the
// Unix epoch).
func Now() TimeStamp {
	return doc.TimeStampOf(time.Now())
}
