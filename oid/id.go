// Package oid implements the 12-byte globally-unique identifier embedded in
// bindoc documents and the process-wide generator that produces it.
//
// Identifier layout (a fixed convention of this library; interoperability
// with other 12-byte identifier formats requires explicit agreement):
//
//	+---+---+---+---+---+---+---+---+---+---+---+---+
//	|       timestamp       |    random     | count |
//	+---+---+---+---+---+---+---+---+---+---+---+---+
//	  0   1   2   3   4   5   6   7   8   9   10  11
//
// The timestamp is milliseconds since the Unix epoch truncated to 48 bits,
// big-endian. The random field is a per-process identity fixed at generator
// creation. The count field is a big-endian counter that resets on every
// distinct millisecond tick, so identifiers produced within one tick stay
// unique within a process. Uniqueness across processes is probabilistic via
// the random field; the layout offers no cryptographic unpredictability.
package oid

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/arloliu/bindoc/errs"
	"github.com/arloliu/bindoc/format"
)

// IDSize is the wire width of an identifier in bytes.
const IDSize = 12

// ID is an opaque 12-byte identifier. Uniqueness is guaranteed by
// construction (see Generator), not validated on the wire.
type ID [IDSize]byte

// NilID is the all-zero identifier.
var NilID ID

// IDFromBytes builds an ID from a 12-byte slice.
func IDFromBytes(b []byte) (ID, error) {
	if len(b) != IDSize {
		return NilID, fmt.Errorf("%w: need %d bytes, got %d", errs.ErrInvalidIDFormat, IDSize, len(b))
	}

	var id ID
	copy(id[:], b)

	return id, nil
}

// IDFromHex parses a 24-character hexadecimal string into an ID.
func IDFromHex(s string) (ID, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return NilID, fmt.Errorf("%w: %v", errs.ErrInvalidIDFormat, err)
	}
	if len(b) != IDSize {
		return NilID, fmt.Errorf("%w: hex string decodes to %d bytes, need %d", errs.ErrInvalidIDFormat, len(b), IDSize)
	}

	var id ID
	copy(id[:], b)

	return id, nil
}

// Type returns the element type tag of an identifier, making ID usable as a
// document value.
func (id ID) Type() format.ElementType {
	return format.TypeID
}

// Bytes returns a copy of the identifier's 12 bytes.
func (id ID) Bytes() []byte {
	out := make([]byte, IDSize)
	copy(out, id[:])

	return out
}

// Hex returns the identifier as a 24-character lowercase hex string.
func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return "ID(" + id.Hex() + ")"
}

// Timestamp returns the identifier's embedded creation time in milliseconds
// since the Unix epoch.
func (id ID) Timestamp() uint64 {
	var buf [8]byte
	copy(buf[2:], id[:6])

	return binary.BigEndian.Uint64(buf[:])
}

// Counter returns the identifier's per-tick counter value.
func (id ID) Counter() uint16 {
	return binary.BigEndian.Uint16(id[10:])
}

// IsZero reports whether the identifier is all zeroes.
func (id ID) IsZero() bool {
	return id == NilID
}
