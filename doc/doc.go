// Package doc implements the bindoc document model and its binary codec.
//
// The model is a closed tagged union: every element of a document is a
// Value, one of Null, Bool, eight integer widths (I8..I64, U8..U64), two
// float widths (F32, F64), String, Binary, TimeStamp, the 12-byte oid.ID,
// or a nested *Map / *Array. The element type is part of a document's
// identity: an I32 holding 5 never equals a U8 holding 5, and no getter or
// codec path coerces between widths. Callers pick the narrowest type that
// fits their domain value; that choice is the format's space-efficiency
// contract.
//
// Only Map and Array are valid top-level documents. Encoding produces one
// self-contained, length-framed, terminator-closed byte sequence with no
// external header or magic number; decoding accepts a byte slice that may
// extend past the document's declared frame, which supports embedding a
// document inside a larger stream.
//
// Encode and decode are pure in-memory transformations: no I/O, no
// blocking, safe to call concurrently on independently owned data. Map and
// Array carry no internal locking; concurrent mutation of one instance must
// be prevented by the caller.
package doc
