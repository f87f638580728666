// Package wire stores captured D-Bus property values as CBOR snapshots.
//
// A snapshot holds every property of one object, keyed by interface and
// property name, so that decoding can be replayed offline. Snapshots use
// CBOR (RFC 8949) with integer keys; files hold a stream of snapshots.
//
// # Value representation
//
// CBOR has no fixed-width integer types. After decoding, unsigned values
// come back as uint64, negative values as int64, byte arrays (ay) as []byte,
// structs and arrays as []any and dictionaries as map[any]any. The property
// decoder accepts all of these.
package wire
