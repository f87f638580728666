// Package codes provides the table primitives used to translate D-Bus wire
// codes into typed enums and flag sets.
//
// NetworkManager and ModemManager publish most of their state as unsigned
// 32-bit integers. Some are plain ordinals (a device state, a band), others
// are bitmasks where every set bit is an independent capability. Both are
// described here as explicit, ordered tables of (wire value, variant, name)
// rows rather than by relying on enum ordinals.
//
// # Ordinal Tables
//
// An OrdinalTable maps a wire value to exactly one variant. Values without a
// row decode to the table's fallback variant:
//
//	states := codes.NewOrdinalTable(StateUnknown,
//	    codes.Entry[State]{Wire: 0, Value: StateUnknown, Name: "UNKNOWN"},
//	    codes.Entry[State]{Wire: 10, Value: StateReady, Name: "READY"},
//	)
//	states.Decode(10)         // StateReady
//	states.Decode(0x12345678) // StateUnknown
//	states.Encode(StateReady) // 10
//	states.Parse("READY")     // StateReady
//
// # Bitmask Tables
//
// A BitmaskTable decomposes a mask into the set of flags whose bits are set.
// Bits without a row are dropped. An empty result decodes to the singleton
// set holding the table's NONE variant, and a mask equal to the table's
// reserved ANY pattern decodes to the singleton set holding ANY:
//
//	techs.Decode(0x3)        // {POTS, GSM}
//	techs.Decode(0)          // {UNKNOWN}
//	techs.Decode(0xFFFFFFFF) // {ANY}
//	techs.Encode(codes.NewSet(POTS, GSM)) // 0x3
//
// # Totality
//
// Decoding never fails. Every uint32 and every string maps to some variant,
// so a newer daemon that reports a code this package does not know about
// degrades to a sentinel instead of breaking the caller. The only errors in
// this package come from EncodeNames, which parses user-supplied names.
//
// Tables are immutable after construction and safe for concurrent use.
package codes
