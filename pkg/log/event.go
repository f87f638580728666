package log

import (
	"fmt"
	"strings"
	"time"
)

// Event records one translation of a wire code.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID groups the events of one decoder or CLI run (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"3,keyasint"`

	// Table is the registry name of the table used, e.g. "nm.device-state".
	Table string `cbor:"4,keyasint,omitempty"`

	// Object is the D-Bus object path the value was read from.
	Object string `cbor:"5,keyasint,omitempty"`

	// Property is the "Interface.Property" key of the value.
	Property string `cbor:"6,keyasint,omitempty"`

	// Wire is the raw code.
	Wire uint32 `cbor:"7,keyasint"`

	// Names are the variant names Wire translates to.
	Names []string `cbor:"8,keyasint,omitempty"`

	// Residual holds the bits of a bitmask that no flag recognizes.
	Residual uint32 `cbor:"9,keyasint,omitempty"`

	// Known is false when the code fell back to a sentinel or lost bits.
	Known bool `cbor:"10,keyasint"`

	// Message carries error text for CategoryError events.
	Message string `cbor:"11,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryDecode indicates a wire code translated into variants.
	CategoryDecode Category = 0
	// CategoryUnknown indicates a wire code with no or partial mapping.
	CategoryUnknown Category = 1
	// CategoryEncode indicates variants translated back into a wire code.
	CategoryEncode Category = 2
	// CategoryError indicates a property that could not be decoded.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryDecode:
		return "DECODE"
	case CategoryUnknown:
		return "UNKNOWN"
	case CategoryEncode:
		return "ENCODE"
	case CategoryError:
		return "ERROR"
	default:
		return "INVALID"
	}
}

// ParseCategory parses a category name (case-insensitive).
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "decode":
		return CategoryDecode, nil
	case "unknown":
		return CategoryUnknown, nil
	case "encode":
		return CategoryEncode, nil
	case "error":
		return CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be decode, unknown, encode, or error)", s)
	}
}

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryDecode, CategoryUnknown, CategoryEncode, CategoryError}
}
