package log

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// ErrInvalidEvent is returned when a decoded record is well-formed CBOR but
// cannot be a translation event.
var ErrInvalidEvent = errors.New("invalid log event")

// Events are written in canonical form so two files holding the same
// translations compare byte for byte.
var (
	eventEncMode cbor.EncMode
	eventDecMode cbor.DecMode
)

func init() {
	var err error

	eventEncMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("nmwire log: event encoder mode: %v", err))
	}

	// Unknown integer keys come from newer writers and are skipped. A record
	// that repeats a key is corrupt.
	eventDecMode, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("nmwire log: event decoder mode: %v", err))
	}
}

// Validate reports whether e could have been produced by a translation.
// The category must be one of Categories and a residual may only carry
// bits that are present in the wire code.
func (e Event) Validate() error {
	if e.Category > CategoryError {
		return fmt.Errorf("%w: category %d", ErrInvalidEvent, e.Category)
	}
	if e.Residual&^e.Wire != 0 {
		return fmt.Errorf("%w: residual 0x%x outside wire 0x%x", ErrInvalidEvent, e.Residual, e.Wire)
	}
	return nil
}

// EncodeEvent encodes an Event to CBOR bytes.
func EncodeEvent(event Event) ([]byte, error) {
	return eventEncMode.Marshal(event)
}

// DecodeEvent decodes and validates a single event record.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := eventDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	if err := event.Validate(); err != nil {
		return Event{}, err
	}
	return event, nil
}

// NewEncoder returns a stream encoder appending events to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return eventEncMode.NewEncoder(w)
}

// NewDecoder returns a stream decoder for a sequence of events. Callers
// check each decoded event with Validate.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return eventDecMode.NewDecoder(r)
}
