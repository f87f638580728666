package log

import (
	"errors"
	"testing"
	"time"
)

func TestEventCBORRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC),
		SessionID: "0b5c6f4e-8d2a-4c1e-9f37-2a6d8e1b4c90",
		Category:  CategoryUnknown,
		Table:     "mm.access-technology",
		Object:    "/org/freedesktop/ModemManager1/Modem/0",
		Property:  "org.freedesktop.ModemManager1.Modem.AccessTechnologies",
		Wire:      0x80004000,
		Names:     []string{"LTE"},
		Residual:  0x80000000,
		Known:     false,
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
	}
	if decoded.Timestamp.Nanosecond() != original.Timestamp.Nanosecond() {
		t.Errorf("nanoseconds lost: got %d", decoded.Timestamp.Nanosecond())
	}
	if decoded.SessionID != original.SessionID {
		t.Errorf("SessionID: got %q, want %q", decoded.SessionID, original.SessionID)
	}
	if decoded.Category != original.Category {
		t.Errorf("Category: got %v, want %v", decoded.Category, original.Category)
	}
	if decoded.Table != original.Table || decoded.Object != original.Object || decoded.Property != original.Property {
		t.Errorf("identifiers: got %q %q %q", decoded.Table, decoded.Object, decoded.Property)
	}
	if decoded.Wire != original.Wire || decoded.Residual != original.Residual {
		t.Errorf("Wire/Residual: got %#x/%#x", decoded.Wire, decoded.Residual)
	}
	if len(decoded.Names) != 1 || decoded.Names[0] != "LTE" {
		t.Errorf("Names: got %v", decoded.Names)
	}
}

func TestErrorEventCBORRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: time.Now(),
		Category:  CategoryError,
		Property:  "org.freedesktop.NetworkManager.Device.State",
		Message:   "property has type string, want uint32",
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if decoded.Message != original.Message {
		t.Errorf("Message: got %q, want %q", decoded.Message, original.Message)
	}
	if decoded.Names != nil {
		t.Errorf("Names: got %v, want nil", decoded.Names)
	}
}

func TestEventDecodeIgnoresUnknownKeys(t *testing.T) {
	// A later version may add keys; older readers must skip them.
	raw := map[uint64]any{
		2:  "session",
		3:  uint8(CategoryDecode),
		7:  uint32(10),
		99: "future field",
	}
	data, err := eventEncMode.Marshal(raw)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	event, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if event.SessionID != "session" || event.Wire != 10 {
		t.Errorf("got %+v", event)
	}
}

func TestEventCBORUsesIntegerKeys(t *testing.T) {
	event := Event{
		Timestamp: time.Now(),
		SessionID: "session",
		Category:  CategoryDecode,
		Table:     "nm.device-state",
		Wire:      100,
		Known:     true,
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	var rawMap map[uint64]any
	if err := eventDecMode.Unmarshal(data, &rawMap); err != nil {
		t.Fatalf("failed to decode as map: %v", err)
	}

	for _, key := range []uint64{1, 2, 3, 4, 7, 10} {
		if _, ok := rawMap[key]; !ok {
			t.Errorf("expected integer key %d not found in encoded data", key)
		}
	}
	for _, key := range []uint64{5, 6, 8, 9, 11} {
		if _, ok := rawMap[key]; ok {
			t.Errorf("empty field %d should be omitted", key)
		}
	}

	var stringMap map[string]any
	if err := eventDecMode.Unmarshal(data, &stringMap); err == nil && len(stringMap) > 0 {
		t.Error("encoded data contains string keys, expected integer keys only")
	}
}

func TestDecodeEventRejectsInvalidEvents(t *testing.T) {
	tests := []struct {
		name string
		raw  map[uint64]any
	}{
		{"category out of range", map[uint64]any{2: "session", 3: uint8(9), 7: uint32(10)}},
		{"residual outside wire", map[uint64]any{2: "session", 3: uint8(CategoryUnknown), 7: uint32(0x01), 9: uint32(0x10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := eventEncMode.Marshal(tt.raw)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if _, err := DecodeEvent(data); !errors.Is(err, ErrInvalidEvent) {
				t.Errorf("got %v, want ErrInvalidEvent", err)
			}
		})
	}
}

func TestDecodeEventRejectsDuplicateKeys(t *testing.T) {
	// {2: "a", 2: "b"} written by hand; canonical encoders never emit it.
	data := []byte{0xa2, 0x02, 0x61, 'a', 0x02, 0x61, 'b'}
	if _, err := DecodeEvent(data); err == nil {
		t.Error("expected error for repeated key")
	}
}
