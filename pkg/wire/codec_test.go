package wire

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func modemSnapshot() *Snapshot {
	s := NewSnapshot("/org/freedesktop/ModemManager1/Modem/0")
	s.Set("org.freedesktop.ModemManager1.Modem", "State", int32(-1))
	s.Set("org.freedesktop.ModemManager1.Modem", "AccessTechnologies", uint32(0x4000))
	s.Set("org.freedesktop.ModemManager1.Modem", "CurrentBands", []uint32{31, 33})
	s.Set("org.freedesktop.ModemManager1.Modem", "CurrentModes", []any{uint32(14), uint32(8)})
	s.Set("org.freedesktop.ModemManager1.Modem", "Model", "EG25-G")
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	original := modemSnapshot()

	data, err := EncodeSnapshot(original)
	if err != nil {
		t.Fatalf("EncodeSnapshot failed: %v", err)
	}

	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot failed: %v", err)
	}

	if decoded.ID != original.ID {
		t.Errorf("ID: got %q, want %q", decoded.ID, original.ID)
	}
	if decoded.Object != original.Object {
		t.Errorf("Object: got %q, want %q", decoded.Object, original.Object)
	}
	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
	}

	// CBOR decodes positive integers as uint64 and negative ones as int64.
	if v, _ := decoded.Get("org.freedesktop.ModemManager1.Modem", "State"); v != int64(-1) {
		t.Errorf("State: got %v (%T), want -1", v, v)
	}
	if v, _ := decoded.Get("org.freedesktop.ModemManager1.Modem", "AccessTechnologies"); v != uint64(0x4000) {
		t.Errorf("AccessTechnologies: got %v (%T)", v, v)
	}
	if v, _ := decoded.Get("org.freedesktop.ModemManager1.Modem", "Model"); v != "EG25-G" {
		t.Errorf("Model: got %v", v)
	}
	bands, _ := decoded.Get("org.freedesktop.ModemManager1.Modem", "CurrentBands")
	if l, ok := bands.([]any); !ok || len(l) != 2 || l[0] != uint64(31) {
		t.Errorf("CurrentBands: got %v (%T)", bands, bands)
	}
}

func TestSnapshotValidation(t *testing.T) {
	tests := []struct {
		name    string
		s       Snapshot
		wantErr bool
	}{
		{name: "valid", s: Snapshot{ID: "a", Object: "/o"}},
		{name: "missing id", s: Snapshot{Object: "/o"}, wantErr: true},
		{name: "missing object", s: Snapshot{ID: "a"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSnapshot) {
				t.Errorf("expected ErrInvalidSnapshot, got %v", err)
			}
			if _, err := EncodeSnapshot(&tt.s); (err != nil) != tt.wantErr {
				t.Errorf("EncodeSnapshot() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeSnapshotRejectsMissingObject(t *testing.T) {
	data, err := Marshal(map[int]any{1: "id-only"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if _, err := DecodeSnapshot(data); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("expected ErrInvalidSnapshot, got %v", err)
	}
}

func TestUnknownFieldsIgnored(t *testing.T) {
	msg := map[int]any{
		1:  "3f1c",
		3:  "/org/freedesktop/NetworkManager/Devices/2",
		4:  map[string]map[string]any{"org.freedesktop.NetworkManager.Device": {"State": uint32(100)}},
		99: "future field",
	}

	data, err := Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot should succeed with unknown fields: %v", err)
	}
	if v, ok := decoded.Get("org.freedesktop.NetworkManager.Device", "State"); !ok || v != uint64(100) {
		t.Errorf("State: got %v, %v", v, ok)
	}
}

func TestSnapshotUsesIntegerKeys(t *testing.T) {
	data, err := EncodeSnapshot(modemSnapshot())
	if err != nil {
		t.Fatalf("EncodeSnapshot failed: %v", err)
	}

	var raw map[uint64]any
	if err := Unmarshal(data, &raw); err != nil {
		t.Fatalf("failed to decode as map: %v", err)
	}
	for _, key := range []uint64{1, 2, 3, 4} {
		if _, ok := raw[key]; !ok {
			t.Errorf("expected integer key %d", key)
		}
	}
}

func TestCanonicalEncoding(t *testing.T) {
	a := &Snapshot{ID: "x", Object: "/o", Timestamp: time.Unix(1700000000, 0).UTC()}
	b := &Snapshot{ID: "x", Object: "/o", Timestamp: a.Timestamp}

	// Insert in different orders; canonical map sorting makes the bytes equal.
	a.Set("i1", "A", uint32(1))
	a.Set("i2", "B", uint32(2))
	b.Set("i2", "B", uint32(2))
	b.Set("i1", "A", uint32(1))

	da, _ := EncodeSnapshot(a)
	db, _ := EncodeSnapshot(b)
	if !bytes.Equal(da, db) {
		t.Error("encodings differ")
	}
	if !Equal(a, b) {
		t.Error("Equal(a, b) should be true")
	}
	b.Set("i1", "A", uint32(3))
	if Equal(a, b) {
		t.Error("Equal(a, b) should be false after change")
	}
}

func TestSnapshotStream(t *testing.T) {
	first := modemSnapshot()
	second := NewSnapshot("/org/freedesktop/NetworkManager/Devices/1")
	second.Set("org.freedesktop.NetworkManager.Device", "Interface", "eth0")

	var buf bytes.Buffer
	if err := WriteSnapshots(&buf, first, second); err != nil {
		t.Fatalf("WriteSnapshots failed: %v", err)
	}

	got, err := ReadSnapshots(&buf)
	if err != nil {
		t.Fatalf("ReadSnapshots failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(got))
	}
	if got[0].ID != first.ID || got[1].Object != second.Object {
		t.Errorf("unexpected snapshots: %s %s", got[0].ID, got[1].Object)
	}
}

func TestReadSnapshotsEmpty(t *testing.T) {
	got, err := ReadSnapshots(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("ReadSnapshots failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no snapshots, got %d", len(got))
	}
}

func TestWriteSnapshotsRejectsInvalid(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSnapshots(&buf, &Snapshot{ID: "a"})
	if !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("expected ErrInvalidSnapshot, got %v", err)
	}
}

func TestSnapshotAccessors(t *testing.T) {
	s := FromProperties("/o", map[string]map[string]any{
		"b.Iface": {"X": 1},
		"a.Iface": {"Y": 2},
	})

	if s.ObjectPath() != "/o" {
		t.Errorf("ObjectPath: got %q", s.ObjectPath())
	}
	if got := s.Interfaces(); len(got) != 2 || got[0] != "a.Iface" || got[1] != "b.Iface" {
		t.Errorf("Interfaces: got %v", got)
	}
	if !s.Has("a.Iface") || s.Has("c.Iface") {
		t.Error("Has returned wrong result")
	}
	if _, ok := s.Get("c.Iface", "X"); ok {
		t.Error("Get on missing interface should fail")
	}

	var zero Snapshot
	zero.Set("i", "p", true)
	if v, ok := zero.Get("i", "p"); !ok || v != true {
		t.Error("Set on zero snapshot failed")
	}
}
