package log

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var baseTime = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.nlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func testEvents() []Event {
	return []Event{
		{Timestamp: baseTime, SessionID: "s1", Category: CategoryDecode, Table: "nm.device-state", Object: "/dev/1", Wire: 100, Known: true},
		{Timestamp: baseTime.Add(time.Second), SessionID: "s1", Category: CategoryUnknown, Table: "nm.device-type", Object: "/dev/1", Wire: 6536},
		{Timestamp: baseTime.Add(2 * time.Second), SessionID: "s2", Category: CategoryDecode, Table: "mm.modem-state", Object: "/modem/0", Wire: 11, Known: true},
		{Timestamp: baseTime.Add(3 * time.Second), SessionID: "s2", Category: CategoryEncode, Table: "mm.band", Object: "/modem/0", Wire: 31, Known: true},
		{Timestamp: baseTime.Add(4 * time.Second), SessionID: "s2", Category: CategoryError, Object: "/modem/0", Message: "bad type"},
	}
}

func TestReaderReadsAll(t *testing.T) {
	path := createTestLogFile(t, testEvents())

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 5 {
		t.Errorf("expected 5 events, got %d", len(events))
	}
}

func TestReaderNextReturnsEOF(t *testing.T) {
	path := createTestLogFile(t, testEvents()[:1])

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	if _, err := reader.Next(); err != nil {
		t.Fatalf("first Next failed: %v", err)
	}
	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReaderEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected 0 events, got %d", len(events))
	}
}

func TestReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "nope.nlog"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestFilteredReader(t *testing.T) {
	unknown := CategoryUnknown
	decode := CategoryDecode
	start := baseTime.Add(time.Second)
	end := baseTime.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   []uint32
	}{
		{"none", Filter{}, []uint32{100, 6536, 11, 31, 0}},
		{"session", Filter{SessionID: "s1"}, []uint32{100, 6536}},
		{"category", Filter{Category: &decode}, []uint32{100, 11}},
		{"category unknown", Filter{Category: &unknown}, []uint32{6536}},
		{"table", Filter{Table: "mm.band"}, []uint32{31}},
		{"object", Filter{Object: "/modem/0"}, []uint32{11, 31, 0}},
		{"unknown only", Filter{UnknownOnly: true}, []uint32{6536, 0}},
		{"time range", Filter{TimeStart: &start, TimeEnd: &end}, []uint32{6536, 11}},
		{"combined", Filter{SessionID: "s2", Category: &decode}, []uint32{11}},
	}

	path := createTestLogFile(t, testEvents())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer reader.Close()

			events, err := reader.ReadAll()
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if len(events) != len(tt.want) {
				t.Fatalf("expected %d events, got %d", len(tt.want), len(events))
			}
			for i, w := range tt.want {
				if events[i].Wire != w {
					t.Errorf("event %d: wire %d, want %d", i, events[i].Wire, w)
				}
			}
		})
	}
}

type bytesReader struct {
	*bytes.Reader
}

func (bytesReader) Close() error { return nil }

func TestStreamReader(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, e := range testEvents() {
		if err := enc.Encode(e); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	reader := NewStreamReader(bytesReader{bytes.NewReader(buf.Bytes())}, Filter{Table: "nm.device-type"})
	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 1 || events[0].Wire != 6536 {
		t.Errorf("got %+v", events)
	}
}

func TestReaderTruncatedStream(t *testing.T) {
	data, err := EncodeEvent(testEvents()[0])
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	reader := NewStreamReader(bytesReader{bytes.NewReader(data[:len(data)-2])}, Filter{})
	if _, err := reader.Next(); err == nil || err == io.EOF {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestReaderStopsAtInvalidEvent(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	bad := testEvents()[0]
	bad.Category = Category(7)
	for _, e := range []Event{testEvents()[0], bad, testEvents()[1]} {
		if err := enc.Encode(e); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	reader := NewStreamReader(bytesReader{bytes.NewReader(buf.Bytes())}, Filter{})
	events, err := reader.ReadAll()
	if !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("got %v, want ErrInvalidEvent", err)
	}
	if len(events) != 1 {
		t.Errorf("got %d events before the invalid one, want 1", len(events))
	}
}
