package log

import (
	"sync"
	"testing"
	"time"
)

type mockLogger struct {
	mu     sync.Mutex
	events []Event
}

func (m *mockLogger) Log(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *mockLogger) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events...)
}

func TestMultiLoggerFansOut(t *testing.T) {
	a := &mockLogger{}
	b := &mockLogger{}
	multi := NewMultiLogger(a, b)

	event := Event{Timestamp: time.Now(), Table: "mm.band", Wire: 31}
	multi.Log(event)

	for i, m := range []*mockLogger{a, b} {
		got := m.Events()
		if len(got) != 1 {
			t.Fatalf("logger %d: expected 1 event, got %d", i, len(got))
		}
		if got[0].Table != "mm.band" || got[0].Wire != 31 {
			t.Errorf("logger %d: got %+v", i, got[0])
		}
	}
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	m := &mockLogger{}
	multi := NewMultiLogger(nil, m, nil)

	multi.Log(Event{Timestamp: time.Now()})

	if len(m.Events()) != 1 {
		t.Errorf("expected 1 event, got %d", len(m.Events()))
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	NewMultiLogger().Log(Event{Timestamp: time.Now()})
}
