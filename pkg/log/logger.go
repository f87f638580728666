package log

import "github.com/nmwire/nmwire-go/pkg/codes"

// Logger receives translation events.
type Logger interface {
	// Log records an event. Implementations must be safe for concurrent use
	// and must not block for long.
	Log(event Event)
}

// NoopLogger discards all events. It is usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}

type residualer interface {
	Residual(mask uint32) uint32
}

// Translation builds the event for decoding wire with t. The category is
// CategoryUnknown when the code fell back to a sentinel or carried
// unrecognized bits. Timestamp and SessionID are left for the caller.
func Translation(table string, t codes.Table, wire uint32) Event {
	e := Event{
		Category: CategoryDecode,
		Table:    table,
		Wire:     wire,
		Names:    t.Describe(wire),
		Known:    t.Known(wire),
	}
	if r, ok := t.(residualer); ok {
		e.Residual = r.Residual(wire)
	}
	if !e.Known {
		e.Category = CategoryUnknown
	}
	return e
}
