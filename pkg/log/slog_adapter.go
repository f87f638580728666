package log

import (
	"context"
	"log/slog"
	"strings"
)

// SlogAdapter writes events to an slog.Logger. Decode and encode events go
// out at Debug, unknown codes at Warn and errors at Error.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", shortID(event.SessionID)),
		slog.String("category", event.Category.String()),
		slog.String("table", event.Table),
		slog.Uint64("wire", uint64(event.Wire)),
	}
	if event.Object != "" {
		attrs = append(attrs, slog.String("object", event.Object))
	}
	if event.Property != "" {
		attrs = append(attrs, slog.String("property", event.Property))
	}
	if len(event.Names) > 0 {
		attrs = append(attrs, slog.String("names", strings.Join(event.Names, "|")))
	}
	if event.Residual != 0 {
		attrs = append(attrs, slog.Uint64("residual", uint64(event.Residual)))
	}
	if event.Message != "" {
		attrs = append(attrs, slog.String("error", event.Message))
	}

	level := slog.LevelDebug
	switch event.Category {
	case CategoryUnknown:
		level = slog.LevelWarn
	case CategoryError:
		level = slog.LevelError
	}
	a.logger.LogAttrs(context.Background(), level, "translation", attrs...)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

var _ Logger = (*SlogAdapter)(nil)
