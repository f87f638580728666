package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nmwire/nmwire-go/pkg/log"
)

const timeLayout = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] CATEGORY table
	ts := event.Timestamp.UTC().Format(timeLayout)
	fmt.Fprintf(w, "%s [session:%s] %-7s %s\n", ts, shortID(event.SessionID), event.Category, event.Table)

	if event.Object != "" {
		fmt.Fprintf(w, "  Object: %s\n", event.Object)
	}
	if event.Property != "" {
		fmt.Fprintf(w, "  Property: %s\n", event.Property)
	}

	switch event.Category {
	case log.CategoryError:
		fmt.Fprintf(w, "  Message: %s\n", event.Message)
	default:
		fmt.Fprintf(w, "  Wire: 0x%08x (%d)\n", event.Wire, event.Wire)
		if len(event.Names) > 0 {
			fmt.Fprintf(w, "  Names: %s\n", strings.Join(event.Names, "|"))
		}
		if event.Residual != 0 {
			fmt.Fprintf(w, "  Residual: 0x%08x\n", event.Residual)
		}
	}

	fmt.Fprintln(w)
}

// shortID returns the first 8 characters of a UUID.
func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// ParseTimeFlag parses an RFC 3339 time given on the command line. An empty
// string yields nil.
func ParseTimeFlag(name, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format: %w", name, err)
	}
	return &t, nil
}

// RunView prints the events of a log file that match filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
