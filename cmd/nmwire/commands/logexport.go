package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nmwire/nmwire-go/pkg/log"
)

// Export formats.
const (
	ExportJSONL = "jsonl"
	ExportCSV   = "csv"
)

// RunExport exports the log file to the specified format. An empty output
// writes to w.
func RunExport(path, format, output string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case ExportJSONL:
		return exportJSONL(reader, w)
	case ExportCSV:
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

// exportedEvent is the JSON form of an event.
type exportedEvent struct {
	Timestamp string   `json:"timestamp"`
	SessionID string   `json:"sessionId"`
	Category  string   `json:"category"`
	Table     string   `json:"table,omitempty"`
	Object    string   `json:"object,omitempty"`
	Property  string   `json:"property,omitempty"`
	Wire      uint32   `json:"wire"`
	Names     []string `json:"names,omitempty"`
	Known     bool     `json:"known"`
	Residual  uint32   `json:"residual,omitempty"`
	Message   string   `json:"message,omitempty"`
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		out := exportedEvent{
			Timestamp: event.Timestamp.UTC().Format(timeLayout),
			SessionID: event.SessionID,
			Category:  event.Category.String(),
			Table:     event.Table,
			Object:    event.Object,
			Property:  event.Property,
			Wire:      event.Wire,
			Names:     event.Names,
			Known:     event.Known,
			Residual:  event.Residual,
			Message:   event.Message,
		}
		if err := encoder.Encode(out); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "category", "table", "object", "property", "wire", "names", "known", "residual", "message"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		row := []string{
			event.Timestamp.UTC().Format(timeLayout),
			event.SessionID,
			event.Category.String(),
			event.Table,
			event.Object,
			event.Property,
			fmt.Sprintf("0x%08x", event.Wire),
			strings.Join(event.Names, "|"),
			strconv.FormatBool(event.Known),
			fmt.Sprintf("0x%08x", event.Residual),
			event.Message,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
