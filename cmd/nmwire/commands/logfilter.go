package commands

import (
	"fmt"
	"io"

	"github.com/nmwire/nmwire-go/pkg/log"
)

// FilterOptions specifies filtering criteria for the log filter command.
type FilterOptions struct {
	Output      string
	Session     string
	Table       string
	Object      string
	Category    string
	TimeStart   string
	TimeEnd     string
	UnknownOnly bool
}

// Filter converts the options into a log.Filter.
func (o FilterOptions) Filter() (log.Filter, error) {
	filter := log.Filter{
		SessionID:   o.Session,
		Table:       o.Table,
		Object:      o.Object,
		UnknownOnly: o.UnknownOnly,
	}

	var err error
	if filter.TimeStart, err = ParseTimeFlag("time-start", o.TimeStart); err != nil {
		return filter, err
	}
	if filter.TimeEnd, err = ParseTimeFlag("time-end", o.TimeEnd); err != nil {
		return filter, err
	}

	if o.Category != "" {
		c, err := log.ParseCategory(o.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}
	return filter, nil
}

// RunFilter filters the log file and writes matching events to a new file.
func RunFilter(path string, opts FilterOptions, w io.Writer) error {
	filter, err := opts.Filter()
	if err != nil {
		return err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		logger.Log(event)
	}

	written, failed := logger.Counts()
	if failed > 0 {
		return fmt.Errorf("failed to write %d of %d events", failed, written+failed)
	}
	fmt.Fprintf(w, "Filtered %d events to %s\n", written, opts.Output)
	return nil
}
