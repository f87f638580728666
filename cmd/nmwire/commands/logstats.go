package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/nmwire/nmwire-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Tables           map[string]*TableStats
	Sessions         map[string]*SessionStats
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// TableStats holds statistics for one translation table.
type TableStats struct {
	Events int
	// Unknown counts events per wire value that was not fully recognized.
	Unknown map[uint32]int
}

// SessionStats holds statistics for a single session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Errors    int
}

// CollectStats reads every event of the log file.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Tables:           make(map[string]*TableStats),
		Sessions:         make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		if event.Table != "" && event.Category != log.CategoryError {
			ts, ok := stats.Tables[event.Table]
			if !ok {
				ts = &TableStats{Unknown: make(map[uint32]int)}
				stats.Tables[event.Table] = ts
			}
			ts.Events++
			if !event.Known {
				ts.Unknown[event.Wire]++
			}
		}

		s, ok := stats.Sessions[event.SessionID]
		if !ok {
			s = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Sessions[event.SessionID] = s
		}
		s.Events++
		if event.Timestamp.After(s.LastSeen) {
			s.LastSeen = event.Timestamp
		}
		if event.Category == log.CategoryError {
			s.Errors++
		}
	}

	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Wire Translation Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range log.Categories() {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.Tables) > 0 {
		names := make([]string, 0, len(stats.Tables))
		for name := range stats.Tables {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(w, "Events by Table:")
		for _, name := range names {
			ts := stats.Tables[name]
			fmt.Fprintf(w, "  %-28s %d\n", name+":", ts.Events)
			if len(ts.Unknown) == 0 {
				continue
			}
			wires := make([]uint32, 0, len(ts.Unknown))
			for v := range ts.Unknown {
				wires = append(wires, v)
			}
			sort.Slice(wires, func(i, j int) bool { return wires[i] < wires[j] })
			for _, v := range wires {
				fmt.Fprintf(w, "    unknown 0x%08x x%d\n", v, ts.Unknown[v])
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessionInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessionInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessionInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortID(s.id), s.stats.Events, duration)
			if s.stats.Errors > 0 {
				fmt.Fprintf(w, "           Errors: %d\n", s.stats.Errors)
			}
		}
	}
}
