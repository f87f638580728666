// Package log records wire-code translations as structured events.
//
// Translators never fail: an unmapped device state silently becomes
// UNKNOWN. The event log is where those silent fallbacks surface. Each
// Event names the table, the raw code, the names it decoded to and whether
// any part of it went unrecognized. It is separate from operational logging
// (slog), which the commands configure on their own.
//
// # Basic Usage
//
//	// During development: events on the console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For later analysis: CBOR event file
//	fl, err := log.NewFileLogger("/var/log/nmwire/gateway.nlog")
//
//	// Both
//	logger = log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
//	dec := props.NewDecoder(props.WithLogger(logger))
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys and the
// .nlog extension. "nmwire log" views, filters, exports and summarizes them.
package log
