// Package commands implements the nmwire CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nmwire/nmwire-go/pkg/log"
)

// Config holds the defaults read from the configuration file. Command-line
// flags override them.
type Config struct {
	// Format is the output format: text, json or yaml.
	Format string `yaml:"format"`

	// LogFile, when set, receives translation events as a CBOR stream.
	LogFile string `yaml:"log_file"`

	// LogLevel is the slog level for console output.
	LogLevel string `yaml:"log_level"`

	// Prompt is the shell prompt.
	Prompt string `yaml:"prompt"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Format:   FormatText,
		LogLevel: "warn",
		Prompt:   "nmwire> ",
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults. An
// empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the format and log level.
func (c Config) Validate() error {
	if _, err := ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalidFormat is returned for unsupported output formats.
var ErrInvalidFormat = errors.New("invalid format")

// ParseFormat validates an output format name (case-insensitive).
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %s (must be text, json, or yaml)", ErrInvalidFormat, s)
}

// ParseLevel parses a log level name (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s)
	}
}

// NewLogger builds the event logger for cfg: a SlogAdapter writing text to
// stderr, plus a FileLogger when LogFile is set. The returned function
// closes the file.
func NewLogger(cfg Config, stderr io.Writer) (log.Logger, func() error, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	console := log.NewSlogAdapter(slog.New(handler))

	if cfg.LogFile == "" {
		return console, func() error { return nil }, nil
	}

	file, err := log.NewFileLogger(cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return log.NewMultiLogger(console, file), file.Close, nil
}
