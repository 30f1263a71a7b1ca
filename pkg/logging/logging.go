// Package logging builds the service's structured logger from the [logging]
// config section: a slog text handler for local runs or JSON for log shippers.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates the process logger writing to stdout.
func New(cfg *Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a logger writing to w, which lets tests capture output.
func NewWithWriter(cfg *Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.Level.ToSlogLevel(),
		AddSource: cfg.AddSource,
	}

	if cfg.Format.json() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Level is a slog level name, matched case-insensitively: debug, info, warn
// or error. slog offsets such as "info+2" are accepted as well.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

func (l Level) parse() (slog.Level, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(l)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", l)
	}
	return lv, nil
}

func (l Level) Validate() error {
	_, err := l.parse()
	return err
}

// ToSlogLevel returns the slog level, or slog.LevelInfo when l does not parse.
func (l Level) ToSlogLevel() slog.Level {
	lv, _ := l.parse()
	return lv
}

// Format selects the handler. Matching is case-insensitive.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func (f Format) json() bool {
	return strings.EqualFold(string(f), string(FormatJSON))
}

func (f Format) Validate() error {
	if f.json() || strings.EqualFold(string(f), string(FormatText)) {
		return nil
	}
	return fmt.Errorf("invalid log format: %s (must be text or json)", f)
}
