package logging_test

import (
	"testing"

	"github.com/JaimeStill/event-builder/pkg/logging"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &logging.Config{}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want info", cfg.Level)
	}

	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_FORMAT", "json")
	t.Setenv("TEST_LOG_SOURCE", "true")

	cfg := &logging.Config{}
	err := cfg.Finalize(&logging.Env{
		Level:     "TEST_LOG_LEVEL",
		Format:    "TEST_LOG_FORMAT",
		AddSource: "TEST_LOG_SOURCE",
	})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug || cfg.Format != logging.FormatJSON || !cfg.AddSource {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  logging.Config
	}{
		{"level", logging.Config{Level: "verbose"}},
		{"format", logging.Config{Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("Finalize() expected validation error")
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}

	cfg.Merge(&logging.Config{Format: logging.FormatJSON})

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want info", cfg.Level)
	}

	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
}
