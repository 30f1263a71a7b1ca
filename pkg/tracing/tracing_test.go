package tracing_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"

	"github.com/JaimeStill/event-builder/pkg/tracing"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &tracing.Config{}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Enabled {
		t.Error("tracing should be disabled by default")
	}

	if cfg.Exporter != tracing.ExporterNone {
		t.Errorf("Exporter = %q, want none", cfg.Exporter)
	}

	if cfg.ServiceName != "event-builder" {
		t.Errorf("ServiceName = %q", cfg.ServiceName)
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_TRACING_ENABLED", "true")
	t.Setenv("TEST_TRACING_EXPORTER", "stdout")

	cfg := &tracing.Config{}
	err := cfg.Finalize(&tracing.Env{
		Enabled:  "TEST_TRACING_ENABLED",
		Exporter: "TEST_TRACING_EXPORTER",
	})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if !cfg.Enabled || cfg.Exporter != tracing.ExporterStdout {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestConfig_Finalize_InvalidExporter(t *testing.T) {
	cfg := &tracing.Config{Exporter: "jaeger"}

	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() expected error for unknown exporter")
	}
}

func TestInit_Disabled(t *testing.T) {
	shutdown, err := tracing.Init(context.Background(), &tracing.Config{}, "test")
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown error = %v", err)
	}
}

func TestInit_StdoutExporter(t *testing.T) {
	var buf bytes.Buffer
	cfg := &tracing.Config{Enabled: true, Exporter: tracing.ExporterStdout, ServiceName: "event-builder-test"}

	shutdown, err := tracing.InitWithWriter(context.Background(), cfg, "test", &buf)
	if err != nil {
		t.Fatalf("InitWithWriter() error = %v", err)
	}

	_, span := otel.Tracer("tracing_test").Start(context.Background(), "unit-span")
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error = %v", err)
	}

	if !strings.Contains(buf.String(), "unit-span") {
		t.Errorf("exported output missing span name: %s", buf.String())
	}
}
