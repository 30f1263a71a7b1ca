package tracing

import (
	"fmt"
	"os"
	"strconv"
)

// Exporter selects where spans are sent.
type Exporter string

const (
	ExporterNone   Exporter = "none"
	ExporterStdout Exporter = "stdout"
)

// Env maps environment variable names for tracing configuration.
type Env struct {
	Enabled     string
	Exporter    string
	ServiceName string
}

// Config controls tracer provider initialization.
type Config struct {
	Enabled     bool     `toml:"enabled"`
	Exporter    Exporter `toml:"exporter"`
	ServiceName string   `toml:"service_name"`
}

// Finalize applies defaults, loads environment overrides, and validates.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay. Enabled is only ever switched on.
func (c *Config) Merge(overlay *Config) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.Exporter != "" {
		c.Exporter = overlay.Exporter
	}
	if overlay.ServiceName != "" {
		c.ServiceName = overlay.ServiceName
	}
}

func (c *Config) loadDefaults() {
	if c.Exporter == "" {
		c.Exporter = ExporterNone
	}
	if c.ServiceName == "" {
		c.ServiceName = "event-builder"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Enabled != "" {
		if v := os.Getenv(env.Enabled); v != "" {
			if enabled, err := strconv.ParseBool(v); err == nil {
				c.Enabled = enabled
			}
		}
	}
	if env.Exporter != "" {
		if v := os.Getenv(env.Exporter); v != "" {
			c.Exporter = Exporter(v)
		}
	}
	if env.ServiceName != "" {
		if v := os.Getenv(env.ServiceName); v != "" {
			c.ServiceName = v
		}
	}
}

func (c *Config) validate() error {
	switch c.Exporter {
	case ExporterNone, ExporterStdout:
		return nil
	default:
		return fmt.Errorf("invalid tracing exporter: %s", c.Exporter)
	}
}
