package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/docker/go-units"
)

const (
	defaultContentRoot   = "/data/uploads"
	defaultMaxUploadSize = "100MB"
)

// Config holds the upload content root and the request body limit the
// uploads endpoint enforces. MaxUploadSize is a human-readable size such as
// "100MB" or "512KiB".
type Config struct {
	BasePath      string `toml:"base_path"`
	MaxUploadSize string `toml:"max_upload_size"`

	maxUploadBytes int64
}

type Env struct {
	BasePath      string
	MaxUploadSize string
}

// MaxUploadSizeBytes is only meaningful after Finalize.
func (c *Config) MaxUploadSizeBytes() int64 {
	return c.maxUploadBytes
}

// Finalize fills defaults, applies environment overrides, resolves the
// content root to an absolute path, and parses the upload limit.
func (c *Config) Finalize(env *Env) error {
	if c.BasePath == "" {
		c.BasePath = defaultContentRoot
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = defaultMaxUploadSize
	}

	if env != nil {
		overrideFromEnv(&c.BasePath, env.BasePath)
		overrideFromEnv(&c.MaxUploadSize, env.MaxUploadSize)
	}

	root, err := filepath.Abs(c.BasePath)
	if err != nil {
		return fmt.Errorf("resolve base_path %q: %w", c.BasePath, err)
	}
	c.BasePath = root

	size, err := units.FromHumanSize(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive, got %q", c.MaxUploadSize)
	}
	c.maxUploadBytes = size

	return nil
}

// Merge copies the non-empty fields of overlay. The limit is re-parsed by
// the next Finalize.
func (c *Config) Merge(overlay *Config) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
}

func overrideFromEnv(field *string, key string) {
	if key == "" {
		return
	}
	if v := os.Getenv(key); v != "" {
		*field = v
	}
}
