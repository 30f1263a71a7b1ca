package openapi

import "os"

// ConfigEnv maps environment variable names for document metadata.
type ConfigEnv struct {
	Title       string
	Description string
	ServerURL   string
}

// Config holds metadata rendered into the info and servers sections.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	ServerURL   string `toml:"server_url"`
}

// Finalize applies defaults and environment overrides.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge applies non-empty values from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.ServerURL != "" {
		c.ServerURL = overlay.ServerURL
	}
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "Event Builder API"
	}
	if c.Description == "" {
		c.Description = "Event documents composed of ordered pages, plus an upload store for the media they reference."
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env.Title != "" {
		if v := os.Getenv(env.Title); v != "" {
			c.Title = v
		}
	}
	if env.Description != "" {
		if v := os.Getenv(env.Description); v != "" {
			c.Description = v
		}
	}
	if env.ServerURL != "" {
		if v := os.Getenv(env.ServerURL); v != "" {
			c.ServerURL = v
		}
	}
}
