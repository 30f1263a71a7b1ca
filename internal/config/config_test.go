package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/JaimeStill/event-builder/internal/config"
)

func TestLoad_BaseConfig(t *testing.T) {
	t.Setenv("SERVICE_ENV", "")
	t.Chdir("../../")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q, want /api", cfg.API.BasePath)
	}

	if cfg.Storage.BasePath != "/data/uploads" {
		t.Errorf("Storage.BasePath = %q, want /data/uploads", cfg.Storage.BasePath)
	}
}

func TestLoad_WithOverlay(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	base := `shutdown_timeout = "30s"

[server]
port = 8000
`
	overlay := `shutdown_timeout = "60s"

[server]
port = 9090
`
	if err := os.WriteFile(config.BaseConfigFile, []byte(base), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("config.test.toml", []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SERVICE_ENV", "test")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() with overlay failed: %v", err)
	}

	if cfg.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q, want 60s", cfg.ShutdownTimeout)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
}

func TestLoad_MissingBaseFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVICE_ENV", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() without config.toml failed: %v", err)
	}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.WriteFile(config.BaseConfigFile, []byte("[server\nport = "), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := config.Load(); err == nil {
		t.Error("Load() expected parse error")
	}
}

func TestFinalize_Defaults(t *testing.T) {
	cfg := &config.Config{}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeoutDuration())
	}

	if cfg.Server.Addr() != "0.0.0.0:8000" {
		t.Errorf("Addr() = %q", cfg.Server.Addr())
	}

	if cfg.Database.Name() != "eventsdb" {
		t.Errorf("Database.Name() = %q, want eventsdb", cfg.Database.Name())
	}

	if cfg.Storage.BasePath != "/data/uploads" {
		t.Errorf("Storage.BasePath = %q", cfg.Storage.BasePath)
	}

	if !cfg.API.CORS.IsEnabled() || cfg.API.CORS.Origins[0] != "*" {
		t.Errorf("CORS should default to open policy: %+v", cfg.API.CORS)
	}

	if cfg.Tracing.Enabled {
		t.Error("tracing should default to disabled")
	}
}

func TestFinalize_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/events_prod?sslmode=disable")
	t.Setenv("UPLOAD_DIR", "/srv/uploads")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("LOGGING_FORMAT", "json")
	t.Setenv("API_CORS_ORIGINS", "http://localhost:5173")
	t.Setenv("SERVICE_SHUTDOWN_TIMEOUT", "10s")

	cfg := &config.Config{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Database.Name() != "events_prod" {
		t.Errorf("Database.Name() = %q, want events_prod", cfg.Database.Name())
	}

	if cfg.Storage.BasePath != "/srv/uploads" {
		t.Errorf("Storage.BasePath = %q", cfg.Storage.BasePath)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}

	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q", cfg.Logging.Format)
	}

	if len(cfg.API.CORS.Origins) != 1 || cfg.API.CORS.Origins[0] != "http://localhost:5173" {
		t.Errorf("CORS.Origins = %v", cfg.API.CORS.Origins)
	}

	if cfg.ShutdownTimeoutDuration() != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeoutDuration())
	}
}

func TestFinalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"shutdown timeout", config.Config{ShutdownTimeout: "soon"}},
		{"server port", config.Config{Server: config.ServerConfig{Port: 70000}}},
		{"api base path", config.Config{API: config.APIConfig{BasePath: "/api/v1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("Finalize() expected error")
			}
		})
	}
}

func TestMerge(t *testing.T) {
	cfg := &config.Config{
		Server:  config.ServerConfig{Host: "0.0.0.0", Port: 8000},
		Version: "0.1.0",
	}

	cfg.Merge(&config.Config{
		Server:  config.ServerConfig{Port: 9000},
		API:     config.APIConfig{BasePath: "/svc"},
		Version: "0.2.0",
	})

	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9000 {
		t.Errorf("Server = %+v", cfg.Server)
	}

	if cfg.API.BasePath != "/svc" || cfg.Version != "0.2.0" {
		t.Errorf("merge did not apply overlay: %+v", cfg)
	}
}
