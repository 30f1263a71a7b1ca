package api

import (
	"github.com/JaimeStill/event-builder/internal/config"
	"github.com/JaimeStill/event-builder/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	BasePath      string
	MaxUploadSize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		BasePath:      cfg.API.BasePath,
		MaxUploadSize: cfg.Storage.MaxUploadSizeBytes(),
	}
}
