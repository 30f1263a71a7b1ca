// Package infrastructure assembles the process-wide systems every domain
// package depends on: lifecycle coordination, logging, the PostgreSQL pool,
// and upload storage.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/event-builder/internal/config"
	"github.com/JaimeStill/event-builder/migrations"
	"github.com/JaimeStill/event-builder/pkg/database"
	"github.com/JaimeStill/event-builder/pkg/lifecycle"
	"github.com/JaimeStill/event-builder/pkg/logging"
	"github.com/JaimeStill/event-builder/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, migrations.FS, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
	}, nil
}

// Start connects the database, applies migrations, and prepares the upload
// directory, registering shutdown hooks with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
