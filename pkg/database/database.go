// Package database manages the PostgreSQL connection pool and schema
// migrations for the service.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/JaimeStill/event-builder/pkg/lifecycle"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// System provides access to the database connection and registers its
// startup and shutdown with the lifecycle coordinator.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	conn        *sql.DB
	dsn         string
	connTimeout time.Duration
	migrate     bool
	migrations  fs.FS
	logger      *slog.Logger
}

// New opens a pgx-backed connection pool. No connection is attempted until Start.
// migrations may be nil, in which case no schema changes are applied.
func New(cfg *Config, migrations fs.FS, logger *slog.Logger) (System, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:        conn,
		dsn:         cfg.DSN,
		connTimeout: cfg.ConnTimeoutDuration(),
		migrate:     cfg.MigrateOnStart() && migrations != nil,
		migrations:  migrations,
		logger:      logger.With("system", "database"),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

// Start verifies connectivity and applies pending migrations before the
// HTTP server accepts traffic. The pool is closed once shutdown begins.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database system")

	ctx, cancel := context.WithTimeout(lc.Context(), d.connTimeout)
	defer cancel()

	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	d.logger.Info("database connection established")

	if d.migrate {
		version, err := Migrate(d.dsn, d.migrations)
		if err != nil {
			return err
		}
		d.logger.Info("database schema ready", "version", version)
	}

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing database connection")

		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}
