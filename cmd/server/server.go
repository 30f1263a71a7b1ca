package main

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/JaimeStill/event-builder/internal/config"
	"github.com/JaimeStill/event-builder/internal/infrastructure"
	"github.com/JaimeStill/event-builder/pkg/tracing"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	tracing *tracing.Config
	version string
	http    *httpServer
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(cfg, infra)
	modules.Mount(router)

	handler := otelhttp.NewHandler(router, cfg.Tracing.ServiceName)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"database", cfg.Database.Name(),
		"uploads", cfg.Storage.BasePath,
	)

	return &Server{
		infra:   infra,
		tracing: &cfg.Tracing,
		version: cfg.Version,
		http:    newHTTPServer(&cfg.Server, handler, infra.Logger),
	}, nil
}

// Start begins all subsystems and returns once the HTTP listener is running.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	shutdownTracing, err := tracing.Init(s.infra.Lifecycle.Context(), s.tracing, s.version)
	if err != nil {
		return fmt.Errorf("tracing start failed: %w", err)
	}
	s.infra.Lifecycle.OnShutdown(func() {
		<-s.infra.Lifecycle.Context().Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			s.infra.Logger.Error("tracing shutdown failed", "error", err)
		}
	})

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	s.infra.Lifecycle.MarkReady()
	s.infra.Logger.Info("all subsystems ready")

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
