package main

import (
	"net/http"

	"github.com/JaimeStill/event-builder/internal/api"
	"github.com/JaimeStill/event-builder/internal/config"
	"github.com/JaimeStill/event-builder/internal/infrastructure"
	"github.com/JaimeStill/event-builder/pkg/handlers"
	"github.com/JaimeStill/event-builder/pkg/lifecycle"
	"github.com/JaimeStill/event-builder/pkg/middleware"
	"github.com/JaimeStill/event-builder/pkg/module"
	"github.com/JaimeStill/event-builder/web/scalar"
)

type Modules struct {
	API    *module.Module
	Scalar *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	scalarModule, err := scalar.NewModule("/scalar", cfg.API.OpenAPI.Title, cfg.API.BasePath+"/openapi.json")
	if err != nil {
		return nil, err
	}

	return &Modules{
		API:    apiModule,
		Scalar: scalarModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Scalar)
}

type healthResponse struct {
	OK bool `json:"ok"`
}

// buildRouter registers the infrastructure routes and the middleware shared
// by every route: CORS first so preflights never reach a handler, then the
// request logger so it records the full path.
func buildRouter(cfg *config.Config, infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()
	router.Use(middleware.CORS(&cfg.API.CORS))
	router.Use(middleware.Logger(infra.Logger))

	router.HandleNative("GET /health", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, healthResponse{OK: true})
	})

	router.HandleNative("GET /readyz", readiness(infra.Lifecycle))

	return router
}

func readiness(checker lifecycle.ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !checker.Ready() {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, healthResponse{OK: false})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, healthResponse{OK: true})
	}
}
