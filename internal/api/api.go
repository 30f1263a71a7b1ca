// Package api assembles the JSON API module: domain systems, their routes,
// and the generated OpenAPI document.
package api

import (
	"net/http"

	"github.com/JaimeStill/event-builder/internal/config"
	"github.com/JaimeStill/event-builder/internal/infrastructure"
	"github.com/JaimeStill/event-builder/pkg/module"
	"github.com/JaimeStill/event-builder/pkg/openapi"
)

// NewModule builds the API module mounted at cfg.API.BasePath.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.OpenAPI.ServerURL)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	return module.New(cfg.API.BasePath, mux), nil
}
