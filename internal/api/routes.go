package api

import (
	"net/http"

	"github.com/JaimeStill/event-builder/internal/events"
	"github.com/JaimeStill/event-builder/internal/uploads"
	"github.com/JaimeStill/event-builder/pkg/openapi"
	"github.com/JaimeStill/event-builder/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
) {
	eventsHandler := events.NewHandler(domain.Events, runtime.Logger)
	uploadsHandler := uploads.NewHandler(domain.Uploads, runtime.Logger, runtime.MaxUploadSize)

	routes.Register(
		mux,
		runtime.BasePath,
		spec,
		eventsHandler.Routes(),
		uploadsHandler.Routes(),
	)
}
