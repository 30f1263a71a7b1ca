package events

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/event-builder/pkg/handlers"
	"github.com/JaimeStill/event-builder/pkg/routes"
)

// DeleteResult is the body returned by a delete.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

// Handler exposes System over HTTP.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "events"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/events",
		Tags:        []string{"Events"},
		Description: "Event documents and their pages",
		Schemas:     Spec.Schemas(),
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "", Handler: h.Upsert, OpenAPI: Spec.Upsert},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: Spec.Delete},
			{Method: "GET", Pattern: "/{id}/pages/{pageId}", Handler: h.FindPage, OpenAPI: Spec.FindPage},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	e, err := handlers.DecodeJSON[Event](r.Body)
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Upsert(r.Context(), e)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) FindPage(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.FindPage(r.Context(), r.PathValue("id"), r.PathValue("pageId"))
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.sys.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DeleteResult{Deleted: deleted})
}
