package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/JaimeStill/event-builder/pkg/handlers"
	"github.com/JaimeStill/event-builder/pkg/routes"
)

// FormField is the multipart field carrying the file.
const FormField = "file"

// multipartOverhead allows for boundaries and part headers around the file.
const multipartOverhead = 1 << 20

// URLResponse is the body returned after a successful upload.
type URLResponse struct {
	URL string `json:"url"`
}

// Handler exposes System over HTTP.
type Handler struct {
	sys         System
	logger      *slog.Logger
	maxUpload   int64
	memoryLimit int64
}

func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "uploads"),
		maxUpload:   maxUploadSize,
		memoryLimit: min(maxUploadSize, 32<<20),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/uploads",
		Tags:        []string{"Uploads"},
		Description: "Binary file upload and retrieval",
		Schemas:     Spec.Schemas(),
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Upload, OpenAPI: Spec.Upload},
			{Method: "GET", Pattern: "/{name}", Handler: h.Serve, OpenAPI: Spec.Serve},
		},
	}
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartOverhead)

	if err := r.ParseMultipartForm(h.memoryLimit); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handlers.RespondError(w, r, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
			return
		}
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidFile, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(FormField)
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, fmt.Errorf("%w: field %q required", ErrInvalidFile, FormField))
		return
	}
	defer file.Close()

	if header.Size > h.maxUpload {
		handlers.RespondError(w, r, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidFile, err))
		return
	}

	result, err := h.sys.Save(r.Context(), header.Filename, data)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, URLResponse{URL: result.URL})
}

func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	f, err := h.sys.Load(r.Context(), r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	http.ServeContent(w, r, f.Name, time.Time{}, bytes.NewReader(f.Data))
}
