// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/event-builder/pkg/middleware"
)

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error with the request id and writes a JSON error
// response. Client errors are logged at warn and echo the message. Server
// errors are logged at error level and answer with the status text only.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, err error) {
	logger = logger.With(
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.RequestID(r.Context()),
		"status", status,
	)

	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "error", err)
		RespondJSON(w, status, ErrorResponse{Error: http.StatusText(status)})
		return
	}

	logger.Warn("request rejected", "error", err)
	RespondJSON(w, status, ErrorResponse{Error: err.Error()})
}

// DecodeJSON decodes a single JSON value from r into T.
// Trailing data after the value is rejected.
func DecodeJSON[T any](r io.Reader) (T, error) {
	var v T

	dec := json.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return v, fmt.Errorf("request body required")
		}
		return v, fmt.Errorf("invalid request body: %w", err)
	}

	if dec.More() {
		return v, fmt.Errorf("invalid request body: unexpected data after JSON value")
	}

	return v, nil
}
