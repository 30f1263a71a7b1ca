package events

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("event not found")
	ErrPageNotFound = errors.New("page not found")
	ErrValidation   = errors.New("invalid event")
)

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrPageNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
