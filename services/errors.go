package services

import (
	"errors"
	"net/http"
)

// Error kinds. Every failure a caller can act on wraps one of these, so
// controllers can map it to a status without inspecting messages.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrDuplicateAction = errors.New("duplicate action")
)

// HTTPStatus maps an error kind to its outward status code. Errors carrying
// no known kind are treated as internal.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrDuplicateAction):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
