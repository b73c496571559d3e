package posts

import (
	"errors"
	"net/http"
)

// Domain errors for post operations.
var (
	ErrNotFound  = errors.New("post not found")
	ErrDuplicate = errors.New("post already exists")
	ErrInvalid   = errors.New("invalid post")
)

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
