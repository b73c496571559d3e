package words

import (
	"errors"
	"net/http"
)

// Domain errors for word operations.
var (
	ErrNotFound      = errors.New("word not found")
	ErrDuplicate     = errors.New("word already exists for this image")
	ErrInvalid       = errors.New("invalid word")
	ErrImageNotFound = errors.New("image not found")
)

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrImageNotFound) {
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
