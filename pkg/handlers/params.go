package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrMissingParam is returned by Param when name is in neither the query nor the body.
var ErrMissingParam = errors.New("missing parameter")

const maxParamBody = 1 << 20

// Param returns name from the query string, falling back to a field of a
// JSON object body. Non-string JSON values are rendered with fmt.
func Param(r *http.Request, name string) (string, error) {
	if v := r.URL.Query().Get(name); v != "" {
		return v, nil
	}

	if r.Body == nil || r.Body == http.NoBody {
		return "", fmt.Errorf("%w: %s", ErrMissingParam, name)
	}

	var body map[string]any
	if err := json.NewDecoder(io.LimitReader(r.Body, maxParamBody)).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %s", ErrMissingParam, name)
		}
		return "", fmt.Errorf("decode body: %w", err)
	}

	switch v := body[name].(type) {
	case nil:
		return "", fmt.Errorf("%w: %s", ErrMissingParam, name)
	case string:
		if v == "" {
			return "", fmt.Errorf("%w: %s", ErrMissingParam, name)
		}
		return v, nil
	default:
		return fmt.Sprint(v), nil
	}
}
