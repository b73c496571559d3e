package words

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/wordmap/pkg/handlers"
	"github.com/JaimeStill/wordmap/pkg/routes"
)

// Handler provides HTTP handlers for words and their coordinate sets.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a words HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "words"),
	}
}

// Routes returns the words route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Tags:        []string{"Words"},
		Description: "Words and their traced coordinate sets",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/words/", Name: "word_list", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "/add_word/", Name: "add_word", Handler: h.Add, OpenAPI: Spec.Add},
			{Method: "DELETE", Pattern: "/delete_word/", Name: "delete_word", Handler: h.Delete, OpenAPI: Spec.Delete},
			{Method: "DELETE", Pattern: "/delete_coordinate/", Name: "delete_coordinate", Handler: h.ClearCoordinates, OpenAPI: Spec.ClearCoordinates},
			{Method: "POST", Pattern: "/add_coordinates/", Name: "add_coordinates", Handler: h.SaveCoordinates, OpenAPI: Spec.SaveCoordinates},
			{Method: "GET", Pattern: "/coordinates/{word_id}/", Name: "word_coordinates", Handler: h.Coordinates, OpenAPI: Spec.Coordinates},
		},
	}
}

// List handles GET words/.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := FiltersFromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.List(r.Context(), filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Add handles POST add_word/.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var cmd AddCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalid, err))
		return
	}

	result, err := h.sys.Add(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Delete handles DELETE delete_word/ with the id in the query or body.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondNoContent(w)
}

// ClearCoordinates handles DELETE delete_coordinate/ with word_id in the query or body.
func (h *Handler) ClearCoordinates(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "word_id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.ClearCoordinates(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondNoContent(w)
}

// SaveCoordinates handles POST add_coordinates/.
func (h *Handler) SaveCoordinates(w http.ResponseWriter, r *http.Request) {
	var cmd SaveCoordinatesCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalid, err))
		return
	}

	coords, err := cmd.Resolve()
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.SaveCoordinates(r.Context(), cmd.WordID, coords)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Coordinates handles GET coordinates/{word_id}/.
func (h *Handler) Coordinates(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("word_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: word_id: %v", ErrInvalid, err))
		return
	}

	word, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, WordCoordinates{
		WordID:      word.ID,
		Coordinates: word.Coordinates,
	})
}

func idParam(r *http.Request, name string) (uuid.UUID, error) {
	v, err := handlers.Param(r, name)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
	}
	return id, nil
}
