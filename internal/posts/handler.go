package posts

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/wordmap/pkg/handlers"
	"github.com/JaimeStill/wordmap/pkg/pagination"
	"github.com/JaimeStill/wordmap/pkg/routes"
)

// Handler provides HTTP handlers for the posts feed.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a posts HTTP handler.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "posts"),
		pagination: pagination,
	}
}

// Routes returns the posts route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Tags:        []string{"Posts"},
		Description: "Posts feed",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/posts/", Name: "posts_list", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "/posts/", Name: "create_post", Handler: h.Create, OpenAPI: Spec.Create},
		},
	}
}

// List handles GET posts/.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create handles POST posts/.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalid, err))
		return
	}

	result, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
