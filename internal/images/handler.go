package images

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/JaimeStill/wordmap/pkg/handlers"
	"github.com/JaimeStill/wordmap/pkg/pagination"
	"github.com/JaimeStill/wordmap/pkg/routes"
)

// multipartOverhead is the slack allowed above maxUploadSize for form
// boundaries and the name field.
const multipartOverhead = 1 << 20

// Handler provides HTTP endpoints for image operations.
type Handler struct {
	sys           System
	urls          routes.Reverser
	logger        *slog.Logger
	pagination    pagination.Config
	maxUploadSize int64
}

// NewHandler creates an image handler. urls resolves the image_file route
// used for the file field of every response.
func NewHandler(sys System, urls routes.Reverser, logger *slog.Logger, pagination pagination.Config, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		urls:          urls,
		logger:        logger.With("handler", "images"),
		pagination:    pagination,
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the image route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Tags:        []string{"Images"},
		Description: "Image upload and management",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/upload/", Name: "upload_image", Handler: h.Upload, OpenAPI: Spec.Upload},
			{Method: "GET", Pattern: "/list_images/", Name: "list_images", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/list_image_names/", Name: "list_image_names", Handler: h.Names, OpenAPI: Spec.Names},
			{Method: "DELETE", Pattern: "/delete_image/", Name: "delete_image", Handler: h.Delete, OpenAPI: Spec.Delete},
			{Method: "GET", Pattern: "/images/{id}/file/", Name: "image_file", Handler: h.File, OpenAPI: Spec.File},
		},
	}
}

// Upload handles POST upload/ with a multipart file field and optional name.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
			return
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidFile, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: file field is required", ErrInvalidFile))
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidFile, err))
		return
	}

	img, err := h.sys.Upload(r.Context(), UploadCommand{
		Name:     r.FormValue("name"),
		Filename: header.Filename,
		Data:     data,
	})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if err := h.link(img); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, img)
}

// List handles GET list_images/.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	for i := range result.Data {
		if err := h.link(&result.Data[i]); err != nil {
			handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
			return
		}
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Names handles GET list_image_names/.
func (h *Handler) Names(w http.ResponseWriter, r *http.Request) {
	names, err := h.sys.Names(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, names)
}

// Delete handles DELETE delete_image/ with the name in the query or body.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	name, err := handlers.Param(r, "name")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.DeleteByName(r.Context(), name); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondNoContent(w)
}

// File handles GET images/{id}/file/ by streaming the stored bytes.
func (h *Handler) File(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: id: %v", ErrInvalidFile, err))
		return
	}

	img, data, err := h.sys.Open(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", img.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("image stream interrupted", "id", id, "error", err)
	}
}

func (h *Handler) link(img *Image) error {
	u, err := h.urls.Reverse("image_file", img.ID)
	if err != nil {
		return fmt.Errorf("reverse image_file: %w", err)
	}
	img.File = u
	return nil
}
