package handler

import (
	"net/http"

	"plateperfect/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// CatalogHandler handles the category browsers.
type CatalogHandler struct {
	service service.BrowserService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.BrowserService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// List handles GET /api/courses requests.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Catalog(r.Context()), h.logger)
}

// ListCourse handles GET /api/courses/{course} requests.
func (h *CatalogHandler) ListCourse(w http.ResponseWriter, r *http.Request) {
	course, ok := courseParam(w, r, h.logger)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.service.ListCourse(r.Context(), course), h.logger)
}

// OpenCourse handles POST /api/courses/{course}/open requests.
func (h *CatalogHandler) OpenCourse(w http.ResponseWriter, r *http.Request) {
	course, ok := courseParam(w, r, h.logger)
	if !ok {
		return
	}

	state, err := h.service.OpenCourse(r.Context(), course)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, state, h.logger)
}

// SelectDish handles POST /api/courses/{course}/dishes/{id}/select requests.
func (h *CatalogHandler) SelectDish(w http.ResponseWriter, r *http.Request) {
	course, ok := courseParam(w, r, h.logger)
	if !ok {
		return
	}

	resp, err := h.service.SelectDish(r.Context(), course, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp, h.logger)
}
