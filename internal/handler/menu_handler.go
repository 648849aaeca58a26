package handler

import (
	"encoding/json"
	"net/http"

	"plateperfect/internal/model"
	"plateperfect/internal/service"
	"plateperfect/internal/stream"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// MenuHandler handles the home view, the add/remove form and the change feed.
type MenuHandler struct {
	service service.MenuService
	hub     *stream.Hub
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler. hub may be nil, in which case the
// stream endpoint answers 404.
func NewMenuHandler(service service.MenuService, hub *stream.Hub, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		hub:     hub,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// Home handles GET /api/menu requests.
func (h *MenuHandler) Home(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Home(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary, h.logger)
}

// OpenEditor handles POST /api/menu/editor requests.
func (h *MenuHandler) OpenEditor(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.OpenEditor(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, state, h.logger)
}

// SaveItem handles POST /api/menu/items requests.
func (h *MenuHandler) SaveItem(w http.ResponseWriter, r *http.Request) {
	var form model.MenuItemForm
	if !decodeJSON(w, r, &form, h.logger) {
		return
	}

	item, err := h.service.SaveItem(r.Context(), form)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item, h.logger)
}

// RemoveItem handles DELETE /api/menu/items/{id} requests.
func (h *MenuHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed, err := h.service.RemoveItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.RemoveResponse{ID: id, Removed: removed}, h.logger)
}

// Stream handles GET /api/menu/stream by upgrading to a WebSocket that receives the
// menu summary now and after every change.
func (h *MenuHandler) Stream(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "change feed disabled", h.logger)
		return
	}

	snapshot := func() ([]byte, error) {
		return json.Marshal(h.service.Summary(r.Context()))
	}

	stream.Serve(w, r, h.hub, snapshot, h.logger)
}
