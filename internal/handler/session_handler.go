package handler

import (
	"net/http"

	"plateperfect/internal/model"
	"plateperfect/internal/service"

	"github.com/rs/zerolog"
)

// SessionHandler handles the login gate and back navigation.
type SessionHandler struct {
	service service.SessionService
	logger  zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(service service.SessionService, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		logger:  logger.With().Str("handler", "session").Logger(),
	}
}

// Login handles POST /api/session/login requests.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	state, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, state, h.logger)
}

// State handles GET /api/session requests.
func (h *SessionHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.State(r.Context()), h.logger)
}

// Back handles POST /api/session/back requests.
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Back(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, state, h.logger)
}
