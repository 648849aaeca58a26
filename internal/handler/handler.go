package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"plateperfect/internal/model"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code. The status line is already
// sent when encoding fails, so the failure is only logged.
func writeJSON(w http.ResponseWriter, status int, data interface{}, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Int("status", status).Msg("failed to encode response")
	}
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message}, logger)
}

// writeServiceError maps a service error to its HTTP status. Domain errors keep their
// code and message; anything else is reported as an internal error.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Msg("unexpected service error")
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}
	writeError(w, StatusFor(domainErr), domainErr.Code, domainErr.Message, logger)
}

// StatusFor returns the HTTP status for a domain error.
func StatusFor(err *model.DomainError) int {
	if model.IsValidation(err) {
		return http.StatusBadRequest
	}

	switch err.Code {
	case model.ErrCodeDishNotFound, model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeDuplicateMenuItem, model.ErrCodeInvalidTransition:
		return http.StatusConflict
	case model.ErrCodeLoginRequired:
		return http.StatusForbidden
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}, logger zerolog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}
	return true
}

// courseParam resolves the {course} route variable, accepting slugs and labels.
func courseParam(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (model.Course, bool) {
	course, err := model.ParseCourse(mux.Vars(r)["course"])
	if err != nil || course == nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidCourse, model.ErrInvalidCourse.Message, logger)
		return "", false
	}
	return *course, true
}
