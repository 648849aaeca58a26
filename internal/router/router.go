package router

import (
	"net/http"

	"plateperfect/internal/handler"
	"plateperfect/internal/middleware"
	"plateperfect/internal/model"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Session *handler.SessionHandler
	Menu    *handler.MenuHandler
	Catalog *handler.CatalogHandler

	// Metrics serves /metrics when non-nil.
	Metrics http.Handler
}

// New creates a new HTTP router with all routes and middleware configured.
// recorder may be nil to disable request metrics.
func New(h Handlers, recorder middleware.RequestRecorder, apiKey string, logger zerolog.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check endpoint (no authentication required)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	}).Methods(http.MethodGet)

	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Session routes
	api.HandleFunc("/session", h.Session.State).Methods(http.MethodGet)
	api.HandleFunc("/session/login", h.Session.Login).Methods(http.MethodPost)
	api.HandleFunc("/session/back", h.Session.Back).Methods(http.MethodPost)

	// Menu routes
	api.HandleFunc("/menu", h.Menu.Home).Methods(http.MethodGet)
	api.HandleFunc("/menu/stream", h.Menu.Stream).Methods(http.MethodGet)
	api.HandleFunc("/menu/editor", h.Menu.OpenEditor).Methods(http.MethodPost)
	api.HandleFunc("/menu/items", h.Menu.SaveItem).Methods(http.MethodPost)
	api.HandleFunc("/menu/items/{id}", h.Menu.RemoveItem).Methods(http.MethodDelete)

	// Catalog routes
	api.HandleFunc("/courses", h.Catalog.List).Methods(http.MethodGet)
	api.HandleFunc("/courses/{course}", h.Catalog.ListCourse).Methods(http.MethodGet)
	api.HandleFunc("/courses/{course}/open", h.Catalog.OpenCourse).Methods(http.MethodPost)
	api.HandleFunc("/courses/{course}/dishes/{id}/select", h.Catalog.SelectDish).Methods(http.MethodPost)

	r.NotFoundHandler = errorHandler(http.StatusNotFound, model.ErrCodeNotFound, "not found")
	r.MethodNotAllowedHandler = errorHandler(http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed")

	// Apply middleware in order: Recovery -> Logging -> Metrics -> CORS -> APIKeyAuth
	var handler http.Handler = r
	handler = middleware.APIKeyAuth(apiKey, logger)(handler)
	handler = middleware.CORS(handler)
	if recorder != nil {
		handler = middleware.Metrics(recorder, r)(handler)
	}
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}

func errorHandler(status int, code, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(`{"error": "` + code + `", "message": "` + message + `"}`))
	})
}
