package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"plateperfect/internal/catalog"
	"plateperfect/internal/handler"
	"plateperfect/internal/metrics"
	"plateperfect/internal/router"
	"plateperfect/internal/service"
	"plateperfect/internal/stream"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

// TestServer is a fully wired app instance behind a real HTTP listener.
type TestServer struct {
	Server    *httptest.Server
	Collector *metrics.Collector
	Hub       *stream.Hub
}

// SetupTestServer starts a server around a fresh app instance. A nil catalog uses the
// built-in dishes.
func SetupTestServer(t *testing.T, dishes catalog.Catalog) *TestServer {
	t.Helper()

	logger := zerolog.Nop()
	collector := metrics.NewCollector()
	hub := stream.NewHub(8, logger)

	services := service.New(service.Options{
		Catalog:   dishes,
		Recorder:  collector,
		Publisher: hub,
	}, logger)

	handlers := router.Handlers{
		Session: handler.NewSessionHandler(services.Session, logger),
		Menu:    handler.NewMenuHandler(services.Menu, hub, logger),
		Catalog: handler.NewCatalogHandler(services.Browser, logger),
		Metrics: collector.Handler(),
	}

	server := httptest.NewServer(router.New(handlers, collector, testAPIKey, logger))
	t.Cleanup(server.Close)

	return &TestServer{Server: server, Collector: collector, Hub: hub}
}

// LoadCatalogFile writes content to a temporary catalog document and loads it the way
// the server does at startup.
func LoadCatalogFile(t *testing.T, name, content string) catalog.Catalog {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := catalog.NewFileLoader(zerolog.Nop()).Load(context.Background(), path)
	require.NoError(t, err)
	return c
}

// Do sends an authenticated request and decodes a JSON response into out when non-nil.
func (s *TestServer) Do(t *testing.T, method, path string, body interface{}, out interface{}) int {
	t.Helper()

	var reader bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reader).Encode(body))
	}

	req, err := http.NewRequest(method, s.Server.URL+path, &reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)

	resp, err := s.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// Login passes the login gate.
func (s *TestServer) Login(t *testing.T) {
	t.Helper()
	status := s.Do(t, http.MethodPost, "/api/session/login", map[string]string{
		"email":    "chef@plate.test",
		"password": "secret",
	}, nil)
	require.Equal(t, http.StatusOK, status)
}
