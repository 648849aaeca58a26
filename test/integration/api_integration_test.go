package integration

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"plateperfect/internal/model"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuFlow_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	s := SetupTestServer(t, nil)

	t.Run("Menu is gated until login", func(t *testing.T) {
		var errResp model.ErrorResponse
		status := s.Do(t, http.MethodGet, "/api/menu", nil, &errResp)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, model.ErrCodeLoginRequired, errResp.Error)
	})

	t.Run("Empty credentials are rejected", func(t *testing.T) {
		var errResp model.ErrorResponse
		status := s.Do(t, http.MethodPost, "/api/session/login", map[string]string{"email": "", "password": "x"}, &errResp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Please enter both email and password.", errResp.Message)
	})

	s.Login(t)

	t.Run("Starters browser adds a dish once", func(t *testing.T) {
		var state model.SessionState
		status := s.Do(t, http.MethodPost, "/api/courses/starters/open", nil, &state)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "StartersBrowser", state.Screen)

		var selection model.SelectionResponse
		status = s.Do(t, http.MethodPost, "/api/courses/starters/dishes/1/select", nil, &selection)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Bruschetta", selection.Item.Name)
		assert.Nil(t, selection.Item.Course)
		assert.Equal(t, 1, selection.Menu.Count)

		var summary model.MenuSummary
		for i := 0; i < 2; i++ {
			status = s.Do(t, http.MethodGet, "/api/menu", nil, &summary)
			require.Equal(t, http.StatusOK, status)
			assert.Equal(t, 1, summary.Count)
		}
	})

	t.Run("Main course browser brings the average to 85", func(t *testing.T) {
		require.Equal(t, http.StatusOK, s.Do(t, http.MethodPost, "/api/courses/main-course/open", nil, nil))

		var selection model.SelectionResponse
		status := s.Do(t, http.MethodPost, "/api/courses/main-course/dishes/3/select", nil, &selection)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 2, selection.Menu.Count)
		assert.Equal(t, 85.0, selection.Menu.AveragePrice)
		assert.Equal(t, "R85.00", selection.Menu.AveragePriceDisplay)
		assert.Equal(t, "Starter", selection.Menu.Groups[0].Course)
		assert.Equal(t, "Main Course", selection.Menu.Groups[1].Course)
	})

	t.Run("Selecting a dish already on the menu returns home with a conflict", func(t *testing.T) {
		require.Equal(t, http.StatusOK, s.Do(t, http.MethodPost, "/api/courses/starters/open", nil, nil))

		var errResp model.ErrorResponse
		status := s.Do(t, http.MethodPost, "/api/courses/starters/dishes/1/select", nil, &errResp)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, model.ErrCodeDuplicateMenuItem, errResp.Error)

		var state model.SessionState
		require.Equal(t, http.StatusOK, s.Do(t, http.MethodGet, "/api/session", nil, &state))
		assert.Equal(t, "Home", state.Screen)

		var summary model.MenuSummary
		require.Equal(t, http.StatusOK, s.Do(t, http.MethodGet, "/api/menu", nil, &summary))
		assert.Equal(t, 2, summary.Count)
	})

	t.Run("Selecting outside the browser conflicts", func(t *testing.T) {
		var errResp model.ErrorResponse
		status := s.Do(t, http.MethodPost, "/api/courses/desserts/dishes/5/select", nil, &errResp)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, model.ErrCodeInvalidTransition, errResp.Error)
	})

	var saved model.MenuItem

	t.Run("Add form validates the price", func(t *testing.T) {
		require.Equal(t, http.StatusOK, s.Do(t, http.MethodPost, "/api/menu/editor", nil, nil))

		var errResp model.ErrorResponse
		status := s.Do(t, http.MethodPost, "/api/menu/items", map[string]string{"name": "Tiramisu", "price": "abc"}, &errResp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Please enter a valid price", errResp.Message)

		status = s.Do(t, http.MethodPost, "/api/menu/items", map[string]string{
			"name":        "Tiramisu",
			"description": "Coffee and mascarpone",
			"course":      "Desserts",
			"price":       "150",
		}, &saved)
		require.Equal(t, http.StatusCreated, status)
		assert.NotEmpty(t, saved.ID)
		assert.Equal(t, 150, saved.Price)
		require.NotNil(t, saved.Course)
		assert.Equal(t, model.CourseDessert, *saved.Course)

		var state model.SessionState
		s.Do(t, http.MethodGet, "/api/session", nil, &state)
		assert.Equal(t, "Home", state.Screen)

		var summary model.MenuSummary
		s.Do(t, http.MethodGet, "/api/menu", nil, &summary)
		assert.Equal(t, 3, summary.Count)
		assert.Equal(t, "Tiramisu", summary.Groups[2].Items[0].Name)
	})

	t.Run("Remove form deletes by id", func(t *testing.T) {
		require.Equal(t, http.StatusOK, s.Do(t, http.MethodPost, "/api/menu/editor", nil, nil))

		var removed model.RemoveResponse
		status := s.Do(t, http.MethodDelete, "/api/menu/items/"+saved.ID, nil, &removed)
		require.Equal(t, http.StatusOK, status)
		assert.True(t, removed.Removed)

		status = s.Do(t, http.MethodDelete, "/api/menu/items/"+saved.ID, nil, &removed)
		require.Equal(t, http.StatusOK, status)
		assert.False(t, removed.Removed)

		var state model.SessionState
		status = s.Do(t, http.MethodPost, "/api/session/back", nil, &state)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Home", state.Screen)

		var summary model.MenuSummary
		s.Do(t, http.MethodGet, "/api/menu", nil, &summary)
		assert.Equal(t, 2, summary.Count)
	})

	t.Run("Metrics reflect the session", func(t *testing.T) {
		resp, err := http.Get(s.Server.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		text := string(body)
		assert.Contains(t, text, "menu_items 2")
		assert.Contains(t, text, `menu_mutations_total{operation="select"} 2`)
		assert.Contains(t, text, `validation_failures_total{code="INVALID_PRICE"} 1`)
		assert.Contains(t, text, `navigation_transitions_total{from="LogIn",to="Home"} 1`)
	})
}

func TestCatalogFromFile_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	dishes := LoadCatalogFile(t, "catalog.yaml", `
courses:
  - course: Starters
    dishes:
      - {id: "10", name: "Samoosas", price: 35}
  - course: Main
    dishes:
      - {id: "11", name: "Bobotie", price: 110}
  - course: Desserts
    dishes: []
`)

	s := SetupTestServer(t, dishes)

	var courses []model.CourseDishes
	status := s.Do(t, http.MethodGet, "/api/courses", nil, &courses)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, courses, 3)
	assert.Equal(t, "Samoosas", courses[0].Dishes[0].Name)
	assert.Equal(t, "Bobotie", courses[1].Dishes[0].Name)
	assert.Empty(t, courses[2].Dishes)

	s.Login(t)
	require.Equal(t, http.StatusOK, s.Do(t, http.MethodPost, "/api/courses/main-course/open", nil, nil))

	var selection model.SelectionResponse
	status = s.Do(t, http.MethodPost, "/api/courses/main-course/dishes/11/select", nil, &selection)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 110.0, selection.Menu.AveragePrice)
	assert.Equal(t, 2, selection.Menu.AvailableDishes)
}

func TestMenuStream_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	s := SetupTestServer(t, nil)

	wsURL := "ws" + strings.TrimPrefix(s.Server.URL, "http") + "/api/menu/stream"
	header := http.Header{}
	header.Set("X-API-Key", testAPIKey)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var initial model.MenuSummary
	require.NoError(t, conn.ReadJSON(&initial))
	assert.Equal(t, 0, initial.Count)

	s.Login(t)
	require.Equal(t, http.StatusOK, s.Do(t, http.MethodPost, "/api/courses/desserts/open", nil, nil))
	require.Equal(t, http.StatusOK, s.Do(t, http.MethodPost, "/api/courses/desserts/dishes/6/select", nil, nil))

	var update model.MenuSummary
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, 1, update.Count)
	assert.Equal(t, "Lemon Tart", update.Items[0].Name)
	assert.Equal(t, "R70.00", update.AveragePriceDisplay)
}

func TestMenuStream_RequiresAPIKey(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	s := SetupTestServer(t, nil)

	wsURL := "ws" + strings.TrimPrefix(s.Server.URL, "http") + "/api/menu/stream"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
