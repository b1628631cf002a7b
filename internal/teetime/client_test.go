package teetime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teetimealerts/internal/config"
)

func testClient(srv *httptest.Server) *Client {
	s := config.Defaults()
	s.IdentityURL = srv.URL + "/v1/accounts:signInWithPassword"
	s.IdentityAPIKey = "test-key"
	s.APIBaseURL = srv.URL
	return New(s)
}

func TestAuthenticate(t *testing.T) {
	var gotQuery string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/accounts:signInWithPassword", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotQuery = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"idToken":     "tok-123",
			"displayName": "Happy Golfer",
			"email":       "golfer@example.com",
		})
	}))
	defer srv.Close()

	auth, err := testClient(srv).Authenticate(context.Background(), "golfer@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotQuery)
	assert.Equal(t, map[string]any{
		"email":             "golfer@example.com",
		"password":          "secret",
		"returnSecureToken": true,
		"clientType":        "CLIENT_TYPE_WEB",
	}, gotBody)

	assert.Equal(t, "tok-123", auth.IDToken)
	assert.Equal(t, "Happy Golfer", auth.DisplayName)
}

func TestAuthenticateFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"INVALID_PASSWORD"}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Authenticate(context.Background(), "golfer@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "INVALID_PASSWORD")
}

func TestSearchCourses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/course/search/zipcode", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "90210", body["zipCode"])
		assert.Equal(t, float64(50), body["radius"])

		json.NewEncoder(w).Encode(map[string]any{
			"courses": []map[string]any{
				{"course_name": "rancho-park", "course_fullname": "Rancho Park", "course_city": "Los Angeles", "course_distance": 3.2},
				{"course_name": "griffith-park", "course_fullname": "Griffith Park", "course_city": "Los Angeles", "course_distance": 9.8},
			},
		})
	}))
	defer srv.Close()

	courses := testClient(srv).SearchCourses(context.Background(), "90210", 50)
	require.Len(t, courses, 2)
	assert.Equal(t, Course{Name: "rancho-park", FullName: "Rancho Park", City: "Los Angeles", Distance: 3.2}, courses[0])
}

func TestSearchCoursesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	// A failing search is absorbed, not propagated.
	courses := testClient(srv).SearchCourses(context.Background(), "90210", 50)
	assert.Empty(t, courses)
}

func TestSearchCoursesMissingKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"something_else": []}`))
	}))
	defer srv.Close()

	courses := testClient(srv).SearchCourses(context.Background(), "90210", 50)
	assert.Empty(t, courses)
}

func TestSearchCoursesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Closed server: connection refused.

	courses := testClient(srv).SearchCourses(context.Background(), "90210", 50)
	assert.Empty(t, courses)
}

func TestUpdatePreferences(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/golfer/preferences/add", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	client := testClient(srv)
	prefs := Preferences{
		StartHour: 5,
		EndHour:   12,
		Date:      "2024-06-15",
		Players:   "2",
		Courses:   []string{"rancho-park", "griffith-park"},
	}

	status, body, err := client.UpdatePreferences(context.Background(), prefs, "tok-123")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, client.Settings.AccountUUID, gotBody["uuid"])
	assert.Equal(t, float64(client.Settings.AnalyticsFlag), gotBody["golfer_ignore_in_analytics"])

	inner, ok := gotBody["preferences"].(map[string]any)
	require.True(t, ok, "payload must nest the preferences object")
	assert.Equal(t, []any{"rancho-park", "griffith-park"}, inner["courses"])
	assert.Equal(t, []any{float64(5)}, inner["start_times"])
	assert.Equal(t, []any{float64(12)}, inner["end_times"])
	assert.Equal(t, []any{"2"}, inner["players"])
	assert.Equal(t, []any{"2024-06-15"}, inner["dates"])
	assert.Equal(t, float64(client.Settings.PreferencesID), inner["preferences_id"])
	assert.Equal(t, float64(0), inner["alerts_sent"])
}

func TestUpdatePreferencesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("token expired"))
	}))
	defer srv.Close()

	status, _, err := testClient(srv).UpdatePreferences(context.Background(), Preferences{Players: "2"}, "stale")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "token expired")
}
