// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/gym-check/models"
	"github.com/danielhkuo/gym-check/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc, _ := testutil.NewTestService(t, db, testutil.TestNow)
	return NewRouter(svc, testutil.GetTestConfig())
}

func TestHealthEndpoints(t *testing.T) {
	mux := newTestRouter(t)

	for _, path := range []string{"/health", "/api/status"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.HealthResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Status != "ok" {
				t.Errorf("Expected status 'ok', got '%s'", resp.Status)
			}
		})
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "gym-check API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	// Hit a logged route first so request metrics exist
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/status", nil))

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "gymcheck_http_request_duration_seconds") {
		t.Error("Expected request duration metric in exposition")
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method   string
		path     string
		expected int
	}{
		{"GET", "/status", http.StatusOK},
		{"GET", "/users", http.StatusOK},
		{"GET", "/api/users", http.StatusOK},
		// Not multipart, but the handler is reached
		{"POST", "/upload", http.StatusBadRequest},
		{"POST", "/api/upload", http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tc.expected)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("DELETE", "/status", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestUploadThroughRouter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc, _ := testutil.NewTestService(t, db, testutil.TestNow)
	mux := NewRouter(svc, testutil.GetTestConfig())

	userID := testutil.CreateTestUser(t, db, "mina", 0)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeUploadRequest(t, "/upload", userID, "a.jpg", []byte("img")))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/status", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var entries []models.StatusEntry
	testutil.AssertJSON(t, w, &entries)
	if len(entries) != 1 || entries[0].WeekCount != 1 || entries[0].ImageURL == nil {
		t.Errorf("Expected one entry with the new upload, got %+v", entries)
	}
}
