// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/gym-check/models"
	"github.com/danielhkuo/gym-check/testutil"
)

// TestWeekLifecycle uploads Monday through Sunday, checks the board after
// each day, then checks that the following Monday starts from zero
func TestWeekLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	userID := testutil.CreateTestUser(t, db, "LifecycleUser", 1)
	monday := testutil.TestNow.AddDate(0, 0, -4) // 2024-06-03

	for day := 0; day < 7; day++ {
		now := monday.AddDate(0, 0, day)
		svc, _ := testutil.NewTestService(t, db, now)

		// Step 1: Upload today's proof
		w := httptest.NewRecorder()
		NewUploadHandler(svc, cfg).Upload(w, testutil.MakeUploadRequest(t, "/upload", userID, "day.jpg", jpegBytes))
		testutil.AssertStatus(t, w, http.StatusOK)

		var upload models.UploadResponse
		testutil.AssertJSON(t, w, &upload)

		// Step 2: Board reflects every day so far, latest photo first
		w = httptest.NewRecorder()
		NewStatusHandler(svc).GetStatus(w, httptest.NewRequest("GET", "/status", nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var entries []models.StatusEntry
		testutil.AssertJSON(t, w, &entries)
		if len(entries) != 1 {
			t.Fatalf("day %d: expected 1 entry, got %d", day, len(entries))
		}
		if entries[0].WeekCount != day+1 {
			t.Errorf("day %d: expected weekCount %d, got %d", day, day+1, entries[0].WeekCount)
		}
		if entries[0].ImageURL == nil || *entries[0].ImageURL != upload.ImageURL {
			t.Errorf("day %d: expected latest image %s, got %v", day, upload.ImageURL, entries[0].ImageURL)
		}
		if entries[0].WarningCount != 1 {
			t.Errorf("day %d: expected warningCount 1, got %d", day, entries[0].WarningCount)
		}
	}

	// Step 3: Next Monday starts a new week
	svc, _ := testutil.NewTestService(t, db, monday.AddDate(0, 0, 7))
	w := httptest.NewRecorder()
	NewStatusHandler(svc).GetStatus(w, httptest.NewRequest("GET", "/status", nil))

	var entries []models.StatusEntry
	testutil.AssertJSON(t, w, &entries)
	if len(entries) != 1 || entries[0].WeekCount != 0 || entries[0].ImageURL != nil {
		t.Errorf("Expected empty new week, got %+v", entries)
	}
}
