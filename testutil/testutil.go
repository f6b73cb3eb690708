// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/danielhkuo/gym-check/attendance"
	"github.com/danielhkuo/gym-check/blob"
	"github.com/danielhkuo/gym-check/cliparse"
	"github.com/danielhkuo/gym-check/db"
	"github.com/danielhkuo/gym-check/store"
)

// TestNow is Friday 2024-06-07 10:00 UTC; its week is 2024-06-03..2024-06-09
var TestNow = time.Date(2024, 6, 7, 10, 0, 0, 0, time.UTC)

// SetupTestDB creates a fresh SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, "file:"+filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseURL:    "file:test.db",
		DatabaseType:   db.TypeSQLite,
		BlobBackend:    cliparse.BlobBackendFS,
		BlobRoot:       "/uploads",
		MaxUploadBytes: 1 << 20,
		Location:       time.UTC,
	}
}

// NewTestService wires a service to the database and an in-memory blob
// store, with the clock fixed at now
func NewTestService(t *testing.T, conn *sql.DB, now time.Time) (*attendance.Service, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	svc := attendance.NewService(
		store.NewSQLStore(conn),
		blob.NewFSStore(fs, GetTestConfig().BlobRoot),
		attendance.WithClock(func() time.Time { return now }),
		attendance.WithLocation(time.UTC),
	)
	return svc, fs
}

// CreateTestUser inserts a user and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, username string, warnings int) string {
	t.Helper()

	userID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO users (id, username, warning_count)
		VALUES ($1, $2, $3)
	`, userID, username, warnings)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// CreateTestLog inserts an exercise log for date and returns its image key
func CreateTestLog(t *testing.T, conn *sql.DB, userID, date string) string {
	t.Helper()

	key := userID + "/" + date + "_proof.jpg"
	_, err := conn.Exec(`
		INSERT INTO exercise_logs (id, user_id, date, image_url, thumb_url)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), userID, date, key, key)
	if err != nil {
		t.Fatalf("Failed to create test log: %v", err)
	}

	return key
}

// CountLogs returns the number of logs for a user on a date
func CountLogs(t *testing.T, conn *sql.DB, userID, date string) int {
	t.Helper()

	var n int
	err := conn.QueryRow(`
		SELECT COUNT(*) FROM exercise_logs WHERE user_id = $1 AND date = $2
	`, userID, date).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count logs: %v", err)
	}
	return n
}

// MakeUploadRequest builds a multipart POST with a user_id field and,
// when image is non-nil, an image file part
func MakeUploadRequest(t *testing.T, path, userID, filename string, image []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if userID != "" {
		if err := mw.WriteField("user_id", userID); err != nil {
			t.Fatalf("Failed to write user_id: %v", err)
		}
	}

	if image != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
		h.Set("Content-Type", "image/jpeg")
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("Failed to create file part: %v", err)
		}
		if _, err := part.Write(image); err != nil {
			t.Fatalf("Failed to write file part: %v", err)
		}
	}

	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
