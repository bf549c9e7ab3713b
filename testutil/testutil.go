// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickvote/cliparse"
	"github.com/danielhkuo/quickvote/db"
)

// SetupTestDB creates a fresh private in-memory SQLite database with the full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:test-" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := db.Open(context.Background(), cliparse.DatabaseSQLite, dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3001,
		DatabaseURL:     "file::memory:",
		DatabaseType:    cliparse.DatabaseSQLite,
		ShutdownTimeout: 5 * time.Second,
	}
}

// CreateTestCandidate inserts a candidate directly and returns its ID
func CreateTestCandidate(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO candidates (name, description, image_url, created_at)
		VALUES ($1, $2, '', $3)
		RETURNING id
	`, name, "symbol-"+name, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return id
}

// CastTestVote inserts a vote directly, bypassing admission, and returns its ID
func CastTestVote(t *testing.T, conn *sql.DB, candidateID int64, ip string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO votes (candidate_id, ip_address, timestamp)
		VALUES ($1, $2, $3)
		RETURNING id
	`, candidateID, ip, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return id
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sql.DB, table string) int64 {
	t.Helper()

	var n int64
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// RecordingNotifier captures notification kinds in order
type RecordingNotifier struct {
	mu    sync.Mutex
	kinds []string
}

func (r *RecordingNotifier) Notify(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds = append(r.kinds, kind)
}

// Kinds returns a copy of every kind received so far
func (r *RecordingNotifier) Kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.kinds...)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

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
