// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/camp-apply/cliparse"
	"github.com/danielhkuo/camp-apply/db"
	"github.com/danielhkuo/camp-apply/models"
	"github.com/danielhkuo/camp-apply/views"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// ErrStoreDown is returned by every FailingStore operation
var ErrStoreDown = errors.New("store unavailable")

// SetupTestStore creates a fresh in-memory database with the full schema
func SetupTestStore(t *testing.T) *db.SQLStore {
	t.Helper()

	store, err := db.OpenSQL(context.Background(), models.DatabaseSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close(context.Background()) })

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		DatabaseURL:     TestDBURL,
		DatabaseType:    models.DatabaseSQLite,
		StoreTimeout:    5 * time.Second,
		ShutdownTimeout: time.Second,
	}
}

// NewTestRenderer parses the embedded templates
func NewTestRenderer(t *testing.T) *views.Renderer {
	t.Helper()

	r, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}
	return r
}

// CreateTestApplicant inserts an applicant and returns its ID
func CreateTestApplicant(t *testing.T, store db.Store, name, email string, gpa float64) string {
	t.Helper()

	id, err := store.Insert(context.Background(), models.Applicant{
		Name:        name,
		Email:       email,
		GPA:         gpa,
		Background:  "Test background",
		SubmittedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Failed to create test applicant: %v", err)
	}

	return id
}

// CountApplicants returns how many applicants the store holds
func CountApplicants(t *testing.T, store *db.SQLStore) int {
	t.Helper()

	var n int
	if err := store.DB().QueryRow("SELECT COUNT(*) FROM applicant").Scan(&n); err != nil {
		t.Fatalf("Failed to count applicants: %v", err)
	}
	return n
}

// FailingStore is a db.Store whose every operation fails
type FailingStore struct{}

func (FailingStore) Insert(context.Context, models.Applicant) (string, error) {
	return "", ErrStoreDown
}

func (FailingStore) FindByEmail(context.Context, string) (*models.Applicant, error) {
	return nil, ErrStoreDown
}

func (FailingStore) FindWhereGPAAtLeast(context.Context, float64) ([]models.ApplicantSummary, error) {
	return nil, ErrStoreDown
}

func (FailingStore) DeleteAll(context.Context) (int64, error) {
	return 0, ErrStoreDown
}

func (FailingStore) Ping(context.Context) error {
	return ErrStoreDown
}

func (FailingStore) Close(context.Context) error {
	return nil
}

// MakeFormRequest creates a url-encoded form request
func MakeFormRequest(method, path string, form url.Values, headers map[string]string) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeJSONRequest creates a form request that asks for a JSON response
func MakeJSONRequest(method, path string, form url.Values) *http.Request {
	return MakeFormRequest(method, path, form, map[string]string{"Accept": "application/json"})
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
