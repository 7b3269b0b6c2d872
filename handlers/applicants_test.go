// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/camp-apply/models"
	"github.com/danielhkuo/camp-apply/testutil"
)

func TestSubmitApplication(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewApplicantHandler(store, testutil.NewTestRenderer(t), cfg)

	tests := []struct {
		name           string
		form           url.Values
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, resp *models.ApplicationConfirmation)
	}{
		{
			name: "valid application",
			form: url.Values{
				"name":       {"Ann"},
				"email":      {"a@x.com"},
				"gpa":        {"3.5"},
				"background": {"CS"},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.ApplicationConfirmation) {
				if resp.Applicant.ID == "" {
					t.Error("Expected non-empty applicant id")
				}
				if resp.Applicant.Name != "Ann" || resp.Applicant.Email != "a@x.com" {
					t.Errorf("Unexpected echoed applicant: %+v", resp.Applicant)
				}
				if resp.Applicant.GPA != 3.5 {
					t.Errorf("Expected gpa 3.5, got %v", resp.Applicant.GPA)
				}
				if resp.Applicant.Background != "CS" {
					t.Errorf("Expected background CS, got %q", resp.Applicant.Background)
				}
				if resp.CurrentTime.IsZero() {
					t.Error("Expected current_time to be set")
				}
			},
		},
		{
			name: "background is optional",
			form: url.Values{
				"name":  {"Bo"},
				"email": {"bo@x.com"},
				"gpa":   {"2"},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "whitespace is trimmed",
			form: url.Values{
				"name":  {"  Cy  "},
				"email": {" cy@x.com "},
				"gpa":   {" 3.9 "},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.ApplicationConfirmation) {
				if resp.Applicant.Name != "Cy" || resp.Applicant.Email != "cy@x.com" {
					t.Errorf("Expected trimmed fields, got %+v", resp.Applicant)
				}
			},
		},
		{
			name:           "non-numeric gpa",
			form:           url.Values{"name": {"Ann"}, "email": {"abc@x.com"}, "gpa": {"abc"}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "gpa must be a decimal number",
		},
		{
			name:           "nan gpa",
			form:           url.Values{"name": {"Ann"}, "email": {"nan@x.com"}, "gpa": {"NaN"}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "gpa must be a decimal number",
		},
		{
			name:           "missing gpa",
			form:           url.Values{"name": {"Ann"}, "email": {"nogpa@x.com"}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "gpa must be a decimal number",
		},
		{
			name:           "missing name",
			form:           url.Values{"email": {"noname@x.com"}, "gpa": {"3"}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "name is required",
		},
		{
			name:           "missing email",
			form:           url.Values{"name": {"Ann"}, "gpa": {"3"}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "email is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeJSONRequest("POST", "/apply", tt.form)
			w := httptest.NewRecorder()

			handler.SubmitApplication(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedError != "" {
				var errResp models.ErrorResponse
				testutil.AssertJSON(t, w, &errResp)
				if errResp.Message != tt.expectedError {
					t.Errorf("Expected message %q, got %q", tt.expectedError, errResp.Message)
				}
				return
			}

			if tt.checkResponse != nil {
				var resp models.ApplicationConfirmation
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}

	// Only the three valid applications were stored
	if n := testutil.CountApplicants(t, store); n != 3 {
		t.Errorf("Expected 3 stored applicants, got %d", n)
	}
}

func TestSubmitApplicationRejectedGPANotStored(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewApplicantHandler(store, testutil.NewTestRenderer(t), testutil.GetTestConfig())

	form := url.Values{"name": {"Ann"}, "email": {"a@x.com"}, "gpa": {"abc"}, "background": {"CS"}}
	req := testutil.MakeFormRequest("POST", "/apply", form, nil)
	w := httptest.NewRecorder()

	handler.SubmitApplication(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	if !strings.Contains(w.Body.String(), "gpa must be a decimal number") {
		t.Error("Expected error page to explain the gpa problem")
	}
	if n := testutil.CountApplicants(t, store); n != 0 {
		t.Errorf("Expected nothing stored, got %d applicants", n)
	}
}

func TestSubmitApplicationJSONBody(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewApplicantHandler(store, testutil.NewTestRenderer(t), testutil.GetTestConfig())

	body := `{"name":"Ann","email":"a@x.com","gpa":3.5,"background":"CS"}`
	req := httptest.NewRequest("POST", "/apply", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()

	handler.SubmitApplication(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.ApplicationConfirmation
	testutil.AssertJSON(t, w, &resp)
	if resp.Applicant.GPA != 3.5 {
		t.Errorf("Expected gpa 3.5, got %v", resp.Applicant.GPA)
	}
}

func TestSubmitApplicationHTML(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewApplicantHandler(store, testutil.NewTestRenderer(t), testutil.GetTestConfig())

	form := url.Values{"name": {"Ann"}, "email": {"a@x.com"}, "gpa": {"3.5"}, "background": {"CS"}}
	req := testutil.MakeFormRequest("POST", "/apply", form, nil)
	w := httptest.NewRecorder()

	handler.SubmitApplication(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected HTML response, got %q", ct)
	}
	for _, want := range []string{"Ann", "a@x.com", "3.5", "CS", "Task completed at"} {
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("Expected confirmation page to contain %q", want)
		}
	}
}

func TestReviewApplication(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewApplicantHandler(store, testutil.NewTestRenderer(t), cfg)

	testutil.CreateTestApplicant(t, store, "Ann", "a@x.com", 3.5)

	tests := []struct {
		name           string
		form           url.Values
		expectedStatus int
		expectFound    bool
		expectedName   string
	}{
		{
			name:           "existing applicant",
			form:           url.Values{"email": {"a@x.com"}},
			expectedStatus: http.StatusOK,
			expectFound:    true,
			expectedName:   "Ann",
		},
		{
			name:           "unknown email",
			form:           url.Values{"email": {"nobody@x.com"}},
			expectedStatus: http.StatusOK,
			expectFound:    false,
		},
		{
			name:           "email is case sensitive",
			form:           url.Values{"email": {"A@X.COM"}},
			expectedStatus: http.StatusOK,
			expectFound:    false,
		},
		{
			name:           "missing email",
			form:           url.Values{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeJSONRequest("POST", "/reviewApplication", tt.form)
			w := httptest.NewRecorder()

			handler.ReviewApplication(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.ReviewResult
			testutil.AssertJSON(t, w, &resp)

			if resp.Found != tt.expectFound {
				t.Errorf("Expected found=%v, got %v", tt.expectFound, resp.Found)
			}
			if tt.expectFound {
				if resp.Applicant == nil || resp.Applicant.Name != tt.expectedName {
					t.Errorf("Expected applicant %s, got %+v", tt.expectedName, resp.Applicant)
				}
			} else if resp.Applicant != nil {
				t.Errorf("Expected null applicant, got %+v", resp.Applicant)
			}
			if resp.CurrentTime.IsZero() {
				t.Error("Expected current_time to be set")
			}
		})
	}
}

func TestReviewApplicationNotFoundHTML(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewApplicantHandler(store, testutil.NewTestRenderer(t), testutil.GetTestConfig())

	req := testutil.MakeFormRequest("POST", "/reviewApplication", url.Values{"email": {"nobody@x.com"}}, nil)
	w := httptest.NewRecorder()

	handler.ReviewApplication(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "No application found.") {
		t.Error("Expected not-found message on the review page")
	}
}

func TestFormPages(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewApplicantHandler(store, testutil.NewTestRenderer(t), testutil.GetTestConfig())

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		contains string
	}{
		{"index", handler.Index, `href="/apply"`},
		{"apply form", handler.ApplyForm, `action="/apply"`},
		{"find form", handler.FindForm, `action="/reviewApplication"`},
		{"review form", handler.ReviewForm, `action="/reviewApplication"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.handler(w, httptest.NewRequest("GET", "/", nil))

			testutil.AssertStatus(t, w, http.StatusOK)
			if !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("Expected page to contain %q", tt.contains)
			}
		})
	}
}

func TestApplicantHandlerStoreFailure(t *testing.T) {
	handler := NewApplicantHandler(testutil.FailingStore{}, testutil.NewTestRenderer(t), testutil.GetTestConfig())

	t.Run("submit", func(t *testing.T) {
		form := url.Values{"name": {"Ann"}, "email": {"a@x.com"}, "gpa": {"3.5"}}
		w := httptest.NewRecorder()
		handler.SubmitApplication(w, testutil.MakeJSONRequest("POST", "/apply", form))

		testutil.AssertStatus(t, w, http.StatusInternalServerError)

		var errResp models.ErrorResponse
		testutil.AssertJSON(t, w, &errResp)
		if errResp.Message != "Database error" {
			t.Errorf("Expected generic message, got %q", errResp.Message)
		}
		if strings.Contains(errResp.Message, testutil.ErrStoreDown.Error()) {
			t.Error("Store error detail must not reach the client")
		}
	})

	t.Run("review", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ReviewApplication(w, testutil.MakeFormRequest("POST", "/reviewApplication", url.Values{"email": {"a@x.com"}}, nil))

		testutil.AssertStatus(t, w, http.StatusInternalServerError)
		if !strings.Contains(w.Body.String(), "Database error") {
			t.Error("Expected error page with generic message")
		}
	})
}
