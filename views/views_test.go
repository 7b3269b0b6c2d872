// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/camp-apply/models"
)

func TestRenderAllPages(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	ann := models.Applicant{Name: "Ann", Email: "a@x.com", GPA: 3.5, Background: "CS", SubmittedAt: now}

	testCases := []struct {
		page     string
		data     any
		contains []string
	}{
		{PageIndex, nil, []string{`href="/apply"`, `href="/adminRemove"`}},
		{PageApply, nil, []string{`action="/apply"`, `name="gpa"`}},
		{PageProcessApplication, models.ApplicationConfirmation{Applicant: ann, CurrentTime: now}, []string{"Ann", "a@x.com", "3.5", "CS", "Sun Jun 01 2025"}},
		{PageFind, models.ReviewResult{}, []string{`action="/reviewApplication"`}},
		{PageReviewApplication, nil, []string{`name="email"`}},
		{PageProcessReviewApplication, models.ReviewResult{Applicant: &ann, Found: true, CurrentTime: now}, []string{"Ann", "3.5", "CS"}},
		{PageProcessReviewApplication, models.ReviewResult{CurrentTime: now}, []string{"No application found."}},
		{PageAdminGFA, AdminForm{}, []string{`action="/processAdminGFA"`}},
		{PageAdminGFA, AdminForm{AdminKeyRequired: true}, []string{`name="admin_key"`}},
		{PageProcessAdminGFA, models.GPAFilterResult{Applicants: []models.ApplicantSummary{{Name: "Bo", GPA: 3.8}}, GPAThreshold: 3}, []string{"Bo", "3.8", "at Least 3"}},
		{PageProcessAdminGFA, models.GPAFilterResult{Applicants: []models.ApplicantSummary{}, GPAThreshold: 4}, []string{"No applicants match."}},
		{PageAdminRemove, AdminForm{}, []string{`action="/processAdminRemove"`}},
		{PageProcessAdminRemove, models.RemoveResult{DeletedCount: 1234}, []string{"1,234"}},
		{PageError, models.ErrorResponse{Error: "Bad Request", Message: "gpa must be a decimal number"}, []string{"Bad Request", "gpa must be a decimal number"}},
	}

	for _, tc := range testCases {
		t.Run(tc.page, func(t *testing.T) {
			w := httptest.NewRecorder()
			if err := r.Render(w, http.StatusOK, tc.page, tc.data); err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
				t.Errorf("Expected html content type, got %q", ct)
			}
			body := w.Body.String()
			for _, want := range tc.contains {
				if !strings.Contains(body, want) {
					t.Errorf("Expected page %s to contain %q", tc.page, want)
				}
			}
		})
	}
}

func TestRenderEscapesInput(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	data := models.ApplicationConfirmation{Applicant: models.Applicant{Name: "<script>alert(1)</script>"}}
	if err := r.Render(w, http.StatusCreated, PageProcessApplication, data); err != nil {
		t.Fatal(err)
	}

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "<script>alert(1)</script>") {
		t.Error("Expected applicant name to be escaped")
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	if err := r.Render(w, http.StatusOK, "missing", nil); err == nil {
		t.Error("Expected error for unknown page")
	}
	if w.Body.Len() != 0 {
		t.Error("Expected nothing written for unknown page")
	}
}

func TestStatic(t *testing.T) {
	req := httptest.NewRequest("GET", "/static/style.css", nil)
	w := httptest.NewRecorder()

	Static().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "text/css") {
		t.Errorf("Expected text/css, got %q", w.Header().Get("Content-Type"))
	}
}
