// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/camp-apply/cliparse"
	"github.com/danielhkuo/camp-apply/db"
	"github.com/danielhkuo/camp-apply/middleware"
	"github.com/danielhkuo/camp-apply/models"
	"github.com/danielhkuo/camp-apply/views"
)

type ApplicantHandler struct {
	responder
	store db.Store
	cfg   cliparse.Config
}

func NewApplicantHandler(store db.Store, renderer *views.Renderer, cfg cliparse.Config) *ApplicantHandler {
	return &ApplicantHandler{
		responder: responder{views: renderer},
		store:     store,
		cfg:       cfg,
	}
}

// Index handles GET /
func (h *ApplicantHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, views.PageIndex, nil)
}

// ApplyForm handles GET /apply
func (h *ApplicantHandler) ApplyForm(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, views.PageApply, nil)
}

// FindForm handles GET /find
func (h *ApplicantHandler) FindForm(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, views.PageFind, models.ReviewResult{})
}

// ReviewForm handles GET /reviewApplication
func (h *ApplicantHandler) ReviewForm(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, views.PageReviewApplication, nil)
}

// SubmitApplication handles POST /apply
func (h *ApplicantHandler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	logger := middleware.Logger(r.Context())

	values, err := middleware.FormValues(r)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, "Invalid form body")
		return
	}

	req := models.ApplicationRequest{
		Name:       strings.TrimSpace(values.Get("name")),
		Email:      strings.TrimSpace(values.Get("email")),
		GPA:        values.Get("gpa"),
		Background: strings.TrimSpace(values.Get("background")),
	}

	// Validate input
	if req.Name == "" {
		h.fail(w, r, http.StatusBadRequest, "name is required")
		return
	}
	if req.Email == "" {
		h.fail(w, r, http.StatusBadRequest, "email is required")
		return
	}
	gpa, err := models.ParseGPA(req.GPA)
	if errors.Is(err, models.ErrInvalidGPA) {
		h.fail(w, r, http.StatusBadRequest, err.Error())
		return
	}

	applicant := models.Applicant{
		Name:        req.Name,
		Email:       req.Email,
		GPA:         gpa,
		Background:  req.Background,
		SubmittedAt: time.Now(),
	}

	ctx, cancel := storeContext(r, h.cfg.StoreTimeout)
	defer cancel()

	id, err := h.store.Insert(ctx, applicant)
	if err != nil {
		logger.Error("failed to insert applicant", "error", err)
		h.fail(w, r, http.StatusInternalServerError, "Database error")
		return
	}
	applicant.ID = id

	logger.Info("application submitted", "applicant_id", id)

	h.respond(w, r, http.StatusCreated, views.PageProcessApplication, models.ApplicationConfirmation{
		Applicant:   applicant,
		CurrentTime: time.Now(),
	})
}

// ReviewApplication handles POST /reviewApplication
// A missing applicant is a normal result, not an error.
func (h *ApplicantHandler) ReviewApplication(w http.ResponseWriter, r *http.Request) {
	logger := middleware.Logger(r.Context())

	values, err := middleware.FormValues(r)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, "Invalid form body")
		return
	}

	req := models.ReviewRequest{Email: strings.TrimSpace(values.Get("email"))}
	if req.Email == "" {
		h.fail(w, r, http.StatusBadRequest, "email is required")
		return
	}

	ctx, cancel := storeContext(r, h.cfg.StoreTimeout)
	defer cancel()

	applicant, err := h.store.FindByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("failed to find applicant", "error", err)
		h.fail(w, r, http.StatusInternalServerError, "Database error")
		return
	}

	logger.Debug("application reviewed", "found", applicant != nil)

	h.respond(w, r, http.StatusOK, views.PageProcessReviewApplication, models.ReviewResult{
		Applicant:   applicant,
		Found:       applicant != nil,
		CurrentTime: time.Now(),
	})
}
