// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/camp-apply/auth"
	"github.com/danielhkuo/camp-apply/cliparse"
	"github.com/danielhkuo/camp-apply/db"
	"github.com/danielhkuo/camp-apply/middleware"
	"github.com/danielhkuo/camp-apply/models"
	"github.com/danielhkuo/camp-apply/views"
)

type AdminHandler struct {
	responder
	store db.Store
	cfg   cliparse.Config
}

func NewAdminHandler(store db.Store, renderer *views.Renderer, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{
		responder: responder{views: renderer},
		store:     store,
		cfg:       cfg,
	}
}

// authorize validates the admin key and writes the 401 itself.
// Call it after the form has been parsed.
func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	err := auth.ValidateAdminKey(auth.AdminKeyFromRequest(r), h.cfg.AdminKey)
	if err == nil {
		return true
	}

	middleware.Logger(r.Context()).Warn("admin request rejected",
		"path", r.URL.Path,
		"remote", middleware.GetClientIP(r),
		"error", err,
	)
	if errors.Is(err, auth.ErrMissingAdminKey) {
		h.fail(w, r, http.StatusUnauthorized, "Admin key required")
	} else {
		h.fail(w, r, http.StatusUnauthorized, "Invalid admin key")
	}
	return false
}

func (h *AdminHandler) adminForm() views.AdminForm {
	return views.AdminForm{AdminKeyRequired: h.cfg.AdminKey != ""}
}

// GPAForm handles GET /adminGFA
func (h *AdminHandler) GPAForm(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, views.PageAdminGFA, h.adminForm())
}

// RemoveForm handles GET /adminRemove
func (h *AdminHandler) RemoveForm(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, views.PageAdminRemove, h.adminForm())
}

// ProcessGPAFilter handles POST /processAdminGFA
func (h *AdminHandler) ProcessGPAFilter(w http.ResponseWriter, r *http.Request) {
	logger := middleware.Logger(r.Context())

	values, err := middleware.FormValues(r)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, "Invalid form body")
		return
	}

	if !h.authorize(w, r) {
		return
	}

	req := models.GPAFilterRequest{GPA: values.Get("gpa")}
	threshold, err := models.ParseGPA(req.GPA)
	if errors.Is(err, models.ErrInvalidGPA) {
		h.fail(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := storeContext(r, h.cfg.StoreTimeout)
	defer cancel()

	applicants, err := h.store.FindWhereGPAAtLeast(ctx, threshold)
	if err != nil {
		logger.Error("failed to filter applicants", "gpa_threshold", threshold, "error", err)
		h.fail(w, r, http.StatusInternalServerError, "Database error")
		return
	}

	logger.Info("applicants filtered", "gpa_threshold", threshold, "count", len(applicants))

	h.respond(w, r, http.StatusOK, views.PageProcessAdminGFA, models.GPAFilterResult{
		Applicants:   applicants,
		GPAThreshold: threshold,
	})
}

// ProcessRemove handles POST /processAdminRemove
func (h *AdminHandler) ProcessRemove(w http.ResponseWriter, r *http.Request) {
	logger := middleware.Logger(r.Context())

	if _, err := middleware.FormValues(r); err != nil {
		h.fail(w, r, http.StatusBadRequest, "Invalid form body")
		return
	}

	if !h.authorize(w, r) {
		return
	}

	ctx, cancel := storeContext(r, h.cfg.StoreTimeout)
	defer cancel()

	deleted, err := h.store.DeleteAll(ctx)
	if err != nil {
		logger.Error("failed to delete applicants", "error", err)
		h.fail(w, r, http.StatusInternalServerError, "Database error")
		return
	}

	logger.Info("applicants removed", "deleted_count", deleted)

	h.respond(w, r, http.StatusOK, views.PageProcessAdminRemove, models.RemoveResult{
		DeletedCount: deleted,
	})
}
