// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielhkuo/camp-apply/middleware"
	"github.com/danielhkuo/camp-apply/models"
	"github.com/danielhkuo/camp-apply/views"
)

// responder writes pages or JSON depending on what the client accepts.
type responder struct {
	views *views.Renderer
}

// page renders a form page. Form pages are HTML only.
func (p responder) page(w http.ResponseWriter, r *http.Request, page string, data any) {
	if err := p.views.Render(w, http.StatusOK, page, data); err != nil {
		middleware.Logger(r.Context()).Error("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// respond writes a result payload.
func (p responder) respond(w http.ResponseWriter, r *http.Request, statusCode int, page string, data any) {
	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, statusCode, data)
		return
	}

	if err := p.views.Render(w, statusCode, page, data); err != nil {
		middleware.Logger(r.Context()).Error("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// fail writes an error response. Detail belongs in the log, not in message.
func (p responder) fail(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	if middleware.WantsJSON(r) {
		middleware.ErrorResponse(w, statusCode, message)
		return
	}

	data := models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	if err := p.views.Render(w, statusCode, views.PageError, data); err != nil {
		middleware.Logger(r.Context()).Error("failed to render error page", "error", err)
		http.Error(w, message, statusCode)
	}
}

// storeContext bounds a single store call.
func storeContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), timeout)
}
