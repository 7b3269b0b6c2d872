// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /apply", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every request gets a request_id; handlers log through the
request-scoped logger so their lines carry the same id:

	middleware.Logger(r.Context()).Error("failed to insert applicant", "error", err)

# Response Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

WantsJSON reports whether the Accept header asks for application/json
instead of an HTML page.

# Request Bodies

FormValues reads the submitted fields from url-encoded, multipart or
JSON object bodies, so the same handler serves the HTML forms and API
clients:

	values, err := middleware.FormValues(r)
	name := values.Get("name")

JSON numbers are converted to their shortest decimal text.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
