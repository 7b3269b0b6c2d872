// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the camp application site.

# Handler Types

Each handler is a struct with store, renderer and config dependencies:

  - ApplicantHandler: form pages, application submission and review
  - AdminHandler: GPA filter and removal of every application

Handlers are created via constructor functions:

	applicants := handlers.NewApplicantHandler(store, renderer, cfg)

# Responses

Every POST route answers with an HTML page by default, or with JSON when
the request's Accept header asks for application/json. Errors follow the
same rule: an error page for browsers, an ErrorResponse body otherwise.
Store failures are logged with detail and reported to the client only as
"Database error".

# Admin Routes

When an admin key is configured, POST /processAdminGFA and
POST /processAdminRemove require it in the X-Admin-Key header or the
admin_key form field. Without a configured key they are open.
*/
package handlers
