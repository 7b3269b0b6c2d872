// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the camp application site.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, renderer, cfg)

# Endpoints

Health and assets:

	GET /health
	GET /static/...

Applicants:

	GET  /                   - Landing page
	GET  /apply              - Application form
	POST /apply              - Submit an application
	GET  /find               - Lookup form
	GET  /reviewApplication  - Review form
	POST /reviewApplication  - Look up an application by email

Admin (requires the admin key when one is configured):

	GET  /adminGFA           - GPA filter form
	POST /processAdminGFA    - List applicants at or above a GPA
	GET  /adminRemove        - Removal confirmation form
	POST /processAdminRemove - Remove every application

Any other path answers 404; a known path with the wrong method answers 405.
*/
package router
