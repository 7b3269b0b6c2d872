// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the camp application server.

Applicants submit a form with their name, email, GPA and background,
and can later look their application up by email. Administrators can list
applicants at or above a GPA threshold and remove every application.

# Starting the Server

The port is the single positional argument. The connection string comes
from the environment or a flag:

	MONGO_CONNECTION_STRING=mongodb://... go run . 4000

Or with flags:

	go run . -p 4000 -t sqlite -d camp.db

Once running, type "stop" to shut the server down.

# Configuration

Settings are read from credentialsDontPost/.env (see -env) before the
environment and flags:

  - PORT (-p): Server port, when no positional argument is given
  - MONGO_CONNECTION_STRING or DATABASE_URL (-d): Store connection string
  - DATABASE_TYPE (-t): mongo (default), postgres or sqlite
  - DATABASE_NAME (-db-name), COLLECTION_NAME (-collection): Mongo names
  - ADMIN_KEY (-admin-key): Optional key guarding the admin routes
  - LOG_LEVEL (-log-level): debug, info, warn or error

# Architecture

  - handlers: HTTP request handlers (applicants, admin, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, content negotiation, form and JSON helpers
  - views: Embedded HTML templates and stylesheet
  - models: Applicant and request/response types
  - auth: Admin key validation
  - db: Store interface with MongoDB, PostgreSQL and SQLite backends
  - lifecycle: Listener and console stop command
  - cliparse: Configuration parsing

The process exits 0 after a graceful stop and 1 when configuration, the
store connection or the listener fails.
*/
package main
