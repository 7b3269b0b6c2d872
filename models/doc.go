// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the service.

# Domain Types

  - Applicant: name, email, gpa, background, submitted_at
  - ApplicantSummary: the {name, gpa} projection shown to admins

# Request Types

Decoded from url-encoded form bodies:

  - ApplicationRequest: name, email, gpa, background
  - ReviewRequest: email
  - GPAFilterRequest: gpa

# Response Types

Render payloads, written as HTML or JSON:

  - ApplicationConfirmation: applicant, current_time
  - ReviewResult: applicant (or null), found, current_time
  - GPAFilterResult: applicants, gpa_threshold
  - RemoveResult: deleted_count
  - ErrorResponse: error, message

# GPA Validation

Form input is validated before any store operation:

	gpa, err := models.ParseGPA(r.PostFormValue("gpa"))
	if errors.Is(err, models.ErrInvalidGPA) {
		// 400
	}

Empty input, non-numeric text, NaN and infinities are rejected. There is
no range check.

# Constants

Store backends:

	DatabaseMongo    = "mongo"
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
*/
package models
