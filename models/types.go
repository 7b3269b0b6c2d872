// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Store backend constants
const (
	DatabaseMongo    = "mongo"
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

// Default document store location, matching the course database
const (
	DefaultDatabaseName   = "CMSC335DB"
	DefaultCollectionName = "campApplicants"
)

// Domain types

type Applicant struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	GPA         float64   `json:"gpa"`
	Background  string    `json:"background"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ApplicantSummary is the admin view of an applicant.
// Email and background are never part of it.
type ApplicantSummary struct {
	Name string  `json:"name"`
	GPA  float64 `json:"gpa"`
}

// Request types (decoded from url-encoded forms)

type ApplicationRequest struct {
	Name       string
	Email      string
	GPA        string
	Background string
}

type ReviewRequest struct {
	Email string
}

type GPAFilterRequest struct {
	GPA string
}

// Response types

type ApplicationConfirmation struct {
	Applicant   Applicant `json:"applicant"`
	CurrentTime time.Time `json:"current_time"`
}

type ReviewResult struct {
	Applicant   *Applicant `json:"applicant"`
	Found       bool       `json:"found"`
	CurrentTime time.Time  `json:"current_time"`
}

type GPAFilterResult struct {
	Applicants   []ApplicantSummary `json:"applicants"`
	GPAThreshold float64            `json:"gpa_threshold"`
}

type RemoveResult struct {
	DeletedCount int64 `json:"deleted_count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
