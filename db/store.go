// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/camp-apply/cliparse"
	"github.com/danielhkuo/camp-apply/models"
)

var ErrUnsupportedDatabase = errors.New("unsupported database type")

// Store is the applicant collection.
// Implementations must be safe for concurrent use.
type Store interface {
	// Insert persists a new applicant and returns its identifier.
	// Duplicate emails are allowed.
	Insert(ctx context.Context, applicant models.Applicant) (string, error)

	// FindByEmail returns the earliest inserted applicant with the email,
	// or nil with no error when there is none.
	FindByEmail(ctx context.Context, email string) (*models.Applicant, error)

	// FindWhereGPAAtLeast returns every applicant with gpa >= threshold,
	// highest gpa first.
	FindWhereGPAAtLeast(ctx context.Context, threshold float64) ([]models.ApplicantSummary, error)

	// DeleteAll removes every applicant and reports how many were removed.
	DeleteAll(ctx context.Context) (int64, error)

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open connects to the store selected by cfg.DatabaseType and verifies
// the connection.
func Open(ctx context.Context, cfg cliparse.Config) (Store, error) {
	switch cfg.DatabaseType {
	case models.DatabaseMongo:
		s, err := OpenMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName, cfg.CollectionName)
		if err != nil {
			return nil, err
		}
		return s, nil
	case models.DatabasePostgres, models.DatabaseSQLite:
		s, err := OpenSQL(ctx, cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDatabase, cfg.DatabaseType)
	}
}
