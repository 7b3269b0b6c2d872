// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/camp-apply/models"
)

// CreateSchema creates the applicant table for the given dialect.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, conn *sql.DB, dialect string) error {
	stmts := []string{postgresTable, applicantIndexes[0], applicantIndexes[1]}
	if dialect == models.DatabaseSQLite {
		stmts[0] = sqliteTable
	}

	for _, stmt := range stmts {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// seq records insertion order; id is the identifier handed to clients.
// submitted_at is unix nanoseconds.
const postgresTable = `CREATE TABLE IF NOT EXISTS applicant (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    gpa DOUBLE PRECISION NOT NULL,
    background TEXT NOT NULL DEFAULT '',
    submitted_at BIGINT NOT NULL
)`

const sqliteTable = `CREATE TABLE IF NOT EXISTS applicant (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    gpa DOUBLE PRECISION NOT NULL,
    background TEXT NOT NULL DEFAULT '',
    submitted_at BIGINT NOT NULL
)`

var applicantIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_applicant_email ON applicant(email, seq)`,
	`CREATE INDEX IF NOT EXISTS idx_applicant_gpa ON applicant(gpa)`,
}
