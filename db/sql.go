// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/camp-apply/models"
)

// SQLStore keeps applicants in a relational table.
// dialect is models.DatabasePostgres or models.DatabaseSQLite.
type SQLStore struct {
	conn    *sql.DB
	dialect string
}

// OpenSQL opens a postgres or sqlite database, pings it and creates the schema.
func OpenSQL(ctx context.Context, dialect, dsn string) (*SQLStore, error) {
	if dialect != models.DatabasePostgres && dialect != models.DatabaseSQLite {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDatabase, dialect)
	}

	if dialect == models.DatabaseSQLite {
		dsn = sqliteDSN(dsn)
	}

	conn, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	if dialect == models.DatabaseSQLite && strings.Contains(dsn, ":memory:") {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := CreateSchema(ctx, conn, dialect); err != nil {
		conn.Close()
		return nil, err
	}

	return NewSQLStore(conn, dialect), nil
}

// sqliteDSN puts the pragmas in the DSN so every pooled connection gets them.
func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// NewSQLStore wraps an open connection whose schema already exists.
func NewSQLStore(conn *sql.DB, dialect string) *SQLStore {
	return &SQLStore{conn: conn, dialect: dialect}
}

// DB exposes the underlying connection, mainly for tests.
func (s *SQLStore) DB() *sql.DB {
	return s.conn
}

// rebind rewrites ? placeholders to $N for postgres.
func (s *SQLStore) rebind(query string) string {
	if s.dialect != models.DatabasePostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SQLStore) Insert(ctx context.Context, applicant models.Applicant) (string, error) {
	id := uuid.NewString()
	submittedAt := applicant.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now()
	}

	_, err := s.conn.ExecContext(ctx, s.rebind(`
		INSERT INTO applicant (id, name, email, gpa, background, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), id, applicant.Name, applicant.Email, applicant.GPA, applicant.Background, submittedAt.UnixNano())
	if err != nil {
		return "", fmt.Errorf("failed to insert applicant: %w", err)
	}

	return id, nil
}

func (s *SQLStore) FindByEmail(ctx context.Context, email string) (*models.Applicant, error) {
	var applicant models.Applicant
	var submittedAt int64
	err := s.conn.QueryRowContext(ctx, s.rebind(`
		SELECT id, name, email, gpa, background, submitted_at
		FROM applicant
		WHERE email = ?
		ORDER BY seq
		LIMIT 1
	`), email).Scan(
		&applicant.ID, &applicant.Name, &applicant.Email,
		&applicant.GPA, &applicant.Background, &submittedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query applicant: %w", err)
	}

	applicant.SubmittedAt = time.Unix(0, submittedAt)
	return &applicant, nil
}

func (s *SQLStore) FindWhereGPAAtLeast(ctx context.Context, threshold float64) ([]models.ApplicantSummary, error) {
	rows, err := s.conn.QueryContext(ctx, s.rebind(`
		SELECT name, gpa
		FROM applicant
		WHERE gpa >= ?
		ORDER BY gpa DESC, name
	`), threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to query applicants: %w", err)
	}
	defer rows.Close()

	applicants := []models.ApplicantSummary{}
	for rows.Next() {
		var a models.ApplicantSummary
		if err := rows.Scan(&a.Name, &a.GPA); err != nil {
			return nil, fmt.Errorf("failed to scan applicant: %w", err)
		}
		applicants = append(applicants, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applicants: %w", err)
	}

	return applicants, nil
}

func (s *SQLStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM applicant`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete applicants: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted applicants: %w", err)
	}
	return n, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *SQLStore) Close(context.Context) error {
	return s.conn.Close()
}
