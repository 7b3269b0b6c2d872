// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is the applicant store.

# Store Interface

Handlers only see the Store interface:

	Insert(ctx, applicant)          → id
	FindByEmail(ctx, email)         → *Applicant or nil
	FindWhereGPAAtLeast(ctx, gpa)   → []ApplicantSummary ({name, gpa} only)
	DeleteAll(ctx)                  → deleted count

Every call is one round trip. There is no caching and no retry.

# Opening a Store

Open picks a backend from the configuration, connects and pings:

	store, err := db.Open(ctx, cfg)
	if err != nil {
		// fatal at startup
	}
	defer store.Close(ctx)

# Backends

  - mongo: one collection (default CMSC335DB.campApplicants)
  - postgres: table applicant, via lib/pq
  - sqlite: table applicant, via modernc.org/sqlite (":memory:" in tests)

# Schema

CreateSchema initializes the SQL table and is safe to call multiple times:

	applicant(seq, id, name, email, gpa, background, submitted_at)

seq is the insertion order (BIGSERIAL on postgres, AUTOINCREMENT on
sqlite); id is the UUID returned to clients. Email is not unique;
duplicate submissions are kept and FindByEmail returns the lowest seq.
SQLite connections open with busy_timeout and WAL journaling set in the
DSN.
*/
package db
