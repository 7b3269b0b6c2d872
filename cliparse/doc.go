// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (required)
  - DatabaseURL: Store connection string (required)
  - DatabaseType: mongo (default), postgres or sqlite
  - DatabaseName, CollectionName: MongoDB location (default CMSC335DB / campApplicants)
  - AdminKey: Optional key guarding the admin routes
  - LogLevel: slog level (default info)
  - StoreTimeout: Per-operation store timeout (default 10s)
  - ShutdownTimeout: Grace period for in-flight requests on stop (default 5s)

# CLI Flags

Flags come before the positional port:

	camp-apply [flags] <port>

	-p                Server port (alternative to the positional argument)
	-d                Connection string
	-t                Database type
	--db-name         MongoDB database name
	--collection      MongoDB collection name
	--admin-key       Admin key
	--env             Env file (default credentialsDontPost/.env)
	--log-level       debug, info, warn or error
	--store-timeout   e.g. 5s
	--shutdown-timeout e.g. 10s

# Environment Variables

The env file is loaded first; variables already present in the process
environment win over the file. Flags then fall back to:

	PORT                     → <port>, -p
	MONGO_CONNECTION_STRING  → -d
	DATABASE_URL             → -d (when MONGO_CONNECTION_STRING is unset)
	DATABASE_TYPE            → -t
	DATABASE_NAME            → --db-name
	COLLECTION_NAME          → --collection
	ADMIN_KEY                → --admin-key
	LOG_LEVEL                → --log-level

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - no port is given, or it is not a number in 1-65535
  - no connection string is given
  - the database type or log level is unknown
*/
package cliparse
