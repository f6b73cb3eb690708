// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Call LoadDotEnv first to pick up a local .env file.

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type (sqlite or postgres)
	-blob            Blob backend (fs or azure)
	-blob-root       Directory for the fs backend
	-blob-url        Azure blob service URL
	-blob-container  Azure container
	-max-upload      Max upload size (10MB, 512KiB, ...)
	-tz              Time zone for day boundaries

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p (default 3318)
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t (default sqlite)
	BLOB_BACKEND    → -blob (default fs)
	BLOB_ROOT       → -blob-root (default ./uploads)
	BLOB_URL        → -blob-url
	BLOB_CONTAINER  → -blob-container (default exercise-images)
	MAX_UPLOAD_SIZE → -max-upload (default 10MB)
	TIMEZONE        → -tz (default: process local zone)

BLOB_ACCOUNT and BLOB_KEY are read from the environment only.

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or invalid,
so misconfiguration fails at startup rather than on the first request:

  - DATABASE_URL must be provided
  - BLOB_URL, BLOB_ACCOUNT, BLOB_KEY must be provided for the azure backend
  - MAX_UPLOAD_SIZE and TIMEZONE must parse
*/
package cliparse
