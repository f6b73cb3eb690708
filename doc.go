// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the gym-check API server.

gym-check keeps a small group honest about exercising: each member
uploads one photo a day as proof, and a weekly board shows how many days
everyone has done this week alongside their warning count.

# Starting the Server

The server reads environment variables (optionally from .env) or CLI flags:

	DATABASE_URL=file:gym.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - BLOB_BACKEND (-blob): fs or azure (default: fs)
  - MAX_UPLOAD_SIZE (-max-upload): default 10MB
  - TIMEZONE (-tz): calendar used for "today" and week boundaries

# Architecture

The server uses a handler-based architecture with dependency injection:

  - attendance: week window, weekly report, daily submission rules
  - store: SQL record store (users, exercise logs)
  - blob: image storage (filesystem or Azure)
  - handlers: HTTP request handlers (status, upload, users)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - metrics: Prometheus collectors
  - models: Records and response types
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
