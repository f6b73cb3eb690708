// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the records and JSON shapes shared across packages.

# Records

  - User: a group member with a warning count (managed outside this server)
  - ExerciseLog: one proof photo for one user on one calendar date

# Responses

  - StatusEntry: per-user weekly summary served by GET /status
  - UploadResponse: result of POST /upload
  - HealthResponse: {"status": "ok"}
  - ErrorResponse: {"error": "...", "kind": "..."}

Field names in StatusEntry are camelCase to match the mobile client;
everything else uses snake_case.
*/
package models
