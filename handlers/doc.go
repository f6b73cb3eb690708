// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the gym-check API.

# Handler Types

Each handler wraps the attendance service:

  - StatusHandler: weekly board
  - UploadHandler: daily proof photo
  - UserHandler: user listing

	statusHandler := handlers.NewStatusHandler(svc)
	uploadHandler := handlers.NewUploadHandler(svc, cfg)

# Weekly Status

	GET /status → []StatusEntry

Each entry has the number of days logged Monday through Sunday of the
current week, the user's warning count, and the latest photo of the week
(thumbUrl/imageUrl, null when there is none).

# Upload Flow

	POST /upload (multipart: image, user_id) → {message, image_url}

One upload per user per calendar day. A second upload the same day, even
one racing the first, gets 400 with kind "already_submitted_today".

# Errors

Failures are returned as {"error": message, "kind": kind}:

	invalid_request, already_submitted_today       → 400
	storage_failure, persistence_failure,
	store_unavailable                              → 500

Uploads over the configured limit get 413.
*/
package handlers
