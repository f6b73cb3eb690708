// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the gym-check API.

# Routes

	GET  /health      → {"status":"ok"}
	GET  /api/status  → {"status":"ok"} (serverless deployment path)
	GET  /status      → weekly status for every user
	POST /upload      → daily proof photo (also POST /api/upload)
	GET  /users       → all users (also GET /api/users)
	GET  /metrics     → Prometheus metrics
	GET  /            → banner

# Usage

	svc := attendance.NewService(records, blobs)
	mux := router.NewRouter(svc, cfg)
	http.ListenAndServe(":3318", middleware.CORS(mux))

API routes are wrapped with middleware.WithLogging.
*/
package router
