// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/gym-check/attendance"
	"github.com/danielhkuo/gym-check/cliparse"
	"github.com/danielhkuo/gym-check/handlers"
	"github.com/danielhkuo/gym-check/middleware"
	"github.com/danielhkuo/gym-check/models"
)

func NewRouter(svc *attendance.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	statusHandler := handlers.NewStatusHandler(svc)
	uploadHandler := handlers.NewUploadHandler(svc, cfg)
	userHandler := handlers.NewUserHandler(svc)

	// Health check
	health := func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{Status: "ok"})
	}
	mux.HandleFunc("GET /health", health)
	mux.HandleFunc("GET /api/status", health)

	// Weekly report
	mux.HandleFunc("GET /status", middleware.WithLogging(statusHandler.GetStatus))

	// Daily proof upload
	mux.HandleFunc("POST /upload", middleware.WithLogging(uploadHandler.Upload))
	mux.HandleFunc("POST /api/upload", middleware.WithLogging(uploadHandler.Upload))

	// Users
	mux.HandleFunc("GET /users", middleware.WithLogging(userHandler.ListUsers))
	mux.HandleFunc("GET /api/users", middleware.WithLogging(userHandler.ListUsers))

	mux.Handle("GET /metrics", promhttp.Handler())

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("gym-check API v1"))
	})

	return mux
}
