// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/gym-check/attendance"
	"github.com/danielhkuo/gym-check/metrics"
	"github.com/danielhkuo/gym-check/middleware"
)

type StatusHandler struct {
	svc *attendance.Service
}

func NewStatusHandler(svc *attendance.Service) *StatusHandler {
	return &StatusHandler{svc: svc}
}

// GetStatus handles GET /status
// Returns this week's count, latest photo and warning count for every user
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.WeeklyStatus(r.Context())
	if err != nil {
		writeServiceError(w, "weekly status", err)
		return
	}

	metrics.SetReportedUsers(len(entries))
	middleware.JSONResponse(w, http.StatusOK, entries)
}
