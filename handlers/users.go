// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/gym-check/attendance"
	"github.com/danielhkuo/gym-check/middleware"
)

type UserHandler struct {
	svc *attendance.Service
}

func NewUserHandler(svc *attendance.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Users(r.Context())
	if err != nil {
		writeServiceError(w, "list users", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, users)
}
