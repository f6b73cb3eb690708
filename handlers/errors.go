// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/gym-check/attendance"
	"github.com/danielhkuo/gym-check/middleware"
)

// statusForKind maps service error kinds to HTTP status codes
func statusForKind(kind attendance.Kind) int {
	switch kind {
	case attendance.KindInvalidRequest, attendance.KindAlreadySubmitted:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError writes err as {error, kind}. Only the client-facing
// message leaves the server; the cause is logged.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	var e *attendance.Error
	if !errors.As(err, &e) {
		slog.Error(op+" failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "", "Internal error")
		return
	}

	status := statusForKind(e.Kind)
	if status >= http.StatusInternalServerError {
		slog.Error(op+" failed", "kind", e.Kind, "error", err)
	}
	middleware.ErrorResponse(w, status, string(e.Kind), e.Message)
}
