// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/gym-check/attendance"
	"github.com/danielhkuo/gym-check/cliparse"
	"github.com/danielhkuo/gym-check/metrics"
	"github.com/danielhkuo/gym-check/middleware"
	"github.com/danielhkuo/gym-check/models"
)

// multipart field names
const (
	imageField  = "image"
	userIDField = "user_id"
)

type UploadHandler struct {
	svc *attendance.Service
	cfg cliparse.Config
}

func NewUploadHandler(svc *attendance.Service, cfg cliparse.Config) *UploadHandler {
	return &UploadHandler{svc: svc, cfg: cfg}
}

// Upload handles POST /upload
// Multipart body with an "image" file and a "user_id" field
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			metrics.RecordSubmission("too_large")
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, string(attendance.KindInvalidRequest),
				"Upload exceeds "+humanize.Bytes(uint64(h.cfg.MaxUploadBytes)))
			return
		}
		metrics.RecordSubmission(string(attendance.KindInvalidRequest))
		middleware.ErrorResponse(w, http.StatusBadRequest, string(attendance.KindInvalidRequest), "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(imageField)
	if err != nil {
		metrics.RecordSubmission(string(attendance.KindInvalidRequest))
		middleware.ErrorResponse(w, http.StatusBadRequest, string(attendance.KindInvalidRequest), "No file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("failed to read uploaded file", "error", err)
		metrics.RecordSubmission(string(attendance.KindInvalidRequest))
		middleware.ErrorResponse(w, http.StatusBadRequest, string(attendance.KindInvalidRequest), "Failed to read upload")
		return
	}

	imageURL, err := h.svc.Submit(r.Context(), attendance.Submission{
		UserID:      r.FormValue(userIDField),
		Image:       data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	})
	if err != nil {
		metrics.RecordSubmission(string(attendance.KindOf(err)))
		writeServiceError(w, "submission", err)
		return
	}

	metrics.RecordSubmission("ok")
	metrics.RecordUpload(len(data))

	middleware.JSONResponse(w, http.StatusOK, models.UploadResponse{
		Message:  "Submission recorded",
		ImageURL: imageURL,
	})
}
