// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics provides Prometheus metrics for the attendance server.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubmissionsTotal counts upload attempts by outcome.
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gymcheck",
			Name:      "submissions_total",
			Help:      "Total number of photo submissions by result",
		},
		[]string{"result"},
	)

	// UploadBytes observes accepted image sizes.
	UploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "gymcheck",
			Name:      "upload_bytes",
			Help:      "Size of accepted image uploads in bytes",
			Buckets:   prometheus.ExponentialBuckets(16*1024, 4, 7),
		},
	)

	// ReportedUsers is the user count in the last weekly report.
	ReportedUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gymcheck",
			Name:      "status_report_users",
			Help:      "Number of users in the most recent weekly status report",
		},
	)

	// RequestDuration measures HTTP handler latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gymcheck",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordSubmission records one submission outcome ("ok" or an error kind).
func RecordSubmission(result string) {
	SubmissionsTotal.WithLabelValues(result).Inc()
}

// RecordUpload records the size of an accepted upload.
func RecordUpload(size int) {
	UploadBytes.Observe(float64(size))
}

// SetReportedUsers sets the user count of the latest report.
func SetReportedUsers(n int) {
	ReportedUsers.Set(float64(n))
}

// RecordRequest records a completed HTTP request.
func RecordRequest(method, route string, status int, duration time.Duration) {
	RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
