// Package metrics holds the Prometheus collectors exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled HTTP requests by method, path pattern
	// and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_http_requests_total",
		Help: "Total HTTP requests handled.",
	}, []string{"method", "path", "status"})

	// RequestDuration observes request latency by method and path pattern.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "portfolio_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// SubmissionsTotal counts contact submissions by outcome:
	// accepted, rejected, store_error.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_contact_submissions_total",
		Help: "Contact form submissions by outcome.",
	}, []string{"outcome"})

	// NotificationFailures counts failed best-effort mail deliveries by
	// kind: notification, confirmation.
	NotificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_notification_failures_total",
		Help: "Failed contact notification mail deliveries.",
	}, []string{"kind"})
)
