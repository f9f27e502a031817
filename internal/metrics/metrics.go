// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

// Package metrics provides Prometheus instrumentation for Poemclock:
// API latency and throughput, schedule build cost, compose traffic by time
// source, and content pool size. Exposed at GET /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Scheduling engine metrics
	ScheduleBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "schedule_build_duration_seconds",
			Help:    "Duration of daily schedule builds in seconds",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		},
	)

	ComposeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compose_requests_total",
			Help: "Total number of compose requests by time source",
		},
		[]string{"source"}, // "time24", "instant", "now"
	)

	ContentPoolItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "content_pool_items",
			Help: "Number of items in the loaded content pool",
		},
	)
)

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the active request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// ObserveScheduleBuild records the cost of one daily schedule build.
func ObserveScheduleBuild(duration time.Duration) {
	ScheduleBuildDuration.Observe(duration.Seconds())
}

// RecordCompose counts a compose request by its resolved time source.
func RecordCompose(source string) {
	ComposeRequestsTotal.WithLabelValues(source).Inc()
}

// SetContentPoolItems publishes the loaded pool size.
func SetContentPoolItems(n int) {
	ContentPoolItems.Set(float64(n))
}
