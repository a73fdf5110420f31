// Package metrics registers the Prometheus collectors for HTTP traffic and
// database access.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status_code"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"route", "method", "status_code"})

	dbRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_request_duration_seconds",
		Help:    "Duration of database requests.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
	}, []string{"operation", "outcome"})
)

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(route, method string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	httpRequestDuration.WithLabelValues(route, method, code).Observe(duration.Seconds())
	httpRequestsTotal.WithLabelValues(route, method, code).Inc()
}

// ObserveDBRequest records one database round trip. Intended for use as
// `defer metrics.ObserveDBRequest("users.get", time.Now(), &err)`.
func ObserveDBRequest(operation string, start time.Time, err *error) {
	outcome := "ok"
	if err != nil && *err != nil {
		outcome = "error"
	}
	dbRequestDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
}
