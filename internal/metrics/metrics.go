// Package metrics declares the Prometheus collectors exported on /metrics.
// Collectors are registered on the default registry at package init.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values.
const (
	OutcomeCommit   = "commit"
	OutcomeRollback = "rollback"

	DecisionAllowed  = "allowed"
	DecisionRejected = "rejected"
	DecisionError    = "error"

	StatusSuccess    = "success"
	StatusError      = "error"
	StatusScriptMiss = "script_miss"
)

// HTTP Metrics
var (
	// HTTPRequestsTotal counts finished requests by method, chi route pattern
	// and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Rate Limiter Metrics
var (
	// RateLimitDecisions counts limiter verdicts (allowed/rejected/error)
	RateLimitDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratelimit_decisions_total",
			Help: "Rate limiter decisions by result",
		},
		[]string{"decision"},
	)

	// RateLimitTrackedKeys tracks the number of client keys held by the
	// in-process limiter stores
	RateLimitTrackedKeys = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ratelimit_tracked_keys",
			Help: "Client keys currently held by in-process rate limiter stores",
		},
		[]string{"strategy"},
	)
)

// Database Metrics
var (
	// DBSessionsTotal counts finished request sessions by outcome
	DBSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_sessions_total",
			Help: "Database sessions by outcome (commit/rollback)",
		},
		[]string{"outcome"},
	)
)

// Redis Operations Metrics
var (
	// RedisOpsTotal tracks total Redis operations by operation type and status
	RedisOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_operations_total",
			Help: "Total Redis operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// RedisOpDuration tracks Redis operation latency in seconds
	RedisOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_operation_duration_seconds",
			Help:    "Redis operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// RedisConnectionErrors tracks Redis connection errors
	RedisConnectionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redis_connection_errors_total",
			Help: "Total Redis connection errors",
		},
	)
)

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
