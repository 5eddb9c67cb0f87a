package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "landing"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	BlocklistRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_blocklist_rejections_total",
			Help: "Total number of requests rejected by the IP blocklist",
		},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_login_attempts_total",
			Help: "Total number of login attempts by method and result",
		},
		[]string{"method", "result"},
	)

	HandoffTokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_handoff_tokens_issued_total",
			Help: "Total number of signed handoff tokens issued",
		},
	)
)
