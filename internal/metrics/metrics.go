// Package metrics exposes Prometheus collectors for upstream calls and the HTTP API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wisdom",
		Name:      "upstream_requests_total",
		Help:      "Requests sent to upstream services, by service and outcome.",
	}, []string{"service", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wisdom",
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of upstream requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wisdom",
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wisdom",
		Name:      "http_request_duration_seconds",
		Help:      "Latency of HTTP requests served.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Upstream outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeStatus    = "status_error"
	OutcomeTransport = "transport_error"
	OutcomeParse     = "parse_error"
)

// ObserveUpstream records one upstream call.
func ObserveUpstream(service, outcome string, started time.Time) {
	upstreamRequests.WithLabelValues(service, outcome).Inc()
	upstreamDuration.WithLabelValues(service).Observe(time.Since(started).Seconds())
}

// ObserveHTTP records one served request.
func ObserveHTTP(method, route string, status int, started time.Time) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(time.Since(started).Seconds())
}
