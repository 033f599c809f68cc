// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by route pattern, method and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gw_translator",
		Name:      "http_requests_total",
		Help:      "Handled HTTP requests.",
	}, []string{"route", "method", "status"})

	// HTTPDuration observes request latency by route pattern.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gw_translator",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	// EngineCalls counts calls to external engines by engine and outcome.
	EngineCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gw_translator",
		Name:      "engine_calls_total",
		Help:      "Calls to external engines.",
	}, []string{"engine", "outcome"})

	// EngineDuration observes external engine latency.
	EngineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gw_translator",
		Name:      "engine_call_duration_seconds",
		Help:      "External engine call latency.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"engine"})
)

// ObserveEngineCall records the outcome and latency of one engine call.
func ObserveEngineCall(engine string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	EngineCalls.WithLabelValues(engine, outcome).Inc()
	EngineDuration.WithLabelValues(engine).Observe(time.Since(start).Seconds())
}
