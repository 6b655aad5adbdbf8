package middleware

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "expensetracker_http_requests_total",
		Help: "HTTP requests processed, by handler, method and status code.",
	}, []string{"handler", "code", "method"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "expensetracker_http_request_duration_seconds",
		Help:    "HTTP request latency, by handler and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"handler", "method"})
)

// Instrument records request counts and latency for one route under the
// given handler name.
func Instrument(handler string, next http.Handler) http.Handler {
	labels := prometheus.Labels{"handler": handler}
	return promhttp.InstrumentHandlerDuration(
		requestDuration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(requestsTotal.MustCurryWith(labels), next),
	)
}
