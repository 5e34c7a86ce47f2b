package apiclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collectors returns the Prometheus collectors of the backend client.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{backendRequestCount, backendRequestDuration}
}

var backendRequestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "backend_requests_total",
		Help: "How many requests were sent to the finance backend, partitioned by resource, HTTP method and status code.",
	},
	[]string{"resource", "method", "code"},
)

var backendRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "backend_request_duration_seconds",
		Help: "The finance backend request latencies in seconds.",
	},
	[]string{"resource", "method", "code"},
)

func observe(resource, method, code string, start time.Time) {
	elapsed := float64(time.Since(start)) / float64(time.Second)

	backendRequestCount.WithLabelValues(resource, method, code).Inc()
	backendRequestDuration.WithLabelValues(resource, method, code).Observe(elapsed)
}
