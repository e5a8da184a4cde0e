// Package metrics provides Prometheus instrumentation for outgoing backend
// calls. The rest client records every request here; an embedding application
// can expose DefaultRegistry through its own /metrics endpoint, and the CLI
// simply never scrapes it.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// RequestDuration tracks how long each backend call takes,
	// broken down by method, endpoint path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "labelsight",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Duration of backend API requests in seconds.",
			Buckets:   prometheus.DefBuckets, // .005 .01 .025 .05 .1 .25 .5 1 2.5 5 10
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all backend calls.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "labelsight",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of backend API requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many backend calls are currently pending.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "labelsight",
		Subsystem: "api",
		Name:      "requests_in_flight",
		Help:      "Number of backend API requests currently in flight.",
	})

	// SessionExpirations counts 401 responses, i.e. forced logouts.
	SessionExpirations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "labelsight",
		Subsystem: "api",
		Name:      "session_expirations_total",
		Help:      "Total number of calls rejected with HTTP 401.",
	})
)

// DefaultRegistry is the Prometheus registry used by labelsight.
// Register your own metrics against this.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		SessionExpirations,
	)
}

// Register lets you add your own prometheus.Collector to the registry.
func Register(c prometheus.Collector) error {
	return DefaultRegistry.Register(c)
}

// ObserveRequest records one completed backend call.
func ObserveRequest(method, path, status string, elapsed time.Duration) {
	RequestDuration.WithLabelValues(method, path, status).Observe(elapsed.Seconds())
	RequestTotal.WithLabelValues(method, path, status).Inc()
}
