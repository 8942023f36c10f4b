// Package metrics holds the Prometheus collectors shared by the HTTP layer and
// the background workers.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HTTP groups the collectors describing served requests.
type HTTP struct {
	// RequestDuration observes request latency labelled by method, route pattern and status code.
	RequestDuration *prometheus.HistogramVec
	// InFlight counts requests currently being served.
	InFlight prometheus.Gauge
}

// NewHTTP creates the HTTP collectors and registers them with reg.
func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	m := &HTTP{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "foodgram",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of served HTTP requests.",
			Buckets:   DefaultBuckets,
		}, []string{"method", "route", "code"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "foodgram",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
	}

	for _, c := range []prometheus.Collector{m.RequestDuration, m.InFlight} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("could not register http collector: %w", err)
		}
	}

	return m, nil
}

// Jobs groups the collectors describing background job execution.
type Jobs struct {
	// Processed counts finished jobs labelled by kind and outcome.
	Processed *prometheus.CounterVec
}

// NewJobs creates the job collectors and registers them with reg.
func NewJobs(reg prometheus.Registerer) (*Jobs, error) {
	m := &Jobs{
		Processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "foodgram",
			Subsystem: "jobs",
			Name:      "processed_total",
			Help:      "Background jobs processed, by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}
	if err := reg.Register(m.Processed); err != nil {
		return nil, fmt.Errorf("could not register jobs collector: %w", err)
	}

	return m, nil
}
