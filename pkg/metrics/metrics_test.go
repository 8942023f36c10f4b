package metrics_test

import (
	"foodgram/pkg/metrics"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewHTTP_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()

	m, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	m.RequestDuration.WithLabelValues("GET", "/api/tags/", "200").Observe(0.01)
	m.InFlight.Inc()
	require.InDelta(t, 1, testutil.ToFloat64(m.InFlight), 0)

	_, err = metrics.NewHTTP(reg)
	require.Error(t, err, "registering the same collectors twice must fail")
}

func TestNewJobs(t *testing.T) {
	reg := prometheus.NewRegistry()

	m, err := metrics.NewJobs(reg)
	require.NoError(t, err)

	m.Processed.WithLabelValues("delete_media", "ok").Inc()
	require.InDelta(t, 1, testutil.ToFloat64(m.Processed.WithLabelValues("delete_media", "ok")), 0)
}
