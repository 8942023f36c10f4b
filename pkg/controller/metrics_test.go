package controller_test

import (
	"foodgram/pkg/controller"
	"foodgram/pkg/metrics"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_ObservesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(controller.WithMetrics(m))
	r.Get("/api/recipes/{id}/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/recipes/42/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	require.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
	require.InDelta(t, 0, testutil.ToFloat64(m.InFlight), 0)

	families, err := reg.Gather()
	require.NoError(t, err)

	var labels map[string]string
	for _, f := range families {
		if f.GetName() != "foodgram_http_request_duration_seconds" {
			continue
		}
		labels = map[string]string{}
		for _, l := range f.GetMetric()[0].GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
	}
	require.Equal(t, "/api/recipes/{id}", labels["route"])
	require.Equal(t, "404", labels["code"])
	require.Equal(t, "GET", labels["method"])
}

func TestWithMetrics_RootAndUnmatched(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(controller.WithMetrics(m))
	r.Get("/", func(http.ResponseWriter, *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/nope/", nil))

	families, err := reg.Gather()
	require.NoError(t, err)

	routes := map[string]bool{}
	for _, f := range families {
		if f.GetName() != "foodgram_http_request_duration_seconds" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, l := range metric.GetLabel() {
				if l.GetName() == "route" {
					routes[l.GetValue()] = true
				}
			}
		}
	}
	require.Equal(t, map[string]bool{"/": true, "unmatched": true}, routes)
}
