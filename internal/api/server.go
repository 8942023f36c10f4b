// Package api assembles the foodgram HTTP server: the v1 REST API under /api
// plus the operational endpoints around it.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"foodgram/internal/api/handler/v1handler"
	"foodgram/internal/config"
	"foodgram/pkg/controller"
	"foodgram/pkg/logger"
	"foodgram/pkg/metrics"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

//go:embed specs/v1.yaml
var v1Spec []byte

// Options is the HTTP part of config.Config, see NewOptions.
type Options struct {
	Handler v1handler.Options

	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	RequestTimeout    time.Duration
	MaxHeaderBytes    int
	MetricsPath       string
	AllowedOrigins    []string
	// MediaRoot, when set, is served under /media/.
	MediaRoot string
}

// NewOptions serves media from disk only when the config asks for it, in
// the compose deployment nginx serves the media volume instead.
func NewOptions(cfg *config.Config) Options {
	opts := Options{
		Handler: v1handler.Options{
			DefaultLimit: cfg.Pagination.DefaultLimit,
			MaxLimit:     cfg.Pagination.MaxLimit,
			MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
		},

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
	if cfg.Media.Serve {
		opts.MediaRoot = cfg.Media.Root
	}

	return opts
}

// HealthCheck probes one dependency for /healthz.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Deps struct {
	v1handler.Deps

	// Registry collects the server metrics and is exposed on MetricsPath.
	Registry *prometheus.Registry
	// HealthChecks are run by /healthz.
	HealthChecks []HealthCheck
}

// NewServer mounts the v1 API under /api next to the metrics, docs, pprof,
// health and (optionally) media endpoints. Every route goes through the
// logging, CORS and latency middlewares.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}

	exp, err := otelprom.New(otelprom.WithRegisterer(deps.Registry))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	deps.MeterProvider = mp

	httpMetrics, err := metrics.NewHTTP(deps.Registry)
	if err != nil {
		return nil, fmt.Errorf("could not create http metrics: %w", err)
	}

	r := chi.NewRouter()
	r.Use(controller.WithLogger)
	r.Use(controller.WithCORS(opts.AllowedOrigins))
	r.Use(controller.WithMetrics(httpMetrics))
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.Handle(opts.MetricsPath, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	r.Get("/api/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	r.Handle("/api/docs/*", v5emb.New(
		"Foodgram",
		"/api/specs/v1.yaml",
		"/api/docs/",
	))

	v1, err := v1handler.New(deps.Deps, opts.Handler)
	if err != nil {
		return nil, fmt.Errorf("could not create v1 handler: %w", err)
	}
	r.Mount("/api", v1.Routes())

	r.Mount("/debug/pprof", http.StripPrefix("/debug/pprof", controller.PprofMux()))

	r.Get("/healthz", healthz(deps.HealthChecks))

	if opts.MediaRoot != "" {
		r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(opts.MediaRoot))))
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           r,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func healthz(checks []HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		for _, c := range checks {
			if err := c.Check(ctx); err != nil {
				logger.Warn(ctx, "health check failed", zap.String("check", c.Name), zap.Error(err))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = fmt.Fprintf(w, `{"status":"unavailable","check":%q}`, c.Name)

				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
