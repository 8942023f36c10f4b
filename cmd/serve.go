package main

import (
	"context"
	"errors"
	"foodgram/internal/api"
	"foodgram/internal/api/handler/v1handler"
	"foodgram/internal/config"
	"foodgram/internal/worker"
	"foodgram/pkg/logger"
	"foodgram/pkg/media/local"
	"foodgram/pkg/metrics"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			redisClient, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			store := local.New(cfg.Media.Root, cfg.Media.BaseURL)

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			jobMetrics, err := metrics.NewJobs(registry)
			if err != nil {
				logger.Fatal(ctx, "could not create job metrics", zap.Error(err))
			}

			// jobs in flight are stopped through Stop, not by the signal context
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, store, jobMetrics, worker.Options{
				MaxWorkers: cfg.Worker.MaxWorkers,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Accounts: getAccounts(ctx, cfg, strg, redisClient),
					Recipes:  getRecipes(cfg, strg, store),
					Media:    store,
				},
				Registry: registry,
				HealthChecks: []api.HealthCheck{
					{Name: "postgres", Check: strg.Ping},
					{Name: "redis", Check: func(ctx context.Context) error {
						return redisClient.Ping(ctx).Err() //nolint: wrapcheck
					}},
				},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
