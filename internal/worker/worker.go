package worker

import (
	"context"
	"fmt"
	"foodgram/pkg/logger"
	"foodgram/pkg/media"
	"foodgram/pkg/metrics"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the background job client.
type Options struct {
	// MaxWorkers bounds how many jobs of the default queue run concurrently.
	MaxWorkers int
}

// Start registers the workers and starts a River client processing the
// default queue. Callers stop it with Stop on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	store media.Store,
	jobs *metrics.Jobs,
	options Options) (*river.Client[pgx.Tx], error) {
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = 1
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewMediaCleanupWorker(store, jobs))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
