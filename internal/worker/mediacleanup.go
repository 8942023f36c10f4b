package worker

import (
	"context"
	"errors"
	"fmt"
	"foodgram/internal/recipes"
	"foodgram/pkg/logger"
	"foodgram/pkg/media"
	"foodgram/pkg/metrics"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

var errEmptyPath = errors.New("empty media path")

// MediaCleanupWorker removes images orphaned by recipe updates and deletions.
// Jobs are enqueued in the transaction that orphaned the image, so a file is
// only removed once that change is committed. A file that is already gone
// counts as done.
type MediaCleanupWorker struct {
	river.WorkerDefaults[recipes.DeleteMediaArgs]

	store media.Store
	jobs  *metrics.Jobs
}

// NewMediaCleanupWorker constructs a worker deleting files from store. jobs
// may be nil.
func NewMediaCleanupWorker(store media.Store, jobs *metrics.Jobs) *MediaCleanupWorker {
	return &MediaCleanupWorker{store: store, jobs: jobs}
}

// Work deletes the image referenced by the job.
func (w *MediaCleanupWorker) Work(ctx context.Context, job *river.Job[recipes.DeleteMediaArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("path", job.Args.Path))

	if job.Args.Path == "" {
		w.observe(job.Args.Kind(), "canceled")

		return river.JobCancel(errEmptyPath) //nolint: wrapcheck
	}

	if err := w.store.Delete(ctx, job.Args.Path); err != nil {
		logger.Error(ctx, "error deleting media", zap.Error(err))
		w.observe(job.Args.Kind(), "failed")

		return fmt.Errorf("could not delete media: %w", err)
	}

	logger.Info(ctx, "media deleted")
	w.observe(job.Args.Kind(), "ok")

	return nil
}

func (w *MediaCleanupWorker) observe(kind, outcome string) {
	if w.jobs != nil {
		w.jobs.Processed.WithLabelValues(kind, outcome).Inc()
	}
}
