package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the queue tables of the same database,
// so a job added inside a transaction becomes visible to workers only once
// that transaction commits.
//
// Example:
//
//	err := tx.AddJob(ctx, recipes.DeleteMediaArgs{Path: old}, nil)
//	if err != nil { /* handle error */ }
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It reports false when
	// the job was skipped as a duplicate of an existing unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
