package recipes

import (
	"github.com/riverqueue/river"
)

// DeleteMediaArgs asks the worker to remove a stored image once the recipe
// change that orphaned it has been committed.
type DeleteMediaArgs struct {
	// Path is the media path relative to the store root.
	Path string `json:"path" river:"unique"`

	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the media worker.
func (args DeleteMediaArgs) Kind() string { return "delete_media" }

// InsertOpts returns the River options used when the job is enqueued. A path
// is deleted at most once while a job for it is pending.
func (args DeleteMediaArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	}
}
