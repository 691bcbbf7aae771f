package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend. When the
// storage handle is transactional, the insert participates in the surrounding
// transaction and only becomes visible on commit, which is what lets the
// account service enqueue welcome mails atomically with user creation.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. The boolean result is
	// false when the backend skipped the insert as a duplicate of an existing
	// unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
