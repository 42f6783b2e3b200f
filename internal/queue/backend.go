package queue

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/constants"
)

// Backend errors.
var (
	// ErrNoJob is returned by Dequeue when nothing is poppable (empty or paused).
	ErrNoJob = errors.New("no job available")
	// ErrJobNotFound is returned for operations on unknown job ids.
	ErrJobNotFound = errors.New("job not found")
	// ErrBackendUnavailable is returned while the queueing store is unreachable.
	// It is an infrastructure condition, never a job failure.
	ErrBackendUnavailable = errors.New("queue backend unavailable")
)

// Counts is a point-in-time census of one stage queue.
type Counts struct {
	Waiting   int64 `json:"waiting"`
	Delayed   int64 `json:"delayed"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
}

// Message is one pub/sub delivery.
type Message struct {
	Channel string
	Payload []byte
}

// Subscription is a live pub/sub channel handle. Close releasing it is the
// only per-connection state the gateway holds.
type Subscription interface {
	Messages() <-chan Message
	Close() error
}

// Backend is the thin adapter over the shared queueing store: list/priority/
// set primitives plus pub/sub. It owns connection lifecycle and health; all
// operations are atomic with respect to a single job.
type Backend interface {
	// Enqueue stores the job and makes it poppable after the given delay.
	// The backend assigns Job.ID when empty.
	Enqueue(ctx context.Context, job *Job, delay time.Duration) error
	// Dequeue pops the highest-priority waiting job and marks it active.
	Dequeue(ctx context.Context, stage string) (*Job, error)
	// Complete acknowledges an active job as done.
	Complete(ctx context.Context, job *Job) error
	// Retry moves an active job back to the delayed set with updated
	// attempt bookkeeping.
	Retry(ctx context.Context, job *Job, delay time.Duration) error
	// Discard moves an active job to the failed set (terminal for the queue;
	// the dead letter store is the durable record).
	Discard(ctx context.Context, job *Job) error
	// Remove drops a waiting or delayed job outright.
	Remove(ctx context.Context, stage, jobID string) error
	// FindByWorkflow returns ids of waiting/delayed jobs for one workflow.
	FindByWorkflow(ctx context.Context, stage string, workflowID uuid.UUID) ([]string, error)

	Counts(ctx context.Context, stage string) (Counts, error)
	JobsByState(ctx context.Context, stage string, state constants.JobState, limit int) ([]*Job, error)
	Pause(ctx context.Context, stage string) error
	Resume(ctx context.Context, stage string) error
	Paused(ctx context.Context, stage string) (bool, error)
	// Clean drops completed/failed bookkeeping older than the window and
	// returns how many jobs were removed. Queue state only; durable records
	// are untouched.
	Clean(ctx context.Context, stage string, states []constants.JobState, olderThan time.Duration) (int64, error)
	// Requeue moves a failed job back to waiting (force-requeue).
	Requeue(ctx context.Context, stage, jobID string) error

	Publish(ctx context.Context, channel string, payload []byte) error
	Subscribe(ctx context.Context, channel string) (Subscription, error)

	HealthCheck(ctx context.Context) error
	// Healthy reports the result of the most recent probe without touching
	// the network.
	Healthy() bool
	Close() error
}
