package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/constants"
)

// Job is one attempt of one stage for one workflow execution. Jobs live in
// the queue backend only; the workflow execution row is the durable record.
type Job struct {
	ID           string             `json:"id"`
	Stage        string             `json:"stage"`
	WorkflowID   uuid.UUID          `json:"workflow_id"`
	MerchantID   uuid.UUID          `json:"merchant_id"`
	Payload      json.RawMessage    `json:"payload"`
	Priority     constants.Priority `json:"priority"`
	AttemptsMade int                `json:"attempts_made"`
	MaxAttempts  int                `json:"max_attempts"`
	Backoff      BackoffPolicy      `json:"backoff"`
	EnqueuedAt   time.Time          `json:"enqueued_at"`
}

// Clone returns a copy suitable for re-enqueueing with a fresh attempt budget.
func (j *Job) Clone() *Job {
	cp := *j
	cp.ID = ""
	cp.AttemptsMade = 0
	cp.EnqueuedAt = time.Time{}
	if j.Payload != nil {
		cp.Payload = append(json.RawMessage(nil), j.Payload...)
	}
	return &cp
}

// ProgressReporter lets a stage handler report intermediate progress.
// Handlers may call it zero or more times before returning.
type ProgressReporter func(percent int, message string)

// Handler executes one stage job. It returns the stage result consumed by the
// next stage, or an error. Errors that are (or wrap) *Failure carry the
// retryable classification; anything else is treated as transient.
type Handler func(ctx context.Context, job *Job, report ProgressReporter) (json.RawMessage, error)

// Failure is a typed stage failure. The Retryable flag, not the error type,
// drives the retry-versus-dead-letter decision.
type Failure struct {
	Message   string
	Retryable bool
	Stack     string
	Cause     error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

// Transient builds a retryable failure (network timeouts, rate limits,
// temporary backend unavailability).
func Transient(message string, cause error) *Failure {
	return &Failure{Message: message, Retryable: true, Cause: cause}
}

// Permanent builds a non-retryable failure (malformed input, validation
// errors, unsupported formats). It goes to the dead letter store on the
// first occurrence.
func Permanent(message string, cause error) *Failure {
	return &Failure{Message: message, Retryable: false, Cause: cause}
}

// AsFailure normalizes any handler error into a *Failure. Unclassified
// errors and deadline expiries count as transient.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{Message: err.Error(), Retryable: true, Cause: err}
}

// Sink receives stage job outcomes. The workflow orchestrator implements it;
// only the orchestrator mutates the workflow execution record.
type Sink interface {
	// JobStarted is called when a worker picks the job up.
	JobStarted(ctx context.Context, job *Job)
	// JobSucceeded is called after the backend acknowledged the job.
	JobSucceeded(ctx context.Context, job *Job, result json.RawMessage) error
	// JobRetried is called after the backend re-queued the job with a delay.
	JobRetried(ctx context.Context, job *Job, failure *Failure, delay time.Duration)
	// JobExhausted is called once the job has no attempts left (or failed
	// permanently) and has been removed from the waiting queue.
	JobExhausted(ctx context.Context, job *Job, failure *Failure) error
	// JobProgress relays a handler's intermediate progress report.
	JobProgress(ctx context.Context, job *Job, percent int, message string)
}
