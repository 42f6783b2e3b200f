package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/orderflow/internal/common"
)

// StageQueue is one named, independently configured queue: its own worker
// pool, attempt budget, backoff policy, and timeout. Concurrency is across
// workflows; one workflow never has two stages in flight at once because the
// orchestrator enqueues the next stage only after the current one succeeds.
type StageQueue struct {
	name    string
	backend Backend
	handler Handler
	sink    Sink
	logger  *slog.Logger
	schema  *jsonschema.Schema

	concurrency int
	maxAttempts int
	backoff     BackoffPolicy
	timeout     time.Duration
	poll        time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

type StageQueueOption func(*StageQueue)

func WithPollInterval(d time.Duration) StageQueueOption {
	return func(q *StageQueue) {
		if d > 0 {
			q.poll = d
		}
	}
}

func NewStageQueue(name string, cfg common.StageConfig, backend Backend, handler Handler, sink Sink, logger *slog.Logger, opts ...StageQueueOption) *StageQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &StageQueue{
		name:        name,
		backend:     backend,
		handler:     handler,
		sink:        sink,
		logger:      logger.With("stage", name),
		concurrency: cfg.Concurrency,
		maxAttempts: cfg.MaxAttempts,
		backoff: BackoffPolicy{
			Type: BackoffExponential,
			Base: cfg.BackoffBase,
			Max:  cfg.BackoffMax,
		},
		timeout: cfg.Timeout,
		poll:    time.Second,
	}
	for _, o := range opts {
		o(q)
	}
	return q
}

func (q *StageQueue) Name() string { return q.name }

// Defaults copies the queue's attempt budget and backoff policy onto a job
// that does not set its own.
func (q *StageQueue) Defaults(job *Job) {
	if job.MaxAttempts <= 0 {
		job.MaxAttempts = q.maxAttempts
	}
	if job.Backoff.Base <= 0 {
		job.Backoff = q.backoff
	}
}

// Enqueue validates the payload against the stage's registered schema and
// hands the job to the backend.
func (q *StageQueue) Enqueue(ctx context.Context, job *Job, delay time.Duration) error {
	if job.Stage != q.name {
		return fmt.Errorf("job stage %q does not match queue %q", job.Stage, q.name)
	}
	if err := q.validatePayload(job.Payload); err != nil {
		return common.NewAppError("PAYLOAD_INVALID", fmt.Sprintf("%s payload rejected", q.name), err)
	}
	q.Defaults(job)
	if err := q.backend.Enqueue(ctx, job, delay); err != nil {
		return err
	}
	q.logger.Info("job enqueued",
		"job_id", job.ID, "workflow_id", job.WorkflowID,
		"priority", job.Priority, "delay", delay,
	)
	return nil
}

func (q *StageQueue) validatePayload(payload json.RawMessage) error {
	if q.schema == nil {
		return nil
	}
	var v any
	if err := json.Unmarshal(payload, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := q.schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match schema: %w", err)
	}
	return nil
}

// Start launches the worker pool. Safe to call once.
func (q *StageQueue) Start(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.running {
		return
	}
	q.running = true
	runCtx, cancel := context.WithCancel(ctx)
	q.cancel = cancel

	for i := 0; i < q.concurrency; i++ {
		q.wg.Add(1)
		go func(workerID int) {
			defer q.wg.Done()
			q.logger.Info("worker started", "worker_id", workerID)
			q.work(runCtx, workerID)
			q.logger.Info("worker stopped", "worker_id", workerID)
		}(i + 1)
	}
}

func (q *StageQueue) work(ctx context.Context, workerID int) {
	for {
		if ctx.Err() != nil {
			return
		}
		job, err := q.backend.Dequeue(ctx, q.name)
		if err != nil {
			if !errors.Is(err, ErrNoJob) && !errors.Is(err, ErrBackendUnavailable) && ctx.Err() == nil {
				q.logger.Error("dequeue failed", "worker_id", workerID, "error", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(q.poll):
			}
			continue
		}
		q.runJob(ctx, workerID, job)
	}
}

func (q *StageQueue) runJob(ctx context.Context, workerID int, job *Job) {
	jobCtx := ctx
	cancel := context.CancelFunc(func() {})
	if q.timeout > 0 {
		jobCtx, cancel = context.WithTimeout(ctx, q.timeout)
	}
	report := func(percent int, message string) {
		q.sink.JobProgress(ctx, job, percent, message)
	}

	q.sink.JobStarted(ctx, job)
	start := time.Now()
	result, err := q.handler(jobCtx, job, report)
	timedOut := jobCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil
	cancel()

	if err == nil && !timedOut {
		if ackErr := q.backend.Complete(ctx, job); ackErr != nil {
			q.logger.Error("failed to ack completed job", "worker_id", workerID, "job_id", job.ID, "error", ackErr)
		}
		q.logger.Info("job completed",
			"worker_id", workerID, "job_id", job.ID,
			"workflow_id", job.WorkflowID, "duration", time.Since(start),
		)
		if err := q.sink.JobSucceeded(ctx, job, result); err != nil {
			q.logger.Error("result handling failed", "job_id", job.ID, "error", err)
		}
		return
	}

	if ctx.Err() != nil {
		// shutdown interrupted the handler; give the attempt back
		if reqErr := q.backend.Retry(context.WithoutCancel(ctx), job, 0); reqErr != nil {
			q.logger.Error("failed to requeue job on shutdown", "job_id", job.ID, "error", reqErr)
		}
		return
	}

	failure := q.classify(err, timedOut)
	job.AttemptsMade++

	if failure.Retryable && job.AttemptsMade < job.MaxAttempts {
		delay := NextDelay(job.Backoff, job.AttemptsMade)
		if retryErr := q.backend.Retry(ctx, job, delay); retryErr != nil {
			q.logger.Error("failed to requeue job for retry", "job_id", job.ID, "error", retryErr)
			return
		}
		q.logger.Warn("job failed, retrying",
			"worker_id", workerID, "job_id", job.ID, "workflow_id", job.WorkflowID,
			"attempts_made", job.AttemptsMade, "max_attempts", job.MaxAttempts,
			"delay", delay, "error", failure.Message,
		)
		q.sink.JobRetried(ctx, job, failure, delay)
		return
	}

	if discardErr := q.backend.Discard(ctx, job); discardErr != nil {
		q.logger.Error("failed to discard exhausted job", "job_id", job.ID, "error", discardErr)
	}
	q.logger.Error("job exhausted",
		"worker_id", workerID, "job_id", job.ID, "workflow_id", job.WorkflowID,
		"attempts_made", job.AttemptsMade, "retryable", failure.Retryable,
		"error", failure.Message,
	)
	if err := q.sink.JobExhausted(ctx, job, failure); err != nil {
		q.logger.Error("dead letter handling failed", "job_id", job.ID, "error", err)
	}
}

func (q *StageQueue) classify(err error, timedOut bool) *Failure {
	if timedOut {
		// timeouts are transient: the call may succeed on a quieter retry
		return Transient(fmt.Sprintf("%s stage timed out after %s", q.name, q.timeout), context.DeadlineExceeded)
	}
	if err == nil {
		return Transient(fmt.Sprintf("%s stage timed out", q.name), context.DeadlineExceeded)
	}
	return AsFailure(err)
}

// Stop drains the worker pool, waiting up to the context deadline.
func (q *StageQueue) Stop(ctx context.Context) {
	q.mu.Lock()
	if !q.running {
		q.mu.Unlock()
		return
	}
	q.running = false
	cancel := q.cancel
	q.mu.Unlock()

	cancel()
	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("stage queue shutdown interrupted by context")
	case <-done:
		q.logger.Info("stage queue drained, shutdown complete")
	}
}

func (q *StageQueue) Pause(ctx context.Context) error  { return q.backend.Pause(ctx, q.name) }
func (q *StageQueue) Resume(ctx context.Context) error { return q.backend.Resume(ctx, q.name) }

func (q *StageQueue) Counts(ctx context.Context) (Counts, error) {
	return q.backend.Counts(ctx, q.name)
}
