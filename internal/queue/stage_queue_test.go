package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"
)

// collectSink records every sink callback for assertions.
type collectSink struct {
	mu        sync.Mutex
	started   []string
	succeeded []string
	retried   []*Failure
	exhausted []*Failure
	progress  []int
	done      chan struct{}
}

func newCollectSink() *collectSink {
	return &collectSink{done: make(chan struct{}, 16)}
}

func (s *collectSink) signal() {
	if s.done != nil {
		select {
		case s.done <- struct{}{}:
		default:
		}
	}
}

func (s *collectSink) JobStarted(_ context.Context, job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = append(s.started, job.ID)
}

func (s *collectSink) JobSucceeded(_ context.Context, job *Job, _ json.RawMessage) error {
	s.mu.Lock()
	s.succeeded = append(s.succeeded, job.ID)
	s.mu.Unlock()
	s.signal()
	return nil
}

func (s *collectSink) JobRetried(_ context.Context, _ *Job, failure *Failure, _ time.Duration) {
	s.mu.Lock()
	s.retried = append(s.retried, failure)
	s.mu.Unlock()
	s.signal()
}

func (s *collectSink) JobExhausted(_ context.Context, _ *Job, failure *Failure) error {
	s.mu.Lock()
	s.exhausted = append(s.exhausted, failure)
	s.mu.Unlock()
	s.signal()
	return nil
}

func (s *collectSink) JobProgress(_ context.Context, _ *Job, percent int, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = append(s.progress, percent)
}

func (s *collectSink) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-s.done:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for outcome %d of %d", i+1, n)
		}
	}
}

func startQueue(t *testing.T, handler Handler, sink Sink, maxAttempts int) (*StageQueue, *MemoryBackend) {
	t.Helper()
	b := NewMemoryBackend()
	cfg := testStageConfig()
	cfg.MaxAttempts = maxAttempts
	q := NewStageQueue("extract", cfg, b, handler, sink, nil, WithPollInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	q.Start(ctx)
	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
		defer stopCancel()
		q.Stop(stopCtx)
		cancel()
	})
	return q, b
}

func TestStageQueueSuccessFlow(t *testing.T) {
	sink := newCollectSink()
	handler := func(_ context.Context, _ *Job, report ProgressReporter) (json.RawMessage, error) {
		report(50, "halfway")
		return json.RawMessage(`{"ok":true}`), nil
	}
	q, b := startQueue(t, handler, sink, 3)

	j := &Job{Stage: "extract", Payload: json.RawMessage(`{}`)}
	if err := q.Enqueue(context.Background(), j, 0); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	sink.wait(t, 1)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.started) != 1 {
		t.Errorf("started = %d, want 1", len(sink.started))
	}
	if len(sink.succeeded) != 1 {
		t.Errorf("succeeded = %d, want 1", len(sink.succeeded))
	}
	if len(sink.progress) != 1 || sink.progress[0] != 50 {
		t.Errorf("progress = %v, want [50]", sink.progress)
	}

	c, _ := b.Counts(context.Background(), "extract")
	if c.Completed != 1 {
		t.Errorf("completed count = %d, want 1", c.Completed)
	}
}

func TestStageQueueTransientRetriesThenSucceeds(t *testing.T) {
	sink := newCollectSink()
	var calls int
	var mu sync.Mutex
	handler := func(_ context.Context, _ *Job, _ ProgressReporter) (json.RawMessage, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n < 3 {
			return nil, Transient("upstream busy", nil)
		}
		return json.RawMessage(`{}`), nil
	}
	q, _ := startQueue(t, handler, sink, 5)

	j := &Job{Stage: "extract", Payload: json.RawMessage(`{}`)}
	if err := q.Enqueue(context.Background(), j, 0); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	// two retries, then the success
	sink.wait(t, 3)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.retried) != 2 {
		t.Errorf("retried = %d, want 2", len(sink.retried))
	}
	if len(sink.succeeded) != 1 {
		t.Errorf("succeeded = %d, want 1", len(sink.succeeded))
	}
	if len(sink.exhausted) != 0 {
		t.Errorf("exhausted = %d, want 0", len(sink.exhausted))
	}
}

func TestStageQueuePermanentFailureSkipsRetry(t *testing.T) {
	sink := newCollectSink()
	handler := func(_ context.Context, _ *Job, _ ProgressReporter) (json.RawMessage, error) {
		return nil, Permanent("unsupported document format", nil)
	}
	q, b := startQueue(t, handler, sink, 5)

	j := &Job{Stage: "extract", Payload: json.RawMessage(`{}`)}
	if err := q.Enqueue(context.Background(), j, 0); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	sink.wait(t, 1)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.retried) != 0 {
		t.Errorf("retried = %d, want 0", len(sink.retried))
	}
	if len(sink.exhausted) != 1 {
		t.Fatalf("exhausted = %d, want 1", len(sink.exhausted))
	}
	if sink.exhausted[0].Retryable {
		t.Error("exhausted failure marked retryable")
	}

	c, _ := b.Counts(context.Background(), "extract")
	if c.Failed != 1 {
		t.Errorf("failed count = %d, want 1", c.Failed)
	}
}

func TestStageQueueExhaustsAttemptBudget(t *testing.T) {
	sink := newCollectSink()
	handler := func(_ context.Context, _ *Job, _ ProgressReporter) (json.RawMessage, error) {
		return nil, Transient("flaky", errors.New("boom"))
	}
	q, _ := startQueue(t, handler, sink, 2)

	j := &Job{Stage: "extract", Payload: json.RawMessage(`{}`)}
	if err := q.Enqueue(context.Background(), j, 0); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	// one retry, then exhaustion on the second attempt
	sink.wait(t, 2)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.retried) != 1 {
		t.Errorf("retried = %d, want 1", len(sink.retried))
	}
	if len(sink.exhausted) != 1 {
		t.Fatalf("exhausted = %d, want 1", len(sink.exhausted))
	}
	if !sink.exhausted[0].Retryable {
		t.Error("transient exhaustion lost its retryable flag")
	}
}

func TestStageQueueTimeoutIsTransient(t *testing.T) {
	sink := newCollectSink()
	handler := func(ctx context.Context, _ *Job, _ ProgressReporter) (json.RawMessage, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	b := NewMemoryBackend()
	cfg := testStageConfig()
	cfg.MaxAttempts = 1
	cfg.Timeout = 20 * time.Millisecond
	q := NewStageQueue("extract", cfg, b, handler, sink, nil, WithPollInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
		defer stopCancel()
		q.Stop(stopCtx)
	}()

	j := &Job{Stage: "extract", Payload: json.RawMessage(`{}`)}
	if err := q.Enqueue(context.Background(), j, 0); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	sink.wait(t, 1)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.exhausted) != 1 {
		t.Fatalf("exhausted = %d, want 1", len(sink.exhausted))
	}
	if !sink.exhausted[0].Retryable {
		t.Error("timeout classified as permanent, want transient")
	}
}

func TestAsFailureNormalizesPlainErrors(t *testing.T) {
	f := AsFailure(errors.New("something broke"))
	if !f.Retryable {
		t.Error("unclassified error should default to transient")
	}

	wrapped := AsFailure(Permanent("bad input", nil))
	if wrapped.Retryable {
		t.Error("permanent failure lost classification through AsFailure")
	}
}

func TestJobClone(t *testing.T) {
	j := &Job{
		ID:           "abc",
		Stage:        "sync",
		Payload:      json.RawMessage(`{"a":1}`),
		AttemptsMade: 2,
		MaxAttempts:  5,
		EnqueuedAt:   time.Now(),
	}
	cp := j.Clone()
	if cp.ID != "" || cp.AttemptsMade != 0 || !cp.EnqueuedAt.IsZero() {
		t.Errorf("Clone kept per-attempt state: %+v", cp)
	}
	if cp.MaxAttempts != 5 || cp.Stage != "sync" {
		t.Errorf("Clone dropped configuration: %+v", cp)
	}
	cp.Payload[2] = 'x'
	if j.Payload[2] == 'x' {
		t.Error("Clone shares payload backing array")
	}
}
