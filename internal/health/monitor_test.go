package health

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/queue"
)

func testConfig() common.HealthConfig {
	return common.HealthConfig{
		PollInterval:     time.Second,
		BacklogWarning:   5,
		FailureRateLimit: 0.25,
		Retention:        time.Hour,
	}
}

func testMonitor(t *testing.T, stages ...string) (*Monitor, *queue.MemoryBackend) {
	t.Helper()
	backend := queue.NewMemoryBackend()
	registry := queue.NewRegistry(backend, nopSink{}, nil)
	cfg := common.StageConfig{
		Concurrency: 1,
		MaxAttempts: 3,
		BackoffBase: time.Millisecond,
		BackoffMax:  10 * time.Millisecond,
		Timeout:     time.Second,
	}
	handler := func(_ context.Context, _ *queue.Job, _ queue.ProgressReporter) (json.RawMessage, error) {
		return nil, nil
	}
	for _, stage := range stages {
		if err := registry.Register(stage, cfg, handler, nil); err != nil {
			t.Fatalf("Register(%s): %v", stage, err)
		}
	}
	return NewMonitor(backend, registry, nil, testConfig(), nil), backend
}

type nopSink struct{}

func (nopSink) JobStarted(context.Context, *queue.Job) {}
func (nopSink) JobSucceeded(context.Context, *queue.Job, json.RawMessage) error {
	return nil
}
func (nopSink) JobRetried(context.Context, *queue.Job, *queue.Failure, time.Duration) {}
func (nopSink) JobExhausted(context.Context, *queue.Job, *queue.Failure) error {
	return nil
}
func (nopSink) JobProgress(context.Context, *queue.Job, int, string) {}

func TestClassify(t *testing.T) {
	m, _ := testMonitor(t)

	tests := []struct {
		name        string
		counts      queue.Counts
		failureRate float64
		want        string
	}{
		{"empty", queue.Counts{}, 0, StatusHealthy},
		{"below warning", queue.Counts{Waiting: 2, Delayed: 2}, 0, StatusHealthy},
		{"backlog warning", queue.Counts{Waiting: 3, Delayed: 2}, 0, StatusWarning},
		{"deep backlog still a warning", queue.Counts{Waiting: 150, Delayed: 50}, 0, StatusWarning},
		{"failure rate critical", queue.Counts{Waiting: 1}, 0.5, StatusCritical},
		{"failure rate outranks backlog", queue.Counts{Waiting: 25}, 0.9, StatusCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.classify(tt.counts, tt.failureRate); got != tt.want {
				t.Errorf("classify(%+v, %v) = %q, want %q", tt.counts, tt.failureRate, got, tt.want)
			}
		})
	}
}

func TestClassifyDisabledThresholds(t *testing.T) {
	backend := queue.NewMemoryBackend()
	registry := queue.NewRegistry(backend, nopSink{}, nil)
	m := NewMonitor(backend, registry, nil, common.HealthConfig{}, nil)

	if got := m.classify(queue.Counts{Waiting: 1000}, 1.0); got != StatusHealthy {
		t.Errorf("classify with zero thresholds = %q, want %q", got, StatusHealthy)
	}
}

func TestRatesFirstSampleIsZero(t *testing.T) {
	m, _ := testMonitor(t)

	throughput, failureRate := m.rates("extract", queue.Counts{Completed: 40, Failed: 4}, time.Now())
	if throughput != 0 || failureRate != 0 {
		t.Errorf("first sample = (%v, %v), want (0, 0)", throughput, failureRate)
	}
}

func TestRatesDeltaBetweenSamples(t *testing.T) {
	m, _ := testMonitor(t)

	base := time.Now()
	m.rates("extract", queue.Counts{Completed: 10, Failed: 2}, base)
	throughput, failureRate := m.rates("extract", queue.Counts{Completed: 16, Failed: 4}, base.Add(time.Minute))

	if throughput != 6 {
		t.Errorf("throughput = %v, want 6", throughput)
	}
	if failureRate != 0.25 {
		t.Errorf("failure rate = %v, want 0.25", failureRate)
	}
}

func TestRatesShrunkCountersReportZero(t *testing.T) {
	m, _ := testMonitor(t)

	base := time.Now()
	m.rates("extract", queue.Counts{Completed: 100, Failed: 10}, base)
	throughput, failureRate := m.rates("extract", queue.Counts{Completed: 5, Failed: 0}, base.Add(time.Minute))

	if throughput != 0 || failureRate != 0 {
		t.Errorf("after cleanup = (%v, %v), want (0, 0)", throughput, failureRate)
	}
}

func TestRatesNoFinishedJobs(t *testing.T) {
	m, _ := testMonitor(t)

	base := time.Now()
	m.rates("extract", queue.Counts{Completed: 10, Failed: 2}, base)
	throughput, failureRate := m.rates("extract", queue.Counts{Completed: 10, Failed: 2}, base.Add(time.Minute))

	if throughput != 0 || failureRate != 0 {
		t.Errorf("idle interval = (%v, %v), want (0, 0)", throughput, failureRate)
	}
}

func TestSnapshotHealthy(t *testing.T) {
	m, _ := testMonitor(t, "extract", "persist")
	ctx := context.Background()

	report := m.Snapshot(ctx)
	if report.Status != StatusHealthy {
		t.Errorf("Status = %q, want %q", report.Status, StatusHealthy)
	}
	if !report.BackendHealthy {
		t.Error("BackendHealthy = false, want true")
	}
	if !report.DatabaseHealthy {
		t.Error("DatabaseHealthy = false, want true")
	}
	if len(report.Queues) != 2 {
		t.Fatalf("len(Queues) = %d, want 2", len(report.Queues))
	}
	for _, q := range report.Queues {
		if q.Status != StatusHealthy {
			t.Errorf("queue %s status = %q, want %q", q.Stage, q.Status, StatusHealthy)
		}
	}
}

func TestSnapshotBacklogDegradesStatus(t *testing.T) {
	m, backend := testMonitor(t, "extract")
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		job := &queue.Job{Stage: "extract", Payload: json.RawMessage(`{}`)}
		if err := backend.Enqueue(ctx, job, 0); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	report := m.Snapshot(ctx)
	if report.Status != StatusWarning {
		t.Errorf("Status = %q, want %q", report.Status, StatusWarning)
	}
	if report.Queues[0].Counts.Waiting != 25 {
		t.Errorf("Waiting = %d, want 25", report.Queues[0].Counts.Waiting)
	}
}

func TestSnapshotClosedBackendIsCritical(t *testing.T) {
	m, backend := testMonitor(t, "extract")
	backend.Close()

	report := m.Snapshot(context.Background())
	if report.BackendHealthy {
		t.Error("BackendHealthy = true after Close")
	}
	if report.Status != StatusCritical {
		t.Errorf("Status = %q, want %q", report.Status, StatusCritical)
	}
}

func TestPauseAndResumeStage(t *testing.T) {
	m, backend := testMonitor(t, "extract")
	ctx := context.Background()

	if err := m.PauseStage(ctx, "extract"); err != nil {
		t.Fatalf("PauseStage: %v", err)
	}
	report := m.Snapshot(ctx)
	if !report.Queues[0].Paused {
		t.Error("queue not reported paused")
	}

	if err := m.ResumeStage(ctx, "extract"); err != nil {
		t.Fatalf("ResumeStage: %v", err)
	}
	if paused, _ := backend.Paused(ctx, "extract"); paused {
		t.Error("backend still paused after resume")
	}
}

func TestMaintenanceUnknownStage(t *testing.T) {
	m, _ := testMonitor(t, "extract")
	ctx := context.Background()

	if err := m.PauseStage(ctx, "nope"); status.Code(err) != codes.NotFound {
		t.Errorf("PauseStage err = %v, want NotFound", err)
	}
	if err := m.ResumeStage(ctx, "nope"); status.Code(err) != codes.NotFound {
		t.Errorf("ResumeStage err = %v, want NotFound", err)
	}
	if err := m.ForceRequeue(ctx, "nope", "job-1"); status.Code(err) != codes.NotFound {
		t.Errorf("ForceRequeue err = %v, want NotFound", err)
	}
	if _, err := m.Cleanup(ctx, "nope", time.Hour); status.Code(err) != codes.NotFound {
		t.Errorf("Cleanup err = %v, want NotFound", err)
	}
}

func TestForceRequeueFailedJob(t *testing.T) {
	m, backend := testMonitor(t, "extract")
	ctx := context.Background()

	job := &queue.Job{Stage: "extract", Payload: json.RawMessage(`{}`)}
	if err := backend.Enqueue(ctx, job, 0); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	popped, err := backend.Dequeue(ctx, "extract")
	if err != nil {
		t.Fatalf("Dequeue: %v", err)
	}
	if err := backend.Discard(ctx, popped); err != nil {
		t.Fatalf("Discard: %v", err)
	}

	if err := m.ForceRequeue(ctx, "extract", popped.ID); err != nil {
		t.Fatalf("ForceRequeue: %v", err)
	}
	counts, err := backend.Counts(ctx, "extract")
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if counts.Waiting != 1 {
		t.Errorf("Waiting = %d, want 1", counts.Waiting)
	}
	if counts.Failed != 0 {
		t.Errorf("Failed = %d, want 0", counts.Failed)
	}
}

func TestListJobsByState(t *testing.T) {
	m, backend := testMonitor(t, "extract")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		job := &queue.Job{Stage: "extract", Payload: json.RawMessage(`{}`)}
		if err := backend.Enqueue(ctx, job, 0); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	if _, err := backend.Dequeue(ctx, "extract"); err != nil {
		t.Fatalf("Dequeue: %v", err)
	}

	waiting, err := m.ListJobs(ctx, "extract", constants.JobWaiting, 10)
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(waiting) != 2 {
		t.Errorf("waiting jobs = %d, want 2", len(waiting))
	}
	active, err := m.ListJobs(ctx, "extract", constants.JobActive, 10)
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(active) != 1 {
		t.Errorf("active jobs = %d, want 1", len(active))
	}

	capped, err := m.ListJobs(ctx, "extract", constants.JobWaiting, 1)
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(capped) != 1 {
		t.Errorf("capped list = %d jobs, want 1", len(capped))
	}

	if _, err := m.ListJobs(ctx, "nope", constants.JobWaiting, 10); status.Code(err) != codes.NotFound {
		t.Errorf("unknown stage err = %v, want NotFound", err)
	}
	if _, err := m.ListJobs(ctx, "extract", constants.JobState("sleeping"), 10); status.Code(err) != codes.InvalidArgument {
		t.Errorf("unknown state err = %v, want InvalidArgument", err)
	}
}
