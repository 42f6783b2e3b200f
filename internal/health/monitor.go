// Package health watches the stage queues and the backing stores, classifies
// each queue as healthy, warning, or critical, and exposes the admin
// maintenance operations (pause, resume, cleanup, force-requeue).
package health

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/queue"
	"github.com/joseph-ayodele/orderflow/internal/repository"
)

// Status classifications, ordered by severity.
const (
	StatusHealthy  = "healthy"
	StatusWarning  = "warning"
	StatusCritical = "critical"
)

// QueueReport is the point-in-time verdict on one stage queue. Throughput
// and failure rate are computed from the delta between consecutive samples,
// so the first snapshot after startup reports them as zero.
type QueueReport struct {
	Stage            string       `json:"stage"`
	Counts           queue.Counts `json:"counts"`
	Paused           bool         `json:"paused"`
	ThroughputPerMin float64      `json:"throughput_per_min"`
	FailureRate      float64      `json:"failure_rate"`
	Status           string       `json:"status"`
}

// Report aggregates queue verdicts with store reachability. Overall status
// is the worst of its parts; an unreachable backend is always critical.
type Report struct {
	Status          string        `json:"status"`
	BackendHealthy  bool          `json:"backend_healthy"`
	DatabaseHealthy bool          `json:"database_healthy"`
	Queues          []QueueReport `json:"queues"`
	GeneratedAt     time.Time     `json:"generated_at"`
}

type sample struct {
	completed int64
	failed    int64
	at        time.Time
}

// Monitor polls queue depths on a timer and serves on-demand snapshots.
type Monitor struct {
	backend  queue.Backend
	registry *queue.Registry
	pool     *pgxpool.Pool
	cfg      common.HealthConfig
	logger   *slog.Logger

	mu      sync.Mutex
	samples map[string]sample
}

func NewMonitor(backend queue.Backend, registry *queue.Registry, pool *pgxpool.Pool, cfg common.HealthConfig, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		backend:  backend,
		registry: registry,
		pool:     pool,
		cfg:      cfg,
		logger:   logger,
		samples:  make(map[string]sample),
	}
}

// Run polls until the context is cancelled: snapshots for the warning log,
// plus periodic cleanup of finished-job bookkeeping past the retention
// window.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.PollInterval)
	defer ticker.Stop()
	m.logger.Info("health monitor started", "poll_interval", m.cfg.PollInterval)

	cleanupEvery := 10
	tick := 0
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("health monitor stopped")
			return
		case <-ticker.C:
			report := m.Snapshot(ctx)
			for _, q := range report.Queues {
				if q.Status != StatusHealthy {
					m.logger.Warn("queue unhealthy",
						"stage", q.Stage, "status", q.Status,
						"waiting", q.Counts.Waiting, "delayed", q.Counts.Delayed,
						"failure_rate", q.FailureRate, "paused", q.Paused,
					)
				}
			}
			tick++
			if tick%cleanupEvery == 0 && m.cfg.Retention > 0 {
				m.cleanupAll(ctx)
			}
		}
	}
}

// Snapshot inspects every registered queue plus both stores. Unreachable
// stores degrade the report instead of failing it.
func (m *Monitor) Snapshot(ctx context.Context) Report {
	report := Report{
		BackendHealthy:  m.backend.Healthy(),
		DatabaseHealthy: true,
		GeneratedAt:     time.Now().UTC(),
	}
	if m.pool != nil {
		if err := repository.HealthCheck(ctx, m.pool, 3*time.Second, m.logger); err != nil {
			report.DatabaseHealthy = false
		}
	}

	now := time.Now()
	for _, stage := range m.registry.Stages() {
		qr := QueueReport{Stage: stage, Status: StatusHealthy}
		counts, err := m.backend.Counts(ctx, stage)
		if err != nil {
			qr.Status = StatusCritical
			report.Queues = append(report.Queues, qr)
			continue
		}
		qr.Counts = counts
		if paused, err := m.backend.Paused(ctx, stage); err == nil {
			qr.Paused = paused
		}
		qr.ThroughputPerMin, qr.FailureRate = m.rates(stage, counts, now)
		qr.Status = m.classify(counts, qr.FailureRate)
		report.Queues = append(report.Queues, qr)
	}

	report.Status = StatusHealthy
	if !report.BackendHealthy || !report.DatabaseHealthy {
		report.Status = StatusCritical
	}
	for _, q := range report.Queues {
		report.Status = worse(report.Status, q.Status)
	}
	return report
}

// rates derives completions-per-minute and the failure share of finished
// jobs from the delta since the previous sample of the same stage.
func (m *Monitor) rates(stage string, counts queue.Counts, now time.Time) (float64, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.samples[stage]
	m.samples[stage] = sample{completed: counts.Completed, failed: counts.Failed, at: now}
	if !ok || now.Sub(prev.at) <= 0 {
		return 0, 0
	}

	dCompleted := counts.Completed - prev.completed
	dFailed := counts.Failed - prev.failed
	if dCompleted < 0 || dFailed < 0 {
		// counters shrank: a cleanup ran between samples
		return 0, 0
	}
	minutes := now.Sub(prev.at).Minutes()
	throughput := float64(dCompleted) / minutes
	finished := dCompleted + dFailed
	if finished == 0 {
		return throughput, 0
	}
	return throughput, float64(dFailed) / float64(finished)
}

func (m *Monitor) classify(counts queue.Counts, failureRate float64) string {
	backlog := counts.Waiting + counts.Delayed
	switch {
	// failed work keeps failing on retry; a deep backlog usually drains
	case m.cfg.FailureRateLimit > 0 && failureRate >= m.cfg.FailureRateLimit:
		return StatusCritical
	case m.cfg.BacklogWarning > 0 && backlog >= int64(m.cfg.BacklogWarning):
		return StatusWarning
	}
	return StatusHealthy
}

func (m *Monitor) cleanupAll(ctx context.Context) {
	states := []constants.JobState{constants.JobCompleted, constants.JobFailed}
	for _, stage := range m.registry.Stages() {
		removed, err := m.backend.Clean(ctx, stage, states, m.cfg.Retention)
		if err != nil {
			m.logger.Warn("queue cleanup failed", "stage", stage, "error", err)
			continue
		}
		if removed > 0 {
			m.logger.Info("queue cleanup", "stage", stage, "removed", removed)
		}
	}
}

// PauseStage stops workers from picking new jobs off the stage; running jobs
// finish.
func (m *Monitor) PauseStage(ctx context.Context, stage string) error {
	if _, ok := m.registry.Queue(stage); !ok {
		return common.NotFoundError("unknown stage " + stage)
	}
	if err := m.backend.Pause(ctx, stage); err != nil {
		return err
	}
	m.logger.Info("stage paused", "stage", stage)
	return nil
}

func (m *Monitor) ResumeStage(ctx context.Context, stage string) error {
	if _, ok := m.registry.Queue(stage); !ok {
		return common.NotFoundError("unknown stage " + stage)
	}
	if err := m.backend.Resume(ctx, stage); err != nil {
		return err
	}
	m.logger.Info("stage resumed", "stage", stage)
	return nil
}

// ForceRequeue puts a failed job back on the waiting set without touching
// its dead letter entry. A last-resort tool for queue surgery.
func (m *Monitor) ForceRequeue(ctx context.Context, stage, jobID string) error {
	if _, ok := m.registry.Queue(stage); !ok {
		return common.NotFoundError("unknown stage " + stage)
	}
	if err := m.backend.Requeue(ctx, stage, jobID); err != nil {
		return err
	}
	m.logger.Info("job force-requeued", "stage", stage, "job_id", jobID)
	return nil
}

// ListJobs returns jobs currently in the given state on one stage's queue,
// up to limit.
func (m *Monitor) ListJobs(ctx context.Context, stage string, state constants.JobState, limit int) ([]*queue.Job, error) {
	if _, ok := m.registry.Queue(stage); !ok {
		return nil, common.NotFoundError("unknown stage " + stage)
	}
	if !state.Valid() {
		return nil, common.InvalidArgumentErrorf("unknown job state %q", state)
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return m.backend.JobsByState(ctx, stage, state, limit)
}

// Cleanup drops finished-job bookkeeping older than the window for one stage.
func (m *Monitor) Cleanup(ctx context.Context, stage string, olderThan time.Duration) (int64, error) {
	if _, ok := m.registry.Queue(stage); !ok {
		return 0, common.NotFoundError("unknown stage " + stage)
	}
	states := []constants.JobState{constants.JobCompleted, constants.JobFailed}
	return m.backend.Clean(ctx, stage, states, olderThan)
}

func worse(a, b string) string {
	rank := map[string]int{StatusHealthy: 0, StatusWarning: 1, StatusCritical: 2}
	if rank[b] > rank[a] {
		return b
	}
	return a
}
