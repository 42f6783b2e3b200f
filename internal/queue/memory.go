package queue

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/constants"
)

// MemoryBackend is an in-process Backend with the same semantics as the
// redis implementation. It backs single-node development runs (no REDIS_ADDR
// configured) and the engine tests.
type MemoryBackend struct {
	mu     sync.Mutex
	jobs   map[string]*memJob
	paused map[string]bool
	subs   map[string][]*memorySubscription
	closed bool
}

type memJob struct {
	job        *Job
	state      constants.JobState
	readyAt    time.Time
	finishedAt time.Time
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		jobs:   make(map[string]*memJob),
		paused: make(map[string]bool),
		subs:   make(map[string][]*memorySubscription),
	}
}

func (b *MemoryBackend) Enqueue(_ context.Context, job *Job, delay time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBackendUnavailable
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.EnqueuedAt.IsZero() {
		job.EnqueuedAt = time.Now().UTC()
	}
	m := &memJob{job: job, state: constants.JobWaiting}
	if delay > 0 {
		m.state = constants.JobDelayed
		m.readyAt = time.Now().Add(delay)
	}
	b.jobs[job.ID] = m
	return nil
}

func (b *MemoryBackend) Dequeue(_ context.Context, stage string) (*Job, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBackendUnavailable
	}
	if b.paused[stage] {
		return nil, ErrNoJob
	}

	now := time.Now()
	var best *memJob
	for _, m := range b.jobs {
		if m.job.Stage != stage {
			continue
		}
		if m.state == constants.JobDelayed && !m.readyAt.After(now) {
			m.state = constants.JobWaiting
		}
		if m.state != constants.JobWaiting {
			continue
		}
		if best == nil || less(m.job, best.job) {
			best = m
		}
	}
	if best == nil {
		return nil, ErrNoJob
	}
	best.state = constants.JobActive
	return best.job, nil
}

// less orders waiting jobs: priority rank first, enqueue time as tiebreak.
func less(a, b *Job) bool {
	if a.Priority.Rank() != b.Priority.Rank() {
		return a.Priority.Rank() < b.Priority.Rank()
	}
	return a.EnqueuedAt.Before(b.EnqueuedAt)
}

func (b *MemoryBackend) finish(job *Job, state constants.JobState) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.jobs[job.ID]
	if !ok {
		return ErrJobNotFound
	}
	m.job = job
	m.state = state
	m.finishedAt = time.Now()
	return nil
}

func (b *MemoryBackend) Complete(_ context.Context, job *Job) error {
	return b.finish(job, constants.JobCompleted)
}

func (b *MemoryBackend) Retry(_ context.Context, job *Job, delay time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.jobs[job.ID]
	if !ok {
		return ErrJobNotFound
	}
	m.job = job
	m.state = constants.JobDelayed
	m.readyAt = time.Now().Add(delay)
	return nil
}

func (b *MemoryBackend) Discard(_ context.Context, job *Job) error {
	return b.finish(job, constants.JobFailed)
}

func (b *MemoryBackend) Remove(_ context.Context, stage, jobID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.jobs[jobID]
	if !ok || m.job.Stage != stage {
		return ErrJobNotFound
	}
	if m.state == constants.JobWaiting || m.state == constants.JobDelayed {
		delete(b.jobs, jobID)
	}
	return nil
}

func (b *MemoryBackend) FindByWorkflow(_ context.Context, stage string, workflowID uuid.UUID) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []string
	for id, m := range b.jobs {
		if m.job.Stage != stage || m.job.WorkflowID != workflowID {
			continue
		}
		if m.state == constants.JobWaiting || m.state == constants.JobDelayed {
			out = append(out, id)
		}
	}
	return out, nil
}

func (b *MemoryBackend) Counts(_ context.Context, stage string) (Counts, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return Counts{}, ErrBackendUnavailable
	}
	var c Counts
	for _, m := range b.jobs {
		if m.job.Stage != stage {
			continue
		}
		switch m.state {
		case constants.JobWaiting:
			c.Waiting++
		case constants.JobDelayed:
			c.Delayed++
		case constants.JobActive:
			c.Active++
		case constants.JobCompleted:
			c.Completed++
		case constants.JobFailed:
			c.Failed++
		}
	}
	return c, nil
}

func (b *MemoryBackend) JobsByState(_ context.Context, stage string, state constants.JobState, limit int) ([]*Job, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if limit <= 0 {
		limit = 50
	}
	var out []*Job
	for _, m := range b.jobs {
		if m.job.Stage == stage && m.state == state {
			out = append(out, m.job)
			if len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (b *MemoryBackend) Pause(_ context.Context, stage string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.paused[stage] = true
	return nil
}

func (b *MemoryBackend) Resume(_ context.Context, stage string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.paused, stage)
	return nil
}

func (b *MemoryBackend) Paused(_ context.Context, stage string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.paused[stage], nil
}

func (b *MemoryBackend) Clean(_ context.Context, stage string, states []constants.JobState, olderThan time.Duration) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cutoff := time.Now().Add(-olderThan)
	var removed int64
	for id, m := range b.jobs {
		if m.job.Stage != stage {
			continue
		}
		for _, state := range states {
			if m.state == state && !m.finishedAt.IsZero() && m.finishedAt.Before(cutoff) {
				delete(b.jobs, id)
				removed++
				break
			}
		}
	}
	return removed, nil
}

func (b *MemoryBackend) Requeue(_ context.Context, stage, jobID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.jobs[jobID]
	if !ok || m.job.Stage != stage {
		return ErrJobNotFound
	}
	m.job.AttemptsMade = 0
	m.state = constants.JobWaiting
	m.finishedAt = time.Time{}
	return nil
}

func (b *MemoryBackend) Publish(_ context.Context, channel string, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBackendUnavailable
	}
	for _, sub := range b.subs[channel] {
		select {
		case sub.out <- Message{Channel: channel, Payload: payload}:
		default:
			// slow consumer; events are a latency shortcut, drop is safe
		}
	}
	return nil
}

func (b *MemoryBackend) Subscribe(_ context.Context, channel string) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBackendUnavailable
	}
	sub := &memorySubscription{
		backend: b,
		channel: channel,
		out:     make(chan Message, 64),
	}
	b.subs[channel] = append(b.subs[channel], sub)
	return sub, nil
}

type memorySubscription struct {
	backend *MemoryBackend
	channel string
	out     chan Message
	once    sync.Once
}

func (s *memorySubscription) Messages() <-chan Message {
	return s.out
}

func (s *memorySubscription) Close() error {
	s.once.Do(func() {
		b := s.backend
		b.mu.Lock()
		subs := b.subs[s.channel]
		for i, sub := range subs {
			if sub == s {
				b.subs[s.channel] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		b.mu.Unlock()
		close(s.out)
	})
	return nil
}

func (b *MemoryBackend) HealthCheck(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBackendUnavailable
	}
	return nil
}

func (b *MemoryBackend) Healthy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.closed
}

func (b *MemoryBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}
