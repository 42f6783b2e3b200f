package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/internal/common"
)

// RedisBackend implements Backend on a shared Redis instance: sorted sets for
// the waiting/delayed/active/finished states, plain keys for job bodies and
// pause flags, and native pub/sub for progress events.
type RedisBackend struct {
	rdb     *redis.Client
	prefix  string
	logger  *slog.Logger
	healthy atomic.Bool

	cancelMonitor context.CancelFunc
	monitorDone   chan struct{}
}

// NewRedisBackend connects to Redis and starts the reconnect/health monitor.
// The monitor backs off independently of any workflow's retry policy.
func NewRedisBackend(ctx context.Context, cfg common.RedisConfig, logger *slog.Logger) (*RedisBackend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	b := &RedisBackend{
		rdb:         rdb,
		prefix:      cfg.KeyPrefix,
		logger:      logger,
		monitorDone: make(chan struct{}),
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Error("redis unreachable at startup", "addr", cfg.Addr, "error", err)
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	b.healthy.Store(true)
	logger.Info("connected to redis", "addr", cfg.Addr, "db", cfg.DB)

	monCtx, cancelMon := context.WithCancel(context.Background())
	b.cancelMonitor = cancelMon
	go b.monitor(monCtx, cfg.ReconnectBase, cfg.ReconnectMax)
	return b, nil
}

// monitor probes the connection and flips the health flag. go-redis redials
// on its own; the flag is what lets the orchestrator halt new enqueues and
// the health service report critical while the store is down.
func (b *RedisBackend) monitor(ctx context.Context, base, max time.Duration) {
	defer close(b.monitorDone)
	if base <= 0 {
		base = time.Second
	}
	if max <= 0 {
		max = 30 * time.Second
	}
	wait := base
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := b.rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			if b.healthy.CompareAndSwap(true, false) {
				b.logger.Error("redis connection lost", "error", err)
			}
			wait = wait * 2
			if wait > max {
				wait = max
			}
			continue
		}
		if b.healthy.CompareAndSwap(false, true) {
			b.logger.Info("redis connection restored")
		}
		wait = base
	}
}

func (b *RedisBackend) key(parts ...string) string {
	k := b.prefix
	for _, p := range parts {
		k += ":" + p
	}
	return k
}

func (b *RedisBackend) jobKey(id string) string { return b.key("job", id) }
func (b *RedisBackend) stateKey(stage, s string) string { return b.key("stage", stage, s) }

// waitingScore orders the waiting set: priority rank in the high digits,
// enqueue time in the low ones so equal tiers pop FIFO.
func waitingScore(pri constants.Priority, enqueuedAt time.Time) float64 {
	return float64(pri.Rank())*1e13 + float64(enqueuedAt.UnixMilli())
}

func (b *RedisBackend) Enqueue(ctx context.Context, job *Job, delay time.Duration) error {
	if !b.Healthy() {
		return ErrBackendUnavailable
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.EnqueuedAt.IsZero() {
		job.EnqueuedAt = time.Now().UTC()
	}
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	pipe := b.rdb.TxPipeline()
	pipe.Set(ctx, b.jobKey(job.ID), body, 0)
	if delay > 0 {
		readyAt := float64(time.Now().Add(delay).UnixMilli())
		pipe.ZAdd(ctx, b.stateKey(job.Stage, "delayed"), redis.Z{Score: readyAt, Member: job.ID})
	} else {
		pipe.ZAdd(ctx, b.stateKey(job.Stage, "waiting"), redis.Z{Score: waitingScore(job.Priority, job.EnqueuedAt), Member: job.ID})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("enqueue %s job: %w", job.Stage, err)
	}
	return nil
}

func (b *RedisBackend) Dequeue(ctx context.Context, stage string) (*Job, error) {
	if !b.Healthy() {
		return nil, ErrBackendUnavailable
	}
	paused, err := b.Paused(ctx, stage)
	if err != nil {
		return nil, err
	}
	if paused {
		return nil, ErrNoJob
	}
	if err := b.promoteDelayed(ctx, stage); err != nil {
		return nil, err
	}

	popped, err := b.rdb.ZPopMin(ctx, b.stateKey(stage, "waiting"), 1).Result()
	if err != nil {
		return nil, fmt.Errorf("pop %s waiting: %w", stage, err)
	}
	if len(popped) == 0 {
		return nil, ErrNoJob
	}
	id, _ := popped[0].Member.(string)

	job, err := b.loadJob(ctx, id)
	if err != nil {
		return nil, err
	}
	now := float64(time.Now().UnixMilli())
	if err := b.rdb.ZAdd(ctx, b.stateKey(stage, "active"), redis.Z{Score: now, Member: id}).Err(); err != nil {
		return nil, fmt.Errorf("mark %s active: %w", stage, err)
	}
	return job, nil
}

// promoteDelayed moves due jobs from the delayed set into waiting.
func (b *RedisBackend) promoteDelayed(ctx context.Context, stage string) error {
	now := fmt.Sprintf("%d", time.Now().UnixMilli())
	due, err := b.rdb.ZRangeByScore(ctx, b.stateKey(stage, "delayed"), &redis.ZRangeBy{
		Min: "-inf", Max: now, Count: 128,
	}).Result()
	if err != nil {
		return fmt.Errorf("scan %s delayed: %w", stage, err)
	}
	for _, id := range due {
		job, err := b.loadJob(ctx, id)
		if err != nil {
			// body lost; drop the orphan marker
			b.rdb.ZRem(ctx, b.stateKey(stage, "delayed"), id)
			continue
		}
		pipe := b.rdb.TxPipeline()
		pipe.ZRem(ctx, b.stateKey(stage, "delayed"), id)
		pipe.ZAdd(ctx, b.stateKey(stage, "waiting"), redis.Z{Score: waitingScore(job.Priority, job.EnqueuedAt), Member: id})
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("promote %s job: %w", stage, err)
		}
	}
	return nil
}

func (b *RedisBackend) loadJob(ctx context.Context, id string) (*Job, error) {
	body, err := b.rdb.Get(ctx, b.jobKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load job %s: %w", id, err)
	}
	var job Job
	if err := json.Unmarshal(body, &job); err != nil {
		return nil, fmt.Errorf("unmarshal job %s: %w", id, err)
	}
	return &job, nil
}

func (b *RedisBackend) storeJob(ctx context.Context, pipe redis.Pipeliner, job *Job) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}
	pipe.Set(ctx, b.jobKey(job.ID), body, 0)
	return nil
}

func (b *RedisBackend) Complete(ctx context.Context, job *Job) error {
	now := float64(time.Now().UnixMilli())
	pipe := b.rdb.TxPipeline()
	if err := b.storeJob(ctx, pipe, job); err != nil {
		return err
	}
	pipe.ZRem(ctx, b.stateKey(job.Stage, "active"), job.ID)
	pipe.ZAdd(ctx, b.stateKey(job.Stage, "completed"), redis.Z{Score: now, Member: job.ID})
	_, err := pipe.Exec(ctx)
	return err
}

func (b *RedisBackend) Retry(ctx context.Context, job *Job, delay time.Duration) error {
	readyAt := float64(time.Now().Add(delay).UnixMilli())
	pipe := b.rdb.TxPipeline()
	if err := b.storeJob(ctx, pipe, job); err != nil {
		return err
	}
	pipe.ZRem(ctx, b.stateKey(job.Stage, "active"), job.ID)
	pipe.ZAdd(ctx, b.stateKey(job.Stage, "delayed"), redis.Z{Score: readyAt, Member: job.ID})
	_, err := pipe.Exec(ctx)
	return err
}

func (b *RedisBackend) Discard(ctx context.Context, job *Job) error {
	now := float64(time.Now().UnixMilli())
	pipe := b.rdb.TxPipeline()
	if err := b.storeJob(ctx, pipe, job); err != nil {
		return err
	}
	pipe.ZRem(ctx, b.stateKey(job.Stage, "active"), job.ID)
	pipe.ZAdd(ctx, b.stateKey(job.Stage, "failed"), redis.Z{Score: now, Member: job.ID})
	_, err := pipe.Exec(ctx)
	return err
}

func (b *RedisBackend) Remove(ctx context.Context, stage, jobID string) error {
	pipe := b.rdb.TxPipeline()
	pipe.ZRem(ctx, b.stateKey(stage, "waiting"), jobID)
	pipe.ZRem(ctx, b.stateKey(stage, "delayed"), jobID)
	pipe.Del(ctx, b.jobKey(jobID))
	_, err := pipe.Exec(ctx)
	return err
}

func (b *RedisBackend) FindByWorkflow(ctx context.Context, stage string, workflowID uuid.UUID) ([]string, error) {
	var out []string
	for _, state := range []string{"waiting", "delayed"} {
		ids, err := b.rdb.ZRange(ctx, b.stateKey(stage, state), 0, -1).Result()
		if err != nil {
			return nil, fmt.Errorf("scan %s %s: %w", stage, state, err)
		}
		for _, id := range ids {
			job, err := b.loadJob(ctx, id)
			if err != nil {
				continue
			}
			if job.WorkflowID == workflowID {
				out = append(out, id)
			}
		}
	}
	return out, nil
}

func (b *RedisBackend) Counts(ctx context.Context, stage string) (Counts, error) {
	if !b.Healthy() {
		return Counts{}, ErrBackendUnavailable
	}
	pipe := b.rdb.Pipeline()
	waiting := pipe.ZCard(ctx, b.stateKey(stage, "waiting"))
	delayed := pipe.ZCard(ctx, b.stateKey(stage, "delayed"))
	active := pipe.ZCard(ctx, b.stateKey(stage, "active"))
	completed := pipe.ZCard(ctx, b.stateKey(stage, "completed"))
	failed := pipe.ZCard(ctx, b.stateKey(stage, "failed"))
	if _, err := pipe.Exec(ctx); err != nil {
		return Counts{}, fmt.Errorf("count %s: %w", stage, err)
	}
	return Counts{
		Waiting:   waiting.Val(),
		Delayed:   delayed.Val(),
		Active:    active.Val(),
		Completed: completed.Val(),
		Failed:    failed.Val(),
	}, nil
}

func (b *RedisBackend) JobsByState(ctx context.Context, stage string, state constants.JobState, limit int) ([]*Job, error) {
	if limit <= 0 {
		limit = 50
	}
	ids, err := b.rdb.ZRange(ctx, b.stateKey(stage, string(state)), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s %s: %w", stage, state, err)
	}
	jobs := make([]*Job, 0, len(ids))
	for _, id := range ids {
		job, err := b.loadJob(ctx, id)
		if err != nil {
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (b *RedisBackend) Pause(ctx context.Context, stage string) error {
	return b.rdb.Set(ctx, b.stateKey(stage, "paused"), "1", 0).Err()
}

func (b *RedisBackend) Resume(ctx context.Context, stage string) error {
	return b.rdb.Del(ctx, b.stateKey(stage, "paused")).Err()
}

func (b *RedisBackend) Paused(ctx context.Context, stage string) (bool, error) {
	v, err := b.rdb.Get(ctx, b.stateKey(stage, "paused")).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s pause flag: %w", stage, err)
	}
	return v == "1", nil
}

func (b *RedisBackend) Clean(ctx context.Context, stage string, states []constants.JobState, olderThan time.Duration) (int64, error) {
	cutoff := fmt.Sprintf("%d", time.Now().Add(-olderThan).UnixMilli())
	var removed int64
	for _, state := range states {
		key := b.stateKey(stage, string(state))
		ids, err := b.rdb.ZRangeByScore(ctx, key, &redis.ZRangeBy{Min: "-inf", Max: cutoff}).Result()
		if err != nil {
			return removed, fmt.Errorf("scan %s %s: %w", stage, state, err)
		}
		for _, id := range ids {
			pipe := b.rdb.TxPipeline()
			pipe.ZRem(ctx, key, id)
			pipe.Del(ctx, b.jobKey(id))
			if _, err := pipe.Exec(ctx); err != nil {
				return removed, fmt.Errorf("clean %s job %s: %w", stage, id, err)
			}
			removed++
		}
	}
	return removed, nil
}

func (b *RedisBackend) Requeue(ctx context.Context, stage, jobID string) error {
	job, err := b.loadJob(ctx, jobID)
	if err != nil {
		return err
	}
	job.AttemptsMade = 0
	pipe := b.rdb.TxPipeline()
	if err := b.storeJob(ctx, pipe, job); err != nil {
		return err
	}
	pipe.ZRem(ctx, b.stateKey(stage, "failed"), jobID)
	pipe.ZAdd(ctx, b.stateKey(stage, "waiting"), redis.Z{Score: waitingScore(job.Priority, job.EnqueuedAt), Member: jobID})
	_, err = pipe.Exec(ctx)
	return err
}

func (b *RedisBackend) Publish(ctx context.Context, channel string, payload []byte) error {
	if !b.Healthy() {
		return ErrBackendUnavailable
	}
	return b.rdb.Publish(ctx, b.key("events", channel), payload).Err()
}

func (b *RedisBackend) Subscribe(ctx context.Context, channel string) (Subscription, error) {
	ps := b.rdb.Subscribe(ctx, b.key("events", channel))
	// force the subscribe round-trip so errors surface here, not on first read
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %s: %w", channel, err)
	}
	sub := &redisSubscription{
		ps:  ps,
		out: make(chan Message, 64),
	}
	go sub.pump()
	return sub, nil
}

type redisSubscription struct {
	ps   *redis.PubSub
	out  chan Message
	once sync.Once
}

func (s *redisSubscription) pump() {
	defer close(s.out)
	for msg := range s.ps.Channel() {
		s.out <- Message{Channel: msg.Channel, Payload: []byte(msg.Payload)}
	}
}

func (s *redisSubscription) Messages() <-chan Message {
	return s.out
}

func (s *redisSubscription) Close() error {
	var err error
	s.once.Do(func() {
		err = s.ps.Close()
	})
	return err
}

func (b *RedisBackend) HealthCheck(ctx context.Context) error {
	if err := b.rdb.Ping(ctx).Err(); err != nil {
		b.healthy.Store(false)
		return fmt.Errorf("ping redis: %w", err)
	}
	b.healthy.Store(true)
	return nil
}

func (b *RedisBackend) Healthy() bool {
	return b.healthy.Load()
}

func (b *RedisBackend) Close() error {
	if b.cancelMonitor != nil {
		b.cancelMonitor()
		<-b.monitorDone
	}
	return b.rdb.Close()
}
