package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/orderflow/internal/common"
)

// Registry binds exactly one handler per stage queue at process startup and
// exposes the queue handles to administrative tooling. Payload schemas are
// compiled here so handlers always receive a shape they understand.
type Registry struct {
	backend Backend
	sink    Sink
	logger  *slog.Logger

	mu     sync.RWMutex
	queues map[string]*StageQueue
}

func NewRegistry(backend Backend, sink Sink, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		backend: backend,
		sink:    sink,
		logger:  logger,
		queues:  make(map[string]*StageQueue),
	}
}

// Register binds a handler (with an optional payload JSON schema) to a stage
// name. Registering the same name twice is a startup-time configuration
// error, not a runtime condition.
func (r *Registry) Register(name string, cfg common.StageConfig, handler Handler, payloadSchema map[string]any, opts ...StageQueueOption) error {
	if handler == nil {
		return common.NewAppError("REGISTRY_ERROR", fmt.Sprintf("nil handler for stage %q", name), common.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.queues[name]; exists {
		return common.NewAppError("REGISTRY_ERROR", fmt.Sprintf("handler already registered for stage %q", name), common.ErrConflict)
	}

	q := NewStageQueue(name, cfg, r.backend, handler, r.sink, r.logger, opts...)
	if payloadSchema != nil {
		schema, err := compileSchema(name, payloadSchema)
		if err != nil {
			return common.NewAppError("REGISTRY_ERROR", fmt.Sprintf("bad payload schema for stage %q", name), err)
		}
		q.schema = schema
	}
	r.queues[name] = q
	r.logger.Info("stage registered", "stage", name, "concurrency", cfg.Concurrency, "max_attempts", cfg.MaxAttempts)
	return nil
}

func compileSchema(name string, schemaMap map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	resource := name + "-payload.json"
	if err := compiler.AddResource(resource, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// Queue returns the handle for one stage.
func (r *Registry) Queue(name string) (*StageQueue, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.queues[name]
	return q, ok
}

// Stages lists registered stage names in stable order.
func (r *Registry) Stages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.queues))
	for name := range r.queues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Enqueue routes a job to its stage queue.
func (r *Registry) Enqueue(ctx context.Context, job *Job, delay time.Duration) error {
	q, ok := r.Queue(job.Stage)
	if !ok {
		return common.NewAppError("REGISTRY_ERROR", fmt.Sprintf("no handler registered for stage %q", job.Stage), common.ErrNotFound)
	}
	return q.Enqueue(ctx, job, delay)
}

// StartAll launches every stage queue's worker pool.
func (r *Registry) StartAll(ctx context.Context) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.queues {
		q.Start(ctx)
	}
}

// StopAll drains every stage queue, bounded by the context.
func (r *Registry) StopAll(ctx context.Context) {
	r.mu.RLock()
	queues := make([]*StageQueue, 0, len(r.queues))
	for _, q := range r.queues {
		queues = append(queues, q)
	}
	r.mu.RUnlock()

	var wg sync.WaitGroup
	for _, q := range queues {
		wg.Add(1)
		go func(q *StageQueue) {
			defer wg.Done()
			q.Stop(ctx)
		}(q)
	}
	wg.Wait()
}
