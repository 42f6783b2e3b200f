package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/joseph-ayodele/orderflow/internal/common"
)

func noopHandler(_ context.Context, _ *Job, _ ProgressReporter) (json.RawMessage, error) {
	return nil, nil
}

func testStageConfig() common.StageConfig {
	return common.StageConfig{
		Concurrency: 1,
		MaxAttempts: 3,
		BackoffBase: time.Millisecond,
		BackoffMax:  10 * time.Millisecond,
		Timeout:     time.Second,
	}
}

func TestRegistryRejectsDuplicateStage(t *testing.T) {
	r := NewRegistry(NewMemoryBackend(), &collectSink{}, nil)

	if err := r.Register("extract", testStageConfig(), noopHandler, nil); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := r.Register("extract", testStageConfig(), noopHandler, nil)
	if err == nil {
		t.Fatal("duplicate Register succeeded")
	}
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestRegistryRejectsNilHandler(t *testing.T) {
	r := NewRegistry(NewMemoryBackend(), &collectSink{}, nil)
	if err := r.Register("extract", testStageConfig(), nil, nil); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRegistryEnqueueUnknownStage(t *testing.T) {
	r := NewRegistry(NewMemoryBackend(), &collectSink{}, nil)
	err := r.Enqueue(context.Background(), &Job{Stage: "nope"}, 0)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRegistrySchemaValidation(t *testing.T) {
	r := NewRegistry(NewMemoryBackend(), &collectSink{}, nil)
	schema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"document_id"},
		"properties": map[string]any{
			"document_id": map[string]any{"type": "string"},
		},
	}
	if err := r.Register("extract", testStageConfig(), noopHandler, schema); err != nil {
		t.Fatalf("Register: %v", err)
	}

	ctx := context.Background()
	good := &Job{Stage: "extract", Payload: json.RawMessage(`{"document_id":"abc"}`)}
	if err := r.Enqueue(ctx, good, 0); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	bad := &Job{Stage: "extract", Payload: json.RawMessage(`{"unexpected":1}`)}
	if err := r.Enqueue(ctx, bad, 0); err == nil {
		t.Fatal("invalid payload accepted")
	}

	malformed := &Job{Stage: "extract", Payload: json.RawMessage(`{"document_id":`)}
	if err := r.Enqueue(ctx, malformed, 0); err == nil {
		t.Fatal("malformed payload accepted")
	}
}

func TestRegistryDefaultsAppliedOnEnqueue(t *testing.T) {
	b := NewMemoryBackend()
	r := NewRegistry(b, &collectSink{}, nil)
	if err := r.Register("sync", testStageConfig(), noopHandler, nil); err != nil {
		t.Fatalf("Register: %v", err)
	}

	j := &Job{Stage: "sync", Payload: json.RawMessage(`{}`)}
	if err := r.Enqueue(context.Background(), j, 0); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if j.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want queue default 3", j.MaxAttempts)
	}
	if j.Backoff.Base != time.Millisecond {
		t.Errorf("Backoff.Base = %s, want queue default", j.Backoff.Base)
	}
}

func TestRegistryStages(t *testing.T) {
	r := NewRegistry(NewMemoryBackend(), &collectSink{}, nil)
	for _, name := range []string{"sync", "extract", "persist"} {
		if err := r.Register(name, testStageConfig(), noopHandler, nil); err != nil {
			t.Fatalf("Register %s: %v", name, err)
		}
	}
	got := r.Stages()
	want := []string{"extract", "persist", "sync"}
	if len(got) != len(want) {
		t.Fatalf("Stages = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Stages = %v, want %v", got, want)
		}
	}
}
