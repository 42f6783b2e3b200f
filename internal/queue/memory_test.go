package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/constants"
)

func testJob(stage string, pri constants.Priority) *Job {
	return &Job{
		Stage:       stage,
		WorkflowID:  uuid.New(),
		MerchantID:  uuid.New(),
		Payload:     json.RawMessage(`{}`),
		Priority:    pri,
		MaxAttempts: 3,
	}
}

func TestMemoryBackendPriorityOrdering(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	low := testJob("extract", constants.PriorityLow)
	critical := testJob("extract", constants.PriorityCritical)
	normal := testJob("extract", constants.PriorityNormal)

	// enqueue lowest first so ordering cannot come from insertion order
	for _, j := range []*Job{low, normal, critical} {
		if err := b.Enqueue(ctx, j, 0); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	var got []string
	for i := 0; i < 3; i++ {
		j, err := b.Dequeue(ctx, "extract")
		if err != nil {
			t.Fatalf("Dequeue %d: %v", i, err)
		}
		got = append(got, string(j.Priority))
	}
	want := []string{"critical", "normal", "low"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dequeue order = %v, want %v", got, want)
		}
	}

	if _, err := b.Dequeue(ctx, "extract"); !errors.Is(err, ErrNoJob) {
		t.Fatalf("empty dequeue err = %v, want ErrNoJob", err)
	}
}

func TestMemoryBackendDelayedJobNotPoppable(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	j := testJob("sync", constants.PriorityNormal)
	if err := b.Enqueue(ctx, j, time.Hour); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if _, err := b.Dequeue(ctx, "sync"); !errors.Is(err, ErrNoJob) {
		t.Fatalf("Dequeue err = %v, want ErrNoJob", err)
	}

	c, err := b.Counts(ctx, "sync")
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if c.Delayed != 1 || c.Waiting != 0 {
		t.Fatalf("counts = %+v, want 1 delayed", c)
	}
}

func TestMemoryBackendPauseResume(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	if err := b.Enqueue(ctx, testJob("persist", constants.PriorityNormal), 0); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if err := b.Pause(ctx, "persist"); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if _, err := b.Dequeue(ctx, "persist"); !errors.Is(err, ErrNoJob) {
		t.Fatalf("paused Dequeue err = %v, want ErrNoJob", err)
	}
	paused, err := b.Paused(ctx, "persist")
	if err != nil || !paused {
		t.Fatalf("Paused = %v, %v, want true", paused, err)
	}
	if err := b.Resume(ctx, "persist"); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if _, err := b.Dequeue(ctx, "persist"); err != nil {
		t.Fatalf("resumed Dequeue: %v", err)
	}
}

func TestMemoryBackendRetryAndRequeue(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	j := testJob("extract", constants.PriorityNormal)
	if err := b.Enqueue(ctx, j, 0); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if _, err := b.Dequeue(ctx, "extract"); err != nil {
		t.Fatalf("Dequeue: %v", err)
	}

	j.AttemptsMade = 1
	if err := b.Retry(ctx, j, 0); err != nil {
		t.Fatalf("Retry: %v", err)
	}
	again, err := b.Dequeue(ctx, "extract")
	if err != nil {
		t.Fatalf("Dequeue after retry: %v", err)
	}
	if again.AttemptsMade != 1 {
		t.Errorf("AttemptsMade = %d, want 1", again.AttemptsMade)
	}

	if err := b.Discard(ctx, j); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	c, _ := b.Counts(ctx, "extract")
	if c.Failed != 1 {
		t.Fatalf("failed count = %d, want 1", c.Failed)
	}

	// force-requeue resets the attempt budget
	if err := b.Requeue(ctx, "extract", j.ID); err != nil {
		t.Fatalf("Requeue: %v", err)
	}
	fresh, err := b.Dequeue(ctx, "extract")
	if err != nil {
		t.Fatalf("Dequeue after requeue: %v", err)
	}
	if fresh.AttemptsMade != 0 {
		t.Errorf("AttemptsMade after requeue = %d, want 0", fresh.AttemptsMade)
	}
}

func TestMemoryBackendRemoveAndFindByWorkflow(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	j := testJob("sync", constants.PriorityNormal)
	if err := b.Enqueue(ctx, j, time.Hour); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	ids, err := b.FindByWorkflow(ctx, "sync", j.WorkflowID)
	if err != nil {
		t.Fatalf("FindByWorkflow: %v", err)
	}
	if len(ids) != 1 || ids[0] != j.ID {
		t.Fatalf("FindByWorkflow = %v, want [%s]", ids, j.ID)
	}

	if err := b.Remove(ctx, "sync", j.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	ids, _ = b.FindByWorkflow(ctx, "sync", j.WorkflowID)
	if len(ids) != 0 {
		t.Fatalf("FindByWorkflow after remove = %v, want empty", ids)
	}
	if err := b.Remove(ctx, "sync", j.ID); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("double Remove err = %v, want ErrJobNotFound", err)
	}
}

func TestMemoryBackendPubSub(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	sub, err := b.Subscribe(ctx, "merchant:abc")
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if err := b.Publish(ctx, "merchant:abc", []byte(`{"type":"progress"}`)); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	select {
	case msg := <-sub.Messages():
		if msg.Channel != "merchant:abc" {
			t.Errorf("channel = %q, want merchant:abc", msg.Channel)
		}
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}

	if err := sub.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// closed subscription must not receive further publishes
	if err := b.Publish(ctx, "merchant:abc", []byte(`{}`)); err != nil {
		t.Fatalf("Publish after close: %v", err)
	}
	if _, open := <-sub.Messages(); open {
		t.Fatal("messages channel still open after Close")
	}
}

func TestMemoryBackendClosed(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := b.Enqueue(ctx, testJob("extract", constants.PriorityNormal), 0); !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("Enqueue err = %v, want ErrBackendUnavailable", err)
	}
	if b.Healthy() {
		t.Fatal("Healthy = true after Close")
	}
}
