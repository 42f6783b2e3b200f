package deadletter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/gen/ent"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/queue"
	"github.com/joseph-ayodele/orderflow/internal/repository"
)

type fakeEntries struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*ent.DeadLetterEntry
}

func newFakeEntries() *fakeEntries {
	return &fakeEntries{entries: make(map[uuid.UUID]*ent.DeadLetterEntry)}
}

func (f *fakeEntries) add(resolution string) *ent.DeadLetterEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := &ent.DeadLetterEntry{
		ID:            uuid.New(),
		JobID:         uuid.NewString(),
		WorkflowID:    uuid.New(),
		Stage:         constants.StageSync,
		FailureReason: "platform rejected the order",
		AttemptsMade:  5,
		Priority:      string(constants.PriorityNormal),
		Resolution:    resolution,
		CreatedAt:     time.Now().UTC(),
	}
	f.entries[e.ID] = e
	return e
}

func (f *fakeEntries) Create(_ context.Context, _ repository.CreateDeadLetterParams) (*ent.DeadLetterEntry, bool, error) {
	return nil, false, errors.New("not used")
}

func (f *fakeEntries) GetByID(_ context.Context, id uuid.UUID) (*ent.DeadLetterEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.entries[id]; ok {
		return e, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeEntries) GetByJobID(_ context.Context, jobID string) (*ent.DeadLetterEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.JobID == jobID {
			return e, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeEntries) List(_ context.Context, resolution *string, limit, offset int) ([]*ent.DeadLetterEntry, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.DeadLetterEntry
	for _, e := range f.entries {
		if resolution == nil || e.Resolution == *resolution {
			out = append(out, e)
		}
	}
	total := len(out)
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeEntries) ListByWorkflow(_ context.Context, workflowID uuid.UUID) ([]*ent.DeadLetterEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.DeadLetterEntry
	for _, e := range f.entries {
		if e.WorkflowID == workflowID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntries) Annotate(_ context.Context, id uuid.UUID, notes, reviewedBy string) (*ent.DeadLetterEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	e.ReviewNotes = &notes
	e.ReviewedBy = &reviewedBy
	return e, nil
}

func (f *fakeEntries) SetResolution(_ context.Context, id uuid.UUID, resolution, reviewedBy string) (*ent.DeadLetterEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	e.Resolution = resolution
	e.ReviewedBy = &reviewedBy
	now := time.Now().UTC()
	e.ReviewedAt = &now
	return e, nil
}

func (f *fakeEntries) GetByReprocessedJobID(_ context.Context, jobID string) (*ent.DeadLetterEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.ReprocessedAsJobID != nil && *e.ReprocessedAsJobID == jobID {
			return e, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeEntries) StampReprocessed(_ context.Context, id uuid.UUID, newJobID, reviewedBy string) (*ent.DeadLetterEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	e.ReprocessedAsJobID = &newJobID
	e.ReviewedBy = &reviewedBy
	now := time.Now().UTC()
	e.ReviewedAt = &now
	return e, nil
}

type fakeReprocessor struct {
	mu     sync.Mutex
	called []uuid.UUID
	err    error
}

func (f *fakeReprocessor) ReprocessFromDeadLetter(_ context.Context, entry *ent.DeadLetterEntry) (*queue.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.called = append(f.called, entry.ID)
	return &queue.Job{ID: uuid.NewString(), Stage: entry.Stage, WorkflowID: entry.WorkflowID}, nil
}

func TestListRejectsUnknownResolution(t *testing.T) {
	svc := NewService(newFakeEntries(), &fakeReprocessor{}, nil)
	bogus := "resolved-ish"
	if _, _, err := svc.List(context.Background(), &bogus, 10, 0); status.Code(err) != codes.InvalidArgument {
		t.Errorf("err = %v, want InvalidArgument", err)
	}
}

func TestListFiltersByResolution(t *testing.T) {
	entries := newFakeEntries()
	entries.add(string(constants.ResolutionPending))
	entries.add(string(constants.ResolutionPending))
	entries.add(string(constants.ResolutionDiscard))
	svc := NewService(entries, &fakeReprocessor{}, nil)

	pending := string(constants.ResolutionPending)
	got, total, err := svc.List(context.Background(), &pending, 50, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || total != 2 {
		t.Errorf("List = %d entries, total %d, want 2/2", len(got), total)
	}
}

func TestAnnotateRequiresNotes(t *testing.T) {
	entries := newFakeEntries()
	e := entries.add(string(constants.ResolutionPending))
	svc := NewService(entries, &fakeReprocessor{}, nil)

	if _, err := svc.Annotate(context.Background(), e.ID, "", "ops"); status.Code(err) != codes.InvalidArgument {
		t.Errorf("empty notes err = %v, want InvalidArgument", err)
	}
	updated, err := svc.Annotate(context.Background(), e.ID, "vendor fixed their API", "ops")
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if updated.ReviewNotes == nil || *updated.ReviewNotes != "vendor fixed their API" {
		t.Errorf("notes = %v", updated.ReviewNotes)
	}
	if updated.Resolution != string(constants.ResolutionPending) {
		t.Errorf("Annotate changed resolution to %q", updated.Resolution)
	}
}

func TestDiscardOnlyPending(t *testing.T) {
	entries := newFakeEntries()
	pending := entries.add(string(constants.ResolutionPending))
	resolved := entries.add(string(constants.ResolutionReprocess))
	svc := NewService(entries, &fakeReprocessor{}, nil)

	updated, err := svc.Discard(context.Background(), pending.ID, "ops")
	if err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if updated.Resolution != string(constants.ResolutionDiscard) {
		t.Errorf("resolution = %q, want discard", updated.Resolution)
	}

	if _, err := svc.Discard(context.Background(), resolved.ID, "ops"); status.Code(err) != codes.FailedPrecondition {
		t.Errorf("resolved Discard err = %v, want FailedPrecondition", err)
	}
}

func TestReprocessStampsNewJobWithoutResolving(t *testing.T) {
	entries := newFakeEntries()
	e := entries.add(string(constants.ResolutionPending))
	rp := &fakeReprocessor{}
	svc := NewService(entries, rp, nil)

	updated, err := svc.Reprocess(context.Background(), e.ID, "ops")
	if err != nil {
		t.Fatalf("Reprocess: %v", err)
	}
	// the entry resolves only once the new job reaches its own outcome
	if updated.Resolution != string(constants.ResolutionPending) {
		t.Errorf("resolution = %q right after reprocess, want pending", updated.Resolution)
	}
	if updated.ReprocessedAsJobID == nil || *updated.ReprocessedAsJobID == e.JobID {
		t.Errorf("reprocessed job id = %v, want a fresh id", updated.ReprocessedAsJobID)
	}
	if updated.ReviewedBy == nil || *updated.ReviewedBy != "ops" {
		t.Errorf("reviewed by = %v, want ops", updated.ReviewedBy)
	}
	if len(rp.called) != 1 {
		t.Errorf("reprocessor called %d times, want 1", len(rp.called))
	}
}

func TestReprocessRefusesResolvedEntry(t *testing.T) {
	entries := newFakeEntries()
	closed := entries.add(string(constants.ResolutionReprocess))
	svc := NewService(entries, &fakeReprocessor{}, nil)

	if _, err := svc.Reprocess(context.Background(), closed.ID, "ops"); status.Code(err) != codes.FailedPrecondition {
		t.Errorf("resolved Reprocess err = %v, want FailedPrecondition", err)
	}
}

func TestReprocessLeavesEntryPendingOnFailure(t *testing.T) {
	entries := newFakeEntries()
	e := entries.add(string(constants.ResolutionPending))
	rp := &fakeReprocessor{err: errors.New("workflow not failed")}
	svc := NewService(entries, rp, nil)

	if _, err := svc.Reprocess(context.Background(), e.ID, "ops"); err == nil {
		t.Fatal("Reprocess swallowed the reprocessor error")
	}
	cur, _ := entries.GetByID(context.Background(), e.ID)
	if cur.Resolution != string(constants.ResolutionPending) {
		t.Errorf("resolution = %q after failed reprocess, want pending", cur.Resolution)
	}
}

func TestReprocessBulkIsolatesFailures(t *testing.T) {
	entries := newFakeEntries()
	good := entries.add(string(constants.ResolutionPending))
	resolved := entries.add(string(constants.ResolutionDiscard))
	svc := NewService(entries, &fakeReprocessor{}, nil)

	results := svc.ReprocessBulk(context.Background(), []uuid.UUID{good.ID, resolved.ID, uuid.New()}, "ops")
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if results[0].Err != nil || results[0].NewJobID == "" {
		t.Errorf("good entry result = %+v", results[0])
	}
	if results[1].Err == nil {
		t.Error("resolved entry reprocessed in bulk")
	}
	if results[2].Err == nil {
		t.Error("unknown entry reprocessed in bulk")
	}
}
