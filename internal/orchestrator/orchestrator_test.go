package orchestrator

import (
	"context"
	"encoding/json"
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
	"github.com/joseph-ayodele/orderflow/internal/events"
	"github.com/joseph-ayodele/orderflow/internal/queue"
	"github.com/joseph-ayodele/orderflow/internal/repository"
	"github.com/joseph-ayodele/orderflow/internal/stages"
)

// fakeWorkflowRepo keeps workflow rows in memory with the same CAS semantics
// as the database-backed repository.
type fakeWorkflowRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*ent.WorkflowExecution
}

func newFakeWorkflowRepo() *fakeWorkflowRepo {
	return &fakeWorkflowRepo{rows: make(map[uuid.UUID]*ent.WorkflowExecution)}
}

func (r *fakeWorkflowRepo) Create(_ context.Context, merchantID, documentID uuid.UUID, stagesTotal int, input json.RawMessage) (*ent.WorkflowExecution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	wf := &ent.WorkflowExecution{
		ID:          uuid.New(),
		MerchantID:  merchantID,
		DocumentID:  documentID,
		Status:      string(constants.WorkflowPending),
		StagesTotal: stagesTotal,
		InputData:   append(json.RawMessage(nil), input...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.rows[wf.ID] = wf
	return copyWorkflow(wf), nil
}

func (r *fakeWorkflowRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.WorkflowExecution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wf, ok := r.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return copyWorkflow(wf), nil
}

func (r *fakeWorkflowRepo) ListByStatus(_ context.Context, status string, limit int) ([]*ent.WorkflowExecution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*ent.WorkflowExecution
	for _, wf := range r.rows {
		if wf.Status == status {
			out = append(out, copyWorkflow(wf))
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *fakeWorkflowRepo) ListByMerchant(_ context.Context, merchantID uuid.UUID, limit, _ int) ([]*ent.WorkflowExecution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*ent.WorkflowExecution
	for _, wf := range r.rows {
		if wf.MerchantID == merchantID {
			out = append(out, copyWorkflow(wf))
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *fakeWorkflowRepo) UpdateCAS(_ context.Context, id uuid.UUID, expectStatus []string, upd repository.WorkflowUpdate) (*ent.WorkflowExecution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wf, ok := r.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	matched := false
	for _, s := range expectStatus {
		if wf.Status == s {
			matched = true
			break
		}
	}
	if !matched {
		return nil, common.ErrConflict
	}

	if upd.Status != nil {
		wf.Status = *upd.Status
	}
	if upd.ClearCurrentStage {
		wf.CurrentStage = nil
	} else if upd.CurrentStage != nil {
		stage := *upd.CurrentStage
		wf.CurrentStage = &stage
	}
	if upd.StagesCompleted != nil {
		wf.StagesCompleted = *upd.StagesCompleted
	}
	if upd.ProgressPercent != nil {
		wf.ProgressPercent = *upd.ProgressPercent
	}
	if upd.StatusData != nil {
		wf.StatusData = append(json.RawMessage(nil), upd.StatusData...)
	}
	if upd.ClearError {
		wf.ErrorMessage = nil
	} else if upd.ErrorMessage != nil {
		msg := *upd.ErrorMessage
		wf.ErrorMessage = &msg
	}
	if upd.ClearFailedStage {
		wf.FailedStage = nil
	} else if upd.FailedStage != nil {
		stage := *upd.FailedStage
		wf.FailedStage = &stage
	}
	if upd.StageStartedAt != nil {
		ts := *upd.StageStartedAt
		wf.StageStartedAt = &ts
	}
	if upd.StageCompletedAt != nil {
		ts := *upd.StageCompletedAt
		wf.StageCompletedAt = &ts
	}
	wf.UpdatedAt = time.Now().UTC()
	return copyWorkflow(wf), nil
}

// touch backdates a row's timestamps so recovery sweeps see it as stalled.
func (r *fakeWorkflowRepo) touch(id uuid.UUID, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if wf, ok := r.rows[id]; ok {
		wf.CreatedAt = at
		wf.UpdatedAt = at
	}
}

func copyWorkflow(wf *ent.WorkflowExecution) *ent.WorkflowExecution {
	cp := *wf
	return &cp
}

type fakeDeadLetterRepo struct {
	mu      sync.Mutex
	entries map[string]*ent.DeadLetterEntry
}

func newFakeDeadLetterRepo() *fakeDeadLetterRepo {
	return &fakeDeadLetterRepo{entries: make(map[string]*ent.DeadLetterEntry)}
}

func (r *fakeDeadLetterRepo) Create(_ context.Context, params repository.CreateDeadLetterParams) (*ent.DeadLetterEntry, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.entries[params.JobID]; ok {
		return existing, false, nil
	}
	entry := &ent.DeadLetterEntry{
		ID:            uuid.New(),
		JobID:         params.JobID,
		WorkflowID:    params.WorkflowID,
		Stage:         params.Stage,
		Payload:       append(json.RawMessage(nil), params.Payload...),
		FailureReason: params.FailureReason,
		AttemptsMade:  params.AttemptsMade,
		Priority:      params.Priority,
		Resolution:    string(constants.ResolutionPending),
		CreatedAt:     time.Now().UTC(),
	}
	r.entries[params.JobID] = entry
	return entry, true, nil
}

func (r *fakeDeadLetterRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.DeadLetterEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeDeadLetterRepo) GetByJobID(_ context.Context, jobID string) (*ent.DeadLetterEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[jobID]; ok {
		return e, nil
	}
	return nil, common.ErrNotFound
}

func (r *fakeDeadLetterRepo) List(_ context.Context, _ *string, _, _ int) ([]*ent.DeadLetterEntry, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*ent.DeadLetterEntry
	for _, e := range r.entries {
		out = append(out, e)
	}
	return out, len(out), nil
}

func (r *fakeDeadLetterRepo) ListByWorkflow(_ context.Context, workflowID uuid.UUID) ([]*ent.DeadLetterEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*ent.DeadLetterEntry
	for _, e := range r.entries {
		if e.WorkflowID == workflowID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeDeadLetterRepo) Annotate(_ context.Context, id uuid.UUID, notes, reviewedBy string) (*ent.DeadLetterEntry, error) {
	e, err := r.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ReviewNotes = &notes
	e.ReviewedBy = &reviewedBy
	return e, nil
}

func (r *fakeDeadLetterRepo) SetResolution(_ context.Context, id uuid.UUID, resolution, reviewedBy string) (*ent.DeadLetterEntry, error) {
	e, err := r.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e.Resolution = resolution
	e.ReviewedBy = &reviewedBy
	now := time.Now().UTC()
	e.ReviewedAt = &now
	return e, nil
}

func (r *fakeDeadLetterRepo) GetByReprocessedJobID(_ context.Context, jobID string) (*ent.DeadLetterEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.ReprocessedAsJobID != nil && *e.ReprocessedAsJobID == jobID {
			return e, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeDeadLetterRepo) StampReprocessed(_ context.Context, id uuid.UUID, newJobID, reviewedBy string) (*ent.DeadLetterEntry, error) {
	e, err := r.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ReprocessedAsJobID = &newJobID
	e.ReviewedBy = &reviewedBy
	return e, nil
}

// rig wires an orchestrator against in-memory fakes. Queues are registered
// but never started; tests pop jobs off the backend and feed outcomes back
// through the sink callbacks, so every transition is deterministic.
type rig struct {
	orch        *Orchestrator
	workflows   *fakeWorkflowRepo
	deadLetters *fakeDeadLetterRepo
	backend     *queue.MemoryBackend
	merchantID  uuid.UUID
}

func newRig(t *testing.T, policy ReviewPolicy) *rig {
	t.Helper()
	workflows := newFakeWorkflowRepo()
	deadLetters := newFakeDeadLetterRepo()
	backend := queue.NewMemoryBackend()
	publisher := events.NewPublisher(backend, nil)

	sink := &queue.LateSink{}
	registry := queue.NewRegistry(backend, sink, nil)
	for _, stage := range constants.AllStages {
		cfg := common.StageConfig{Concurrency: 1, MaxAttempts: 3, BackoffBase: time.Millisecond, BackoffMax: time.Millisecond}
		if err := registry.Register(stage, cfg, func(_ context.Context, _ *queue.Job, _ queue.ProgressReporter) (json.RawMessage, error) {
			return nil, nil
		}, stages.PayloadSchema(stage)); err != nil {
			t.Fatalf("register %s: %v", stage, err)
		}
	}

	orch := New(workflows, deadLetters, registry, backend, publisher, policy, queue.PriorityPolicy{}, nil)
	sink.Bind(orch)
	return &rig{
		orch:        orch,
		workflows:   workflows,
		deadLetters: deadLetters,
		backend:     backend,
		merchantID:  uuid.New(),
	}
}

func (r *rig) input() WorkflowInput {
	return WorkflowInput{
		DocumentID:  uuid.New(),
		Filename:    "po-2041.pdf",
		ContentType: "application/pdf",
		StorageKey:  "uploads/po-2041.pdf",
	}
}

func (r *rig) pop(t *testing.T, stage string) *queue.Job {
	t.Helper()
	job, err := r.backend.Dequeue(context.Background(), stage)
	if err != nil {
		t.Fatalf("no job in %s queue: %v", stage, err)
	}
	return job
}

func (r *rig) get(t *testing.T, id uuid.UUID) *ent.WorkflowExecution {
	t.Helper()
	wf, err := r.workflows.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	return wf
}

func extractionResult(confidence float32) json.RawMessage {
	b, _ := json.Marshal(map[string]any{
		"fields":     map[string]any{"total_amount": "129.90", "currency_code": "USD"},
		"confidence": confidence,
	})
	return b
}

func orderResult() json.RawMessage {
	return json.RawMessage(`{"order_id":"` + uuid.NewString() + `","created":true}`)
}

func TestCreateWorkflowStartsFirstStage(t *testing.T) {
	r := newRig(t, nil)
	ctx := context.Background()

	wf, err := r.orch.CreateWorkflow(ctx, r.merchantID, r.input())
	if err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}
	if wf.Status != string(constants.WorkflowProcessing) {
		t.Errorf("status = %q, want processing", wf.Status)
	}
	if wf.CurrentStage == nil || *wf.CurrentStage != constants.StageExtract {
		t.Errorf("current stage = %v, want extract", wf.CurrentStage)
	}
	if wf.StagesTotal != 3 {
		t.Errorf("stages total = %d, want default plan length 3", wf.StagesTotal)
	}

	job := r.pop(t, constants.StageExtract)
	if job.WorkflowID != wf.ID {
		t.Errorf("job workflow = %s, want %s", job.WorkflowID, wf.ID)
	}
	var payload stages.ExtractPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.StorageKey != "uploads/po-2041.pdf" {
		t.Errorf("payload storage key = %q", payload.StorageKey)
	}
}

func TestCreateWorkflowValidation(t *testing.T) {
	r := newRig(t, nil)
	ctx := context.Background()

	if _, err := r.orch.CreateWorkflow(ctx, r.merchantID, WorkflowInput{}); status.Code(err) != codes.InvalidArgument {
		t.Errorf("missing document err = %v, want InvalidArgument", err)
	}

	in := r.input()
	in.Plan = []string{"unknown_stage"}
	if _, err := r.orch.CreateWorkflow(ctx, r.merchantID, in); status.Code(err) != codes.InvalidArgument {
		t.Errorf("bad plan err = %v, want InvalidArgument", err)
	}

	in = r.input()
	in.Priority = constants.Priority("asap")
	if _, err := r.orch.CreateWorkflow(ctx, r.merchantID, in); status.Code(err) != codes.InvalidArgument {
		t.Errorf("bad priority err = %v, want InvalidArgument", err)
	}
}

func TestWorkflowAdvancesThroughDefaultPlan(t *testing.T) {
	r := newRig(t, nil)
	ctx := context.Background()

	wf, err := r.orch.CreateWorkflow(ctx, r.merchantID, r.input())
	if err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}

	// extract succeeds
	job := r.pop(t, constants.StageExtract)
	if err := r.orch.JobSucceeded(ctx, job, extractionResult(0.95)); err != nil {
		t.Fatalf("JobSucceeded(extract): %v", err)
	}
	cur := r.get(t, wf.ID)
	if cur.ProgressPercent != 33 {
		t.Errorf("progress after extract = %d, want 33", cur.ProgressPercent)
	}
	if cur.CurrentStage == nil || *cur.CurrentStage != constants.StagePersist {
		t.Fatalf("current stage = %v, want persist", cur.CurrentStage)
	}

	// the persist job carries the extraction verbatim
	job = r.pop(t, constants.StagePersist)
	var pp stages.PersistPayload
	if err := json.Unmarshal(job.Payload, &pp); err != nil {
		t.Fatalf("persist payload: %v", err)
	}
	if len(pp.Extraction) == 0 {
		t.Fatal("persist payload missing extraction result")
	}
	if err := r.orch.JobSucceeded(ctx, job, orderResult()); err != nil {
		t.Fatalf("JobSucceeded(persist): %v", err)
	}
	cur = r.get(t, wf.ID)
	if cur.ProgressPercent != 67 {
		t.Errorf("progress after persist = %d, want 67", cur.ProgressPercent)
	}

	// sync succeeds, workflow completes
	job = r.pop(t, constants.StageSync)
	if err := r.orch.JobSucceeded(ctx, job, json.RawMessage(`{"platform_order_id":"gid://shopify/Order/1"}`)); err != nil {
		t.Fatalf("JobSucceeded(sync): %v", err)
	}
	cur = r.get(t, wf.ID)
	if cur.Status != string(constants.WorkflowCompleted) {
		t.Errorf("status = %q, want completed", cur.Status)
	}
	if cur.ProgressPercent != 100 {
		t.Errorf("progress = %d, want 100", cur.ProgressPercent)
	}
	if cur.CurrentStage != nil {
		t.Errorf("current stage = %q, want cleared", *cur.CurrentStage)
	}
}

func TestLowConfidencePausesForReviewAndApproveResumes(t *testing.T) {
	policy := ConfidencePolicy{Thresholds: map[string]float32{constants.StageExtract: 0.8}}
	r := newRig(t, policy)
	ctx := context.Background()

	wf, err := r.orch.CreateWorkflow(ctx, r.merchantID, r.input())
	if err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}

	job := r.pop(t, constants.StageExtract)
	if err := r.orch.JobSucceeded(ctx, job, extractionResult(0.42)); err != nil {
		t.Fatalf("JobSucceeded: %v", err)
	}

	cur := r.get(t, wf.ID)
	if cur.Status != string(constants.WorkflowReviewNeeded) {
		t.Fatalf("status = %q, want review_needed", cur.Status)
	}
	sd := decodeStatusData(cur.StatusData)
	if sd.ReviewStage != constants.StageExtract {
		t.Errorf("review stage = %q, want extract", sd.ReviewStage)
	}

	// nothing advances while paused
	if _, err := r.backend.Dequeue(ctx, constants.StagePersist); !errors.Is(err, queue.ErrNoJob) {
		t.Fatalf("persist queue not empty while paused: %v", err)
	}

	approved, err := r.orch.Approve(ctx, wf.ID, "ops@example.com")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.Status != string(constants.WorkflowProcessing) {
		t.Errorf("status = %q, want processing", approved.Status)
	}
	if approved.CurrentStage == nil || *approved.CurrentStage != constants.StagePersist {
		t.Errorf("current stage = %v, want persist", approved.CurrentStage)
	}
	if approved.StagesCompleted != 1 {
		t.Errorf("stages completed = %d, want 1 (reviewed stage counts)", approved.StagesCompleted)
	}

	// the resumed job is seeded with the reviewed extraction
	job = r.pop(t, constants.StagePersist)
	var pp stages.PersistPayload
	if err := json.Unmarshal(job.Payload, &pp); err != nil {
		t.Fatalf("persist payload: %v", err)
	}
	if len(pp.Extraction) == 0 {
		t.Fatal("approved resume lost the reviewed stage result")
	}
}

func TestApproveOnLastStageCompletes(t *testing.T) {
	policy := ConfidencePolicy{Thresholds: map[string]float32{constants.StageExtract: 0.8}}
	r := newRig(t, policy)
	ctx := context.Background()

	in := r.input()
	in.Plan = []string{constants.StageExtract}
	wf, err := r.orch.CreateWorkflow(ctx, r.merchantID, in)
	if err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}

	job := r.pop(t, constants.StageExtract)
	if err := r.orch.JobSucceeded(ctx, job, extractionResult(0.1)); err != nil {
		t.Fatalf("JobSucceeded: %v", err)
	}

	approved, err := r.orch.Approve(ctx, wf.ID, "ops")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.Status != string(constants.WorkflowCompleted) {
		t.Errorf("status = %q, want completed", approved.Status)
	}
	if approved.ProgressPercent != 100 {
		t.Errorf("progress = %d, want 100", approved.ProgressPercent)
	}
}

func TestExhaustedPermanentFailureDeadLettersWorkflow(t *testing.T) {
	r := newRig(t, nil)
	ctx := context.Background()

	wf, err := r.orch.CreateWorkflow(ctx, r.merchantID, r.input())
	if err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}
	job := r.pop(t, constants.StageExtract)
	job.AttemptsMade = 1

	failure := queue.Permanent("unsupported document format", nil)
	if err := r.orch.JobExhausted(ctx, job, failure); err != nil {
		t.Fatalf("JobExhausted: %v", err)
	}

	cur := r.get(t, wf.ID)
	if cur.Status != string(constants.WorkflowFailed) {
		t.Fatalf("status = %q, want failed", cur.Status)
	}
	if cur.FailedStage == nil || *cur.FailedStage != constants.StageExtract {
		t.Errorf("failed stage = %v, want extract", cur.FailedStage)
	}
	sd := decodeStatusData(cur.StatusData)
	if sd.CanRetry {
		t.Error("permanent failure marked retryable")
	}
	if cur.ErrorMessage == nil || *cur.ErrorMessage == failure.Message {
		t.Errorf("merchant message = %v, must not expose the raw error", cur.ErrorMessage)
	}

	entry, err := r.deadLetters.GetByJobID(ctx, job.ID)
	if err != nil {
		t.Fatalf("dead letter entry missing: %v", err)
	}
	if entry.Stage != constants.StageExtract || entry.WorkflowID != wf.ID {
		t.Errorf("entry = %+v", entry)
	}

	// merchant retry is refused for permanent failures
	if _, err := r.orch.Retry(ctx, wf.ID); status.Code(err) != codes.FailedPrecondition {
		t.Errorf("Retry err = %v, want FailedPrecondition", err)
	}

	// operator reprocess from the dead letter works regardless
	newJob, err := r.orch.ReprocessFromDeadLetter(ctx, entry)
	if err != nil {
		t.Fatalf("ReprocessFromDeadLetter: %v", err)
	}
	if newJob.ID == job.ID {
		t.Error("reprocess reused the dead job id")
	}
	if _, err := r.deadLetters.StampReprocessed(ctx, entry.ID, newJob.ID, "ops"); err != nil {
		t.Fatalf("StampReprocessed: %v", err)
	}
	cur = r.get(t, wf.ID)
	if cur.Status != string(constants.WorkflowProcessing) {
		t.Errorf("status = %q, want processing", cur.Status)
	}
	// the entry stays open while the new job is in flight
	if e, _ := r.deadLetters.GetByID(ctx, entry.ID); e.Resolution != string(constants.ResolutionPending) {
		t.Errorf("resolution = %q while reprocess in flight, want pending", e.Resolution)
	}

	// the reprocessed run completes normally and closes the entry
	requeued := r.pop(t, constants.StageExtract)
	if err := r.orch.JobSucceeded(ctx, requeued, extractionResult(0.9)); err != nil {
		t.Fatalf("JobSucceeded after reprocess: %v", err)
	}
	cur = r.get(t, wf.ID)
	if cur.CurrentStage == nil || *cur.CurrentStage != constants.StagePersist {
		t.Errorf("current stage = %v, want persist", cur.CurrentStage)
	}
	closed, err := r.deadLetters.GetByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("entry lookup: %v", err)
	}
	if closed.Resolution != string(constants.ResolutionReprocess) {
		t.Errorf("resolution = %q after successful reprocess, want reprocess", closed.Resolution)
	}
}

func TestReprocessFailingAgainLeavesEntryOpen(t *testing.T) {
	r := newRig(t, nil)
	ctx := context.Background()

	wf, err := r.orch.CreateWorkflow(ctx, r.merchantID, r.input())
	if err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}
	job := r.pop(t, constants.StageExtract)
	job.AttemptsMade = 5
	if err := r.orch.JobExhausted(ctx, job, queue.Permanent("unsupported layout", nil)); err != nil {
		t.Fatalf("JobExhausted: %v", err)
	}
	entry, err := r.deadLetters.GetByJobID(ctx, job.ID)
	if err != nil {
		t.Fatalf("dead letter entry missing: %v", err)
	}

	newJob, err := r.orch.ReprocessFromDeadLetter(ctx, entry)
	if err != nil {
		t.Fatalf("ReprocessFromDeadLetter: %v", err)
	}
	if _, err := r.deadLetters.StampReprocessed(ctx, entry.ID, newJob.ID, "ops"); err != nil {
		t.Fatalf("StampReprocessed: %v", err)
	}

	requeued := r.pop(t, constants.StageExtract)
	requeued.AttemptsMade = 5
	if err := r.orch.JobExhausted(ctx, requeued, queue.Permanent("still unsupported", nil)); err != nil {
		t.Fatalf("JobExhausted on reprocessed job: %v", err)
	}

	// the original entry is reviewable again, the repeat failure gets its own
	reopened, err := r.deadLetters.GetByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("entry lookup: %v", err)
	}
	if reopened.Resolution != string(constants.ResolutionPending) {
		t.Errorf("resolution = %q after repeat failure, want pending", reopened.Resolution)
	}
	sibling, err := r.deadLetters.GetByJobID(ctx, requeued.ID)
	if err != nil {
		t.Fatalf("repeat failure entry missing: %v", err)
	}
	if sibling.ID == entry.ID {
		t.Error("repeat failure reused the original entry")
	}
	if cur := r.get(t, wf.ID); cur.Status != string(constants.WorkflowFailed) {
		t.Errorf("status = %q, want failed", cur.Status)
	}
}

func TestRetryReopensTransientFailure(t *testing.T) {
	r := newRig(t, nil)
	ctx := context.Background()

	wf, err := r.orch.CreateWorkflow(ctx, r.merchantID, r.input())
	if err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}
	job := r.pop(t, constants.StageExtract)
	job.AttemptsMade = 3
	if err := r.orch.JobExhausted(ctx, job, queue.Transient("extractor down", nil)); err != nil {
		t.Fatalf("JobExhausted: %v", err)
	}

	cur := r.get(t, wf.ID)
	if sd := decodeStatusData(cur.StatusData); !sd.CanRetry {
		t.Fatal("transient exhaustion should be retryable")
	}

	reopened, err := r.orch.Retry(ctx, wf.ID)
	if err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if reopened.Status != string(constants.WorkflowProcessing) {
		t.Errorf("status = %q, want processing", reopened.Status)
	}
	if reopened.CurrentStage == nil || *reopened.CurrentStage != constants.StageExtract {
		t.Errorf("current stage = %v, want extract", reopened.CurrentStage)
	}
	r.pop(t, constants.StageExtract)
}

func TestCancel(t *testing.T) {
	r := newRig(t, nil)
	ctx := context.Background()

	wf, err := r.orch.CreateWorkflow(ctx, r.merchantID, r.input())
	if err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}

	cancelled, err := r.orch.Cancel(ctx, wf.ID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if cancelled.Status != string(constants.WorkflowCancelled) {
		t.Errorf("status = %q, want cancelled", cancelled.Status)
	}

	// the queued job is gone
	if _, err := r.backend.Dequeue(ctx, constants.StageExtract); !errors.Is(err, queue.ErrNoJob) {
		t.Errorf("extract queue not drained: %v", err)
	}

	// a second cancel is refused
	if _, err := r.orch.Cancel(ctx, wf.ID); status.Code(err) != codes.FailedPrecondition {
		t.Errorf("double Cancel err = %v, want FailedPrecondition", err)
	}
}

func TestStaleResultAfterCancelIsDropped(t *testing.T) {
	r := newRig(t, nil)
	ctx := context.Background()

	wf, err := r.orch.CreateWorkflow(ctx, r.merchantID, r.input())
	if err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}
	job := r.pop(t, constants.StageExtract)

	if _, err := r.orch.Cancel(ctx, wf.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	// the worker finishes anyway; its result must not resurrect the workflow
	if err := r.orch.JobSucceeded(ctx, job, extractionResult(0.9)); err != nil {
		t.Fatalf("JobSucceeded: %v", err)
	}
	cur := r.get(t, wf.ID)
	if cur.Status != string(constants.WorkflowCancelled) {
		t.Errorf("status = %q, want cancelled", cur.Status)
	}
	if _, err := r.backend.Dequeue(ctx, constants.StagePersist); !errors.Is(err, queue.ErrNoJob) {
		t.Errorf("stale result enqueued the next stage")
	}
}

func TestRecoverStalledStartsOldPendingWorkflow(t *testing.T) {
	r := newRig(t, nil)
	ctx := context.Background()

	// simulate an enqueue outage at creation: pause the stage so Dequeue
	// yields nothing, then create and manually reset to pending
	in := r.input()
	rawInput, _ := json.Marshal(WorkflowInput{
		DocumentID: in.DocumentID, ContentType: in.ContentType,
		StorageKey: in.StorageKey, Plan: constants.DefaultPlan(),
		Priority: constants.PriorityNormal,
	})
	wf, err := r.workflows.Create(ctx, r.merchantID, in.DocumentID, 3, rawInput)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	r.workflows.touch(wf.ID, time.Now().Add(-time.Hour))

	if err := r.orch.RecoverStalled(ctx, time.Minute); err != nil {
		t.Fatalf("RecoverStalled: %v", err)
	}

	cur := r.get(t, wf.ID)
	if cur.Status != string(constants.WorkflowProcessing) {
		t.Errorf("status = %q, want processing", cur.Status)
	}
	r.pop(t, constants.StageExtract)
}

func TestRecoverStalledReenqueuesLostStageJob(t *testing.T) {
	r := newRig(t, nil)
	ctx := context.Background()

	wf, err := r.orch.CreateWorkflow(ctx, r.merchantID, r.input())
	if err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}
	// drop the queued job without completing it, as a crashed worker would
	job := r.pop(t, constants.StageExtract)
	if err := r.backend.Complete(ctx, job); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	r.workflows.touch(wf.ID, time.Now().Add(-time.Hour))

	if err := r.orch.RecoverStalled(ctx, time.Minute); err != nil {
		t.Fatalf("RecoverStalled: %v", err)
	}
	recovered := r.pop(t, constants.StageExtract)
	if recovered.WorkflowID != wf.ID {
		t.Errorf("recovered job workflow = %s, want %s", recovered.WorkflowID, wf.ID)
	}
}

func TestRecoverStalledResumesStrandedApproval(t *testing.T) {
	policy := ConfidencePolicy{Thresholds: map[string]float32{constants.StageExtract: 0.8}}
	r := newRig(t, policy)
	ctx := context.Background()

	wf, err := r.orch.CreateWorkflow(ctx, r.merchantID, r.input())
	if err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}
	job := r.pop(t, constants.StageExtract)
	if err := r.orch.JobSucceeded(ctx, job, extractionResult(0.42)); err != nil {
		t.Fatalf("JobSucceeded: %v", err)
	}

	// replay only the first of Approve's two writes, as a crash between
	// them would leave it
	cur := r.get(t, wf.ID)
	sd := decodeStatusData(cur.StatusData)
	sd.ApprovedBy = "ops"
	sd.ReviewStage = ""
	sd.ReviewReason = ""
	sd.Message = "approved, resuming"
	if _, err := r.workflows.UpdateCAS(ctx, wf.ID,
		[]string{string(constants.WorkflowReviewNeeded)},
		repository.WorkflowUpdate{
			Status:     strPtr(string(constants.WorkflowApproved)),
			StatusData: sd.encode(),
		}); err != nil {
		t.Fatalf("UpdateCAS: %v", err)
	}
	r.workflows.touch(wf.ID, time.Now().Add(-time.Hour))

	if err := r.orch.RecoverStalled(ctx, time.Minute); err != nil {
		t.Fatalf("RecoverStalled: %v", err)
	}

	cur = r.get(t, wf.ID)
	if cur.Status != string(constants.WorkflowProcessing) {
		t.Fatalf("status = %q, want processing", cur.Status)
	}
	if cur.CurrentStage == nil || *cur.CurrentStage != constants.StagePersist {
		t.Errorf("current stage = %v, want persist", cur.CurrentStage)
	}
	if cur.StagesCompleted != 1 {
		t.Errorf("stages completed = %d, want 1", cur.StagesCompleted)
	}
	resumed := r.pop(t, constants.StagePersist)
	if resumed.WorkflowID != wf.ID {
		t.Errorf("resumed job workflow = %s, want %s", resumed.WorkflowID, wf.ID)
	}
}

func TestRecentWorkflowsLeftAloneByRecovery(t *testing.T) {
	r := newRig(t, nil)
	ctx := context.Background()

	wf, err := r.orch.CreateWorkflow(ctx, r.merchantID, r.input())
	if err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}
	r.pop(t, constants.StageExtract)

	// inside the grace window: no duplicate job may appear
	if err := r.orch.RecoverStalled(ctx, time.Minute); err != nil {
		t.Fatalf("RecoverStalled: %v", err)
	}
	if _, err := r.backend.Dequeue(ctx, constants.StageExtract); !errors.Is(err, queue.ErrNoJob) {
		t.Errorf("recovery duplicated a live workflow's job (workflow %s)", wf.ID)
	}
}
