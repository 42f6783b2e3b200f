package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/gen/ent"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/events"
	"github.com/joseph-ayodele/orderflow/internal/queue"
	"github.com/joseph-ayodele/orderflow/internal/repository"
)

// Orchestrator drives workflow executions through their stage plan. All
// status transitions go through compare-and-set repository updates, so a
// stray worker callback racing an operator action loses cleanly instead of
// corrupting state.
type Orchestrator struct {
	workflows   repository.WorkflowRepository
	deadLetters repository.DeadLetterRepository
	registry    *queue.Registry
	backend     queue.Backend
	publisher   *events.Publisher
	policy      ReviewPolicy
	priorities  queue.PriorityPolicy
	logger      *slog.Logger
}

func New(
	workflows repository.WorkflowRepository,
	deadLetters repository.DeadLetterRepository,
	registry *queue.Registry,
	backend queue.Backend,
	publisher *events.Publisher,
	policy ReviewPolicy,
	priorities queue.PriorityPolicy,
	logger *slog.Logger,
) *Orchestrator {
	if policy == nil {
		policy = NoReviewPolicy{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		workflows:   workflows,
		deadLetters: deadLetters,
		registry:    registry,
		backend:     backend,
		publisher:   publisher,
		policy:      policy,
		priorities:  priorities,
		logger:      logger,
	}
}

// CreateWorkflow persists a new workflow execution for the merchant's
// document and enqueues its first stage. If the queue backend is down the
// workflow is left pending; RecoverStalled starts it once the backend is
// back.
func (o *Orchestrator) CreateWorkflow(ctx context.Context, merchantID uuid.UUID, input WorkflowInput) (*ent.WorkflowExecution, error) {
	if input.DocumentID == uuid.Nil {
		return nil, common.InvalidArgumentError("workflow input needs a document id")
	}
	if len(input.Plan) == 0 {
		input.Plan = constants.DefaultPlan()
	}
	for _, stage := range input.Plan {
		if !constants.ValidStage(stage) {
			return nil, common.InvalidArgumentErrorf("unknown stage %q in plan", stage)
		}
		if _, ok := o.registry.Queue(stage); !ok {
			return nil, common.InvalidArgumentErrorf("stage %q has no registered handler", stage)
		}
	}
	if input.Priority == "" {
		input.Priority = constants.PriorityNormal
	}
	if !input.Priority.Valid() {
		return nil, common.InvalidArgumentErrorf("unknown priority %q", input.Priority)
	}

	rawInput, err := json.Marshal(input)
	if err != nil {
		return nil, common.InternalErrorf("marshal workflow input: %v", err)
	}
	wf, err := o.workflows.Create(ctx, merchantID, input.DocumentID, len(input.Plan), rawInput)
	if err != nil {
		return nil, err
	}
	o.logger.Info("workflow created",
		"workflow_id", wf.ID, "merchant_id", merchantID,
		"document_id", input.DocumentID, "plan", input.Plan, "priority", input.Priority,
	)

	if err := o.startFirstStage(ctx, wf, input); err != nil {
		o.logger.Warn("workflow left pending, first stage not enqueued", "workflow_id", wf.ID, "error", err)
		return wf, nil
	}
	return o.workflows.GetByID(ctx, wf.ID)
}

// startFirstStage moves a pending workflow into processing and enqueues the
// first plan entry. The status flips before the enqueue so a fast worker
// callback never observes a pending row; an enqueue failure rolls the row
// back to pending.
func (o *Orchestrator) startFirstStage(ctx context.Context, wf *ent.WorkflowExecution, input WorkflowInput) error {
	first := input.Plan[0]
	now := time.Now().UTC()
	sd := decodeStatusData(wf.StatusData)
	sd.Message = "processing started"
	_, err := o.workflows.UpdateCAS(ctx, wf.ID,
		[]string{string(constants.WorkflowPending)},
		repository.WorkflowUpdate{
			Status:         strPtr(string(constants.WorkflowProcessing)),
			CurrentStage:   &first,
			StageStartedAt: &now,
			StatusData:     sd.encode(),
		})
	if err != nil {
		return err
	}

	if err := o.enqueueStage(ctx, wf.ID, wf.MerchantID, input, first, nil); err != nil {
		rollback := decodeStatusData(wf.StatusData)
		rollback.Message = "queue unavailable, start deferred"
		if _, casErr := o.workflows.UpdateCAS(ctx, wf.ID,
			[]string{string(constants.WorkflowProcessing)},
			repository.WorkflowUpdate{
				Status:            strPtr(string(constants.WorkflowPending)),
				ClearCurrentStage: true,
				StatusData:        rollback.encode(),
			}); casErr != nil {
			o.logger.Error("failed to roll workflow back to pending", "workflow_id", wf.ID, "error", casErr)
		}
		return err
	}

	o.publisher.Publish(ctx, events.Event{
		Type:       events.TypeProgress,
		WorkflowID: wf.ID,
		MerchantID: wf.MerchantID,
		DocumentID: input.DocumentID,
		Percent:    0,
		Message:    "processing started",
	})
	return nil
}

// enqueueStage builds and submits the queue job for one stage. Priority is
// re-derived per stage so a retry or a bulky payload can shift the tier.
func (o *Orchestrator) enqueueStage(ctx context.Context, workflowID, merchantID uuid.UUID, input WorkflowInput, stage string, prior json.RawMessage) error {
	payload, err := buildStagePayload(stage, input, prior)
	if err != nil {
		return err
	}
	pri := o.priorities.Assign(input.Priority, input.Urgent, len(payload), 0)
	job := &queue.Job{
		ID:         uuid.NewString(),
		Stage:      stage,
		WorkflowID: workflowID,
		MerchantID: merchantID,
		Payload:    payload,
		Priority:   pri,
	}
	return o.registry.Enqueue(ctx, job, o.priorities.EnqueueDelay(pri))
}

// Cancel stops a workflow that has not reached a terminal state. Outstanding
// queue jobs are removed best-effort; a job already running completes, and
// its callback is discarded against the cancelled row.
func (o *Orchestrator) Cancel(ctx context.Context, id uuid.UUID) (*ent.WorkflowExecution, error) {
	wf, err := o.workflows.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	status := constants.WorkflowStatus(wf.Status)
	if status.Terminal() {
		return nil, common.FailedPreconditionError(fmt.Sprintf("workflow is already %s", wf.Status))
	}

	sd := decodeStatusData(wf.StatusData)
	sd.Message = "cancelled by operator"
	sd.CanRetry = false
	updated, err := o.workflows.UpdateCAS(ctx, id,
		[]string{
			string(constants.WorkflowPending),
			string(constants.WorkflowProcessing),
			string(constants.WorkflowReviewNeeded),
			string(constants.WorkflowApproved),
		},
		repository.WorkflowUpdate{
			Status:            strPtr(string(constants.WorkflowCancelled)),
			ClearCurrentStage: true,
			StatusData:        sd.encode(),
		})
	if err != nil {
		return nil, err
	}

	if wf.CurrentStage != nil {
		o.removeQueuedJobs(ctx, *wf.CurrentStage, id)
	}

	o.publisher.Publish(ctx, events.Event{
		Type:       events.TypeProgress,
		WorkflowID: id,
		MerchantID: wf.MerchantID,
		Message:    "workflow cancelled",
	})
	o.logger.Info("workflow cancelled", "workflow_id", id)
	return updated, nil
}

func (o *Orchestrator) removeQueuedJobs(ctx context.Context, stage string, workflowID uuid.UUID) {
	ids, err := o.backend.FindByWorkflow(ctx, stage, workflowID)
	if err != nil {
		o.logger.Warn("could not list queued jobs for cancelled workflow", "workflow_id", workflowID, "error", err)
		return
	}
	for _, jobID := range ids {
		if err := o.backend.Remove(ctx, stage, jobID); err != nil && !errors.Is(err, queue.ErrJobNotFound) {
			o.logger.Warn("could not remove queued job", "workflow_id", workflowID, "job_id", jobID, "error", err)
		}
	}
}

// Retry reopens a failed workflow at its failed stage. Only workflows whose
// failure was classified retryable accept it; permanently failed documents
// go through the dead letter review flow instead.
func (o *Orchestrator) Retry(ctx context.Context, id uuid.UUID) (*ent.WorkflowExecution, error) {
	wf, err := o.workflows.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wf.Status != string(constants.WorkflowFailed) {
		return nil, common.FailedPreconditionError(fmt.Sprintf("only failed workflows can be retried, workflow is %s", wf.Status))
	}
	sd := decodeStatusData(wf.StatusData)
	if !sd.CanRetry {
		return nil, common.FailedPreconditionError("this failure is not retryable; review its dead letter entry instead")
	}
	if wf.FailedStage == nil {
		return nil, common.InternalError("failed workflow has no failed stage recorded")
	}
	return o.reopen(ctx, wf, *wf.FailedStage, "retry requested")
}

// reopen moves a failed workflow back to processing at the given stage and
// enqueues a fresh job with a full attempt budget.
func (o *Orchestrator) reopen(ctx context.Context, wf *ent.WorkflowExecution, stage string, reason string) (*ent.WorkflowExecution, error) {
	input, err := decodeInput(wf.InputData)
	if err != nil {
		return nil, common.InternalErrorf("workflow %s: %v", wf.ID, err)
	}
	sd := decodeStatusData(wf.StatusData)
	sd.Message = reason
	now := time.Now().UTC()

	updated, err := o.workflows.UpdateCAS(ctx, wf.ID,
		[]string{string(constants.WorkflowFailed)},
		repository.WorkflowUpdate{
			Status:           strPtr(string(constants.WorkflowProcessing)),
			CurrentStage:     &stage,
			ClearError:       true,
			ClearFailedStage: true,
			StageStartedAt:   &now,
			StatusData:       sd.encode(),
		})
	if err != nil {
		return nil, err
	}

	prior := priorResult(input.Plan, stage, sd.StageResults)
	if err := o.enqueueStage(ctx, wf.ID, wf.MerchantID, input, stage, prior); err != nil {
		return updated, common.WrapError(err, "workflow reopened but stage not enqueued; recovery will re-enqueue")
	}

	o.publisher.Publish(ctx, events.Event{
		Type:       events.TypeProgress,
		WorkflowID: wf.ID,
		MerchantID: wf.MerchantID,
		Stage:      stage,
		Percent:    updated.ProgressPercent,
		Message:    reason,
	})
	o.logger.Info("workflow reopened", "workflow_id", wf.ID, "stage", stage, "reason", reason)
	return updated, nil
}

// Approve releases a workflow paused for review. The paused stage's result
// stands: the workflow counts that stage completed and resumes at the next
// plan entry (or completes if the paused stage was the last).
func (o *Orchestrator) Approve(ctx context.Context, id uuid.UUID, reviewedBy string) (*ent.WorkflowExecution, error) {
	wf, err := o.workflows.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wf.Status != string(constants.WorkflowReviewNeeded) {
		return nil, common.FailedPreconditionError(fmt.Sprintf("only workflows awaiting review can be approved, workflow is %s", wf.Status))
	}
	input, err := decodeInput(wf.InputData)
	if err != nil {
		return nil, common.InternalErrorf("workflow %s: %v", id, err)
	}
	sd := decodeStatusData(wf.StatusData)
	paused := sd.ReviewStage
	if paused == "" && wf.CurrentStage != nil {
		paused = *wf.CurrentStage
	}
	if paused == "" {
		return nil, common.InternalError("workflow awaiting review has no paused stage recorded")
	}

	sd.ApprovedBy = reviewedBy
	sd.ReviewStage = ""
	sd.ReviewReason = ""
	sd.Message = "approved, resuming"
	if _, err := o.workflows.UpdateCAS(ctx, id,
		[]string{string(constants.WorkflowReviewNeeded)},
		repository.WorkflowUpdate{
			Status:     strPtr(string(constants.WorkflowApproved)),
			StatusData: sd.encode(),
		}); err != nil {
		return nil, err
	}

	updated, err := o.resumeApproved(ctx, wf, input, sd, paused)
	if err != nil {
		return nil, err
	}
	o.logger.Info("workflow approved", "workflow_id", id, "reviewed_by", reviewedBy)
	return updated, nil
}

// resumeApproved drives an approved workflow out of the approved state:
// completing it if the paused stage was the last plan entry, otherwise back
// to processing with the next stage enqueued. Called by Approve and by
// recovery for rows stranded in approved by a crash between the two writes.
func (o *Orchestrator) resumeApproved(ctx context.Context, wf *ent.WorkflowExecution, input WorkflowInput, sd StatusData, paused string) (*ent.WorkflowExecution, error) {
	completed := wf.StagesCompleted + 1
	percent := progressPercent(completed, wf.StagesTotal)
	next, err := nextStage(input.Plan, paused)
	if err != nil {
		return nil, common.InternalErrorf("workflow %s: %v", wf.ID, err)
	}
	now := time.Now().UTC()

	if next == "" {
		sd.Message = "completed"
		updated, err := o.workflows.UpdateCAS(ctx, wf.ID,
			[]string{string(constants.WorkflowApproved)},
			repository.WorkflowUpdate{
				Status:            strPtr(string(constants.WorkflowCompleted)),
				ClearCurrentStage: true,
				StagesCompleted:   &completed,
				ProgressPercent:   &percent,
				StageCompletedAt:  &now,
				StatusData:        sd.encode(),
			})
		if err != nil {
			return nil, err
		}
		o.publishCompletion(ctx, wf.MerchantID, wf.ID, input.DocumentID)
		return updated, nil
	}

	sd.Message = "resuming at " + next
	updated, err := o.workflows.UpdateCAS(ctx, wf.ID,
		[]string{string(constants.WorkflowApproved)},
		repository.WorkflowUpdate{
			Status:           strPtr(string(constants.WorkflowProcessing)),
			CurrentStage:     &next,
			StagesCompleted:  &completed,
			ProgressPercent:  &percent,
			StageStartedAt:   &now,
			StageCompletedAt: &now,
			StatusData:       sd.encode(),
		})
	if err != nil {
		return nil, err
	}

	prior := sd.StageResults[paused]
	if err := o.enqueueStage(ctx, wf.ID, wf.MerchantID, input, next, prior); err != nil {
		o.logger.Error("approved workflow resumed but stage not enqueued", "workflow_id", wf.ID, "stage", next, "error", err)
	}
	o.publisher.Publish(ctx, events.Event{
		Type:       events.TypeProgress,
		WorkflowID: wf.ID,
		MerchantID: wf.MerchantID,
		Stage:      next,
		Percent:    percent,
		Message:    "approved, resuming at " + next,
	})
	o.logger.Info("approved workflow resumed", "workflow_id", wf.ID, "resumed_at", next)
	return updated, nil
}

// ReprocessFromDeadLetter enqueues a fresh job for the dead-lettered stage
// and reopens the owning workflow. Unlike Retry this is an operator action:
// it works even when the recorded failure was permanent, on the premise that
// the operator fixed the underlying cause.
func (o *Orchestrator) ReprocessFromDeadLetter(ctx context.Context, entry *ent.DeadLetterEntry) (*queue.Job, error) {
	wf, err := o.workflows.GetByID(ctx, entry.WorkflowID)
	if err != nil {
		return nil, err
	}
	if wf.Status != string(constants.WorkflowFailed) {
		return nil, common.FailedPreconditionError(fmt.Sprintf("workflow is %s, only failed workflows can be reprocessed", wf.Status))
	}

	sd := decodeStatusData(wf.StatusData)
	sd.Message = "reprocessing from dead letter"
	now := time.Now().UTC()
	if _, err := o.workflows.UpdateCAS(ctx, wf.ID,
		[]string{string(constants.WorkflowFailed)},
		repository.WorkflowUpdate{
			Status:           strPtr(string(constants.WorkflowProcessing)),
			CurrentStage:     strPtr(entry.Stage),
			ClearError:       true,
			ClearFailedStage: true,
			StageStartedAt:   &now,
			StatusData:       sd.encode(),
		}); err != nil {
		return nil, err
	}

	pri := constants.Priority(entry.Priority)
	if !pri.Valid() {
		pri = constants.PriorityNormal
	}
	job := &queue.Job{
		ID:         uuid.NewString(),
		Stage:      entry.Stage,
		WorkflowID: wf.ID,
		MerchantID: wf.MerchantID,
		Payload:    append(json.RawMessage(nil), entry.Payload...),
		Priority:   pri,
	}
	if err := o.registry.Enqueue(ctx, job, 0); err != nil {
		return nil, err
	}

	o.publisher.Publish(ctx, events.Event{
		Type:       events.TypeProgress,
		WorkflowID: wf.ID,
		MerchantID: wf.MerchantID,
		Stage:      entry.Stage,
		Percent:    wf.ProgressPercent,
		Message:    "reprocessing " + entry.Stage,
	})
	o.logger.Info("dead letter reprocessed", "workflow_id", wf.ID, "entry_id", entry.ID, "new_job_id", job.ID)
	return job, nil
}

// RecoverStalled repairs workflows orphaned by a crash or a queue outage:
// pending workflows older than the grace window get their first stage
// enqueued, processing workflows with no job anywhere in their current
// stage's queue get one re-enqueued, and approved workflows whose resume
// never landed are driven forward again. Idempotent; meant to run at startup
// and on a timer.
func (o *Orchestrator) RecoverStalled(ctx context.Context, grace time.Duration) error {
	cutoff := time.Now().UTC().Add(-grace)

	pending, err := o.workflows.ListByStatus(ctx, string(constants.WorkflowPending), 500)
	if err != nil {
		return err
	}
	for _, wf := range pending {
		if wf.CreatedAt.After(cutoff) {
			continue
		}
		input, err := decodeInput(wf.InputData)
		if err != nil {
			o.logger.Error("cannot recover pending workflow", "workflow_id", wf.ID, "error", err)
			continue
		}
		if err := o.startFirstStage(ctx, wf, input); err != nil {
			o.logger.Warn("pending workflow still not startable", "workflow_id", wf.ID, "error", err)
		} else {
			o.logger.Info("recovered pending workflow", "workflow_id", wf.ID)
		}
	}

	processing, err := o.workflows.ListByStatus(ctx, string(constants.WorkflowProcessing), 500)
	if err != nil {
		return err
	}
	for _, wf := range processing {
		if wf.CurrentStage == nil || wf.UpdatedAt.After(cutoff) {
			continue
		}
		stage := *wf.CurrentStage
		present, err := o.stageJobPresent(ctx, stage, wf.ID)
		if err != nil {
			o.logger.Warn("cannot inspect queue for stalled workflow", "workflow_id", wf.ID, "error", err)
			continue
		}
		if present {
			continue
		}
		input, err := decodeInput(wf.InputData)
		if err != nil {
			o.logger.Error("cannot recover processing workflow", "workflow_id", wf.ID, "error", err)
			continue
		}
		sd := decodeStatusData(wf.StatusData)
		prior := priorResult(input.Plan, stage, sd.StageResults)
		if err := o.enqueueStage(ctx, wf.ID, wf.MerchantID, input, stage, prior); err != nil {
			o.logger.Warn("could not re-enqueue stalled stage", "workflow_id", wf.ID, "stage", stage, "error", err)
			continue
		}
		o.logger.Info("re-enqueued stalled stage", "workflow_id", wf.ID, "stage", stage)
	}

	// a crash between Approve's two writes leaves the row in approved with
	// nothing queued; replay the resume step
	approved, err := o.workflows.ListByStatus(ctx, string(constants.WorkflowApproved), 500)
	if err != nil {
		return err
	}
	for _, wf := range approved {
		if wf.CurrentStage == nil || wf.UpdatedAt.After(cutoff) {
			continue
		}
		input, err := decodeInput(wf.InputData)
		if err != nil {
			o.logger.Error("cannot recover approved workflow", "workflow_id", wf.ID, "error", err)
			continue
		}
		sd := decodeStatusData(wf.StatusData)
		if _, err := o.resumeApproved(ctx, wf, input, sd, *wf.CurrentStage); err != nil {
			o.logger.Warn("approved workflow still not resumable", "workflow_id", wf.ID, "error", err)
			continue
		}
		o.logger.Info("recovered approved workflow", "workflow_id", wf.ID)
	}
	return nil
}

// stageJobPresent reports whether any waiting, delayed, or active job for
// the workflow exists in the stage's queue.
func (o *Orchestrator) stageJobPresent(ctx context.Context, stage string, workflowID uuid.UUID) (bool, error) {
	ids, err := o.backend.FindByWorkflow(ctx, stage, workflowID)
	if err != nil {
		return false, err
	}
	if len(ids) > 0 {
		return true, nil
	}
	active, err := o.backend.JobsByState(ctx, stage, constants.JobActive, 1000)
	if err != nil {
		return false, err
	}
	for _, job := range active {
		if job.WorkflowID == workflowID {
			return true, nil
		}
	}
	return false, nil
}

func (o *Orchestrator) publishCompletion(ctx context.Context, merchantID, workflowID, documentID uuid.UUID) {
	o.publisher.Publish(ctx, events.Event{
		Type:       events.TypeCompletion,
		WorkflowID: workflowID,
		MerchantID: merchantID,
		DocumentID: documentID,
		Percent:    100,
		Message:    "all stages completed",
	})
}

func strPtr(s string) *string { return &s }
