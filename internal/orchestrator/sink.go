package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/events"
	"github.com/joseph-ayodele/orderflow/internal/queue"
	"github.com/joseph-ayodele/orderflow/internal/repository"
)

// The orchestrator is the queue's result sink: workers report job outcomes
// here and this file turns them into workflow transitions. Every callback
// tolerates stale jobs: a cancel or a terminal transition may have raced
// the worker, in which case the outcome is logged and dropped.

var _ queue.Sink = (*Orchestrator)(nil)

func (o *Orchestrator) JobStarted(ctx context.Context, job *queue.Job) {
	now := time.Now().UTC()
	_, err := o.workflows.UpdateCAS(ctx, job.WorkflowID,
		[]string{string(constants.WorkflowProcessing)},
		repository.WorkflowUpdate{StageStartedAt: &now})
	if err != nil && !errors.Is(err, common.ErrConflict) {
		o.logger.Warn("could not stamp stage start", "workflow_id", job.WorkflowID, "error", err)
	}
	o.publisher.Publish(ctx, events.Event{
		Type:        events.TypeStage,
		WorkflowID:  job.WorkflowID,
		MerchantID:  job.MerchantID,
		Stage:       job.Stage,
		StageStatus: events.StageStarted,
	})
}

func (o *Orchestrator) JobProgress(ctx context.Context, job *queue.Job, percent int, message string) {
	o.publisher.Publish(ctx, events.Event{
		Type:       events.TypeProgress,
		WorkflowID: job.WorkflowID,
		MerchantID: job.MerchantID,
		Stage:      job.Stage,
		Percent:    percent,
		Message:    message,
	})
}

func (o *Orchestrator) JobRetried(ctx context.Context, job *queue.Job, failure *queue.Failure, delay time.Duration) {
	o.publisher.Publish(ctx, events.Event{
		Type:        events.TypeStage,
		WorkflowID:  job.WorkflowID,
		MerchantID:  job.MerchantID,
		Stage:       job.Stage,
		StageStatus: events.StageFailed,
		Message:     fmt.Sprintf("attempt %d/%d failed, retrying in %s", job.AttemptsMade, job.MaxAttempts, delay.Round(time.Second)),
		CanRetry:    true,
	})
}

// JobSucceeded advances the workflow: pause for review, complete, or enqueue
// the next plan entry. The workflow row is written before any event goes out.
func (o *Orchestrator) JobSucceeded(ctx context.Context, job *queue.Job, result json.RawMessage) error {
	o.closeReprocessedEntry(ctx, job)

	wf, err := o.workflows.GetByID(ctx, job.WorkflowID)
	if err != nil {
		return err
	}
	if wf.Status != string(constants.WorkflowProcessing) || wf.CurrentStage == nil || *wf.CurrentStage != job.Stage {
		o.logger.Info("dropping stale job result",
			"workflow_id", job.WorkflowID, "job_id", job.ID,
			"stage", job.Stage, "workflow_status", wf.Status,
		)
		return nil
	}
	input, err := decodeInput(wf.InputData)
	if err != nil {
		return common.InternalErrorf("workflow %s: %v", wf.ID, err)
	}

	sd := decodeStatusData(wf.StatusData)
	sd.StageResults[job.Stage] = result
	now := time.Now().UTC()

	if needed, reason := o.policy.NeedsReview(job.Stage, result); needed {
		sd.ReviewStage = job.Stage
		sd.ReviewReason = reason
		sd.CanRetry = true
		sd.Message = "waiting for review: " + reason
		if _, err := o.workflows.UpdateCAS(ctx, wf.ID,
			[]string{string(constants.WorkflowProcessing)},
			repository.WorkflowUpdate{
				Status:           strPtr(string(constants.WorkflowReviewNeeded)),
				StageCompletedAt: &now,
				StatusData:       sd.encode(),
			}); err != nil {
			if errors.Is(err, common.ErrConflict) {
				o.logger.Info("review pause lost to a concurrent transition", "workflow_id", wf.ID)
				return nil
			}
			return err
		}
		o.publishStageDone(ctx, job)
		o.publisher.Publish(ctx, events.Event{
			Type:       events.TypeProgress,
			WorkflowID: wf.ID,
			MerchantID: wf.MerchantID,
			Stage:      job.Stage,
			Percent:    wf.ProgressPercent,
			Message:    "paused for review: " + reason,
		})
		o.logger.Info("workflow paused for review", "workflow_id", wf.ID, "stage", job.Stage, "reason", reason)
		return nil
	}

	completed := wf.StagesCompleted + 1
	percent := progressPercent(completed, wf.StagesTotal)
	next, err := nextStage(input.Plan, job.Stage)
	if err != nil {
		return common.InternalErrorf("workflow %s: %v", wf.ID, err)
	}

	if next == "" {
		sd.Message = "completed"
		if _, err := o.workflows.UpdateCAS(ctx, wf.ID,
			[]string{string(constants.WorkflowProcessing)},
			repository.WorkflowUpdate{
				Status:            strPtr(string(constants.WorkflowCompleted)),
				ClearCurrentStage: true,
				StagesCompleted:   &completed,
				ProgressPercent:   &percent,
				StageCompletedAt:  &now,
				StatusData:        sd.encode(),
			}); err != nil {
			if errors.Is(err, common.ErrConflict) {
				o.logger.Info("completion lost to a concurrent transition", "workflow_id", wf.ID)
				return nil
			}
			return err
		}
		o.publishStageDone(ctx, job)
		o.publishCompletion(ctx, wf.MerchantID, wf.ID, input.DocumentID)
		o.logger.Info("workflow completed", "workflow_id", wf.ID)
		return nil
	}

	sd.Message = next + " queued"
	if _, err := o.workflows.UpdateCAS(ctx, wf.ID,
		[]string{string(constants.WorkflowProcessing)},
		repository.WorkflowUpdate{
			CurrentStage:     &next,
			StagesCompleted:  &completed,
			ProgressPercent:  &percent,
			StageCompletedAt: &now,
			StatusData:       sd.encode(),
		}); err != nil {
		if errors.Is(err, common.ErrConflict) {
			o.logger.Info("stage advance lost to a concurrent transition", "workflow_id", wf.ID)
			return nil
		}
		return err
	}

	if err := o.enqueueStage(ctx, wf.ID, wf.MerchantID, input, next, result); err != nil {
		// row already points at the next stage; recovery re-enqueues it
		o.logger.Error("next stage not enqueued", "workflow_id", wf.ID, "stage", next, "error", err)
	}

	o.publishStageDone(ctx, job)
	o.publisher.Publish(ctx, events.Event{
		Type:       events.TypeProgress,
		WorkflowID: wf.ID,
		MerchantID: wf.MerchantID,
		Stage:      next,
		Percent:    percent,
		Message:    job.Stage + " completed",
	})
	return nil
}

// JobExhausted records the forensic dead letter entry, then marks the
// workflow failed with a merchant-readable message. The entry is written
// first so it survives even if the status transition loses a race.
func (o *Orchestrator) JobExhausted(ctx context.Context, job *queue.Job, failure *queue.Failure) error {
	stack := failure.Stack
	if stack == "" && failure.Cause != nil {
		stack = fmt.Sprintf("%+v", failure.Cause)
	}
	entry, created, err := o.deadLetters.Create(ctx, repository.CreateDeadLetterParams{
		JobID:         job.ID,
		WorkflowID:    job.WorkflowID,
		Stage:         job.Stage,
		Payload:       job.Payload,
		FailureReason: failure.Message,
		FailureStack:  stack,
		AttemptsMade:  job.AttemptsMade,
		Priority:      string(job.Priority),
	})
	if err != nil {
		return err
	}
	if created {
		o.logger.Error("job dead lettered",
			"workflow_id", job.WorkflowID, "job_id", job.ID, "entry_id", entry.ID,
			"stage", job.Stage, "attempts", job.AttemptsMade, "retryable", failure.Retryable,
		)
	}

	if origin, err := o.deadLetters.GetByReprocessedJobID(ctx, job.ID); err == nil {
		// the original entry stays pending so the operator can review it again
		o.logger.Warn("reprocess attempt failed again",
			"origin_entry_id", origin.ID, "job_id", job.ID, "stage", job.Stage)
	}

	wf, err := o.workflows.GetByID(ctx, job.WorkflowID)
	if err != nil {
		return err
	}
	msg := merchantMessage(job.Stage, failure)
	sd := decodeStatusData(wf.StatusData)
	sd.CanRetry = failure.Retryable
	sd.Message = msg
	if _, err := o.workflows.UpdateCAS(ctx, job.WorkflowID,
		[]string{string(constants.WorkflowProcessing)},
		repository.WorkflowUpdate{
			Status:            strPtr(string(constants.WorkflowFailed)),
			ClearCurrentStage: true,
			FailedStage:       strPtr(job.Stage),
			ErrorMessage:      &msg,
			StatusData:        sd.encode(),
		}); err != nil {
		if errors.Is(err, common.ErrConflict) {
			o.logger.Info("failure transition lost to a concurrent transition", "workflow_id", job.WorkflowID)
			return nil
		}
		return err
	}

	o.publisher.Publish(ctx, events.Event{
		Type:       events.TypeError,
		WorkflowID: job.WorkflowID,
		MerchantID: job.MerchantID,
		Stage:      job.Stage,
		Error:      msg,
		CanRetry:   failure.Retryable,
	})
	return nil
}

// closeReprocessedEntry resolves the dead letter entry whose reprocess
// attempt this job was. The entry keeps its pending resolution while the
// attempt is in flight; only the attempt's own success closes it. A repeat
// failure leaves it pending for another review.
func (o *Orchestrator) closeReprocessedEntry(ctx context.Context, job *queue.Job) {
	entry, err := o.deadLetters.GetByReprocessedJobID(ctx, job.ID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			o.logger.Warn("reprocess origin lookup failed", "job_id", job.ID, "error", err)
		}
		return
	}
	if entry.Resolution != string(constants.ResolutionPending) {
		return
	}
	reviewedBy := ""
	if entry.ReviewedBy != nil {
		reviewedBy = *entry.ReviewedBy
	}
	if _, err := o.deadLetters.SetResolution(ctx, entry.ID, string(constants.ResolutionReprocess), reviewedBy); err != nil {
		o.logger.Error("reprocessed entry not resolved", "entry_id", entry.ID, "job_id", job.ID, "error", err)
		return
	}
	o.logger.Info("dead letter entry closed after successful reprocess", "entry_id", entry.ID, "job_id", job.ID)
}

func (o *Orchestrator) publishStageDone(ctx context.Context, job *queue.Job) {
	o.publisher.Publish(ctx, events.Event{
		Type:        events.TypeStage,
		WorkflowID:  job.WorkflowID,
		MerchantID:  job.MerchantID,
		Stage:       job.Stage,
		StageStatus: events.StageCompleted,
	})
}

// merchantMessage translates an internal failure into the short message
// shown to the merchant. Raw errors and stack traces never leave the dead
// letter store.
func merchantMessage(stage string, failure *queue.Failure) string {
	step := stageLabel(stage)
	if failure.Retryable {
		return fmt.Sprintf("We hit a temporary problem while %s. You can retry this document.", step)
	}
	return fmt.Sprintf("This document could not be processed while %s. Retrying will not help; please check the document or contact support.", step)
}

func stageLabel(stage string) string {
	switch stage {
	case constants.StageExtract:
		return "reading the document"
	case constants.StagePersist:
		return "saving the order"
	case constants.StageSync:
		return "syncing with your store"
	case constants.StageImage:
		return "preparing the image"
	case constants.StageBroadcast:
		return "sending notifications"
	}
	return "processing the document"
}
