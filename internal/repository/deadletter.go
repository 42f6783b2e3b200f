package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent"
	entdl "github.com/joseph-ayodele/orderflow/gen/ent/deadletterentry"
	"github.com/joseph-ayodele/orderflow/internal/common"
)

// CreateDeadLetterParams carries the forensic snapshot of an exhausted job.
type CreateDeadLetterParams struct {
	JobID         string
	WorkflowID    uuid.UUID
	Stage         string
	Payload       json.RawMessage
	FailureReason string
	FailureStack  string
	AttemptsMade  int
	Priority      string
}

type DeadLetterRepository interface {
	// Create writes the entry exactly once per job id. The bool reports
	// whether a new row was written; repeated failure polling returns the
	// existing entry instead of duplicating it.
	Create(ctx context.Context, params CreateDeadLetterParams) (*ent.DeadLetterEntry, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.DeadLetterEntry, error)
	GetByJobID(ctx context.Context, jobID string) (*ent.DeadLetterEntry, error)
	// GetByReprocessedJobID finds the entry whose reprocess attempt spawned
	// the given job, so the attempt's outcome can be folded back into it.
	GetByReprocessedJobID(ctx context.Context, jobID string) (*ent.DeadLetterEntry, error)
	List(ctx context.Context, resolution *string, limit, offset int) ([]*ent.DeadLetterEntry, int, error)
	ListByWorkflow(ctx context.Context, workflowID uuid.UUID) ([]*ent.DeadLetterEntry, error)
	Annotate(ctx context.Context, id uuid.UUID, notes, reviewedBy string) (*ent.DeadLetterEntry, error)
	SetResolution(ctx context.Context, id uuid.UUID, resolution, reviewedBy string) (*ent.DeadLetterEntry, error)
	StampReprocessed(ctx context.Context, id uuid.UUID, newJobID, reviewedBy string) (*ent.DeadLetterEntry, error)
}

type deadLetterRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDeadLetterRepository(entc *ent.Client, logger *slog.Logger) DeadLetterRepository {
	return &deadLetterRepo{ent: entc, logger: logger}
}

func (r *deadLetterRepo) Create(ctx context.Context, params CreateDeadLetterParams) (*ent.DeadLetterEntry, bool, error) {
	if existing, err := r.GetByJobID(ctx, params.JobID); err == nil {
		return existing, false, nil
	}

	entry, err := r.ent.DeadLetterEntry.
		Create().
		SetJobID(params.JobID).
		SetWorkflowID(params.WorkflowID).
		SetStage(params.Stage).
		SetPayload(params.Payload).
		SetFailureReason(params.FailureReason).
		SetFailureStack(params.FailureStack).
		SetAttemptsMade(params.AttemptsMade).
		SetPriority(params.Priority).
		Save(ctx)
	if err != nil {
		// unique job_id index closes the check-then-create race
		if ent.IsConstraintError(err) {
			if existing, getErr := r.GetByJobID(ctx, params.JobID); getErr == nil {
				return existing, false, nil
			}
		}
		r.logger.Error("dead letter create failed", "job_id", params.JobID, "workflow_id", params.WorkflowID, "error", err)
		return nil, false, err
	}
	r.logger.Info("dead letter entry created",
		"entry_id", entry.ID, "job_id", params.JobID,
		"workflow_id", params.WorkflowID, "stage", params.Stage,
	)
	return entry, true, nil
}

func (r *deadLetterRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.DeadLetterEntry, error) {
	entry, err := r.ent.DeadLetterEntry.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (r *deadLetterRepo) GetByJobID(ctx context.Context, jobID string) (*ent.DeadLetterEntry, error) {
	entry, err := r.ent.DeadLetterEntry.Query().
		Where(entdl.JobID(jobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (r *deadLetterRepo) GetByReprocessedJobID(ctx context.Context, jobID string) (*ent.DeadLetterEntry, error) {
	entry, err := r.ent.DeadLetterEntry.Query().
		Where(entdl.ReprocessedAsJobID(jobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (r *deadLetterRepo) List(ctx context.Context, resolution *string, limit, offset int) ([]*ent.DeadLetterEntry, int, error) {
	if limit <= 0 {
		limit = 50
	}
	q := r.ent.DeadLetterEntry.Query()
	if resolution != nil {
		q = q.Where(entdl.Resolution(*resolution))
	}
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	entries, err := q.
		Order(ent.Desc(entdl.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *deadLetterRepo) ListByWorkflow(ctx context.Context, workflowID uuid.UUID) ([]*ent.DeadLetterEntry, error) {
	return r.ent.DeadLetterEntry.Query().
		Where(entdl.WorkflowID(workflowID)).
		Order(ent.Desc(entdl.FieldCreatedAt)).
		All(ctx)
}

func (r *deadLetterRepo) Annotate(ctx context.Context, id uuid.UUID, notes, reviewedBy string) (*ent.DeadLetterEntry, error) {
	entry, err := r.ent.DeadLetterEntry.
		UpdateOneID(id).
		SetReviewNotes(notes).
		SetReviewedBy(reviewedBy).
		SetReviewedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("dead letter annotate failed", "entry_id", id, "error", err)
		return nil, err
	}
	return entry, nil
}

func (r *deadLetterRepo) SetResolution(ctx context.Context, id uuid.UUID, resolution, reviewedBy string) (*ent.DeadLetterEntry, error) {
	entry, err := r.ent.DeadLetterEntry.
		UpdateOneID(id).
		SetResolution(resolution).
		SetReviewedBy(reviewedBy).
		SetReviewedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("dead letter resolution update failed", "entry_id", id, "resolution", resolution, "error", err)
		return nil, err
	}
	r.logger.Info("dead letter resolved", "entry_id", id, "resolution", resolution, "reviewed_by", reviewedBy)
	return entry, nil
}

func (r *deadLetterRepo) StampReprocessed(ctx context.Context, id uuid.UUID, newJobID, reviewedBy string) (*ent.DeadLetterEntry, error) {
	entry, err := r.ent.DeadLetterEntry.
		UpdateOneID(id).
		SetReprocessedAsJobID(newJobID).
		SetReviewedBy(reviewedBy).
		SetReviewedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("dead letter reprocess stamp failed", "entry_id", id, "error", err)
		return nil, err
	}
	return entry, nil
}
