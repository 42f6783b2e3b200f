package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent"
	entwf "github.com/joseph-ayodele/orderflow/gen/ent/workflowexecution"
	"github.com/joseph-ayodele/orderflow/internal/common"
)

// WorkflowUpdate is one compare-and-set mutation of a workflow execution.
// nil fields are left untouched.
type WorkflowUpdate struct {
	Status            *string
	CurrentStage      *string
	ClearCurrentStage bool
	StagesCompleted   *int
	ProgressPercent   *int
	StatusData        json.RawMessage
	ErrorMessage      *string
	ClearError        bool
	FailedStage       *string
	ClearFailedStage  bool
	StageStartedAt    *time.Time
	StageCompletedAt  *time.Time
}

type WorkflowRepository interface {
	Create(ctx context.Context, merchantID, documentID uuid.UUID, stagesTotal int, input json.RawMessage) (*ent.WorkflowExecution, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.WorkflowExecution, error)
	ListByStatus(ctx context.Context, status string, limit int) ([]*ent.WorkflowExecution, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*ent.WorkflowExecution, error)
	// UpdateCAS applies the mutation only while the row's status is one of
	// expectStatus; common.ErrConflict signals a lost race (e.g. a stray
	// retry colliding with a cancel), and callers must re-read, not force.
	UpdateCAS(ctx context.Context, id uuid.UUID, expectStatus []string, upd WorkflowUpdate) (*ent.WorkflowExecution, error)
}

type workflowRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewWorkflowRepository(entc *ent.Client, logger *slog.Logger) WorkflowRepository {
	return &workflowRepo{ent: entc, logger: logger}
}

func (r *workflowRepo) Create(ctx context.Context, merchantID, documentID uuid.UUID, stagesTotal int, input json.RawMessage) (*ent.WorkflowExecution, error) {
	wf, err := r.ent.WorkflowExecution.
		Create().
		SetMerchantID(merchantID).
		SetDocumentID(documentID).
		SetStagesTotal(stagesTotal).
		SetInputData(input).
		Save(ctx)
	if err != nil {
		r.logger.Error("workflow create failed", "merchant_id", merchantID, "document_id", documentID, "error", err)
		return nil, err
	}
	r.logger.Info("workflow created", "workflow_id", wf.ID, "merchant_id", merchantID, "stages_total", stagesTotal)
	return wf, nil
}

func (r *workflowRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.WorkflowExecution, error) {
	wf, err := r.ent.WorkflowExecution.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return wf, nil
}

func (r *workflowRepo) ListByStatus(ctx context.Context, status string, limit int) ([]*ent.WorkflowExecution, error) {
	q := r.ent.WorkflowExecution.Query().
		Where(entwf.Status(status)).
		Order(ent.Asc(entwf.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.All(ctx)
}

func (r *workflowRepo) ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*ent.WorkflowExecution, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.ent.WorkflowExecution.Query().
		Where(entwf.MerchantID(merchantID)).
		Order(ent.Desc(entwf.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
}

func (r *workflowRepo) UpdateCAS(ctx context.Context, id uuid.UUID, expectStatus []string, upd WorkflowUpdate) (*ent.WorkflowExecution, error) {
	b := r.ent.WorkflowExecution.UpdateOneID(id).
		Where(entwf.StatusIn(expectStatus...)).
		SetUpdatedAt(time.Now())

	if upd.Status != nil {
		b = b.SetStatus(*upd.Status)
	}
	if upd.ClearCurrentStage {
		b = b.ClearCurrentStage()
	} else if upd.CurrentStage != nil {
		b = b.SetCurrentStage(*upd.CurrentStage)
	}
	if upd.StagesCompleted != nil {
		b = b.SetStagesCompleted(*upd.StagesCompleted)
	}
	if upd.ProgressPercent != nil {
		b = b.SetProgressPercent(*upd.ProgressPercent)
	}
	if upd.StatusData != nil {
		b = b.SetStatusData(upd.StatusData)
	}
	if upd.ClearError {
		b = b.ClearErrorMessage()
	} else if upd.ErrorMessage != nil {
		b = b.SetErrorMessage(*upd.ErrorMessage)
	}
	if upd.ClearFailedStage {
		b = b.ClearFailedStage()
	} else if upd.FailedStage != nil {
		b = b.SetFailedStage(*upd.FailedStage)
	}
	if upd.StageStartedAt != nil {
		b = b.SetStageStartedAt(*upd.StageStartedAt)
	}
	if upd.StageCompletedAt != nil {
		b = b.SetStageCompletedAt(*upd.StageCompletedAt)
	}

	wf, err := b.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// row exists but the status predicate did not match: lost the race
			r.logger.Warn("workflow CAS update rejected", "workflow_id", id, "expect_status", expectStatus)
			return nil, common.ErrConflict
		}
		r.logger.Error("workflow update failed", "workflow_id", id, "error", err)
		return nil, err
	}
	return wf, nil
}
