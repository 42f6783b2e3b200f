package utils

import (
	"encoding/json"
	"time"

	"github.com/joseph-ayodele/orderflow/gen/ent"
	orderflowpb "github.com/joseph-ayodele/orderflow/gen/proto/orderflow/v1"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format(time.RFC3339Nano)
}

// ToPBWorkflow converts a workflow execution row to its wire shape. The
// merchant-facing message and retry verdict come out of the status blob; the
// rest of the blob stays internal.
func ToPBWorkflow(wf *ent.WorkflowExecution) *orderflowpb.Workflow {
	out := &orderflowpb.Workflow{
		Id:              wf.ID.String(),
		MerchantId:      wf.MerchantID.String(),
		DocumentId:      wf.DocumentID.String(),
		Status:          wf.Status,
		CurrentStage:    strOrEmpty(wf.CurrentStage),
		StagesTotal:     int32(wf.StagesTotal),
		StagesCompleted: int32(wf.StagesCompleted),
		ProgressPercent: int32(wf.ProgressPercent),
		ErrorMessage:    strOrEmpty(wf.ErrorMessage),
		FailedStage:     strOrEmpty(wf.FailedStage),
		CreatedAt:       wf.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:       wf.UpdatedAt.Format(time.RFC3339Nano),
	}
	var sd struct {
		Message  string `json:"message"`
		CanRetry bool   `json:"can_retry"`
	}
	if len(wf.StatusData) > 0 && json.Unmarshal(wf.StatusData, &sd) == nil {
		out.Message = sd.Message
		out.CanRetry = sd.CanRetry
	}
	return out
}

// ToPBDeadLetter converts a dead letter entry row to its wire shape.
func ToPBDeadLetter(e *ent.DeadLetterEntry) *orderflowpb.DeadLetter {
	return &orderflowpb.DeadLetter{
		Id:                 e.ID.String(),
		JobId:              e.JobID,
		WorkflowId:         e.WorkflowID.String(),
		Stage:              e.Stage,
		Payload:            e.Payload,
		FailureReason:      e.FailureReason,
		FailureStack:       strOrEmpty(e.FailureStack),
		AttemptsMade:       int32(e.AttemptsMade),
		Priority:           e.Priority,
		Resolution:         e.Resolution,
		ReviewNotes:        strOrEmpty(e.ReviewNotes),
		ReviewedBy:         strOrEmpty(e.ReviewedBy),
		ReprocessedAsJobId: strOrEmpty(e.ReprocessedAsJobID),
		CreatedAt:          e.CreatedAt.Format(time.RFC3339Nano),
		ReviewedAt:         timeOrEmpty(e.ReviewedAt),
	}
}
