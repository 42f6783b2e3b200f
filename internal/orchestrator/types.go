// Package orchestrator owns the workflow execution state machine: it creates
// workflows, advances them stage by stage as queue jobs finish, pauses them
// for human review, and routes exhausted jobs into the dead letter store.
package orchestrator

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/internal/stages"
)

// WorkflowInput is the immutable intake record stored on the workflow row.
// The resolved stage plan is frozen here at creation so a config change never
// re-plans an in-flight workflow.
type WorkflowInput struct {
	DocumentID  uuid.UUID          `json:"document_id"`
	Filename    string             `json:"filename,omitempty"`
	ContentType string             `json:"content_type,omitempty"`
	StorageKey  string             `json:"storage_key"`
	Plan        []string           `json:"plan"`
	Priority    constants.Priority `json:"priority,omitempty"`
	Urgent      bool               `json:"urgent,omitempty"`
}

func (in WorkflowInput) docRef() stages.DocumentRef {
	return stages.DocumentRef{
		DocumentID:  in.DocumentID,
		StorageKey:  in.StorageKey,
		ContentType: in.ContentType,
		Filename:    in.Filename,
	}
}

func buildStagePayload(stage string, input WorkflowInput, prior json.RawMessage) (json.RawMessage, error) {
	return stages.BuildPayload(stage, input.docRef(), prior)
}

func decodeInput(raw json.RawMessage) (WorkflowInput, error) {
	var in WorkflowInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return in, fmt.Errorf("decode workflow input: %w", err)
	}
	if len(in.Plan) == 0 {
		return in, fmt.Errorf("workflow input carries no stage plan")
	}
	return in, nil
}

// StatusData is the mutable status blob on the workflow row: the
// merchant-facing message, the retryability verdict, and the per-stage
// results that seed the next stage's payload on resume or retry.
type StatusData struct {
	Message      string                     `json:"message,omitempty"`
	CanRetry     bool                       `json:"can_retry"`
	ReviewStage  string                     `json:"review_stage,omitempty"`
	ReviewReason string                     `json:"review_reason,omitempty"`
	ApprovedBy   string                     `json:"approved_by,omitempty"`
	StageResults map[string]json.RawMessage `json:"stage_results,omitempty"`
}

func decodeStatusData(raw json.RawMessage) StatusData {
	var sd StatusData
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &sd)
	}
	if sd.StageResults == nil {
		sd.StageResults = make(map[string]json.RawMessage)
	}
	return sd
}

func (sd StatusData) encode() json.RawMessage {
	b, err := json.Marshal(sd)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return b
}

// nextStage returns the plan entry after the given stage, or "" when the
// stage is the plan's last.
func nextStage(plan []string, stage string) (string, error) {
	for i, s := range plan {
		if s == stage {
			if i+1 < len(plan) {
				return plan[i+1], nil
			}
			return "", nil
		}
	}
	return "", fmt.Errorf("stage %q is not in the workflow plan %v", stage, plan)
}

// priorResult returns the result feeding the given stage: the output of the
// plan entry immediately before it, or nil for the first stage.
func priorResult(plan []string, stage string, results map[string]json.RawMessage) json.RawMessage {
	for i, s := range plan {
		if s == stage {
			if i == 0 {
				return nil
			}
			return results[plan[i-1]]
		}
	}
	return nil
}

func progressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}
	// round to nearest, not truncate: 2 of 3 reports 67
	return (completed*200 + total) / (2 * total)
}
