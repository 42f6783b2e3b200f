package events

import (
	"time"

	"github.com/google/uuid"
)

// Type names the progress event kinds carried on the merchant channel.
// These are also the SSE event names the gateway emits.
type Type string

const (
	TypeProgress   Type = "progress"
	TypeStage      Type = "stage"
	TypeCompletion Type = "completion"
	TypeError      Type = "error_event"
	TypeHeartbeat  Type = "heartbeat"
)

// Stage event sub-statuses.
const (
	StageStarted   = "started"
	StageCompleted = "completed"
	StageFailed    = "failed"
)

// Event is one ephemeral progress notification. It exists only on the
// pub/sub transport: consumers that suspect a gap reconcile against the
// persisted workflow execution row, never against replayed events.
type Event struct {
	Type        Type      `json:"type"`
	WorkflowID  uuid.UUID `json:"workflow_id"`
	MerchantID  uuid.UUID `json:"merchant_id"`
	DocumentID  uuid.UUID `json:"document_id,omitempty"`
	Stage       string    `json:"stage,omitempty"`
	StageStatus string    `json:"stage_status,omitempty"`
	Percent     int       `json:"percent,omitempty"`
	Message     string    `json:"message,omitempty"`
	Error       string    `json:"error,omitempty"`
	CanRetry    bool      `json:"can_retry,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Channel returns the pub/sub channel for one merchant's events.
func Channel(merchantID uuid.UUID) string {
	return "merchant:" + merchantID.String()
}
