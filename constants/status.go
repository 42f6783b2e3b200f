package constants

// WorkflowStatus is the canonical status for rows in workflow_executions.
type WorkflowStatus string

// Stable values (store these exact strings in DB).
const (
	WorkflowPending      WorkflowStatus = "pending"       // created, first stage not yet enqueued
	WorkflowProcessing   WorkflowStatus = "processing"    // a stage owns the workflow
	WorkflowReviewNeeded WorkflowStatus = "review_needed" // paused on low-confidence result
	WorkflowApproved     WorkflowStatus = "approved"      // operator approved, resuming
	WorkflowCompleted    WorkflowStatus = "completed"     // terminal success
	WorkflowFailed       WorkflowStatus = "failed"        // terminal failure (explicit retry may reopen)
	WorkflowCancelled    WorkflowStatus = "cancelled"     // terminal, operator cancelled
)

// Terminal reports whether the status is a sink for stage outcomes.
// failed still terminates stage processing but an explicit retry may reopen it.
func (s WorkflowStatus) Terminal() bool {
	return s == WorkflowCompleted || s == WorkflowFailed || s == WorkflowCancelled
}

func WorkflowStatuses() []string {
	return []string{
		string(WorkflowPending),
		string(WorkflowProcessing),
		string(WorkflowReviewNeeded),
		string(WorkflowApproved),
		string(WorkflowCompleted),
		string(WorkflowFailed),
		string(WorkflowCancelled),
	}
}

// JobState is the lifecycle state of one stage job inside the queue backend.
type JobState string

const (
	JobWaiting   JobState = "waiting"
	JobDelayed   JobState = "delayed"
	JobActive    JobState = "active"
	JobCompleted JobState = "completed"
	JobFailed    JobState = "failed"
)

func (s JobState) Valid() bool {
	switch s {
	case JobWaiting, JobDelayed, JobActive, JobCompleted, JobFailed:
		return true
	}
	return false
}

// Resolution is the review outcome recorded on a dead letter entry.
type Resolution string

const (
	ResolutionPending   Resolution = "pending"
	ResolutionReprocess Resolution = "reprocess"
	ResolutionDiscard   Resolution = "discard"
)

func Resolutions() []string {
	return []string{
		string(ResolutionPending),
		string(ResolutionReprocess),
		string(ResolutionDiscard),
	}
}

func ValidResolution(s string) bool {
	switch Resolution(s) {
	case ResolutionPending, ResolutionReprocess, ResolutionDiscard:
		return true
	}
	return false
}
