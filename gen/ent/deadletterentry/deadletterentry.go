// Code generated by ent, DO NOT EDIT.

package deadletterentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the deadletterentry type in the database.
	Label = "dead_letter_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldFailureStack holds the string denoting the failure_stack field in the database.
	FieldFailureStack = "failure_stack"
	// FieldAttemptsMade holds the string denoting the attempts_made field in the database.
	FieldAttemptsMade = "attempts_made"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldResolution holds the string denoting the resolution field in the database.
	FieldResolution = "resolution"
	// FieldReviewNotes holds the string denoting the review_notes field in the database.
	FieldReviewNotes = "review_notes"
	// FieldReviewedBy holds the string denoting the reviewed_by field in the database.
	FieldReviewedBy = "reviewed_by"
	// FieldReprocessedAsJobID holds the string denoting the reprocessed_as_job_id field in the database.
	FieldReprocessedAsJobID = "reprocessed_as_job_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldReviewedAt holds the string denoting the reviewed_at field in the database.
	FieldReviewedAt = "reviewed_at"
	// EdgeWorkflow holds the string denoting the workflow edge name in mutations.
	EdgeWorkflow = "workflow"
	// Table holds the table name of the deadletterentry in the database.
	Table = "dead_letter_entries"
	// WorkflowTable is the table that holds the workflow relation/edge.
	WorkflowTable = "dead_letter_entries"
	// WorkflowInverseTable is the table name for the WorkflowExecution entity.
	// It exists in this package in order to avoid circular dependency with the "workflowexecution" package.
	WorkflowInverseTable = "workflow_executions"
	// WorkflowColumn is the table column denoting the workflow relation/edge.
	WorkflowColumn = "workflow_id"
)

// Columns holds all SQL columns for deadletterentry fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldWorkflowID,
	FieldStage,
	FieldPayload,
	FieldFailureReason,
	FieldFailureStack,
	FieldAttemptsMade,
	FieldPriority,
	FieldResolution,
	FieldReviewNotes,
	FieldReviewedBy,
	FieldReprocessedAsJobID,
	FieldCreatedAt,
	FieldReviewedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// JobIDValidator is a validator for the "job_id" field. It is called by the builders before save.
	JobIDValidator func(string) error
	// StageValidator is a validator for the "stage" field. It is called by the builders before save.
	StageValidator func(string) error
	// FailureReasonValidator is a validator for the "failure_reason" field. It is called by the builders before save.
	FailureReasonValidator func(string) error
	// AttemptsMadeValidator is a validator for the "attempts_made" field. It is called by the builders before save.
	AttemptsMadeValidator func(int) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority string
	// DefaultResolution holds the default value on creation for the "resolution" field.
	DefaultResolution string
	// ResolutionValidator is a validator for the "resolution" field. It is called by the builders before save.
	ResolutionValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DeadLetterEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByFailureStack orders the results by the failure_stack field.
func ByFailureStack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureStack, opts...).ToFunc()
}

// ByAttemptsMade orders the results by the attempts_made field.
func ByAttemptsMade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptsMade, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByResolution orders the results by the resolution field.
func ByResolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolution, opts...).ToFunc()
}

// ByReviewNotes orders the results by the review_notes field.
func ByReviewNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewNotes, opts...).ToFunc()
}

// ByReviewedBy orders the results by the reviewed_by field.
func ByReviewedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedBy, opts...).ToFunc()
}

// ByReprocessedAsJobID orders the results by the reprocessed_as_job_id field.
func ByReprocessedAsJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReprocessedAsJobID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReviewedAt orders the results by the reviewed_at field.
func ByReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedAt, opts...).ToFunc()
}

// ByWorkflowField orders the results by workflow field.
func ByWorkflowField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkflowStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
	)
}
