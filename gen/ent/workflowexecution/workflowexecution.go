// Code generated by ent, DO NOT EDIT.

package workflowexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the workflowexecution type in the database.
	Label = "workflow_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMerchantID holds the string denoting the merchant_id field in the database.
	FieldMerchantID = "merchant_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentStage holds the string denoting the current_stage field in the database.
	FieldCurrentStage = "current_stage"
	// FieldStagesTotal holds the string denoting the stages_total field in the database.
	FieldStagesTotal = "stages_total"
	// FieldStagesCompleted holds the string denoting the stages_completed field in the database.
	FieldStagesCompleted = "stages_completed"
	// FieldProgressPercent holds the string denoting the progress_percent field in the database.
	FieldProgressPercent = "progress_percent"
	// FieldInputData holds the string denoting the input_data field in the database.
	FieldInputData = "input_data"
	// FieldStatusData holds the string denoting the status_data field in the database.
	FieldStatusData = "status_data"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldFailedStage holds the string denoting the failed_stage field in the database.
	FieldFailedStage = "failed_stage"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStageStartedAt holds the string denoting the stage_started_at field in the database.
	FieldStageStartedAt = "stage_started_at"
	// FieldStageCompletedAt holds the string denoting the stage_completed_at field in the database.
	FieldStageCompletedAt = "stage_completed_at"
	// EdgeMerchant holds the string denoting the merchant edge name in mutations.
	EdgeMerchant = "merchant"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// EdgeDeadLetters holds the string denoting the dead_letters edge name in mutations.
	EdgeDeadLetters = "dead_letters"
	// Table holds the table name of the workflowexecution in the database.
	Table = "workflow_executions"
	// MerchantTable is the table that holds the merchant relation/edge.
	MerchantTable = "workflow_executions"
	// MerchantInverseTable is the table name for the Merchant entity.
	// It exists in this package in order to avoid circular dependency with the "merchant" package.
	MerchantInverseTable = "merchants"
	// MerchantColumn is the table column denoting the merchant relation/edge.
	MerchantColumn = "merchant_id"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "workflow_executions"
	// DocumentInverseTable is the table name for the OrderDocument entity.
	// It exists in this package in order to avoid circular dependency with the "orderdocument" package.
	DocumentInverseTable = "order_documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
	// DeadLettersTable is the table that holds the dead_letters relation/edge.
	DeadLettersTable = "dead_letter_entries"
	// DeadLettersInverseTable is the table name for the DeadLetterEntry entity.
	// It exists in this package in order to avoid circular dependency with the "deadletterentry" package.
	DeadLettersInverseTable = "dead_letter_entries"
	// DeadLettersColumn is the table column denoting the dead_letters relation/edge.
	DeadLettersColumn = "workflow_id"
)

// Columns holds all SQL columns for workflowexecution fields.
var Columns = []string{
	FieldID,
	FieldMerchantID,
	FieldDocumentID,
	FieldStatus,
	FieldCurrentStage,
	FieldStagesTotal,
	FieldStagesCompleted,
	FieldProgressPercent,
	FieldInputData,
	FieldStatusData,
	FieldErrorMessage,
	FieldFailedStage,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStageStartedAt,
	FieldStageCompletedAt,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// StagesTotalValidator is a validator for the "stages_total" field. It is called by the builders before save.
	StagesTotalValidator func(int) error
	// DefaultStagesCompleted holds the default value on creation for the "stages_completed" field.
	DefaultStagesCompleted int
	// StagesCompletedValidator is a validator for the "stages_completed" field. It is called by the builders before save.
	StagesCompletedValidator func(int) error
	// DefaultProgressPercent holds the default value on creation for the "progress_percent" field.
	DefaultProgressPercent int
	// ProgressPercentValidator is a validator for the "progress_percent" field. It is called by the builders before save.
	ProgressPercentValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the WorkflowExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMerchantID orders the results by the merchant_id field.
func ByMerchantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMerchantID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentStage orders the results by the current_stage field.
func ByCurrentStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStage, opts...).ToFunc()
}

// ByStagesTotal orders the results by the stages_total field.
func ByStagesTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStagesTotal, opts...).ToFunc()
}

// ByStagesCompleted orders the results by the stages_completed field.
func ByStagesCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStagesCompleted, opts...).ToFunc()
}

// ByProgressPercent orders the results by the progress_percent field.
func ByProgressPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressPercent, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByFailedStage orders the results by the failed_stage field.
func ByFailedStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedStage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStageStartedAt orders the results by the stage_started_at field.
func ByStageStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageStartedAt, opts...).ToFunc()
}

// ByStageCompletedAt orders the results by the stage_completed_at field.
func ByStageCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageCompletedAt, opts...).ToFunc()
}

// ByMerchantField orders the results by merchant field.
func ByMerchantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMerchantStep(), sql.OrderByField(field, opts...))
	}
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}

// ByDeadLettersCount orders the results by dead_letters count.
func ByDeadLettersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDeadLettersStep(), opts...)
	}
}

// ByDeadLetters orders the results by dead_letters terms.
func ByDeadLetters(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeadLettersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMerchantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MerchantInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MerchantTable, MerchantColumn),
	)
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
func newDeadLettersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeadLettersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DeadLettersTable, DeadLettersColumn),
	)
}
