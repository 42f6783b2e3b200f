// Code generated by ent, DO NOT EDIT.

package deadletterentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldJobID, v))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v uuid.UUID) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldWorkflowID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldStage, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldFailureReason, v))
}

// FailureStack applies equality check predicate on the "failure_stack" field. It's identical to FailureStackEQ.
func FailureStack(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldFailureStack, v))
}

// AttemptsMade applies equality check predicate on the "attempts_made" field. It's identical to AttemptsMadeEQ.
func AttemptsMade(v int) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldAttemptsMade, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldPriority, v))
}

// Resolution applies equality check predicate on the "resolution" field. It's identical to ResolutionEQ.
func Resolution(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldResolution, v))
}

// ReviewNotes applies equality check predicate on the "review_notes" field. It's identical to ReviewNotesEQ.
func ReviewNotes(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldReviewNotes, v))
}

// ReviewedBy applies equality check predicate on the "reviewed_by" field. It's identical to ReviewedByEQ.
func ReviewedBy(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldReviewedBy, v))
}

// ReprocessedAsJobID applies equality check predicate on the "reprocessed_as_job_id" field. It's identical to ReprocessedAsJobIDEQ.
func ReprocessedAsJobID(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldReprocessedAsJobID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldReviewedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContainsFold(FieldJobID, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v uuid.UUID) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v uuid.UUID) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...uuid.UUID) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...uuid.UUID) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContainsFold(FieldStage, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotNull(FieldPayload))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContainsFold(FieldFailureReason, v))
}

// FailureStackEQ applies the EQ predicate on the "failure_stack" field.
func FailureStackEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldFailureStack, v))
}

// FailureStackNEQ applies the NEQ predicate on the "failure_stack" field.
func FailureStackNEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNEQ(FieldFailureStack, v))
}

// FailureStackIn applies the In predicate on the "failure_stack" field.
func FailureStackIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIn(FieldFailureStack, vs...))
}

// FailureStackNotIn applies the NotIn predicate on the "failure_stack" field.
func FailureStackNotIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotIn(FieldFailureStack, vs...))
}

// FailureStackGT applies the GT predicate on the "failure_stack" field.
func FailureStackGT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGT(FieldFailureStack, v))
}

// FailureStackGTE applies the GTE predicate on the "failure_stack" field.
func FailureStackGTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGTE(FieldFailureStack, v))
}

// FailureStackLT applies the LT predicate on the "failure_stack" field.
func FailureStackLT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLT(FieldFailureStack, v))
}

// FailureStackLTE applies the LTE predicate on the "failure_stack" field.
func FailureStackLTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLTE(FieldFailureStack, v))
}

// FailureStackContains applies the Contains predicate on the "failure_stack" field.
func FailureStackContains(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContains(FieldFailureStack, v))
}

// FailureStackHasPrefix applies the HasPrefix predicate on the "failure_stack" field.
func FailureStackHasPrefix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasPrefix(FieldFailureStack, v))
}

// FailureStackHasSuffix applies the HasSuffix predicate on the "failure_stack" field.
func FailureStackHasSuffix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasSuffix(FieldFailureStack, v))
}

// FailureStackIsNil applies the IsNil predicate on the "failure_stack" field.
func FailureStackIsNil() predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIsNull(FieldFailureStack))
}

// FailureStackNotNil applies the NotNil predicate on the "failure_stack" field.
func FailureStackNotNil() predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotNull(FieldFailureStack))
}

// FailureStackEqualFold applies the EqualFold predicate on the "failure_stack" field.
func FailureStackEqualFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEqualFold(FieldFailureStack, v))
}

// FailureStackContainsFold applies the ContainsFold predicate on the "failure_stack" field.
func FailureStackContainsFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContainsFold(FieldFailureStack, v))
}

// AttemptsMadeEQ applies the EQ predicate on the "attempts_made" field.
func AttemptsMadeEQ(v int) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldAttemptsMade, v))
}

// AttemptsMadeNEQ applies the NEQ predicate on the "attempts_made" field.
func AttemptsMadeNEQ(v int) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNEQ(FieldAttemptsMade, v))
}

// AttemptsMadeIn applies the In predicate on the "attempts_made" field.
func AttemptsMadeIn(vs ...int) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIn(FieldAttemptsMade, vs...))
}

// AttemptsMadeNotIn applies the NotIn predicate on the "attempts_made" field.
func AttemptsMadeNotIn(vs ...int) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotIn(FieldAttemptsMade, vs...))
}

// AttemptsMadeGT applies the GT predicate on the "attempts_made" field.
func AttemptsMadeGT(v int) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGT(FieldAttemptsMade, v))
}

// AttemptsMadeGTE applies the GTE predicate on the "attempts_made" field.
func AttemptsMadeGTE(v int) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGTE(FieldAttemptsMade, v))
}

// AttemptsMadeLT applies the LT predicate on the "attempts_made" field.
func AttemptsMadeLT(v int) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLT(FieldAttemptsMade, v))
}

// AttemptsMadeLTE applies the LTE predicate on the "attempts_made" field.
func AttemptsMadeLTE(v int) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLTE(FieldAttemptsMade, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLTE(FieldPriority, v))
}

// PriorityContains applies the Contains predicate on the "priority" field.
func PriorityContains(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContains(FieldPriority, v))
}

// PriorityHasPrefix applies the HasPrefix predicate on the "priority" field.
func PriorityHasPrefix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasPrefix(FieldPriority, v))
}

// PriorityHasSuffix applies the HasSuffix predicate on the "priority" field.
func PriorityHasSuffix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasSuffix(FieldPriority, v))
}

// PriorityEqualFold applies the EqualFold predicate on the "priority" field.
func PriorityEqualFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEqualFold(FieldPriority, v))
}

// PriorityContainsFold applies the ContainsFold predicate on the "priority" field.
func PriorityContainsFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContainsFold(FieldPriority, v))
}

// ResolutionEQ applies the EQ predicate on the "resolution" field.
func ResolutionEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldResolution, v))
}

// ResolutionNEQ applies the NEQ predicate on the "resolution" field.
func ResolutionNEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNEQ(FieldResolution, v))
}

// ResolutionIn applies the In predicate on the "resolution" field.
func ResolutionIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIn(FieldResolution, vs...))
}

// ResolutionNotIn applies the NotIn predicate on the "resolution" field.
func ResolutionNotIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotIn(FieldResolution, vs...))
}

// ResolutionGT applies the GT predicate on the "resolution" field.
func ResolutionGT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGT(FieldResolution, v))
}

// ResolutionGTE applies the GTE predicate on the "resolution" field.
func ResolutionGTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGTE(FieldResolution, v))
}

// ResolutionLT applies the LT predicate on the "resolution" field.
func ResolutionLT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLT(FieldResolution, v))
}

// ResolutionLTE applies the LTE predicate on the "resolution" field.
func ResolutionLTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLTE(FieldResolution, v))
}

// ResolutionContains applies the Contains predicate on the "resolution" field.
func ResolutionContains(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContains(FieldResolution, v))
}

// ResolutionHasPrefix applies the HasPrefix predicate on the "resolution" field.
func ResolutionHasPrefix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasPrefix(FieldResolution, v))
}

// ResolutionHasSuffix applies the HasSuffix predicate on the "resolution" field.
func ResolutionHasSuffix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasSuffix(FieldResolution, v))
}

// ResolutionEqualFold applies the EqualFold predicate on the "resolution" field.
func ResolutionEqualFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEqualFold(FieldResolution, v))
}

// ResolutionContainsFold applies the ContainsFold predicate on the "resolution" field.
func ResolutionContainsFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContainsFold(FieldResolution, v))
}

// ReviewNotesEQ applies the EQ predicate on the "review_notes" field.
func ReviewNotesEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldReviewNotes, v))
}

// ReviewNotesNEQ applies the NEQ predicate on the "review_notes" field.
func ReviewNotesNEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNEQ(FieldReviewNotes, v))
}

// ReviewNotesIn applies the In predicate on the "review_notes" field.
func ReviewNotesIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIn(FieldReviewNotes, vs...))
}

// ReviewNotesNotIn applies the NotIn predicate on the "review_notes" field.
func ReviewNotesNotIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotIn(FieldReviewNotes, vs...))
}

// ReviewNotesGT applies the GT predicate on the "review_notes" field.
func ReviewNotesGT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGT(FieldReviewNotes, v))
}

// ReviewNotesGTE applies the GTE predicate on the "review_notes" field.
func ReviewNotesGTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGTE(FieldReviewNotes, v))
}

// ReviewNotesLT applies the LT predicate on the "review_notes" field.
func ReviewNotesLT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLT(FieldReviewNotes, v))
}

// ReviewNotesLTE applies the LTE predicate on the "review_notes" field.
func ReviewNotesLTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLTE(FieldReviewNotes, v))
}

// ReviewNotesContains applies the Contains predicate on the "review_notes" field.
func ReviewNotesContains(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContains(FieldReviewNotes, v))
}

// ReviewNotesHasPrefix applies the HasPrefix predicate on the "review_notes" field.
func ReviewNotesHasPrefix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasPrefix(FieldReviewNotes, v))
}

// ReviewNotesHasSuffix applies the HasSuffix predicate on the "review_notes" field.
func ReviewNotesHasSuffix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasSuffix(FieldReviewNotes, v))
}

// ReviewNotesIsNil applies the IsNil predicate on the "review_notes" field.
func ReviewNotesIsNil() predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIsNull(FieldReviewNotes))
}

// ReviewNotesNotNil applies the NotNil predicate on the "review_notes" field.
func ReviewNotesNotNil() predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotNull(FieldReviewNotes))
}

// ReviewNotesEqualFold applies the EqualFold predicate on the "review_notes" field.
func ReviewNotesEqualFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEqualFold(FieldReviewNotes, v))
}

// ReviewNotesContainsFold applies the ContainsFold predicate on the "review_notes" field.
func ReviewNotesContainsFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContainsFold(FieldReviewNotes, v))
}

// ReviewedByEQ applies the EQ predicate on the "reviewed_by" field.
func ReviewedByEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedByNEQ applies the NEQ predicate on the "reviewed_by" field.
func ReviewedByNEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNEQ(FieldReviewedBy, v))
}

// ReviewedByIn applies the In predicate on the "reviewed_by" field.
func ReviewedByIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIn(FieldReviewedBy, vs...))
}

// ReviewedByNotIn applies the NotIn predicate on the "reviewed_by" field.
func ReviewedByNotIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotIn(FieldReviewedBy, vs...))
}

// ReviewedByGT applies the GT predicate on the "reviewed_by" field.
func ReviewedByGT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGT(FieldReviewedBy, v))
}

// ReviewedByGTE applies the GTE predicate on the "reviewed_by" field.
func ReviewedByGTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGTE(FieldReviewedBy, v))
}

// ReviewedByLT applies the LT predicate on the "reviewed_by" field.
func ReviewedByLT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLT(FieldReviewedBy, v))
}

// ReviewedByLTE applies the LTE predicate on the "reviewed_by" field.
func ReviewedByLTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLTE(FieldReviewedBy, v))
}

// ReviewedByContains applies the Contains predicate on the "reviewed_by" field.
func ReviewedByContains(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContains(FieldReviewedBy, v))
}

// ReviewedByHasPrefix applies the HasPrefix predicate on the "reviewed_by" field.
func ReviewedByHasPrefix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasPrefix(FieldReviewedBy, v))
}

// ReviewedByHasSuffix applies the HasSuffix predicate on the "reviewed_by" field.
func ReviewedByHasSuffix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasSuffix(FieldReviewedBy, v))
}

// ReviewedByIsNil applies the IsNil predicate on the "reviewed_by" field.
func ReviewedByIsNil() predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIsNull(FieldReviewedBy))
}

// ReviewedByNotNil applies the NotNil predicate on the "reviewed_by" field.
func ReviewedByNotNil() predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotNull(FieldReviewedBy))
}

// ReviewedByEqualFold applies the EqualFold predicate on the "reviewed_by" field.
func ReviewedByEqualFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEqualFold(FieldReviewedBy, v))
}

// ReviewedByContainsFold applies the ContainsFold predicate on the "reviewed_by" field.
func ReviewedByContainsFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContainsFold(FieldReviewedBy, v))
}

// ReprocessedAsJobIDEQ applies the EQ predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldReprocessedAsJobID, v))
}

// ReprocessedAsJobIDNEQ applies the NEQ predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDNEQ(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNEQ(FieldReprocessedAsJobID, v))
}

// ReprocessedAsJobIDIn applies the In predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIn(FieldReprocessedAsJobID, vs...))
}

// ReprocessedAsJobIDNotIn applies the NotIn predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDNotIn(vs ...string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotIn(FieldReprocessedAsJobID, vs...))
}

// ReprocessedAsJobIDGT applies the GT predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDGT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGT(FieldReprocessedAsJobID, v))
}

// ReprocessedAsJobIDGTE applies the GTE predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDGTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGTE(FieldReprocessedAsJobID, v))
}

// ReprocessedAsJobIDLT applies the LT predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDLT(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLT(FieldReprocessedAsJobID, v))
}

// ReprocessedAsJobIDLTE applies the LTE predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDLTE(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLTE(FieldReprocessedAsJobID, v))
}

// ReprocessedAsJobIDContains applies the Contains predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDContains(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContains(FieldReprocessedAsJobID, v))
}

// ReprocessedAsJobIDHasPrefix applies the HasPrefix predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDHasPrefix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasPrefix(FieldReprocessedAsJobID, v))
}

// ReprocessedAsJobIDHasSuffix applies the HasSuffix predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDHasSuffix(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldHasSuffix(FieldReprocessedAsJobID, v))
}

// ReprocessedAsJobIDIsNil applies the IsNil predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDIsNil() predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIsNull(FieldReprocessedAsJobID))
}

// ReprocessedAsJobIDNotNil applies the NotNil predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDNotNil() predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotNull(FieldReprocessedAsJobID))
}

// ReprocessedAsJobIDEqualFold applies the EqualFold predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDEqualFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEqualFold(FieldReprocessedAsJobID, v))
}

// ReprocessedAsJobIDContainsFold applies the ContainsFold predicate on the "reprocessed_as_job_id" field.
func ReprocessedAsJobIDContainsFold(v string) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldContainsFold(FieldReprocessedAsJobID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.FieldNotNull(FieldReviewedAt))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.WorkflowExecution) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeadLetterEntry) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeadLetterEntry) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeadLetterEntry) predicate.DeadLetterEntry {
	return predicate.DeadLetterEntry(sql.NotPredicates(p))
}
