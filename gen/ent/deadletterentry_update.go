// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent/deadletterentry"
	"github.com/joseph-ayodele/orderflow/gen/ent/predicate"
	"github.com/joseph-ayodele/orderflow/gen/ent/workflowexecution"
)

// DeadLetterEntryUpdate is the builder for updating DeadLetterEntry entities.
type DeadLetterEntryUpdate struct {
	config
	hooks    []Hook
	mutation *DeadLetterEntryMutation
}

// Where appends a list predicates to the DeadLetterEntryUpdate builder.
func (_u *DeadLetterEntryUpdate) Where(ps ...predicate.DeadLetterEntry) *DeadLetterEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *DeadLetterEntryUpdate) SetWorkflowID(v uuid.UUID) *DeadLetterEntryUpdate {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *DeadLetterEntryUpdate) SetNillableWorkflowID(v *uuid.UUID) *DeadLetterEntryUpdate {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DeadLetterEntryUpdate) SetPayload(v json.RawMessage) *DeadLetterEntryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *DeadLetterEntryUpdate) AppendPayload(v json.RawMessage) *DeadLetterEntryUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *DeadLetterEntryUpdate) ClearPayload() *DeadLetterEntryUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *DeadLetterEntryUpdate) SetFailureReason(v string) *DeadLetterEntryUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *DeadLetterEntryUpdate) SetNillableFailureReason(v *string) *DeadLetterEntryUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// SetFailureStack sets the "failure_stack" field.
func (_u *DeadLetterEntryUpdate) SetFailureStack(v string) *DeadLetterEntryUpdate {
	_u.mutation.SetFailureStack(v)
	return _u
}

// SetNillableFailureStack sets the "failure_stack" field if the given value is not nil.
func (_u *DeadLetterEntryUpdate) SetNillableFailureStack(v *string) *DeadLetterEntryUpdate {
	if v != nil {
		_u.SetFailureStack(*v)
	}
	return _u
}

// ClearFailureStack clears the value of the "failure_stack" field.
func (_u *DeadLetterEntryUpdate) ClearFailureStack() *DeadLetterEntryUpdate {
	_u.mutation.ClearFailureStack()
	return _u
}

// SetAttemptsMade sets the "attempts_made" field.
func (_u *DeadLetterEntryUpdate) SetAttemptsMade(v int) *DeadLetterEntryUpdate {
	_u.mutation.ResetAttemptsMade()
	_u.mutation.SetAttemptsMade(v)
	return _u
}

// SetNillableAttemptsMade sets the "attempts_made" field if the given value is not nil.
func (_u *DeadLetterEntryUpdate) SetNillableAttemptsMade(v *int) *DeadLetterEntryUpdate {
	if v != nil {
		_u.SetAttemptsMade(*v)
	}
	return _u
}

// AddAttemptsMade adds value to the "attempts_made" field.
func (_u *DeadLetterEntryUpdate) AddAttemptsMade(v int) *DeadLetterEntryUpdate {
	_u.mutation.AddAttemptsMade(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *DeadLetterEntryUpdate) SetPriority(v string) *DeadLetterEntryUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *DeadLetterEntryUpdate) SetNillablePriority(v *string) *DeadLetterEntryUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *DeadLetterEntryUpdate) SetResolution(v string) *DeadLetterEntryUpdate {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *DeadLetterEntryUpdate) SetNillableResolution(v *string) *DeadLetterEntryUpdate {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *DeadLetterEntryUpdate) SetReviewNotes(v string) *DeadLetterEntryUpdate {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *DeadLetterEntryUpdate) SetNillableReviewNotes(v *string) *DeadLetterEntryUpdate {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *DeadLetterEntryUpdate) ClearReviewNotes() *DeadLetterEntryUpdate {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *DeadLetterEntryUpdate) SetReviewedBy(v string) *DeadLetterEntryUpdate {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *DeadLetterEntryUpdate) SetNillableReviewedBy(v *string) *DeadLetterEntryUpdate {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *DeadLetterEntryUpdate) ClearReviewedBy() *DeadLetterEntryUpdate {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReprocessedAsJobID sets the "reprocessed_as_job_id" field.
func (_u *DeadLetterEntryUpdate) SetReprocessedAsJobID(v string) *DeadLetterEntryUpdate {
	_u.mutation.SetReprocessedAsJobID(v)
	return _u
}

// SetNillableReprocessedAsJobID sets the "reprocessed_as_job_id" field if the given value is not nil.
func (_u *DeadLetterEntryUpdate) SetNillableReprocessedAsJobID(v *string) *DeadLetterEntryUpdate {
	if v != nil {
		_u.SetReprocessedAsJobID(*v)
	}
	return _u
}

// ClearReprocessedAsJobID clears the value of the "reprocessed_as_job_id" field.
func (_u *DeadLetterEntryUpdate) ClearReprocessedAsJobID() *DeadLetterEntryUpdate {
	_u.mutation.ClearReprocessedAsJobID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DeadLetterEntryUpdate) SetCreatedAt(v time.Time) *DeadLetterEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DeadLetterEntryUpdate) SetNillableCreatedAt(v *time.Time) *DeadLetterEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *DeadLetterEntryUpdate) SetReviewedAt(v time.Time) *DeadLetterEntryUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *DeadLetterEntryUpdate) SetNillableReviewedAt(v *time.Time) *DeadLetterEntryUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *DeadLetterEntryUpdate) ClearReviewedAt() *DeadLetterEntryUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetWorkflow sets the "workflow" edge to the WorkflowExecution entity.
func (_u *DeadLetterEntryUpdate) SetWorkflow(v *WorkflowExecution) *DeadLetterEntryUpdate {
	return _u.SetWorkflowID(v.ID)
}

// Mutation returns the DeadLetterEntryMutation object of the builder.
func (_u *DeadLetterEntryUpdate) Mutation() *DeadLetterEntryMutation {
	return _u.mutation
}

// ClearWorkflow clears the "workflow" edge to the WorkflowExecution entity.
func (_u *DeadLetterEntryUpdate) ClearWorkflow() *DeadLetterEntryUpdate {
	_u.mutation.ClearWorkflow()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeadLetterEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeadLetterEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeadLetterEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeadLetterEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeadLetterEntryUpdate) check() error {
	if v, ok := _u.mutation.FailureReason(); ok {
		if err := deadletterentry.FailureReasonValidator(v); err != nil {
			return &ValidationError{Name: "failure_reason", err: fmt.Errorf(`ent: validator failed for field "DeadLetterEntry.failure_reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptsMade(); ok {
		if err := deadletterentry.AttemptsMadeValidator(v); err != nil {
			return &ValidationError{Name: "attempts_made", err: fmt.Errorf(`ent: validator failed for field "DeadLetterEntry.attempts_made": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Resolution(); ok {
		if err := deadletterentry.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "DeadLetterEntry.resolution": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DeadLetterEntry.workflow"`)
	}
	return nil
}

func (_u *DeadLetterEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deadletterentry.Table, deadletterentry.Columns, sqlgraph.NewFieldSpec(deadletterentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(deadletterentry.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deadletterentry.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(deadletterentry.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(deadletterentry.FieldFailureReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailureStack(); ok {
		_spec.SetField(deadletterentry.FieldFailureStack, field.TypeString, value)
	}
	if _u.mutation.FailureStackCleared() {
		_spec.ClearField(deadletterentry.FieldFailureStack, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptsMade(); ok {
		_spec.SetField(deadletterentry.FieldAttemptsMade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsMade(); ok {
		_spec.AddField(deadletterentry.FieldAttemptsMade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(deadletterentry.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(deadletterentry.FieldResolution, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(deadletterentry.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(deadletterentry.FieldReviewNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(deadletterentry.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(deadletterentry.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReprocessedAsJobID(); ok {
		_spec.SetField(deadletterentry.FieldReprocessedAsJobID, field.TypeString, value)
	}
	if _u.mutation.ReprocessedAsJobIDCleared() {
		_spec.ClearField(deadletterentry.FieldReprocessedAsJobID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(deadletterentry.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(deadletterentry.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(deadletterentry.FieldReviewedAt, field.TypeTime)
	}
	if _u.mutation.WorkflowCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deadletterentry.WorkflowTable,
			Columns: []string{deadletterentry.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deadletterentry.WorkflowTable,
			Columns: []string{deadletterentry.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deadletterentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeadLetterEntryUpdateOne is the builder for updating a single DeadLetterEntry entity.
type DeadLetterEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeadLetterEntryMutation
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *DeadLetterEntryUpdateOne) SetWorkflowID(v uuid.UUID) *DeadLetterEntryUpdateOne {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *DeadLetterEntryUpdateOne) SetNillableWorkflowID(v *uuid.UUID) *DeadLetterEntryUpdateOne {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DeadLetterEntryUpdateOne) SetPayload(v json.RawMessage) *DeadLetterEntryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *DeadLetterEntryUpdateOne) AppendPayload(v json.RawMessage) *DeadLetterEntryUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *DeadLetterEntryUpdateOne) ClearPayload() *DeadLetterEntryUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *DeadLetterEntryUpdateOne) SetFailureReason(v string) *DeadLetterEntryUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *DeadLetterEntryUpdateOne) SetNillableFailureReason(v *string) *DeadLetterEntryUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// SetFailureStack sets the "failure_stack" field.
func (_u *DeadLetterEntryUpdateOne) SetFailureStack(v string) *DeadLetterEntryUpdateOne {
	_u.mutation.SetFailureStack(v)
	return _u
}

// SetNillableFailureStack sets the "failure_stack" field if the given value is not nil.
func (_u *DeadLetterEntryUpdateOne) SetNillableFailureStack(v *string) *DeadLetterEntryUpdateOne {
	if v != nil {
		_u.SetFailureStack(*v)
	}
	return _u
}

// ClearFailureStack clears the value of the "failure_stack" field.
func (_u *DeadLetterEntryUpdateOne) ClearFailureStack() *DeadLetterEntryUpdateOne {
	_u.mutation.ClearFailureStack()
	return _u
}

// SetAttemptsMade sets the "attempts_made" field.
func (_u *DeadLetterEntryUpdateOne) SetAttemptsMade(v int) *DeadLetterEntryUpdateOne {
	_u.mutation.ResetAttemptsMade()
	_u.mutation.SetAttemptsMade(v)
	return _u
}

// SetNillableAttemptsMade sets the "attempts_made" field if the given value is not nil.
func (_u *DeadLetterEntryUpdateOne) SetNillableAttemptsMade(v *int) *DeadLetterEntryUpdateOne {
	if v != nil {
		_u.SetAttemptsMade(*v)
	}
	return _u
}

// AddAttemptsMade adds value to the "attempts_made" field.
func (_u *DeadLetterEntryUpdateOne) AddAttemptsMade(v int) *DeadLetterEntryUpdateOne {
	_u.mutation.AddAttemptsMade(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *DeadLetterEntryUpdateOne) SetPriority(v string) *DeadLetterEntryUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *DeadLetterEntryUpdateOne) SetNillablePriority(v *string) *DeadLetterEntryUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *DeadLetterEntryUpdateOne) SetResolution(v string) *DeadLetterEntryUpdateOne {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *DeadLetterEntryUpdateOne) SetNillableResolution(v *string) *DeadLetterEntryUpdateOne {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *DeadLetterEntryUpdateOne) SetReviewNotes(v string) *DeadLetterEntryUpdateOne {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *DeadLetterEntryUpdateOne) SetNillableReviewNotes(v *string) *DeadLetterEntryUpdateOne {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *DeadLetterEntryUpdateOne) ClearReviewNotes() *DeadLetterEntryUpdateOne {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *DeadLetterEntryUpdateOne) SetReviewedBy(v string) *DeadLetterEntryUpdateOne {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *DeadLetterEntryUpdateOne) SetNillableReviewedBy(v *string) *DeadLetterEntryUpdateOne {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *DeadLetterEntryUpdateOne) ClearReviewedBy() *DeadLetterEntryUpdateOne {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReprocessedAsJobID sets the "reprocessed_as_job_id" field.
func (_u *DeadLetterEntryUpdateOne) SetReprocessedAsJobID(v string) *DeadLetterEntryUpdateOne {
	_u.mutation.SetReprocessedAsJobID(v)
	return _u
}

// SetNillableReprocessedAsJobID sets the "reprocessed_as_job_id" field if the given value is not nil.
func (_u *DeadLetterEntryUpdateOne) SetNillableReprocessedAsJobID(v *string) *DeadLetterEntryUpdateOne {
	if v != nil {
		_u.SetReprocessedAsJobID(*v)
	}
	return _u
}

// ClearReprocessedAsJobID clears the value of the "reprocessed_as_job_id" field.
func (_u *DeadLetterEntryUpdateOne) ClearReprocessedAsJobID() *DeadLetterEntryUpdateOne {
	_u.mutation.ClearReprocessedAsJobID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DeadLetterEntryUpdateOne) SetCreatedAt(v time.Time) *DeadLetterEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DeadLetterEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *DeadLetterEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *DeadLetterEntryUpdateOne) SetReviewedAt(v time.Time) *DeadLetterEntryUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *DeadLetterEntryUpdateOne) SetNillableReviewedAt(v *time.Time) *DeadLetterEntryUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *DeadLetterEntryUpdateOne) ClearReviewedAt() *DeadLetterEntryUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetWorkflow sets the "workflow" edge to the WorkflowExecution entity.
func (_u *DeadLetterEntryUpdateOne) SetWorkflow(v *WorkflowExecution) *DeadLetterEntryUpdateOne {
	return _u.SetWorkflowID(v.ID)
}

// Mutation returns the DeadLetterEntryMutation object of the builder.
func (_u *DeadLetterEntryUpdateOne) Mutation() *DeadLetterEntryMutation {
	return _u.mutation
}

// ClearWorkflow clears the "workflow" edge to the WorkflowExecution entity.
func (_u *DeadLetterEntryUpdateOne) ClearWorkflow() *DeadLetterEntryUpdateOne {
	_u.mutation.ClearWorkflow()
	return _u
}

// Where appends a list predicates to the DeadLetterEntryUpdate builder.
func (_u *DeadLetterEntryUpdateOne) Where(ps ...predicate.DeadLetterEntry) *DeadLetterEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeadLetterEntryUpdateOne) Select(field string, fields ...string) *DeadLetterEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeadLetterEntry entity.
func (_u *DeadLetterEntryUpdateOne) Save(ctx context.Context) (*DeadLetterEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeadLetterEntryUpdateOne) SaveX(ctx context.Context) *DeadLetterEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeadLetterEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeadLetterEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeadLetterEntryUpdateOne) check() error {
	if v, ok := _u.mutation.FailureReason(); ok {
		if err := deadletterentry.FailureReasonValidator(v); err != nil {
			return &ValidationError{Name: "failure_reason", err: fmt.Errorf(`ent: validator failed for field "DeadLetterEntry.failure_reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptsMade(); ok {
		if err := deadletterentry.AttemptsMadeValidator(v); err != nil {
			return &ValidationError{Name: "attempts_made", err: fmt.Errorf(`ent: validator failed for field "DeadLetterEntry.attempts_made": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Resolution(); ok {
		if err := deadletterentry.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "DeadLetterEntry.resolution": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DeadLetterEntry.workflow"`)
	}
	return nil
}

func (_u *DeadLetterEntryUpdateOne) sqlSave(ctx context.Context) (_node *DeadLetterEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deadletterentry.Table, deadletterentry.Columns, sqlgraph.NewFieldSpec(deadletterentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeadLetterEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deadletterentry.FieldID)
		for _, f := range fields {
			if !deadletterentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deadletterentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(deadletterentry.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deadletterentry.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(deadletterentry.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(deadletterentry.FieldFailureReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailureStack(); ok {
		_spec.SetField(deadletterentry.FieldFailureStack, field.TypeString, value)
	}
	if _u.mutation.FailureStackCleared() {
		_spec.ClearField(deadletterentry.FieldFailureStack, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptsMade(); ok {
		_spec.SetField(deadletterentry.FieldAttemptsMade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsMade(); ok {
		_spec.AddField(deadletterentry.FieldAttemptsMade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(deadletterentry.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(deadletterentry.FieldResolution, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(deadletterentry.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(deadletterentry.FieldReviewNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(deadletterentry.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(deadletterentry.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReprocessedAsJobID(); ok {
		_spec.SetField(deadletterentry.FieldReprocessedAsJobID, field.TypeString, value)
	}
	if _u.mutation.ReprocessedAsJobIDCleared() {
		_spec.ClearField(deadletterentry.FieldReprocessedAsJobID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(deadletterentry.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(deadletterentry.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(deadletterentry.FieldReviewedAt, field.TypeTime)
	}
	if _u.mutation.WorkflowCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deadletterentry.WorkflowTable,
			Columns: []string{deadletterentry.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deadletterentry.WorkflowTable,
			Columns: []string{deadletterentry.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DeadLetterEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deadletterentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
