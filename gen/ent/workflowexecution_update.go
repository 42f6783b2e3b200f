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
	"github.com/joseph-ayodele/orderflow/gen/ent/merchant"
	"github.com/joseph-ayodele/orderflow/gen/ent/orderdocument"
	"github.com/joseph-ayodele/orderflow/gen/ent/predicate"
	"github.com/joseph-ayodele/orderflow/gen/ent/workflowexecution"
)

// WorkflowExecutionUpdate is the builder for updating WorkflowExecution entities.
type WorkflowExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowExecutionMutation
}

// Where appends a list predicates to the WorkflowExecutionUpdate builder.
func (_u *WorkflowExecutionUpdate) Where(ps ...predicate.WorkflowExecution) *WorkflowExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMerchantID sets the "merchant_id" field.
func (_u *WorkflowExecutionUpdate) SetMerchantID(v uuid.UUID) *WorkflowExecutionUpdate {
	_u.mutation.SetMerchantID(v)
	return _u
}

// SetNillableMerchantID sets the "merchant_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableMerchantID(v *uuid.UUID) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetMerchantID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *WorkflowExecutionUpdate) SetDocumentID(v uuid.UUID) *WorkflowExecutionUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableDocumentID(v *uuid.UUID) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowExecutionUpdate) SetStatus(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStatus(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *WorkflowExecutionUpdate) SetCurrentStage(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableCurrentStage(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *WorkflowExecutionUpdate) ClearCurrentStage() *WorkflowExecutionUpdate {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetStagesTotal sets the "stages_total" field.
func (_u *WorkflowExecutionUpdate) SetStagesTotal(v int) *WorkflowExecutionUpdate {
	_u.mutation.ResetStagesTotal()
	_u.mutation.SetStagesTotal(v)
	return _u
}

// SetNillableStagesTotal sets the "stages_total" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStagesTotal(v *int) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStagesTotal(*v)
	}
	return _u
}

// AddStagesTotal adds value to the "stages_total" field.
func (_u *WorkflowExecutionUpdate) AddStagesTotal(v int) *WorkflowExecutionUpdate {
	_u.mutation.AddStagesTotal(v)
	return _u
}

// SetStagesCompleted sets the "stages_completed" field.
func (_u *WorkflowExecutionUpdate) SetStagesCompleted(v int) *WorkflowExecutionUpdate {
	_u.mutation.ResetStagesCompleted()
	_u.mutation.SetStagesCompleted(v)
	return _u
}

// SetNillableStagesCompleted sets the "stages_completed" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStagesCompleted(v *int) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStagesCompleted(*v)
	}
	return _u
}

// AddStagesCompleted adds value to the "stages_completed" field.
func (_u *WorkflowExecutionUpdate) AddStagesCompleted(v int) *WorkflowExecutionUpdate {
	_u.mutation.AddStagesCompleted(v)
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *WorkflowExecutionUpdate) SetProgressPercent(v int) *WorkflowExecutionUpdate {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableProgressPercent(v *int) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *WorkflowExecutionUpdate) AddProgressPercent(v int) *WorkflowExecutionUpdate {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetInputData sets the "input_data" field.
func (_u *WorkflowExecutionUpdate) SetInputData(v json.RawMessage) *WorkflowExecutionUpdate {
	_u.mutation.SetInputData(v)
	return _u
}

// AppendInputData appends value to the "input_data" field.
func (_u *WorkflowExecutionUpdate) AppendInputData(v json.RawMessage) *WorkflowExecutionUpdate {
	_u.mutation.AppendInputData(v)
	return _u
}

// ClearInputData clears the value of the "input_data" field.
func (_u *WorkflowExecutionUpdate) ClearInputData() *WorkflowExecutionUpdate {
	_u.mutation.ClearInputData()
	return _u
}

// SetStatusData sets the "status_data" field.
func (_u *WorkflowExecutionUpdate) SetStatusData(v json.RawMessage) *WorkflowExecutionUpdate {
	_u.mutation.SetStatusData(v)
	return _u
}

// AppendStatusData appends value to the "status_data" field.
func (_u *WorkflowExecutionUpdate) AppendStatusData(v json.RawMessage) *WorkflowExecutionUpdate {
	_u.mutation.AppendStatusData(v)
	return _u
}

// ClearStatusData clears the value of the "status_data" field.
func (_u *WorkflowExecutionUpdate) ClearStatusData() *WorkflowExecutionUpdate {
	_u.mutation.ClearStatusData()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowExecutionUpdate) SetErrorMessage(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableErrorMessage(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowExecutionUpdate) ClearErrorMessage() *WorkflowExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFailedStage sets the "failed_stage" field.
func (_u *WorkflowExecutionUpdate) SetFailedStage(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetFailedStage(v)
	return _u
}

// SetNillableFailedStage sets the "failed_stage" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableFailedStage(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetFailedStage(*v)
	}
	return _u
}

// ClearFailedStage clears the value of the "failed_stage" field.
func (_u *WorkflowExecutionUpdate) ClearFailedStage() *WorkflowExecutionUpdate {
	_u.mutation.ClearFailedStage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkflowExecutionUpdate) SetCreatedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableCreatedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowExecutionUpdate) SetUpdatedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStageStartedAt sets the "stage_started_at" field.
func (_u *WorkflowExecutionUpdate) SetStageStartedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetStageStartedAt(v)
	return _u
}

// SetNillableStageStartedAt sets the "stage_started_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStageStartedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStageStartedAt(*v)
	}
	return _u
}

// ClearStageStartedAt clears the value of the "stage_started_at" field.
func (_u *WorkflowExecutionUpdate) ClearStageStartedAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearStageStartedAt()
	return _u
}

// SetStageCompletedAt sets the "stage_completed_at" field.
func (_u *WorkflowExecutionUpdate) SetStageCompletedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetStageCompletedAt(v)
	return _u
}

// SetNillableStageCompletedAt sets the "stage_completed_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStageCompletedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStageCompletedAt(*v)
	}
	return _u
}

// ClearStageCompletedAt clears the value of the "stage_completed_at" field.
func (_u *WorkflowExecutionUpdate) ClearStageCompletedAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearStageCompletedAt()
	return _u
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_u *WorkflowExecutionUpdate) SetMerchant(v *Merchant) *WorkflowExecutionUpdate {
	return _u.SetMerchantID(v.ID)
}

// SetDocument sets the "document" edge to the OrderDocument entity.
func (_u *WorkflowExecutionUpdate) SetDocument(v *OrderDocument) *WorkflowExecutionUpdate {
	return _u.SetDocumentID(v.ID)
}

// AddDeadLetterIDs adds the "dead_letters" edge to the DeadLetterEntry entity by IDs.
func (_u *WorkflowExecutionUpdate) AddDeadLetterIDs(ids ...uuid.UUID) *WorkflowExecutionUpdate {
	_u.mutation.AddDeadLetterIDs(ids...)
	return _u
}

// AddDeadLetters adds the "dead_letters" edges to the DeadLetterEntry entity.
func (_u *WorkflowExecutionUpdate) AddDeadLetters(v ...*DeadLetterEntry) *WorkflowExecutionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeadLetterIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_u *WorkflowExecutionUpdate) Mutation() *WorkflowExecutionMutation {
	return _u.mutation
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (_u *WorkflowExecutionUpdate) ClearMerchant() *WorkflowExecutionUpdate {
	_u.mutation.ClearMerchant()
	return _u
}

// ClearDocument clears the "document" edge to the OrderDocument entity.
func (_u *WorkflowExecutionUpdate) ClearDocument() *WorkflowExecutionUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearDeadLetters clears all "dead_letters" edges to the DeadLetterEntry entity.
func (_u *WorkflowExecutionUpdate) ClearDeadLetters() *WorkflowExecutionUpdate {
	_u.mutation.ClearDeadLetters()
	return _u
}

// RemoveDeadLetterIDs removes the "dead_letters" edge to DeadLetterEntry entities by IDs.
func (_u *WorkflowExecutionUpdate) RemoveDeadLetterIDs(ids ...uuid.UUID) *WorkflowExecutionUpdate {
	_u.mutation.RemoveDeadLetterIDs(ids...)
	return _u
}

// RemoveDeadLetters removes "dead_letters" edges to DeadLetterEntry entities.
func (_u *WorkflowExecutionUpdate) RemoveDeadLetters(v ...*DeadLetterEntry) *WorkflowExecutionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeadLetterIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowExecutionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowExecutionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowexecution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StagesTotal(); ok {
		if err := workflowexecution.StagesTotalValidator(v); err != nil {
			return &ValidationError{Name: "stages_total", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.stages_total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StagesCompleted(); ok {
		if err := workflowexecution.StagesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "stages_completed", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.stages_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProgressPercent(); ok {
		if err := workflowexecution.ProgressPercentValidator(v); err != nil {
			return &ValidationError{Name: "progress_percent", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.progress_percent": %w`, err)}
		}
	}
	if _u.mutation.MerchantCleared() && len(_u.mutation.MerchantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowExecution.merchant"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowExecution.document"`)
	}
	return nil
}

func (_u *WorkflowExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowexecution.Table, workflowexecution.Columns, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowexecution.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(workflowexecution.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(workflowexecution.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.StagesTotal(); ok {
		_spec.SetField(workflowexecution.FieldStagesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStagesTotal(); ok {
		_spec.AddField(workflowexecution.FieldStagesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StagesCompleted(); ok {
		_spec.SetField(workflowexecution.FieldStagesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStagesCompleted(); ok {
		_spec.AddField(workflowexecution.FieldStagesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(workflowexecution.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(workflowexecution.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputData(); ok {
		_spec.SetField(workflowexecution.FieldInputData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowexecution.FieldInputData, value)
		})
	}
	if _u.mutation.InputDataCleared() {
		_spec.ClearField(workflowexecution.FieldInputData, field.TypeJSON)
	}
	if value, ok := _u.mutation.StatusData(); ok {
		_spec.SetField(workflowexecution.FieldStatusData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatusData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowexecution.FieldStatusData, value)
		})
	}
	if _u.mutation.StatusDataCleared() {
		_spec.ClearField(workflowexecution.FieldStatusData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FailedStage(); ok {
		_spec.SetField(workflowexecution.FieldFailedStage, field.TypeString, value)
	}
	if _u.mutation.FailedStageCleared() {
		_spec.ClearField(workflowexecution.FieldFailedStage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workflowexecution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StageStartedAt(); ok {
		_spec.SetField(workflowexecution.FieldStageStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StageStartedAtCleared() {
		_spec.ClearField(workflowexecution.FieldStageStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StageCompletedAt(); ok {
		_spec.SetField(workflowexecution.FieldStageCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.StageCompletedAtCleared() {
		_spec.ClearField(workflowexecution.FieldStageCompletedAt, field.TypeTime)
	}
	if _u.mutation.MerchantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowexecution.MerchantTable,
			Columns: []string{workflowexecution.MerchantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(merchant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerchantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowexecution.MerchantTable,
			Columns: []string{workflowexecution.MerchantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(merchant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowexecution.DocumentTable,
			Columns: []string{workflowexecution.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderdocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowexecution.DocumentTable,
			Columns: []string{workflowexecution.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DeadLettersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.DeadLettersTable,
			Columns: []string{workflowexecution.DeadLettersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deadletterentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeadLettersIDs(); len(nodes) > 0 && !_u.mutation.DeadLettersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.DeadLettersTable,
			Columns: []string{workflowexecution.DeadLettersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deadletterentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeadLettersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.DeadLettersTable,
			Columns: []string{workflowexecution.DeadLettersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deadletterentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowExecutionUpdateOne is the builder for updating a single WorkflowExecution entity.
type WorkflowExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowExecutionMutation
}

// SetMerchantID sets the "merchant_id" field.
func (_u *WorkflowExecutionUpdateOne) SetMerchantID(v uuid.UUID) *WorkflowExecutionUpdateOne {
	_u.mutation.SetMerchantID(v)
	return _u
}

// SetNillableMerchantID sets the "merchant_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableMerchantID(v *uuid.UUID) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetMerchantID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *WorkflowExecutionUpdateOne) SetDocumentID(v uuid.UUID) *WorkflowExecutionUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableDocumentID(v *uuid.UUID) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowExecutionUpdateOne) SetStatus(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStatus(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *WorkflowExecutionUpdateOne) SetCurrentStage(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableCurrentStage(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *WorkflowExecutionUpdateOne) ClearCurrentStage() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetStagesTotal sets the "stages_total" field.
func (_u *WorkflowExecutionUpdateOne) SetStagesTotal(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.ResetStagesTotal()
	_u.mutation.SetStagesTotal(v)
	return _u
}

// SetNillableStagesTotal sets the "stages_total" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStagesTotal(v *int) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStagesTotal(*v)
	}
	return _u
}

// AddStagesTotal adds value to the "stages_total" field.
func (_u *WorkflowExecutionUpdateOne) AddStagesTotal(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.AddStagesTotal(v)
	return _u
}

// SetStagesCompleted sets the "stages_completed" field.
func (_u *WorkflowExecutionUpdateOne) SetStagesCompleted(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.ResetStagesCompleted()
	_u.mutation.SetStagesCompleted(v)
	return _u
}

// SetNillableStagesCompleted sets the "stages_completed" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStagesCompleted(v *int) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStagesCompleted(*v)
	}
	return _u
}

// AddStagesCompleted adds value to the "stages_completed" field.
func (_u *WorkflowExecutionUpdateOne) AddStagesCompleted(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.AddStagesCompleted(v)
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *WorkflowExecutionUpdateOne) SetProgressPercent(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableProgressPercent(v *int) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *WorkflowExecutionUpdateOne) AddProgressPercent(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetInputData sets the "input_data" field.
func (_u *WorkflowExecutionUpdateOne) SetInputData(v json.RawMessage) *WorkflowExecutionUpdateOne {
	_u.mutation.SetInputData(v)
	return _u
}

// AppendInputData appends value to the "input_data" field.
func (_u *WorkflowExecutionUpdateOne) AppendInputData(v json.RawMessage) *WorkflowExecutionUpdateOne {
	_u.mutation.AppendInputData(v)
	return _u
}

// ClearInputData clears the value of the "input_data" field.
func (_u *WorkflowExecutionUpdateOne) ClearInputData() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearInputData()
	return _u
}

// SetStatusData sets the "status_data" field.
func (_u *WorkflowExecutionUpdateOne) SetStatusData(v json.RawMessage) *WorkflowExecutionUpdateOne {
	_u.mutation.SetStatusData(v)
	return _u
}

// AppendStatusData appends value to the "status_data" field.
func (_u *WorkflowExecutionUpdateOne) AppendStatusData(v json.RawMessage) *WorkflowExecutionUpdateOne {
	_u.mutation.AppendStatusData(v)
	return _u
}

// ClearStatusData clears the value of the "status_data" field.
func (_u *WorkflowExecutionUpdateOne) ClearStatusData() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearStatusData()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowExecutionUpdateOne) SetErrorMessage(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableErrorMessage(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowExecutionUpdateOne) ClearErrorMessage() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFailedStage sets the "failed_stage" field.
func (_u *WorkflowExecutionUpdateOne) SetFailedStage(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetFailedStage(v)
	return _u
}

// SetNillableFailedStage sets the "failed_stage" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableFailedStage(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetFailedStage(*v)
	}
	return _u
}

// ClearFailedStage clears the value of the "failed_stage" field.
func (_u *WorkflowExecutionUpdateOne) ClearFailedStage() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearFailedStage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkflowExecutionUpdateOne) SetCreatedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableCreatedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowExecutionUpdateOne) SetUpdatedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStageStartedAt sets the "stage_started_at" field.
func (_u *WorkflowExecutionUpdateOne) SetStageStartedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetStageStartedAt(v)
	return _u
}

// SetNillableStageStartedAt sets the "stage_started_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStageStartedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStageStartedAt(*v)
	}
	return _u
}

// ClearStageStartedAt clears the value of the "stage_started_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearStageStartedAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearStageStartedAt()
	return _u
}

// SetStageCompletedAt sets the "stage_completed_at" field.
func (_u *WorkflowExecutionUpdateOne) SetStageCompletedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetStageCompletedAt(v)
	return _u
}

// SetNillableStageCompletedAt sets the "stage_completed_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStageCompletedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStageCompletedAt(*v)
	}
	return _u
}

// ClearStageCompletedAt clears the value of the "stage_completed_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearStageCompletedAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearStageCompletedAt()
	return _u
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_u *WorkflowExecutionUpdateOne) SetMerchant(v *Merchant) *WorkflowExecutionUpdateOne {
	return _u.SetMerchantID(v.ID)
}

// SetDocument sets the "document" edge to the OrderDocument entity.
func (_u *WorkflowExecutionUpdateOne) SetDocument(v *OrderDocument) *WorkflowExecutionUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// AddDeadLetterIDs adds the "dead_letters" edge to the DeadLetterEntry entity by IDs.
func (_u *WorkflowExecutionUpdateOne) AddDeadLetterIDs(ids ...uuid.UUID) *WorkflowExecutionUpdateOne {
	_u.mutation.AddDeadLetterIDs(ids...)
	return _u
}

// AddDeadLetters adds the "dead_letters" edges to the DeadLetterEntry entity.
func (_u *WorkflowExecutionUpdateOne) AddDeadLetters(v ...*DeadLetterEntry) *WorkflowExecutionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeadLetterIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_u *WorkflowExecutionUpdateOne) Mutation() *WorkflowExecutionMutation {
	return _u.mutation
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (_u *WorkflowExecutionUpdateOne) ClearMerchant() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearMerchant()
	return _u
}

// ClearDocument clears the "document" edge to the OrderDocument entity.
func (_u *WorkflowExecutionUpdateOne) ClearDocument() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearDeadLetters clears all "dead_letters" edges to the DeadLetterEntry entity.
func (_u *WorkflowExecutionUpdateOne) ClearDeadLetters() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearDeadLetters()
	return _u
}

// RemoveDeadLetterIDs removes the "dead_letters" edge to DeadLetterEntry entities by IDs.
func (_u *WorkflowExecutionUpdateOne) RemoveDeadLetterIDs(ids ...uuid.UUID) *WorkflowExecutionUpdateOne {
	_u.mutation.RemoveDeadLetterIDs(ids...)
	return _u
}

// RemoveDeadLetters removes "dead_letters" edges to DeadLetterEntry entities.
func (_u *WorkflowExecutionUpdateOne) RemoveDeadLetters(v ...*DeadLetterEntry) *WorkflowExecutionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeadLetterIDs(ids...)
}

// Where appends a list predicates to the WorkflowExecutionUpdate builder.
func (_u *WorkflowExecutionUpdateOne) Where(ps ...predicate.WorkflowExecution) *WorkflowExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowExecutionUpdateOne) Select(field string, fields ...string) *WorkflowExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowExecution entity.
func (_u *WorkflowExecutionUpdateOne) Save(ctx context.Context) (*WorkflowExecution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowExecutionUpdateOne) SaveX(ctx context.Context) *WorkflowExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowExecutionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowexecution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StagesTotal(); ok {
		if err := workflowexecution.StagesTotalValidator(v); err != nil {
			return &ValidationError{Name: "stages_total", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.stages_total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StagesCompleted(); ok {
		if err := workflowexecution.StagesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "stages_completed", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.stages_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProgressPercent(); ok {
		if err := workflowexecution.ProgressPercentValidator(v); err != nil {
			return &ValidationError{Name: "progress_percent", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.progress_percent": %w`, err)}
		}
	}
	if _u.mutation.MerchantCleared() && len(_u.mutation.MerchantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowExecution.merchant"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowExecution.document"`)
	}
	return nil
}

func (_u *WorkflowExecutionUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowexecution.Table, workflowexecution.Columns, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowexecution.FieldID)
		for _, f := range fields {
			if !workflowexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowexecution.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowexecution.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(workflowexecution.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(workflowexecution.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.StagesTotal(); ok {
		_spec.SetField(workflowexecution.FieldStagesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStagesTotal(); ok {
		_spec.AddField(workflowexecution.FieldStagesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StagesCompleted(); ok {
		_spec.SetField(workflowexecution.FieldStagesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStagesCompleted(); ok {
		_spec.AddField(workflowexecution.FieldStagesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(workflowexecution.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(workflowexecution.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputData(); ok {
		_spec.SetField(workflowexecution.FieldInputData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowexecution.FieldInputData, value)
		})
	}
	if _u.mutation.InputDataCleared() {
		_spec.ClearField(workflowexecution.FieldInputData, field.TypeJSON)
	}
	if value, ok := _u.mutation.StatusData(); ok {
		_spec.SetField(workflowexecution.FieldStatusData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatusData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowexecution.FieldStatusData, value)
		})
	}
	if _u.mutation.StatusDataCleared() {
		_spec.ClearField(workflowexecution.FieldStatusData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FailedStage(); ok {
		_spec.SetField(workflowexecution.FieldFailedStage, field.TypeString, value)
	}
	if _u.mutation.FailedStageCleared() {
		_spec.ClearField(workflowexecution.FieldFailedStage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workflowexecution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StageStartedAt(); ok {
		_spec.SetField(workflowexecution.FieldStageStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StageStartedAtCleared() {
		_spec.ClearField(workflowexecution.FieldStageStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StageCompletedAt(); ok {
		_spec.SetField(workflowexecution.FieldStageCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.StageCompletedAtCleared() {
		_spec.ClearField(workflowexecution.FieldStageCompletedAt, field.TypeTime)
	}
	if _u.mutation.MerchantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowexecution.MerchantTable,
			Columns: []string{workflowexecution.MerchantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(merchant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerchantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowexecution.MerchantTable,
			Columns: []string{workflowexecution.MerchantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(merchant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowexecution.DocumentTable,
			Columns: []string{workflowexecution.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderdocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowexecution.DocumentTable,
			Columns: []string{workflowexecution.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DeadLettersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.DeadLettersTable,
			Columns: []string{workflowexecution.DeadLettersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deadletterentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeadLettersIDs(); len(nodes) > 0 && !_u.mutation.DeadLettersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.DeadLettersTable,
			Columns: []string{workflowexecution.DeadLettersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deadletterentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeadLettersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.DeadLettersTable,
			Columns: []string{workflowexecution.DeadLettersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deadletterentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
