// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent/deadletterentry"
	"github.com/joseph-ayodele/orderflow/gen/ent/merchant"
	"github.com/joseph-ayodele/orderflow/gen/ent/orderdocument"
	"github.com/joseph-ayodele/orderflow/gen/ent/workflowexecution"
)

// WorkflowExecutionCreate is the builder for creating a WorkflowExecution entity.
type WorkflowExecutionCreate struct {
	config
	mutation *WorkflowExecutionMutation
	hooks    []Hook
}

// SetMerchantID sets the "merchant_id" field.
func (_c *WorkflowExecutionCreate) SetMerchantID(v uuid.UUID) *WorkflowExecutionCreate {
	_c.mutation.SetMerchantID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *WorkflowExecutionCreate) SetDocumentID(v uuid.UUID) *WorkflowExecutionCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowExecutionCreate) SetStatus(v string) *WorkflowExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableStatus(v *string) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStage sets the "current_stage" field.
func (_c *WorkflowExecutionCreate) SetCurrentStage(v string) *WorkflowExecutionCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableCurrentStage(v *string) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetCurrentStage(*v)
	}
	return _c
}

// SetStagesTotal sets the "stages_total" field.
func (_c *WorkflowExecutionCreate) SetStagesTotal(v int) *WorkflowExecutionCreate {
	_c.mutation.SetStagesTotal(v)
	return _c
}

// SetStagesCompleted sets the "stages_completed" field.
func (_c *WorkflowExecutionCreate) SetStagesCompleted(v int) *WorkflowExecutionCreate {
	_c.mutation.SetStagesCompleted(v)
	return _c
}

// SetNillableStagesCompleted sets the "stages_completed" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableStagesCompleted(v *int) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetStagesCompleted(*v)
	}
	return _c
}

// SetProgressPercent sets the "progress_percent" field.
func (_c *WorkflowExecutionCreate) SetProgressPercent(v int) *WorkflowExecutionCreate {
	_c.mutation.SetProgressPercent(v)
	return _c
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableProgressPercent(v *int) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetProgressPercent(*v)
	}
	return _c
}

// SetInputData sets the "input_data" field.
func (_c *WorkflowExecutionCreate) SetInputData(v json.RawMessage) *WorkflowExecutionCreate {
	_c.mutation.SetInputData(v)
	return _c
}

// SetStatusData sets the "status_data" field.
func (_c *WorkflowExecutionCreate) SetStatusData(v json.RawMessage) *WorkflowExecutionCreate {
	_c.mutation.SetStatusData(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkflowExecutionCreate) SetErrorMessage(v string) *WorkflowExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableErrorMessage(v *string) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetFailedStage sets the "failed_stage" field.
func (_c *WorkflowExecutionCreate) SetFailedStage(v string) *WorkflowExecutionCreate {
	_c.mutation.SetFailedStage(v)
	return _c
}

// SetNillableFailedStage sets the "failed_stage" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableFailedStage(v *string) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetFailedStage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowExecutionCreate) SetCreatedAt(v time.Time) *WorkflowExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableCreatedAt(v *time.Time) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowExecutionCreate) SetUpdatedAt(v time.Time) *WorkflowExecutionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStageStartedAt sets the "stage_started_at" field.
func (_c *WorkflowExecutionCreate) SetStageStartedAt(v time.Time) *WorkflowExecutionCreate {
	_c.mutation.SetStageStartedAt(v)
	return _c
}

// SetNillableStageStartedAt sets the "stage_started_at" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableStageStartedAt(v *time.Time) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetStageStartedAt(*v)
	}
	return _c
}

// SetStageCompletedAt sets the "stage_completed_at" field.
func (_c *WorkflowExecutionCreate) SetStageCompletedAt(v time.Time) *WorkflowExecutionCreate {
	_c.mutation.SetStageCompletedAt(v)
	return _c
}

// SetNillableStageCompletedAt sets the "stage_completed_at" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableStageCompletedAt(v *time.Time) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetStageCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowExecutionCreate) SetID(v uuid.UUID) *WorkflowExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableID(v *uuid.UUID) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_c *WorkflowExecutionCreate) SetMerchant(v *Merchant) *WorkflowExecutionCreate {
	return _c.SetMerchantID(v.ID)
}

// SetDocument sets the "document" edge to the OrderDocument entity.
func (_c *WorkflowExecutionCreate) SetDocument(v *OrderDocument) *WorkflowExecutionCreate {
	return _c.SetDocumentID(v.ID)
}

// AddDeadLetterIDs adds the "dead_letters" edge to the DeadLetterEntry entity by IDs.
func (_c *WorkflowExecutionCreate) AddDeadLetterIDs(ids ...uuid.UUID) *WorkflowExecutionCreate {
	_c.mutation.AddDeadLetterIDs(ids...)
	return _c
}

// AddDeadLetters adds the "dead_letters" edges to the DeadLetterEntry entity.
func (_c *WorkflowExecutionCreate) AddDeadLetters(v ...*DeadLetterEntry) *WorkflowExecutionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeadLetterIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_c *WorkflowExecutionCreate) Mutation() *WorkflowExecutionMutation {
	return _c.mutation
}

// Save creates the WorkflowExecution in the database.
func (_c *WorkflowExecutionCreate) Save(ctx context.Context) (*WorkflowExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowExecutionCreate) SaveX(ctx context.Context) *WorkflowExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workflowexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StagesCompleted(); !ok {
		v := workflowexecution.DefaultStagesCompleted
		_c.mutation.SetStagesCompleted(v)
	}
	if _, ok := _c.mutation.ProgressPercent(); !ok {
		v := workflowexecution.DefaultProgressPercent
		_c.mutation.SetProgressPercent(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflowexecution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := workflowexecution.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowExecutionCreate) check() error {
	if _, ok := _c.mutation.MerchantID(); !ok {
		return &ValidationError{Name: "merchant_id", err: errors.New(`ent: missing required field "WorkflowExecution.merchant_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "WorkflowExecution.document_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkflowExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StagesTotal(); !ok {
		return &ValidationError{Name: "stages_total", err: errors.New(`ent: missing required field "WorkflowExecution.stages_total"`)}
	}
	if v, ok := _c.mutation.StagesTotal(); ok {
		if err := workflowexecution.StagesTotalValidator(v); err != nil {
			return &ValidationError{Name: "stages_total", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.stages_total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StagesCompleted(); !ok {
		return &ValidationError{Name: "stages_completed", err: errors.New(`ent: missing required field "WorkflowExecution.stages_completed"`)}
	}
	if v, ok := _c.mutation.StagesCompleted(); ok {
		if err := workflowexecution.StagesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "stages_completed", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.stages_completed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProgressPercent(); !ok {
		return &ValidationError{Name: "progress_percent", err: errors.New(`ent: missing required field "WorkflowExecution.progress_percent"`)}
	}
	if v, ok := _c.mutation.ProgressPercent(); ok {
		if err := workflowexecution.ProgressPercentValidator(v); err != nil {
			return &ValidationError{Name: "progress_percent", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.progress_percent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowExecution.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowExecution.updated_at"`)}
	}
	if len(_c.mutation.MerchantIDs()) == 0 {
		return &ValidationError{Name: "merchant", err: errors.New(`ent: missing required edge "WorkflowExecution.merchant"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "WorkflowExecution.document"`)}
	}
	return nil
}

func (_c *WorkflowExecutionCreate) sqlSave(ctx context.Context) (*WorkflowExecution, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowExecutionCreate) createSpec() (*WorkflowExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowexecution.Table, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflowexecution.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(workflowexecution.FieldCurrentStage, field.TypeString, value)
		_node.CurrentStage = &value
	}
	if value, ok := _c.mutation.StagesTotal(); ok {
		_spec.SetField(workflowexecution.FieldStagesTotal, field.TypeInt, value)
		_node.StagesTotal = value
	}
	if value, ok := _c.mutation.StagesCompleted(); ok {
		_spec.SetField(workflowexecution.FieldStagesCompleted, field.TypeInt, value)
		_node.StagesCompleted = value
	}
	if value, ok := _c.mutation.ProgressPercent(); ok {
		_spec.SetField(workflowexecution.FieldProgressPercent, field.TypeInt, value)
		_node.ProgressPercent = value
	}
	if value, ok := _c.mutation.InputData(); ok {
		_spec.SetField(workflowexecution.FieldInputData, field.TypeJSON, value)
		_node.InputData = value
	}
	if value, ok := _c.mutation.StatusData(); ok {
		_spec.SetField(workflowexecution.FieldStatusData, field.TypeJSON, value)
		_node.StatusData = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.FailedStage(); ok {
		_spec.SetField(workflowexecution.FieldFailedStage, field.TypeString, value)
		_node.FailedStage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowexecution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StageStartedAt(); ok {
		_spec.SetField(workflowexecution.FieldStageStartedAt, field.TypeTime, value)
		_node.StageStartedAt = &value
	}
	if value, ok := _c.mutation.StageCompletedAt(); ok {
		_spec.SetField(workflowexecution.FieldStageCompletedAt, field.TypeTime, value)
		_node.StageCompletedAt = &value
	}
	if nodes := _c.mutation.MerchantIDs(); len(nodes) > 0 {
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
		_node.MerchantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DeadLettersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowExecutionCreateBulk is the builder for creating many WorkflowExecution entities in bulk.
type WorkflowExecutionCreateBulk struct {
	config
	err      error
	builders []*WorkflowExecutionCreate
}

// Save creates the WorkflowExecution entities in the database.
func (_c *WorkflowExecutionCreateBulk) Save(ctx context.Context) ([]*WorkflowExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowExecutionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkflowExecutionCreateBulk) SaveX(ctx context.Context) []*WorkflowExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
