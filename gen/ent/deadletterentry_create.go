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
	"github.com/joseph-ayodele/orderflow/gen/ent/workflowexecution"
)

// DeadLetterEntryCreate is the builder for creating a DeadLetterEntry entity.
type DeadLetterEntryCreate struct {
	config
	mutation *DeadLetterEntryMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *DeadLetterEntryCreate) SetJobID(v string) *DeadLetterEntryCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *DeadLetterEntryCreate) SetWorkflowID(v uuid.UUID) *DeadLetterEntryCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *DeadLetterEntryCreate) SetStage(v string) *DeadLetterEntryCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *DeadLetterEntryCreate) SetPayload(v json.RawMessage) *DeadLetterEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *DeadLetterEntryCreate) SetFailureReason(v string) *DeadLetterEntryCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetFailureStack sets the "failure_stack" field.
func (_c *DeadLetterEntryCreate) SetFailureStack(v string) *DeadLetterEntryCreate {
	_c.mutation.SetFailureStack(v)
	return _c
}

// SetNillableFailureStack sets the "failure_stack" field if the given value is not nil.
func (_c *DeadLetterEntryCreate) SetNillableFailureStack(v *string) *DeadLetterEntryCreate {
	if v != nil {
		_c.SetFailureStack(*v)
	}
	return _c
}

// SetAttemptsMade sets the "attempts_made" field.
func (_c *DeadLetterEntryCreate) SetAttemptsMade(v int) *DeadLetterEntryCreate {
	_c.mutation.SetAttemptsMade(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *DeadLetterEntryCreate) SetPriority(v string) *DeadLetterEntryCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *DeadLetterEntryCreate) SetNillablePriority(v *string) *DeadLetterEntryCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetResolution sets the "resolution" field.
func (_c *DeadLetterEntryCreate) SetResolution(v string) *DeadLetterEntryCreate {
	_c.mutation.SetResolution(v)
	return _c
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_c *DeadLetterEntryCreate) SetNillableResolution(v *string) *DeadLetterEntryCreate {
	if v != nil {
		_c.SetResolution(*v)
	}
	return _c
}

// SetReviewNotes sets the "review_notes" field.
func (_c *DeadLetterEntryCreate) SetReviewNotes(v string) *DeadLetterEntryCreate {
	_c.mutation.SetReviewNotes(v)
	return _c
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_c *DeadLetterEntryCreate) SetNillableReviewNotes(v *string) *DeadLetterEntryCreate {
	if v != nil {
		_c.SetReviewNotes(*v)
	}
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *DeadLetterEntryCreate) SetReviewedBy(v string) *DeadLetterEntryCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *DeadLetterEntryCreate) SetNillableReviewedBy(v *string) *DeadLetterEntryCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetReprocessedAsJobID sets the "reprocessed_as_job_id" field.
func (_c *DeadLetterEntryCreate) SetReprocessedAsJobID(v string) *DeadLetterEntryCreate {
	_c.mutation.SetReprocessedAsJobID(v)
	return _c
}

// SetNillableReprocessedAsJobID sets the "reprocessed_as_job_id" field if the given value is not nil.
func (_c *DeadLetterEntryCreate) SetNillableReprocessedAsJobID(v *string) *DeadLetterEntryCreate {
	if v != nil {
		_c.SetReprocessedAsJobID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeadLetterEntryCreate) SetCreatedAt(v time.Time) *DeadLetterEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeadLetterEntryCreate) SetNillableCreatedAt(v *time.Time) *DeadLetterEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *DeadLetterEntryCreate) SetReviewedAt(v time.Time) *DeadLetterEntryCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *DeadLetterEntryCreate) SetNillableReviewedAt(v *time.Time) *DeadLetterEntryCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeadLetterEntryCreate) SetID(v uuid.UUID) *DeadLetterEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DeadLetterEntryCreate) SetNillableID(v *uuid.UUID) *DeadLetterEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWorkflow sets the "workflow" edge to the WorkflowExecution entity.
func (_c *DeadLetterEntryCreate) SetWorkflow(v *WorkflowExecution) *DeadLetterEntryCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the DeadLetterEntryMutation object of the builder.
func (_c *DeadLetterEntryCreate) Mutation() *DeadLetterEntryMutation {
	return _c.mutation
}

// Save creates the DeadLetterEntry in the database.
func (_c *DeadLetterEntryCreate) Save(ctx context.Context) (*DeadLetterEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeadLetterEntryCreate) SaveX(ctx context.Context) *DeadLetterEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeadLetterEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeadLetterEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeadLetterEntryCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := deadletterentry.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Resolution(); !ok {
		v := deadletterentry.DefaultResolution
		_c.mutation.SetResolution(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deadletterentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := deadletterentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeadLetterEntryCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "DeadLetterEntry.job_id"`)}
	}
	if v, ok := _c.mutation.JobID(); ok {
		if err := deadletterentry.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "DeadLetterEntry.job_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "DeadLetterEntry.workflow_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "DeadLetterEntry.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := deadletterentry.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "DeadLetterEntry.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailureReason(); !ok {
		return &ValidationError{Name: "failure_reason", err: errors.New(`ent: missing required field "DeadLetterEntry.failure_reason"`)}
	}
	if v, ok := _c.mutation.FailureReason(); ok {
		if err := deadletterentry.FailureReasonValidator(v); err != nil {
			return &ValidationError{Name: "failure_reason", err: fmt.Errorf(`ent: validator failed for field "DeadLetterEntry.failure_reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptsMade(); !ok {
		return &ValidationError{Name: "attempts_made", err: errors.New(`ent: missing required field "DeadLetterEntry.attempts_made"`)}
	}
	if v, ok := _c.mutation.AttemptsMade(); ok {
		if err := deadletterentry.AttemptsMadeValidator(v); err != nil {
			return &ValidationError{Name: "attempts_made", err: fmt.Errorf(`ent: validator failed for field "DeadLetterEntry.attempts_made": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "DeadLetterEntry.priority"`)}
	}
	if _, ok := _c.mutation.Resolution(); !ok {
		return &ValidationError{Name: "resolution", err: errors.New(`ent: missing required field "DeadLetterEntry.resolution"`)}
	}
	if v, ok := _c.mutation.Resolution(); ok {
		if err := deadletterentry.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "DeadLetterEntry.resolution": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DeadLetterEntry.created_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "DeadLetterEntry.workflow"`)}
	}
	return nil
}

func (_c *DeadLetterEntryCreate) sqlSave(ctx context.Context) (*DeadLetterEntry, error) {
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

func (_c *DeadLetterEntryCreate) createSpec() (*DeadLetterEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &DeadLetterEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deadletterentry.Table, sqlgraph.NewFieldSpec(deadletterentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(deadletterentry.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(deadletterentry.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(deadletterentry.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(deadletterentry.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = value
	}
	if value, ok := _c.mutation.FailureStack(); ok {
		_spec.SetField(deadletterentry.FieldFailureStack, field.TypeString, value)
		_node.FailureStack = &value
	}
	if value, ok := _c.mutation.AttemptsMade(); ok {
		_spec.SetField(deadletterentry.FieldAttemptsMade, field.TypeInt, value)
		_node.AttemptsMade = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(deadletterentry.FieldPriority, field.TypeString, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Resolution(); ok {
		_spec.SetField(deadletterentry.FieldResolution, field.TypeString, value)
		_node.Resolution = value
	}
	if value, ok := _c.mutation.ReviewNotes(); ok {
		_spec.SetField(deadletterentry.FieldReviewNotes, field.TypeString, value)
		_node.ReviewNotes = &value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(deadletterentry.FieldReviewedBy, field.TypeString, value)
		_node.ReviewedBy = &value
	}
	if value, ok := _c.mutation.ReprocessedAsJobID(); ok {
		_spec.SetField(deadletterentry.FieldReprocessedAsJobID, field.TypeString, value)
		_node.ReprocessedAsJobID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deadletterentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(deadletterentry.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
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
		_node.WorkflowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DeadLetterEntryCreateBulk is the builder for creating many DeadLetterEntry entities in bulk.
type DeadLetterEntryCreateBulk struct {
	config
	err      error
	builders []*DeadLetterEntryCreate
}

// Save creates the DeadLetterEntry entities in the database.
func (_c *DeadLetterEntryCreateBulk) Save(ctx context.Context) ([]*DeadLetterEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeadLetterEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeadLetterEntryMutation)
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
func (_c *DeadLetterEntryCreateBulk) SaveX(ctx context.Context) []*DeadLetterEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeadLetterEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeadLetterEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
