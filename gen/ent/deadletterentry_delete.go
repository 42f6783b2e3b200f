// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/orderflow/gen/ent/deadletterentry"
	"github.com/joseph-ayodele/orderflow/gen/ent/predicate"
)

// DeadLetterEntryDelete is the builder for deleting a DeadLetterEntry entity.
type DeadLetterEntryDelete struct {
	config
	hooks    []Hook
	mutation *DeadLetterEntryMutation
}

// Where appends a list predicates to the DeadLetterEntryDelete builder.
func (_d *DeadLetterEntryDelete) Where(ps ...predicate.DeadLetterEntry) *DeadLetterEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeadLetterEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeadLetterEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeadLetterEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(deadletterentry.Table, sqlgraph.NewFieldSpec(deadletterentry.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DeadLetterEntryDeleteOne is the builder for deleting a single DeadLetterEntry entity.
type DeadLetterEntryDeleteOne struct {
	_d *DeadLetterEntryDelete
}

// Where appends a list predicates to the DeadLetterEntryDelete builder.
func (_d *DeadLetterEntryDeleteOne) Where(ps ...predicate.DeadLetterEntry) *DeadLetterEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeadLetterEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{deadletterentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeadLetterEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
