// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent/merchant"
	"github.com/joseph-ayodele/orderflow/gen/ent/orderdocument"
	"github.com/joseph-ayodele/orderflow/gen/ent/purchaseorder"
	"github.com/joseph-ayodele/orderflow/gen/ent/workflowexecution"
)

// OrderDocumentCreate is the builder for creating a OrderDocument entity.
type OrderDocumentCreate struct {
	config
	mutation *OrderDocumentMutation
	hooks    []Hook
}

// SetMerchantID sets the "merchant_id" field.
func (_c *OrderDocumentCreate) SetMerchantID(v uuid.UUID) *OrderDocumentCreate {
	_c.mutation.SetMerchantID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *OrderDocumentCreate) SetFilename(v string) *OrderDocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *OrderDocumentCreate) SetContentType(v string) *OrderDocumentCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *OrderDocumentCreate) SetContentHash(v []byte) *OrderDocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *OrderDocumentCreate) SetFileSize(v int) *OrderDocumentCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetStorageKey sets the "storage_key" field.
func (_c *OrderDocumentCreate) SetStorageKey(v string) *OrderDocumentCreate {
	_c.mutation.SetStorageKey(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *OrderDocumentCreate) SetUploadedAt(v time.Time) *OrderDocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *OrderDocumentCreate) SetNillableUploadedAt(v *time.Time) *OrderDocumentCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrderDocumentCreate) SetID(v uuid.UUID) *OrderDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrderDocumentCreate) SetNillableID(v *uuid.UUID) *OrderDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_c *OrderDocumentCreate) SetMerchant(v *Merchant) *OrderDocumentCreate {
	return _c.SetMerchantID(v.ID)
}

// AddWorkflowIDs adds the "workflows" edge to the WorkflowExecution entity by IDs.
func (_c *OrderDocumentCreate) AddWorkflowIDs(ids ...uuid.UUID) *OrderDocumentCreate {
	_c.mutation.AddWorkflowIDs(ids...)
	return _c
}

// AddWorkflows adds the "workflows" edges to the WorkflowExecution entity.
func (_c *OrderDocumentCreate) AddWorkflows(v ...*WorkflowExecution) *OrderDocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWorkflowIDs(ids...)
}

// AddOrderIDs adds the "orders" edge to the PurchaseOrder entity by IDs.
func (_c *OrderDocumentCreate) AddOrderIDs(ids ...uuid.UUID) *OrderDocumentCreate {
	_c.mutation.AddOrderIDs(ids...)
	return _c
}

// AddOrders adds the "orders" edges to the PurchaseOrder entity.
func (_c *OrderDocumentCreate) AddOrders(v ...*PurchaseOrder) *OrderDocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOrderIDs(ids...)
}

// Mutation returns the OrderDocumentMutation object of the builder.
func (_c *OrderDocumentCreate) Mutation() *OrderDocumentMutation {
	return _c.mutation
}

// Save creates the OrderDocument in the database.
func (_c *OrderDocumentCreate) Save(ctx context.Context) (*OrderDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderDocumentCreate) SaveX(ctx context.Context) *OrderDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderDocumentCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := orderdocument.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := orderdocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderDocumentCreate) check() error {
	if _, ok := _c.mutation.MerchantID(); !ok {
		return &ValidationError{Name: "merchant_id", err: errors.New(`ent: missing required field "OrderDocument.merchant_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "OrderDocument.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := orderdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "OrderDocument.content_type"`)}
	}
	if v, ok := _c.mutation.ContentType(); ok {
		if err := orderdocument.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.content_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "OrderDocument.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := orderdocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "OrderDocument.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := orderdocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageKey(); !ok {
		return &ValidationError{Name: "storage_key", err: errors.New(`ent: missing required field "OrderDocument.storage_key"`)}
	}
	if v, ok := _c.mutation.StorageKey(); ok {
		if err := orderdocument.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.storage_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "OrderDocument.uploaded_at"`)}
	}
	if len(_c.mutation.MerchantIDs()) == 0 {
		return &ValidationError{Name: "merchant", err: errors.New(`ent: missing required edge "OrderDocument.merchant"`)}
	}
	return nil
}

func (_c *OrderDocumentCreate) sqlSave(ctx context.Context) (*OrderDocument, error) {
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

func (_c *OrderDocumentCreate) createSpec() (*OrderDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &OrderDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orderdocument.Table, sqlgraph.NewFieldSpec(orderdocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(orderdocument.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(orderdocument.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(orderdocument.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(orderdocument.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.StorageKey(); ok {
		_spec.SetField(orderdocument.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(orderdocument.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.MerchantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderdocument.MerchantTable,
			Columns: []string{orderdocument.MerchantColumn},
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
	if nodes := _c.mutation.WorkflowsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderdocument.WorkflowsTable,
			Columns: []string{orderdocument.WorkflowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OrdersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderdocument.OrdersTable,
			Columns: []string{orderdocument.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchaseorder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OrderDocumentCreateBulk is the builder for creating many OrderDocument entities in bulk.
type OrderDocumentCreateBulk struct {
	config
	err      error
	builders []*OrderDocumentCreate
}

// Save creates the OrderDocument entities in the database.
func (_c *OrderDocumentCreateBulk) Save(ctx context.Context) ([]*OrderDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrderDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderDocumentMutation)
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
func (_c *OrderDocumentCreateBulk) SaveX(ctx context.Context) []*OrderDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
