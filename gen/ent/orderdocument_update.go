// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent/merchant"
	"github.com/joseph-ayodele/orderflow/gen/ent/orderdocument"
	"github.com/joseph-ayodele/orderflow/gen/ent/predicate"
	"github.com/joseph-ayodele/orderflow/gen/ent/purchaseorder"
	"github.com/joseph-ayodele/orderflow/gen/ent/workflowexecution"
)

// OrderDocumentUpdate is the builder for updating OrderDocument entities.
type OrderDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *OrderDocumentMutation
}

// Where appends a list predicates to the OrderDocumentUpdate builder.
func (_u *OrderDocumentUpdate) Where(ps ...predicate.OrderDocument) *OrderDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMerchantID sets the "merchant_id" field.
func (_u *OrderDocumentUpdate) SetMerchantID(v uuid.UUID) *OrderDocumentUpdate {
	_u.mutation.SetMerchantID(v)
	return _u
}

// SetNillableMerchantID sets the "merchant_id" field if the given value is not nil.
func (_u *OrderDocumentUpdate) SetNillableMerchantID(v *uuid.UUID) *OrderDocumentUpdate {
	if v != nil {
		_u.SetMerchantID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *OrderDocumentUpdate) SetFilename(v string) *OrderDocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *OrderDocumentUpdate) SetNillableFilename(v *string) *OrderDocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *OrderDocumentUpdate) SetContentType(v string) *OrderDocumentUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *OrderDocumentUpdate) SetNillableContentType(v *string) *OrderDocumentUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *OrderDocumentUpdate) SetContentHash(v []byte) *OrderDocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *OrderDocumentUpdate) SetFileSize(v int) *OrderDocumentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *OrderDocumentUpdate) SetNillableFileSize(v *int) *OrderDocumentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *OrderDocumentUpdate) AddFileSize(v int) *OrderDocumentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *OrderDocumentUpdate) SetStorageKey(v string) *OrderDocumentUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *OrderDocumentUpdate) SetNillableStorageKey(v *string) *OrderDocumentUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *OrderDocumentUpdate) SetUploadedAt(v time.Time) *OrderDocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *OrderDocumentUpdate) SetNillableUploadedAt(v *time.Time) *OrderDocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_u *OrderDocumentUpdate) SetMerchant(v *Merchant) *OrderDocumentUpdate {
	return _u.SetMerchantID(v.ID)
}

// AddWorkflowIDs adds the "workflows" edge to the WorkflowExecution entity by IDs.
func (_u *OrderDocumentUpdate) AddWorkflowIDs(ids ...uuid.UUID) *OrderDocumentUpdate {
	_u.mutation.AddWorkflowIDs(ids...)
	return _u
}

// AddWorkflows adds the "workflows" edges to the WorkflowExecution entity.
func (_u *OrderDocumentUpdate) AddWorkflows(v ...*WorkflowExecution) *OrderDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowIDs(ids...)
}

// AddOrderIDs adds the "orders" edge to the PurchaseOrder entity by IDs.
func (_u *OrderDocumentUpdate) AddOrderIDs(ids ...uuid.UUID) *OrderDocumentUpdate {
	_u.mutation.AddOrderIDs(ids...)
	return _u
}

// AddOrders adds the "orders" edges to the PurchaseOrder entity.
func (_u *OrderDocumentUpdate) AddOrders(v ...*PurchaseOrder) *OrderDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderIDs(ids...)
}

// Mutation returns the OrderDocumentMutation object of the builder.
func (_u *OrderDocumentUpdate) Mutation() *OrderDocumentMutation {
	return _u.mutation
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (_u *OrderDocumentUpdate) ClearMerchant() *OrderDocumentUpdate {
	_u.mutation.ClearMerchant()
	return _u
}

// ClearWorkflows clears all "workflows" edges to the WorkflowExecution entity.
func (_u *OrderDocumentUpdate) ClearWorkflows() *OrderDocumentUpdate {
	_u.mutation.ClearWorkflows()
	return _u
}

// RemoveWorkflowIDs removes the "workflows" edge to WorkflowExecution entities by IDs.
func (_u *OrderDocumentUpdate) RemoveWorkflowIDs(ids ...uuid.UUID) *OrderDocumentUpdate {
	_u.mutation.RemoveWorkflowIDs(ids...)
	return _u
}

// RemoveWorkflows removes "workflows" edges to WorkflowExecution entities.
func (_u *OrderDocumentUpdate) RemoveWorkflows(v ...*WorkflowExecution) *OrderDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowIDs(ids...)
}

// ClearOrders clears all "orders" edges to the PurchaseOrder entity.
func (_u *OrderDocumentUpdate) ClearOrders() *OrderDocumentUpdate {
	_u.mutation.ClearOrders()
	return _u
}

// RemoveOrderIDs removes the "orders" edge to PurchaseOrder entities by IDs.
func (_u *OrderDocumentUpdate) RemoveOrderIDs(ids ...uuid.UUID) *OrderDocumentUpdate {
	_u.mutation.RemoveOrderIDs(ids...)
	return _u
}

// RemoveOrders removes "orders" edges to PurchaseOrder entities.
func (_u *OrderDocumentUpdate) RemoveOrders(v ...*PurchaseOrder) *OrderDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderDocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := orderdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := orderdocument.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := orderdocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := orderdocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := orderdocument.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.storage_key": %w`, err)}
		}
	}
	if _u.mutation.MerchantCleared() && len(_u.mutation.MerchantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderDocument.merchant"`)
	}
	return nil
}

func (_u *OrderDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderdocument.Table, orderdocument.Columns, sqlgraph.NewFieldSpec(orderdocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(orderdocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(orderdocument.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(orderdocument.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(orderdocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(orderdocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(orderdocument.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(orderdocument.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.MerchantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerchantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkflowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkflowsIDs(); len(nodes) > 0 && !_u.mutation.WorkflowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrdersIDs(); len(nodes) > 0 && !_u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrdersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderDocumentUpdateOne is the builder for updating a single OrderDocument entity.
type OrderDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderDocumentMutation
}

// SetMerchantID sets the "merchant_id" field.
func (_u *OrderDocumentUpdateOne) SetMerchantID(v uuid.UUID) *OrderDocumentUpdateOne {
	_u.mutation.SetMerchantID(v)
	return _u
}

// SetNillableMerchantID sets the "merchant_id" field if the given value is not nil.
func (_u *OrderDocumentUpdateOne) SetNillableMerchantID(v *uuid.UUID) *OrderDocumentUpdateOne {
	if v != nil {
		_u.SetMerchantID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *OrderDocumentUpdateOne) SetFilename(v string) *OrderDocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *OrderDocumentUpdateOne) SetNillableFilename(v *string) *OrderDocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *OrderDocumentUpdateOne) SetContentType(v string) *OrderDocumentUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *OrderDocumentUpdateOne) SetNillableContentType(v *string) *OrderDocumentUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *OrderDocumentUpdateOne) SetContentHash(v []byte) *OrderDocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *OrderDocumentUpdateOne) SetFileSize(v int) *OrderDocumentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *OrderDocumentUpdateOne) SetNillableFileSize(v *int) *OrderDocumentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *OrderDocumentUpdateOne) AddFileSize(v int) *OrderDocumentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *OrderDocumentUpdateOne) SetStorageKey(v string) *OrderDocumentUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *OrderDocumentUpdateOne) SetNillableStorageKey(v *string) *OrderDocumentUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *OrderDocumentUpdateOne) SetUploadedAt(v time.Time) *OrderDocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *OrderDocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *OrderDocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_u *OrderDocumentUpdateOne) SetMerchant(v *Merchant) *OrderDocumentUpdateOne {
	return _u.SetMerchantID(v.ID)
}

// AddWorkflowIDs adds the "workflows" edge to the WorkflowExecution entity by IDs.
func (_u *OrderDocumentUpdateOne) AddWorkflowIDs(ids ...uuid.UUID) *OrderDocumentUpdateOne {
	_u.mutation.AddWorkflowIDs(ids...)
	return _u
}

// AddWorkflows adds the "workflows" edges to the WorkflowExecution entity.
func (_u *OrderDocumentUpdateOne) AddWorkflows(v ...*WorkflowExecution) *OrderDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowIDs(ids...)
}

// AddOrderIDs adds the "orders" edge to the PurchaseOrder entity by IDs.
func (_u *OrderDocumentUpdateOne) AddOrderIDs(ids ...uuid.UUID) *OrderDocumentUpdateOne {
	_u.mutation.AddOrderIDs(ids...)
	return _u
}

// AddOrders adds the "orders" edges to the PurchaseOrder entity.
func (_u *OrderDocumentUpdateOne) AddOrders(v ...*PurchaseOrder) *OrderDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderIDs(ids...)
}

// Mutation returns the OrderDocumentMutation object of the builder.
func (_u *OrderDocumentUpdateOne) Mutation() *OrderDocumentMutation {
	return _u.mutation
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (_u *OrderDocumentUpdateOne) ClearMerchant() *OrderDocumentUpdateOne {
	_u.mutation.ClearMerchant()
	return _u
}

// ClearWorkflows clears all "workflows" edges to the WorkflowExecution entity.
func (_u *OrderDocumentUpdateOne) ClearWorkflows() *OrderDocumentUpdateOne {
	_u.mutation.ClearWorkflows()
	return _u
}

// RemoveWorkflowIDs removes the "workflows" edge to WorkflowExecution entities by IDs.
func (_u *OrderDocumentUpdateOne) RemoveWorkflowIDs(ids ...uuid.UUID) *OrderDocumentUpdateOne {
	_u.mutation.RemoveWorkflowIDs(ids...)
	return _u
}

// RemoveWorkflows removes "workflows" edges to WorkflowExecution entities.
func (_u *OrderDocumentUpdateOne) RemoveWorkflows(v ...*WorkflowExecution) *OrderDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowIDs(ids...)
}

// ClearOrders clears all "orders" edges to the PurchaseOrder entity.
func (_u *OrderDocumentUpdateOne) ClearOrders() *OrderDocumentUpdateOne {
	_u.mutation.ClearOrders()
	return _u
}

// RemoveOrderIDs removes the "orders" edge to PurchaseOrder entities by IDs.
func (_u *OrderDocumentUpdateOne) RemoveOrderIDs(ids ...uuid.UUID) *OrderDocumentUpdateOne {
	_u.mutation.RemoveOrderIDs(ids...)
	return _u
}

// RemoveOrders removes "orders" edges to PurchaseOrder entities.
func (_u *OrderDocumentUpdateOne) RemoveOrders(v ...*PurchaseOrder) *OrderDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderIDs(ids...)
}

// Where appends a list predicates to the OrderDocumentUpdate builder.
func (_u *OrderDocumentUpdateOne) Where(ps ...predicate.OrderDocument) *OrderDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderDocumentUpdateOne) Select(field string, fields ...string) *OrderDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrderDocument entity.
func (_u *OrderDocumentUpdateOne) Save(ctx context.Context) (*OrderDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderDocumentUpdateOne) SaveX(ctx context.Context) *OrderDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := orderdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := orderdocument.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := orderdocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := orderdocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := orderdocument.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "OrderDocument.storage_key": %w`, err)}
		}
	}
	if _u.mutation.MerchantCleared() && len(_u.mutation.MerchantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderDocument.merchant"`)
	}
	return nil
}

func (_u *OrderDocumentUpdateOne) sqlSave(ctx context.Context) (_node *OrderDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderdocument.Table, orderdocument.Columns, sqlgraph.NewFieldSpec(orderdocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrderDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orderdocument.FieldID)
		for _, f := range fields {
			if !orderdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orderdocument.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(orderdocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(orderdocument.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(orderdocument.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(orderdocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(orderdocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(orderdocument.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(orderdocument.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.MerchantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerchantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkflowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkflowsIDs(); len(nodes) > 0 && !_u.mutation.WorkflowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrdersIDs(); len(nodes) > 0 && !_u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrdersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OrderDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
