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

// MerchantUpdate is the builder for updating Merchant entities.
type MerchantUpdate struct {
	config
	hooks    []Hook
	mutation *MerchantMutation
}

// Where appends a list predicates to the MerchantUpdate builder.
func (_u *MerchantUpdate) Where(ps ...predicate.Merchant) *MerchantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetShopDomain sets the "shop_domain" field.
func (_u *MerchantUpdate) SetShopDomain(v string) *MerchantUpdate {
	_u.mutation.SetShopDomain(v)
	return _u
}

// SetNillableShopDomain sets the "shop_domain" field if the given value is not nil.
func (_u *MerchantUpdate) SetNillableShopDomain(v *string) *MerchantUpdate {
	if v != nil {
		_u.SetShopDomain(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *MerchantUpdate) SetDisplayName(v string) *MerchantUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *MerchantUpdate) SetNillableDisplayName(v *string) *MerchantUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *MerchantUpdate) ClearDisplayName() *MerchantUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MerchantUpdate) SetCreatedAt(v time.Time) *MerchantUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MerchantUpdate) SetNillableCreatedAt(v *time.Time) *MerchantUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddDocumentIDs adds the "documents" edge to the OrderDocument entity by IDs.
func (_u *MerchantUpdate) AddDocumentIDs(ids ...uuid.UUID) *MerchantUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the OrderDocument entity.
func (_u *MerchantUpdate) AddDocuments(v ...*OrderDocument) *MerchantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddWorkflowIDs adds the "workflows" edge to the WorkflowExecution entity by IDs.
func (_u *MerchantUpdate) AddWorkflowIDs(ids ...uuid.UUID) *MerchantUpdate {
	_u.mutation.AddWorkflowIDs(ids...)
	return _u
}

// AddWorkflows adds the "workflows" edges to the WorkflowExecution entity.
func (_u *MerchantUpdate) AddWorkflows(v ...*WorkflowExecution) *MerchantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowIDs(ids...)
}

// AddOrderIDs adds the "orders" edge to the PurchaseOrder entity by IDs.
func (_u *MerchantUpdate) AddOrderIDs(ids ...uuid.UUID) *MerchantUpdate {
	_u.mutation.AddOrderIDs(ids...)
	return _u
}

// AddOrders adds the "orders" edges to the PurchaseOrder entity.
func (_u *MerchantUpdate) AddOrders(v ...*PurchaseOrder) *MerchantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderIDs(ids...)
}

// Mutation returns the MerchantMutation object of the builder.
func (_u *MerchantUpdate) Mutation() *MerchantMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the OrderDocument entity.
func (_u *MerchantUpdate) ClearDocuments() *MerchantUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to OrderDocument entities by IDs.
func (_u *MerchantUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *MerchantUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to OrderDocument entities.
func (_u *MerchantUpdate) RemoveDocuments(v ...*OrderDocument) *MerchantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearWorkflows clears all "workflows" edges to the WorkflowExecution entity.
func (_u *MerchantUpdate) ClearWorkflows() *MerchantUpdate {
	_u.mutation.ClearWorkflows()
	return _u
}

// RemoveWorkflowIDs removes the "workflows" edge to WorkflowExecution entities by IDs.
func (_u *MerchantUpdate) RemoveWorkflowIDs(ids ...uuid.UUID) *MerchantUpdate {
	_u.mutation.RemoveWorkflowIDs(ids...)
	return _u
}

// RemoveWorkflows removes "workflows" edges to WorkflowExecution entities.
func (_u *MerchantUpdate) RemoveWorkflows(v ...*WorkflowExecution) *MerchantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowIDs(ids...)
}

// ClearOrders clears all "orders" edges to the PurchaseOrder entity.
func (_u *MerchantUpdate) ClearOrders() *MerchantUpdate {
	_u.mutation.ClearOrders()
	return _u
}

// RemoveOrderIDs removes the "orders" edge to PurchaseOrder entities by IDs.
func (_u *MerchantUpdate) RemoveOrderIDs(ids ...uuid.UUID) *MerchantUpdate {
	_u.mutation.RemoveOrderIDs(ids...)
	return _u
}

// RemoveOrders removes "orders" edges to PurchaseOrder entities.
func (_u *MerchantUpdate) RemoveOrders(v ...*PurchaseOrder) *MerchantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MerchantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MerchantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MerchantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MerchantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MerchantUpdate) check() error {
	if v, ok := _u.mutation.ShopDomain(); ok {
		if err := merchant.ShopDomainValidator(v); err != nil {
			return &ValidationError{Name: "shop_domain", err: fmt.Errorf(`ent: validator failed for field "Merchant.shop_domain": %w`, err)}
		}
	}
	return nil
}

func (_u *MerchantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(merchant.Table, merchant.Columns, sqlgraph.NewFieldSpec(merchant.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ShopDomain(); ok {
		_spec.SetField(merchant.FieldShopDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(merchant.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(merchant.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(merchant.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   merchant.DocumentsTable,
			Columns: []string{merchant.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderdocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   merchant.DocumentsTable,
			Columns: []string{merchant.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   merchant.DocumentsTable,
			Columns: []string{merchant.DocumentsColumn},
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
	if _u.mutation.WorkflowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   merchant.WorkflowsTable,
			Columns: []string{merchant.WorkflowsColumn},
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
			Table:   merchant.WorkflowsTable,
			Columns: []string{merchant.WorkflowsColumn},
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
			Table:   merchant.WorkflowsTable,
			Columns: []string{merchant.WorkflowsColumn},
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
			Table:   merchant.OrdersTable,
			Columns: []string{merchant.OrdersColumn},
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
			Table:   merchant.OrdersTable,
			Columns: []string{merchant.OrdersColumn},
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
			Table:   merchant.OrdersTable,
			Columns: []string{merchant.OrdersColumn},
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
			err = &NotFoundError{merchant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MerchantUpdateOne is the builder for updating a single Merchant entity.
type MerchantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MerchantMutation
}

// SetShopDomain sets the "shop_domain" field.
func (_u *MerchantUpdateOne) SetShopDomain(v string) *MerchantUpdateOne {
	_u.mutation.SetShopDomain(v)
	return _u
}

// SetNillableShopDomain sets the "shop_domain" field if the given value is not nil.
func (_u *MerchantUpdateOne) SetNillableShopDomain(v *string) *MerchantUpdateOne {
	if v != nil {
		_u.SetShopDomain(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *MerchantUpdateOne) SetDisplayName(v string) *MerchantUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *MerchantUpdateOne) SetNillableDisplayName(v *string) *MerchantUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *MerchantUpdateOne) ClearDisplayName() *MerchantUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MerchantUpdateOne) SetCreatedAt(v time.Time) *MerchantUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MerchantUpdateOne) SetNillableCreatedAt(v *time.Time) *MerchantUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddDocumentIDs adds the "documents" edge to the OrderDocument entity by IDs.
func (_u *MerchantUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *MerchantUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the OrderDocument entity.
func (_u *MerchantUpdateOne) AddDocuments(v ...*OrderDocument) *MerchantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddWorkflowIDs adds the "workflows" edge to the WorkflowExecution entity by IDs.
func (_u *MerchantUpdateOne) AddWorkflowIDs(ids ...uuid.UUID) *MerchantUpdateOne {
	_u.mutation.AddWorkflowIDs(ids...)
	return _u
}

// AddWorkflows adds the "workflows" edges to the WorkflowExecution entity.
func (_u *MerchantUpdateOne) AddWorkflows(v ...*WorkflowExecution) *MerchantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowIDs(ids...)
}

// AddOrderIDs adds the "orders" edge to the PurchaseOrder entity by IDs.
func (_u *MerchantUpdateOne) AddOrderIDs(ids ...uuid.UUID) *MerchantUpdateOne {
	_u.mutation.AddOrderIDs(ids...)
	return _u
}

// AddOrders adds the "orders" edges to the PurchaseOrder entity.
func (_u *MerchantUpdateOne) AddOrders(v ...*PurchaseOrder) *MerchantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderIDs(ids...)
}

// Mutation returns the MerchantMutation object of the builder.
func (_u *MerchantUpdateOne) Mutation() *MerchantMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the OrderDocument entity.
func (_u *MerchantUpdateOne) ClearDocuments() *MerchantUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to OrderDocument entities by IDs.
func (_u *MerchantUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *MerchantUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to OrderDocument entities.
func (_u *MerchantUpdateOne) RemoveDocuments(v ...*OrderDocument) *MerchantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearWorkflows clears all "workflows" edges to the WorkflowExecution entity.
func (_u *MerchantUpdateOne) ClearWorkflows() *MerchantUpdateOne {
	_u.mutation.ClearWorkflows()
	return _u
}

// RemoveWorkflowIDs removes the "workflows" edge to WorkflowExecution entities by IDs.
func (_u *MerchantUpdateOne) RemoveWorkflowIDs(ids ...uuid.UUID) *MerchantUpdateOne {
	_u.mutation.RemoveWorkflowIDs(ids...)
	return _u
}

// RemoveWorkflows removes "workflows" edges to WorkflowExecution entities.
func (_u *MerchantUpdateOne) RemoveWorkflows(v ...*WorkflowExecution) *MerchantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowIDs(ids...)
}

// ClearOrders clears all "orders" edges to the PurchaseOrder entity.
func (_u *MerchantUpdateOne) ClearOrders() *MerchantUpdateOne {
	_u.mutation.ClearOrders()
	return _u
}

// RemoveOrderIDs removes the "orders" edge to PurchaseOrder entities by IDs.
func (_u *MerchantUpdateOne) RemoveOrderIDs(ids ...uuid.UUID) *MerchantUpdateOne {
	_u.mutation.RemoveOrderIDs(ids...)
	return _u
}

// RemoveOrders removes "orders" edges to PurchaseOrder entities.
func (_u *MerchantUpdateOne) RemoveOrders(v ...*PurchaseOrder) *MerchantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderIDs(ids...)
}

// Where appends a list predicates to the MerchantUpdate builder.
func (_u *MerchantUpdateOne) Where(ps ...predicate.Merchant) *MerchantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MerchantUpdateOne) Select(field string, fields ...string) *MerchantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Merchant entity.
func (_u *MerchantUpdateOne) Save(ctx context.Context) (*Merchant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MerchantUpdateOne) SaveX(ctx context.Context) *Merchant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MerchantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MerchantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MerchantUpdateOne) check() error {
	if v, ok := _u.mutation.ShopDomain(); ok {
		if err := merchant.ShopDomainValidator(v); err != nil {
			return &ValidationError{Name: "shop_domain", err: fmt.Errorf(`ent: validator failed for field "Merchant.shop_domain": %w`, err)}
		}
	}
	return nil
}

func (_u *MerchantUpdateOne) sqlSave(ctx context.Context) (_node *Merchant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(merchant.Table, merchant.Columns, sqlgraph.NewFieldSpec(merchant.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Merchant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, merchant.FieldID)
		for _, f := range fields {
			if !merchant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != merchant.FieldID {
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
	if value, ok := _u.mutation.ShopDomain(); ok {
		_spec.SetField(merchant.FieldShopDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(merchant.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(merchant.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(merchant.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   merchant.DocumentsTable,
			Columns: []string{merchant.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderdocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   merchant.DocumentsTable,
			Columns: []string{merchant.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   merchant.DocumentsTable,
			Columns: []string{merchant.DocumentsColumn},
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
	if _u.mutation.WorkflowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   merchant.WorkflowsTable,
			Columns: []string{merchant.WorkflowsColumn},
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
			Table:   merchant.WorkflowsTable,
			Columns: []string{merchant.WorkflowsColumn},
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
			Table:   merchant.WorkflowsTable,
			Columns: []string{merchant.WorkflowsColumn},
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
			Table:   merchant.OrdersTable,
			Columns: []string{merchant.OrdersColumn},
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
			Table:   merchant.OrdersTable,
			Columns: []string{merchant.OrdersColumn},
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
			Table:   merchant.OrdersTable,
			Columns: []string{merchant.OrdersColumn},
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
	_node = &Merchant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{merchant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
