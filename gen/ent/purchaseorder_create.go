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
	"github.com/joseph-ayodele/orderflow/gen/ent/merchant"
	"github.com/joseph-ayodele/orderflow/gen/ent/orderdocument"
	"github.com/joseph-ayodele/orderflow/gen/ent/purchaseorder"
)

// PurchaseOrderCreate is the builder for creating a PurchaseOrder entity.
type PurchaseOrderCreate struct {
	config
	mutation *PurchaseOrderMutation
	hooks    []Hook
}

// SetMerchantID sets the "merchant_id" field.
func (_c *PurchaseOrderCreate) SetMerchantID(v uuid.UUID) *PurchaseOrderCreate {
	_c.mutation.SetMerchantID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *PurchaseOrderCreate) SetDocumentID(v uuid.UUID) *PurchaseOrderCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetOrderNumber sets the "order_number" field.
func (_c *PurchaseOrderCreate) SetOrderNumber(v string) *PurchaseOrderCreate {
	_c.mutation.SetOrderNumber(v)
	return _c
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_c *PurchaseOrderCreate) SetNillableOrderNumber(v *string) *PurchaseOrderCreate {
	if v != nil {
		_c.SetOrderNumber(*v)
	}
	return _c
}

// SetSupplierName sets the "supplier_name" field.
func (_c *PurchaseOrderCreate) SetSupplierName(v string) *PurchaseOrderCreate {
	_c.mutation.SetSupplierName(v)
	return _c
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_c *PurchaseOrderCreate) SetNillableSupplierName(v *string) *PurchaseOrderCreate {
	if v != nil {
		_c.SetSupplierName(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *PurchaseOrderCreate) SetTotalAmount(v string) *PurchaseOrderCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *PurchaseOrderCreate) SetNillableTotalAmount(v *string) *PurchaseOrderCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *PurchaseOrderCreate) SetCurrencyCode(v string) *PurchaseOrderCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_c *PurchaseOrderCreate) SetNillableCurrencyCode(v *string) *PurchaseOrderCreate {
	if v != nil {
		_c.SetCurrencyCode(*v)
	}
	return _c
}

// SetLineItems sets the "line_items" field.
func (_c *PurchaseOrderCreate) SetLineItems(v json.RawMessage) *PurchaseOrderCreate {
	_c.mutation.SetLineItems(v)
	return _c
}

// SetExtractedFields sets the "extracted_fields" field.
func (_c *PurchaseOrderCreate) SetExtractedFields(v json.RawMessage) *PurchaseOrderCreate {
	_c.mutation.SetExtractedFields(v)
	return _c
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_c *PurchaseOrderCreate) SetExtractionConfidence(v float32) *PurchaseOrderCreate {
	_c.mutation.SetExtractionConfidence(v)
	return _c
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_c *PurchaseOrderCreate) SetNillableExtractionConfidence(v *float32) *PurchaseOrderCreate {
	if v != nil {
		_c.SetExtractionConfidence(*v)
	}
	return _c
}

// SetPlatformOrderID sets the "platform_order_id" field.
func (_c *PurchaseOrderCreate) SetPlatformOrderID(v string) *PurchaseOrderCreate {
	_c.mutation.SetPlatformOrderID(v)
	return _c
}

// SetNillablePlatformOrderID sets the "platform_order_id" field if the given value is not nil.
func (_c *PurchaseOrderCreate) SetNillablePlatformOrderID(v *string) *PurchaseOrderCreate {
	if v != nil {
		_c.SetPlatformOrderID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PurchaseOrderCreate) SetCreatedAt(v time.Time) *PurchaseOrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PurchaseOrderCreate) SetNillableCreatedAt(v *time.Time) *PurchaseOrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PurchaseOrderCreate) SetUpdatedAt(v time.Time) *PurchaseOrderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PurchaseOrderCreate) SetNillableUpdatedAt(v *time.Time) *PurchaseOrderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PurchaseOrderCreate) SetID(v uuid.UUID) *PurchaseOrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PurchaseOrderCreate) SetNillableID(v *uuid.UUID) *PurchaseOrderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_c *PurchaseOrderCreate) SetMerchant(v *Merchant) *PurchaseOrderCreate {
	return _c.SetMerchantID(v.ID)
}

// SetDocument sets the "document" edge to the OrderDocument entity.
func (_c *PurchaseOrderCreate) SetDocument(v *OrderDocument) *PurchaseOrderCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the PurchaseOrderMutation object of the builder.
func (_c *PurchaseOrderCreate) Mutation() *PurchaseOrderMutation {
	return _c.mutation
}

// Save creates the PurchaseOrder in the database.
func (_c *PurchaseOrderCreate) Save(ctx context.Context) (*PurchaseOrder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PurchaseOrderCreate) SaveX(ctx context.Context) *PurchaseOrder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PurchaseOrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PurchaseOrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PurchaseOrderCreate) defaults() {
	if _, ok := _c.mutation.ExtractionConfidence(); !ok {
		v := purchaseorder.DefaultExtractionConfidence
		_c.mutation.SetExtractionConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := purchaseorder.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := purchaseorder.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := purchaseorder.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PurchaseOrderCreate) check() error {
	if _, ok := _c.mutation.MerchantID(); !ok {
		return &ValidationError{Name: "merchant_id", err: errors.New(`ent: missing required field "PurchaseOrder.merchant_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "PurchaseOrder.document_id"`)}
	}
	if _, ok := _c.mutation.ExtractionConfidence(); !ok {
		return &ValidationError{Name: "extraction_confidence", err: errors.New(`ent: missing required field "PurchaseOrder.extraction_confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PurchaseOrder.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PurchaseOrder.updated_at"`)}
	}
	if len(_c.mutation.MerchantIDs()) == 0 {
		return &ValidationError{Name: "merchant", err: errors.New(`ent: missing required edge "PurchaseOrder.merchant"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "PurchaseOrder.document"`)}
	}
	return nil
}

func (_c *PurchaseOrderCreate) sqlSave(ctx context.Context) (*PurchaseOrder, error) {
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

func (_c *PurchaseOrderCreate) createSpec() (*PurchaseOrder, *sqlgraph.CreateSpec) {
	var (
		_node = &PurchaseOrder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(purchaseorder.Table, sqlgraph.NewFieldSpec(purchaseorder.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OrderNumber(); ok {
		_spec.SetField(purchaseorder.FieldOrderNumber, field.TypeString, value)
		_node.OrderNumber = value
	}
	if value, ok := _c.mutation.SupplierName(); ok {
		_spec.SetField(purchaseorder.FieldSupplierName, field.TypeString, value)
		_node.SupplierName = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(purchaseorder.FieldTotalAmount, field.TypeString, value)
		_node.TotalAmount = value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(purchaseorder.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.LineItems(); ok {
		_spec.SetField(purchaseorder.FieldLineItems, field.TypeJSON, value)
		_node.LineItems = value
	}
	if value, ok := _c.mutation.ExtractedFields(); ok {
		_spec.SetField(purchaseorder.FieldExtractedFields, field.TypeJSON, value)
		_node.ExtractedFields = value
	}
	if value, ok := _c.mutation.ExtractionConfidence(); ok {
		_spec.SetField(purchaseorder.FieldExtractionConfidence, field.TypeFloat32, value)
		_node.ExtractionConfidence = value
	}
	if value, ok := _c.mutation.PlatformOrderID(); ok {
		_spec.SetField(purchaseorder.FieldPlatformOrderID, field.TypeString, value)
		_node.PlatformOrderID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(purchaseorder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(purchaseorder.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MerchantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   purchaseorder.MerchantTable,
			Columns: []string{purchaseorder.MerchantColumn},
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
			Table:   purchaseorder.DocumentTable,
			Columns: []string{purchaseorder.DocumentColumn},
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
	return _node, _spec
}

// PurchaseOrderCreateBulk is the builder for creating many PurchaseOrder entities in bulk.
type PurchaseOrderCreateBulk struct {
	config
	err      error
	builders []*PurchaseOrderCreate
}

// Save creates the PurchaseOrder entities in the database.
func (_c *PurchaseOrderCreateBulk) Save(ctx context.Context) ([]*PurchaseOrder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PurchaseOrder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PurchaseOrderMutation)
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
func (_c *PurchaseOrderCreateBulk) SaveX(ctx context.Context) []*PurchaseOrder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PurchaseOrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PurchaseOrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
