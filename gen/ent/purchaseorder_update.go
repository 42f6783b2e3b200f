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
	"github.com/joseph-ayodele/orderflow/gen/ent/merchant"
	"github.com/joseph-ayodele/orderflow/gen/ent/orderdocument"
	"github.com/joseph-ayodele/orderflow/gen/ent/predicate"
	"github.com/joseph-ayodele/orderflow/gen/ent/purchaseorder"
)

// PurchaseOrderUpdate is the builder for updating PurchaseOrder entities.
type PurchaseOrderUpdate struct {
	config
	hooks    []Hook
	mutation *PurchaseOrderMutation
}

// Where appends a list predicates to the PurchaseOrderUpdate builder.
func (_u *PurchaseOrderUpdate) Where(ps ...predicate.PurchaseOrder) *PurchaseOrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMerchantID sets the "merchant_id" field.
func (_u *PurchaseOrderUpdate) SetMerchantID(v uuid.UUID) *PurchaseOrderUpdate {
	_u.mutation.SetMerchantID(v)
	return _u
}

// SetNillableMerchantID sets the "merchant_id" field if the given value is not nil.
func (_u *PurchaseOrderUpdate) SetNillableMerchantID(v *uuid.UUID) *PurchaseOrderUpdate {
	if v != nil {
		_u.SetMerchantID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *PurchaseOrderUpdate) SetDocumentID(v uuid.UUID) *PurchaseOrderUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *PurchaseOrderUpdate) SetNillableDocumentID(v *uuid.UUID) *PurchaseOrderUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetOrderNumber sets the "order_number" field.
func (_u *PurchaseOrderUpdate) SetOrderNumber(v string) *PurchaseOrderUpdate {
	_u.mutation.SetOrderNumber(v)
	return _u
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_u *PurchaseOrderUpdate) SetNillableOrderNumber(v *string) *PurchaseOrderUpdate {
	if v != nil {
		_u.SetOrderNumber(*v)
	}
	return _u
}

// ClearOrderNumber clears the value of the "order_number" field.
func (_u *PurchaseOrderUpdate) ClearOrderNumber() *PurchaseOrderUpdate {
	_u.mutation.ClearOrderNumber()
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *PurchaseOrderUpdate) SetSupplierName(v string) *PurchaseOrderUpdate {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *PurchaseOrderUpdate) SetNillableSupplierName(v *string) *PurchaseOrderUpdate {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (_u *PurchaseOrderUpdate) ClearSupplierName() *PurchaseOrderUpdate {
	_u.mutation.ClearSupplierName()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *PurchaseOrderUpdate) SetTotalAmount(v string) *PurchaseOrderUpdate {
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *PurchaseOrderUpdate) SetNillableTotalAmount(v *string) *PurchaseOrderUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *PurchaseOrderUpdate) ClearTotalAmount() *PurchaseOrderUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *PurchaseOrderUpdate) SetCurrencyCode(v string) *PurchaseOrderUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *PurchaseOrderUpdate) SetNillableCurrencyCode(v *string) *PurchaseOrderUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *PurchaseOrderUpdate) ClearCurrencyCode() *PurchaseOrderUpdate {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *PurchaseOrderUpdate) SetLineItems(v json.RawMessage) *PurchaseOrderUpdate {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *PurchaseOrderUpdate) AppendLineItems(v json.RawMessage) *PurchaseOrderUpdate {
	_u.mutation.AppendLineItems(v)
	return _u
}

// ClearLineItems clears the value of the "line_items" field.
func (_u *PurchaseOrderUpdate) ClearLineItems() *PurchaseOrderUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *PurchaseOrderUpdate) SetExtractedFields(v json.RawMessage) *PurchaseOrderUpdate {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// AppendExtractedFields appends value to the "extracted_fields" field.
func (_u *PurchaseOrderUpdate) AppendExtractedFields(v json.RawMessage) *PurchaseOrderUpdate {
	_u.mutation.AppendExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *PurchaseOrderUpdate) ClearExtractedFields() *PurchaseOrderUpdate {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *PurchaseOrderUpdate) SetExtractionConfidence(v float32) *PurchaseOrderUpdate {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *PurchaseOrderUpdate) SetNillableExtractionConfidence(v *float32) *PurchaseOrderUpdate {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *PurchaseOrderUpdate) AddExtractionConfidence(v float32) *PurchaseOrderUpdate {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// SetPlatformOrderID sets the "platform_order_id" field.
func (_u *PurchaseOrderUpdate) SetPlatformOrderID(v string) *PurchaseOrderUpdate {
	_u.mutation.SetPlatformOrderID(v)
	return _u
}

// SetNillablePlatformOrderID sets the "platform_order_id" field if the given value is not nil.
func (_u *PurchaseOrderUpdate) SetNillablePlatformOrderID(v *string) *PurchaseOrderUpdate {
	if v != nil {
		_u.SetPlatformOrderID(*v)
	}
	return _u
}

// ClearPlatformOrderID clears the value of the "platform_order_id" field.
func (_u *PurchaseOrderUpdate) ClearPlatformOrderID() *PurchaseOrderUpdate {
	_u.mutation.ClearPlatformOrderID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PurchaseOrderUpdate) SetCreatedAt(v time.Time) *PurchaseOrderUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PurchaseOrderUpdate) SetNillableCreatedAt(v *time.Time) *PurchaseOrderUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PurchaseOrderUpdate) SetUpdatedAt(v time.Time) *PurchaseOrderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_u *PurchaseOrderUpdate) SetMerchant(v *Merchant) *PurchaseOrderUpdate {
	return _u.SetMerchantID(v.ID)
}

// SetDocument sets the "document" edge to the OrderDocument entity.
func (_u *PurchaseOrderUpdate) SetDocument(v *OrderDocument) *PurchaseOrderUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the PurchaseOrderMutation object of the builder.
func (_u *PurchaseOrderUpdate) Mutation() *PurchaseOrderMutation {
	return _u.mutation
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (_u *PurchaseOrderUpdate) ClearMerchant() *PurchaseOrderUpdate {
	_u.mutation.ClearMerchant()
	return _u
}

// ClearDocument clears the "document" edge to the OrderDocument entity.
func (_u *PurchaseOrderUpdate) ClearDocument() *PurchaseOrderUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PurchaseOrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PurchaseOrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PurchaseOrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PurchaseOrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PurchaseOrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := purchaseorder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PurchaseOrderUpdate) check() error {
	if _u.mutation.MerchantCleared() && len(_u.mutation.MerchantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PurchaseOrder.merchant"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PurchaseOrder.document"`)
	}
	return nil
}

func (_u *PurchaseOrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(purchaseorder.Table, purchaseorder.Columns, sqlgraph.NewFieldSpec(purchaseorder.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrderNumber(); ok {
		_spec.SetField(purchaseorder.FieldOrderNumber, field.TypeString, value)
	}
	if _u.mutation.OrderNumberCleared() {
		_spec.ClearField(purchaseorder.FieldOrderNumber, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(purchaseorder.FieldSupplierName, field.TypeString, value)
	}
	if _u.mutation.SupplierNameCleared() {
		_spec.ClearField(purchaseorder.FieldSupplierName, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(purchaseorder.FieldTotalAmount, field.TypeString, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(purchaseorder.FieldTotalAmount, field.TypeString)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(purchaseorder.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(purchaseorder.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(purchaseorder.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, purchaseorder.FieldLineItems, value)
		})
	}
	if _u.mutation.LineItemsCleared() {
		_spec.ClearField(purchaseorder.FieldLineItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(purchaseorder.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, purchaseorder.FieldExtractedFields, value)
		})
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(purchaseorder.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(purchaseorder.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(purchaseorder.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.PlatformOrderID(); ok {
		_spec.SetField(purchaseorder.FieldPlatformOrderID, field.TypeString, value)
	}
	if _u.mutation.PlatformOrderIDCleared() {
		_spec.ClearField(purchaseorder.FieldPlatformOrderID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(purchaseorder.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(purchaseorder.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MerchantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerchantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{purchaseorder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PurchaseOrderUpdateOne is the builder for updating a single PurchaseOrder entity.
type PurchaseOrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PurchaseOrderMutation
}

// SetMerchantID sets the "merchant_id" field.
func (_u *PurchaseOrderUpdateOne) SetMerchantID(v uuid.UUID) *PurchaseOrderUpdateOne {
	_u.mutation.SetMerchantID(v)
	return _u
}

// SetNillableMerchantID sets the "merchant_id" field if the given value is not nil.
func (_u *PurchaseOrderUpdateOne) SetNillableMerchantID(v *uuid.UUID) *PurchaseOrderUpdateOne {
	if v != nil {
		_u.SetMerchantID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *PurchaseOrderUpdateOne) SetDocumentID(v uuid.UUID) *PurchaseOrderUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *PurchaseOrderUpdateOne) SetNillableDocumentID(v *uuid.UUID) *PurchaseOrderUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetOrderNumber sets the "order_number" field.
func (_u *PurchaseOrderUpdateOne) SetOrderNumber(v string) *PurchaseOrderUpdateOne {
	_u.mutation.SetOrderNumber(v)
	return _u
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_u *PurchaseOrderUpdateOne) SetNillableOrderNumber(v *string) *PurchaseOrderUpdateOne {
	if v != nil {
		_u.SetOrderNumber(*v)
	}
	return _u
}

// ClearOrderNumber clears the value of the "order_number" field.
func (_u *PurchaseOrderUpdateOne) ClearOrderNumber() *PurchaseOrderUpdateOne {
	_u.mutation.ClearOrderNumber()
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *PurchaseOrderUpdateOne) SetSupplierName(v string) *PurchaseOrderUpdateOne {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *PurchaseOrderUpdateOne) SetNillableSupplierName(v *string) *PurchaseOrderUpdateOne {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (_u *PurchaseOrderUpdateOne) ClearSupplierName() *PurchaseOrderUpdateOne {
	_u.mutation.ClearSupplierName()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *PurchaseOrderUpdateOne) SetTotalAmount(v string) *PurchaseOrderUpdateOne {
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *PurchaseOrderUpdateOne) SetNillableTotalAmount(v *string) *PurchaseOrderUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *PurchaseOrderUpdateOne) ClearTotalAmount() *PurchaseOrderUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *PurchaseOrderUpdateOne) SetCurrencyCode(v string) *PurchaseOrderUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *PurchaseOrderUpdateOne) SetNillableCurrencyCode(v *string) *PurchaseOrderUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *PurchaseOrderUpdateOne) ClearCurrencyCode() *PurchaseOrderUpdateOne {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *PurchaseOrderUpdateOne) SetLineItems(v json.RawMessage) *PurchaseOrderUpdateOne {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *PurchaseOrderUpdateOne) AppendLineItems(v json.RawMessage) *PurchaseOrderUpdateOne {
	_u.mutation.AppendLineItems(v)
	return _u
}

// ClearLineItems clears the value of the "line_items" field.
func (_u *PurchaseOrderUpdateOne) ClearLineItems() *PurchaseOrderUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *PurchaseOrderUpdateOne) SetExtractedFields(v json.RawMessage) *PurchaseOrderUpdateOne {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// AppendExtractedFields appends value to the "extracted_fields" field.
func (_u *PurchaseOrderUpdateOne) AppendExtractedFields(v json.RawMessage) *PurchaseOrderUpdateOne {
	_u.mutation.AppendExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *PurchaseOrderUpdateOne) ClearExtractedFields() *PurchaseOrderUpdateOne {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *PurchaseOrderUpdateOne) SetExtractionConfidence(v float32) *PurchaseOrderUpdateOne {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *PurchaseOrderUpdateOne) SetNillableExtractionConfidence(v *float32) *PurchaseOrderUpdateOne {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *PurchaseOrderUpdateOne) AddExtractionConfidence(v float32) *PurchaseOrderUpdateOne {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// SetPlatformOrderID sets the "platform_order_id" field.
func (_u *PurchaseOrderUpdateOne) SetPlatformOrderID(v string) *PurchaseOrderUpdateOne {
	_u.mutation.SetPlatformOrderID(v)
	return _u
}

// SetNillablePlatformOrderID sets the "platform_order_id" field if the given value is not nil.
func (_u *PurchaseOrderUpdateOne) SetNillablePlatformOrderID(v *string) *PurchaseOrderUpdateOne {
	if v != nil {
		_u.SetPlatformOrderID(*v)
	}
	return _u
}

// ClearPlatformOrderID clears the value of the "platform_order_id" field.
func (_u *PurchaseOrderUpdateOne) ClearPlatformOrderID() *PurchaseOrderUpdateOne {
	_u.mutation.ClearPlatformOrderID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PurchaseOrderUpdateOne) SetCreatedAt(v time.Time) *PurchaseOrderUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PurchaseOrderUpdateOne) SetNillableCreatedAt(v *time.Time) *PurchaseOrderUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PurchaseOrderUpdateOne) SetUpdatedAt(v time.Time) *PurchaseOrderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_u *PurchaseOrderUpdateOne) SetMerchant(v *Merchant) *PurchaseOrderUpdateOne {
	return _u.SetMerchantID(v.ID)
}

// SetDocument sets the "document" edge to the OrderDocument entity.
func (_u *PurchaseOrderUpdateOne) SetDocument(v *OrderDocument) *PurchaseOrderUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the PurchaseOrderMutation object of the builder.
func (_u *PurchaseOrderUpdateOne) Mutation() *PurchaseOrderMutation {
	return _u.mutation
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (_u *PurchaseOrderUpdateOne) ClearMerchant() *PurchaseOrderUpdateOne {
	_u.mutation.ClearMerchant()
	return _u
}

// ClearDocument clears the "document" edge to the OrderDocument entity.
func (_u *PurchaseOrderUpdateOne) ClearDocument() *PurchaseOrderUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the PurchaseOrderUpdate builder.
func (_u *PurchaseOrderUpdateOne) Where(ps ...predicate.PurchaseOrder) *PurchaseOrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PurchaseOrderUpdateOne) Select(field string, fields ...string) *PurchaseOrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PurchaseOrder entity.
func (_u *PurchaseOrderUpdateOne) Save(ctx context.Context) (*PurchaseOrder, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PurchaseOrderUpdateOne) SaveX(ctx context.Context) *PurchaseOrder {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PurchaseOrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PurchaseOrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PurchaseOrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := purchaseorder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PurchaseOrderUpdateOne) check() error {
	if _u.mutation.MerchantCleared() && len(_u.mutation.MerchantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PurchaseOrder.merchant"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PurchaseOrder.document"`)
	}
	return nil
}

func (_u *PurchaseOrderUpdateOne) sqlSave(ctx context.Context) (_node *PurchaseOrder, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(purchaseorder.Table, purchaseorder.Columns, sqlgraph.NewFieldSpec(purchaseorder.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PurchaseOrder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, purchaseorder.FieldID)
		for _, f := range fields {
			if !purchaseorder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != purchaseorder.FieldID {
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
	if value, ok := _u.mutation.OrderNumber(); ok {
		_spec.SetField(purchaseorder.FieldOrderNumber, field.TypeString, value)
	}
	if _u.mutation.OrderNumberCleared() {
		_spec.ClearField(purchaseorder.FieldOrderNumber, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(purchaseorder.FieldSupplierName, field.TypeString, value)
	}
	if _u.mutation.SupplierNameCleared() {
		_spec.ClearField(purchaseorder.FieldSupplierName, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(purchaseorder.FieldTotalAmount, field.TypeString, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(purchaseorder.FieldTotalAmount, field.TypeString)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(purchaseorder.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(purchaseorder.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(purchaseorder.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, purchaseorder.FieldLineItems, value)
		})
	}
	if _u.mutation.LineItemsCleared() {
		_spec.ClearField(purchaseorder.FieldLineItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(purchaseorder.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, purchaseorder.FieldExtractedFields, value)
		})
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(purchaseorder.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(purchaseorder.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(purchaseorder.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.PlatformOrderID(); ok {
		_spec.SetField(purchaseorder.FieldPlatformOrderID, field.TypeString, value)
	}
	if _u.mutation.PlatformOrderIDCleared() {
		_spec.ClearField(purchaseorder.FieldPlatformOrderID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(purchaseorder.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(purchaseorder.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MerchantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerchantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PurchaseOrder{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{purchaseorder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
