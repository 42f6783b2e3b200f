// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent/merchant"
	"github.com/joseph-ayodele/orderflow/gen/ent/orderdocument"
	"github.com/joseph-ayodele/orderflow/gen/ent/purchaseorder"
)

// PurchaseOrder is the model entity for the PurchaseOrder schema.
type PurchaseOrder struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// MerchantID holds the value of the "merchant_id" field.
	MerchantID uuid.UUID `json:"merchant_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// OrderNumber holds the value of the "order_number" field.
	OrderNumber string `json:"order_number,omitempty"`
	// SupplierName holds the value of the "supplier_name" field.
	SupplierName string `json:"supplier_name,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount string `json:"total_amount,omitempty"`
	// CurrencyCode holds the value of the "currency_code" field.
	CurrencyCode string `json:"currency_code,omitempty"`
	// LineItems holds the value of the "line_items" field.
	LineItems json.RawMessage `json:"line_items,omitempty"`
	// ExtractedFields holds the value of the "extracted_fields" field.
	ExtractedFields json.RawMessage `json:"extracted_fields,omitempty"`
	// ExtractionConfidence holds the value of the "extraction_confidence" field.
	ExtractionConfidence float32 `json:"extraction_confidence,omitempty"`
	// PlatformOrderID holds the value of the "platform_order_id" field.
	PlatformOrderID *string `json:"platform_order_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PurchaseOrderQuery when eager-loading is set.
	Edges        PurchaseOrderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PurchaseOrderEdges holds the relations/edges for other nodes in the graph.
type PurchaseOrderEdges struct {
	// Merchant holds the value of the merchant edge.
	Merchant *Merchant `json:"merchant,omitempty"`
	// Document holds the value of the document edge.
	Document *OrderDocument `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MerchantOrErr returns the Merchant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PurchaseOrderEdges) MerchantOrErr() (*Merchant, error) {
	if e.Merchant != nil {
		return e.Merchant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: merchant.Label}
	}
	return nil, &NotLoadedError{edge: "merchant"}
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PurchaseOrderEdges) DocumentOrErr() (*OrderDocument, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: orderdocument.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PurchaseOrder) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case purchaseorder.FieldLineItems, purchaseorder.FieldExtractedFields:
			values[i] = new([]byte)
		case purchaseorder.FieldExtractionConfidence:
			values[i] = new(sql.NullFloat64)
		case purchaseorder.FieldOrderNumber, purchaseorder.FieldSupplierName, purchaseorder.FieldTotalAmount, purchaseorder.FieldCurrencyCode, purchaseorder.FieldPlatformOrderID:
			values[i] = new(sql.NullString)
		case purchaseorder.FieldCreatedAt, purchaseorder.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case purchaseorder.FieldID, purchaseorder.FieldMerchantID, purchaseorder.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PurchaseOrder fields.
func (_m *PurchaseOrder) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case purchaseorder.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case purchaseorder.FieldMerchantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field merchant_id", values[i])
			} else if value != nil {
				_m.MerchantID = *value
			}
		case purchaseorder.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case purchaseorder.FieldOrderNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_number", values[i])
			} else if value.Valid {
				_m.OrderNumber = value.String
			}
		case purchaseorder.FieldSupplierName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_name", values[i])
			} else if value.Valid {
				_m.SupplierName = value.String
			}
		case purchaseorder.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = value.String
			}
		case purchaseorder.FieldCurrencyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency_code", values[i])
			} else if value.Valid {
				_m.CurrencyCode = value.String
			}
		case purchaseorder.FieldLineItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field line_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LineItems); err != nil {
					return fmt.Errorf("unmarshal field line_items: %w", err)
				}
			}
		case purchaseorder.FieldExtractedFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedFields); err != nil {
					return fmt.Errorf("unmarshal field extracted_fields: %w", err)
				}
			}
		case purchaseorder.FieldExtractionConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_confidence", values[i])
			} else if value.Valid {
				_m.ExtractionConfidence = float32(value.Float64)
			}
		case purchaseorder.FieldPlatformOrderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform_order_id", values[i])
			} else if value.Valid {
				_m.PlatformOrderID = new(string)
				*_m.PlatformOrderID = value.String
			}
		case purchaseorder.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case purchaseorder.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PurchaseOrder.
// This includes values selected through modifiers, order, etc.
func (_m *PurchaseOrder) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMerchant queries the "merchant" edge of the PurchaseOrder entity.
func (_m *PurchaseOrder) QueryMerchant() *MerchantQuery {
	return NewPurchaseOrderClient(_m.config).QueryMerchant(_m)
}

// QueryDocument queries the "document" edge of the PurchaseOrder entity.
func (_m *PurchaseOrder) QueryDocument() *OrderDocumentQuery {
	return NewPurchaseOrderClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this PurchaseOrder.
// Note that you need to call PurchaseOrder.Unwrap() before calling this method if this PurchaseOrder
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PurchaseOrder) Update() *PurchaseOrderUpdateOne {
	return NewPurchaseOrderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PurchaseOrder entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PurchaseOrder) Unwrap() *PurchaseOrder {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PurchaseOrder is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PurchaseOrder) String() string {
	var builder strings.Builder
	builder.WriteString("PurchaseOrder(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("merchant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MerchantID))
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("order_number=")
	builder.WriteString(_m.OrderNumber)
	builder.WriteString(", ")
	builder.WriteString("supplier_name=")
	builder.WriteString(_m.SupplierName)
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(_m.TotalAmount)
	builder.WriteString(", ")
	builder.WriteString("currency_code=")
	builder.WriteString(_m.CurrencyCode)
	builder.WriteString(", ")
	builder.WriteString("line_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.LineItems))
	builder.WriteString(", ")
	builder.WriteString("extracted_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedFields))
	builder.WriteString(", ")
	builder.WriteString("extraction_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionConfidence))
	builder.WriteString(", ")
	if v := _m.PlatformOrderID; v != nil {
		builder.WriteString("platform_order_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PurchaseOrders is a parsable slice of PurchaseOrder.
type PurchaseOrders []*PurchaseOrder
