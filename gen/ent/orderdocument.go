// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent/merchant"
	"github.com/joseph-ayodele/orderflow/gen/ent/orderdocument"
)

// OrderDocument is the model entity for the OrderDocument schema.
type OrderDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// MerchantID holds the value of the "merchant_id" field.
	MerchantID uuid.UUID `json:"merchant_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType string `json:"content_type,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// StorageKey holds the value of the "storage_key" field.
	StorageKey string `json:"storage_key,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrderDocumentQuery when eager-loading is set.
	Edges        OrderDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrderDocumentEdges holds the relations/edges for other nodes in the graph.
type OrderDocumentEdges struct {
	// Merchant holds the value of the merchant edge.
	Merchant *Merchant `json:"merchant,omitempty"`
	// Workflows holds the value of the workflows edge.
	Workflows []*WorkflowExecution `json:"workflows,omitempty"`
	// Orders holds the value of the orders edge.
	Orders []*PurchaseOrder `json:"orders,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// MerchantOrErr returns the Merchant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OrderDocumentEdges) MerchantOrErr() (*Merchant, error) {
	if e.Merchant != nil {
		return e.Merchant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: merchant.Label}
	}
	return nil, &NotLoadedError{edge: "merchant"}
}

// WorkflowsOrErr returns the Workflows value or an error if the edge
// was not loaded in eager-loading.
func (e OrderDocumentEdges) WorkflowsOrErr() ([]*WorkflowExecution, error) {
	if e.loadedTypes[1] {
		return e.Workflows, nil
	}
	return nil, &NotLoadedError{edge: "workflows"}
}

// OrdersOrErr returns the Orders value or an error if the edge
// was not loaded in eager-loading.
func (e OrderDocumentEdges) OrdersOrErr() ([]*PurchaseOrder, error) {
	if e.loadedTypes[2] {
		return e.Orders, nil
	}
	return nil, &NotLoadedError{edge: "orders"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrderDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case orderdocument.FieldContentHash:
			values[i] = new([]byte)
		case orderdocument.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case orderdocument.FieldFilename, orderdocument.FieldContentType, orderdocument.FieldStorageKey:
			values[i] = new(sql.NullString)
		case orderdocument.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case orderdocument.FieldID, orderdocument.FieldMerchantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrderDocument fields.
func (_m *OrderDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case orderdocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case orderdocument.FieldMerchantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field merchant_id", values[i])
			} else if value != nil {
				_m.MerchantID = *value
			}
		case orderdocument.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case orderdocument.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				_m.ContentType = value.String
			}
		case orderdocument.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case orderdocument.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case orderdocument.FieldStorageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_key", values[i])
			} else if value.Valid {
				_m.StorageKey = value.String
			}
		case orderdocument.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OrderDocument.
// This includes values selected through modifiers, order, etc.
func (_m *OrderDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMerchant queries the "merchant" edge of the OrderDocument entity.
func (_m *OrderDocument) QueryMerchant() *MerchantQuery {
	return NewOrderDocumentClient(_m.config).QueryMerchant(_m)
}

// QueryWorkflows queries the "workflows" edge of the OrderDocument entity.
func (_m *OrderDocument) QueryWorkflows() *WorkflowExecutionQuery {
	return NewOrderDocumentClient(_m.config).QueryWorkflows(_m)
}

// QueryOrders queries the "orders" edge of the OrderDocument entity.
func (_m *OrderDocument) QueryOrders() *PurchaseOrderQuery {
	return NewOrderDocumentClient(_m.config).QueryOrders(_m)
}

// Update returns a builder for updating this OrderDocument.
// Note that you need to call OrderDocument.Unwrap() before calling this method if this OrderDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OrderDocument) Update() *OrderDocumentUpdateOne {
	return NewOrderDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OrderDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OrderDocument) Unwrap() *OrderDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OrderDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OrderDocument) String() string {
	var builder strings.Builder
	builder.WriteString("OrderDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("merchant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MerchantID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(_m.ContentType)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("storage_key=")
	builder.WriteString(_m.StorageKey)
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OrderDocuments is a parsable slice of OrderDocument.
type OrderDocuments []*OrderDocument
