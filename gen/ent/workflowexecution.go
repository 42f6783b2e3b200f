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
	"github.com/joseph-ayodele/orderflow/gen/ent/workflowexecution"
)

// WorkflowExecution is the model entity for the WorkflowExecution schema.
type WorkflowExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// MerchantID holds the value of the "merchant_id" field.
	MerchantID uuid.UUID `json:"merchant_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CurrentStage holds the value of the "current_stage" field.
	CurrentStage *string `json:"current_stage,omitempty"`
	// StagesTotal holds the value of the "stages_total" field.
	StagesTotal int `json:"stages_total,omitempty"`
	// StagesCompleted holds the value of the "stages_completed" field.
	StagesCompleted int `json:"stages_completed,omitempty"`
	// ProgressPercent holds the value of the "progress_percent" field.
	ProgressPercent int `json:"progress_percent,omitempty"`
	// InputData holds the value of the "input_data" field.
	InputData json.RawMessage `json:"input_data,omitempty"`
	// StatusData holds the value of the "status_data" field.
	StatusData json.RawMessage `json:"status_data,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// FailedStage holds the value of the "failed_stage" field.
	FailedStage *string `json:"failed_stage,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// StageStartedAt holds the value of the "stage_started_at" field.
	StageStartedAt *time.Time `json:"stage_started_at,omitempty"`
	// StageCompletedAt holds the value of the "stage_completed_at" field.
	StageCompletedAt *time.Time `json:"stage_completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowExecutionQuery when eager-loading is set.
	Edges        WorkflowExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowExecutionEdges holds the relations/edges for other nodes in the graph.
type WorkflowExecutionEdges struct {
	// Merchant holds the value of the merchant edge.
	Merchant *Merchant `json:"merchant,omitempty"`
	// Document holds the value of the document edge.
	Document *OrderDocument `json:"document,omitempty"`
	// DeadLetters holds the value of the dead_letters edge.
	DeadLetters []*DeadLetterEntry `json:"dead_letters,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// MerchantOrErr returns the Merchant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowExecutionEdges) MerchantOrErr() (*Merchant, error) {
	if e.Merchant != nil {
		return e.Merchant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: merchant.Label}
	}
	return nil, &NotLoadedError{edge: "merchant"}
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowExecutionEdges) DocumentOrErr() (*OrderDocument, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: orderdocument.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// DeadLettersOrErr returns the DeadLetters value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowExecutionEdges) DeadLettersOrErr() ([]*DeadLetterEntry, error) {
	if e.loadedTypes[2] {
		return e.DeadLetters, nil
	}
	return nil, &NotLoadedError{edge: "dead_letters"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowexecution.FieldInputData, workflowexecution.FieldStatusData:
			values[i] = new([]byte)
		case workflowexecution.FieldStagesTotal, workflowexecution.FieldStagesCompleted, workflowexecution.FieldProgressPercent:
			values[i] = new(sql.NullInt64)
		case workflowexecution.FieldStatus, workflowexecution.FieldCurrentStage, workflowexecution.FieldErrorMessage, workflowexecution.FieldFailedStage:
			values[i] = new(sql.NullString)
		case workflowexecution.FieldCreatedAt, workflowexecution.FieldUpdatedAt, workflowexecution.FieldStageStartedAt, workflowexecution.FieldStageCompletedAt:
			values[i] = new(sql.NullTime)
		case workflowexecution.FieldID, workflowexecution.FieldMerchantID, workflowexecution.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowExecution fields.
func (_m *WorkflowExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowexecution.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case workflowexecution.FieldMerchantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field merchant_id", values[i])
			} else if value != nil {
				_m.MerchantID = *value
			}
		case workflowexecution.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case workflowexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case workflowexecution.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = new(string)
				*_m.CurrentStage = value.String
			}
		case workflowexecution.FieldStagesTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stages_total", values[i])
			} else if value.Valid {
				_m.StagesTotal = int(value.Int64)
			}
		case workflowexecution.FieldStagesCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stages_completed", values[i])
			} else if value.Valid {
				_m.StagesCompleted = int(value.Int64)
			}
		case workflowexecution.FieldProgressPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_percent", values[i])
			} else if value.Valid {
				_m.ProgressPercent = int(value.Int64)
			}
		case workflowexecution.FieldInputData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputData); err != nil {
					return fmt.Errorf("unmarshal field input_data: %w", err)
				}
			}
		case workflowexecution.FieldStatusData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field status_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StatusData); err != nil {
					return fmt.Errorf("unmarshal field status_data: %w", err)
				}
			}
		case workflowexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case workflowexecution.FieldFailedStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failed_stage", values[i])
			} else if value.Valid {
				_m.FailedStage = new(string)
				*_m.FailedStage = value.String
			}
		case workflowexecution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflowexecution.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case workflowexecution.FieldStageStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field stage_started_at", values[i])
			} else if value.Valid {
				_m.StageStartedAt = new(time.Time)
				*_m.StageStartedAt = value.Time
			}
		case workflowexecution.FieldStageCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field stage_completed_at", values[i])
			} else if value.Valid {
				_m.StageCompletedAt = new(time.Time)
				*_m.StageCompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowExecution.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMerchant queries the "merchant" edge of the WorkflowExecution entity.
func (_m *WorkflowExecution) QueryMerchant() *MerchantQuery {
	return NewWorkflowExecutionClient(_m.config).QueryMerchant(_m)
}

// QueryDocument queries the "document" edge of the WorkflowExecution entity.
func (_m *WorkflowExecution) QueryDocument() *OrderDocumentQuery {
	return NewWorkflowExecutionClient(_m.config).QueryDocument(_m)
}

// QueryDeadLetters queries the "dead_letters" edge of the WorkflowExecution entity.
func (_m *WorkflowExecution) QueryDeadLetters() *DeadLetterEntryQuery {
	return NewWorkflowExecutionClient(_m.config).QueryDeadLetters(_m)
}

// Update returns a builder for updating this WorkflowExecution.
// Note that you need to call WorkflowExecution.Unwrap() before calling this method if this WorkflowExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowExecution) Update() *WorkflowExecutionUpdateOne {
	return NewWorkflowExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowExecution) Unwrap() *WorkflowExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowExecution) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("merchant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MerchantID))
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.CurrentStage; v != nil {
		builder.WriteString("current_stage=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("stages_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.StagesTotal))
	builder.WriteString(", ")
	builder.WriteString("stages_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.StagesCompleted))
	builder.WriteString(", ")
	builder.WriteString("progress_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressPercent))
	builder.WriteString(", ")
	builder.WriteString("input_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputData))
	builder.WriteString(", ")
	builder.WriteString("status_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatusData))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FailedStage; v != nil {
		builder.WriteString("failed_stage=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StageStartedAt; v != nil {
		builder.WriteString("stage_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StageCompletedAt; v != nil {
		builder.WriteString("stage_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowExecutions is a parsable slice of WorkflowExecution.
type WorkflowExecutions []*WorkflowExecution
