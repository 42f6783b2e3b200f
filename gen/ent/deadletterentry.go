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
	"github.com/joseph-ayodele/orderflow/gen/ent/deadletterentry"
	"github.com/joseph-ayodele/orderflow/gen/ent/workflowexecution"
)

// DeadLetterEntry is the model entity for the DeadLetterEntry schema.
type DeadLetterEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID uuid.UUID `json:"workflow_id,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage string `json:"stage,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload json.RawMessage `json:"payload,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason string `json:"failure_reason,omitempty"`
	// FailureStack holds the value of the "failure_stack" field.
	FailureStack *string `json:"failure_stack,omitempty"`
	// AttemptsMade holds the value of the "attempts_made" field.
	AttemptsMade int `json:"attempts_made,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority string `json:"priority,omitempty"`
	// Resolution holds the value of the "resolution" field.
	Resolution string `json:"resolution,omitempty"`
	// ReviewNotes holds the value of the "review_notes" field.
	ReviewNotes *string `json:"review_notes,omitempty"`
	// ReviewedBy holds the value of the "reviewed_by" field.
	ReviewedBy *string `json:"reviewed_by,omitempty"`
	// ReprocessedAsJobID holds the value of the "reprocessed_as_job_id" field.
	ReprocessedAsJobID *string `json:"reprocessed_as_job_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DeadLetterEntryQuery when eager-loading is set.
	Edges        DeadLetterEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DeadLetterEntryEdges holds the relations/edges for other nodes in the graph.
type DeadLetterEntryEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *WorkflowExecution `json:"workflow,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeadLetterEntryEdges) WorkflowOrErr() (*WorkflowExecution, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowexecution.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeadLetterEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deadletterentry.FieldPayload:
			values[i] = new([]byte)
		case deadletterentry.FieldAttemptsMade:
			values[i] = new(sql.NullInt64)
		case deadletterentry.FieldJobID, deadletterentry.FieldStage, deadletterentry.FieldFailureReason, deadletterentry.FieldFailureStack, deadletterentry.FieldPriority, deadletterentry.FieldResolution, deadletterentry.FieldReviewNotes, deadletterentry.FieldReviewedBy, deadletterentry.FieldReprocessedAsJobID:
			values[i] = new(sql.NullString)
		case deadletterentry.FieldCreatedAt, deadletterentry.FieldReviewedAt:
			values[i] = new(sql.NullTime)
		case deadletterentry.FieldID, deadletterentry.FieldWorkflowID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeadLetterEntry fields.
func (_m *DeadLetterEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deadletterentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case deadletterentry.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case deadletterentry.FieldWorkflowID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value != nil {
				_m.WorkflowID = *value
			}
		case deadletterentry.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case deadletterentry.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case deadletterentry.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = value.String
			}
		case deadletterentry.FieldFailureStack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_stack", values[i])
			} else if value.Valid {
				_m.FailureStack = new(string)
				*_m.FailureStack = value.String
			}
		case deadletterentry.FieldAttemptsMade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts_made", values[i])
			} else if value.Valid {
				_m.AttemptsMade = int(value.Int64)
			}
		case deadletterentry.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = value.String
			}
		case deadletterentry.FieldResolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution", values[i])
			} else if value.Valid {
				_m.Resolution = value.String
			}
		case deadletterentry.FieldReviewNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_notes", values[i])
			} else if value.Valid {
				_m.ReviewNotes = new(string)
				*_m.ReviewNotes = value.String
			}
		case deadletterentry.FieldReviewedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_by", values[i])
			} else if value.Valid {
				_m.ReviewedBy = new(string)
				*_m.ReviewedBy = value.String
			}
		case deadletterentry.FieldReprocessedAsJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reprocessed_as_job_id", values[i])
			} else if value.Valid {
				_m.ReprocessedAsJobID = new(string)
				*_m.ReprocessedAsJobID = value.String
			}
		case deadletterentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deadletterentry.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeadLetterEntry.
// This includes values selected through modifiers, order, etc.
func (_m *DeadLetterEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the DeadLetterEntry entity.
func (_m *DeadLetterEntry) QueryWorkflow() *WorkflowExecutionQuery {
	return NewDeadLetterEntryClient(_m.config).QueryWorkflow(_m)
}

// Update returns a builder for updating this DeadLetterEntry.
// Note that you need to call DeadLetterEntry.Unwrap() before calling this method if this DeadLetterEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeadLetterEntry) Update() *DeadLetterEntryUpdateOne {
	return NewDeadLetterEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeadLetterEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeadLetterEntry) Unwrap() *DeadLetterEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeadLetterEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeadLetterEntry) String() string {
	var builder strings.Builder
	builder.WriteString("DeadLetterEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("workflow_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkflowID))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("failure_reason=")
	builder.WriteString(_m.FailureReason)
	builder.WriteString(", ")
	if v := _m.FailureStack; v != nil {
		builder.WriteString("failure_stack=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("attempts_made=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptsMade))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(_m.Priority)
	builder.WriteString(", ")
	builder.WriteString("resolution=")
	builder.WriteString(_m.Resolution)
	builder.WriteString(", ")
	if v := _m.ReviewNotes; v != nil {
		builder.WriteString("review_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReviewedBy; v != nil {
		builder.WriteString("reviewed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReprocessedAsJobID; v != nil {
		builder.WriteString("reprocessed_as_job_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DeadLetterEntries is a parsable slice of DeadLetterEntry.
type DeadLetterEntries []*DeadLetterEntry
