// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent/deadletterentry"
	"github.com/joseph-ayodele/orderflow/gen/ent/merchant"
	"github.com/joseph-ayodele/orderflow/gen/ent/orderdocument"
	"github.com/joseph-ayodele/orderflow/gen/ent/predicate"
	"github.com/joseph-ayodele/orderflow/gen/ent/purchaseorder"
	"github.com/joseph-ayodele/orderflow/gen/ent/workflowexecution"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDeadLetterEntry   = "DeadLetterEntry"
	TypeMerchant          = "Merchant"
	TypeOrderDocument     = "OrderDocument"
	TypePurchaseOrder     = "PurchaseOrder"
	TypeWorkflowExecution = "WorkflowExecution"
)

// DeadLetterEntryMutation represents an operation that mutates the DeadLetterEntry nodes in the graph.
type DeadLetterEntryMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	job_id                *string
	stage                 *string
	payload               *json.RawMessage
	appendpayload         json.RawMessage
	failure_reason        *string
	failure_stack         *string
	attempts_made         *int
	addattempts_made      *int
	priority              *string
	resolution            *string
	review_notes          *string
	reviewed_by           *string
	reprocessed_as_job_id *string
	created_at            *time.Time
	reviewed_at           *time.Time
	clearedFields         map[string]struct{}
	workflow              *uuid.UUID
	clearedworkflow       bool
	done                  bool
	oldValue              func(context.Context) (*DeadLetterEntry, error)
	predicates            []predicate.DeadLetterEntry
}

var _ ent.Mutation = (*DeadLetterEntryMutation)(nil)

// deadletterentryOption allows management of the mutation configuration using functional options.
type deadletterentryOption func(*DeadLetterEntryMutation)

// newDeadLetterEntryMutation creates new mutation for the DeadLetterEntry entity.
func newDeadLetterEntryMutation(c config, op Op, opts ...deadletterentryOption) *DeadLetterEntryMutation {
	m := &DeadLetterEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeDeadLetterEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeadLetterEntryID sets the ID field of the mutation.
func withDeadLetterEntryID(id uuid.UUID) deadletterentryOption {
	return func(m *DeadLetterEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *DeadLetterEntry
		)
		m.oldValue = func(ctx context.Context) (*DeadLetterEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeadLetterEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeadLetterEntry sets the old DeadLetterEntry of the mutation.
func withDeadLetterEntry(node *DeadLetterEntry) deadletterentryOption {
	return func(m *DeadLetterEntryMutation) {
		m.oldValue = func(context.Context) (*DeadLetterEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeadLetterEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeadLetterEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeadLetterEntry entities.
func (m *DeadLetterEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeadLetterEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeadLetterEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeadLetterEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *DeadLetterEntryMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *DeadLetterEntryMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the DeadLetterEntry entity.
// If the DeadLetterEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterEntryMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *DeadLetterEntryMutation) ResetJobID() {
	m.job_id = nil
}

// SetWorkflowID sets the "workflow_id" field.
func (m *DeadLetterEntryMutation) SetWorkflowID(u uuid.UUID) {
	m.workflow = &u
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *DeadLetterEntryMutation) WorkflowID() (r uuid.UUID, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the DeadLetterEntry entity.
// If the DeadLetterEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterEntryMutation) OldWorkflowID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *DeadLetterEntryMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetStage sets the "stage" field.
func (m *DeadLetterEntryMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *DeadLetterEntryMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the DeadLetterEntry entity.
// If the DeadLetterEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterEntryMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *DeadLetterEntryMutation) ResetStage() {
	m.stage = nil
}

// SetPayload sets the "payload" field.
func (m *DeadLetterEntryMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *DeadLetterEntryMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the DeadLetterEntry entity.
// If the DeadLetterEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterEntryMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *DeadLetterEntryMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *DeadLetterEntryMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ClearPayload clears the value of the "payload" field.
func (m *DeadLetterEntryMutation) ClearPayload() {
	m.payload = nil
	m.appendpayload = nil
	m.clearedFields[deadletterentry.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *DeadLetterEntryMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[deadletterentry.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *DeadLetterEntryMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
	delete(m.clearedFields, deadletterentry.FieldPayload)
}

// SetFailureReason sets the "failure_reason" field.
func (m *DeadLetterEntryMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *DeadLetterEntryMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the DeadLetterEntry entity.
// If the DeadLetterEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterEntryMutation) OldFailureReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *DeadLetterEntryMutation) ResetFailureReason() {
	m.failure_reason = nil
}

// SetFailureStack sets the "failure_stack" field.
func (m *DeadLetterEntryMutation) SetFailureStack(s string) {
	m.failure_stack = &s
}

// FailureStack returns the value of the "failure_stack" field in the mutation.
func (m *DeadLetterEntryMutation) FailureStack() (r string, exists bool) {
	v := m.failure_stack
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureStack returns the old "failure_stack" field's value of the DeadLetterEntry entity.
// If the DeadLetterEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterEntryMutation) OldFailureStack(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureStack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureStack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureStack: %w", err)
	}
	return oldValue.FailureStack, nil
}

// ClearFailureStack clears the value of the "failure_stack" field.
func (m *DeadLetterEntryMutation) ClearFailureStack() {
	m.failure_stack = nil
	m.clearedFields[deadletterentry.FieldFailureStack] = struct{}{}
}

// FailureStackCleared returns if the "failure_stack" field was cleared in this mutation.
func (m *DeadLetterEntryMutation) FailureStackCleared() bool {
	_, ok := m.clearedFields[deadletterentry.FieldFailureStack]
	return ok
}

// ResetFailureStack resets all changes to the "failure_stack" field.
func (m *DeadLetterEntryMutation) ResetFailureStack() {
	m.failure_stack = nil
	delete(m.clearedFields, deadletterentry.FieldFailureStack)
}

// SetAttemptsMade sets the "attempts_made" field.
func (m *DeadLetterEntryMutation) SetAttemptsMade(i int) {
	m.attempts_made = &i
	m.addattempts_made = nil
}

// AttemptsMade returns the value of the "attempts_made" field in the mutation.
func (m *DeadLetterEntryMutation) AttemptsMade() (r int, exists bool) {
	v := m.attempts_made
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptsMade returns the old "attempts_made" field's value of the DeadLetterEntry entity.
// If the DeadLetterEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterEntryMutation) OldAttemptsMade(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptsMade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptsMade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptsMade: %w", err)
	}
	return oldValue.AttemptsMade, nil
}

// AddAttemptsMade adds i to the "attempts_made" field.
func (m *DeadLetterEntryMutation) AddAttemptsMade(i int) {
	if m.addattempts_made != nil {
		*m.addattempts_made += i
	} else {
		m.addattempts_made = &i
	}
}

// AddedAttemptsMade returns the value that was added to the "attempts_made" field in this mutation.
func (m *DeadLetterEntryMutation) AddedAttemptsMade() (r int, exists bool) {
	v := m.addattempts_made
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptsMade resets all changes to the "attempts_made" field.
func (m *DeadLetterEntryMutation) ResetAttemptsMade() {
	m.attempts_made = nil
	m.addattempts_made = nil
}

// SetPriority sets the "priority" field.
func (m *DeadLetterEntryMutation) SetPriority(s string) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *DeadLetterEntryMutation) Priority() (r string, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the DeadLetterEntry entity.
// If the DeadLetterEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterEntryMutation) OldPriority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *DeadLetterEntryMutation) ResetPriority() {
	m.priority = nil
}

// SetResolution sets the "resolution" field.
func (m *DeadLetterEntryMutation) SetResolution(s string) {
	m.resolution = &s
}

// Resolution returns the value of the "resolution" field in the mutation.
func (m *DeadLetterEntryMutation) Resolution() (r string, exists bool) {
	v := m.resolution
	if v == nil {
		return
	}
	return *v, true
}

// OldResolution returns the old "resolution" field's value of the DeadLetterEntry entity.
// If the DeadLetterEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterEntryMutation) OldResolution(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolution: %w", err)
	}
	return oldValue.Resolution, nil
}

// ResetResolution resets all changes to the "resolution" field.
func (m *DeadLetterEntryMutation) ResetResolution() {
	m.resolution = nil
}

// SetReviewNotes sets the "review_notes" field.
func (m *DeadLetterEntryMutation) SetReviewNotes(s string) {
	m.review_notes = &s
}

// ReviewNotes returns the value of the "review_notes" field in the mutation.
func (m *DeadLetterEntryMutation) ReviewNotes() (r string, exists bool) {
	v := m.review_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewNotes returns the old "review_notes" field's value of the DeadLetterEntry entity.
// If the DeadLetterEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterEntryMutation) OldReviewNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewNotes: %w", err)
	}
	return oldValue.ReviewNotes, nil
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (m *DeadLetterEntryMutation) ClearReviewNotes() {
	m.review_notes = nil
	m.clearedFields[deadletterentry.FieldReviewNotes] = struct{}{}
}

// ReviewNotesCleared returns if the "review_notes" field was cleared in this mutation.
func (m *DeadLetterEntryMutation) ReviewNotesCleared() bool {
	_, ok := m.clearedFields[deadletterentry.FieldReviewNotes]
	return ok
}

// ResetReviewNotes resets all changes to the "review_notes" field.
func (m *DeadLetterEntryMutation) ResetReviewNotes() {
	m.review_notes = nil
	delete(m.clearedFields, deadletterentry.FieldReviewNotes)
}

// SetReviewedBy sets the "reviewed_by" field.
func (m *DeadLetterEntryMutation) SetReviewedBy(s string) {
	m.reviewed_by = &s
}

// ReviewedBy returns the value of the "reviewed_by" field in the mutation.
func (m *DeadLetterEntryMutation) ReviewedBy() (r string, exists bool) {
	v := m.reviewed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedBy returns the old "reviewed_by" field's value of the DeadLetterEntry entity.
// If the DeadLetterEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterEntryMutation) OldReviewedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedBy: %w", err)
	}
	return oldValue.ReviewedBy, nil
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (m *DeadLetterEntryMutation) ClearReviewedBy() {
	m.reviewed_by = nil
	m.clearedFields[deadletterentry.FieldReviewedBy] = struct{}{}
}

// ReviewedByCleared returns if the "reviewed_by" field was cleared in this mutation.
func (m *DeadLetterEntryMutation) ReviewedByCleared() bool {
	_, ok := m.clearedFields[deadletterentry.FieldReviewedBy]
	return ok
}

// ResetReviewedBy resets all changes to the "reviewed_by" field.
func (m *DeadLetterEntryMutation) ResetReviewedBy() {
	m.reviewed_by = nil
	delete(m.clearedFields, deadletterentry.FieldReviewedBy)
}

// SetReprocessedAsJobID sets the "reprocessed_as_job_id" field.
func (m *DeadLetterEntryMutation) SetReprocessedAsJobID(s string) {
	m.reprocessed_as_job_id = &s
}

// ReprocessedAsJobID returns the value of the "reprocessed_as_job_id" field in the mutation.
func (m *DeadLetterEntryMutation) ReprocessedAsJobID() (r string, exists bool) {
	v := m.reprocessed_as_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReprocessedAsJobID returns the old "reprocessed_as_job_id" field's value of the DeadLetterEntry entity.
// If the DeadLetterEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterEntryMutation) OldReprocessedAsJobID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReprocessedAsJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReprocessedAsJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReprocessedAsJobID: %w", err)
	}
	return oldValue.ReprocessedAsJobID, nil
}

// ClearReprocessedAsJobID clears the value of the "reprocessed_as_job_id" field.
func (m *DeadLetterEntryMutation) ClearReprocessedAsJobID() {
	m.reprocessed_as_job_id = nil
	m.clearedFields[deadletterentry.FieldReprocessedAsJobID] = struct{}{}
}

// ReprocessedAsJobIDCleared returns if the "reprocessed_as_job_id" field was cleared in this mutation.
func (m *DeadLetterEntryMutation) ReprocessedAsJobIDCleared() bool {
	_, ok := m.clearedFields[deadletterentry.FieldReprocessedAsJobID]
	return ok
}

// ResetReprocessedAsJobID resets all changes to the "reprocessed_as_job_id" field.
func (m *DeadLetterEntryMutation) ResetReprocessedAsJobID() {
	m.reprocessed_as_job_id = nil
	delete(m.clearedFields, deadletterentry.FieldReprocessedAsJobID)
}

// SetCreatedAt sets the "created_at" field.
func (m *DeadLetterEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeadLetterEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DeadLetterEntry entity.
// If the DeadLetterEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeadLetterEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *DeadLetterEntryMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *DeadLetterEntryMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the DeadLetterEntry entity.
// If the DeadLetterEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterEntryMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *DeadLetterEntryMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[deadletterentry.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *DeadLetterEntryMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[deadletterentry.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *DeadLetterEntryMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, deadletterentry.FieldReviewedAt)
}

// ClearWorkflow clears the "workflow" edge to the WorkflowExecution entity.
func (m *DeadLetterEntryMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[deadletterentry.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the WorkflowExecution entity was cleared.
func (m *DeadLetterEntryMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *DeadLetterEntryMutation) WorkflowIDs() (ids []uuid.UUID) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *DeadLetterEntryMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the DeadLetterEntryMutation builder.
func (m *DeadLetterEntryMutation) Where(ps ...predicate.DeadLetterEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeadLetterEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeadLetterEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeadLetterEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeadLetterEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeadLetterEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeadLetterEntry).
func (m *DeadLetterEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeadLetterEntryMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.job_id != nil {
		fields = append(fields, deadletterentry.FieldJobID)
	}
	if m.workflow != nil {
		fields = append(fields, deadletterentry.FieldWorkflowID)
	}
	if m.stage != nil {
		fields = append(fields, deadletterentry.FieldStage)
	}
	if m.payload != nil {
		fields = append(fields, deadletterentry.FieldPayload)
	}
	if m.failure_reason != nil {
		fields = append(fields, deadletterentry.FieldFailureReason)
	}
	if m.failure_stack != nil {
		fields = append(fields, deadletterentry.FieldFailureStack)
	}
	if m.attempts_made != nil {
		fields = append(fields, deadletterentry.FieldAttemptsMade)
	}
	if m.priority != nil {
		fields = append(fields, deadletterentry.FieldPriority)
	}
	if m.resolution != nil {
		fields = append(fields, deadletterentry.FieldResolution)
	}
	if m.review_notes != nil {
		fields = append(fields, deadletterentry.FieldReviewNotes)
	}
	if m.reviewed_by != nil {
		fields = append(fields, deadletterentry.FieldReviewedBy)
	}
	if m.reprocessed_as_job_id != nil {
		fields = append(fields, deadletterentry.FieldReprocessedAsJobID)
	}
	if m.created_at != nil {
		fields = append(fields, deadletterentry.FieldCreatedAt)
	}
	if m.reviewed_at != nil {
		fields = append(fields, deadletterentry.FieldReviewedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeadLetterEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deadletterentry.FieldJobID:
		return m.JobID()
	case deadletterentry.FieldWorkflowID:
		return m.WorkflowID()
	case deadletterentry.FieldStage:
		return m.Stage()
	case deadletterentry.FieldPayload:
		return m.Payload()
	case deadletterentry.FieldFailureReason:
		return m.FailureReason()
	case deadletterentry.FieldFailureStack:
		return m.FailureStack()
	case deadletterentry.FieldAttemptsMade:
		return m.AttemptsMade()
	case deadletterentry.FieldPriority:
		return m.Priority()
	case deadletterentry.FieldResolution:
		return m.Resolution()
	case deadletterentry.FieldReviewNotes:
		return m.ReviewNotes()
	case deadletterentry.FieldReviewedBy:
		return m.ReviewedBy()
	case deadletterentry.FieldReprocessedAsJobID:
		return m.ReprocessedAsJobID()
	case deadletterentry.FieldCreatedAt:
		return m.CreatedAt()
	case deadletterentry.FieldReviewedAt:
		return m.ReviewedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeadLetterEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deadletterentry.FieldJobID:
		return m.OldJobID(ctx)
	case deadletterentry.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case deadletterentry.FieldStage:
		return m.OldStage(ctx)
	case deadletterentry.FieldPayload:
		return m.OldPayload(ctx)
	case deadletterentry.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case deadletterentry.FieldFailureStack:
		return m.OldFailureStack(ctx)
	case deadletterentry.FieldAttemptsMade:
		return m.OldAttemptsMade(ctx)
	case deadletterentry.FieldPriority:
		return m.OldPriority(ctx)
	case deadletterentry.FieldResolution:
		return m.OldResolution(ctx)
	case deadletterentry.FieldReviewNotes:
		return m.OldReviewNotes(ctx)
	case deadletterentry.FieldReviewedBy:
		return m.OldReviewedBy(ctx)
	case deadletterentry.FieldReprocessedAsJobID:
		return m.OldReprocessedAsJobID(ctx)
	case deadletterentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deadletterentry.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeadLetterEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeadLetterEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deadletterentry.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case deadletterentry.FieldWorkflowID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case deadletterentry.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case deadletterentry.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case deadletterentry.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case deadletterentry.FieldFailureStack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureStack(v)
		return nil
	case deadletterentry.FieldAttemptsMade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptsMade(v)
		return nil
	case deadletterentry.FieldPriority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case deadletterentry.FieldResolution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolution(v)
		return nil
	case deadletterentry.FieldReviewNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewNotes(v)
		return nil
	case deadletterentry.FieldReviewedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedBy(v)
		return nil
	case deadletterentry.FieldReprocessedAsJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReprocessedAsJobID(v)
		return nil
	case deadletterentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deadletterentry.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeadLetterEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeadLetterEntryMutation) AddedFields() []string {
	var fields []string
	if m.addattempts_made != nil {
		fields = append(fields, deadletterentry.FieldAttemptsMade)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeadLetterEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deadletterentry.FieldAttemptsMade:
		return m.AddedAttemptsMade()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeadLetterEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deadletterentry.FieldAttemptsMade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptsMade(v)
		return nil
	}
	return fmt.Errorf("unknown DeadLetterEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeadLetterEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deadletterentry.FieldPayload) {
		fields = append(fields, deadletterentry.FieldPayload)
	}
	if m.FieldCleared(deadletterentry.FieldFailureStack) {
		fields = append(fields, deadletterentry.FieldFailureStack)
	}
	if m.FieldCleared(deadletterentry.FieldReviewNotes) {
		fields = append(fields, deadletterentry.FieldReviewNotes)
	}
	if m.FieldCleared(deadletterentry.FieldReviewedBy) {
		fields = append(fields, deadletterentry.FieldReviewedBy)
	}
	if m.FieldCleared(deadletterentry.FieldReprocessedAsJobID) {
		fields = append(fields, deadletterentry.FieldReprocessedAsJobID)
	}
	if m.FieldCleared(deadletterentry.FieldReviewedAt) {
		fields = append(fields, deadletterentry.FieldReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeadLetterEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeadLetterEntryMutation) ClearField(name string) error {
	switch name {
	case deadletterentry.FieldPayload:
		m.ClearPayload()
		return nil
	case deadletterentry.FieldFailureStack:
		m.ClearFailureStack()
		return nil
	case deadletterentry.FieldReviewNotes:
		m.ClearReviewNotes()
		return nil
	case deadletterentry.FieldReviewedBy:
		m.ClearReviewedBy()
		return nil
	case deadletterentry.FieldReprocessedAsJobID:
		m.ClearReprocessedAsJobID()
		return nil
	case deadletterentry.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown DeadLetterEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeadLetterEntryMutation) ResetField(name string) error {
	switch name {
	case deadletterentry.FieldJobID:
		m.ResetJobID()
		return nil
	case deadletterentry.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case deadletterentry.FieldStage:
		m.ResetStage()
		return nil
	case deadletterentry.FieldPayload:
		m.ResetPayload()
		return nil
	case deadletterentry.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case deadletterentry.FieldFailureStack:
		m.ResetFailureStack()
		return nil
	case deadletterentry.FieldAttemptsMade:
		m.ResetAttemptsMade()
		return nil
	case deadletterentry.FieldPriority:
		m.ResetPriority()
		return nil
	case deadletterentry.FieldResolution:
		m.ResetResolution()
		return nil
	case deadletterentry.FieldReviewNotes:
		m.ResetReviewNotes()
		return nil
	case deadletterentry.FieldReviewedBy:
		m.ResetReviewedBy()
		return nil
	case deadletterentry.FieldReprocessedAsJobID:
		m.ResetReprocessedAsJobID()
		return nil
	case deadletterentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deadletterentry.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown DeadLetterEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeadLetterEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, deadletterentry.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeadLetterEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deadletterentry.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeadLetterEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeadLetterEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeadLetterEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, deadletterentry.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeadLetterEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case deadletterentry.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeadLetterEntryMutation) ClearEdge(name string) error {
	switch name {
	case deadletterentry.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown DeadLetterEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeadLetterEntryMutation) ResetEdge(name string) error {
	switch name {
	case deadletterentry.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown DeadLetterEntry edge %s", name)
}

// MerchantMutation represents an operation that mutates the Merchant nodes in the graph.
type MerchantMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	shop_domain      *string
	display_name     *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	documents        map[uuid.UUID]struct{}
	removeddocuments map[uuid.UUID]struct{}
	cleareddocuments bool
	workflows        map[uuid.UUID]struct{}
	removedworkflows map[uuid.UUID]struct{}
	clearedworkflows bool
	orders           map[uuid.UUID]struct{}
	removedorders    map[uuid.UUID]struct{}
	clearedorders    bool
	done             bool
	oldValue         func(context.Context) (*Merchant, error)
	predicates       []predicate.Merchant
}

var _ ent.Mutation = (*MerchantMutation)(nil)

// merchantOption allows management of the mutation configuration using functional options.
type merchantOption func(*MerchantMutation)

// newMerchantMutation creates new mutation for the Merchant entity.
func newMerchantMutation(c config, op Op, opts ...merchantOption) *MerchantMutation {
	m := &MerchantMutation{
		config:        c,
		op:            op,
		typ:           TypeMerchant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMerchantID sets the ID field of the mutation.
func withMerchantID(id uuid.UUID) merchantOption {
	return func(m *MerchantMutation) {
		var (
			err   error
			once  sync.Once
			value *Merchant
		)
		m.oldValue = func(ctx context.Context) (*Merchant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Merchant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMerchant sets the old Merchant of the mutation.
func withMerchant(node *Merchant) merchantOption {
	return func(m *MerchantMutation) {
		m.oldValue = func(context.Context) (*Merchant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MerchantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MerchantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Merchant entities.
func (m *MerchantMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MerchantMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MerchantMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Merchant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetShopDomain sets the "shop_domain" field.
func (m *MerchantMutation) SetShopDomain(s string) {
	m.shop_domain = &s
}

// ShopDomain returns the value of the "shop_domain" field in the mutation.
func (m *MerchantMutation) ShopDomain() (r string, exists bool) {
	v := m.shop_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldShopDomain returns the old "shop_domain" field's value of the Merchant entity.
// If the Merchant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerchantMutation) OldShopDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShopDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShopDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShopDomain: %w", err)
	}
	return oldValue.ShopDomain, nil
}

// ResetShopDomain resets all changes to the "shop_domain" field.
func (m *MerchantMutation) ResetShopDomain() {
	m.shop_domain = nil
}

// SetDisplayName sets the "display_name" field.
func (m *MerchantMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *MerchantMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Merchant entity.
// If the Merchant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerchantMutation) OldDisplayName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *MerchantMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[merchant.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *MerchantMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[merchant.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *MerchantMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, merchant.FieldDisplayName)
}

// SetCreatedAt sets the "created_at" field.
func (m *MerchantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MerchantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Merchant entity.
// If the Merchant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerchantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MerchantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddDocumentIDs adds the "documents" edge to the OrderDocument entity by ids.
func (m *MerchantMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the OrderDocument entity.
func (m *MerchantMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the OrderDocument entity was cleared.
func (m *MerchantMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the OrderDocument entity by IDs.
func (m *MerchantMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the OrderDocument entity.
func (m *MerchantMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *MerchantMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *MerchantMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddWorkflowIDs adds the "workflows" edge to the WorkflowExecution entity by ids.
func (m *MerchantMutation) AddWorkflowIDs(ids ...uuid.UUID) {
	if m.workflows == nil {
		m.workflows = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.workflows[ids[i]] = struct{}{}
	}
}

// ClearWorkflows clears the "workflows" edge to the WorkflowExecution entity.
func (m *MerchantMutation) ClearWorkflows() {
	m.clearedworkflows = true
}

// WorkflowsCleared reports if the "workflows" edge to the WorkflowExecution entity was cleared.
func (m *MerchantMutation) WorkflowsCleared() bool {
	return m.clearedworkflows
}

// RemoveWorkflowIDs removes the "workflows" edge to the WorkflowExecution entity by IDs.
func (m *MerchantMutation) RemoveWorkflowIDs(ids ...uuid.UUID) {
	if m.removedworkflows == nil {
		m.removedworkflows = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.workflows, ids[i])
		m.removedworkflows[ids[i]] = struct{}{}
	}
}

// RemovedWorkflows returns the removed IDs of the "workflows" edge to the WorkflowExecution entity.
func (m *MerchantMutation) RemovedWorkflowsIDs() (ids []uuid.UUID) {
	for id := range m.removedworkflows {
		ids = append(ids, id)
	}
	return
}

// WorkflowsIDs returns the "workflows" edge IDs in the mutation.
func (m *MerchantMutation) WorkflowsIDs() (ids []uuid.UUID) {
	for id := range m.workflows {
		ids = append(ids, id)
	}
	return
}

// ResetWorkflows resets all changes to the "workflows" edge.
func (m *MerchantMutation) ResetWorkflows() {
	m.workflows = nil
	m.clearedworkflows = false
	m.removedworkflows = nil
}

// AddOrderIDs adds the "orders" edge to the PurchaseOrder entity by ids.
func (m *MerchantMutation) AddOrderIDs(ids ...uuid.UUID) {
	if m.orders == nil {
		m.orders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.orders[ids[i]] = struct{}{}
	}
}

// ClearOrders clears the "orders" edge to the PurchaseOrder entity.
func (m *MerchantMutation) ClearOrders() {
	m.clearedorders = true
}

// OrdersCleared reports if the "orders" edge to the PurchaseOrder entity was cleared.
func (m *MerchantMutation) OrdersCleared() bool {
	return m.clearedorders
}

// RemoveOrderIDs removes the "orders" edge to the PurchaseOrder entity by IDs.
func (m *MerchantMutation) RemoveOrderIDs(ids ...uuid.UUID) {
	if m.removedorders == nil {
		m.removedorders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.orders, ids[i])
		m.removedorders[ids[i]] = struct{}{}
	}
}

// RemovedOrders returns the removed IDs of the "orders" edge to the PurchaseOrder entity.
func (m *MerchantMutation) RemovedOrdersIDs() (ids []uuid.UUID) {
	for id := range m.removedorders {
		ids = append(ids, id)
	}
	return
}

// OrdersIDs returns the "orders" edge IDs in the mutation.
func (m *MerchantMutation) OrdersIDs() (ids []uuid.UUID) {
	for id := range m.orders {
		ids = append(ids, id)
	}
	return
}

// ResetOrders resets all changes to the "orders" edge.
func (m *MerchantMutation) ResetOrders() {
	m.orders = nil
	m.clearedorders = false
	m.removedorders = nil
}

// Where appends a list predicates to the MerchantMutation builder.
func (m *MerchantMutation) Where(ps ...predicate.Merchant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MerchantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MerchantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Merchant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MerchantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MerchantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Merchant).
func (m *MerchantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MerchantMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.shop_domain != nil {
		fields = append(fields, merchant.FieldShopDomain)
	}
	if m.display_name != nil {
		fields = append(fields, merchant.FieldDisplayName)
	}
	if m.created_at != nil {
		fields = append(fields, merchant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MerchantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case merchant.FieldShopDomain:
		return m.ShopDomain()
	case merchant.FieldDisplayName:
		return m.DisplayName()
	case merchant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MerchantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case merchant.FieldShopDomain:
		return m.OldShopDomain(ctx)
	case merchant.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case merchant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Merchant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MerchantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case merchant.FieldShopDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShopDomain(v)
		return nil
	case merchant.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case merchant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Merchant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MerchantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MerchantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MerchantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Merchant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MerchantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(merchant.FieldDisplayName) {
		fields = append(fields, merchant.FieldDisplayName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MerchantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MerchantMutation) ClearField(name string) error {
	switch name {
	case merchant.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	}
	return fmt.Errorf("unknown Merchant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MerchantMutation) ResetField(name string) error {
	switch name {
	case merchant.FieldShopDomain:
		m.ResetShopDomain()
		return nil
	case merchant.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case merchant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Merchant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MerchantMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.documents != nil {
		edges = append(edges, merchant.EdgeDocuments)
	}
	if m.workflows != nil {
		edges = append(edges, merchant.EdgeWorkflows)
	}
	if m.orders != nil {
		edges = append(edges, merchant.EdgeOrders)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MerchantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case merchant.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case merchant.EdgeWorkflows:
		ids := make([]ent.Value, 0, len(m.workflows))
		for id := range m.workflows {
			ids = append(ids, id)
		}
		return ids
	case merchant.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.orders))
		for id := range m.orders {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MerchantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddocuments != nil {
		edges = append(edges, merchant.EdgeDocuments)
	}
	if m.removedworkflows != nil {
		edges = append(edges, merchant.EdgeWorkflows)
	}
	if m.removedorders != nil {
		edges = append(edges, merchant.EdgeOrders)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MerchantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case merchant.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case merchant.EdgeWorkflows:
		ids := make([]ent.Value, 0, len(m.removedworkflows))
		for id := range m.removedworkflows {
			ids = append(ids, id)
		}
		return ids
	case merchant.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.removedorders))
		for id := range m.removedorders {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MerchantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddocuments {
		edges = append(edges, merchant.EdgeDocuments)
	}
	if m.clearedworkflows {
		edges = append(edges, merchant.EdgeWorkflows)
	}
	if m.clearedorders {
		edges = append(edges, merchant.EdgeOrders)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MerchantMutation) EdgeCleared(name string) bool {
	switch name {
	case merchant.EdgeDocuments:
		return m.cleareddocuments
	case merchant.EdgeWorkflows:
		return m.clearedworkflows
	case merchant.EdgeOrders:
		return m.clearedorders
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MerchantMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Merchant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MerchantMutation) ResetEdge(name string) error {
	switch name {
	case merchant.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case merchant.EdgeWorkflows:
		m.ResetWorkflows()
		return nil
	case merchant.EdgeOrders:
		m.ResetOrders()
		return nil
	}
	return fmt.Errorf("unknown Merchant edge %s", name)
}

// OrderDocumentMutation represents an operation that mutates the OrderDocument nodes in the graph.
type OrderDocumentMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	filename         *string
	content_type     *string
	content_hash     *[]byte
	file_size        *int
	addfile_size     *int
	storage_key      *string
	uploaded_at      *time.Time
	clearedFields    map[string]struct{}
	merchant         *uuid.UUID
	clearedmerchant  bool
	workflows        map[uuid.UUID]struct{}
	removedworkflows map[uuid.UUID]struct{}
	clearedworkflows bool
	orders           map[uuid.UUID]struct{}
	removedorders    map[uuid.UUID]struct{}
	clearedorders    bool
	done             bool
	oldValue         func(context.Context) (*OrderDocument, error)
	predicates       []predicate.OrderDocument
}

var _ ent.Mutation = (*OrderDocumentMutation)(nil)

// orderdocumentOption allows management of the mutation configuration using functional options.
type orderdocumentOption func(*OrderDocumentMutation)

// newOrderDocumentMutation creates new mutation for the OrderDocument entity.
func newOrderDocumentMutation(c config, op Op, opts ...orderdocumentOption) *OrderDocumentMutation {
	m := &OrderDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderDocumentID sets the ID field of the mutation.
func withOrderDocumentID(id uuid.UUID) orderdocumentOption {
	return func(m *OrderDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderDocument
		)
		m.oldValue = func(ctx context.Context) (*OrderDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderDocument sets the old OrderDocument of the mutation.
func withOrderDocument(node *OrderDocument) orderdocumentOption {
	return func(m *OrderDocumentMutation) {
		m.oldValue = func(context.Context) (*OrderDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrderDocument entities.
func (m *OrderDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMerchantID sets the "merchant_id" field.
func (m *OrderDocumentMutation) SetMerchantID(u uuid.UUID) {
	m.merchant = &u
}

// MerchantID returns the value of the "merchant_id" field in the mutation.
func (m *OrderDocumentMutation) MerchantID() (r uuid.UUID, exists bool) {
	v := m.merchant
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchantID returns the old "merchant_id" field's value of the OrderDocument entity.
// If the OrderDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderDocumentMutation) OldMerchantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchantID: %w", err)
	}
	return oldValue.MerchantID, nil
}

// ResetMerchantID resets all changes to the "merchant_id" field.
func (m *OrderDocumentMutation) ResetMerchantID() {
	m.merchant = nil
}

// SetFilename sets the "filename" field.
func (m *OrderDocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *OrderDocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the OrderDocument entity.
// If the OrderDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderDocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *OrderDocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetContentType sets the "content_type" field.
func (m *OrderDocumentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *OrderDocumentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the OrderDocument entity.
// If the OrderDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderDocumentMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *OrderDocumentMutation) ResetContentType() {
	m.content_type = nil
}

// SetContentHash sets the "content_hash" field.
func (m *OrderDocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *OrderDocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the OrderDocument entity.
// If the OrderDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderDocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *OrderDocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFileSize sets the "file_size" field.
func (m *OrderDocumentMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *OrderDocumentMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the OrderDocument entity.
// If the OrderDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderDocumentMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *OrderDocumentMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *OrderDocumentMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *OrderDocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *OrderDocumentMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *OrderDocumentMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the OrderDocument entity.
// If the OrderDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderDocumentMutation) OldStorageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *OrderDocumentMutation) ResetStorageKey() {
	m.storage_key = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *OrderDocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *OrderDocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the OrderDocument entity.
// If the OrderDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderDocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *OrderDocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (m *OrderDocumentMutation) ClearMerchant() {
	m.clearedmerchant = true
	m.clearedFields[orderdocument.FieldMerchantID] = struct{}{}
}

// MerchantCleared reports if the "merchant" edge to the Merchant entity was cleared.
func (m *OrderDocumentMutation) MerchantCleared() bool {
	return m.clearedmerchant
}

// MerchantIDs returns the "merchant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MerchantID instead. It exists only for internal usage by the builders.
func (m *OrderDocumentMutation) MerchantIDs() (ids []uuid.UUID) {
	if id := m.merchant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMerchant resets all changes to the "merchant" edge.
func (m *OrderDocumentMutation) ResetMerchant() {
	m.merchant = nil
	m.clearedmerchant = false
}

// AddWorkflowIDs adds the "workflows" edge to the WorkflowExecution entity by ids.
func (m *OrderDocumentMutation) AddWorkflowIDs(ids ...uuid.UUID) {
	if m.workflows == nil {
		m.workflows = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.workflows[ids[i]] = struct{}{}
	}
}

// ClearWorkflows clears the "workflows" edge to the WorkflowExecution entity.
func (m *OrderDocumentMutation) ClearWorkflows() {
	m.clearedworkflows = true
}

// WorkflowsCleared reports if the "workflows" edge to the WorkflowExecution entity was cleared.
func (m *OrderDocumentMutation) WorkflowsCleared() bool {
	return m.clearedworkflows
}

// RemoveWorkflowIDs removes the "workflows" edge to the WorkflowExecution entity by IDs.
func (m *OrderDocumentMutation) RemoveWorkflowIDs(ids ...uuid.UUID) {
	if m.removedworkflows == nil {
		m.removedworkflows = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.workflows, ids[i])
		m.removedworkflows[ids[i]] = struct{}{}
	}
}

// RemovedWorkflows returns the removed IDs of the "workflows" edge to the WorkflowExecution entity.
func (m *OrderDocumentMutation) RemovedWorkflowsIDs() (ids []uuid.UUID) {
	for id := range m.removedworkflows {
		ids = append(ids, id)
	}
	return
}

// WorkflowsIDs returns the "workflows" edge IDs in the mutation.
func (m *OrderDocumentMutation) WorkflowsIDs() (ids []uuid.UUID) {
	for id := range m.workflows {
		ids = append(ids, id)
	}
	return
}

// ResetWorkflows resets all changes to the "workflows" edge.
func (m *OrderDocumentMutation) ResetWorkflows() {
	m.workflows = nil
	m.clearedworkflows = false
	m.removedworkflows = nil
}

// AddOrderIDs adds the "orders" edge to the PurchaseOrder entity by ids.
func (m *OrderDocumentMutation) AddOrderIDs(ids ...uuid.UUID) {
	if m.orders == nil {
		m.orders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.orders[ids[i]] = struct{}{}
	}
}

// ClearOrders clears the "orders" edge to the PurchaseOrder entity.
func (m *OrderDocumentMutation) ClearOrders() {
	m.clearedorders = true
}

// OrdersCleared reports if the "orders" edge to the PurchaseOrder entity was cleared.
func (m *OrderDocumentMutation) OrdersCleared() bool {
	return m.clearedorders
}

// RemoveOrderIDs removes the "orders" edge to the PurchaseOrder entity by IDs.
func (m *OrderDocumentMutation) RemoveOrderIDs(ids ...uuid.UUID) {
	if m.removedorders == nil {
		m.removedorders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.orders, ids[i])
		m.removedorders[ids[i]] = struct{}{}
	}
}

// RemovedOrders returns the removed IDs of the "orders" edge to the PurchaseOrder entity.
func (m *OrderDocumentMutation) RemovedOrdersIDs() (ids []uuid.UUID) {
	for id := range m.removedorders {
		ids = append(ids, id)
	}
	return
}

// OrdersIDs returns the "orders" edge IDs in the mutation.
func (m *OrderDocumentMutation) OrdersIDs() (ids []uuid.UUID) {
	for id := range m.orders {
		ids = append(ids, id)
	}
	return
}

// ResetOrders resets all changes to the "orders" edge.
func (m *OrderDocumentMutation) ResetOrders() {
	m.orders = nil
	m.clearedorders = false
	m.removedorders = nil
}

// Where appends a list predicates to the OrderDocumentMutation builder.
func (m *OrderDocumentMutation) Where(ps ...predicate.OrderDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderDocument).
func (m *OrderDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderDocumentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.merchant != nil {
		fields = append(fields, orderdocument.FieldMerchantID)
	}
	if m.filename != nil {
		fields = append(fields, orderdocument.FieldFilename)
	}
	if m.content_type != nil {
		fields = append(fields, orderdocument.FieldContentType)
	}
	if m.content_hash != nil {
		fields = append(fields, orderdocument.FieldContentHash)
	}
	if m.file_size != nil {
		fields = append(fields, orderdocument.FieldFileSize)
	}
	if m.storage_key != nil {
		fields = append(fields, orderdocument.FieldStorageKey)
	}
	if m.uploaded_at != nil {
		fields = append(fields, orderdocument.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderdocument.FieldMerchantID:
		return m.MerchantID()
	case orderdocument.FieldFilename:
		return m.Filename()
	case orderdocument.FieldContentType:
		return m.ContentType()
	case orderdocument.FieldContentHash:
		return m.ContentHash()
	case orderdocument.FieldFileSize:
		return m.FileSize()
	case orderdocument.FieldStorageKey:
		return m.StorageKey()
	case orderdocument.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderdocument.FieldMerchantID:
		return m.OldMerchantID(ctx)
	case orderdocument.FieldFilename:
		return m.OldFilename(ctx)
	case orderdocument.FieldContentType:
		return m.OldContentType(ctx)
	case orderdocument.FieldContentHash:
		return m.OldContentHash(ctx)
	case orderdocument.FieldFileSize:
		return m.OldFileSize(ctx)
	case orderdocument.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case orderdocument.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrderDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderdocument.FieldMerchantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchantID(v)
		return nil
	case orderdocument.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case orderdocument.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case orderdocument.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case orderdocument.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case orderdocument.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case orderdocument.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrderDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, orderdocument.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orderdocument.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orderdocument.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown OrderDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderDocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderDocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OrderDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderDocumentMutation) ResetField(name string) error {
	switch name {
	case orderdocument.FieldMerchantID:
		m.ResetMerchantID()
		return nil
	case orderdocument.FieldFilename:
		m.ResetFilename()
		return nil
	case orderdocument.FieldContentType:
		m.ResetContentType()
		return nil
	case orderdocument.FieldContentHash:
		m.ResetContentHash()
		return nil
	case orderdocument.FieldFileSize:
		m.ResetFileSize()
		return nil
	case orderdocument.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case orderdocument.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown OrderDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.merchant != nil {
		edges = append(edges, orderdocument.EdgeMerchant)
	}
	if m.workflows != nil {
		edges = append(edges, orderdocument.EdgeWorkflows)
	}
	if m.orders != nil {
		edges = append(edges, orderdocument.EdgeOrders)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderdocument.EdgeMerchant:
		if id := m.merchant; id != nil {
			return []ent.Value{*id}
		}
	case orderdocument.EdgeWorkflows:
		ids := make([]ent.Value, 0, len(m.workflows))
		for id := range m.workflows {
			ids = append(ids, id)
		}
		return ids
	case orderdocument.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.orders))
		for id := range m.orders {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedworkflows != nil {
		edges = append(edges, orderdocument.EdgeWorkflows)
	}
	if m.removedorders != nil {
		edges = append(edges, orderdocument.EdgeOrders)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderDocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case orderdocument.EdgeWorkflows:
		ids := make([]ent.Value, 0, len(m.removedworkflows))
		for id := range m.removedworkflows {
			ids = append(ids, id)
		}
		return ids
	case orderdocument.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.removedorders))
		for id := range m.removedorders {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedmerchant {
		edges = append(edges, orderdocument.EdgeMerchant)
	}
	if m.clearedworkflows {
		edges = append(edges, orderdocument.EdgeWorkflows)
	}
	if m.clearedorders {
		edges = append(edges, orderdocument.EdgeOrders)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case orderdocument.EdgeMerchant:
		return m.clearedmerchant
	case orderdocument.EdgeWorkflows:
		return m.clearedworkflows
	case orderdocument.EdgeOrders:
		return m.clearedorders
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderDocumentMutation) ClearEdge(name string) error {
	switch name {
	case orderdocument.EdgeMerchant:
		m.ClearMerchant()
		return nil
	}
	return fmt.Errorf("unknown OrderDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderDocumentMutation) ResetEdge(name string) error {
	switch name {
	case orderdocument.EdgeMerchant:
		m.ResetMerchant()
		return nil
	case orderdocument.EdgeWorkflows:
		m.ResetWorkflows()
		return nil
	case orderdocument.EdgeOrders:
		m.ResetOrders()
		return nil
	}
	return fmt.Errorf("unknown OrderDocument edge %s", name)
}

// PurchaseOrderMutation represents an operation that mutates the PurchaseOrder nodes in the graph.
type PurchaseOrderMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	order_number             *string
	supplier_name            *string
	total_amount             *string
	currency_code            *string
	line_items               *json.RawMessage
	appendline_items         json.RawMessage
	extracted_fields         *json.RawMessage
	appendextracted_fields   json.RawMessage
	extraction_confidence    *float32
	addextraction_confidence *float32
	platform_order_id        *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	merchant                 *uuid.UUID
	clearedmerchant          bool
	document                 *uuid.UUID
	cleareddocument          bool
	done                     bool
	oldValue                 func(context.Context) (*PurchaseOrder, error)
	predicates               []predicate.PurchaseOrder
}

var _ ent.Mutation = (*PurchaseOrderMutation)(nil)

// purchaseorderOption allows management of the mutation configuration using functional options.
type purchaseorderOption func(*PurchaseOrderMutation)

// newPurchaseOrderMutation creates new mutation for the PurchaseOrder entity.
func newPurchaseOrderMutation(c config, op Op, opts ...purchaseorderOption) *PurchaseOrderMutation {
	m := &PurchaseOrderMutation{
		config:        c,
		op:            op,
		typ:           TypePurchaseOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPurchaseOrderID sets the ID field of the mutation.
func withPurchaseOrderID(id uuid.UUID) purchaseorderOption {
	return func(m *PurchaseOrderMutation) {
		var (
			err   error
			once  sync.Once
			value *PurchaseOrder
		)
		m.oldValue = func(ctx context.Context) (*PurchaseOrder, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PurchaseOrder.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPurchaseOrder sets the old PurchaseOrder of the mutation.
func withPurchaseOrder(node *PurchaseOrder) purchaseorderOption {
	return func(m *PurchaseOrderMutation) {
		m.oldValue = func(context.Context) (*PurchaseOrder, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PurchaseOrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PurchaseOrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PurchaseOrder entities.
func (m *PurchaseOrderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PurchaseOrderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PurchaseOrderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PurchaseOrder.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMerchantID sets the "merchant_id" field.
func (m *PurchaseOrderMutation) SetMerchantID(u uuid.UUID) {
	m.merchant = &u
}

// MerchantID returns the value of the "merchant_id" field in the mutation.
func (m *PurchaseOrderMutation) MerchantID() (r uuid.UUID, exists bool) {
	v := m.merchant
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchantID returns the old "merchant_id" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldMerchantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchantID: %w", err)
	}
	return oldValue.MerchantID, nil
}

// ResetMerchantID resets all changes to the "merchant_id" field.
func (m *PurchaseOrderMutation) ResetMerchantID() {
	m.merchant = nil
}

// SetDocumentID sets the "document_id" field.
func (m *PurchaseOrderMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *PurchaseOrderMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *PurchaseOrderMutation) ResetDocumentID() {
	m.document = nil
}

// SetOrderNumber sets the "order_number" field.
func (m *PurchaseOrderMutation) SetOrderNumber(s string) {
	m.order_number = &s
}

// OrderNumber returns the value of the "order_number" field in the mutation.
func (m *PurchaseOrderMutation) OrderNumber() (r string, exists bool) {
	v := m.order_number
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderNumber returns the old "order_number" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldOrderNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderNumber: %w", err)
	}
	return oldValue.OrderNumber, nil
}

// ClearOrderNumber clears the value of the "order_number" field.
func (m *PurchaseOrderMutation) ClearOrderNumber() {
	m.order_number = nil
	m.clearedFields[purchaseorder.FieldOrderNumber] = struct{}{}
}

// OrderNumberCleared returns if the "order_number" field was cleared in this mutation.
func (m *PurchaseOrderMutation) OrderNumberCleared() bool {
	_, ok := m.clearedFields[purchaseorder.FieldOrderNumber]
	return ok
}

// ResetOrderNumber resets all changes to the "order_number" field.
func (m *PurchaseOrderMutation) ResetOrderNumber() {
	m.order_number = nil
	delete(m.clearedFields, purchaseorder.FieldOrderNumber)
}

// SetSupplierName sets the "supplier_name" field.
func (m *PurchaseOrderMutation) SetSupplierName(s string) {
	m.supplier_name = &s
}

// SupplierName returns the value of the "supplier_name" field in the mutation.
func (m *PurchaseOrderMutation) SupplierName() (r string, exists bool) {
	v := m.supplier_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierName returns the old "supplier_name" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldSupplierName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierName: %w", err)
	}
	return oldValue.SupplierName, nil
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (m *PurchaseOrderMutation) ClearSupplierName() {
	m.supplier_name = nil
	m.clearedFields[purchaseorder.FieldSupplierName] = struct{}{}
}

// SupplierNameCleared returns if the "supplier_name" field was cleared in this mutation.
func (m *PurchaseOrderMutation) SupplierNameCleared() bool {
	_, ok := m.clearedFields[purchaseorder.FieldSupplierName]
	return ok
}

// ResetSupplierName resets all changes to the "supplier_name" field.
func (m *PurchaseOrderMutation) ResetSupplierName() {
	m.supplier_name = nil
	delete(m.clearedFields, purchaseorder.FieldSupplierName)
}

// SetTotalAmount sets the "total_amount" field.
func (m *PurchaseOrderMutation) SetTotalAmount(s string) {
	m.total_amount = &s
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *PurchaseOrderMutation) TotalAmount() (r string, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldTotalAmount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (m *PurchaseOrderMutation) ClearTotalAmount() {
	m.total_amount = nil
	m.clearedFields[purchaseorder.FieldTotalAmount] = struct{}{}
}

// TotalAmountCleared returns if the "total_amount" field was cleared in this mutation.
func (m *PurchaseOrderMutation) TotalAmountCleared() bool {
	_, ok := m.clearedFields[purchaseorder.FieldTotalAmount]
	return ok
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *PurchaseOrderMutation) ResetTotalAmount() {
	m.total_amount = nil
	delete(m.clearedFields, purchaseorder.FieldTotalAmount)
}

// SetCurrencyCode sets the "currency_code" field.
func (m *PurchaseOrderMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *PurchaseOrderMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (m *PurchaseOrderMutation) ClearCurrencyCode() {
	m.currency_code = nil
	m.clearedFields[purchaseorder.FieldCurrencyCode] = struct{}{}
}

// CurrencyCodeCleared returns if the "currency_code" field was cleared in this mutation.
func (m *PurchaseOrderMutation) CurrencyCodeCleared() bool {
	_, ok := m.clearedFields[purchaseorder.FieldCurrencyCode]
	return ok
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *PurchaseOrderMutation) ResetCurrencyCode() {
	m.currency_code = nil
	delete(m.clearedFields, purchaseorder.FieldCurrencyCode)
}

// SetLineItems sets the "line_items" field.
func (m *PurchaseOrderMutation) SetLineItems(jm json.RawMessage) {
	m.line_items = &jm
	m.appendline_items = nil
}

// LineItems returns the value of the "line_items" field in the mutation.
func (m *PurchaseOrderMutation) LineItems() (r json.RawMessage, exists bool) {
	v := m.line_items
	if v == nil {
		return
	}
	return *v, true
}

// OldLineItems returns the old "line_items" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldLineItems(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineItems: %w", err)
	}
	return oldValue.LineItems, nil
}

// AppendLineItems adds jm to the "line_items" field.
func (m *PurchaseOrderMutation) AppendLineItems(jm json.RawMessage) {
	m.appendline_items = append(m.appendline_items, jm...)
}

// AppendedLineItems returns the list of values that were appended to the "line_items" field in this mutation.
func (m *PurchaseOrderMutation) AppendedLineItems() (json.RawMessage, bool) {
	if len(m.appendline_items) == 0 {
		return nil, false
	}
	return m.appendline_items, true
}

// ClearLineItems clears the value of the "line_items" field.
func (m *PurchaseOrderMutation) ClearLineItems() {
	m.line_items = nil
	m.appendline_items = nil
	m.clearedFields[purchaseorder.FieldLineItems] = struct{}{}
}

// LineItemsCleared returns if the "line_items" field was cleared in this mutation.
func (m *PurchaseOrderMutation) LineItemsCleared() bool {
	_, ok := m.clearedFields[purchaseorder.FieldLineItems]
	return ok
}

// ResetLineItems resets all changes to the "line_items" field.
func (m *PurchaseOrderMutation) ResetLineItems() {
	m.line_items = nil
	m.appendline_items = nil
	delete(m.clearedFields, purchaseorder.FieldLineItems)
}

// SetExtractedFields sets the "extracted_fields" field.
func (m *PurchaseOrderMutation) SetExtractedFields(jm json.RawMessage) {
	m.extracted_fields = &jm
	m.appendextracted_fields = nil
}

// ExtractedFields returns the value of the "extracted_fields" field in the mutation.
func (m *PurchaseOrderMutation) ExtractedFields() (r json.RawMessage, exists bool) {
	v := m.extracted_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedFields returns the old "extracted_fields" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldExtractedFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedFields: %w", err)
	}
	return oldValue.ExtractedFields, nil
}

// AppendExtractedFields adds jm to the "extracted_fields" field.
func (m *PurchaseOrderMutation) AppendExtractedFields(jm json.RawMessage) {
	m.appendextracted_fields = append(m.appendextracted_fields, jm...)
}

// AppendedExtractedFields returns the list of values that were appended to the "extracted_fields" field in this mutation.
func (m *PurchaseOrderMutation) AppendedExtractedFields() (json.RawMessage, bool) {
	if len(m.appendextracted_fields) == 0 {
		return nil, false
	}
	return m.appendextracted_fields, true
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (m *PurchaseOrderMutation) ClearExtractedFields() {
	m.extracted_fields = nil
	m.appendextracted_fields = nil
	m.clearedFields[purchaseorder.FieldExtractedFields] = struct{}{}
}

// ExtractedFieldsCleared returns if the "extracted_fields" field was cleared in this mutation.
func (m *PurchaseOrderMutation) ExtractedFieldsCleared() bool {
	_, ok := m.clearedFields[purchaseorder.FieldExtractedFields]
	return ok
}

// ResetExtractedFields resets all changes to the "extracted_fields" field.
func (m *PurchaseOrderMutation) ResetExtractedFields() {
	m.extracted_fields = nil
	m.appendextracted_fields = nil
	delete(m.clearedFields, purchaseorder.FieldExtractedFields)
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *PurchaseOrderMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *PurchaseOrderMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldExtractionConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *PurchaseOrderMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *PurchaseOrderMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *PurchaseOrderMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
}

// SetPlatformOrderID sets the "platform_order_id" field.
func (m *PurchaseOrderMutation) SetPlatformOrderID(s string) {
	m.platform_order_id = &s
}

// PlatformOrderID returns the value of the "platform_order_id" field in the mutation.
func (m *PurchaseOrderMutation) PlatformOrderID() (r string, exists bool) {
	v := m.platform_order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformOrderID returns the old "platform_order_id" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldPlatformOrderID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformOrderID: %w", err)
	}
	return oldValue.PlatformOrderID, nil
}

// ClearPlatformOrderID clears the value of the "platform_order_id" field.
func (m *PurchaseOrderMutation) ClearPlatformOrderID() {
	m.platform_order_id = nil
	m.clearedFields[purchaseorder.FieldPlatformOrderID] = struct{}{}
}

// PlatformOrderIDCleared returns if the "platform_order_id" field was cleared in this mutation.
func (m *PurchaseOrderMutation) PlatformOrderIDCleared() bool {
	_, ok := m.clearedFields[purchaseorder.FieldPlatformOrderID]
	return ok
}

// ResetPlatformOrderID resets all changes to the "platform_order_id" field.
func (m *PurchaseOrderMutation) ResetPlatformOrderID() {
	m.platform_order_id = nil
	delete(m.clearedFields, purchaseorder.FieldPlatformOrderID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PurchaseOrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PurchaseOrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PurchaseOrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PurchaseOrderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PurchaseOrderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PurchaseOrderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (m *PurchaseOrderMutation) ClearMerchant() {
	m.clearedmerchant = true
	m.clearedFields[purchaseorder.FieldMerchantID] = struct{}{}
}

// MerchantCleared reports if the "merchant" edge to the Merchant entity was cleared.
func (m *PurchaseOrderMutation) MerchantCleared() bool {
	return m.clearedmerchant
}

// MerchantIDs returns the "merchant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MerchantID instead. It exists only for internal usage by the builders.
func (m *PurchaseOrderMutation) MerchantIDs() (ids []uuid.UUID) {
	if id := m.merchant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMerchant resets all changes to the "merchant" edge.
func (m *PurchaseOrderMutation) ResetMerchant() {
	m.merchant = nil
	m.clearedmerchant = false
}

// ClearDocument clears the "document" edge to the OrderDocument entity.
func (m *PurchaseOrderMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[purchaseorder.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the OrderDocument entity was cleared.
func (m *PurchaseOrderMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *PurchaseOrderMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *PurchaseOrderMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the PurchaseOrderMutation builder.
func (m *PurchaseOrderMutation) Where(ps ...predicate.PurchaseOrder) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PurchaseOrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PurchaseOrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PurchaseOrder, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PurchaseOrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PurchaseOrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PurchaseOrder).
func (m *PurchaseOrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PurchaseOrderMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.merchant != nil {
		fields = append(fields, purchaseorder.FieldMerchantID)
	}
	if m.document != nil {
		fields = append(fields, purchaseorder.FieldDocumentID)
	}
	if m.order_number != nil {
		fields = append(fields, purchaseorder.FieldOrderNumber)
	}
	if m.supplier_name != nil {
		fields = append(fields, purchaseorder.FieldSupplierName)
	}
	if m.total_amount != nil {
		fields = append(fields, purchaseorder.FieldTotalAmount)
	}
	if m.currency_code != nil {
		fields = append(fields, purchaseorder.FieldCurrencyCode)
	}
	if m.line_items != nil {
		fields = append(fields, purchaseorder.FieldLineItems)
	}
	if m.extracted_fields != nil {
		fields = append(fields, purchaseorder.FieldExtractedFields)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, purchaseorder.FieldExtractionConfidence)
	}
	if m.platform_order_id != nil {
		fields = append(fields, purchaseorder.FieldPlatformOrderID)
	}
	if m.created_at != nil {
		fields = append(fields, purchaseorder.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, purchaseorder.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PurchaseOrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case purchaseorder.FieldMerchantID:
		return m.MerchantID()
	case purchaseorder.FieldDocumentID:
		return m.DocumentID()
	case purchaseorder.FieldOrderNumber:
		return m.OrderNumber()
	case purchaseorder.FieldSupplierName:
		return m.SupplierName()
	case purchaseorder.FieldTotalAmount:
		return m.TotalAmount()
	case purchaseorder.FieldCurrencyCode:
		return m.CurrencyCode()
	case purchaseorder.FieldLineItems:
		return m.LineItems()
	case purchaseorder.FieldExtractedFields:
		return m.ExtractedFields()
	case purchaseorder.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case purchaseorder.FieldPlatformOrderID:
		return m.PlatformOrderID()
	case purchaseorder.FieldCreatedAt:
		return m.CreatedAt()
	case purchaseorder.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PurchaseOrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case purchaseorder.FieldMerchantID:
		return m.OldMerchantID(ctx)
	case purchaseorder.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case purchaseorder.FieldOrderNumber:
		return m.OldOrderNumber(ctx)
	case purchaseorder.FieldSupplierName:
		return m.OldSupplierName(ctx)
	case purchaseorder.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case purchaseorder.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case purchaseorder.FieldLineItems:
		return m.OldLineItems(ctx)
	case purchaseorder.FieldExtractedFields:
		return m.OldExtractedFields(ctx)
	case purchaseorder.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case purchaseorder.FieldPlatformOrderID:
		return m.OldPlatformOrderID(ctx)
	case purchaseorder.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case purchaseorder.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PurchaseOrder field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PurchaseOrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case purchaseorder.FieldMerchantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchantID(v)
		return nil
	case purchaseorder.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case purchaseorder.FieldOrderNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderNumber(v)
		return nil
	case purchaseorder.FieldSupplierName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierName(v)
		return nil
	case purchaseorder.FieldTotalAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case purchaseorder.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case purchaseorder.FieldLineItems:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineItems(v)
		return nil
	case purchaseorder.FieldExtractedFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedFields(v)
		return nil
	case purchaseorder.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case purchaseorder.FieldPlatformOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformOrderID(v)
		return nil
	case purchaseorder.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case purchaseorder.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PurchaseOrder field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PurchaseOrderMutation) AddedFields() []string {
	var fields []string
	if m.addextraction_confidence != nil {
		fields = append(fields, purchaseorder.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PurchaseOrderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case purchaseorder.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PurchaseOrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case purchaseorder.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown PurchaseOrder numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PurchaseOrderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(purchaseorder.FieldOrderNumber) {
		fields = append(fields, purchaseorder.FieldOrderNumber)
	}
	if m.FieldCleared(purchaseorder.FieldSupplierName) {
		fields = append(fields, purchaseorder.FieldSupplierName)
	}
	if m.FieldCleared(purchaseorder.FieldTotalAmount) {
		fields = append(fields, purchaseorder.FieldTotalAmount)
	}
	if m.FieldCleared(purchaseorder.FieldCurrencyCode) {
		fields = append(fields, purchaseorder.FieldCurrencyCode)
	}
	if m.FieldCleared(purchaseorder.FieldLineItems) {
		fields = append(fields, purchaseorder.FieldLineItems)
	}
	if m.FieldCleared(purchaseorder.FieldExtractedFields) {
		fields = append(fields, purchaseorder.FieldExtractedFields)
	}
	if m.FieldCleared(purchaseorder.FieldPlatformOrderID) {
		fields = append(fields, purchaseorder.FieldPlatformOrderID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PurchaseOrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PurchaseOrderMutation) ClearField(name string) error {
	switch name {
	case purchaseorder.FieldOrderNumber:
		m.ClearOrderNumber()
		return nil
	case purchaseorder.FieldSupplierName:
		m.ClearSupplierName()
		return nil
	case purchaseorder.FieldTotalAmount:
		m.ClearTotalAmount()
		return nil
	case purchaseorder.FieldCurrencyCode:
		m.ClearCurrencyCode()
		return nil
	case purchaseorder.FieldLineItems:
		m.ClearLineItems()
		return nil
	case purchaseorder.FieldExtractedFields:
		m.ClearExtractedFields()
		return nil
	case purchaseorder.FieldPlatformOrderID:
		m.ClearPlatformOrderID()
		return nil
	}
	return fmt.Errorf("unknown PurchaseOrder nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PurchaseOrderMutation) ResetField(name string) error {
	switch name {
	case purchaseorder.FieldMerchantID:
		m.ResetMerchantID()
		return nil
	case purchaseorder.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case purchaseorder.FieldOrderNumber:
		m.ResetOrderNumber()
		return nil
	case purchaseorder.FieldSupplierName:
		m.ResetSupplierName()
		return nil
	case purchaseorder.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case purchaseorder.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case purchaseorder.FieldLineItems:
		m.ResetLineItems()
		return nil
	case purchaseorder.FieldExtractedFields:
		m.ResetExtractedFields()
		return nil
	case purchaseorder.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case purchaseorder.FieldPlatformOrderID:
		m.ResetPlatformOrderID()
		return nil
	case purchaseorder.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case purchaseorder.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PurchaseOrder field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PurchaseOrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.merchant != nil {
		edges = append(edges, purchaseorder.EdgeMerchant)
	}
	if m.document != nil {
		edges = append(edges, purchaseorder.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PurchaseOrderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case purchaseorder.EdgeMerchant:
		if id := m.merchant; id != nil {
			return []ent.Value{*id}
		}
	case purchaseorder.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PurchaseOrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PurchaseOrderMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PurchaseOrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmerchant {
		edges = append(edges, purchaseorder.EdgeMerchant)
	}
	if m.cleareddocument {
		edges = append(edges, purchaseorder.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PurchaseOrderMutation) EdgeCleared(name string) bool {
	switch name {
	case purchaseorder.EdgeMerchant:
		return m.clearedmerchant
	case purchaseorder.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PurchaseOrderMutation) ClearEdge(name string) error {
	switch name {
	case purchaseorder.EdgeMerchant:
		m.ClearMerchant()
		return nil
	case purchaseorder.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown PurchaseOrder unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PurchaseOrderMutation) ResetEdge(name string) error {
	switch name {
	case purchaseorder.EdgeMerchant:
		m.ResetMerchant()
		return nil
	case purchaseorder.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown PurchaseOrder edge %s", name)
}

// WorkflowExecutionMutation represents an operation that mutates the WorkflowExecution nodes in the graph.
type WorkflowExecutionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	status              *string
	current_stage       *string
	stages_total        *int
	addstages_total     *int
	stages_completed    *int
	addstages_completed *int
	progress_percent    *int
	addprogress_percent *int
	input_data          *json.RawMessage
	appendinput_data    json.RawMessage
	status_data         *json.RawMessage
	appendstatus_data   json.RawMessage
	error_message       *string
	failed_stage        *string
	created_at          *time.Time
	updated_at          *time.Time
	stage_started_at    *time.Time
	stage_completed_at  *time.Time
	clearedFields       map[string]struct{}
	merchant            *uuid.UUID
	clearedmerchant     bool
	document            *uuid.UUID
	cleareddocument     bool
	dead_letters        map[uuid.UUID]struct{}
	removeddead_letters map[uuid.UUID]struct{}
	cleareddead_letters bool
	done                bool
	oldValue            func(context.Context) (*WorkflowExecution, error)
	predicates          []predicate.WorkflowExecution
}

var _ ent.Mutation = (*WorkflowExecutionMutation)(nil)

// workflowexecutionOption allows management of the mutation configuration using functional options.
type workflowexecutionOption func(*WorkflowExecutionMutation)

// newWorkflowExecutionMutation creates new mutation for the WorkflowExecution entity.
func newWorkflowExecutionMutation(c config, op Op, opts ...workflowexecutionOption) *WorkflowExecutionMutation {
	m := &WorkflowExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowExecutionID sets the ID field of the mutation.
func withWorkflowExecutionID(id uuid.UUID) workflowexecutionOption {
	return func(m *WorkflowExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowExecution
		)
		m.oldValue = func(ctx context.Context) (*WorkflowExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowExecution sets the old WorkflowExecution of the mutation.
func withWorkflowExecution(node *WorkflowExecution) workflowexecutionOption {
	return func(m *WorkflowExecutionMutation) {
		m.oldValue = func(context.Context) (*WorkflowExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowExecution entities.
func (m *WorkflowExecutionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowExecutionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowExecutionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMerchantID sets the "merchant_id" field.
func (m *WorkflowExecutionMutation) SetMerchantID(u uuid.UUID) {
	m.merchant = &u
}

// MerchantID returns the value of the "merchant_id" field in the mutation.
func (m *WorkflowExecutionMutation) MerchantID() (r uuid.UUID, exists bool) {
	v := m.merchant
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchantID returns the old "merchant_id" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldMerchantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchantID: %w", err)
	}
	return oldValue.MerchantID, nil
}

// ResetMerchantID resets all changes to the "merchant_id" field.
func (m *WorkflowExecutionMutation) ResetMerchantID() {
	m.merchant = nil
}

// SetDocumentID sets the "document_id" field.
func (m *WorkflowExecutionMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *WorkflowExecutionMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *WorkflowExecutionMutation) ResetDocumentID() {
	m.document = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowExecutionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowExecutionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStage sets the "current_stage" field.
func (m *WorkflowExecutionMutation) SetCurrentStage(s string) {
	m.current_stage = &s
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *WorkflowExecutionMutation) CurrentStage() (r string, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCurrentStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (m *WorkflowExecutionMutation) ClearCurrentStage() {
	m.current_stage = nil
	m.clearedFields[workflowexecution.FieldCurrentStage] = struct{}{}
}

// CurrentStageCleared returns if the "current_stage" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) CurrentStageCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldCurrentStage]
	return ok
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *WorkflowExecutionMutation) ResetCurrentStage() {
	m.current_stage = nil
	delete(m.clearedFields, workflowexecution.FieldCurrentStage)
}

// SetStagesTotal sets the "stages_total" field.
func (m *WorkflowExecutionMutation) SetStagesTotal(i int) {
	m.stages_total = &i
	m.addstages_total = nil
}

// StagesTotal returns the value of the "stages_total" field in the mutation.
func (m *WorkflowExecutionMutation) StagesTotal() (r int, exists bool) {
	v := m.stages_total
	if v == nil {
		return
	}
	return *v, true
}

// OldStagesTotal returns the old "stages_total" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStagesTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStagesTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStagesTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStagesTotal: %w", err)
	}
	return oldValue.StagesTotal, nil
}

// AddStagesTotal adds i to the "stages_total" field.
func (m *WorkflowExecutionMutation) AddStagesTotal(i int) {
	if m.addstages_total != nil {
		*m.addstages_total += i
	} else {
		m.addstages_total = &i
	}
}

// AddedStagesTotal returns the value that was added to the "stages_total" field in this mutation.
func (m *WorkflowExecutionMutation) AddedStagesTotal() (r int, exists bool) {
	v := m.addstages_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetStagesTotal resets all changes to the "stages_total" field.
func (m *WorkflowExecutionMutation) ResetStagesTotal() {
	m.stages_total = nil
	m.addstages_total = nil
}

// SetStagesCompleted sets the "stages_completed" field.
func (m *WorkflowExecutionMutation) SetStagesCompleted(i int) {
	m.stages_completed = &i
	m.addstages_completed = nil
}

// StagesCompleted returns the value of the "stages_completed" field in the mutation.
func (m *WorkflowExecutionMutation) StagesCompleted() (r int, exists bool) {
	v := m.stages_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldStagesCompleted returns the old "stages_completed" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStagesCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStagesCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStagesCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStagesCompleted: %w", err)
	}
	return oldValue.StagesCompleted, nil
}

// AddStagesCompleted adds i to the "stages_completed" field.
func (m *WorkflowExecutionMutation) AddStagesCompleted(i int) {
	if m.addstages_completed != nil {
		*m.addstages_completed += i
	} else {
		m.addstages_completed = &i
	}
}

// AddedStagesCompleted returns the value that was added to the "stages_completed" field in this mutation.
func (m *WorkflowExecutionMutation) AddedStagesCompleted() (r int, exists bool) {
	v := m.addstages_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetStagesCompleted resets all changes to the "stages_completed" field.
func (m *WorkflowExecutionMutation) ResetStagesCompleted() {
	m.stages_completed = nil
	m.addstages_completed = nil
}

// SetProgressPercent sets the "progress_percent" field.
func (m *WorkflowExecutionMutation) SetProgressPercent(i int) {
	m.progress_percent = &i
	m.addprogress_percent = nil
}

// ProgressPercent returns the value of the "progress_percent" field in the mutation.
func (m *WorkflowExecutionMutation) ProgressPercent() (r int, exists bool) {
	v := m.progress_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressPercent returns the old "progress_percent" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldProgressPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressPercent: %w", err)
	}
	return oldValue.ProgressPercent, nil
}

// AddProgressPercent adds i to the "progress_percent" field.
func (m *WorkflowExecutionMutation) AddProgressPercent(i int) {
	if m.addprogress_percent != nil {
		*m.addprogress_percent += i
	} else {
		m.addprogress_percent = &i
	}
}

// AddedProgressPercent returns the value that was added to the "progress_percent" field in this mutation.
func (m *WorkflowExecutionMutation) AddedProgressPercent() (r int, exists bool) {
	v := m.addprogress_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgressPercent resets all changes to the "progress_percent" field.
func (m *WorkflowExecutionMutation) ResetProgressPercent() {
	m.progress_percent = nil
	m.addprogress_percent = nil
}

// SetInputData sets the "input_data" field.
func (m *WorkflowExecutionMutation) SetInputData(jm json.RawMessage) {
	m.input_data = &jm
	m.appendinput_data = nil
}

// InputData returns the value of the "input_data" field in the mutation.
func (m *WorkflowExecutionMutation) InputData() (r json.RawMessage, exists bool) {
	v := m.input_data
	if v == nil {
		return
	}
	return *v, true
}

// OldInputData returns the old "input_data" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldInputData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputData: %w", err)
	}
	return oldValue.InputData, nil
}

// AppendInputData adds jm to the "input_data" field.
func (m *WorkflowExecutionMutation) AppendInputData(jm json.RawMessage) {
	m.appendinput_data = append(m.appendinput_data, jm...)
}

// AppendedInputData returns the list of values that were appended to the "input_data" field in this mutation.
func (m *WorkflowExecutionMutation) AppendedInputData() (json.RawMessage, bool) {
	if len(m.appendinput_data) == 0 {
		return nil, false
	}
	return m.appendinput_data, true
}

// ClearInputData clears the value of the "input_data" field.
func (m *WorkflowExecutionMutation) ClearInputData() {
	m.input_data = nil
	m.appendinput_data = nil
	m.clearedFields[workflowexecution.FieldInputData] = struct{}{}
}

// InputDataCleared returns if the "input_data" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) InputDataCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldInputData]
	return ok
}

// ResetInputData resets all changes to the "input_data" field.
func (m *WorkflowExecutionMutation) ResetInputData() {
	m.input_data = nil
	m.appendinput_data = nil
	delete(m.clearedFields, workflowexecution.FieldInputData)
}

// SetStatusData sets the "status_data" field.
func (m *WorkflowExecutionMutation) SetStatusData(jm json.RawMessage) {
	m.status_data = &jm
	m.appendstatus_data = nil
}

// StatusData returns the value of the "status_data" field in the mutation.
func (m *WorkflowExecutionMutation) StatusData() (r json.RawMessage, exists bool) {
	v := m.status_data
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusData returns the old "status_data" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStatusData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusData: %w", err)
	}
	return oldValue.StatusData, nil
}

// AppendStatusData adds jm to the "status_data" field.
func (m *WorkflowExecutionMutation) AppendStatusData(jm json.RawMessage) {
	m.appendstatus_data = append(m.appendstatus_data, jm...)
}

// AppendedStatusData returns the list of values that were appended to the "status_data" field in this mutation.
func (m *WorkflowExecutionMutation) AppendedStatusData() (json.RawMessage, bool) {
	if len(m.appendstatus_data) == 0 {
		return nil, false
	}
	return m.appendstatus_data, true
}

// ClearStatusData clears the value of the "status_data" field.
func (m *WorkflowExecutionMutation) ClearStatusData() {
	m.status_data = nil
	m.appendstatus_data = nil
	m.clearedFields[workflowexecution.FieldStatusData] = struct{}{}
}

// StatusDataCleared returns if the "status_data" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) StatusDataCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldStatusData]
	return ok
}

// ResetStatusData resets all changes to the "status_data" field.
func (m *WorkflowExecutionMutation) ResetStatusData() {
	m.status_data = nil
	m.appendstatus_data = nil
	delete(m.clearedFields, workflowexecution.FieldStatusData)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflowexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflowexecution.FieldErrorMessage)
}

// SetFailedStage sets the "failed_stage" field.
func (m *WorkflowExecutionMutation) SetFailedStage(s string) {
	m.failed_stage = &s
}

// FailedStage returns the value of the "failed_stage" field in the mutation.
func (m *WorkflowExecutionMutation) FailedStage() (r string, exists bool) {
	v := m.failed_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedStage returns the old "failed_stage" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldFailedStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedStage: %w", err)
	}
	return oldValue.FailedStage, nil
}

// ClearFailedStage clears the value of the "failed_stage" field.
func (m *WorkflowExecutionMutation) ClearFailedStage() {
	m.failed_stage = nil
	m.clearedFields[workflowexecution.FieldFailedStage] = struct{}{}
}

// FailedStageCleared returns if the "failed_stage" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) FailedStageCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldFailedStage]
	return ok
}

// ResetFailedStage resets all changes to the "failed_stage" field.
func (m *WorkflowExecutionMutation) ResetFailedStage() {
	m.failed_stage = nil
	delete(m.clearedFields, workflowexecution.FieldFailedStage)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowExecutionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowExecutionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowExecutionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStageStartedAt sets the "stage_started_at" field.
func (m *WorkflowExecutionMutation) SetStageStartedAt(t time.Time) {
	m.stage_started_at = &t
}

// StageStartedAt returns the value of the "stage_started_at" field in the mutation.
func (m *WorkflowExecutionMutation) StageStartedAt() (r time.Time, exists bool) {
	v := m.stage_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStageStartedAt returns the old "stage_started_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStageStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageStartedAt: %w", err)
	}
	return oldValue.StageStartedAt, nil
}

// ClearStageStartedAt clears the value of the "stage_started_at" field.
func (m *WorkflowExecutionMutation) ClearStageStartedAt() {
	m.stage_started_at = nil
	m.clearedFields[workflowexecution.FieldStageStartedAt] = struct{}{}
}

// StageStartedAtCleared returns if the "stage_started_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) StageStartedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldStageStartedAt]
	return ok
}

// ResetStageStartedAt resets all changes to the "stage_started_at" field.
func (m *WorkflowExecutionMutation) ResetStageStartedAt() {
	m.stage_started_at = nil
	delete(m.clearedFields, workflowexecution.FieldStageStartedAt)
}

// SetStageCompletedAt sets the "stage_completed_at" field.
func (m *WorkflowExecutionMutation) SetStageCompletedAt(t time.Time) {
	m.stage_completed_at = &t
}

// StageCompletedAt returns the value of the "stage_completed_at" field in the mutation.
func (m *WorkflowExecutionMutation) StageCompletedAt() (r time.Time, exists bool) {
	v := m.stage_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStageCompletedAt returns the old "stage_completed_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStageCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageCompletedAt: %w", err)
	}
	return oldValue.StageCompletedAt, nil
}

// ClearStageCompletedAt clears the value of the "stage_completed_at" field.
func (m *WorkflowExecutionMutation) ClearStageCompletedAt() {
	m.stage_completed_at = nil
	m.clearedFields[workflowexecution.FieldStageCompletedAt] = struct{}{}
}

// StageCompletedAtCleared returns if the "stage_completed_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) StageCompletedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldStageCompletedAt]
	return ok
}

// ResetStageCompletedAt resets all changes to the "stage_completed_at" field.
func (m *WorkflowExecutionMutation) ResetStageCompletedAt() {
	m.stage_completed_at = nil
	delete(m.clearedFields, workflowexecution.FieldStageCompletedAt)
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (m *WorkflowExecutionMutation) ClearMerchant() {
	m.clearedmerchant = true
	m.clearedFields[workflowexecution.FieldMerchantID] = struct{}{}
}

// MerchantCleared reports if the "merchant" edge to the Merchant entity was cleared.
func (m *WorkflowExecutionMutation) MerchantCleared() bool {
	return m.clearedmerchant
}

// MerchantIDs returns the "merchant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MerchantID instead. It exists only for internal usage by the builders.
func (m *WorkflowExecutionMutation) MerchantIDs() (ids []uuid.UUID) {
	if id := m.merchant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMerchant resets all changes to the "merchant" edge.
func (m *WorkflowExecutionMutation) ResetMerchant() {
	m.merchant = nil
	m.clearedmerchant = false
}

// ClearDocument clears the "document" edge to the OrderDocument entity.
func (m *WorkflowExecutionMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[workflowexecution.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the OrderDocument entity was cleared.
func (m *WorkflowExecutionMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *WorkflowExecutionMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *WorkflowExecutionMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddDeadLetterIDs adds the "dead_letters" edge to the DeadLetterEntry entity by ids.
func (m *WorkflowExecutionMutation) AddDeadLetterIDs(ids ...uuid.UUID) {
	if m.dead_letters == nil {
		m.dead_letters = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.dead_letters[ids[i]] = struct{}{}
	}
}

// ClearDeadLetters clears the "dead_letters" edge to the DeadLetterEntry entity.
func (m *WorkflowExecutionMutation) ClearDeadLetters() {
	m.cleareddead_letters = true
}

// DeadLettersCleared reports if the "dead_letters" edge to the DeadLetterEntry entity was cleared.
func (m *WorkflowExecutionMutation) DeadLettersCleared() bool {
	return m.cleareddead_letters
}

// RemoveDeadLetterIDs removes the "dead_letters" edge to the DeadLetterEntry entity by IDs.
func (m *WorkflowExecutionMutation) RemoveDeadLetterIDs(ids ...uuid.UUID) {
	if m.removeddead_letters == nil {
		m.removeddead_letters = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.dead_letters, ids[i])
		m.removeddead_letters[ids[i]] = struct{}{}
	}
}

// RemovedDeadLetters returns the removed IDs of the "dead_letters" edge to the DeadLetterEntry entity.
func (m *WorkflowExecutionMutation) RemovedDeadLettersIDs() (ids []uuid.UUID) {
	for id := range m.removeddead_letters {
		ids = append(ids, id)
	}
	return
}

// DeadLettersIDs returns the "dead_letters" edge IDs in the mutation.
func (m *WorkflowExecutionMutation) DeadLettersIDs() (ids []uuid.UUID) {
	for id := range m.dead_letters {
		ids = append(ids, id)
	}
	return
}

// ResetDeadLetters resets all changes to the "dead_letters" edge.
func (m *WorkflowExecutionMutation) ResetDeadLetters() {
	m.dead_letters = nil
	m.cleareddead_letters = false
	m.removeddead_letters = nil
}

// Where appends a list predicates to the WorkflowExecutionMutation builder.
func (m *WorkflowExecutionMutation) Where(ps ...predicate.WorkflowExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowExecution).
func (m *WorkflowExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowExecutionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.merchant != nil {
		fields = append(fields, workflowexecution.FieldMerchantID)
	}
	if m.document != nil {
		fields = append(fields, workflowexecution.FieldDocumentID)
	}
	if m.status != nil {
		fields = append(fields, workflowexecution.FieldStatus)
	}
	if m.current_stage != nil {
		fields = append(fields, workflowexecution.FieldCurrentStage)
	}
	if m.stages_total != nil {
		fields = append(fields, workflowexecution.FieldStagesTotal)
	}
	if m.stages_completed != nil {
		fields = append(fields, workflowexecution.FieldStagesCompleted)
	}
	if m.progress_percent != nil {
		fields = append(fields, workflowexecution.FieldProgressPercent)
	}
	if m.input_data != nil {
		fields = append(fields, workflowexecution.FieldInputData)
	}
	if m.status_data != nil {
		fields = append(fields, workflowexecution.FieldStatusData)
	}
	if m.error_message != nil {
		fields = append(fields, workflowexecution.FieldErrorMessage)
	}
	if m.failed_stage != nil {
		fields = append(fields, workflowexecution.FieldFailedStage)
	}
	if m.created_at != nil {
		fields = append(fields, workflowexecution.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflowexecution.FieldUpdatedAt)
	}
	if m.stage_started_at != nil {
		fields = append(fields, workflowexecution.FieldStageStartedAt)
	}
	if m.stage_completed_at != nil {
		fields = append(fields, workflowexecution.FieldStageCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowexecution.FieldMerchantID:
		return m.MerchantID()
	case workflowexecution.FieldDocumentID:
		return m.DocumentID()
	case workflowexecution.FieldStatus:
		return m.Status()
	case workflowexecution.FieldCurrentStage:
		return m.CurrentStage()
	case workflowexecution.FieldStagesTotal:
		return m.StagesTotal()
	case workflowexecution.FieldStagesCompleted:
		return m.StagesCompleted()
	case workflowexecution.FieldProgressPercent:
		return m.ProgressPercent()
	case workflowexecution.FieldInputData:
		return m.InputData()
	case workflowexecution.FieldStatusData:
		return m.StatusData()
	case workflowexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case workflowexecution.FieldFailedStage:
		return m.FailedStage()
	case workflowexecution.FieldCreatedAt:
		return m.CreatedAt()
	case workflowexecution.FieldUpdatedAt:
		return m.UpdatedAt()
	case workflowexecution.FieldStageStartedAt:
		return m.StageStartedAt()
	case workflowexecution.FieldStageCompletedAt:
		return m.StageCompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowexecution.FieldMerchantID:
		return m.OldMerchantID(ctx)
	case workflowexecution.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case workflowexecution.FieldStatus:
		return m.OldStatus(ctx)
	case workflowexecution.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case workflowexecution.FieldStagesTotal:
		return m.OldStagesTotal(ctx)
	case workflowexecution.FieldStagesCompleted:
		return m.OldStagesCompleted(ctx)
	case workflowexecution.FieldProgressPercent:
		return m.OldProgressPercent(ctx)
	case workflowexecution.FieldInputData:
		return m.OldInputData(ctx)
	case workflowexecution.FieldStatusData:
		return m.OldStatusData(ctx)
	case workflowexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflowexecution.FieldFailedStage:
		return m.OldFailedStage(ctx)
	case workflowexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowexecution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case workflowexecution.FieldStageStartedAt:
		return m.OldStageStartedAt(ctx)
	case workflowexecution.FieldStageCompletedAt:
		return m.OldStageCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowexecution.FieldMerchantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchantID(v)
		return nil
	case workflowexecution.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case workflowexecution.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowexecution.FieldCurrentStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case workflowexecution.FieldStagesTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStagesTotal(v)
		return nil
	case workflowexecution.FieldStagesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStagesCompleted(v)
		return nil
	case workflowexecution.FieldProgressPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressPercent(v)
		return nil
	case workflowexecution.FieldInputData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputData(v)
		return nil
	case workflowexecution.FieldStatusData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusData(v)
		return nil
	case workflowexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflowexecution.FieldFailedStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedStage(v)
		return nil
	case workflowexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowexecution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case workflowexecution.FieldStageStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageStartedAt(v)
		return nil
	case workflowexecution.FieldStageCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addstages_total != nil {
		fields = append(fields, workflowexecution.FieldStagesTotal)
	}
	if m.addstages_completed != nil {
		fields = append(fields, workflowexecution.FieldStagesCompleted)
	}
	if m.addprogress_percent != nil {
		fields = append(fields, workflowexecution.FieldProgressPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowexecution.FieldStagesTotal:
		return m.AddedStagesTotal()
	case workflowexecution.FieldStagesCompleted:
		return m.AddedStagesCompleted()
	case workflowexecution.FieldProgressPercent:
		return m.AddedProgressPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowexecution.FieldStagesTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStagesTotal(v)
		return nil
	case workflowexecution.FieldStagesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStagesCompleted(v)
		return nil
	case workflowexecution.FieldProgressPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressPercent(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowexecution.FieldCurrentStage) {
		fields = append(fields, workflowexecution.FieldCurrentStage)
	}
	if m.FieldCleared(workflowexecution.FieldInputData) {
		fields = append(fields, workflowexecution.FieldInputData)
	}
	if m.FieldCleared(workflowexecution.FieldStatusData) {
		fields = append(fields, workflowexecution.FieldStatusData)
	}
	if m.FieldCleared(workflowexecution.FieldErrorMessage) {
		fields = append(fields, workflowexecution.FieldErrorMessage)
	}
	if m.FieldCleared(workflowexecution.FieldFailedStage) {
		fields = append(fields, workflowexecution.FieldFailedStage)
	}
	if m.FieldCleared(workflowexecution.FieldStageStartedAt) {
		fields = append(fields, workflowexecution.FieldStageStartedAt)
	}
	if m.FieldCleared(workflowexecution.FieldStageCompletedAt) {
		fields = append(fields, workflowexecution.FieldStageCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowExecutionMutation) ClearField(name string) error {
	switch name {
	case workflowexecution.FieldCurrentStage:
		m.ClearCurrentStage()
		return nil
	case workflowexecution.FieldInputData:
		m.ClearInputData()
		return nil
	case workflowexecution.FieldStatusData:
		m.ClearStatusData()
		return nil
	case workflowexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflowexecution.FieldFailedStage:
		m.ClearFailedStage()
		return nil
	case workflowexecution.FieldStageStartedAt:
		m.ClearStageStartedAt()
		return nil
	case workflowexecution.FieldStageCompletedAt:
		m.ClearStageCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowExecutionMutation) ResetField(name string) error {
	switch name {
	case workflowexecution.FieldMerchantID:
		m.ResetMerchantID()
		return nil
	case workflowexecution.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case workflowexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowexecution.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case workflowexecution.FieldStagesTotal:
		m.ResetStagesTotal()
		return nil
	case workflowexecution.FieldStagesCompleted:
		m.ResetStagesCompleted()
		return nil
	case workflowexecution.FieldProgressPercent:
		m.ResetProgressPercent()
		return nil
	case workflowexecution.FieldInputData:
		m.ResetInputData()
		return nil
	case workflowexecution.FieldStatusData:
		m.ResetStatusData()
		return nil
	case workflowexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflowexecution.FieldFailedStage:
		m.ResetFailedStage()
		return nil
	case workflowexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowexecution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case workflowexecution.FieldStageStartedAt:
		m.ResetStageStartedAt()
		return nil
	case workflowexecution.FieldStageCompletedAt:
		m.ResetStageCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.merchant != nil {
		edges = append(edges, workflowexecution.EdgeMerchant)
	}
	if m.document != nil {
		edges = append(edges, workflowexecution.EdgeDocument)
	}
	if m.dead_letters != nil {
		edges = append(edges, workflowexecution.EdgeDeadLetters)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowexecution.EdgeMerchant:
		if id := m.merchant; id != nil {
			return []ent.Value{*id}
		}
	case workflowexecution.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case workflowexecution.EdgeDeadLetters:
		ids := make([]ent.Value, 0, len(m.dead_letters))
		for id := range m.dead_letters {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddead_letters != nil {
		edges = append(edges, workflowexecution.EdgeDeadLetters)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflowexecution.EdgeDeadLetters:
		ids := make([]ent.Value, 0, len(m.removeddead_letters))
		for id := range m.removeddead_letters {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedmerchant {
		edges = append(edges, workflowexecution.EdgeMerchant)
	}
	if m.cleareddocument {
		edges = append(edges, workflowexecution.EdgeDocument)
	}
	if m.cleareddead_letters {
		edges = append(edges, workflowexecution.EdgeDeadLetters)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowexecution.EdgeMerchant:
		return m.clearedmerchant
	case workflowexecution.EdgeDocument:
		return m.cleareddocument
	case workflowexecution.EdgeDeadLetters:
		return m.cleareddead_letters
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowExecutionMutation) ClearEdge(name string) error {
	switch name {
	case workflowexecution.EdgeMerchant:
		m.ClearMerchant()
		return nil
	case workflowexecution.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowExecutionMutation) ResetEdge(name string) error {
	switch name {
	case workflowexecution.EdgeMerchant:
		m.ResetMerchant()
		return nil
	case workflowexecution.EdgeDocument:
		m.ResetDocument()
		return nil
	case workflowexecution.EdgeDeadLetters:
		m.ResetDeadLetters()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution edge %s", name)
}
