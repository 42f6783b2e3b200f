package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/gen/ent"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/repository"
)

type fakeDeadLetters struct {
	entries []*ent.DeadLetterEntry
}

func (f *fakeDeadLetters) Create(context.Context, repository.CreateDeadLetterParams) (*ent.DeadLetterEntry, bool, error) {
	return nil, false, common.ErrInvalidInput
}

func (f *fakeDeadLetters) GetByID(context.Context, uuid.UUID) (*ent.DeadLetterEntry, error) {
	return nil, common.ErrNotFound
}

func (f *fakeDeadLetters) GetByJobID(context.Context, string) (*ent.DeadLetterEntry, error) {
	return nil, common.ErrNotFound
}

func (f *fakeDeadLetters) List(_ context.Context, resolution *string, _, _ int) ([]*ent.DeadLetterEntry, int, error) {
	if resolution == nil {
		return f.entries, len(f.entries), nil
	}
	var out []*ent.DeadLetterEntry
	for _, e := range f.entries {
		if e.Resolution == *resolution {
			out = append(out, e)
		}
	}
	return out, len(out), nil
}

func (f *fakeDeadLetters) ListByWorkflow(context.Context, uuid.UUID) ([]*ent.DeadLetterEntry, error) {
	return f.entries, nil
}

func (f *fakeDeadLetters) Annotate(context.Context, uuid.UUID, string, string) (*ent.DeadLetterEntry, error) {
	return nil, common.ErrNotFound
}

func (f *fakeDeadLetters) SetResolution(context.Context, uuid.UUID, string, string) (*ent.DeadLetterEntry, error) {
	return nil, common.ErrNotFound
}

func (f *fakeDeadLetters) GetByReprocessedJobID(context.Context, string) (*ent.DeadLetterEntry, error) {
	return nil, common.ErrNotFound
}

func (f *fakeDeadLetters) StampReprocessed(context.Context, uuid.UUID, string, string) (*ent.DeadLetterEntry, error) {
	return nil, common.ErrNotFound
}

type fakeWorkflows struct {
	rows []*ent.WorkflowExecution
}

func (f *fakeWorkflows) Create(context.Context, uuid.UUID, uuid.UUID, int, json.RawMessage) (*ent.WorkflowExecution, error) {
	return nil, common.ErrInvalidInput
}

func (f *fakeWorkflows) GetByID(context.Context, uuid.UUID) (*ent.WorkflowExecution, error) {
	return nil, common.ErrNotFound
}

func (f *fakeWorkflows) ListByStatus(context.Context, string, int) ([]*ent.WorkflowExecution, error) {
	return f.rows, nil
}

func (f *fakeWorkflows) ListByMerchant(context.Context, uuid.UUID, int, int) ([]*ent.WorkflowExecution, error) {
	return f.rows, nil
}

func (f *fakeWorkflows) UpdateCAS(context.Context, uuid.UUID, []string, repository.WorkflowUpdate) (*ent.WorkflowExecution, error) {
	return nil, common.ErrConflict
}

func TestExportDeadLettersXLSX(t *testing.T) {
	notes := "asked merchant for a fresh upload"
	letters := &fakeDeadLetters{entries: []*ent.DeadLetterEntry{
		{
			ID:            uuid.New(),
			JobID:         "job-41",
			WorkflowID:    uuid.New(),
			Stage:         constants.StageSync,
			FailureReason: "platform returned 422",
			AttemptsMade:  5,
			Priority:      string(constants.PriorityNormal),
			Resolution:    string(constants.ResolutionPending),
			ReviewNotes:   &notes,
			CreatedAt:     time.Date(2026, 8, 12, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            uuid.New(),
			JobID:         "job-42",
			WorkflowID:    uuid.New(),
			Stage:         constants.StageExtract,
			FailureReason: "unreadable scan",
			AttemptsMade:  3,
			Priority:      string(constants.PriorityHigh),
			Resolution:    string(constants.ResolutionDiscard),
			CreatedAt:     time.Date(2026, 8, 13, 9, 30, 0, 0, time.UTC),
		},
	}}
	svc := NewService(&fakeWorkflows{}, letters, nil)

	out, err := svc.ExportDeadLettersXLSX(context.Background(), nil)
	if err != nil {
		t.Fatalf("ExportDeadLettersXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	const sheet = "Dead Letters"
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus 2 entries", len(rows))
	}
	if rows[0][0] != "Created" || rows[0][6] != "Failure Reason" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][3] != "job-41" {
		t.Errorf("first entry job id = %q, want job-41", rows[1][3])
	}
	if rows[1][6] != "platform returned 422" {
		t.Errorf("failure reason = %q", rows[1][6])
	}
	if rows[2][7] != string(constants.ResolutionDiscard) {
		t.Errorf("second entry resolution = %q, want discard", rows[2][7])
	}
}

func TestExportDeadLettersFiltersResolution(t *testing.T) {
	letters := &fakeDeadLetters{entries: []*ent.DeadLetterEntry{
		{ID: uuid.New(), JobID: "job-41", WorkflowID: uuid.New(), Stage: constants.StageSync, Resolution: string(constants.ResolutionPending), CreatedAt: time.Now()},
		{ID: uuid.New(), JobID: "job-42", WorkflowID: uuid.New(), Stage: constants.StageSync, Resolution: string(constants.ResolutionDiscard), CreatedAt: time.Now()},
	}}
	svc := NewService(&fakeWorkflows{}, letters, nil)

	pending := string(constants.ResolutionPending)
	out, err := svc.ExportDeadLettersXLSX(context.Background(), &pending)
	if err != nil {
		t.Fatalf("ExportDeadLettersXLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Dead Letters")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("rows = %d, want header plus 1 pending entry", len(rows))
	}
}

func TestExportWorkflowAuditXLSX(t *testing.T) {
	stage := constants.StagePersist
	errMsg := "database rejected the order"
	flows := &fakeWorkflows{rows: []*ent.WorkflowExecution{
		{
			ID:              uuid.New(),
			MerchantID:      uuid.New(),
			DocumentID:      uuid.New(),
			Status:          string(constants.WorkflowFailed),
			ProgressPercent: 33,
			FailedStage:     &stage,
			ErrorMessage:    &errMsg,
			CreatedAt:       time.Date(2026, 8, 14, 8, 0, 0, 0, time.UTC),
		},
	}}
	svc := NewService(flows, &fakeDeadLetters{}, nil)

	out, err := svc.ExportWorkflowAuditXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportWorkflowAuditXLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Workflows")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header plus 1 workflow", len(rows))
	}
	if rows[1][3] != string(constants.WorkflowFailed) {
		t.Errorf("status cell = %q, want failed", rows[1][3])
	}
	if rows[1][6] != constants.StagePersist {
		t.Errorf("failed stage cell = %q, want persist", rows[1][6])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 140); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	long := truncate("abcdefghij", 5)
	if len([]rune(long)) != 5 {
		t.Errorf("truncated length = %d, want 5", len([]rune(long)))
	}
}
