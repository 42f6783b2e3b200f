package repository

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/gen/ent"
	"github.com/joseph-ayodele/orderflow/internal/common"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	client, err := OpenSQLite("file::memory:?_pragma=foreign_keys(1)", testLogger())
	if err != nil {
		t.Fatalf("open embedded database: %v", err)
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type seeded struct {
	merchant *ent.Merchant
	document *ent.OrderDocument
}

func seedMerchantAndDocument(t *testing.T, client *ent.Client, shop string) seeded {
	t.Helper()
	ctx := context.Background()
	merchants := NewMerchantRepository(client, testLogger())
	documents := NewDocumentRepository(client, testLogger())

	m, err := merchants.Ensure(ctx, shop)
	if err != nil {
		t.Fatalf("ensure merchant: %v", err)
	}
	hash := sha256.Sum256([]byte(shop + "/po-2041.pdf"))
	doc, err := documents.Create(ctx, m.ID, "po-2041.pdf", "application/pdf", "uploads/po-2041.pdf", 2048, hash[:], time.Now().UTC())
	if err != nil {
		t.Fatalf("create document: %v", err)
	}
	return seeded{merchant: m, document: doc}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestMerchantEnsureIdempotent(t *testing.T) {
	client := openTestClient(t)
	merchants := NewMerchantRepository(client, testLogger())
	ctx := context.Background()

	first, err := merchants.Ensure(ctx, "acme.example.com")
	if err != nil {
		t.Fatalf("first Ensure: %v", err)
	}
	second, err := merchants.Ensure(ctx, "acme.example.com")
	if err != nil {
		t.Fatalf("second Ensure: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("Ensure created a second row: %s vs %s", first.ID, second.ID)
	}
}

func TestDocumentUpsertByHash(t *testing.T) {
	client := openTestClient(t)
	documents := NewDocumentRepository(client, testLogger())
	merchants := NewMerchantRepository(client, testLogger())
	ctx := context.Background()

	a, err := merchants.Ensure(ctx, "acme.example.com")
	if err != nil {
		t.Fatalf("ensure merchant: %v", err)
	}
	b, err := merchants.Ensure(ctx, "globex.example.com")
	if err != nil {
		t.Fatalf("ensure merchant: %v", err)
	}

	hash := sha256.Sum256([]byte("order contents"))
	now := time.Now().UTC()

	doc, existed, err := documents.UpsertByHash(ctx, a.ID, "po-1.pdf", "application/pdf", "uploads/po-1.pdf", 100, hash[:], now)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if existed {
		t.Error("first upsert reported existing row")
	}

	again, existed, err := documents.UpsertByHash(ctx, a.ID, "po-1-copy.pdf", "application/pdf", "uploads/po-1-copy.pdf", 100, hash[:], now)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if !existed {
		t.Error("duplicate content not detected")
	}
	if again.ID != doc.ID {
		t.Errorf("dedup returned different row: %s vs %s", again.ID, doc.ID)
	}

	_, existed, err = documents.UpsertByHash(ctx, b.ID, "po-1.pdf", "application/pdf", "uploads/po-1.pdf", 100, hash[:], now)
	if err != nil {
		t.Fatalf("other merchant upsert: %v", err)
	}
	if existed {
		t.Error("dedup crossed merchant boundary")
	}
}

func TestWorkflowCreateDefaults(t *testing.T) {
	client := openTestClient(t)
	s := seedMerchantAndDocument(t, client, "acme.example.com")
	workflows := NewWorkflowRepository(client, testLogger())
	ctx := context.Background()

	wf, err := workflows.Create(ctx, s.merchant.ID, s.document.ID, 3, json.RawMessage(`{"plan":["extract","persist","sync"]}`))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if wf.Status != string(constants.WorkflowPending) {
		t.Errorf("status = %q, want pending", wf.Status)
	}
	if wf.ProgressPercent != 0 || wf.StagesCompleted != 0 {
		t.Errorf("progress = %d/%d, want 0/0", wf.StagesCompleted, wf.ProgressPercent)
	}
	if wf.CurrentStage != nil {
		t.Errorf("current stage = %v, want nil", *wf.CurrentStage)
	}
	if wf.StagesTotal != 3 {
		t.Errorf("stages total = %d, want 3", wf.StagesTotal)
	}
}

func TestWorkflowUpdateCAS(t *testing.T) {
	client := openTestClient(t)
	s := seedMerchantAndDocument(t, client, "acme.example.com")
	workflows := NewWorkflowRepository(client, testLogger())
	ctx := context.Background()

	wf, err := workflows.Create(ctx, s.merchant.ID, s.document.ID, 3, json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := workflows.UpdateCAS(ctx, wf.ID,
		[]string{string(constants.WorkflowPending)},
		WorkflowUpdate{
			Status:       strPtr(string(constants.WorkflowProcessing)),
			CurrentStage: strPtr(constants.StageExtract),
		})
	if err != nil {
		t.Fatalf("UpdateCAS: %v", err)
	}
	if updated.Status != string(constants.WorkflowProcessing) {
		t.Errorf("status = %q, want processing", updated.Status)
	}
	if updated.CurrentStage == nil || *updated.CurrentStage != constants.StageExtract {
		t.Errorf("current stage = %v, want extract", updated.CurrentStage)
	}

	// predicate no longer matches
	_, err = workflows.UpdateCAS(ctx, wf.ID,
		[]string{string(constants.WorkflowPending)},
		WorkflowUpdate{Status: strPtr(string(constants.WorkflowCancelled))})
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("stale CAS err = %v, want ErrConflict", err)
	}

	got, err := workflows.GetByID(ctx, wf.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != string(constants.WorkflowProcessing) {
		t.Errorf("status after rejected CAS = %q, want processing", got.Status)
	}
}

func TestWorkflowUpdateCASClearsFields(t *testing.T) {
	client := openTestClient(t)
	s := seedMerchantAndDocument(t, client, "acme.example.com")
	workflows := NewWorkflowRepository(client, testLogger())
	ctx := context.Background()

	wf, err := workflows.Create(ctx, s.merchant.ID, s.document.ID, 3, json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = workflows.UpdateCAS(ctx, wf.ID,
		[]string{string(constants.WorkflowPending)},
		WorkflowUpdate{
			Status:       strPtr(string(constants.WorkflowFailed)),
			ErrorMessage: strPtr("extraction model rejected the document"),
			FailedStage:  strPtr(constants.StageExtract),
		})
	if err != nil {
		t.Fatalf("fail transition: %v", err)
	}

	reopened, err := workflows.UpdateCAS(ctx, wf.ID,
		[]string{string(constants.WorkflowFailed)},
		WorkflowUpdate{
			Status:           strPtr(string(constants.WorkflowProcessing)),
			CurrentStage:     strPtr(constants.StageExtract),
			StagesCompleted:  intPtr(0),
			ProgressPercent:  intPtr(0),
			ClearError:       true,
			ClearFailedStage: true,
		})
	if err != nil {
		t.Fatalf("reopen transition: %v", err)
	}
	if reopened.ErrorMessage != nil {
		t.Errorf("error message = %q, want cleared", *reopened.ErrorMessage)
	}
	if reopened.FailedStage != nil {
		t.Errorf("failed stage = %q, want cleared", *reopened.FailedStage)
	}
}

func TestWorkflowListQueries(t *testing.T) {
	client := openTestClient(t)
	a := seedMerchantAndDocument(t, client, "acme.example.com")
	b := seedMerchantAndDocument(t, client, "globex.example.com")
	workflows := NewWorkflowRepository(client, testLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := workflows.Create(ctx, a.merchant.ID, a.document.ID, 3, json.RawMessage(`{}`)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if _, err := workflows.Create(ctx, b.merchant.ID, b.document.ID, 3, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	pending, err := workflows.ListByStatus(ctx, string(constants.WorkflowPending), 10)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(pending) != 4 {
		t.Errorf("pending rows = %d, want 4", len(pending))
	}

	mine, err := workflows.ListByMerchant(ctx, a.merchant.ID, 2, 0)
	if err != nil {
		t.Fatalf("ListByMerchant: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("first page = %d rows, want 2", len(mine))
	}
	rest, err := workflows.ListByMerchant(ctx, a.merchant.ID, 2, 2)
	if err != nil {
		t.Fatalf("ListByMerchant offset: %v", err)
	}
	if len(rest) != 1 {
		t.Errorf("second page = %d rows, want 1", len(rest))
	}
}

func TestDeadLetterCreateIdempotent(t *testing.T) {
	client := openTestClient(t)
	s := seedMerchantAndDocument(t, client, "acme.example.com")
	workflows := NewWorkflowRepository(client, testLogger())
	letters := NewDeadLetterRepository(client, testLogger())
	ctx := context.Background()

	wf, err := workflows.Create(ctx, s.merchant.ID, s.document.ID, 3, json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("Create workflow: %v", err)
	}

	params := CreateDeadLetterParams{
		JobID:         "job-41",
		WorkflowID:    wf.ID,
		Stage:         constants.StageSync,
		Payload:       json.RawMessage(`{"document_id":"x"}`),
		FailureReason: "platform returned 422",
		AttemptsMade:  5,
		Priority:      string(constants.PriorityNormal),
	}
	entry, created, err := letters.Create(ctx, params)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created {
		t.Error("first create reported existing entry")
	}
	if entry.Resolution != string(constants.ResolutionPending) {
		t.Errorf("resolution = %q, want pending", entry.Resolution)
	}

	again, created, err := letters.Create(ctx, params)
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if created {
		t.Error("duplicate job id created a second entry")
	}
	if again.ID != entry.ID {
		t.Errorf("duplicate returned different entry: %s vs %s", again.ID, entry.ID)
	}
}

func TestDeadLetterReviewFlow(t *testing.T) {
	client := openTestClient(t)
	s := seedMerchantAndDocument(t, client, "acme.example.com")
	workflows := NewWorkflowRepository(client, testLogger())
	letters := NewDeadLetterRepository(client, testLogger())
	ctx := context.Background()

	wf, err := workflows.Create(ctx, s.merchant.ID, s.document.ID, 3, json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("Create workflow: %v", err)
	}
	entry, _, err := letters.Create(ctx, CreateDeadLetterParams{
		JobID:         "job-42",
		WorkflowID:    wf.ID,
		Stage:         constants.StageExtract,
		Payload:       json.RawMessage(`{}`),
		FailureReason: "unreadable scan",
		AttemptsMade:  3,
		Priority:      string(constants.PriorityNormal),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	annotated, err := letters.Annotate(ctx, entry.ID, "asked merchant for a fresh upload", "ops@acme")
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if annotated.ReviewNotes == nil || *annotated.ReviewNotes == "" {
		t.Error("review notes not stored")
	}
	if annotated.Resolution != string(constants.ResolutionPending) {
		t.Errorf("resolution after annotate = %q, want pending", annotated.Resolution)
	}

	resolved, err := letters.SetResolution(ctx, entry.ID, string(constants.ResolutionReprocess), "ops@acme")
	if err != nil {
		t.Fatalf("SetResolution: %v", err)
	}
	if resolved.Resolution != string(constants.ResolutionReprocess) {
		t.Errorf("resolution = %q, want reprocess", resolved.Resolution)
	}
	if resolved.ReviewedAt == nil {
		t.Error("reviewed_at not stamped")
	}

	stamped, err := letters.StampReprocessed(ctx, entry.ID, "job-42-retry", "ops@acme")
	if err != nil {
		t.Fatalf("StampReprocessed: %v", err)
	}
	if stamped.ReprocessedAsJobID == nil || *stamped.ReprocessedAsJobID != "job-42-retry" {
		t.Errorf("reprocessed job id = %v, want job-42-retry", stamped.ReprocessedAsJobID)
	}
	back, err := letters.GetByReprocessedJobID(ctx, "job-42-retry")
	if err != nil {
		t.Fatalf("GetByReprocessedJobID: %v", err)
	}
	if back.ID != entry.ID {
		t.Errorf("lookup by reprocessed job id found %s, want %s", back.ID, entry.ID)
	}

	pending := string(constants.ResolutionPending)
	entries, total, err := letters.List(ctx, &pending, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 0 || len(entries) != 0 {
		t.Errorf("pending list = %d entries (total %d), want none", len(entries), total)
	}

	all, total, err := letters.List(ctx, nil, 10, 0)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if total != 1 || len(all) != 1 {
		t.Errorf("full list = %d entries (total %d), want 1", len(all), total)
	}
}
