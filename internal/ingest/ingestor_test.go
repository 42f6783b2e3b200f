package ingest

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/gen/ent"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/orchestrator"
)

type docKey struct {
	merchant uuid.UUID
	hash     string
}

type fakeDocuments struct {
	mu   sync.Mutex
	docs map[docKey]*ent.OrderDocument
}

func newFakeDocuments() *fakeDocuments {
	return &fakeDocuments{docs: make(map[docKey]*ent.OrderDocument)}
}

func (f *fakeDocuments) GetByID(_ context.Context, id uuid.UUID) (*ent.OrderDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, doc := range f.docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeDocuments) GetByMerchantAndHash(_ context.Context, merchantID uuid.UUID, hash []byte) (*ent.OrderDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[docKey{merchantID, string(hash)}]
	if !ok {
		return nil, common.ErrNotFound
	}
	return doc, nil
}

func (f *fakeDocuments) Create(_ context.Context, merchantID uuid.UUID, filename, contentType, storageKey string, size int, hash []byte, uploadedAt time.Time) (*ent.OrderDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc := &ent.OrderDocument{
		ID:          uuid.New(),
		MerchantID:  merchantID,
		Filename:    filename,
		ContentType: contentType,
		StorageKey:  storageKey,
		FileSize:    size,
		ContentHash: bytes.Clone(hash),
		UploadedAt:  uploadedAt,
	}
	f.docs[docKey{merchantID, string(hash)}] = doc
	return doc, nil
}

func (f *fakeDocuments) UpsertByHash(ctx context.Context, merchantID uuid.UUID, filename, contentType, storageKey string, size int, hash []byte, uploadedAt time.Time) (*ent.OrderDocument, bool, error) {
	if existing, err := f.GetByMerchantAndHash(ctx, merchantID, hash); err == nil {
		return existing, true, nil
	}
	doc, err := f.Create(ctx, merchantID, filename, contentType, storageKey, size, hash, uploadedAt)
	return doc, false, err
}

type fakeStarter struct {
	mu     sync.Mutex
	inputs []orchestrator.WorkflowInput
}

func (f *fakeStarter) CreateWorkflow(_ context.Context, _ uuid.UUID, input orchestrator.WorkflowInput) (*ent.WorkflowExecution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, input)
	return &ent.WorkflowExecution{ID: uuid.New(), DocumentID: input.DocumentID, Status: string(constants.WorkflowPending)}, nil
}

func (f *fakeStarter) started() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inputs)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestIngestPathStartsWorkflow(t *testing.T) {
	docs := newFakeDocuments()
	starter := &fakeStarter{}
	ing := NewFSIngestor(docs, starter, constants.PriorityBatch, nil)

	dir := t.TempDir()
	path := writeFile(t, dir, "po-2041.pdf", "order contents")

	res, err := ing.IngestPath(context.Background(), uuid.New(), path)
	if err != nil {
		t.Fatalf("IngestPath: %v", err)
	}
	if res.Deduplicated {
		t.Error("fresh file reported deduplicated")
	}
	if res.WorkflowID == "" {
		t.Error("no workflow started")
	}
	if res.HashHex == "" {
		t.Error("content hash missing")
	}
	if starter.started() != 1 {
		t.Fatalf("workflows started = %d, want 1", starter.started())
	}
	input := starter.inputs[0]
	if input.Filename != "po-2041.pdf" {
		t.Errorf("filename = %q, want po-2041.pdf", input.Filename)
	}
	if input.ContentType != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", input.ContentType)
	}
	if input.Priority != constants.PriorityBatch {
		t.Errorf("priority = %v, want batch", input.Priority)
	}
}

func TestIngestPathDeduplicatesByContent(t *testing.T) {
	docs := newFakeDocuments()
	starter := &fakeStarter{}
	ing := NewFSIngestor(docs, starter, constants.PriorityBatch, nil)
	merchant := uuid.New()
	ctx := context.Background()

	dir := t.TempDir()
	first := writeFile(t, dir, "po-2041.pdf", "same bytes")
	second := writeFile(t, dir, "po-2041-copy.pdf", "same bytes")

	if _, err := ing.IngestPath(ctx, merchant, first); err != nil {
		t.Fatalf("first IngestPath: %v", err)
	}
	res, err := ing.IngestPath(ctx, merchant, second)
	if err != nil {
		t.Fatalf("second IngestPath: %v", err)
	}
	if !res.Deduplicated {
		t.Error("identical content not deduplicated")
	}
	if res.WorkflowID != "" {
		t.Error("duplicate started a workflow")
	}
	if starter.started() != 1 {
		t.Errorf("workflows started = %d, want 1", starter.started())
	}
}

func TestIngestPathSameContentDifferentMerchants(t *testing.T) {
	docs := newFakeDocuments()
	starter := &fakeStarter{}
	ing := NewFSIngestor(docs, starter, constants.PriorityBatch, nil)
	ctx := context.Background()

	dir := t.TempDir()
	path := writeFile(t, dir, "po-2041.pdf", "shared supplier export")

	if _, err := ing.IngestPath(ctx, uuid.New(), path); err != nil {
		t.Fatalf("first merchant: %v", err)
	}
	res, err := ing.IngestPath(ctx, uuid.New(), path)
	if err != nil {
		t.Fatalf("second merchant: %v", err)
	}
	if res.Deduplicated {
		t.Error("dedup crossed merchant boundary")
	}
	if starter.started() != 2 {
		t.Errorf("workflows started = %d, want 2", starter.started())
	}
}

func TestIngestPathUnsupportedType(t *testing.T) {
	ing := NewFSIngestor(newFakeDocuments(), &fakeStarter{}, constants.PriorityBatch, nil)

	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "not a document")

	if _, err := ing.IngestPath(context.Background(), uuid.New(), path); err == nil {
		t.Fatal("unsupported file type accepted")
	}
}

func TestIngestDirectory(t *testing.T) {
	docs := newFakeDocuments()
	starter := &fakeStarter{}
	ing := NewFSIngestor(docs, starter, constants.PriorityBatch, nil)
	merchant := uuid.New()

	dir := t.TempDir()
	writeFile(t, dir, "po-1.pdf", "order one")
	writeFile(t, dir, "po-2.jpg", "order two")
	writeFile(t, dir, "po-1-copy.pdf", "order one")
	writeFile(t, dir, "readme.txt", "ignored")
	writeFile(t, dir, ".partial.pdf", "hidden upload in flight")

	results, stats, err := ing.IngestDirectory(context.Background(), merchant, dir, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if stats.Matched != 3 {
		t.Errorf("matched = %d, want 3", stats.Matched)
	}
	if stats.Succeeded != 3 {
		t.Errorf("succeeded = %d, want 3", stats.Succeeded)
	}
	if stats.Deduplicated != 1 {
		t.Errorf("deduplicated = %d, want 1", stats.Deduplicated)
	}
	if stats.Failed != 0 {
		t.Errorf("failed = %d, want 0", stats.Failed)
	}
	if len(results) != 3 {
		t.Errorf("len(results) = %d, want 3", len(results))
	}
	if starter.started() != 2 {
		t.Errorf("workflows started = %d, want 2", starter.started())
	}
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	ing := NewFSIngestor(newFakeDocuments(), &fakeStarter{}, constants.PriorityBatch, nil)
	if _, _, err := ing.IngestDirectory(context.Background(), uuid.New(), "  ", true); err == nil {
		t.Fatal("blank root accepted")
	}
}
