package stages

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/internal/queue"
)

type fakeExtractor struct {
	result *ExtractionResult
	err    error
	gotKey string
}

func (f *fakeExtractor) Extract(_ context.Context, _ uuid.UUID, p ExtractPayload, _ queue.ProgressReporter) (*ExtractionResult, error) {
	f.gotKey = p.StorageKey
	return f.result, f.err
}

func extractJob(t *testing.T) *queue.Job {
	t.Helper()
	payload, err := BuildPayload(constants.StageExtract, testDoc(), nil)
	if err != nil {
		t.Fatalf("BuildPayload: %v", err)
	}
	return &queue.Job{
		Stage:      constants.StageExtract,
		MerchantID: uuid.New(),
		Payload:    payload,
	}
}

func TestExtractHandlerSuccess(t *testing.T) {
	x := &fakeExtractor{result: &ExtractionResult{
		Fields:       json.RawMessage(`{"supplier_name":"Acme Supply"}`),
		SupplierName: "Acme Supply",
		Confidence:   0.93,
	}}
	handler := ExtractHandler(x)

	out, err := handler(context.Background(), extractJob(t), nil)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if x.gotKey != "uploads/po-2041.pdf" {
		t.Errorf("extractor saw storage key %q", x.gotKey)
	}
	var result ExtractionResult
	if err := json.Unmarshal(out, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if result.Confidence != 0.93 {
		t.Errorf("confidence = %v, want 0.93", result.Confidence)
	}
	if result.SupplierName != "Acme Supply" {
		t.Errorf("supplier = %q, want Acme Supply", result.SupplierName)
	}
}

func TestExtractHandlerPropagatesFailure(t *testing.T) {
	want := queue.Permanent("unsupported document format", nil)
	handler := ExtractHandler(&fakeExtractor{err: want})

	_, err := handler(context.Background(), extractJob(t), nil)
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want extractor failure", err)
	}
	if queue.AsFailure(err).Retryable {
		t.Error("permanent failure reported retryable")
	}
}

func TestHandlerRejectsMalformedPayload(t *testing.T) {
	handler := ExtractHandler(&fakeExtractor{result: &ExtractionResult{}})
	job := &queue.Job{Stage: constants.StageExtract, MerchantID: uuid.New(), Payload: json.RawMessage(`{`)}

	_, err := handler(context.Background(), job, nil)
	if err == nil {
		t.Fatal("malformed payload accepted")
	}
	if queue.AsFailure(err).Retryable {
		t.Error("malformed payload classified retryable")
	}
}

type fakeBroadcaster struct {
	calls int
}

func (f *fakeBroadcaster) Broadcast(_ context.Context, _ uuid.UUID, _ BroadcastPayload) error {
	f.calls++
	return nil
}

func TestBroadcastHandler(t *testing.T) {
	b := &fakeBroadcaster{}
	handler := BroadcastHandler(b)
	payload, err := BuildPayload(constants.StageBroadcast, testDoc(), nil)
	if err != nil {
		t.Fatalf("BuildPayload: %v", err)
	}
	job := &queue.Job{Stage: constants.StageBroadcast, MerchantID: uuid.New(), Payload: payload}

	out, err := handler(context.Background(), job, nil)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if b.calls != 1 {
		t.Errorf("broadcast calls = %d, want 1", b.calls)
	}
	if string(out) != `{}` {
		t.Errorf("result = %s, want empty object", out)
	}
}
