package gateway

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/gen/ent"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/events"
	"github.com/joseph-ayodele/orderflow/internal/health"
	"github.com/joseph-ayodele/orderflow/internal/queue"
)

type fakeMerchants struct {
	byShop map[string]*ent.Merchant
}

func (f *fakeMerchants) GetByShopDomain(_ context.Context, shop string) (*ent.Merchant, error) {
	m, ok := f.byShop[shop]
	if !ok {
		return nil, common.ErrNotFound
	}
	return m, nil
}

type fakeWorkflows struct {
	rows map[uuid.UUID]*ent.WorkflowExecution
}

func (f *fakeWorkflows) GetByID(_ context.Context, id uuid.UUID) (*ent.WorkflowExecution, error) {
	wf, ok := f.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return wf, nil
}

func (f *fakeWorkflows) ListByMerchant(_ context.Context, merchantID uuid.UUID, limit, offset int) ([]*ent.WorkflowExecution, error) {
	var out []*ent.WorkflowExecution
	for _, wf := range f.rows {
		if wf.MerchantID == merchantID {
			out = append(out, wf)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeMonitor struct {
	report health.Report
}

func (f *fakeMonitor) Snapshot(context.Context) health.Report { return f.report }

type fixture struct {
	server   *Server
	backend  *queue.MemoryBackend
	merchant uuid.UUID
	flows    *fakeWorkflows
	monitor  *fakeMonitor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	merchantID := uuid.New()
	merchants := &fakeMerchants{byShop: map[string]*ent.Merchant{
		"acme.example.com": {ID: merchantID},
	}}
	flows := &fakeWorkflows{rows: make(map[uuid.UUID]*ent.WorkflowExecution)}
	monitor := &fakeMonitor{report: health.Report{Status: health.StatusHealthy}}
	backend := queue.NewMemoryBackend()
	t.Cleanup(func() { _ = backend.Close() })
	srv := NewServer("127.0.0.1:0", merchants, flows, backend, monitor, 0, nil)
	return &fixture{server: srv, backend: backend, merchant: merchantID, flows: flows, monitor: monitor}
}

func (f *fixture) addWorkflow(merchantID uuid.UUID, status string, statusData string) *ent.WorkflowExecution {
	stage := "extract"
	wf := &ent.WorkflowExecution{
		ID:              uuid.New(),
		MerchantID:      merchantID,
		DocumentID:      uuid.New(),
		Status:          status,
		CurrentStage:    &stage,
		StagesTotal:     3,
		StagesCompleted: 1,
		ProgressPercent: 33,
		StatusData:      json.RawMessage(statusData),
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	f.flows.rows[wf.ID] = wf
	return wf
}

func TestListWorkflowsRequiresShop(t *testing.T) {
	f := newFixture(t)
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workflows", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestListWorkflowsUnknownShop(t *testing.T) {
	f := newFixture(t)
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workflows?shop=nobody.example.com", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestListWorkflowsScopedToMerchant(t *testing.T) {
	f := newFixture(t)
	mine := f.addWorkflow(f.merchant, "processing", `{"message":"Extracting order details"}`)
	f.addWorkflow(uuid.New(), "completed", `{}`)

	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workflows?shop=acme.example.com", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Workflows []workflowView `json:"workflows"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Workflows) != 1 {
		t.Fatalf("len(workflows) = %d, want 1", len(body.Workflows))
	}
	got := body.Workflows[0]
	if got.ID != mine.ID {
		t.Errorf("id = %s, want %s", got.ID, mine.ID)
	}
	if got.Message != "Extracting order details" {
		t.Errorf("message = %q, want extraction message", got.Message)
	}
	if got.ProgressPercent != 33 {
		t.Errorf("progress = %d, want 33", got.ProgressPercent)
	}
}

func TestGetWorkflow(t *testing.T) {
	f := newFixture(t)
	wf := f.addWorkflow(f.merchant, "failed", `{"message":"We could not read this document.","can_retry":true}`)

	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workflows/"+wf.ID.String()+"?shop=acme.example.com", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var view workflowView
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.Status != "failed" {
		t.Errorf("status = %q, want failed", view.Status)
	}
	if !view.CanRetry {
		t.Error("can_retry = false, want true")
	}
	if view.Message == "" {
		t.Error("message empty, want merchant-facing failure text")
	}
}

func TestGetWorkflowBadID(t *testing.T) {
	f := newFixture(t)
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workflows/not-a-uuid?shop=acme.example.com", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetWorkflowNotFound(t *testing.T) {
	f := newFixture(t)
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workflows/"+uuid.NewString()+"?shop=acme.example.com", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGetForeignWorkflowHidden(t *testing.T) {
	f := newFixture(t)
	other := f.addWorkflow(uuid.New(), "completed", `{}`)

	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workflows/"+other.ID.String()+"?shop=acme.example.com", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("healthy status = %d, want %d", rec.Code, http.StatusOK)
	}

	f.monitor.report = health.Report{Status: health.StatusCritical}
	rec = httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("critical status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestEventStreamDeliversNamedEvents(t *testing.T) {
	f := newFixture(t)
	ts := httptest.NewServer(f.server.Handler())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/events?shop=acme.example.com", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type = %q, want text/event-stream", ct)
	}

	ev := events.Event{
		Type:       events.TypeProgress,
		WorkflowID: uuid.New(),
		MerchantID: f.merchant,
		Percent:    33,
		Message:    "Extracting order details",
		Timestamp:  time.Now().UTC(),
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	if err := f.backend.Publish(context.Background(), events.Channel(f.merchant), payload); err != nil {
		t.Fatalf("publish: %v", err)
	}

	scanner := bufio.NewScanner(resp.Body)
	var eventName, data string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			eventName = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
		if eventName != "" && data != "" {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if eventName != string(events.TypeProgress) {
		t.Errorf("event name = %q, want %q", eventName, events.TypeProgress)
	}
	var got events.Event
	if err := json.Unmarshal([]byte(data), &got); err != nil {
		t.Fatalf("decode event payload: %v", err)
	}
	if got.Percent != 33 || got.Message != ev.Message {
		t.Errorf("event = %+v, want percent 33 with progress message", got)
	}
}

func TestEventStreamUnknownShop(t *testing.T) {
	f := newFixture(t)
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events?shop=nobody.example.com", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
