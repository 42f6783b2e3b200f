package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/gen/ent"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/health"
)

// MerchantResolver maps shop domains to merchant rows.
type MerchantResolver interface {
	GetByShopDomain(ctx context.Context, shopDomain string) (*ent.Merchant, error)
}

// WorkflowReader serves the polling fallback.
type WorkflowReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.WorkflowExecution, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*ent.WorkflowExecution, error)
}

// HealthSnapshotter serves the health probe.
type HealthSnapshotter interface {
	Snapshot(ctx context.Context) health.Report
}

// Server is the merchant-facing HTTP server.
type Server struct {
	merchants MerchantResolver
	workflows WorkflowReader
	backend   Broker
	monitor   HealthSnapshotter
	heartbeat time.Duration
	logger    *slog.Logger
	httpSrv   *http.Server
}

func NewServer(addr string, merchants MerchantResolver, workflows WorkflowReader, backend Broker, monitor HealthSnapshotter, heartbeat time.Duration, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	s := &Server{
		merchants: merchants,
		workflows: workflows,
		backend:   backend,
		monitor:   monitor,
		heartbeat: heartbeat,
		logger:    logger.With("component", "gateway"),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /events", s.handleEvents)
	mux.HandleFunc("GET /workflows", s.handleListWorkflows)
	mux.HandleFunc("GET /workflows/{id}", s.handleGetWorkflow)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler { return s.httpSrv.Handler }

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("gateway listening", "addr", s.httpSrv.Addr)
	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains open requests; SSE streams end when their client contexts
// are cancelled by the server closing listeners.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// workflowView is the polling-fallback projection of a workflow row. It
// carries the same merchant-facing fields the event stream does, never the
// internal status blob.
type workflowView struct {
	ID              uuid.UUID `json:"id"`
	DocumentID      uuid.UUID `json:"document_id"`
	Status          string    `json:"status"`
	CurrentStage    *string   `json:"current_stage,omitempty"`
	StagesTotal     int       `json:"stages_total"`
	StagesCompleted int       `json:"stages_completed"`
	ProgressPercent int       `json:"progress_percent"`
	Message         string    `json:"message,omitempty"`
	ErrorMessage    *string   `json:"error_message,omitempty"`
	CanRetry        bool      `json:"can_retry"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toView(wf *ent.WorkflowExecution) workflowView {
	view := workflowView{
		ID:              wf.ID,
		DocumentID:      wf.DocumentID,
		Status:          wf.Status,
		CurrentStage:    wf.CurrentStage,
		StagesTotal:     wf.StagesTotal,
		StagesCompleted: wf.StagesCompleted,
		ProgressPercent: wf.ProgressPercent,
		ErrorMessage:    wf.ErrorMessage,
		CreatedAt:       wf.CreatedAt,
		UpdatedAt:       wf.UpdatedAt,
	}
	var sd struct {
		Message  string `json:"message"`
		CanRetry bool   `json:"can_retry"`
	}
	if len(wf.StatusData) > 0 && json.Unmarshal(wf.StatusData, &sd) == nil {
		view.Message = sd.Message
		view.CanRetry = sd.CanRetry
	}
	return view
}

func (s *Server) handleGetWorkflow(w http.ResponseWriter, r *http.Request) {
	merchant, ok := s.resolveMerchant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "bad workflow id", http.StatusBadRequest)
		return
	}
	wf, err := s.workflows.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			http.Error(w, "workflow not found", http.StatusNotFound)
			return
		}
		s.logger.Error("workflow lookup failed", "workflow_id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	// merchants only ever see their own workflows
	if wf.MerchantID != merchant {
		http.Error(w, "workflow not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toView(wf))
}

func (s *Server) handleListWorkflows(w http.ResponseWriter, r *http.Request) {
	merchant, ok := s.resolveMerchant(w, r)
	if !ok {
		return
	}
	limit := queryInt(r, "limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	list, err := s.workflows.ListByMerchant(r.Context(), merchant, limit, offset)
	if err != nil {
		s.logger.Error("workflow list failed", "merchant_id", merchant, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	views := make([]workflowView, 0, len(list))
	for _, wf := range list {
		views = append(views, toView(wf))
	}
	writeJSON(w, http.StatusOK, map[string]any{"workflows": views})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	report := s.monitor.Snapshot(r.Context())
	code := http.StatusOK
	if report.Status == health.StatusCritical {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, report)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
