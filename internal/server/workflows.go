package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	orderflowpb "github.com/joseph-ayodele/orderflow/gen/proto/orderflow/v1"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/orchestrator"
	"github.com/joseph-ayodele/orderflow/internal/repository"
	"github.com/joseph-ayodele/orderflow/internal/utils"
)

type WorkflowsServer struct {
	orderflowpb.UnimplementedWorkflowsServiceServer
	orch      *orchestrator.Orchestrator
	workflows repository.WorkflowRepository
	merchants repository.MerchantRepository
	logger    *slog.Logger
}

func NewWorkflowsServer(orch *orchestrator.Orchestrator, workflows repository.WorkflowRepository, merchants repository.MerchantRepository, logger *slog.Logger) *WorkflowsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkflowsServer{orch: orch, workflows: workflows, merchants: merchants, logger: logger}
}

// CreateWorkflow registers the merchant on first contact, records the
// workflow, and enqueues its first stage.
func (s *WorkflowsServer) CreateWorkflow(ctx context.Context, req *orderflowpb.CreateWorkflowRequest) (*orderflowpb.CreateWorkflowResponse, error) {
	shop := strings.TrimSpace(req.GetShopDomain())
	if shop == "" {
		return nil, common.InvalidArgumentError("shop_domain is required")
	}
	documentID, err := uuid.Parse(req.GetDocumentId())
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}
	if strings.TrimSpace(req.GetStorageKey()) == "" {
		return nil, common.InvalidArgumentError("storage_key is required")
	}

	merchant, err := s.merchants.Ensure(ctx, shop)
	if err != nil {
		s.logger.Error("merchant ensure failed", "shop_domain", shop, "error", err)
		return nil, err
	}

	wf, err := s.orch.CreateWorkflow(ctx, merchant.ID, orchestrator.WorkflowInput{
		DocumentID:  documentID,
		Filename:    req.GetFilename(),
		ContentType: req.GetContentType(),
		StorageKey:  req.GetStorageKey(),
		Plan:        req.GetPlan(),
		Priority:    priorityFromWire(req.GetPriority()),
		Urgent:      req.GetUrgent(),
	})
	if err != nil {
		return nil, err
	}
	return &orderflowpb.CreateWorkflowResponse{Workflow: utils.ToPBWorkflow(wf)}, nil
}

func (s *WorkflowsServer) GetWorkflow(ctx context.Context, req *orderflowpb.GetWorkflowRequest) (*orderflowpb.GetWorkflowResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}
	wf, err := s.workflows.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &orderflowpb.GetWorkflowResponse{Workflow: utils.ToPBWorkflow(wf)}, nil
}

func (s *WorkflowsServer) ListWorkflows(ctx context.Context, req *orderflowpb.ListWorkflowsRequest) (*orderflowpb.ListWorkflowsResponse, error) {
	shop := strings.TrimSpace(req.GetShopDomain())
	if shop == "" {
		return nil, common.InvalidArgumentError("shop_domain is required")
	}
	merchant, err := s.merchants.GetByShopDomain(ctx, shop)
	if err != nil {
		return nil, err
	}
	limit := int(req.GetLimit())
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := int(req.GetOffset())
	if offset < 0 {
		offset = 0
	}
	list, err := s.workflows.ListByMerchant(ctx, merchant.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*orderflowpb.Workflow, 0, len(list))
	for _, wf := range list {
		out = append(out, utils.ToPBWorkflow(wf))
	}
	return &orderflowpb.ListWorkflowsResponse{Workflows: out}, nil
}

func (s *WorkflowsServer) CancelWorkflow(ctx context.Context, req *orderflowpb.CancelWorkflowRequest) (*orderflowpb.CancelWorkflowResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}
	wf, err := s.orch.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}
	return &orderflowpb.CancelWorkflowResponse{Workflow: utils.ToPBWorkflow(wf)}, nil
}

func (s *WorkflowsServer) RetryWorkflow(ctx context.Context, req *orderflowpb.RetryWorkflowRequest) (*orderflowpb.RetryWorkflowResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}
	wf, err := s.orch.Retry(ctx, id)
	if err != nil {
		return nil, err
	}
	return &orderflowpb.RetryWorkflowResponse{Workflow: utils.ToPBWorkflow(wf)}, nil
}

func (s *WorkflowsServer) ApproveWorkflow(ctx context.Context, req *orderflowpb.ApproveWorkflowRequest) (*orderflowpb.ApproveWorkflowResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}
	wf, err := s.orch.Approve(ctx, id, strings.TrimSpace(req.GetReviewedBy()))
	if err != nil {
		return nil, err
	}
	return &orderflowpb.ApproveWorkflowResponse{Workflow: utils.ToPBWorkflow(wf)}, nil
}
