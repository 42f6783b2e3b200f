package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	orderflowpb "github.com/joseph-ayodele/orderflow/gen/proto/orderflow/v1"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/deadletter"
	"github.com/joseph-ayodele/orderflow/internal/export"
	"github.com/joseph-ayodele/orderflow/internal/utils"
)

type DeadLettersServer struct {
	orderflowpb.UnimplementedDeadLettersServiceServer
	svc      *deadletter.Service
	exporter *export.Service
	logger   *slog.Logger
}

func NewDeadLettersServer(svc *deadletter.Service, exporter *export.Service, logger *slog.Logger) *DeadLettersServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeadLettersServer{svc: svc, exporter: exporter, logger: logger}
}

func (s *DeadLettersServer) ListDeadLetters(ctx context.Context, req *orderflowpb.ListDeadLettersRequest) (*orderflowpb.ListDeadLettersResponse, error) {
	var resolution *string
	if r := strings.TrimSpace(req.GetResolution()); r != "" {
		resolution = &r
	}
	entries, total, err := s.svc.List(ctx, resolution, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		return nil, err
	}
	out := make([]*orderflowpb.DeadLetter, 0, len(entries))
	for _, e := range entries {
		out = append(out, utils.ToPBDeadLetter(e))
	}
	return &orderflowpb.ListDeadLettersResponse{Entries: out, Total: int32(total)}, nil
}

func (s *DeadLettersServer) GetDeadLetter(ctx context.Context, req *orderflowpb.GetDeadLetterRequest) (*orderflowpb.GetDeadLetterResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}
	entry, err := s.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &orderflowpb.GetDeadLetterResponse{Entry: utils.ToPBDeadLetter(entry)}, nil
}

func (s *DeadLettersServer) AnnotateDeadLetter(ctx context.Context, req *orderflowpb.AnnotateDeadLetterRequest) (*orderflowpb.AnnotateDeadLetterResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}
	entry, err := s.svc.Annotate(ctx, id, req.GetNotes(), strings.TrimSpace(req.GetReviewedBy()))
	if err != nil {
		return nil, err
	}
	return &orderflowpb.AnnotateDeadLetterResponse{Entry: utils.ToPBDeadLetter(entry)}, nil
}

func (s *DeadLettersServer) DiscardDeadLetter(ctx context.Context, req *orderflowpb.DiscardDeadLetterRequest) (*orderflowpb.DiscardDeadLetterResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}
	entry, err := s.svc.Discard(ctx, id, strings.TrimSpace(req.GetReviewedBy()))
	if err != nil {
		return nil, err
	}
	return &orderflowpb.DiscardDeadLetterResponse{Entry: utils.ToPBDeadLetter(entry)}, nil
}

func (s *DeadLettersServer) ReprocessDeadLetter(ctx context.Context, req *orderflowpb.ReprocessDeadLetterRequest) (*orderflowpb.ReprocessDeadLetterResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}
	entry, err := s.svc.Reprocess(ctx, id, strings.TrimSpace(req.GetReviewedBy()))
	if err != nil {
		return nil, err
	}
	return &orderflowpb.ReprocessDeadLetterResponse{Entry: utils.ToPBDeadLetter(entry)}, nil
}

func (s *DeadLettersServer) ReprocessDeadLettersBulk(ctx context.Context, req *orderflowpb.ReprocessDeadLettersBulkRequest) (*orderflowpb.ReprocessDeadLettersBulkResponse, error) {
	ids := make([]uuid.UUID, 0, len(req.GetIds()))
	for _, raw := range req.GetIds() {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("bad entry id %q", raw)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, common.InvalidArgumentError("ids must not be empty")
	}

	results := s.svc.ReprocessBulk(ctx, ids, strings.TrimSpace(req.GetReviewedBy()))
	out := make([]*orderflowpb.ReprocessDeadLettersBulkResponse_Result, 0, len(results))
	for _, r := range results {
		pb := &orderflowpb.ReprocessDeadLettersBulkResponse_Result{
			EntryId:  r.EntryID.String(),
			NewJobId: r.NewJobID,
		}
		if r.Err != nil {
			pb.Error = r.Err.Error()
		}
		out = append(out, pb)
	}
	return &orderflowpb.ReprocessDeadLettersBulkResponse{Results: out}, nil
}

func (s *DeadLettersServer) ExportDeadLetters(ctx context.Context, req *orderflowpb.ExportDeadLettersRequest) (*orderflowpb.ExportDeadLettersResponse, error) {
	var resolution *string
	if r := strings.TrimSpace(req.GetResolution()); r != "" {
		resolution = &r
	}
	xlsx, err := s.exporter.ExportDeadLettersXLSX(ctx, resolution)
	if err != nil {
		s.logger.Error("dead letter export failed", "error", err)
		return nil, common.InternalError("export failed")
	}
	return &orderflowpb.ExportDeadLettersResponse{Xlsx: xlsx}, nil
}
