package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/joseph-ayodele/orderflow/constants"
	orderflowpb "github.com/joseph-ayodele/orderflow/gen/proto/orderflow/v1"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/health"
)

type AdminServer struct {
	orderflowpb.UnimplementedAdminServiceServer
	monitor *health.Monitor
	logger  *slog.Logger
}

func NewAdminServer(monitor *health.Monitor, logger *slog.Logger) *AdminServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminServer{monitor: monitor, logger: logger}
}

func (s *AdminServer) GetHealth(ctx context.Context, _ *orderflowpb.GetHealthRequest) (*orderflowpb.GetHealthResponse, error) {
	report := s.monitor.Snapshot(ctx)
	return &orderflowpb.GetHealthResponse{
		Status:          report.Status,
		BackendHealthy:  report.BackendHealthy,
		DatabaseHealthy: report.DatabaseHealthy,
		Queues:          toPBQueues(report.Queues),
	}, nil
}

func (s *AdminServer) ListQueues(ctx context.Context, _ *orderflowpb.ListQueuesRequest) (*orderflowpb.ListQueuesResponse, error) {
	report := s.monitor.Snapshot(ctx)
	return &orderflowpb.ListQueuesResponse{Queues: toPBQueues(report.Queues)}, nil
}

func (s *AdminServer) ListJobs(ctx context.Context, req *orderflowpb.ListJobsRequest) (*orderflowpb.ListJobsResponse, error) {
	stage := strings.TrimSpace(req.GetStage())
	state := strings.TrimSpace(req.GetState())
	if stage == "" || state == "" {
		return nil, common.InvalidArgumentError("stage and state are required")
	}
	jobs, err := s.monitor.ListJobs(ctx, stage, constants.JobState(state), int(req.GetLimit()))
	if err != nil {
		return nil, err
	}
	out := make([]*orderflowpb.QueueJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, &orderflowpb.QueueJob{
			Id:           j.ID,
			Stage:        j.Stage,
			WorkflowId:   j.WorkflowID.String(),
			MerchantId:   j.MerchantID.String(),
			Payload:      j.Payload,
			Priority:     string(j.Priority),
			AttemptsMade: int32(j.AttemptsMade),
			MaxAttempts:  int32(j.MaxAttempts),
			EnqueuedAt:   j.EnqueuedAt.Format(time.RFC3339Nano),
		})
	}
	return &orderflowpb.ListJobsResponse{Jobs: out}, nil
}

func (s *AdminServer) PauseQueue(ctx context.Context, req *orderflowpb.PauseQueueRequest) (*orderflowpb.PauseQueueResponse, error) {
	stage := strings.TrimSpace(req.GetStage())
	if stage == "" {
		return nil, common.InvalidArgumentError("stage is required")
	}
	if err := s.monitor.PauseStage(ctx, stage); err != nil {
		return nil, err
	}
	return &orderflowpb.PauseQueueResponse{}, nil
}

func (s *AdminServer) ResumeQueue(ctx context.Context, req *orderflowpb.ResumeQueueRequest) (*orderflowpb.ResumeQueueResponse, error) {
	stage := strings.TrimSpace(req.GetStage())
	if stage == "" {
		return nil, common.InvalidArgumentError("stage is required")
	}
	if err := s.monitor.ResumeStage(ctx, stage); err != nil {
		return nil, err
	}
	return &orderflowpb.ResumeQueueResponse{}, nil
}

func (s *AdminServer) CleanQueue(ctx context.Context, req *orderflowpb.CleanQueueRequest) (*orderflowpb.CleanQueueResponse, error) {
	stage := strings.TrimSpace(req.GetStage())
	if stage == "" {
		return nil, common.InvalidArgumentError("stage is required")
	}
	olderThan := time.Duration(req.GetOlderThanSeconds()) * time.Second
	if olderThan <= 0 {
		return nil, common.InvalidArgumentError("older_than_seconds must be positive")
	}
	removed, err := s.monitor.Cleanup(ctx, stage, olderThan)
	if err != nil {
		return nil, err
	}
	return &orderflowpb.CleanQueueResponse{Removed: removed}, nil
}

func (s *AdminServer) ForceRequeue(ctx context.Context, req *orderflowpb.ForceRequeueRequest) (*orderflowpb.ForceRequeueResponse, error) {
	stage := strings.TrimSpace(req.GetStage())
	jobID := strings.TrimSpace(req.GetJobId())
	if stage == "" || jobID == "" {
		return nil, common.InvalidArgumentError("stage and job_id are required")
	}
	if err := s.monitor.ForceRequeue(ctx, stage, jobID); err != nil {
		return nil, err
	}
	return &orderflowpb.ForceRequeueResponse{}, nil
}

func toPBQueues(queues []health.QueueReport) []*orderflowpb.QueueStatus {
	out := make([]*orderflowpb.QueueStatus, 0, len(queues))
	for _, q := range queues {
		out = append(out, &orderflowpb.QueueStatus{
			Stage:            q.Stage,
			Waiting:          q.Counts.Waiting,
			Delayed:          q.Counts.Delayed,
			Active:           q.Counts.Active,
			Completed:        q.Counts.Completed,
			Failed:           q.Counts.Failed,
			Paused:           q.Paused,
			ThroughputPerMin: q.ThroughputPerMin,
			FailureRate:      q.FailureRate,
			Status:           q.Status,
		})
	}
	return out
}
