package server

import (
	"context"
	"log/slog"
	"net"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"

	"github.com/joseph-ayodele/orderflow/constants"
	orderflowpb "github.com/joseph-ayodele/orderflow/gen/proto/orderflow/v1"
	"github.com/joseph-ayodele/orderflow/internal/common"
)

// GRPCServer bundles the three admin-facing gRPC services behind one
// listener.
type GRPCServer struct {
	grpcSrv *grpc.Server
	addr    string
	logger  *slog.Logger
}

func NewGRPCServer(addr string, workflows *WorkflowsServer, deadLetters *DeadLettersServer, admin *AdminServer, logger *slog.Logger) *GRPCServer {
	if logger == nil {
		logger = slog.Default()
	}
	srv := grpc.NewServer(grpc.UnaryInterceptor(requestIDInterceptor(logger)))
	orderflowpb.RegisterWorkflowsServiceServer(srv, workflows)
	orderflowpb.RegisterDeadLettersServiceServer(srv, deadLetters)
	orderflowpb.RegisterAdminServiceServer(srv, admin)
	reflection.Register(srv)
	return &GRPCServer{grpcSrv: srv, addr: addr, logger: logger}
}

// Serve blocks until the server stops.
func (s *GRPCServer) Serve() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.logger.Info("grpc server listening", "addr", s.addr)
	return s.grpcSrv.Serve(lis)
}

// GracefulStop drains in-flight RPCs before returning.
func (s *GRPCServer) GracefulStop() {
	s.grpcSrv.GracefulStop()
}

// requestIDInterceptor threads the caller's x-request-id (or a fresh one)
// through the handler context and tags failed RPCs with it.
func requestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var id string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get("x-request-id"); len(vals) > 0 {
				id = vals[0]
			}
		}
		if id == "" {
			id = uuid.NewString()
		}
		ctx = common.WithRequestID(ctx, id)
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc failed", "method", info.FullMethod, "request_id", common.RequestID(ctx), "error", err)
		}
		return resp, err
	}
}

func priorityFromWire(raw string) constants.Priority {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return constants.PriorityNormal
	}
	return constants.Priority(raw)
}
