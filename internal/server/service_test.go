package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/internal/common"
)

func TestRequestIDInterceptorPropagatesHeader(t *testing.T) {
	interceptor := requestIDInterceptor(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("x-request-id", "req-123"))

	var seen string
	handler := func(ctx context.Context, _ any) (any, error) {
		seen = common.RequestID(ctx)
		return nil, nil
	}
	if _, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/test/Echo"}, handler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if seen != "req-123" {
		t.Errorf("request id = %q, want req-123", seen)
	}
}

func TestRequestIDInterceptorGeneratesWhenMissing(t *testing.T) {
	interceptor := requestIDInterceptor(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seen string
	handler := func(ctx context.Context, _ any) (any, error) {
		seen = common.RequestID(ctx)
		return nil, errors.New("boom")
	}
	if _, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/test/Echo"}, handler); err == nil {
		t.Fatal("handler error swallowed")
	}
	if seen == "" {
		t.Error("no request id generated for a bare context")
	}
}

func TestPriorityFromWire(t *testing.T) {
	if got := priorityFromWire("  HIGH "); got != constants.PriorityHigh {
		t.Errorf("priorityFromWire(HIGH) = %q", got)
	}
	if got := priorityFromWire(""); got != constants.PriorityNormal {
		t.Errorf("priorityFromWire(empty) = %q, want normal", got)
	}
}
