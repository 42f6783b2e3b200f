package stages

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/internal/repository"
)

// RecordingSyncer wraps a Syncer and writes the platform's order id back
// onto the purchase order row after a successful sync. Recording is
// best-effort: the sync already happened, so a write failure is logged, not
// retried through the queue.
type RecordingSyncer struct {
	inner  Syncer
	orders repository.PurchaseOrderRepository
	logger *slog.Logger
}

func NewRecordingSyncer(inner Syncer, orders repository.PurchaseOrderRepository, logger *slog.Logger) *RecordingSyncer {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordingSyncer{inner: inner, orders: orders, logger: logger}
}

func (s *RecordingSyncer) Sync(ctx context.Context, merchantID uuid.UUID, p SyncPayload) (*SyncResult, error) {
	result, err := s.inner.Sync(ctx, merchantID, p)
	if err != nil {
		return nil, err
	}

	var order struct {
		OrderID string `json:"order_id"`
	}
	if json.Unmarshal(p.Order, &order) == nil && order.OrderID != "" {
		if orderID, parseErr := uuid.Parse(order.OrderID); parseErr == nil {
			if _, recErr := s.orders.SetPlatformOrderID(ctx, orderID, result.PlatformOrderID); recErr != nil {
				s.logger.Warn("platform order id not recorded",
					"order_id", orderID, "platform_order_id", result.PlatformOrderID, "error", recErr)
			}
		}
	}
	return result, nil
}
