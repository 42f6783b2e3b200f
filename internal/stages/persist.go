package stages

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/internal/queue"
	"github.com/joseph-ayodele/orderflow/internal/repository"
)

// OrderPersister writes extraction output into the purchase_orders table.
// The upsert keyed on document id makes a retried persist stage idempotent.
type OrderPersister struct {
	orders repository.PurchaseOrderRepository
	logger *slog.Logger
}

func NewOrderPersister(orders repository.PurchaseOrderRepository, logger *slog.Logger) *OrderPersister {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderPersister{orders: orders, logger: logger}
}

func (p *OrderPersister) Persist(ctx context.Context, merchantID uuid.UUID, payload PersistPayload) (*PersistResult, error) {
	var extraction ExtractionResult
	if err := json.Unmarshal(payload.Extraction, &extraction); err != nil {
		return nil, queue.Permanent(fmt.Sprintf("malformed extraction result: %v", err), err)
	}

	var fields struct {
		TotalAmount  string          `json:"total_amount"`
		CurrencyCode string          `json:"currency_code"`
		LineItems    json.RawMessage `json:"line_items"`
	}
	_ = json.Unmarshal(extraction.Fields, &fields)

	row, created, err := p.orders.UpsertByDocument(ctx, merchantID, payload.DocumentID, repository.PurchaseOrderFields{
		OrderNumber:     extraction.OrderNumber,
		SupplierName:    extraction.SupplierName,
		TotalAmount:     fields.TotalAmount,
		CurrencyCode:    fields.CurrencyCode,
		LineItems:       fields.LineItems,
		ExtractedFields: extraction.Fields,
		Confidence:      extraction.Confidence,
	})
	if err != nil {
		// storage trouble is worth a retry; the data is not the problem
		return nil, queue.Transient(fmt.Sprintf("persist purchase order: %v", err), err)
	}

	p.logger.Info("purchase order persisted",
		"order_id", row.ID, "document_id", payload.DocumentID, "created", created,
	)
	return &PersistResult{
		OrderID:    row.ID.String(),
		Created:    created,
		Confidence: extraction.Confidence,
		Summary:    fmt.Sprintf("order %s persisted", row.ID),
	}, nil
}
