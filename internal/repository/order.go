package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent"
	entorder "github.com/joseph-ayodele/orderflow/gen/ent/purchaseorder"
	"github.com/joseph-ayodele/orderflow/internal/common"
)

// PurchaseOrderFields is the extracted data written by the persist stage.
type PurchaseOrderFields struct {
	OrderNumber     string
	SupplierName    string
	TotalAmount     string
	CurrencyCode    string
	LineItems       json.RawMessage
	ExtractedFields json.RawMessage
	Confidence      float32
}

type PurchaseOrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.PurchaseOrder, error)
	GetByDocument(ctx context.Context, documentID uuid.UUID) (*ent.PurchaseOrder, error)
	// UpsertByDocument writes the one order row per document, updating in
	// place when a retried persist stage runs again. The bool reports
	// whether a new row was created.
	UpsertByDocument(ctx context.Context, merchantID, documentID uuid.UUID, fields PurchaseOrderFields) (*ent.PurchaseOrder, bool, error)
	SetPlatformOrderID(ctx context.Context, id uuid.UUID, platformOrderID string) (*ent.PurchaseOrder, error)
}

type purchaseOrderRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewPurchaseOrderRepository(entc *ent.Client, logger *slog.Logger) PurchaseOrderRepository {
	return &purchaseOrderRepo{ent: entc, logger: logger}
}

func (r *purchaseOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.PurchaseOrder, error) {
	row, err := r.ent.PurchaseOrder.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

func (r *purchaseOrderRepo) GetByDocument(ctx context.Context, documentID uuid.UUID) (*ent.PurchaseOrder, error) {
	row, err := r.ent.PurchaseOrder.Query().
		Where(entorder.DocumentID(documentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get purchase order by document", "document_id", documentID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *purchaseOrderRepo) UpsertByDocument(ctx context.Context, merchantID, documentID uuid.UUID, fields PurchaseOrderFields) (*ent.PurchaseOrder, bool, error) {
	existing, err := r.GetByDocument(ctx, documentID)
	if err == nil {
		updated, err := existing.Update().
			SetOrderNumber(fields.OrderNumber).
			SetSupplierName(fields.SupplierName).
			SetTotalAmount(fields.TotalAmount).
			SetCurrencyCode(fields.CurrencyCode).
			SetLineItems(fields.LineItems).
			SetExtractedFields(fields.ExtractedFields).
			SetExtractionConfidence(fields.Confidence).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update purchase order", "document_id", documentID, "error", err)
			return nil, false, err
		}
		return updated, false, nil
	}

	row, err := r.ent.PurchaseOrder.Create().
		SetMerchantID(merchantID).
		SetDocumentID(documentID).
		SetOrderNumber(fields.OrderNumber).
		SetSupplierName(fields.SupplierName).
		SetTotalAmount(fields.TotalAmount).
		SetCurrencyCode(fields.CurrencyCode).
		SetLineItems(fields.LineItems).
		SetExtractedFields(fields.ExtractedFields).
		SetExtractionConfidence(fields.Confidence).
		Save(ctx)
	if err != nil {
		// unique (document_id) lost a create race; return the winner
		if ent.IsConstraintError(err) {
			if winner, getErr := r.GetByDocument(ctx, documentID); getErr == nil {
				return winner, false, nil
			}
		}
		r.logger.Error("failed to create purchase order", "document_id", documentID, "error", err)
		return nil, false, err
	}
	return row, true, nil
}

func (r *purchaseOrderRepo) SetPlatformOrderID(ctx context.Context, id uuid.UUID, platformOrderID string) (*ent.PurchaseOrder, error) {
	row, err := r.ent.PurchaseOrder.UpdateOneID(id).
		SetPlatformOrderID(platformOrderID).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to record platform order id", "order_id", id, "error", err)
		return nil, err
	}
	return row, nil
}
