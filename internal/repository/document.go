package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent"
	entdoc "github.com/joseph-ayodele/orderflow/gen/ent/orderdocument"
	"github.com/joseph-ayodele/orderflow/internal/common"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.OrderDocument, error)
	GetByMerchantAndHash(ctx context.Context, merchantID uuid.UUID, hash []byte) (*ent.OrderDocument, error)
	Create(ctx context.Context, merchantID uuid.UUID, filename, contentType, storageKey string, size int, hash []byte, uploadedAt time.Time) (*ent.OrderDocument, error)
	// UpsertByHash returns the existing row (true) or creates one (false).
	UpsertByHash(ctx context.Context, merchantID uuid.UUID, filename, contentType, storageKey string, size int, hash []byte, uploadedAt time.Time) (*ent.OrderDocument, bool, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.OrderDocument, error) {
	doc, err := r.ent.OrderDocument.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (r *documentRepo) GetByMerchantAndHash(ctx context.Context, merchantID uuid.UUID, hash []byte) (*ent.OrderDocument, error) {
	row, err := r.ent.OrderDocument.Query().
		Where(
			entdoc.MerchantID(merchantID),
			entdoc.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get document by merchant and hash", "merchant_id", merchantID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) Create(ctx context.Context, merchantID uuid.UUID, filename, contentType, storageKey string, size int, hash []byte, uploadedAt time.Time) (*ent.OrderDocument, error) {
	row, err := r.ent.OrderDocument.Create().
		SetMerchantID(merchantID).
		SetFilename(filename).
		SetContentType(contentType).
		SetStorageKey(storageKey).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create order document", "merchant_id", merchantID, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) UpsertByHash(ctx context.Context, merchantID uuid.UUID, filename, contentType, storageKey string, size int, hash []byte, uploadedAt time.Time) (*ent.OrderDocument, bool, error) {
	if existing, err := r.GetByMerchantAndHash(ctx, merchantID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, merchantID, filename, contentType, storageKey, size, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}
