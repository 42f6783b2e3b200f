package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent"
	entmerchant "github.com/joseph-ayodele/orderflow/gen/ent/merchant"
	"github.com/joseph-ayodele/orderflow/internal/common"
)

type MerchantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Merchant, error)
	GetByShopDomain(ctx context.Context, shopDomain string) (*ent.Merchant, error)
	Ensure(ctx context.Context, shopDomain string) (*ent.Merchant, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type merchantRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewMerchantRepository(entc *ent.Client, logger *slog.Logger) MerchantRepository {
	return &merchantRepo{ent: entc, logger: logger}
}

func (r *merchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Merchant, error) {
	m, err := r.ent.Merchant.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *merchantRepo) GetByShopDomain(ctx context.Context, shopDomain string) (*ent.Merchant, error) {
	m, err := r.ent.Merchant.Query().
		Where(entmerchant.ShopDomain(shopDomain)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// Ensure returns the merchant for the shop domain, creating the row on first
// contact (the commerce-platform handshake lives outside this service).
func (r *merchantRepo) Ensure(ctx context.Context, shopDomain string) (*ent.Merchant, error) {
	if m, err := r.GetByShopDomain(ctx, shopDomain); err == nil {
		return m, nil
	}
	m, err := r.ent.Merchant.Create().
		SetShopDomain(shopDomain).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return r.GetByShopDomain(ctx, shopDomain)
		}
		r.logger.Error("merchant create failed", "shop_domain", shopDomain, "error", err)
		return nil, err
	}
	r.logger.Info("merchant registered", "merchant_id", m.ID, "shop_domain", shopDomain)
	return m, nil
}

func (r *merchantRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Merchant.Query().
		Where(entmerchant.ID(id)).
		Exist(ctx)
}
