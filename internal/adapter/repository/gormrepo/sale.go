package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"immofund-backend/internal/domain/sale"

	"gorm.io/gorm"
)

type SaleRepository struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) *SaleRepository { return &SaleRepository{db: db} }

func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

func (r *SaleRepository) GetByID(ctx context.Context, saleID string) (*sale.Sale, error) {
	var out sale.Sale
	err := r.db.WithContext(ctx).Where("sale_id = ?", saleID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, sale.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &out, nil
}

func (r *SaleRepository) CompareAndSetStatus(ctx context.Context, saleID string, from, to sale.Status) error {
	return casStatus(ctx, r.db, &sale.Sale{}, "sale_id", saleID,
		[]sale.Status{from}, to, sale.ErrNotFound, sale.ErrStatusConflict)
}

func (r *SaleRepository) Delete(ctx context.Context, saleID string) error {
	return deleteByKey(ctx, r.db, &sale.Sale{}, "sale_id", saleID)
}

func (r *SaleRepository) ListByBuyer(ctx context.Context, buyerID string) ([]sale.Sale, error) {
	var out []sale.Sale
	err := r.db.WithContext(ctx).Where("buyer_id = ?", buyerID).Order("created_at DESC, id DESC").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list sales by buyer: %w", err)
	}
	return out, nil
}

func (r *SaleRepository) ListAll(ctx context.Context) ([]sale.Sale, error) {
	var out []sale.Sale
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return out, nil
}
