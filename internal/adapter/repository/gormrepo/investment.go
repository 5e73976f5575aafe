package gormrepo

import (
	"context"
	"fmt"

	"immofund-backend/internal/domain/investment"

	"gorm.io/gorm"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *investment.Investment) error {
	if err := r.db.WithContext(ctx).Create(inv).Error; err != nil {
		return fmt.Errorf("create investment: %w", err)
	}
	return nil
}

func (r *InvestmentRepository) Delete(ctx context.Context, investmentID string) error {
	return deleteByKey(ctx, r.db, &investment.Investment{}, "investment_id", investmentID)
}

func (r *InvestmentRepository) ListByInvestor(ctx context.Context, investorID string) ([]investment.Investment, error) {
	var out []investment.Investment
	err := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("invested_at DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list investments by investor: %w", err)
	}
	return out, nil
}

func (r *InvestmentRepository) ListAll(ctx context.Context) ([]investment.Investment, error) {
	var out []investment.Investment
	if err := r.db.WithContext(ctx).Order("invested_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	return out, nil
}

func (r *InvestmentRepository) SumByProject(ctx context.Context, projectID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&investment.Investment{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum investments: %w", err)
	}
	return total, nil
}
