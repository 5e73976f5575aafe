package investmentmock

import (
	"context"

	"immofund-backend/internal/domain/investment"
)

var _ investment.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies investment.Repository.
// Unset functions succeed with zero values.
type Repo struct {
	CreateFn         func(ctx context.Context, inv *investment.Investment) error
	DeleteFn         func(ctx context.Context, investmentID string) error
	ListByInvestorFn func(ctx context.Context, investorID string) ([]investment.Investment, error)
	ListAllFn        func(ctx context.Context) ([]investment.Investment, error)
	SumByProjectFn   func(ctx context.Context, projectID string) (float64, error)
}

func (m *Repo) Create(ctx context.Context, inv *investment.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, investmentID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, investmentID)
	}
	return nil
}

func (m *Repo) ListByInvestor(ctx context.Context, investorID string) ([]investment.Investment, error) {
	if m.ListByInvestorFn != nil {
		return m.ListByInvestorFn(ctx, investorID)
	}
	return nil, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]investment.Investment, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) SumByProject(ctx context.Context, projectID string) (float64, error) {
	if m.SumByProjectFn != nil {
		return m.SumByProjectFn(ctx, projectID)
	}
	return 0, nil
}
