package salemock

import (
	"context"
	"errors"

	"immofund-backend/internal/domain/sale"
)

var _ sale.Repository = (*Repo)(nil)

var ErrUnimplemented = errors.New("salemock: method not implemented")

// Repo is a function-backed mock that satisfies sale.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, s *sale.Sale) error
	GetByIDFn             func(ctx context.Context, saleID string) (*sale.Sale, error)
	CompareAndSetStatusFn func(ctx context.Context, saleID string, from, to sale.Status) error
	DeleteFn              func(ctx context.Context, saleID string) error
	ListByBuyerFn         func(ctx context.Context, buyerID string) ([]sale.Sale, error)
	ListAllFn             func(ctx context.Context) ([]sale.Sale, error)
}

func (m *Repo) Create(ctx context.Context, s *sale.Sale) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, saleID string) (*sale.Sale, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, saleID)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) CompareAndSetStatus(ctx context.Context, saleID string, from, to sale.Status) error {
	if m.CompareAndSetStatusFn != nil {
		return m.CompareAndSetStatusFn(ctx, saleID, from, to)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, saleID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, saleID)
	}
	return nil
}

func (m *Repo) ListByBuyer(ctx context.Context, buyerID string) ([]sale.Sale, error) {
	if m.ListByBuyerFn != nil {
		return m.ListByBuyerFn(ctx, buyerID)
	}
	return nil, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]sale.Sale, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
