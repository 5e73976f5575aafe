package gormrepo

import (
	"context"

	"immofund-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct {
	db        *gorm.DB
	txEnabled bool
}

type Option func(*GormUoW)

// WithTransactions(false) makes WithinTx report uow.ErrTxUnsupported, forcing
// callers onto the sequential path (mirrors a standalone document store).
func WithTransactions(enabled bool) Option {
	return func(u *GormUoW) { u.txEnabled = enabled }
}

func NewGormUoW(db *gorm.DB, opts ...Option) *GormUoW {
	u := &GormUoW{db: db, txEnabled: true}
	for _, o := range opts {
		o(u)
	}
	return u
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if !u.txEnabled {
		return uow.ErrTxUnsupported
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposOn(tx))
	})
}

func (u *GormUoW) Direct() uow.Repos { return reposOn(u.db) }

func reposOn(db *gorm.DB) uow.Repos {
	return uow.Repos{
		Properties:   &PropertyRepository{db: db},
		Reservations: &ReservationRepository{db: db},
		Projects:     &ProjectRepository{db: db},
		Investments:  &InvestmentRepository{db: db},
		Sales:        &SaleRepository{db: db},
	}
}
