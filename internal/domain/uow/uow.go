package uow

import (
	"context"
	"errors"

	"immofund-backend/internal/domain/investment"
	"immofund-backend/internal/domain/project"
	"immofund-backend/internal/domain/property"
	"immofund-backend/internal/domain/reservation"
	"immofund-backend/internal/domain/sale"
)

// ErrTxUnsupported is returned by WithinTx when the storage deployment cannot
// run multi-document transactions (e.g. a standalone mongod).
var ErrTxUnsupported = errors.New("uow: multi-document transactions not supported by this deployment")

type Repos struct {
	Properties   property.Repository
	Reservations reservation.Repository
	Projects     project.Repository
	Investments  investment.Repository
	Sales        sale.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn in a single transaction: every write made through r
	// commits together or not at all.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// Direct returns repositories bound to the store without a transaction.
	// Each call is individually atomic only.
	Direct() Repos
}
