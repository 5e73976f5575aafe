package uowmock

import (
	"context"
	"errors"

	"immofund-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// An unset WithinTxFn fails with errUnimplemented; an unset DirectFn returns
// the Repos field.
type UoW struct {
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
	DirectFn   func() uow.Repos
	Repos      uow.Repos
}

func New() *UoW { return &UoW{} }

// Transactional runs every WithinTx body against repos.
func Transactional(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error { return fn(repos) },
		Repos:      repos,
	}
}

// Standalone reports uow.ErrTxUnsupported and serves repos directly.
func Standalone(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(context.Context, func(uow.Repos) error) error { return uow.ErrTxUnsupported },
		Repos:      repos,
	}
}

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) Direct() uow.Repos {
	if m.DirectFn != nil {
		return m.DirectFn()
	}
	return m.Repos
}
