package reservationmock

import (
	"context"
	"errors"

	"immofund-backend/internal/domain/reservation"
)

var _ reservation.Repository = (*Repo)(nil)

var ErrUnimplemented = errors.New("reservationmock: method not implemented")

// Repo is a function-backed mock that satisfies reservation.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, r *reservation.Reservation) error
	GetByIDFn             func(ctx context.Context, reservationID string) (*reservation.Reservation, error)
	CompareAndSetStatusFn func(ctx context.Context, reservationID string, from, to reservation.Status) error
	DeleteIfStatusFn      func(ctx context.Context, reservationID string, status reservation.Status) error
	DeleteFn              func(ctx context.Context, reservationID string) error
	ListByBuyerFn         func(ctx context.Context, buyerID string) ([]reservation.Reservation, error)
	ListByOwnerFn         func(ctx context.Context, ownerID string) ([]reservation.Reservation, error)
}

func (m *Repo) Create(ctx context.Context, r *reservation.Reservation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, reservationID string) (*reservation.Reservation, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, reservationID)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) CompareAndSetStatus(ctx context.Context, reservationID string, from, to reservation.Status) error {
	if m.CompareAndSetStatusFn != nil {
		return m.CompareAndSetStatusFn(ctx, reservationID, from, to)
	}
	return nil
}

func (m *Repo) DeleteIfStatus(ctx context.Context, reservationID string, status reservation.Status) error {
	if m.DeleteIfStatusFn != nil {
		return m.DeleteIfStatusFn(ctx, reservationID, status)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, reservationID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, reservationID)
	}
	return nil
}

func (m *Repo) ListByBuyer(ctx context.Context, buyerID string) ([]reservation.Reservation, error) {
	if m.ListByBuyerFn != nil {
		return m.ListByBuyerFn(ctx, buyerID)
	}
	return nil, nil
}

func (m *Repo) ListByOwner(ctx context.Context, ownerID string) ([]reservation.Reservation, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}
