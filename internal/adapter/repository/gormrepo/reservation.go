package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"immofund-backend/internal/domain/reservation"

	"gorm.io/gorm"
)

type ReservationRepository struct{ db *gorm.DB }

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, reservationID string) (*reservation.Reservation, error) {
	var out reservation.Reservation
	err := r.db.WithContext(ctx).Where("reservation_id = ?", reservationID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reservation.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return &out, nil
}

func (r *ReservationRepository) CompareAndSetStatus(ctx context.Context, reservationID string, from, to reservation.Status) error {
	return casStatus(ctx, r.db, &reservation.Reservation{}, "reservation_id", reservationID,
		[]reservation.Status{from}, to, reservation.ErrNotFound, reservation.ErrStatusConflict)
}

func (r *ReservationRepository) DeleteIfStatus(ctx context.Context, reservationID string, status reservation.Status) error {
	return deleteIfStatus(ctx, r.db, &reservation.Reservation{}, "reservation_id", reservationID,
		string(status), reservation.ErrNotFound, reservation.ErrStatusConflict)
}

func (r *ReservationRepository) Delete(ctx context.Context, reservationID string) error {
	return deleteByKey(ctx, r.db, &reservation.Reservation{}, "reservation_id", reservationID)
}

func (r *ReservationRepository) ListByBuyer(ctx context.Context, buyerID string) ([]reservation.Reservation, error) {
	return r.listWhere(ctx, "buyer_id = ?", buyerID)
}

func (r *ReservationRepository) ListByOwner(ctx context.Context, ownerID string) ([]reservation.Reservation, error) {
	return r.listWhere(ctx, "owner_id = ?", ownerID)
}

func (r *ReservationRepository) listWhere(ctx context.Context, cond string, arg string) ([]reservation.Reservation, error) {
	var out []reservation.Reservation
	err := r.db.WithContext(ctx).Where(cond, arg).Order("created_at DESC, id DESC").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return out, nil
}
