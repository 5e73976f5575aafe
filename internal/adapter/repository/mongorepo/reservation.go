package mongorepo

import (
	"context"

	"immofund-backend/internal/domain/reservation"
	"immofund-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReservationRepository struct{ s store }

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{s: store{coll: db.Collection(docstore.CollReservations)}}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	stampCreate(&res.CreatedAt, &res.UpdatedAt)
	return r.s.insert(ctx, res)
}

func (r *ReservationRepository) GetByID(ctx context.Context, reservationID string) (*reservation.Reservation, error) {
	var out reservation.Reservation
	if err := r.s.findByID(ctx, reservationID, &out, reservation.ErrNotFound); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ReservationRepository) CompareAndSetStatus(ctx context.Context, reservationID string, from, to reservation.Status) error {
	return casStatus(ctx, r.s, reservationID, []reservation.Status{from}, to,
		reservation.ErrNotFound, reservation.ErrStatusConflict)
}

func (r *ReservationRepository) DeleteIfStatus(ctx context.Context, reservationID string, status reservation.Status) error {
	return r.s.deleteIfStatus(ctx, reservationID, string(status),
		reservation.ErrNotFound, reservation.ErrStatusConflict)
}

func (r *ReservationRepository) Delete(ctx context.Context, reservationID string) error {
	return r.s.deleteByID(ctx, reservationID)
}

func (r *ReservationRepository) ListByBuyer(ctx context.Context, buyerID string) ([]reservation.Reservation, error) {
	out := []reservation.Reservation{}
	if err := r.s.find(ctx, bson.M{"buyerId": buyerID}, newestFirst, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationRepository) ListByOwner(ctx context.Context, ownerID string) ([]reservation.Reservation, error) {
	out := []reservation.Reservation{}
	if err := r.s.find(ctx, bson.M{"ownerId": ownerID}, newestFirst, &out); err != nil {
		return nil, err
	}
	return out, nil
}
