package reservation

import "context"

type Repository interface {
	Create(ctx context.Context, r *Reservation) error
	GetByID(ctx context.Context, reservationID string) (*Reservation, error)

	// CompareAndSetStatus: missing → ErrNotFound, current != from → ErrStatusConflict.
	CompareAndSetStatus(ctx context.Context, reservationID string, from, to Status) error
	// DeleteIfStatus removes the reservation only while it has the given status.
	DeleteIfStatus(ctx context.Context, reservationID string, status Status) error
	// Delete is unconditional; used to compensate a failed create.
	Delete(ctx context.Context, reservationID string) error

	ListByBuyer(ctx context.Context, buyerID string) ([]Reservation, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Reservation, error)
}
