package property

import "context"

type Repository interface {
	Create(ctx context.Context, p *Property) error
	GetByID(ctx context.Context, propertyID string) (*Property, error)

	// CompareAndSetStatus moves the property to `to` only if its current status
	// is one of `from`. Missing row → ErrNotFound, status mismatch → ErrStatusConflict.
	CompareAndSetStatus(ctx context.Context, propertyID string, from []Status, to Status) error
}
