package sale

import "context"

type Repository interface {
	Create(ctx context.Context, s *Sale) error
	GetByID(ctx context.Context, saleID string) (*Sale, error)
	CompareAndSetStatus(ctx context.Context, saleID string, from, to Status) error
	// Delete compensates a failed create.
	Delete(ctx context.Context, saleID string) error
	ListByBuyer(ctx context.Context, buyerID string) ([]Sale, error)
	ListAll(ctx context.Context) ([]Sale, error)
}
