package project

import "context"

type Repository interface {
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, projectID string) (*Project, error)
	List(ctx context.Context) ([]Project, error)

	// ApplyInvestment atomically adds amount to CollectedAmount and flips the
	// status to funded when the new total reaches TargetAmount. Only open
	// projects are touched: missing → ErrNotFound, not open → ErrNotOpen.
	// Returns the project as written.
	ApplyInvestment(ctx context.Context, projectID string, amount float64) (*Project, error)
}
