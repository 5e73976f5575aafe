package investment

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	// Delete is used only to compensate a failed ledger write.
	Delete(ctx context.Context, investmentID string) error
	ListByInvestor(ctx context.Context, investorID string) ([]Investment, error)
	ListAll(ctx context.Context) ([]Investment, error)
	SumByProject(ctx context.Context, projectID string) (float64, error)
}
