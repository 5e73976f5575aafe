package investment

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"immofund-backend/internal/domain/errs"
	"immofund-backend/internal/domain/identity"
	"immofund-backend/internal/domain/investment"
	"immofund-backend/internal/domain/project"
	"immofund-backend/internal/domain/uow"
	"immofund-backend/internal/testutil/investmentmock"
	"immofund-backend/internal/testutil/projectmock"
	"immofund-backend/internal/testutil/uowmock"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	projID     = "1111111111111111111111111111111a"
	promoterID = "1111111111111111111111111111111b"
)

var (
	investor = identity.Actor{UserID: "1111111111111111111111111111111c", Role: identity.RoleInvestor}
	admin    = identity.Actor{UserID: "1111111111111111111111111111111d", Role: identity.RoleAdmin}
	fixedNow = time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)
)

func projectsWith(status project.Status) *projectmock.Repo {
	return &projectmock.Repo{
		GetByIDFn: func(_ context.Context, id string) (*project.Project, error) {
			if id != projID {
				return nil, project.ErrNotFound
			}
			return &project.Project{
				ProjectID:      projID,
				PromoterID:     promoterID,
				TargetAmount:   100000,
				Status:         status,
				YieldRate:      7.5,
				DurationMonths: 18,
			}, nil
		},
		ApplyInvestmentFn: func(_ context.Context, _ string, amount float64) (*project.Project, error) {
			return &project.Project{ProjectID: projID, CollectedAmount: amount, Status: project.StatusOpen}, nil
		},
	}
}

func newUsecase(u uow.UnitOfWork) *Usecase {
	uc := NewUsecase(u, zerolog.Nop())
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestInvest_Preconditions(t *testing.T) {
	tests := []struct {
		name   string
		actor  identity.Actor
		in     InvestInput
		status project.Status
		kind   error
	}{
		{"anonymous", identity.Actor{}, InvestInput{ProjectID: projID, Amount: 10}, project.StatusOpen, errs.ErrForbidden},
		{"zero amount", investor, InvestInput{ProjectID: projID, Amount: 0}, project.StatusOpen, errs.ErrValidation},
		{"negative amount", investor, InvestInput{ProjectID: projID, Amount: -5}, project.StatusOpen, errs.ErrValidation},
		{"sub-cent amount", investor, InvestInput{ProjectID: projID, Amount: 0.004}, project.StatusOpen, errs.ErrValidation},
		{"nan amount", investor, InvestInput{ProjectID: projID, Amount: math.NaN()}, project.StatusOpen, errs.ErrValidation},
		{"missing project", investor, InvestInput{ProjectID: "ffffffffffffffffffffffffffffffff", Amount: 10}, project.StatusOpen, errs.ErrNotFound},
		{"funded project", investor, InvestInput{ProjectID: projID, Amount: 10}, project.StatusFunded, errs.ErrConflict},
		{"closed project", investor, InvestInput{ProjectID: projID, Amount: 10}, project.StatusClosed, errs.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invs := &investmentmock.Repo{
				CreateFn: func(context.Context, *investment.Investment) error {
					t.Fatalf("no write expected")
					return nil
				},
			}
			u := newUsecase(uowmock.Transactional(uow.Repos{Projects: projectsWith(tt.status), Investments: invs}))

			_, err := u.Invest(context.Background(), tt.actor, tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.kind, errs.KindOf(err))
		})
	}
}

func TestInvest_StampsTermsAndAppliesLedger(t *testing.T) {
	var order []string
	var created *investment.Investment
	projects := projectsWith(project.StatusOpen)
	projects.ApplyInvestmentFn = func(_ context.Context, id string, amount float64) (*project.Project, error) {
		order = append(order, "ledger")
		assert.Equal(t, projID, id)
		assert.Equal(t, 20000.0, amount)
		return &project.Project{ProjectID: projID, CollectedAmount: 20000, Status: project.StatusOpen}, nil
	}
	invs := &investmentmock.Repo{
		CreateFn: func(_ context.Context, inv *investment.Investment) error {
			order = append(order, "insert")
			created = inv
			return nil
		},
	}
	u := newUsecase(uowmock.Transactional(uow.Repos{Projects: projects, Investments: invs}))

	dto, err := u.Invest(context.Background(), investor, InvestInput{ProjectID: projID, Amount: 20000})
	require.NoError(t, err)

	assert.Equal(t, []string{"insert", "ledger"}, order)
	assert.Len(t, created.InvestmentID, 32)
	assert.Equal(t, promoterID, dto.PromoterID)
	assert.Equal(t, 7.5, dto.YieldRate)
	assert.Equal(t, 18, dto.DurationMonths)
	assert.Equal(t, fixedNow, dto.InvestedAt)
	assert.Equal(t, time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC), dto.MaturityDate)
	assert.Equal(t, 1500.0, dto.ExpectedYield)
	assert.Equal(t, "active", dto.Status)
	assert.Equal(t, 20000.0, dto.ProjectCollected)
	assert.Equal(t, "open", dto.ProjectStatus)
}

func TestInvest_LedgerFailureDeletesInvestment(t *testing.T) {
	infra := errors.New("connection refused")
	tests := []struct {
		name      string
		ledgerErr error
	}{
		{"project closed meanwhile", project.ErrNotOpen},
		{"storage failure", infra},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var createdID, deletedID string
			projects := projectsWith(project.StatusOpen)
			projects.ApplyInvestmentFn = func(context.Context, string, float64) (*project.Project, error) {
				return nil, tt.ledgerErr
			}
			invs := &investmentmock.Repo{
				CreateFn: func(_ context.Context, inv *investment.Investment) error { createdID = inv.InvestmentID; return nil },
				DeleteFn: func(_ context.Context, id string) error { deletedID = id; return nil },
			}
			u := newUsecase(uowmock.Standalone(uow.Repos{Projects: projects, Investments: invs}))

			_, err := u.Invest(context.Background(), investor, InvestInput{ProjectID: projID, Amount: 100})
			require.ErrorIs(t, err, tt.ledgerErr)
			assert.NotEmpty(t, createdID)
			assert.Equal(t, createdID, deletedID)
		})
	}
}

func TestInvest_RetryUsesFreshIdentifiers(t *testing.T) {
	var ids []string
	invs := &investmentmock.Repo{
		CreateFn: func(_ context.Context, inv *investment.Investment) error {
			ids = append(ids, inv.InvestmentID)
			return nil
		},
	}
	repos := uow.Repos{Projects: projectsWith(project.StatusOpen), Investments: invs}
	m := &uowmock.UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error {
			_ = fn(repos)
			return errors.New("transaction aborted")
		},
		Repos: repos,
	}

	_, err := newUsecase(m).Invest(context.Background(), investor, InvestInput{ProjectID: projID, Amount: 100})
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestListAll_AdminOnly(t *testing.T) {
	invs := &investmentmock.Repo{
		ListAllFn: func(context.Context) ([]investment.Investment, error) {
			return []investment.Investment{{InvestmentID: "a"}, {InvestmentID: "b"}}, nil
		},
		ListByInvestorFn: func(_ context.Context, id string) ([]investment.Investment, error) {
			assert.Equal(t, investor.UserID, id)
			return []investment.Investment{{InvestmentID: "a", InvestorID: id}}, nil
		},
	}
	u := newUsecase(uowmock.Transactional(uow.Repos{Investments: invs}))

	_, err := u.ListAll(context.Background(), investor)
	assert.Equal(t, errs.ErrForbidden, errs.KindOf(err))

	all, err := u.ListAll(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := u.ListByInvestor(context.Background(), investor)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
