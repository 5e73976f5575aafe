package investment

import (
	"context"
	"time"

	"immofund-backend/internal/domain/errs"
	"immofund-backend/internal/domain/identity"
	"immofund-backend/internal/domain/investment"
	"immofund-backend/internal/domain/project"
	"immofund-backend/internal/domain/uow"
	"immofund-backend/internal/usecase/saga"
	"immofund-backend/pkg/id"
	"immofund-backend/pkg/money"

	"github.com/rs/zerolog"
)

var ErrUnauthenticated = errs.New(errs.ErrForbidden, "caller is not identified")

// Usecase records investments and keeps each project's collected amount
// equal to the sum of its investments.
type Usecase struct {
	uow  uow.UnitOfWork
	exec *saga.Executor
	log  zerolog.Logger
	now  func() time.Time
}

func NewUsecase(u uow.UnitOfWork, log zerolog.Logger) *Usecase {
	log = log.With().Str("component", "investment").Logger()
	return &Usecase{uow: u, exec: saga.NewExecutor(u, log), log: log, now: time.Now}
}

// Invest stamps the project's current terms on a new investment and counts
// it in the project ledger. If the ledger write fails the investment is
// removed again, so an uncounted investment never survives.
func (u *Usecase) Invest(ctx context.Context, actor identity.Actor, in InvestInput) (*InvestmentDTO, error) {
	if actor.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if !money.PositiveCents(in.Amount) {
		return nil, investment.ErrInvalidAmount
	}
	p, err := u.uow.Direct().Projects.GetByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if p.Status != project.StatusOpen {
		return nil, project.ErrNotOpen
	}

	var (
		inv    *investment.Investment
		ledger *project.Project
	)
	err = u.exec.Execute(ctx, "investment.invest", func(r uow.Repos) []saga.Step {
		inv = investment.Stamp(p, actor.UserID, in.Amount, u.now())
		inv.InvestmentID = id.NewID32()
		ledger = nil
		return []saga.Step{
			{
				Name:       "insert investment",
				Do:         func(ctx context.Context) error { return r.Investments.Create(ctx, inv) },
				Compensate: func(ctx context.Context) error { return r.Investments.Delete(ctx, inv.InvestmentID) },
			},
			{
				Name: "apply to ledger",
				Do: func(ctx context.Context) (err error) {
					ledger, err = r.Projects.ApplyInvestment(ctx, p.ProjectID, in.Amount)
					return err
				},
			},
		}
	})
	if err != nil {
		return nil, err
	}

	dto := toDTO(inv)
	dto.ProjectCollected = ledger.CollectedAmount
	dto.ProjectStatus = string(ledger.Status)

	ev := u.log.Info().
		Str("investment_id", inv.InvestmentID).
		Str("project_id", p.ProjectID).
		Float64("amount", in.Amount).
		Float64("collected", ledger.CollectedAmount)
	if ledger.Status == project.StatusFunded {
		ev = ev.Bool("funded", true)
	}
	ev.Msg("investment recorded")
	return dto, nil
}

func (u *Usecase) ListByInvestor(ctx context.Context, actor identity.Actor) ([]InvestmentDTO, error) {
	if actor.UserID == "" {
		return nil, ErrUnauthenticated
	}
	invs, err := u.uow.Direct().Investments.ListByInvestor(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return toDTOs(invs), nil
}

func (u *Usecase) ListAll(ctx context.Context, actor identity.Actor) ([]InvestmentDTO, error) {
	if !actor.IsAdmin() {
		return nil, errs.New(errs.ErrForbidden, "only an administrator can list every investment")
	}
	invs, err := u.uow.Direct().Investments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(invs), nil
}
