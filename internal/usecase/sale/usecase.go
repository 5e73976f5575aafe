package sale

import (
	"context"
	"errors"
	"time"

	"immofund-backend/internal/domain/errs"
	"immofund-backend/internal/domain/identity"
	"immofund-backend/internal/domain/property"
	"immofund-backend/internal/domain/sale"
	"immofund-backend/internal/domain/uow"
	"immofund-backend/internal/usecase/saga"
	"immofund-backend/pkg/id"
	"immofund-backend/pkg/money"

	"github.com/rs/zerolog"
)

var ErrUnauthenticated = errs.New(errs.ErrForbidden, "caller is not identified")

// Usecase handles direct purchases: a sale holds the property while in
// progress and sells it on confirmation.
type Usecase struct {
	uow  uow.UnitOfWork
	exec *saga.Executor
	log  zerolog.Logger
	now  func() time.Time
}

func NewUsecase(u uow.UnitOfWork, log zerolog.Logger) *Usecase {
	log = log.With().Str("component", "sale").Logger()
	return &Usecase{uow: u, exec: saga.NewExecutor(u, log), log: log, now: time.Now}
}

func (u *Usecase) Create(ctx context.Context, actor identity.Actor, in CreateInput) (*SaleDTO, error) {
	if actor.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if !money.PositiveCents(in.Amount) {
		return nil, sale.ErrInvalidAmount
	}
	p, err := u.uow.Direct().Properties.GetByID(ctx, in.PropertyID)
	if err != nil {
		return nil, err
	}
	if p.Status != property.StatusAvailable {
		return nil, property.ErrNotAvailable
	}

	var created *sale.Sale
	err = u.exec.Execute(ctx, "sale.create", func(r uow.Repos) []saga.Step {
		s := &sale.Sale{
			SaleID:     id.NewID32(),
			BuyerID:    actor.UserID,
			PropertyID: p.PropertyID,
			Amount:     in.Amount,
			Status:     sale.StatusInProgress,
			CreatedAt:  u.now().UTC(),
		}
		created = s
		return []saga.Step{
			{
				Name:       "insert sale",
				Do:         func(ctx context.Context) error { return r.Sales.Create(ctx, s) },
				Compensate: func(ctx context.Context) error { return r.Sales.Delete(ctx, s.SaleID) },
			},
			{
				Name: "reserve property",
				Do: func(ctx context.Context) error {
					err := r.Properties.CompareAndSetStatus(ctx, p.PropertyID,
						[]property.Status{property.StatusAvailable}, property.StatusReserved)
					if errors.Is(err, property.ErrStatusConflict) {
						return property.ErrNotAvailable
					}
					return err
				},
			},
		}
	})
	if err != nil {
		return nil, err
	}

	u.log.Info().
		Str("sale_id", created.SaleID).
		Str("property_id", created.PropertyID).
		Float64("amount", created.Amount).
		Msg("sale started")
	return toDTO(created), nil
}

// Confirm completes an in-progress sale and marks its property sold.
func (u *Usecase) Confirm(ctx context.Context, actor identity.Actor, saleID string) (*SaleDTO, error) {
	if !actor.IsAdmin() {
		return nil, errs.New(errs.ErrForbidden, "only an administrator can confirm a sale")
	}
	direct := u.uow.Direct()
	s, err := direct.Sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if _, err := direct.Properties.GetByID(ctx, s.PropertyID); err != nil {
		return nil, err
	}
	if s.Status != sale.StatusInProgress {
		return nil, sale.ErrNotInProgress
	}

	err = u.exec.Execute(ctx, "sale.confirm", func(r uow.Repos) []saga.Step {
		return []saga.Step{
			{
				Name: "complete sale",
				Do: func(ctx context.Context) error {
					err := r.Sales.CompareAndSetStatus(ctx, saleID, sale.StatusInProgress, sale.StatusCompleted)
					if errors.Is(err, sale.ErrStatusConflict) {
						return sale.ErrNotInProgress
					}
					return err
				},
				Compensate: func(ctx context.Context) error {
					return r.Sales.CompareAndSetStatus(ctx, saleID, sale.StatusCompleted, sale.StatusInProgress)
				},
			},
			{
				Name: "sell property",
				Do: func(ctx context.Context) error {
					return r.Properties.CompareAndSetStatus(ctx, s.PropertyID,
						[]property.Status{property.StatusReserved}, property.StatusSold)
				},
			},
		}
	})
	if err != nil {
		return nil, err
	}

	s.Status = sale.StatusCompleted
	u.log.Info().Str("sale_id", saleID).Str("property_id", s.PropertyID).Msg("sale completed")
	return toDTO(s), nil
}

func (u *Usecase) ListByBuyer(ctx context.Context, actor identity.Actor) ([]SaleDTO, error) {
	if actor.UserID == "" {
		return nil, ErrUnauthenticated
	}
	ss, err := u.uow.Direct().Sales.ListByBuyer(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return toDTOs(ss), nil
}

func (u *Usecase) ListAll(ctx context.Context, actor identity.Actor) ([]SaleDTO, error) {
	if !actor.IsAdmin() {
		return nil, errs.New(errs.ErrForbidden, "only an administrator can list every sale")
	}
	ss, err := u.uow.Direct().Sales.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(ss), nil
}
