package reservation

import (
	"context"
	"errors"
	"time"

	"immofund-backend/internal/domain/errs"
	"immofund-backend/internal/domain/identity"
	"immofund-backend/internal/domain/property"
	"immofund-backend/internal/domain/reservation"
	"immofund-backend/internal/domain/uow"
	"immofund-backend/internal/usecase/saga"
	"immofund-backend/pkg/id"

	"github.com/rs/zerolog"
)

var ErrUnauthenticated = errs.New(errs.ErrForbidden, "caller is not identified")

// Usecase coordinates a reservation with the status of the property it holds.
type Usecase struct {
	uow  uow.UnitOfWork
	exec *saga.Executor
	log  zerolog.Logger
	now  func() time.Time
}

func NewUsecase(u uow.UnitOfWork, log zerolog.Logger) *Usecase {
	log = log.With().Str("component", "reservation").Logger()
	return &Usecase{uow: u, exec: saga.NewExecutor(u, log), log: log, now: time.Now}
}

// Create holds an available property for the caller.
func (u *Usecase) Create(ctx context.Context, actor identity.Actor, in CreateInput) (*ReservationDTO, error) {
	if actor.UserID == "" {
		return nil, ErrUnauthenticated
	}
	p, err := u.uow.Direct().Properties.GetByID(ctx, in.PropertyID)
	if err != nil {
		return nil, err
	}
	if p.Status != property.StatusAvailable {
		return nil, property.ErrNotAvailable
	}

	var created *reservation.Reservation
	err = u.exec.Execute(ctx, "reservation.create", func(r uow.Repos) []saga.Step {
		res := &reservation.Reservation{
			ReservationID:  id.NewID32(),
			PropertyID:     p.PropertyID,
			BuyerID:        actor.UserID,
			OwnerID:        p.OwnerID,
			Status:         reservation.StatusPending,
			LoanSimulation: reservation.LoanSimulation(in.LoanSimulation),
			CreatedAt:      u.now().UTC(),
		}
		created = res
		return []saga.Step{
			{
				Name:       "insert reservation",
				Do:         func(ctx context.Context) error { return r.Reservations.Create(ctx, res) },
				Compensate: func(ctx context.Context) error { return r.Reservations.Delete(ctx, res.ReservationID) },
			},
			{
				Name: "reserve property",
				Do: func(ctx context.Context) error {
					return claimed(r.Properties.CompareAndSetStatus(ctx, p.PropertyID,
						[]property.Status{property.StatusAvailable}, property.StatusReserved))
				},
			},
		}
	})
	if err != nil {
		return nil, err
	}

	u.log.Info().
		Str("reservation_id", created.ReservationID).
		Str("property_id", created.PropertyID).
		Str("buyer_id", created.BuyerID).
		Msg("reservation created")
	return toDTO(created), nil
}

// Resolve accepts or rejects a pending reservation. Only the property owner
// or an administrator may decide; a resolved reservation stays resolved.
func (u *Usecase) Resolve(ctx context.Context, actor identity.Actor, reservationID string, decision reservation.Status) (*Result, error) {
	direct := u.uow.Direct()
	res, err := direct.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	p, err := direct.Properties.GetByID(ctx, res.PropertyID)
	if err != nil {
		return nil, err
	}
	if !actor.OwnsOrAdmin(p.OwnerID) {
		return nil, errs.New(errs.ErrForbidden, "only the property owner or an administrator can resolve a reservation")
	}
	if !decision.Decision() {
		return nil, reservation.ErrInvalidDecision
	}
	if res.Status != reservation.StatusPending {
		return nil, reservation.ErrNotPending
	}

	next := property.StatusAvailable
	if decision == reservation.StatusAccepted {
		next = property.StatusSold
	}

	err = u.exec.Execute(ctx, "reservation.resolve", func(r uow.Repos) []saga.Step {
		return []saga.Step{
			{
				Name: "resolve reservation",
				Do: func(ctx context.Context) error {
					return pending(r.Reservations.CompareAndSetStatus(ctx, reservationID, reservation.StatusPending, decision))
				},
				Compensate: func(ctx context.Context) error {
					return r.Reservations.CompareAndSetStatus(ctx, reservationID, decision, reservation.StatusPending)
				},
			},
			{
				Name: "release or sell property",
				Do: func(ctx context.Context) error {
					return r.Properties.CompareAndSetStatus(ctx, p.PropertyID,
						[]property.Status{property.StatusReserved}, next)
				},
			},
		}
	})
	if err != nil {
		return nil, err
	}

	u.log.Info().
		Str("reservation_id", reservationID).
		Str("decision", string(decision)).
		Str("property_status", string(next)).
		Msg("reservation resolved")
	return &Result{Success: true}, nil
}

// Cancel deletes a pending reservation and frees its property. Resolved
// reservations are removed through Purge.
func (u *Usecase) Cancel(ctx context.Context, actor identity.Actor, reservationID string) (*Result, error) {
	res, err := u.uow.Direct().Reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !actor.OwnsOrAdmin(res.BuyerID) {
		return nil, errs.New(errs.ErrForbidden, "only the buyer or an administrator can cancel a reservation")
	}
	if res.Status != reservation.StatusPending {
		return nil, reservation.ErrNotPending
	}

	err = u.exec.Execute(ctx, "reservation.cancel", func(r uow.Repos) []saga.Step {
		return []saga.Step{
			{
				// irreversible once committed
				Name: "delete reservation",
				Do: func(ctx context.Context) error {
					return pending(r.Reservations.DeleteIfStatus(ctx, reservationID, reservation.StatusPending))
				},
			},
			{
				Name: "release property",
				Do: func(ctx context.Context) error {
					return r.Properties.CompareAndSetStatus(ctx, res.PropertyID,
						[]property.Status{property.StatusReserved, property.StatusAvailable}, property.StatusAvailable)
				},
			},
		}
	})
	if err != nil {
		return nil, err
	}

	u.log.Info().Str("reservation_id", reservationID).Msg("reservation cancelled")
	return &Result{Success: true}, nil
}

// Purge is the administrative removal of an accepted or rejected
// reservation. The property is left as it is.
func (u *Usecase) Purge(ctx context.Context, actor identity.Actor, reservationID string) (*Result, error) {
	if !actor.IsAdmin() {
		return nil, errs.New(errs.ErrForbidden, "only an administrator can purge a reservation")
	}
	direct := u.uow.Direct()
	res, err := direct.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status == reservation.StatusPending {
		return nil, reservation.ErrStillPending
	}
	if err := direct.Reservations.DeleteIfStatus(ctx, reservationID, res.Status); err != nil {
		return nil, err
	}

	u.log.Info().
		Str("reservation_id", reservationID).
		Str("status", string(res.Status)).
		Str("admin_id", actor.UserID).
		Msg("reservation purged")
	return &Result{Success: true}, nil
}

func (u *Usecase) ListByBuyer(ctx context.Context, actor identity.Actor) ([]ReservationDTO, error) {
	if actor.UserID == "" {
		return nil, ErrUnauthenticated
	}
	rs, err := u.uow.Direct().Reservations.ListByBuyer(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

func (u *Usecase) ListByOwner(ctx context.Context, actor identity.Actor) ([]ReservationDTO, error) {
	if actor.UserID == "" {
		return nil, ErrUnauthenticated
	}
	rs, err := u.uow.Direct().Reservations.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

// claimed reports a lost race for the property as "not available".
func claimed(err error) error {
	if errors.Is(err, property.ErrStatusConflict) {
		return property.ErrNotAvailable
	}
	return err
}

// pending reports a lost race for the reservation as "no longer pending".
func pending(err error) error {
	if errors.Is(err, reservation.ErrStatusConflict) {
		return reservation.ErrNotPending
	}
	return err
}
