package saga

import (
	"context"
	"errors"
	"fmt"

	"immofund-backend/internal/domain/errs"
	"immofund-backend/internal/domain/uow"

	"github.com/rs/zerolog"
)

// Plan builds the steps of an operation against a set of repositories. It is
// called once per attempt so every attempt starts from fresh values.
type Plan func(r uow.Repos) []Step

// ErrCommitUnknown marks a transaction whose steps all succeeded but whose
// commit reported an error. The writes may or may not be durable.
var ErrCommitUnknown = errors.New("transaction commit outcome unknown")

type Executor struct {
	uow uow.UnitOfWork
	log zerolog.Logger
}

func NewExecutor(u uow.UnitOfWork, log zerolog.Logger) *Executor {
	return &Executor{uow: u, log: log.With().Str("component", "saga").Logger()}
}

// Execute runs the plan in one transaction. Precondition failures (not found,
// conflict, forbidden, validation) are returned as they are. Any other
// failure, including a store without transactions, gets exactly one
// sequential attempt with compensation on the direct repositories. A failure
// after every step succeeded is a commit with an unknown outcome and is never
// replayed.
func (e *Executor) Execute(ctx context.Context, name string, plan Plan) error {
	applied := false
	err := e.uow.WithinTx(ctx, func(r uow.Repos) error {
		applied = false
		for _, s := range plan(r) {
			if err := s.Do(ctx); err != nil {
				return err
			}
		}
		applied = true
		return nil
	})
	if err == nil || errs.IsPrecondition(err) {
		return err
	}
	if applied {
		e.log.Error().Err(err).Str("saga", name).Msg("transaction commit failed after all steps applied")
		return fmt.Errorf("%s: %w: %w", name, ErrCommitUnknown, err)
	}
	if ctx.Err() != nil {
		return err
	}

	ev := e.log.Warn()
	if errors.Is(err, uow.ErrTxUnsupported) {
		ev = e.log.Debug()
	}
	ev.Err(err).Str("saga", name).Msg("transaction not applied, running sequential steps")

	return Run(ctx, e.log, name, plan(e.uow.Direct()))
}
