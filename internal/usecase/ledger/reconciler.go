// Package ledger checks that every project's collected amount matches the
// investments recorded against it.
package ledger

import (
	"context"
	"fmt"
	"time"

	"immofund-backend/internal/domain/uow"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Mismatch is a project whose counter disagrees with its investments.
type Mismatch struct {
	ProjectID string          `json:"project_id"`
	Collected decimal.Decimal `json:"collected"`
	Invested  decimal.Decimal `json:"invested"`
}

// Delta is collected minus invested.
func (m Mismatch) Delta() decimal.Decimal { return m.Collected.Sub(m.Invested) }

// Reconciler only reports. CollectedAmount is written solely by the
// investment coordinator.
type Reconciler struct {
	uow     uow.UnitOfWork
	log     zerolog.Logger
	timeout time.Duration
	settle  time.Duration
}

// recheckDelay gives an in-flight investment time to reach the ledger before
// a mismatching project is read a second time.
const recheckDelay = 100 * time.Millisecond

func NewReconciler(u uow.UnitOfWork, log zerolog.Logger, timeout time.Duration) *Reconciler {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Reconciler{uow: u, log: log.With().Str("component", "ledger").Logger(), timeout: timeout, settle: recheckDelay}
}

func (r *Reconciler) Name() string { return "ledger-reconcile" }

// Run satisfies scheduler.Job.
func (r *Reconciler) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	_, err := r.Check(ctx)
	return err
}

// Check compares each project's collected amount with the sum of its
// investments, both rounded to cents. The two values are separate reads, so a
// project that mismatches is read again after a short delay and reported
// only if it still disagrees.
func (r *Reconciler) Check(ctx context.Context) ([]Mismatch, error) {
	repos := r.uow.Direct()
	projects, err := repos.Projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	var out []Mismatch
	for _, p := range projects {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		m, err := r.compare(ctx, repos, p.ProjectID, p.CollectedAmount)
		if err != nil {
			return out, err
		}
		if m == nil {
			continue
		}
		if m, err = r.recheck(ctx, repos, p.ProjectID); err != nil {
			return out, err
		}
		if m == nil {
			r.log.Debug().Str("project_id", p.ProjectID).Msg("ledger mismatch settled on recheck")
			continue
		}
		r.log.Warn().
			Str("project_id", p.ProjectID).
			Str("collected", m.Collected.StringFixed(2)).
			Str("invested", m.Invested.StringFixed(2)).
			Str("delta", m.Delta().StringFixed(2)).
			Msg("ledger divergence")
		out = append(out, *m)
	}

	r.log.Info().Int("projects", len(projects)).Int("mismatches", len(out)).Msg("ledger reconciled")
	return out, nil
}

func (r *Reconciler) compare(ctx context.Context, repos uow.Repos, projectID string, collectedAmount float64) (*Mismatch, error) {
	sum, err := repos.Investments.SumByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("sum investments of %s: %w", projectID, err)
	}
	collected := decimal.NewFromFloat(collectedAmount).Round(2)
	invested := decimal.NewFromFloat(sum).Round(2)
	if collected.Equal(invested) {
		return nil, nil
	}
	return &Mismatch{ProjectID: projectID, Collected: collected, Invested: invested}, nil
}

func (r *Reconciler) recheck(ctx context.Context, repos uow.Repos, projectID string) (*Mismatch, error) {
	if r.settle > 0 {
		t := time.NewTimer(r.settle)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	p, err := repos.Projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("reload project %s: %w", projectID, err)
	}
	return r.compare(ctx, repos, projectID, p.CollectedAmount)
}
