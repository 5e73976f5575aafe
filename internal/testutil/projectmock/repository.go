package projectmock

import (
	"context"
	"errors"

	"immofund-backend/internal/domain/project"
)

var _ project.Repository = (*Repo)(nil)

var ErrUnimplemented = errors.New("projectmock: method not implemented")

// Repo is a function-backed mock that satisfies project.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, p *project.Project) error
	GetByIDFn         func(ctx context.Context, projectID string) (*project.Project, error)
	ListFn            func(ctx context.Context) ([]project.Project, error)
	ApplyInvestmentFn func(ctx context.Context, projectID string, amount float64) (*project.Project, error)
}

func (m *Repo) Create(ctx context.Context, p *project.Project) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, projectID string) (*project.Project, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, projectID)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]project.Project, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ApplyInvestment(ctx context.Context, projectID string, amount float64) (*project.Project, error) {
	if m.ApplyInvestmentFn != nil {
		return m.ApplyInvestmentFn(ctx, projectID, amount)
	}
	return nil, ErrUnimplemented
}
