package propertymock

import (
	"context"
	"errors"

	"immofund-backend/internal/domain/property"
)

var _ property.Repository = (*Repo)(nil)

var ErrUnimplemented = errors.New("propertymock: method not implemented")

// Repo is a function-backed mock that satisfies property.Repository.
// Writes default to a nil error, reads to ErrUnimplemented.
type Repo struct {
	CreateFn              func(ctx context.Context, p *property.Property) error
	GetByIDFn             func(ctx context.Context, propertyID string) (*property.Property, error)
	CompareAndSetStatusFn func(ctx context.Context, propertyID string, from []property.Status, to property.Status) error
}

func (m *Repo) Create(ctx context.Context, p *property.Property) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, propertyID string) (*property.Property, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, propertyID)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) CompareAndSetStatus(ctx context.Context, propertyID string, from []property.Status, to property.Status) error {
	if m.CompareAndSetStatusFn != nil {
		return m.CompareAndSetStatusFn(ctx, propertyID, from, to)
	}
	return nil
}
