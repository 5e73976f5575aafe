package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"immofund-backend/internal/domain/property"

	"gorm.io/gorm"
)

type PropertyRepository struct{ db *gorm.DB }

func NewPropertyRepository(db *gorm.DB) *PropertyRepository { return &PropertyRepository{db: db} }

func (r *PropertyRepository) Create(ctx context.Context, p *property.Property) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create property: %w", err)
	}
	return nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, propertyID string) (*property.Property, error) {
	var out property.Property
	err := r.db.WithContext(ctx).Where("property_id = ?", propertyID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, property.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}
	return &out, nil
}

func (r *PropertyRepository) CompareAndSetStatus(ctx context.Context, propertyID string, from []property.Status, to property.Status) error {
	return casStatus(ctx, r.db, &property.Property{}, "property_id", propertyID,
		property.Leavable(from, to), to, property.ErrNotFound, property.ErrStatusConflict)
}
