package mongorepo

import (
	"context"

	"immofund-backend/internal/domain/property"
	"immofund-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/mongo"
)

type PropertyRepository struct{ s store }

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{s: store{coll: db.Collection(docstore.CollProperties)}}
}

func (r *PropertyRepository) Create(ctx context.Context, p *property.Property) error {
	stampCreate(&p.CreatedAt, &p.UpdatedAt)
	return r.s.insert(ctx, p)
}

func (r *PropertyRepository) GetByID(ctx context.Context, propertyID string) (*property.Property, error) {
	var out property.Property
	if err := r.s.findByID(ctx, propertyID, &out, property.ErrNotFound); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PropertyRepository) CompareAndSetStatus(ctx context.Context, propertyID string, from []property.Status, to property.Status) error {
	return casStatus(ctx, r.s, propertyID, property.Leavable(from, to), to,
		property.ErrNotFound, property.ErrStatusConflict)
}
