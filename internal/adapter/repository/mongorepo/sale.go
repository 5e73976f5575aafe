package mongorepo

import (
	"context"

	"immofund-backend/internal/domain/sale"
	"immofund-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SaleRepository struct{ s store }

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{s: store{coll: db.Collection(docstore.CollSales)}}
}

func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	stampCreate(&s.CreatedAt, &s.UpdatedAt)
	return r.s.insert(ctx, s)
}

func (r *SaleRepository) GetByID(ctx context.Context, saleID string) (*sale.Sale, error) {
	var out sale.Sale
	if err := r.s.findByID(ctx, saleID, &out, sale.ErrNotFound); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *SaleRepository) CompareAndSetStatus(ctx context.Context, saleID string, from, to sale.Status) error {
	return casStatus(ctx, r.s, saleID, []sale.Status{from}, to, sale.ErrNotFound, sale.ErrStatusConflict)
}

func (r *SaleRepository) Delete(ctx context.Context, saleID string) error {
	return r.s.deleteByID(ctx, saleID)
}

func (r *SaleRepository) ListByBuyer(ctx context.Context, buyerID string) ([]sale.Sale, error) {
	out := []sale.Sale{}
	if err := r.s.find(ctx, bson.M{"buyerId": buyerID}, newestFirst, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SaleRepository) ListAll(ctx context.Context) ([]sale.Sale, error) {
	out := []sale.Sale{}
	if err := r.s.find(ctx, bson.M{}, newestFirst, &out); err != nil {
		return nil, err
	}
	return out, nil
}
