package mongorepo

import (
	"context"
	"fmt"

	"immofund-backend/internal/domain/investment"
	"immofund-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type InvestmentRepository struct{ s store }

func NewInvestmentRepository(db *mongo.Database) *InvestmentRepository {
	return &InvestmentRepository{s: store{coll: db.Collection(docstore.CollInvestments)}}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *investment.Investment) error {
	stampCreate(&inv.CreatedAt, &inv.UpdatedAt)
	return r.s.insert(ctx, inv)
}

func (r *InvestmentRepository) Delete(ctx context.Context, investmentID string) error {
	return r.s.deleteByID(ctx, investmentID)
}

var byInvestedAt = bson.D{{Key: "investedAt", Value: -1}, {Key: "_id", Value: -1}}

func (r *InvestmentRepository) ListByInvestor(ctx context.Context, investorID string) ([]investment.Investment, error) {
	out := []investment.Investment{}
	if err := r.s.find(ctx, bson.M{"investorId": investorID}, byInvestedAt, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InvestmentRepository) ListAll(ctx context.Context) ([]investment.Investment, error) {
	out := []investment.Investment{}
	if err := r.s.find(ctx, bson.M{}, byInvestedAt, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InvestmentRepository) SumByProject(ctx context.Context, projectID string) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"projectId": projectID}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}
	cur, err := r.s.coll.Aggregate(r.s.bind(ctx), pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum investments: %w", err)
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(r.s.bind(ctx), &rows); err != nil {
		return 0, fmt.Errorf("sum investments: decode: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
