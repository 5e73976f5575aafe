package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"immofund-backend/internal/domain/project"
	"immofund-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProjectRepository struct{ s store }

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{s: store{coll: db.Collection(docstore.CollProjects)}}
}

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	stampCreate(&p.CreatedAt, &p.UpdatedAt)
	return r.s.insert(ctx, p)
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (*project.Project, error) {
	var out project.Project
	if err := r.s.findByID(ctx, projectID, &out, project.ErrNotFound); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	out := []project.Project{}
	if err := r.s.find(ctx, bson.M{}, bson.D{{Key: "createdAt", Value: 1}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyInvestment is one FindOneAndUpdate with an update pipeline: the second
// stage sees the incremented amount, so the funded flip and the increment
// land in the same document write.
func (r *ProjectRepository) ApplyInvestment(ctx context.Context, projectID string, amount float64) (*project.Project, error) {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "collectedAmount", Value: bson.D{{Key: "$add", Value: bson.A{"$collectedAmount", amount}}}},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
		{{Key: "$set", Value: bson.D{
			{Key: "status", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$gte", Value: bson.A{"$collectedAmount", "$targetAmount"}}},
				string(project.StatusFunded),
				"$status",
			}}}},
		}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out project.Project
	err := r.s.coll.FindOneAndUpdate(r.s.bind(ctx),
		bson.M{"_id": projectID, "status": string(project.StatusOpen)},
		update, opts,
	).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, r.s.missingOr(ctx, projectID, project.ErrNotFound, project.ErrNotOpen)
	}
	if err != nil {
		return nil, fmt.Errorf("apply investment: %w", err)
	}
	return &out, nil
}
