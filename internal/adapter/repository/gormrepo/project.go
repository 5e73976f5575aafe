package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"immofund-backend/internal/domain/project"

	"gorm.io/gorm"
)

type ProjectRepository struct{ db *gorm.DB }

func NewProjectRepository(db *gorm.DB) *ProjectRepository { return &ProjectRepository{db: db} }

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (*project.Project, error) {
	var out project.Project
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, project.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &out, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	var out []project.Project
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

// applyInvestmentSQL increments the ledger and flips the status in one
// statement. status is assigned first: MySQL evaluates SET left to right and
// would otherwise compare against the already incremented amount.
const applyInvestmentSQL = `UPDATE projects
SET status = CASE WHEN collected_amount + ? >= target_amount THEN ? ELSE status END,
    collected_amount = collected_amount + ?,
    updated_at = ?
WHERE project_id = ? AND status = ?`

// ApplyInvestment runs the update and the read-back in one transaction (a
// savepoint when already inside one), so the returned row is exactly the
// state this write produced, like FindOneAndUpdate on a document store.
func (r *ProjectRepository) ApplyInvestment(ctx context.Context, projectID string, amount float64) (*project.Project, error) {
	var out *project.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(applyInvestmentSQL,
			amount, string(project.StatusFunded), amount, time.Now().UTC(),
			projectID, string(project.StatusOpen))
		if res.Error != nil {
			return fmt.Errorf("apply investment: %w", res.Error)
		}

		p, err := (&ProjectRepository{db: tx}).GetByID(ctx, projectID)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return project.ErrNotOpen
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
