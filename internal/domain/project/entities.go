package project

import (
	"time"

	"immofund-backend/internal/domain/errs"
)

var (
	ErrNotFound = errs.New(errs.ErrNotFound, "project not found")
	ErrNotOpen  = errs.New(errs.ErrConflict, "project is not open for investment")
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusFunded Status = "funded"
	StatusClosed Status = "closed"
)

type Kind string

const (
	KindConstruction Kind = "construction"
	KindRenovation   Kind = "renovation"
)

// Table: projects / collection: projects
//
// CollectedAmount always equals the sum of the project's investments and is
// written only through Repository.ApplyInvestment.
type Project struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"-" bson:"-"`
	ProjectID       string    `gorm:"size:32;uniqueIndex:ux_projects_project_id" json:"project_id" bson:"_id"`
	PromoterID      string    `gorm:"size:32;index:idx_projects_promoter" json:"promoter_id" bson:"promoterId"`
	Title           string    `gorm:"size:255" json:"title" bson:"title"`
	Description     string    `gorm:"type:text" json:"description,omitempty" bson:"description,omitempty"`
	Kind            Kind      `gorm:"type:varchar(16)" json:"kind" bson:"kind"`
	Location        string    `gorm:"size:255" json:"location,omitempty" bson:"location,omitempty"`
	TargetAmount    float64   `gorm:"type:decimal(18,2)" json:"target_amount" bson:"targetAmount"`
	CollectedAmount float64   `gorm:"type:decimal(18,2);default:0" json:"collected_amount" bson:"collectedAmount"`
	Status          Status    `gorm:"type:varchar(16);default:'open'" json:"status" bson:"status"`
	YieldRate       float64   `gorm:"type:decimal(6,2)" json:"yield_rate" bson:"yieldRate"` // percent
	DurationMonths  int       `json:"duration_months" bson:"durationMonths"`
	ImageURL        string    `gorm:"type:text" json:"image_url,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at" bson:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at" bson:"updatedAt"`
}

func (Project) TableName() string { return "projects" }

func (k Kind) Valid() bool { return k == KindConstruction || k == KindRenovation }
