package investment

import (
	"time"

	"github.com/shopspring/decimal"

	"immofund-backend/internal/domain/errs"
	"immofund-backend/internal/domain/project"
)

var (
	ErrNotFound      = errs.New(errs.ErrNotFound, "investment not found")
	ErrInvalidAmount = errs.New(errs.ErrValidation, "investment amount must be positive with at most two decimals")
)

type Status string

const (
	StatusActive  Status = "active"
	StatusMatured Status = "matured"
)

// Table: investments / collection: investments
//
// YieldRate, DurationMonths and PromoterID are copied from the project when the
// investment is made and never follow later changes to the project.
type Investment struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-" bson:"-"`
	InvestmentID   string    `gorm:"size:32;uniqueIndex:ux_investments_investment_id" json:"investment_id" bson:"_id"`
	InvestorID     string    `gorm:"size:32;index:idx_investments_investor" json:"investor_id" bson:"investorId"`
	ProjectID      string    `gorm:"size:32;index:idx_investments_project" json:"project_id" bson:"projectId"`
	PromoterID     string    `gorm:"size:32" json:"promoter_id" bson:"promoterId"`
	Amount         float64   `gorm:"type:decimal(18,2)" json:"amount" bson:"amount"`
	InvestedAt     time.Time `json:"invested_at" bson:"investedAt"`
	YieldRate      float64   `gorm:"type:decimal(6,2)" json:"yield_rate" bson:"yieldRate"`
	DurationMonths int       `json:"duration_months" bson:"durationMonths"`
	MaturityDate   time.Time `json:"maturity_date" bson:"maturityDate"`
	ExpectedYield  float64   `gorm:"type:decimal(18,2)" json:"expected_yield" bson:"expectedYield"`
	RealizedYield  float64   `gorm:"type:decimal(18,2);default:0" json:"realized_yield" bson:"realizedYield"`
	Status         Status    `gorm:"type:varchar(16);default:'active'" json:"status" bson:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at" bson:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at" bson:"updatedAt"`
}

func (Investment) TableName() string { return "investments" }

// Stamp builds an active investment carrying the project's current terms.
func Stamp(p *project.Project, investorID string, amount float64, at time.Time) *Investment {
	at = at.UTC()
	return &Investment{
		InvestorID:     investorID,
		ProjectID:      p.ProjectID,
		PromoterID:     p.PromoterID,
		Amount:         amount,
		InvestedAt:     at,
		YieldRate:      p.YieldRate,
		DurationMonths: p.DurationMonths,
		MaturityDate:   at.AddDate(0, p.DurationMonths, 0),
		ExpectedYield:  ExpectedYield(amount, p.YieldRate),
		Status:         StatusActive,
	}
}

// ExpectedYield = amount * rate% rounded to cents.
func ExpectedYield(amount, ratePercent float64) float64 {
	y := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(ratePercent)).
		Div(decimal.NewFromInt(100)).
		Round(2)
	f, _ := y.Float64()
	return f
}
