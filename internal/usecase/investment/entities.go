package investment

import (
	"time"

	"immofund-backend/internal/domain/investment"
)

type InvestInput struct {
	ProjectID string
	Amount    float64
}

type InvestmentDTO struct {
	InvestmentID   string    `json:"investment_id"`
	InvestorID     string    `json:"investor_id"`
	ProjectID      string    `json:"project_id"`
	PromoterID     string    `json:"promoter_id"`
	Amount         float64   `json:"amount"`
	InvestedAt     time.Time `json:"invested_at"`
	YieldRate      float64   `json:"yield_rate"`
	DurationMonths int       `json:"duration_months"`
	MaturityDate   time.Time `json:"maturity_date"`
	ExpectedYield  float64   `json:"expected_yield"`
	RealizedYield  float64   `json:"realized_yield"`
	Status         string    `json:"status"`

	// Ledger state right after this investment was counted; only set by Invest.
	ProjectCollected float64 `json:"project_collected,omitempty"`
	ProjectStatus    string  `json:"project_status,omitempty"`
}

func toDTO(inv *investment.Investment) *InvestmentDTO {
	return &InvestmentDTO{
		InvestmentID:   inv.InvestmentID,
		InvestorID:     inv.InvestorID,
		ProjectID:      inv.ProjectID,
		PromoterID:     inv.PromoterID,
		Amount:         inv.Amount,
		InvestedAt:     inv.InvestedAt,
		YieldRate:      inv.YieldRate,
		DurationMonths: inv.DurationMonths,
		MaturityDate:   inv.MaturityDate,
		ExpectedYield:  inv.ExpectedYield,
		RealizedYield:  inv.RealizedYield,
		Status:         string(inv.Status),
	}
}

func toDTOs(invs []investment.Investment) []InvestmentDTO {
	out := make([]InvestmentDTO, 0, len(invs))
	for i := range invs {
		out = append(out, *toDTO(&invs[i]))
	}
	return out
}
