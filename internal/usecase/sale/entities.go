package sale

import (
	"time"

	"immofund-backend/internal/domain/sale"
)

type CreateInput struct {
	PropertyID string
	Amount     float64
}

type SaleDTO struct {
	SaleID     string    `json:"sale_id"`
	BuyerID    string    `json:"buyer_id"`
	PropertyID string    `json:"property_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDTO(s *sale.Sale) *SaleDTO {
	return &SaleDTO{
		SaleID:     s.SaleID,
		BuyerID:    s.BuyerID,
		PropertyID: s.PropertyID,
		Amount:     s.Amount,
		Status:     string(s.Status),
		CreatedAt:  s.CreatedAt,
	}
}

func toDTOs(ss []sale.Sale) []SaleDTO {
	out := make([]SaleDTO, 0, len(ss))
	for i := range ss {
		out = append(out, *toDTO(&ss[i]))
	}
	return out
}
