package reservation

import (
	"time"

	"immofund-backend/internal/domain/reservation"
)

type CreateInput struct {
	PropertyID     string
	LoanSimulation map[string]any
}

type ReservationDTO struct {
	ReservationID  string         `json:"reservation_id"`
	PropertyID     string         `json:"property_id"`
	BuyerID        string         `json:"buyer_id"`
	OwnerID        string         `json:"owner_id"`
	Status         string         `json:"status"`
	LoanSimulation map[string]any `json:"loan_simulation,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// Result acknowledges operations that return no record.
type Result struct {
	Success bool `json:"success"`
}

func toDTO(r *reservation.Reservation) *ReservationDTO {
	return &ReservationDTO{
		ReservationID:  r.ReservationID,
		PropertyID:     r.PropertyID,
		BuyerID:        r.BuyerID,
		OwnerID:        r.OwnerID,
		Status:         string(r.Status),
		LoanSimulation: r.LoanSimulation,
		CreatedAt:      r.CreatedAt,
	}
}

func toDTOs(rs []reservation.Reservation) []ReservationDTO {
	out := make([]ReservationDTO, 0, len(rs))
	for i := range rs {
		out = append(out, *toDTO(&rs[i]))
	}
	return out
}
