package reservation

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"immofund-backend/internal/domain/errs"
)

var (
	ErrNotFound        = errs.New(errs.ErrNotFound, "reservation not found")
	ErrNotPending      = errs.New(errs.ErrConflict, "reservation is no longer pending")
	ErrStillPending    = errs.New(errs.ErrConflict, "reservation is still pending; cancel it instead")
	ErrStatusConflict  = errs.New(errs.ErrConflict, "reservation status changed concurrently")
	ErrInvalidDecision = errs.New(errs.ErrValidation, "decision must be accepted or rejected")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Decision is the target status of a resolution.
func (s Status) Decision() bool { return s == StatusAccepted || s == StatusRejected }

// Table: reservations / collection: reservations
//
// OwnerID is the property owner at reservation time; later ownership changes
// do not rewrite it. Cancellation deletes the row.
type Reservation struct {
	ID             uint64         `gorm:"primaryKey;column:id" json:"-" bson:"-"`
	ReservationID  string         `gorm:"size:32;uniqueIndex:ux_reservations_reservation_id" json:"reservation_id" bson:"_id"`
	PropertyID     string         `gorm:"size:32;index:idx_reservations_property" json:"property_id" bson:"propertyId"`
	BuyerID        string         `gorm:"size:32;index:idx_reservations_buyer" json:"buyer_id" bson:"buyerId"`
	OwnerID        string         `gorm:"size:32;index:idx_reservations_owner" json:"owner_id" bson:"ownerId"`
	Status         Status         `gorm:"type:varchar(16);default:'pending'" json:"status" bson:"status"`
	LoanSimulation LoanSimulation `gorm:"type:text" json:"loan_simulation,omitempty" bson:"loanSimulation,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at" bson:"createdAt"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at" bson:"updatedAt"`
}

func (Reservation) TableName() string { return "reservations" }

// LoanSimulation is an opaque snapshot supplied by the buyer's client. It is
// stored as JSON text in SQL and as an embedded document in Mongo.
type LoanSimulation map[string]any

func (l LoanSimulation) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *LoanSimulation) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("loan simulation: unsupported type %T", src)
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(raw, l)
}
