package sale

import (
	"time"

	"immofund-backend/internal/domain/errs"
)

var (
	ErrNotFound       = errs.New(errs.ErrNotFound, "sale not found")
	ErrNotInProgress  = errs.New(errs.ErrConflict, "sale is not in progress")
	ErrStatusConflict = errs.New(errs.ErrConflict, "sale status changed concurrently")
	ErrInvalidAmount  = errs.New(errs.ErrValidation, "sale amount must be positive with at most two decimals")
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Sale is a direct purchase of a property (no owner approval step).
// Table: sales / collection: sales
type Sale struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-" bson:"-"`
	SaleID     string    `gorm:"size:32;uniqueIndex:ux_sales_sale_id" json:"sale_id" bson:"_id"`
	BuyerID    string    `gorm:"size:32;index:idx_sales_buyer" json:"buyer_id" bson:"buyerId"`
	PropertyID string    `gorm:"size:32;index:idx_sales_property" json:"property_id" bson:"propertyId"`
	Amount     float64   `gorm:"type:decimal(18,2)" json:"amount" bson:"amount"`
	Status     Status    `gorm:"type:varchar(16);default:'in_progress'" json:"status" bson:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at" bson:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at" bson:"updatedAt"`
}

func (Sale) TableName() string { return "sales" }
