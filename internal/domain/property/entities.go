package property

import (
	"time"

	"immofund-backend/internal/domain/errs"
)

var (
	ErrNotFound       = errs.New(errs.ErrNotFound, "property not found")
	ErrNotAvailable   = errs.New(errs.ErrConflict, "property is not available")
	ErrStatusConflict = errs.New(errs.ErrConflict, "property status changed concurrently")
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusSold      Status = "sold" // terminal
)

type Category string

const (
	CategoryApartment Category = "apartment"
	CategoryHouse     Category = "house"
	CategoryOffice    Category = "office"
)

// Table: properties / collection: properties
type Property struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-" bson:"-"`
	PropertyID string    `gorm:"size:32;uniqueIndex:ux_properties_property_id" json:"property_id" bson:"_id"`
	OwnerID    string    `gorm:"size:32;index:idx_properties_owner" json:"owner_id" bson:"ownerId"`
	Title      string    `gorm:"size:255" json:"title" bson:"title"`
	Price      float64   `gorm:"type:decimal(18,2)" json:"price" bson:"price"`
	Category   Category  `gorm:"type:varchar(16)" json:"category" bson:"category"`
	Status     Status    `gorm:"type:varchar(16);default:'available'" json:"status" bson:"status"`
	ProjectID  string    `gorm:"size:32" json:"project_id,omitempty" bson:"projectId,omitempty"`
	ImageURL   string    `gorm:"type:text" json:"image_url,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at" bson:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at" bson:"updatedAt"`
}

func (Property) TableName() string { return "properties" }

// Leavable drops StatusSold from a CAS source set unless the move is to sold
// itself, so no transition can leave the terminal state.
func Leavable(from []Status, to Status) []Status {
	if to == StatusSold {
		return from
	}
	out := make([]Status, 0, len(from))
	for _, s := range from {
		if s != StatusSold {
			out = append(out, s)
		}
	}
	return out
}

func (c Category) Valid() bool {
	switch c {
	case CategoryApartment, CategoryHouse, CategoryOffice:
		return true
	}
	return false
}
