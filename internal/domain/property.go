package domain

import (
	"time"

	"github.com/google/uuid"
)

// PropertyStatus is the listing lifecycle state. Only active properties
// participate in investor-facing matching.
type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusPending  PropertyStatus = "pending"
	PropertyStatusDraft    PropertyStatus = "draft"
	PropertyStatusArchived PropertyStatus = "archived"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusActive, PropertyStatusPending, PropertyStatusDraft, PropertyStatusArchived:
		return true
	}
	return false
}

type Property struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	LandlordID   uuid.UUID      `json:"landlord_id" db:"landlord_id"`
	Title        string         `json:"title" db:"title"`
	Status       PropertyStatus `json:"status" db:"status"`
	PriceMonthly int64          `json:"price_monthly" db:"price_monthly"` // pence
	Bedrooms     int            `json:"bedrooms" db:"bedrooms"`
	PropertyType string         `json:"property_type" db:"property_type"`
	City         string         `json:"city" db:"city"`
	Postcode     string         `json:"postcode" db:"postcode"`
	Amenities    []string       `json:"amenities" db:"amenities"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}
