package domain

import (
	"time"

	"github.com/google/uuid"
)

// PriceRange is a closed interval in pence. Min == Max expresses an exact
// target price.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type BedroomsRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Criteria holds an investor's desired property attributes. Every field is
// independently optional; a nil pointer or nil slice means the investor has
// not expressed a preference on that dimension.
type Criteria struct {
	PriceRange    *PriceRange    `json:"price_range,omitempty"`
	BedroomsRange *BedroomsRange `json:"bedrooms_range,omitempty"`
	PropertyTypes []string       `json:"property_types,omitempty"`
	Locations     []string       `json:"locations,omitempty"` // city names and/or postcode prefixes
	Amenities     []string       `json:"amenities,omitempty"`
}

// IsEmpty reports whether no criterion at all has been configured. An empty
// Criteria short-circuits matching entirely.
func (c Criteria) IsEmpty() bool {
	return c.PriceRange == nil &&
		c.BedroomsRange == nil &&
		len(c.PropertyTypes) == 0 &&
		len(c.Locations) == 0 &&
		len(c.Amenities) == 0
}

// PreferenceProfile is an investor's stored preference set. An investor has at
// most one active profile; historical profiles are retained but never scored.
type PreferenceProfile struct {
	ID         uuid.UUID `json:"id" db:"id"`
	InvestorID uuid.UUID `json:"investor_id" db:"investor_id"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	Criteria   Criteria  `json:"criteria"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
