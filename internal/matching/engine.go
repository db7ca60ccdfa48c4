// Package matching implements the investor-property compatibility scorer: one
// pure evaluator per criterion, a weighted aggregator and deterministic
// ranking with pagination. The engine holds no mutable state; every score is
// recomputed from its inputs at call time.
package matching

import (
	"math"

	"github.com/lettora/lettora-backend/internal/domain"
)

type Engine struct {
	weights Weights
}

func NewEngine(w Weights) *Engine {
	return &Engine{weights: w}
}

// Score computes the 0-100 aggregate match score for one (criteria, property)
// pair. The result is a pure function of its inputs; a single round-half-up
// applied once at the end keeps it identical across platforms and invocations.
//
// Callers are expected to have short-circuited empty criteria already; an
// empty Criteria here scores 100 on every dimension by the neutral-unset rule.
func (e *Engine) Score(c domain.Criteria, p domain.Property) int {
	total := float64(e.weights.Price)*priceScore(c.PriceRange, p.PriceMonthly) +
		float64(e.weights.Bedrooms)*bedroomsScore(c.BedroomsRange, p.Bedrooms) +
		float64(e.weights.PropertyType)*propertyTypeScore(c.PropertyTypes, p.PropertyType) +
		float64(e.weights.Location)*locationScore(c.Locations, p.City, p.Postcode) +
		float64(e.weights.Amenities)*amenitiesScore(c.Amenities, p.Amenities)

	score := int(math.Floor(total/100 + 0.5))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
