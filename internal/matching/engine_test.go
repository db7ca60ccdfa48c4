package matching

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lettora/lettora-backend/internal/domain"
)

func testProperty(price int64, bedrooms int, propertyType string) domain.Property {
	return domain.Property{
		ID:           uuid.New(),
		Status:       domain.PropertyStatusActive,
		PriceMonthly: price,
		Bedrooms:     bedrooms,
		PropertyType: propertyType,
		City:         "Leeds",
		Postcode:     "LS1 4AP",
		CreatedAt:    time.Now(),
	}
}

func TestScoreFullySatisfiedProfile(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	criteria := domain.Criteria{
		PriceRange:    &domain.PriceRange{Min: 100_000, Max: 150_000},
		BedroomsRange: &domain.BedroomsRange{Min: 2, Max: 3},
		PropertyTypes: []string{"flat"},
	}

	// All set criteria satisfied, location/amenities neutral.
	assert.Equal(t, 100, engine.Score(criteria, testProperty(120_000, 2, "flat")))
}

func TestScorePriceMissWithExampleWeights(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	criteria := domain.Criteria{
		PriceRange:    &domain.PriceRange{Min: 100_000, Max: 150_000},
		BedroomsRange: &domain.BedroomsRange{Min: 2, Max: 3},
		PropertyTypes: []string{"flat"},
	}

	// 200000 is a full decay band beyond the max: price sub-score 0, the
	// price weight (30) drops out, everything else stays at 100.
	score := engine.Score(criteria, testProperty(200_000, 2, "flat"))
	assert.Equal(t, 70, score)
	assert.GreaterOrEqual(t, score, 60, "passes the default threshold")
	assert.Less(t, score, 80, "fails a stricter threshold")
}

func TestScoreDeterminism(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	criteria := domain.Criteria{
		PriceRange:    &domain.PriceRange{Min: 90_000, Max: 140_000},
		BedroomsRange: &domain.BedroomsRange{Min: 1, Max: 2},
		PropertyTypes: []string{"flat", "hmo"},
		Locations:     []string{"leeds", "LS"},
		Amenities:     []string{"garden", "parking", "lift"},
	}
	p := testProperty(152_000, 3, "flat")
	p.Amenities = []string{"garden"}

	first := engine.Score(criteria, p)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, engine.Score(criteria, p))
	}
}

func TestScoreRangeInvariant(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	profiles := []domain.Criteria{
		{},
		{PriceRange: &domain.PriceRange{Min: 0, Max: 0}},
		{PriceRange: &domain.PriceRange{Min: 50_000, Max: 60_000}, BedroomsRange: &domain.BedroomsRange{Min: 10, Max: 12}},
		{PropertyTypes: []string{"castle"}, Locations: []string{"nowhere"}, Amenities: []string{"moat", "drawbridge"}},
	}
	properties := []domain.Property{
		testProperty(1, 0, ""),
		testProperty(10_000_000, 50, "flat"),
		testProperty(55_000, 11, "hmo"),
	}

	for _, c := range profiles {
		for _, p := range properties {
			score := engine.Score(c, p)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestScoreRoundsHalfUpOnce(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	// Amenities coverage 1/2 with every other criterion unset:
	// (30+20+20+20)*100/100 + 10*50/100 = 95 exactly. Coverage 1/3 gives
	// 90 + 10/3 = 93.33… which must round down to 93; coverage 2/3 gives
	// 96.66… which must round up to 97.
	p := testProperty(1, 1, "flat")
	p.Amenities = []string{"garden"}

	assert.Equal(t, 95, engine.Score(domain.Criteria{Amenities: []string{"garden", "parking"}}, p))
	assert.Equal(t, 93, engine.Score(domain.Criteria{Amenities: []string{"garden", "parking", "lift"}}, p))

	p.Amenities = []string{"garden", "parking"}
	assert.Equal(t, 97, engine.Score(domain.Criteria{Amenities: []string{"garden", "parking", "lift"}}, p))
}

func TestWeightsValidate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())
	assert.Error(t, Weights{Price: 50, Bedrooms: 20, PropertyType: 20, Location: 20, Amenities: 10}.Validate())
	assert.Error(t, Weights{Price: 120, Bedrooms: -20, PropertyType: 0, Location: 0, Amenities: 0}.Validate())
}
