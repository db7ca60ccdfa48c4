package matching

import (
	"strings"

	"github.com/lettora/lettora-backend/internal/domain"
)

// Criterion evaluators. Each takes one preference field (possibly unset) and
// the corresponding property attribute and returns a sub-score in [0,100].
// Every evaluator is total: any profile/property shape yields a score, and an
// unset preference is neutral (100), never a penalty.

// exactPriceBand is the decay band in pence when the preferred price range has
// zero width, i.e. the investor named an exact target price. Within the band
// the score decays linearly, beyond it the score is 0.
const exactPriceBand int64 = 25_000

// bedroomStepPenalty is subtracted per bedroom of deviation outside the
// preferred range.
const bedroomStepPenalty = 25.0

func priceScore(pref *domain.PriceRange, priceMonthly int64) float64 {
	if pref == nil {
		return 100
	}
	if priceMonthly >= pref.Min && priceMonthly <= pref.Max {
		return 100
	}
	var dist int64
	if priceMonthly < pref.Min {
		dist = pref.Min - priceMonthly
	} else {
		dist = priceMonthly - pref.Max
	}
	band := (pref.Max - pref.Min) / 2
	if band <= 0 {
		band = exactPriceBand
	}
	if dist >= band {
		return 0
	}
	return 100 * (1 - float64(dist)/float64(band))
}

func bedroomsScore(pref *domain.BedroomsRange, bedrooms int) float64 {
	if pref == nil {
		return 100
	}
	if bedrooms >= pref.Min && bedrooms <= pref.Max {
		return 100
	}
	var steps int
	if bedrooms < pref.Min {
		steps = pref.Min - bedrooms
	} else {
		steps = bedrooms - pref.Max
	}
	s := 100 - bedroomStepPenalty*float64(steps)
	if s < 0 {
		return 0
	}
	return s
}

func propertyTypeScore(pref []string, propertyType string) float64 {
	if len(pref) == 0 {
		return 100
	}
	pt := normalize(propertyType)
	for _, want := range pref {
		if normalize(want) == pt {
			return 100
		}
	}
	return 0
}

// locationScore matches either the city exactly or the postcode by prefix,
// both case-insensitive. A single preferred token may be either kind.
func locationScore(pref []string, city, postcode string) float64 {
	if len(pref) == 0 {
		return 100
	}
	c := normalize(city)
	pc := compactPostcode(postcode)
	for _, want := range pref {
		w := normalize(want)
		if w == "" {
			continue
		}
		if w == c {
			return 100
		}
		if strings.HasPrefix(pc, compactPostcode(want)) {
			return 100
		}
	}
	return 0
}

// amenitiesScore gives partial credit proportional to coverage of the
// requested amenities. Extra amenities on the property are neither rewarded
// nor penalised.
func amenitiesScore(pref []string, amenities []string) float64 {
	if len(pref) == 0 {
		return 100
	}
	have := make(map[string]struct{}, len(amenities))
	for _, a := range amenities {
		have[normalize(a)] = struct{}{}
	}
	covered := 0
	for _, want := range pref {
		if _, ok := have[normalize(want)]; ok {
			covered++
		}
	}
	return 100 * float64(covered) / float64(len(pref))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// compactPostcode lowercases and strips internal whitespace so that "SW1A 1AA"
// matches the prefix "sw1a".
func compactPostcode(s string) string {
	return strings.ReplaceAll(normalize(s), " ", "")
}
