package matching

import "fmt"

// Weights defines how much each criterion contributes to the aggregate match
// score. Values are percentage points and must sum to 100. The distribution
// is a policy constant tuned centrally, never a per-request parameter.
type Weights struct {
	Price        int `json:"price" mapstructure:"price"`
	Bedrooms     int `json:"bedrooms" mapstructure:"bedrooms"`
	PropertyType int `json:"property_type" mapstructure:"property_type"`
	Location     int `json:"location" mapstructure:"location"`
	Amenities    int `json:"amenities" mapstructure:"amenities"`
}

// DefaultWeights returns the baseline distribution.
func DefaultWeights() Weights {
	return Weights{
		Price:        30,
		Bedrooms:     20,
		PropertyType: 20,
		Location:     20,
		Amenities:    10,
	}
}

// Validate checks that the distribution is well formed.
func (w Weights) Validate() error {
	for _, v := range []int{w.Price, w.Bedrooms, w.PropertyType, w.Location, w.Amenities} {
		if v < 0 {
			return fmt.Errorf("matching weights must not be negative: %+v", w)
		}
	}
	if sum := w.Price + w.Bedrooms + w.PropertyType + w.Location + w.Amenities; sum != 100 {
		return fmt.Errorf("matching weights must sum to 100, got %d", sum)
	}
	return nil
}
