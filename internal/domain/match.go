package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultMinScore = 60
	DefaultLimit    = 20
	MaxLimit        = 50
)

// MatchQuery carries the paging and threshold parameters of one matching
// request. Limit and offset apply strictly after filtering and sorting.
type MatchQuery struct {
	MinScore int `json:"min_score"`
	Limit    int `json:"limit"`
	Offset   int `json:"offset"`
}

// DefaultMatchQuery returns the query used when the caller supplies nothing.
func DefaultMatchQuery() MatchQuery {
	return MatchQuery{MinScore: DefaultMinScore, Limit: DefaultLimit, Offset: 0}
}

// Validate rejects out-of-range parameters before any scoring work begins.
func (q MatchQuery) Validate() error {
	if q.MinScore < 0 || q.MinScore > 100 {
		return fmt.Errorf("%w: min_score must be in [0,100], got %d", ErrInvalidQuery, q.MinScore)
	}
	if q.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidQuery, q.Limit)
	}
	if q.Limit > MaxLimit {
		return fmt.Errorf("%w: limit must not exceed %d, got %d", ErrInvalidQuery, MaxLimit, q.Limit)
	}
	if q.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative, got %d", ErrInvalidQuery, q.Offset)
	}
	return nil
}

// PropertyMatch is one scored property in an investor's result page.
type PropertyMatch struct {
	Property Property  `json:"property"`
	Score    int       `json:"score"`
	ScoredAt time.Time `json:"scored_at"`
}

// InvestorMatch is one scored investor in a property's result page.
type InvestorMatch struct {
	InvestorID uuid.UUID `json:"investor_id"`
	Score      int       `json:"score"`
	ScoredAt   time.Time `json:"scored_at"`
}
