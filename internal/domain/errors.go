package domain

import "errors"

var (
	// ErrInvalidQuery is returned when match query parameters fail validation.
	// Checked once at the entry point, never retried.
	ErrInvalidQuery = errors.New("invalid match query")

	// ErrProfileLookup signals that preference storage was unreachable. It is
	// never folded into "no preferences"; callers see a retryable failure.
	ErrProfileLookup = errors.New("preference profile lookup failed")

	// ErrCatalogLookup signals that the property/investor listing fetch failed.
	ErrCatalogLookup = errors.New("catalog lookup failed")

	// ErrInvalidCriteria is returned when a preference payload is malformed,
	// e.g. a range whose min exceeds its max.
	ErrInvalidCriteria = errors.New("invalid preference criteria")

	ErrProfileNotFound  = errors.New("preference profile not found")
	ErrPropertyNotFound = errors.New("property not found")

	ErrInvalidStatusTransition = errors.New("invalid property status transition")
)
