package preference

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lettora/lettora-backend/internal/domain"
	"github.com/lettora/lettora-backend/internal/repository"
)

type UseCase struct {
	preferenceRepo repository.PreferenceRepository
	logger         *zap.Logger
}

func NewUseCase(preferenceRepo repository.PreferenceRepository, logger *zap.Logger) *UseCase {
	return &UseCase{preferenceRepo: preferenceRepo, logger: logger}
}

// UpsertPreferencesRequest carries the investor's desired criteria. Every
// field is independently optional; omitting all of them is allowed and simply
// leaves the investor unmatched until something is configured.
type UpsertPreferencesRequest struct {
	PriceRange    *PriceRangeRequest    `json:"price_range" binding:"omitempty"`
	BedroomsRange *BedroomsRangeRequest `json:"bedrooms_range" binding:"omitempty"`
	PropertyTypes []string              `json:"property_types" binding:"omitempty,max=20,dive,min=1,max=50"`
	Locations     []string              `json:"locations" binding:"omitempty,max=50,dive,min=1,max=100"`
	Amenities     []string              `json:"amenities" binding:"omitempty,max=50,dive,min=1,max=50"`
}

type PriceRangeRequest struct {
	Min int64 `json:"min" binding:"min=0"`
	Max int64 `json:"max" binding:"min=0"`
}

type BedroomsRangeRequest struct {
	Min int `json:"min" binding:"min=0,max=50"`
	Max int `json:"max" binding:"min=0,max=50"`
}

// GetActive returns the investor's active profile, or ErrProfileNotFound.
func (uc *UseCase) GetActive(ctx context.Context, investorID uuid.UUID) (*domain.PreferenceProfile, error) {
	return uc.preferenceRepo.GetActiveByInvestorID(ctx, investorID)
}

// Upsert replaces the investor's active profile with a new one built from the
// request. The repository deactivates the predecessor transactionally so the
// at-most-one-active invariant holds.
func (uc *UseCase) Upsert(ctx context.Context, investorID uuid.UUID, req *UpsertPreferencesRequest) (*domain.PreferenceProfile, error) {
	criteria := domain.Criteria{
		PropertyTypes: req.PropertyTypes,
		Locations:     req.Locations,
		Amenities:     req.Amenities,
	}
	if req.PriceRange != nil {
		if req.PriceRange.Min > req.PriceRange.Max {
			return nil, fmt.Errorf("%w: price range min exceeds max", domain.ErrInvalidCriteria)
		}
		criteria.PriceRange = &domain.PriceRange{Min: req.PriceRange.Min, Max: req.PriceRange.Max}
	}
	if req.BedroomsRange != nil {
		if req.BedroomsRange.Min > req.BedroomsRange.Max {
			return nil, fmt.Errorf("%w: bedrooms range min exceeds max", domain.ErrInvalidCriteria)
		}
		criteria.BedroomsRange = &domain.BedroomsRange{Min: req.BedroomsRange.Min, Max: req.BedroomsRange.Max}
	}

	profile := &domain.PreferenceProfile{
		ID:         uuid.New(),
		InvestorID: investorID,
		IsActive:   true,
		Criteria:   criteria,
	}
	if err := uc.preferenceRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save preference profile: %w", err)
	}

	uc.logger.Info("preference profile updated",
		zap.String("investor_id", investorID.String()),
		zap.Bool("empty_criteria", criteria.IsEmpty()),
	)
	return profile, nil
}
