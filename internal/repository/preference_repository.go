package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lettora/lettora-backend/internal/domain"
)

type PreferenceRepository interface {
	// GetActiveByInvestorID returns the investor's single active profile, or
	// domain.ErrProfileNotFound when none exists.
	GetActiveByInvestorID(ctx context.Context, investorID uuid.UUID) (*domain.PreferenceProfile, error)
	// Upsert stores the profile as the investor's active one, deactivating any
	// predecessor in the same transaction.
	Upsert(ctx context.Context, profile *domain.PreferenceProfile) error
	// ListActive returns every active profile; empty-criteria profiles are
	// included and filtered by the caller.
	ListActive(ctx context.Context) ([]*domain.PreferenceProfile, error)
}
