package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lettora/lettora-backend/internal/domain"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	List(ctx context.Context, status *domain.PropertyStatus, limit, offset int) ([]*domain.Property, error)
	// ListActive returns the full active catalog in one read; the matching
	// facade fetches it once per call, never per candidate.
	ListActive(ctx context.Context) ([]*domain.Property, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PropertyStatus) error
}
