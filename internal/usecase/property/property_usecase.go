package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lettora/lettora-backend/internal/domain"
	"github.com/lettora/lettora-backend/internal/repository"
)

type UseCase struct {
	propertyRepo repository.PropertyRepository
	logger       *zap.Logger
}

func NewUseCase(propertyRepo repository.PropertyRepository, logger *zap.Logger) *UseCase {
	return &UseCase{propertyRepo: propertyRepo, logger: logger}
}

// CreatePropertyRequest is the landlord-facing listing payload. New listings
// start in pending until approved, so they never leak into matching early.
type CreatePropertyRequest struct {
	Title        string   `json:"title" binding:"required,min=3,max=200"`
	PriceMonthly int64    `json:"price_monthly" binding:"required,min=1"`
	Bedrooms     int      `json:"bedrooms" binding:"min=0,max=50"`
	PropertyType string   `json:"property_type" binding:"required,min=2,max=50"`
	City         string   `json:"city" binding:"required,min=1,max=100"`
	Postcode     string   `json:"postcode" binding:"required,min=2,max=10"`
	Amenities    []string `json:"amenities" binding:"omitempty,max=50,dive,min=1,max=50"`
}

type ListPropertiesQuery struct {
	Status *domain.PropertyStatus
	Limit  int
	Offset int
}

func (uc *UseCase) Create(ctx context.Context, landlordID uuid.UUID, req *CreatePropertyRequest) (*domain.Property, error) {
	p := &domain.Property{
		ID:           uuid.New(),
		LandlordID:   landlordID,
		Title:        req.Title,
		Status:       domain.PropertyStatusPending,
		PriceMonthly: req.PriceMonthly,
		Bedrooms:     req.Bedrooms,
		PropertyType: req.PropertyType,
		City:         req.City,
		Postcode:     req.Postcode,
		Amenities:    req.Amenities,
	}
	if err := uc.propertyRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	uc.logger.Info("property created",
		zap.String("property_id", p.ID.String()),
		zap.String("landlord_id", landlordID.String()),
	)
	return p, nil
}

func (uc *UseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	return uc.propertyRepo.GetByID(ctx, id)
}

func (uc *UseCase) List(ctx context.Context, q ListPropertiesQuery) ([]*domain.Property, error) {
	if q.Limit <= 0 || q.Limit > domain.MaxLimit {
		q.Limit = domain.DefaultLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return uc.propertyRepo.List(ctx, q.Status, q.Limit, q.Offset)
}

// UpdateStatus moves a listing through its lifecycle. Archived is terminal.
func (uc *UseCase) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PropertyStatus) (*domain.Property, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidStatusTransition, status)
	}
	current, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.PropertyStatusArchived && status != domain.PropertyStatusArchived {
		return nil, fmt.Errorf("%w: archived listings cannot be revived", domain.ErrInvalidStatusTransition)
	}
	if err := uc.propertyRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	current.Status = status

	uc.logger.Info("property status updated",
		zap.String("property_id", id.String()),
		zap.String("status", string(status)),
	)
	return current, nil
}
