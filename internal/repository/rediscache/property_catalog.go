// Package rediscache layers a short-lived Redis snapshot over the property
// catalog. Match scores themselves are never cached; only the active-catalog
// read that feeds the scorer is, and every write path invalidates it.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lettora/lettora-backend/internal/domain"
	"github.com/lettora/lettora-backend/internal/repository"
)

const activeCatalogKey = "catalog:active"

type PropertyCatalog struct {
	inner  repository.PropertyRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewPropertyCatalog(inner repository.PropertyRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *PropertyCatalog {
	return &PropertyCatalog{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *PropertyCatalog) Create(ctx context.Context, property *domain.Property) error {
	if err := c.inner.Create(ctx, property); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *PropertyCatalog) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	return c.inner.GetByID(ctx, id)
}

func (c *PropertyCatalog) List(ctx context.Context, status *domain.PropertyStatus, limit, offset int) ([]*domain.Property, error) {
	return c.inner.List(ctx, status, limit, offset)
}

// ListActive serves from the snapshot when present. A cache miss or any Redis
// failure falls through to the database; the cache is an optimisation, never
// a source of truth.
func (c *PropertyCatalog) ListActive(ctx context.Context) ([]*domain.Property, error) {
	payload, err := c.client.Get(ctx, activeCatalogKey).Bytes()
	if err == nil {
		var properties []*domain.Property
		if err := json.Unmarshal(payload, &properties); err == nil {
			return properties, nil
		}
		c.invalidate(ctx)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("catalog cache read failed", zap.Error(err))
	}

	properties, err := c.inner.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(properties); err == nil {
		if err := c.client.Set(ctx, activeCatalogKey, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return properties, nil
}

func (c *PropertyCatalog) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PropertyStatus) error {
	if err := c.inner.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *PropertyCatalog) invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, activeCatalogKey).Err(); err != nil {
		c.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
